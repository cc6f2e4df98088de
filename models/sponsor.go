package models

import "time"

// Sponsor es un patrocinador visible en la app durante un periodo.
// Imagen puede ser URL, ruta o payload base64.
type Sponsor struct {
	ID          FlexInt `json:"sponId" yaml:"sponId"`
	Nombre      string  `json:"sponNombre" yaml:"sponNombre"`
	Descripcion string  `json:"sponDescripcion" yaml:"sponDescripcion"`
	Link        string  `json:"sponLink" yaml:"sponLink"`
	FechaInicio string  `json:"sponFechaInicio" yaml:"sponFechaInicio"`
	FechaFin    string  `json:"sponFechaFin" yaml:"sponFechaFin"`
	Imagen      string  `json:"sponImagen,omitempty" yaml:"sponImagen,omitempty"`
}

// SponsorCreate viaja como multipart con la imagen como archivo.
type SponsorCreate struct {
	Nombre      string    `yaml:"sponNombre" validate:"required,max=255"`
	Descripcion string    `yaml:"sponDescripcion" validate:"required"`
	Link        string    `yaml:"sponLink" validate:"required,url,max=255"`
	FechaInicio time.Time `yaml:"sponFechaInicio"`
	HoraInicio  string    `yaml:"sponHoraInicio" validate:"omitempty,hora"`
	FechaFin    time.Time `yaml:"sponFechaFin"`
	HoraFin     string    `yaml:"sponHoraFin" validate:"omitempty,hora"`
	Imagen      *Archivo  `yaml:"-"`
}

// SponsorUpdate viaja como JSON; una imagen nueva se envía como string base64.
// Sin imagen nueva se reenvía ImagenActual tal cual.
type SponsorUpdate struct {
	ID           int       `yaml:"sponId" validate:"gt=0"`
	Nombre       string    `yaml:"sponNombre" validate:"required,max=255"`
	Descripcion  string    `yaml:"sponDescripcion" validate:"required"`
	Link         string    `yaml:"sponLink" validate:"required,url,max=255"`
	FechaInicio  time.Time `yaml:"sponFechaInicio"`
	HoraInicio   string    `yaml:"sponHoraInicio" validate:"omitempty,hora"`
	FechaFin     time.Time `yaml:"sponFechaFin"`
	HoraFin      string    `yaml:"sponHoraFin" validate:"omitempty,hora"`
	ImagenActual string    `yaml:"sponImagen"`
	Imagen       *Archivo  `yaml:"-"`
}

// SponsorUpdateBody es el cuerpo JSON exacto de PUT /sponsor/update.
type SponsorUpdateBody struct {
	ID          int    `json:"sponId"`
	Nombre      string `json:"sponNombre"`
	Descripcion string `json:"sponDescripcion"`
	Link        string `json:"sponLink"`
	FechaInicio string `json:"sponFechaInicio"`
	FechaFin    string `json:"sponFechaFin"`
	Imagen      string `json:"sponImagen"`
}
