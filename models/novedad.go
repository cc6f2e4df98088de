package models

import "time"

// Novedad es un anuncio temporal del back-office.
type Novedad struct {
	ID          FlexInt  `json:"noveId" yaml:"noveId"`
	Titulo      string   `json:"noveTitulo" yaml:"noveTitulo"`
	Descripcion string   `json:"noveDescripcion" yaml:"noveDescripcion"`
	FechaInicio string   `json:"noveFechaInicio" yaml:"noveFechaInicio"`
	FechaFin    string   `json:"noveFechaFin" yaml:"noveFechaFin"`
	Imagen      string   `json:"noveImagen,omitempty" yaml:"noveImagen,omitempty"`
	IsActive    FlexBool `json:"noveIsActive" yaml:"noveIsActive"`
	Estado      string   `json:"noveEstado,omitempty" yaml:"noveEstado,omitempty"`
}

// NovedadCreate es el formulario de alta; la imagen es obligatoria.
type NovedadCreate struct {
	Titulo      string    `yaml:"noveTitulo" validate:"required,max=255"`
	Descripcion string    `yaml:"noveDescripcion" validate:"required"`
	FechaInicio time.Time `yaml:"noveFechaInicio"`
	HoraInicio  string    `yaml:"noveHoraInicio" validate:"omitempty,hora"`
	FechaFin    time.Time `yaml:"noveFechaFin"`
	HoraFin     string    `yaml:"noveHoraFin" validate:"omitempty,hora"`
	IsActive    bool      `yaml:"noveIsActive"`
	Estado      string    `yaml:"noveEstado" validate:"omitempty,oneof=Activa Inactiva Borrador"`
	Imagen      *Archivo  `yaml:"-"`
}

// NovedadUpdate es el formulario de edición.
// Si Estado viene informado tiene prioridad sobre IsActive.
type NovedadUpdate struct {
	Titulo      string    `yaml:"noveTitulo" validate:"required,max=255"`
	Descripcion string    `yaml:"noveDescripcion" validate:"required"`
	FechaInicio time.Time `yaml:"noveFechaInicio"`
	HoraInicio  string    `yaml:"noveHoraInicio" validate:"omitempty,hora"`
	FechaFin    time.Time `yaml:"noveFechaFin"`
	HoraFin     string    `yaml:"noveHoraFin" validate:"omitempty,hora"`
	IsActive    *bool     `yaml:"noveIsActive"`
	Estado      string    `yaml:"noveEstado" validate:"omitempty,oneof=Activa Inactiva Borrador"`
	Imagen      *Archivo  `yaml:"-"`
}

// ResultadoEliminacion es el sobre que devuelve la eliminación de novedades en lugar de un error.
type ResultadoEliminacion struct {
	Success  bool   `json:"success" yaml:"success"`
	Response any    `json:"response,omitempty" yaml:"response,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}
