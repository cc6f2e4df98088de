package models

import "time"

// PromocionResponse es la promoción tal como la devuelve el backend.
type PromocionResponse struct {
	ID          FlexInt  `json:"promId" yaml:"promId"`
	Nombre      string   `json:"promNombre" yaml:"promNombre"`
	Monto       float64  `json:"promMonto" yaml:"promMonto"`
	Descripcion string   `json:"promDescripcion" yaml:"promDescripcion"`
	FechaInicio string   `json:"promFechaInicio" yaml:"promFechaInicio"`
	FechaFin    string   `json:"promFechaFin" yaml:"promFechaFin"`
	HoraInicio  string   `json:"promHoraInicio,omitempty" yaml:"promHoraInicio,omitempty"`
	HoraFin     string   `json:"promHoraFin,omitempty" yaml:"promHoraFin,omitempty"`
	Imagen      string   `json:"promImagen,omitempty" yaml:"promImagen,omitempty"`
	Terminos    string   `json:"promTerminos,omitempty" yaml:"promTerminos,omitempty"`
	IsActive    FlexBool `json:"promIsActive" yaml:"promIsActive"`
	Estado      string   `json:"promEstado,omitempty" yaml:"promEstado,omitempty"`
}

// PromocionActual agrega la promoción vigente con el conteo de solicitudes recibidas.
type PromocionActual struct {
	PromocionResponse `yaml:",inline"`
	Solicitudes       int `json:"cantidadSolicitudes" yaml:"cantidadSolicitudes"`
}

// PromocionSolicitada resume las solicitudes pendientes y aprobadas por promoción.
type PromocionSolicitada struct {
	PromocionResponse `yaml:",inline"`
	Solicitudes       int    `json:"cantidadSolicitudes" yaml:"cantidadSolicitudes"`
	Pendientes        int    `json:"solicitudesPendientes" yaml:"solicitudesPendientes"`
	Aprobadas         int    `json:"solicitudesAprobadas" yaml:"solicitudesAprobadas"`
	EstadoSolicitud   string `json:"estadoSolicitud,omitempty" yaml:"estadoSolicitud,omitempty"`
}

// PromocionVencida es una promoción cuyo periodo terminó.
type PromocionVencida struct {
	PromocionResponse `yaml:",inline"`
	Solicitudes       int `json:"cantidadSolicitudes" yaml:"cantidadSolicitudes"`
}

// PromocionCreate es el formulario de alta; siempre se envía como multipart con imagen.
type PromocionCreate struct {
	Nombre      string    `yaml:"promNombre" validate:"required,max=255"`
	Monto       float64   `yaml:"promMonto" validate:"gt=0"`
	Descripcion string    `yaml:"promDescripcion" validate:"required,max=1000"`
	FechaInicio time.Time `yaml:"promFechaInicio"`
	FechaFin    time.Time `yaml:"promFechaFin"`
	HoraInicio  string    `yaml:"promHoraInicio" validate:"required,hora"`
	HoraFin     string    `yaml:"promHoraFin" validate:"required,hora"`
	Terminos    string    `yaml:"promTerminos" validate:"required"`
	IsActive    bool      `yaml:"promIsActive"`
	Imagen      *Archivo  `yaml:"-"`
}
