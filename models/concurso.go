package models

import "time"

// ConcursoAdmin es el concurso tal como lo lista el panel de administración.
type ConcursoAdmin struct {
	ID              FlexInt  `json:"concId" yaml:"concId"`
	Nombre          string   `json:"concNombre" yaml:"concNombre"`
	FechaPropuesta  string   `json:"concFechaPropuesta" yaml:"concFechaPropuesta"`
	Hora            string   `json:"concHora,omitempty" yaml:"concHora,omitempty"`
	AnfitrionID     FlexInt  `json:"usuaId" yaml:"usuaId"`
	AnfitrionNombre string   `json:"anfitrionNombre,omitempty" yaml:"anfitrionNombre,omitempty"`
	WC              int      `json:"concWc" yaml:"concWc"`
	Imagen          string   `json:"concImagen,omitempty" yaml:"concImagen,omitempty"`
	IsActive        FlexBool `json:"concIsActive" yaml:"concIsActive"`
	Estado          string   `json:"concEstado,omitempty" yaml:"concEstado,omitempty"`
	FechaRegistro   string   `json:"concFechaRegistro,omitempty" yaml:"concFechaRegistro,omitempty"`
}

// EstadoCalculado devuelve el estado textual, derivándolo del flag si el backend no lo envió.
func (c ConcursoAdmin) EstadoCalculado() string {
	if c.Estado != "" {
		return c.Estado
	}
	return EstadoDesdeFlag(c.IsActive.Bool())
}

// ConcursoCreate es el formulario de alta; la imagen es obligatoria.
type ConcursoCreate struct {
	Nombre         string    `yaml:"concNombre" validate:"required,max=255"`
	FechaPropuesta time.Time `yaml:"concFechaPropuesta"`
	Hora           string    `yaml:"concHora" validate:"omitempty,hora"`
	AnfitrionID    int       `yaml:"usuaId" validate:"gt=0"`
	WC             int       `yaml:"concWc" validate:"gt=0"`
	IsActive       bool      `yaml:"concIsActive"`
	Imagen         *Archivo  `yaml:"-"`
}

// ConcursoUpdate es el formulario de edición; la imagen es opcional.
type ConcursoUpdate struct {
	Nombre         string    `yaml:"concNombre" validate:"required,max=255"`
	FechaPropuesta time.Time `yaml:"concFechaPropuesta"`
	Hora           string    `yaml:"concHora" validate:"omitempty,hora"`
	AnfitrionID    int       `yaml:"usuaId" validate:"gt=0"`
	WC             int       `yaml:"concWc" validate:"gt=0"`
	IsActive       bool      `yaml:"concIsActive"`
	Imagen         *Archivo  `yaml:"-"`
}
