package models

// Parametro es un valor configurable de la plataforma.
type Parametro struct {
	ID          FlexInt `json:"paraId" yaml:"paraId"`
	Nombre      string  `json:"paraNombre" yaml:"paraNombre"`
	Descripcion string  `json:"paraDescripcion,omitempty" yaml:"paraDescripcion,omitempty"`
	Valor       string  `json:"paraValor" yaml:"paraValor"`
	Estado      string  `json:"paraEstado" yaml:"paraEstado"`
}

// ParametroForm se usa tanto para crear como para actualizar.
type ParametroForm struct {
	Nombre      string `json:"paraNombre" yaml:"paraNombre" validate:"required,max=255"`
	Descripcion string `json:"paraDescripcion,omitempty" yaml:"paraDescripcion" validate:"omitempty,max=255"`
	Valor       string `json:"paraValor" yaml:"paraValor" validate:"required,max=255"`
	Estado      string `json:"paraEstado" yaml:"paraEstado" validate:"required,oneof=Activo Inactivo"`
}

// Pregunta es una entrada de preguntas frecuentes.
type Pregunta struct {
	ID        FlexInt `json:"pregId" yaml:"pregId"`
	Pregunta  string  `json:"pregPregunta" yaml:"pregPregunta"`
	Respuesta string  `json:"pregRespuesta" yaml:"pregRespuesta"`
	Estado    string  `json:"pregEstado" yaml:"pregEstado"`
}

// PreguntaForm se usa tanto para crear como para actualizar.
type PreguntaForm struct {
	Pregunta  string `json:"pregPregunta" yaml:"pregPregunta" validate:"required,max=255"`
	Respuesta string `json:"pregRespuesta" yaml:"pregRespuesta" validate:"required,max=2000"`
	Estado    string `json:"pregEstado" yaml:"pregEstado" validate:"required,oneof=Activo Inactivo"`
}

// MaxImagenesPagina es el tope de imágenes por página estática.
const MaxImagenesPagina = 4

// PaginaEstatica es una página de contenido con hasta cuatro imágenes.
type PaginaEstatica struct {
	ID          FlexInt  `json:"pagiId" yaml:"pagiId"`
	Nombre      string   `json:"pagiNombre" yaml:"pagiNombre"`
	Descripcion string   `json:"pagiDescripcion" yaml:"pagiDescripcion"`
	Link        string   `json:"pagiLink,omitempty" yaml:"pagiLink,omitempty"`
	Imagenes    []string `json:"pagiImagenes,omitempty" yaml:"pagiImagenes,omitempty"`
}

// PaginaEstaticaForm viaja como multipart con pagiImagenes repetido.
type PaginaEstaticaForm struct {
	Nombre      string     `yaml:"pagiNombre" validate:"required,max=255"`
	Descripcion string     `yaml:"pagiDescripcion" validate:"required"`
	Link        string     `yaml:"pagiLink" validate:"omitempty,url,max=255"`
	Imagenes    []*Archivo `yaml:"-"`
}
