package models

// UsuarioAdmin es la vista de administración de un usuario.
type UsuarioAdmin struct {
	ID            FlexInt `json:"usuaId" yaml:"usuaId"`
	Username      string  `json:"usuaUsername" yaml:"usuaUsername"`
	Nombre        string  `json:"usuaNombre" yaml:"usuaNombre"`
	Apellido      string  `json:"usuaApellido" yaml:"usuaApellido"`
	Correo        string  `json:"usuaCorreo" yaml:"usuaCorreo"`
	Rol           string  `json:"usuaRol" yaml:"usuaRol"`
	Estado        string  `json:"usuaEstado" yaml:"usuaEstado"`
	FechaRegistro string  `json:"usuaFechaRegistro,omitempty" yaml:"usuaFechaRegistro,omitempty"`
}

// UsuarioCreate es el formulario de alta de usuario.
type UsuarioCreate struct {
	Username     string `json:"usuaUsername" yaml:"usuaUsername" validate:"required,max=255"`
	Nombre       string `json:"usuaNombre" yaml:"usuaNombre" validate:"required,max=255"`
	Apellido     string `json:"usuaApellido" yaml:"usuaApellido" validate:"required,max=255"`
	Correo       string `json:"usuaCorreo" yaml:"usuaCorreo" validate:"required,email,max=255"`
	Rol          string `json:"usuaRol" yaml:"usuaRol" validate:"required,oneof=Administrador Trabajador Anfitrion"`
	Password     string `json:"usuaPassword" yaml:"usuaPassword" validate:"required,password"`
	Confirmacion string `json:"-" yaml:"confirmacion" validate:"required,eqfield=Password"`
}

// UsuarioUpdate es el formulario de edición; no incluye contraseña.
type UsuarioUpdate struct {
	Username string `json:"usuaUsername" yaml:"usuaUsername" validate:"required,max=255"`
	Nombre   string `json:"usuaNombre" yaml:"usuaNombre" validate:"required,max=255"`
	Apellido string `json:"usuaApellido" yaml:"usuaApellido" validate:"required,max=255"`
	Correo   string `json:"usuaCorreo" yaml:"usuaCorreo" validate:"required,email,max=255"`
	Rol      string `json:"usuaRol" yaml:"usuaRol" validate:"required,oneof=Administrador Trabajador Anfitrion"`
	Estado   string `json:"usuaEstado,omitempty" yaml:"usuaEstado" validate:"omitempty,oneof=Activo Inactivo"`
}

// ResetPassword es el formulario de cambio de contraseña por un administrador.
type ResetPassword struct {
	Password     string `json:"password" yaml:"password" validate:"required,password"`
	Confirmacion string `json:"-" yaml:"confirmacion" validate:"required,eqfield=Password"`
}

// Anfitrion es un usuario con rol de anfitrión disponible para concursos.
type Anfitrion struct {
	ID       FlexInt `json:"usuaId" yaml:"usuaId"`
	Username string  `json:"usuaUsername" yaml:"usuaUsername"`
	Nombre   string  `json:"usuaNombre" yaml:"usuaNombre"`
	Apellido string  `json:"usuaApellido" yaml:"usuaApellido"`
}
