package models

// Roles de los usuarios del back-office.
const (
	RolAdministrador = "Administrador"
	RolTrabajador    = "Trabajador"
	RolAnfitrion     = "Anfitrion"
)

// Estados genéricos de registros.
const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

// Estados de novedades.
const (
	NovedadActiva   = "Activa"
	NovedadInactiva = "Inactiva"
	NovedadBorrador = "Borrador"
)

// EstadoDesdeFlag traduce el flag booleano al estado textual que muestra el back-office.
func EstadoDesdeFlag(activo bool) string {
	if activo {
		return EstadoActivo
	}
	return EstadoInactivo
}
