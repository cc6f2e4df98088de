package models

// Archivo es una imagen cargada en memoria lista para subirse.
type Archivo struct {
	Nombre      string
	ContentType string
	Datos       []byte
}

// Size devuelve el tamaño en bytes; cero para un archivo nil.
func (a *Archivo) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Datos)
}

// Vacio indica si no hay contenido para subir.
func (a *Archivo) Vacio() bool {
	return a.Size() == 0
}
