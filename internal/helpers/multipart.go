package helpers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/wanda/backoffice_admin/models"
)

// FormBuilder arma un cuerpo multipart/form-data en memoria.
// El primer error queda registrado y los llamados posteriores no hacen nada.
type FormBuilder struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewFormBuilder crea un builder vacío.
func NewFormBuilder() *FormBuilder {
	fb := &FormBuilder{}
	fb.writer = multipart.NewWriter(&fb.buf)
	return fb
}

// Field agrega un campo de texto.
func (fb *FormBuilder) Field(name, value string) *FormBuilder {
	if fb.err != nil {
		return fb
	}
	fb.err = fb.writer.WriteField(name, value)
	return fb
}

// File agrega un archivo; un archivo nil o vacío se omite.
func (fb *FormBuilder) File(name string, a *models.Archivo) *FormBuilder {
	if fb.err != nil || a.Vacio() {
		return fb
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(name), escapeQuotes(nombreArchivo(a))))
	h.Set("Content-Type", contentType(a))
	part, err := fb.writer.CreatePart(h)
	if err != nil {
		fb.err = err
		return fb
	}
	_, fb.err = part.Write(a.Datos)
	return fb
}

// Files agrega varios archivos bajo el mismo nombre de campo.
func (fb *FormBuilder) Files(name string, archivos []*models.Archivo) *FormBuilder {
	for _, a := range archivos {
		fb.File(name, a)
	}
	return fb
}

// Build cierra el writer y devuelve el cuerpo junto a su Content-Type con boundary.
func (fb *FormBuilder) Build() ([]byte, string, error) {
	if fb.err != nil {
		return nil, "", fb.err
	}
	if err := fb.writer.Close(); err != nil {
		return nil, "", err
	}
	return fb.buf.Bytes(), fb.writer.FormDataContentType(), nil
}

// EncodeDataURL convierte la imagen en un data URL base64, el formato que espera el update de sponsors.
func EncodeDataURL(a *models.Archivo) string {
	if a.Vacio() {
		return ""
	}
	return "data:" + contentType(a) + ";base64," + base64.StdEncoding.EncodeToString(a.Datos)
}

// LeerArchivo carga una imagen desde disco detectando su tipo de contenido.
func LeerArchivo(path string) (*models.Archivo, error) {
	datos, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("leyendo imagen %s: %w", path, err)
	}
	return &models.Archivo{
		Nombre:      filepath.Base(path),
		ContentType: http.DetectContentType(datos),
		Datos:       datos,
	}, nil
}

func contentType(a *models.Archivo) string {
	if ct := strings.TrimSpace(a.ContentType); ct != "" {
		return ct
	}
	return http.DetectContentType(a.Datos)
}

func nombreArchivo(a *models.Archivo) string {
	if n := strings.TrimSpace(a.Nombre); n != "" {
		return n
	}
	return "imagen"
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
