package helpers

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanda/backoffice_admin/models"
)

var pngMinimo = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func leerPartes(t *testing.T, body []byte, contentType string) map[string][]string {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	out := map[string][]string{}
	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, _ := io.ReadAll(part)
		key := part.FormName()
		if part.FileName() != "" {
			key = "file:" + key
		}
		out[key] = append(out[key], string(b))
	}
	return out
}

func TestFormBuilder_CamposYArchivos(t *testing.T) {
	img := &models.Archivo{Nombre: "a.png", ContentType: "image/png", Datos: pngMinimo}
	body, ct, err := NewFormBuilder().
		Field("concNombre", "Gran final").
		File("concImagen", img).
		File("vacio", nil).
		Build()
	require.NoError(t, err)

	parts := leerPartes(t, body, ct)
	assert.Equal(t, []string{"Gran final"}, parts["concNombre"])
	assert.Equal(t, []string{string(pngMinimo)}, parts["file:concImagen"])
	assert.NotContains(t, parts, "file:vacio")
}

func TestFormBuilder_CampoRepetido(t *testing.T) {
	imgs := []*models.Archivo{
		{Nombre: "1.png", Datos: pngMinimo},
		{Nombre: "2.png", Datos: pngMinimo},
		{Nombre: "3.png", Datos: pngMinimo},
	}
	body, ct, err := NewFormBuilder().Files("pagiImagenes", imgs).Build()
	require.NoError(t, err)

	parts := leerPartes(t, body, ct)
	assert.Len(t, parts["file:pagiImagenes"], 3)
}

func TestEncodeDataURL(t *testing.T) {
	img := &models.Archivo{ContentType: "image/png", Datos: []byte("hola")}
	assert.Equal(t, "data:image/png;base64,aG9sYQ==", EncodeDataURL(img))
	assert.Equal(t, "", EncodeDataURL(nil))
}

func TestLeerArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngMinimo, 0o644))

	a, err := LeerArchivo(path)
	require.NoError(t, err)
	assert.Equal(t, "logo.png", a.Nombre)
	assert.Equal(t, "image/png", a.ContentType)
	assert.Equal(t, len(pngMinimo), a.Size())

	_, err = LeerArchivo(filepath.Join(t.TempDir(), "nada.png"))
	assert.Error(t, err)
}
