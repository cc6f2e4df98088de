package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanda/backoffice_admin/internal/backendtest"
	"github.com/wanda/backoffice_admin/models/requestresponse"
)

func ejecutar(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func prepararEntorno(t *testing.T) *backendtest.Server {
	t.Helper()
	srv := backendtest.New(t)
	t.Setenv("WANDA_API_BASE_URL", srv.URL+backendtest.Prefix)
	t.Setenv("WANDA_STORAGE_DRIVER", "sqlite")
	t.Setenv("WANDA_STORAGE_PATH", filepath.Join(t.TempDir(), "sesion.db"))
	t.Setenv("WANDA_LOG_LEVEL", "error")
	return srv
}

func TestCLI_LoginPersisteEntreEjecuciones(t *testing.T) {
	srv := prepararEntorno(t)
	srv.JSON(http.MethodPost, "/auth/login-backoffice", http.StatusOK, map[string]any{
		"success": true,
		"message": "Bienvenida",
		"token":   "tok-cli",
		"usuario": map[string]any{"usuaId": 1, "usuaNombre": "Ana"},
	})
	srv.JSON(http.MethodGet, "/usuario/find-all", http.StatusOK, requestresponse.NewSuccess("", []map[string]any{
		{"usuaId": 2, "usuaNombre": "Beto"},
	}))

	_, err := ejecutar(t, "login", "--correo", "ana@wanda.cl", "--password", "Secreta1!")
	require.NoError(t, err)

	out, err := ejecutar(t, "usuarios", "list", "-o", "json")
	require.NoError(t, err)
	var usuarios []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &usuarios))
	require.Len(t, usuarios, 1)
	assert.Equal(t, "Beto", usuarios[0]["usuaNombre"])
	assert.Equal(t, "Bearer tok-cli", srv.Last(t).Header.Get("Authorization"))

	out, err = ejecutar(t, "whoami", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"usuaNombre": "Ana"`)

	_, err = ejecutar(t, "logout")
	require.NoError(t, err)
	_, err = ejecutar(t, "whoami")
	assert.Error(t, err)
}

func TestCLI_CreaParametroDesdeArchivo(t *testing.T) {
	srv := prepararEntorno(t)
	srv.JSON(http.MethodPost, "/parametros/create-from-dto", http.StatusOK, requestresponse.NewSuccess("", map[string]any{
		"paraId": 9, "paraNombre": "IVA", "paraValor": "19", "paraEstado": "Activo",
	}))

	path := filepath.Join(t.TempDir(), "parametro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paraNombre: IVA\nparaValor: \"19\"\nparaEstado: Activo\n"), 0o600))

	out, err := ejecutar(t, "parametros", "create", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "paraId: 9")

	var body map[string]any
	require.NoError(t, srv.Last(t).JSON(&body))
	assert.Equal(t, "IVA", body["paraNombre"])
	assert.Equal(t, "19", body["paraValor"])
}

func TestCLI_FormularioInvalidoNoLlamaAlBackend(t *testing.T) {
	srv := prepararEntorno(t)

	path := filepath.Join(t.TempDir(), "parametro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paraNombre: IVA\n"), 0o600))

	_, err := ejecutar(t, "parametros", "create", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formulario inválido")
	assert.Empty(t, srv.Requests())
}

func TestCLI_IDInvalido(t *testing.T) {
	prepararEntorno(t)
	_, err := ejecutar(t, "concursos", "delete", "abc")
	assert.Error(t, err)
}

func TestCLI_CreaConcursoConFechaEnJSONyYAML(t *testing.T) {
	srv := prepararEntorno(t)
	srv.JSON(http.MethodPost, "/concurso/create-with-image", http.StatusCreated, map[string]any{
		"concId": 11, "concNombre": "Gran Concurso",
	})

	dir := t.TempDir()
	img := filepath.Join(dir, "portada.png")
	require.NoError(t, os.WriteFile(img, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x00"), 0o600))

	archivos := map[string]string{
		"concurso.json": `{"concNombre":"Gran Concurso","concFechaPropuesta":"2024-09-25","concHora":"09:30","usuaId":2,"concWc":50,"concIsActive":true}`,
		"concurso.yaml": "concNombre: Gran Concurso\nconcFechaPropuesta: 2024-09-25\nconcHora: \"09:30\"\nusuaId: 2\nconcWc: 50\nconcIsActive: true\n",
	}
	for nombre, contenido := range archivos {
		t.Run(nombre, func(t *testing.T) {
			path := filepath.Join(dir, nombre)
			require.NoError(t, os.WriteFile(path, []byte(contenido), 0o600))

			out, err := ejecutar(t, "concursos", "create", "-f", path, "--imagen", img, "-o", "json")
			require.NoError(t, err)
			assert.Contains(t, out, `"concId": 11`)

			form, err := srv.Last(t).Multipart()
			require.NoError(t, err)
			assert.Equal(t, []string{"2024-09-25 09:30:00"}, form.Value["concFechaPropuesta"])
			assert.Equal(t, []string{"Gran Concurso"}, form.Value["concNombre"])
			require.Len(t, form.File["concImagen"], 1)
		})
	}
}

func TestCLI_FechaInvalidaNoLlamaAlBackend(t *testing.T) {
	srv := prepararEntorno(t)

	path := filepath.Join(t.TempDir(), "concurso.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"concNombre":"X","concFechaPropuesta":"25/09/2024","usuaId":2,"concWc":5}`), 0o600))

	_, err := ejecutar(t, "concursos", "update", "4", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concFechaPropuesta")
	assert.Empty(t, srv.Requests())
}

func TestCLI_ConcursosMuestranEstadoCalculado(t *testing.T) {
	srv := prepararEntorno(t)
	srv.JSON(http.MethodGet, "/concurso/find-by-id/{id}", http.StatusOK, map[string]any{
		"concId": 3, "concNombre": "Gran Concurso", "concIsActive": true,
	})
	srv.JSON(http.MethodGet, "/concurso/admin/find-all", http.StatusOK, requestresponse.NewSuccess("", []map[string]any{
		{"concId": 4, "concIsActive": false},
		{"concId": 5, "concIsActive": true, "concEstado": "Pendiente"},
	}))

	out, err := ejecutar(t, "concursos", "get", "3", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"concEstado": "Activo"`)

	out, err = ejecutar(t, "concursos", "list", "-o", "json")
	require.NoError(t, err)
	var lista []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &lista))
	require.Len(t, lista, 2)
	assert.Equal(t, "Inactivo", lista[0]["concEstado"])
	assert.Equal(t, "Pendiente", lista[1]["concEstado"])
}
