package clients

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	ihelpers "github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/models"
)

// ConcursosClient administra los concursos. Alta y edición viajan siempre como multipart.
type ConcursosClient struct {
	c *Client
}

// FindAllForAdmin lista todos los concursos.
func (cc *ConcursosClient) FindAllForAdmin(ctx context.Context) ([]models.ConcursoAdmin, error) {
	return cc.listar(ctx, "find-all")
}

// FindAllActiveForAdmin lista solo los concursos activos.
func (cc *ConcursosClient) FindAllActiveForAdmin(ctx context.Context) ([]models.ConcursoAdmin, error) {
	return cc.listar(ctx, "activos")
}

func (cc *ConcursosClient) listar(ctx context.Context, vista string) ([]models.ConcursoAdmin, error) {
	var out []models.ConcursoAdmin
	err := cc.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"concurso", "admin", vista},
		politica: PoliticaNoRechazada,
	}, &out)
	return out, err
}

// GetByID obtiene un concurso.
func (cc *ConcursosClient) GetByID(ctx context.Context, id int) (*models.ConcursoAdmin, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	var out models.ConcursoAdmin
	if err := cc.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"concurso", "find-by-id", itoa(id)},
		politica: PoliticaNoRechazada,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWithImage crea el concurso con su imagen.
func (cc *ConcursosClient) CreateWithImage(ctx context.Context, dto models.ConcursoCreate) (*models.ConcursoAdmin, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	form, err := formConcurso(dto.Nombre, dto.FechaPropuesta, dto.Hora, dto.AnfitrionID, dto.WC, dto.IsActive, dto.Imagen)
	if err != nil {
		return nil, err
	}
	var out models.ConcursoAdmin
	if err := cc.c.callInto(ctx, llamada{
		metodo:   http.MethodPost,
		ruta:     []string{"concurso", "create-with-image"},
		form:     form,
		politica: PoliticaEstadoHTTP,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWithImage edita el concurso. Se envía multipart aunque no haya imagen nueva;
// un 200 sin flag success es éxito.
func (cc *ConcursosClient) UpdateWithImage(ctx context.Context, id int, dto models.ConcursoUpdate) (*models.ConcursoAdmin, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	if err := validar(dto); err != nil {
		return nil, err
	}
	form, err := formConcurso(dto.Nombre, dto.FechaPropuesta, dto.Hora, dto.AnfitrionID, dto.WC, dto.IsActive, dto.Imagen)
	if err != nil {
		return nil, err
	}
	var out models.ConcursoAdmin
	if err := cc.c.callInto(ctx, llamada{
		metodo:   http.MethodPut,
		ruta:     []string{"concurso", "update-with-image", itoa(id)},
		form:     form,
		politica: PoliticaEstadoHTTP,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el concurso.
func (cc *ConcursosClient) Delete(ctx context.Context, id int) error {
	if err := validarID(id); err != nil {
		return err
	}
	_, err := cc.c.call(ctx, llamada{
		metodo:   http.MethodDelete,
		ruta:     []string{"concurso", "delete", itoa(id)},
		politica: PoliticaEstadoHTTP,
	})
	return err
}

func formConcurso(nombre string, fecha time.Time, hora string, anfitrionID, wc int, activo bool, imagen *models.Archivo) (*ihelpers.FormBuilder, error) {
	fechaPropuesta, err := ihelpers.CreateTimestamp(fecha, hora)
	if err != nil {
		return nil, err
	}
	form := ihelpers.NewFormBuilder().
		Field("concNombre", nombre).
		Field("concFechaPropuesta", fechaPropuesta)
	if hora != "" {
		h, err := ihelpers.CreateLocalTime(hora)
		if err != nil {
			return nil, err
		}
		form.Field("concHora", h)
	}
	form.Field("usuaId", strconv.Itoa(anfitrionID)).
		Field("concWc", strconv.Itoa(wc)).
		Field("concIsActive", strconv.FormatBool(activo)).
		File("concImagen", imagen)
	return form, nil
}

// ConcursoLoader agrupa cargas concurrentes de la misma lista en una sola petición.
type ConcursoLoader struct {
	concursos *ConcursosClient
	group     singleflight.Group
}

// NewConcursoLoader crea el loader sobre el cliente de concursos.
func NewConcursoLoader(concursos *ConcursosClient) *ConcursoLoader {
	return &ConcursoLoader{concursos: concursos}
}

// Load devuelve la lista de concursos; con soloActivos usa la vista de activos.
// Cada llamador recibe su propia copia del slice.
func (l *ConcursoLoader) Load(ctx context.Context, soloActivos bool) ([]models.ConcursoAdmin, error) {
	key := "find-all"
	if soloActivos {
		key = "activos"
	}
	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		return l.concursos.listar(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]models.ConcursoAdmin)
	out := make([]models.ConcursoAdmin, len(shared))
	copy(out, shared)
	return out, nil
}
