package clients

import (
	"context"
	"net/http"
	"strconv"
	"time"

	ihelpers "github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/models"
)

// NovedadesClient administra los anuncios temporales.
type NovedadesClient struct {
	c *Client
}

// CreateFromDTO crea la novedad; la imagen es obligatoria.
func (n *NovedadesClient) CreateFromDTO(ctx context.Context, dto models.NovedadCreate) (*models.Novedad, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	activo := dto.IsActive
	form, err := formNovedad(dto.Titulo, dto.Descripcion, dto.FechaInicio, dto.HoraInicio, dto.FechaFin, dto.HoraFin, dto.Estado, &activo, dto.Imagen)
	if err != nil {
		return nil, err
	}
	var out models.Novedad
	if err := n.c.callInto(ctx, llamada{
		metodo:   http.MethodPost,
		ruta:     []string{"novedades", "create-from-dto"},
		form:     form,
		politica: PoliticaFlagOID,
		campoID:  "noveId",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActivas lista las novedades publicadas.
func (n *NovedadesClient) GetActivas(ctx context.Context) ([]models.Novedad, error) {
	return n.listar(ctx, "activas")
}

// GetInactivas lista las novedades despublicadas.
func (n *NovedadesClient) GetInactivas(ctx context.Context) ([]models.Novedad, error) {
	return n.listar(ctx, "inactivas")
}

// GetBorrador lista los borradores.
func (n *NovedadesClient) GetBorrador(ctx context.Context) ([]models.Novedad, error) {
	return n.listar(ctx, "borrador")
}

func (n *NovedadesClient) listar(ctx context.Context, vista string) ([]models.Novedad, error) {
	var out []models.Novedad
	err := n.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"novedades", vista},
		politica: PoliticaNoRechazada,
	}, &out)
	return out, err
}

// FindByID obtiene una novedad.
func (n *NovedadesClient) FindByID(ctx context.Context, id int) (*models.Novedad, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	var out models.Novedad
	if err := n.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"novedades", "find-by-id", itoa(id)},
		politica: PoliticaNoRechazada,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFromDTO edita la novedad. La imagen es opcional.
func (n *NovedadesClient) UpdateFromDTO(ctx context.Context, id int, dto models.NovedadUpdate) (*models.Novedad, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	if err := validar(dto); err != nil {
		return nil, err
	}
	form, err := formNovedad(dto.Titulo, dto.Descripcion, dto.FechaInicio, dto.HoraInicio, dto.FechaFin, dto.HoraFin, dto.Estado, dto.IsActive, dto.Imagen)
	if err != nil {
		return nil, err
	}
	var out models.Novedad
	if err := n.c.callInto(ctx, llamada{
		metodo:   http.MethodPut,
		ruta:     []string{"novedades", "update-from-dto", itoa(id)},
		form:     form,
		politica: PoliticaFlagOID,
		campoID:  "noveId",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete nunca devuelve error: el resultado viaja en el sobre para que el llamador ramifique.
// Success sigue al resultado HTTP; un cuerpo que no es JSON se conserva como texto en Response.
func (n *NovedadesClient) Delete(ctx context.Context, id int) models.ResultadoEliminacion {
	if err := validarID(id); err != nil {
		return models.ResultadoEliminacion{Success: false, Message: err.Error()}
	}
	resp, err := n.c.call(ctx, llamada{
		metodo:   http.MethodDelete,
		ruta:     []string{"novedades", "delete", itoa(id)},
		politica: PoliticaNoRechazada,
	})
	if err != nil {
		return models.ResultadoEliminacion{Success: false, Message: err.Error()}
	}
	return models.ResultadoEliminacion{Success: true, Response: cuerpoCrudo(resp)}
}

// formNovedad arma el multipart. Si estado viene informado manda sobre activo.
func formNovedad(titulo, descripcion string, fIni time.Time, hIni string, fFin time.Time, hFin string, estado string, activo *bool, imagen *models.Archivo) (*ihelpers.FormBuilder, error) {
	inicio, err := ihelpers.CreateTimestamp(fIni, hIni)
	if err != nil {
		return nil, err
	}
	fin, err := ihelpers.CreateTimestamp(fFin, hFin)
	if err != nil {
		return nil, err
	}
	form := ihelpers.NewFormBuilder().
		Field("noveTitulo", titulo).
		Field("noveDescripcion", descripcion).
		Field("noveFechaInicio", inicio).
		Field("noveFechaFin", fin)
	switch {
	case estado != "":
		form.Field("noveEstado", estado).
			Field("noveIsActive", strconv.FormatBool(estado == models.NovedadActiva))
	case activo != nil:
		form.Field("noveIsActive", strconv.FormatBool(*activo))
	}
	form.File("noveImagen", imagen)
	return form, nil
}
