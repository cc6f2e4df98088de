package clients

import (
	"context"
	"net/http"
	"strconv"

	ihelpers "github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/models"
)

// PromocionesClient administra las promociones y sus vistas agregadas.
type PromocionesClient struct {
	c *Client
}

// Create publica una promoción. Siempre multipart, con imagen obligatoria.
func (p *PromocionesClient) Create(ctx context.Context, dto models.PromocionCreate) (*models.PromocionResponse, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	horaInicio, err := ihelpers.CreateLocalTime(dto.HoraInicio)
	if err != nil {
		return nil, err
	}
	horaFin, err := ihelpers.CreateLocalTime(dto.HoraFin)
	if err != nil {
		return nil, err
	}
	form := ihelpers.NewFormBuilder().
		Field("promNombre", dto.Nombre).
		Field("promMonto", strconv.FormatFloat(dto.Monto, 'f', -1, 64)).
		Field("promDescripcion", dto.Descripcion).
		Field("promFechaInicio", ihelpers.CreateLocalDate(dto.FechaInicio)).
		Field("promFechaFin", ihelpers.CreateLocalDate(dto.FechaFin)).
		Field("promHoraInicio", horaInicio).
		Field("promHoraFin", horaFin).
		Field("promTerminos", dto.Terminos).
		Field("promIsActive", strconv.FormatBool(dto.IsActive)).
		File("promImagen", dto.Imagen)

	var out models.PromocionResponse
	if err := p.c.callInto(ctx, llamada{
		metodo:   http.MethodPost,
		ruta:     []string{"promocion", "create"},
		form:     form,
		politica: PoliticaFlagOID,
		campoID:  "promId",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindAll lista todas las promociones.
func (p *PromocionesClient) FindAll(ctx context.Context) ([]models.PromocionResponse, error) {
	var out []models.PromocionResponse
	err := p.c.callInto(ctx, p.lectura("find-all"), &out)
	return out, err
}

// FindByID obtiene una promoción.
func (p *PromocionesClient) FindByID(ctx context.Context, id int) (*models.PromocionResponse, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	var out models.PromocionResponse
	if err := p.c.callInto(ctx, p.lectura("find-by-id", itoa(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActuales lista las promociones vigentes.
func (p *PromocionesClient) GetActuales(ctx context.Context) ([]models.PromocionActual, error) {
	var out []models.PromocionActual
	err := p.c.callInto(ctx, p.lectura("actuales"), &out)
	return out, err
}

// GetSolicitadas lista las promociones con solicitudes.
func (p *PromocionesClient) GetSolicitadas(ctx context.Context) ([]models.PromocionSolicitada, error) {
	var out []models.PromocionSolicitada
	err := p.c.callInto(ctx, p.lectura("solicitadas"), &out)
	return out, err
}

// GetVencidas lista las promociones cuyo periodo terminó.
func (p *PromocionesClient) GetVencidas(ctx context.Context) ([]models.PromocionVencida, error) {
	var out []models.PromocionVencida
	err := p.c.callInto(ctx, p.lectura("vencidas"), &out)
	return out, err
}

// Delete exige un 200 explícito. El mensaje de error puede venir en JSON o en texto plano.
func (p *PromocionesClient) Delete(ctx context.Context, id int) error {
	if err := validarID(id); err != nil {
		return err
	}
	_, err := p.c.call(ctx, llamada{
		metodo:     http.MethodDelete,
		ruta:       []string{"promocion", "delete", itoa(id)},
		politica:   PoliticaSoloOK,
		textoError: true,
	})
	return err
}

func (p *PromocionesClient) lectura(ruta ...string) llamada {
	return llamada{
		metodo:   http.MethodGet,
		ruta:     append([]string{"promocion"}, ruta...),
		politica: PoliticaNoRechazada,
	}
}
