package clients

import (
	"context"
	"net/http"

	ihelpers "github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/models"
)

// SponsorsClient administra los patrocinadores.
// El alta viaja como multipart y la edición como JSON con la imagen en base64; así lo exige el backend.
type SponsorsClient struct {
	c *Client
}

// GetAll lista los sponsors.
func (s *SponsorsClient) GetAll(ctx context.Context) ([]models.Sponsor, error) {
	var out []models.Sponsor
	err := s.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"sponsor", "find-all"},
		politica: PoliticaNoRechazada,
	}, &out)
	return out, err
}

// GetByID obtiene un sponsor.
func (s *SponsorsClient) GetByID(ctx context.Context, id int) (*models.Sponsor, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	var out models.Sponsor
	if err := s.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"sponsor", "find-by-id", itoa(id)},
		politica: PoliticaNoRechazada,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFromDTO crea el sponsor con la imagen como parte de archivo sponImagen.
func (s *SponsorsClient) CreateFromDTO(ctx context.Context, dto models.SponsorCreate) (*models.Sponsor, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	inicio, err := ihelpers.CreateTimestamp(dto.FechaInicio, dto.HoraInicio)
	if err != nil {
		return nil, err
	}
	fin, err := ihelpers.CreateTimestamp(dto.FechaFin, dto.HoraFin)
	if err != nil {
		return nil, err
	}
	form := ihelpers.NewFormBuilder().
		Field("sponNombre", dto.Nombre).
		Field("sponDescripcion", dto.Descripcion).
		Field("sponLink", dto.Link).
		Field("sponFechaInicio", inicio).
		Field("sponFechaFin", fin).
		File("sponImagen", dto.Imagen)

	var out models.Sponsor
	if err := s.c.callInto(ctx, llamada{
		metodo:   http.MethodPost,
		ruta:     []string{"sponsor", "create"},
		form:     form,
		politica: PoliticaFlagOID,
		campoID:  "sponId",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía JSON. Una imagen nueva se codifica como data URL; sin ella se reenvía la actual.
func (s *SponsorsClient) Update(ctx context.Context, dto models.SponsorUpdate) (*models.Sponsor, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	inicio, err := ihelpers.CreateTimestamp(dto.FechaInicio, dto.HoraInicio)
	if err != nil {
		return nil, err
	}
	fin, err := ihelpers.CreateTimestamp(dto.FechaFin, dto.HoraFin)
	if err != nil {
		return nil, err
	}
	body := models.SponsorUpdateBody{
		ID:          dto.ID,
		Nombre:      dto.Nombre,
		Descripcion: dto.Descripcion,
		Link:        dto.Link,
		FechaInicio: inicio,
		FechaFin:    fin,
		Imagen:      dto.ImagenActual,
	}
	if !dto.Imagen.Vacio() {
		body.Imagen = ihelpers.EncodeDataURL(dto.Imagen)
	}

	var out models.Sponsor
	if err := s.c.callInto(ctx, llamada{
		metodo:   http.MethodPut,
		ruta:     []string{"sponsor", "update"},
		json:     body,
		politica: PoliticaFlagOID,
		campoID:  "sponId",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
