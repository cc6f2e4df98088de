package clients

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanda/backoffice_admin/helpers"
	"github.com/wanda/backoffice_admin/internal/backendtest"
	"github.com/wanda/backoffice_admin/models"
	"github.com/wanda/backoffice_admin/models/requestresponse"
)

var pngMinimo = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func imagen(nombre string) *models.Archivo {
	return &models.Archivo{Nombre: nombre, ContentType: "image/png", Datos: pngMinimo}
}

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestConcursoUpdate_200SinFlagEsExito(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPut, "/concurso/update-with-image/{id}", http.StatusOK, map[string]any{})

	_, err := c.Concursos().UpdateWithImage(context.Background(), 4, models.ConcursoUpdate{
		Nombre:         "Gran Concurso",
		FechaPropuesta: dia(2024, 9, 25),
		Hora:           "09:30:45",
		AnfitrionID:    2,
		WC:             50,
		IsActive:       true,
	})
	require.NoError(t, err)

	req := srv.Last(t)
	assert.Equal(t, backendtest.Prefix+"/concurso/update-with-image/4", req.Path)
	assert.Equal(t, "multipart/form-data", req.ContentType())
	form, err := req.Multipart()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-09-25 09:30:45"}, form.Value["concFechaPropuesta"])
	assert.Equal(t, []string{"09:30"}, form.Value["concHora"])
	assert.Equal(t, []string{"2"}, form.Value["usuaId"])
	assert.Equal(t, []string{"50"}, form.Value["concWc"])
	assert.Equal(t, []string{"true"}, form.Value["concIsActive"])
	assert.Empty(t, form.File["concImagen"])
}

func TestConcursoCreate_ConImagen(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPost, "/concurso/create-with-image", http.StatusCreated, map[string]any{
		"concId": 11, "concNombre": "Nuevo",
	})

	out, err := c.Concursos().CreateWithImage(context.Background(), models.ConcursoCreate{
		Nombre:         "Nuevo",
		FechaPropuesta: dia(2024, 12, 1),
		AnfitrionID:    3,
		WC:             10,
		Imagen:         imagen("portada.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, 11, out.ID.Int())

	form, err := srv.Last(t).Multipart()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-01 00:00:00"}, form.Value["concFechaPropuesta"])
	assert.Nil(t, form.Value["concHora"])
	require.Len(t, form.File["concImagen"], 1)
	assert.Equal(t, "portada.png", form.File["concImagen"][0].Filename)
}

func TestUsuarioUpdate_RechazoConMensaje(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPut, "/usuario/update/{id}", http.StatusOK, map[string]any{"success": false, "mensaje": "x"})

	_, err := c.Usuarios().Update(context.Background(), 3, models.UsuarioUpdate{
		Username: "beto", Nombre: "Beto", Apellido: "Soto", Correo: "beto@wanda.cl", Rol: models.RolTrabajador,
	})
	require.Error(t, err)
	assert.Equal(t, "x", err.Error())
	assert.True(t, helpers.IsDomainError(err))
	assert.Equal(t, "application/json", srv.Last(t).ContentType())
}

func TestErroresHTTP_Mensajes(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodGet, "/concurso/admin/find-all", http.StatusInternalServerError, map[string]any{"message": "Custom error"})
	srv.Text(http.MethodGet, "/concurso/find-by-id/{id}", http.StatusNotFound, "<html>not found</html>")

	_, err := c.Concursos().FindAllForAdmin(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Custom error", err.Error())
	assert.True(t, helpers.IsHTTPError(err, http.StatusInternalServerError))

	_, err = c.Concursos().GetByID(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 404", err.Error())
}

func TestErrorDeTransporteSinEnvolver(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.Close()

	_, err := c.Anfitriones().GetActivos(context.Background())
	require.Error(t, err)
	var appErr *helpers.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestContextoCancelado(t *testing.T) {
	c, srv := nuevoCliente(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Sponsors().GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, srv.Requests())
}

func TestSponsorCreate_Multipart(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPost, "/sponsor/create", http.StatusOK, map[string]any{"sponId": 8})

	out, err := c.Sponsors().CreateFromDTO(context.Background(), models.SponsorCreate{
		Nombre:      "Acme",
		Descripcion: "Patrocinador oficial",
		Link:        "https://acme.cl",
		FechaInicio: dia(2024, 1, 1),
		HoraInicio:  "08:00",
		FechaFin:    dia(2024, 3, 1),
		HoraFin:     "20:00",
		Imagen:      imagen("logo.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, out.ID.Int())

	req := srv.Last(t)
	assert.Equal(t, "multipart/form-data", req.ContentType())
	form, err := req.Multipart()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01 08:00:00"}, form.Value["sponFechaInicio"])
	assert.Equal(t, []string{"2024-03-01 20:00:00"}, form.Value["sponFechaFin"])
	require.Len(t, form.File["sponImagen"], 1)
	f, err := form.File["sponImagen"][0].Open()
	require.NoError(t, err)
	defer f.Close()
	datos, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(pngMinimo, datos))
}

func TestSponsorUpdate_JSONConBase64(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPut, "/sponsor/update", http.StatusOK, requestresponse.NewSuccess("Actualizado", map[string]any{"sponId": 8}))

	_, err := c.Sponsors().Update(context.Background(), models.SponsorUpdate{
		ID:           8,
		Nombre:       "Acme",
		Descripcion:  "Patrocinador oficial",
		Link:         "https://acme.cl",
		FechaInicio:  dia(2024, 1, 1),
		FechaFin:     dia(2024, 3, 1),
		ImagenActual: "https://cdn.wanda.cl/old.png",
		Imagen:       imagen("nuevo.png"),
	})
	require.NoError(t, err)

	req := srv.Last(t)
	assert.Equal(t, "application/json", req.ContentType())
	var body map[string]any
	require.NoError(t, req.JSON(&body))
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngMinimo), body["sponImagen"])
	assert.Equal(t, float64(8), body["sponId"])
	assert.Equal(t, "2024-01-01 00:00:00", body["sponFechaInicio"])
}

func TestSponsorUpdate_SinImagenNuevaReenviaActual(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPut, "/sponsor/update", http.StatusOK, map[string]any{"sponId": 8})

	_, err := c.Sponsors().Update(context.Background(), models.SponsorUpdate{
		ID:           8,
		Nombre:       "Acme",
		Descripcion:  "Patrocinador oficial",
		Link:         "https://acme.cl",
		FechaInicio:  dia(2024, 1, 1),
		FechaFin:     dia(2024, 3, 1),
		ImagenActual: "https://cdn.wanda.cl/old.png",
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, srv.Last(t).JSON(&body))
	assert.Equal(t, "https://cdn.wanda.cl/old.png", body["sponImagen"])
}

func TestPaginas_CampoRepetido(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPost, "/paginas-estaticas/create-from-dto", http.StatusOK, map[string]any{"pagiId": 2})

	_, err := c.Paginas().Create(context.Background(), models.PaginaEstaticaForm{
		Nombre:      "Nosotros",
		Descripcion: "Quiénes somos",
		Imagenes:    []*models.Archivo{imagen("a.png"), imagen("b.png"), imagen("c.png")},
	})
	require.NoError(t, err)

	form, err := srv.Last(t).Multipart()
	require.NoError(t, err)
	require.Len(t, form.File["pagiImagenes"], 3)
	assert.Equal(t, "b.png", form.File["pagiImagenes"][1].Filename)
	assert.Equal(t, []string{"Nosotros"}, form.Value["pagiNombre"])
}

func TestPaginas_MasDeCuatroImagenes(t *testing.T) {
	c, srv := nuevoCliente(t)
	imgs := make([]*models.Archivo, 0, 5)
	for i := 0; i < 5; i++ {
		imgs = append(imgs, imagen("x.png"))
	}

	_, err := c.Paginas().Update(context.Background(), 2, models.PaginaEstaticaForm{
		Nombre: "Nosotros", Descripcion: "Quiénes somos", Imagenes: imgs,
	})
	assert.True(t, helpers.IsValidationError(err))
	assert.Empty(t, srv.Requests())
}

func TestNovedadDelete_Sobre(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodDelete, "/novedades/delete/{id}", http.StatusOK, map[string]any{"success": true, "message": "Eliminada"})

	res := c.Novedades().Delete(context.Background(), 5)
	assert.True(t, res.Success)
	assert.Equal(t, map[string]any{"success": true, "message": "Eliminada"}, res.Response)

	srv.JSON(http.MethodDelete, "/novedades/delete/{id}", http.StatusInternalServerError, requestresponse.NewError("No se pudo eliminar"))
	res = c.Novedades().Delete(context.Background(), 5)
	assert.False(t, res.Success)
	assert.Equal(t, "No se pudo eliminar", res.Message)

	res = c.Novedades().Delete(context.Background(), 0)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}

func TestNovedadUpdate_EstadoTienePrioridad(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPut, "/novedades/update-from-dto/{id}", http.StatusOK, map[string]any{"noveId": 5})

	activo := true
	_, err := c.Novedades().UpdateFromDTO(context.Background(), 5, models.NovedadUpdate{
		Titulo:      "Aviso",
		Descripcion: "Texto",
		FechaInicio: dia(2024, 11, 1),
		HoraInicio:  "09:00",
		FechaFin:    dia(2024, 11, 2),
		HoraFin:     "18:00",
		IsActive:    &activo,
		Estado:      models.NovedadBorrador,
	})
	require.NoError(t, err)

	form, err := srv.Last(t).Multipart()
	require.NoError(t, err)
	assert.Equal(t, []string{models.NovedadBorrador}, form.Value["noveEstado"])
	assert.Equal(t, []string{"false"}, form.Value["noveIsActive"])
	assert.Equal(t, []string{"2024-11-01 09:00:00"}, form.Value["noveFechaInicio"])
	assert.Empty(t, form.File["noveImagen"])
}

func TestNovedadCreate_PoliticaIdentificador(t *testing.T) {
	c, srv := nuevoCliente(t)
	dto := models.NovedadCreate{
		Titulo:      "Aviso",
		Descripcion: "Texto",
		FechaInicio: dia(2024, 11, 1),
		FechaFin:    dia(2024, 11, 2),
		IsActive:    true,
		Imagen:      imagen("aviso.png"),
	}

	srv.JSON(http.MethodPost, "/novedades/create-from-dto", http.StatusOK, map[string]any{"noveId": "12", "noveTitulo": "Aviso"})
	out, err := c.Novedades().CreateFromDTO(context.Background(), dto)
	require.NoError(t, err)
	assert.Equal(t, 12, out.ID.Int())

	form, err := srv.Last(t).Multipart()
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, form.Value["noveIsActive"])
	assert.Nil(t, form.Value["noveEstado"])

	srv.JSON(http.MethodPost, "/novedades/create-from-dto", http.StatusOK, map[string]any{})
	_, err = c.Novedades().CreateFromDTO(context.Background(), dto)
	require.Error(t, err)
	assert.True(t, helpers.IsDomainError(err))
	assert.Equal(t, mensajeRechazo, err.Error())
}

func TestPromocionDelete(t *testing.T) {
	c, srv := nuevoCliente(t)

	srv.JSON(http.MethodDelete, "/promocion/delete/{id}", http.StatusOK, map[string]any{"success": true})
	require.NoError(t, c.Promociones().Delete(context.Background(), 3))

	srv.Text(http.MethodDelete, "/promocion/delete/{id}", http.StatusConflict, "La promoción tiene solicitudes")
	err := c.Promociones().Delete(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, "La promoción tiene solicitudes", err.Error())

	srv.JSON(http.MethodDelete, "/promocion/delete/{id}", http.StatusBadRequest, map[string]any{"mensaje": "No existe"})
	err = c.Promociones().Delete(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, "No existe", err.Error())

	srv.Text(http.MethodDelete, "/promocion/delete/{id}", http.StatusNoContent, "")
	err = c.Promociones().Delete(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, helpers.IsHTTPError(err, http.StatusNoContent))
}

func TestPromocionCreate_Campos(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPost, "/promocion/create", http.StatusOK, requestresponse.NewSuccess("", map[string]any{"promId": 4}))

	out, err := c.Promociones().Create(context.Background(), models.PromocionCreate{
		Nombre:      "2x1",
		Monto:       1500.5,
		Descripcion: "Dos por uno",
		FechaInicio: dia(2024, 10, 10),
		FechaFin:    dia(2024, 10, 20),
		HoraInicio:  "10:00:59",
		HoraFin:     "22:00",
		Terminos:    "Aplican",
		Imagen:      imagen("promo.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, out.ID.Int())

	form, err := srv.Last(t).Multipart()
	require.NoError(t, err)
	assert.Equal(t, []string{"1500.5"}, form.Value["promMonto"])
	assert.Equal(t, []string{"2024-10-10"}, form.Value["promFechaInicio"])
	assert.Equal(t, []string{"10:00"}, form.Value["promHoraInicio"])
	assert.Equal(t, []string{"false"}, form.Value["promIsActive"])
	require.Len(t, form.File["promImagen"], 1)
}

func TestUsuarioCreate_ValidacionNoLlegaALaRed(t *testing.T) {
	c, srv := nuevoCliente(t)

	_, err := c.Usuarios().Create(context.Background(), models.UsuarioCreate{
		Username: "beto", Nombre: "Beto", Apellido: "Soto", Correo: "beto@wanda.cl",
		Rol: models.RolTrabajador, Password: "debil", Confirmacion: "debil",
	})
	require.Error(t, err)
	assert.True(t, helpers.IsValidationError(err))
	assert.Empty(t, srv.Requests())
}

func TestResetPassword_SoloEnviaPassword(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPut, "/usuario/reset-password/{id}", http.StatusOK, map[string]any{"success": true})

	require.NoError(t, c.Usuarios().ResetPassword(context.Background(), 3, models.ResetPassword{
		Password: "Nueva123!", Confirmacion: "Nueva123!",
	}))

	var body map[string]any
	require.NoError(t, srv.Last(t).JSON(&body))
	assert.Equal(t, map[string]any{"password": "Nueva123!"}, body)
}

func TestCatalogos_NoRechazada(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodGet, "/parametros/find-all", http.StatusOK, []map[string]any{
		{"paraId": 1, "paraNombre": "IVA", "paraValor": "19", "paraEstado": models.EstadoActivo},
	})
	srv.JSON(http.MethodPost, "/preguntas-frecuentes/create-from-dto", http.StatusOK, requestresponse.NewError("Pregunta duplicada"))

	params, err := c.Parametros().GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "IVA", params[0].Nombre)

	_, err = c.Preguntas().Create(context.Background(), models.PreguntaForm{
		Pregunta: "¿Cómo participo?", Respuesta: "Inscribiéndote.", Estado: models.EstadoActivo,
	})
	require.Error(t, err)
	assert.Equal(t, "Pregunta duplicada", err.Error())
}

func TestConcursoUpdate_TextoPlanoEsExito(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.Text(http.MethodPut, "/concurso/update-with-image/{id}", http.StatusOK, "Concurso actualizado")

	out, err := c.Concursos().UpdateWithImage(context.Background(), 4, models.ConcursoUpdate{
		Nombre: "Gran Concurso", FechaPropuesta: dia(2024, 9, 25), AnfitrionID: 2, WC: 50,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Zero(t, out.ID.Int())
}

func TestConcursos_SoloAcepta200y201(t *testing.T) {
	c, srv := nuevoCliente(t)

	srv.Text(http.MethodDelete, "/concurso/delete/{id}", http.StatusNoContent, "")
	err := c.Concursos().Delete(context.Background(), 4)
	require.Error(t, err)
	assert.True(t, helpers.IsHTTPError(err, http.StatusNoContent))

	srv.JSON(http.MethodDelete, "/concurso/delete/{id}", http.StatusAccepted, map[string]any{"success": true})
	err = c.Concursos().Delete(context.Background(), 4)
	assert.True(t, helpers.IsHTTPError(err, http.StatusAccepted))

	srv.JSON(http.MethodDelete, "/concurso/delete/{id}", http.StatusCreated, map[string]any{"success": false})
	assert.NoError(t, c.Concursos().Delete(context.Background(), 4))
}

func TestListados_SobreSinData(t *testing.T) {
	c, srv := nuevoCliente(t)

	srv.JSON(http.MethodGet, "/usuario/find-all", http.StatusOK, map[string]any{"success": true, "data": nil})
	usuarios, err := c.Usuarios().FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, usuarios)

	srv.JSON(http.MethodGet, "/usuario/find-all", http.StatusOK, map[string]any{"success": true, "message": "Sin usuarios"})
	usuarios, err = c.Usuarios().FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, usuarios)
}

func TestSponsorCreate_DataTextual(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.JSON(http.MethodPost, "/sponsor/create", http.StatusOK, map[string]any{"success": true, "data": "Sponsor creado"})

	out, err := c.Sponsors().CreateFromDTO(context.Background(), models.SponsorCreate{
		Nombre:      "Acme",
		Descripcion: "Patrocinador oficial",
		Link:        "https://acme.cl",
		FechaInicio: dia(2024, 1, 1),
		FechaFin:    dia(2024, 3, 1),
		Imagen:      imagen("logo.png"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Zero(t, out.ID.Int())
}

func TestNovedadDelete_TextoPlano(t *testing.T) {
	c, srv := nuevoCliente(t)
	srv.Text(http.MethodDelete, "/novedades/delete/{id}", http.StatusOK, "Novedad eliminada")

	res := c.Novedades().Delete(context.Background(), 5)
	assert.True(t, res.Success)
	assert.Equal(t, "Novedad eliminada", res.Response)
	assert.Empty(t, res.Message)
}
