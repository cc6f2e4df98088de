package validation

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/models"
)

func registrarReglasDeFormulario(v *validator.Validate) {
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.ConcursoCreate)
		fechaRequerida(sl, f.FechaPropuesta, "concFechaPropuesta", "FechaPropuesta")
		imagenRequerida(sl, f.Imagen, "concImagen")
		imagenMaxima(sl, f.Imagen, "concImagen", MaxImagenConcurso)
	}, models.ConcursoCreate{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.ConcursoUpdate)
		fechaRequerida(sl, f.FechaPropuesta, "concFechaPropuesta", "FechaPropuesta")
		imagenMaxima(sl, f.Imagen, "concImagen", MaxImagenConcurso)
	}, models.ConcursoUpdate{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.PromocionCreate)
		ini := fechaRequerida(sl, f.FechaInicio, "promFechaInicio", "FechaInicio")
		fin := fechaRequerida(sl, f.FechaFin, "promFechaFin", "FechaFin")
		if ini && fin && helpers.CreateLocalDate(f.FechaFin) < helpers.CreateLocalDate(f.FechaInicio) {
			sl.ReportError(f.FechaFin, "promFechaFin", "FechaFin", "fechafin", "")
		}
		imagenRequerida(sl, f.Imagen, "promImagen")
		imagenMaxima(sl, f.Imagen, "promImagen", MaxImagenPromocion)
	}, models.PromocionCreate{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.NovedadCreate)
		periodo(sl, f.FechaInicio, f.HoraInicio, f.FechaFin, f.HoraFin, "noveFechaInicio", "noveFechaFin")
		imagenRequerida(sl, f.Imagen, "noveImagen")
		imagenMaxima(sl, f.Imagen, "noveImagen", MaxImagenNovedad)
	}, models.NovedadCreate{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.NovedadUpdate)
		periodo(sl, f.FechaInicio, f.HoraInicio, f.FechaFin, f.HoraFin, "noveFechaInicio", "noveFechaFin")
		imagenMaxima(sl, f.Imagen, "noveImagen", MaxImagenNovedad)
	}, models.NovedadUpdate{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.SponsorCreate)
		periodo(sl, f.FechaInicio, f.HoraInicio, f.FechaFin, f.HoraFin, "sponFechaInicio", "sponFechaFin")
		imagenRequerida(sl, f.Imagen, "sponImagen")
		imagenMaxima(sl, f.Imagen, "sponImagen", MaxImagenSponsor)
	}, models.SponsorCreate{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.SponsorUpdate)
		periodo(sl, f.FechaInicio, f.HoraInicio, f.FechaFin, f.HoraFin, "sponFechaInicio", "sponFechaFin")
		imagenMaxima(sl, f.Imagen, "sponImagen", MaxImagenSponsor)
	}, models.SponsorUpdate{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(models.PaginaEstaticaForm)
		if len(f.Imagenes) > models.MaxImagenesPagina {
			sl.ReportError(f.Imagenes, "pagiImagenes", "Imagenes", "maximagenes", strconv.Itoa(models.MaxImagenesPagina))
		}
		for _, img := range f.Imagenes {
			imagenMaxima(sl, img, "pagiImagenes", MaxImagenPagina)
		}
	}, models.PaginaEstaticaForm{})
}

func fechaRequerida(sl validator.StructLevel, t time.Time, campo, structField string) bool {
	if t.IsZero() {
		sl.ReportError(t, campo, structField, "required", "")
		return false
	}
	return true
}

// periodo exige ambas fechas y que el fin no sea anterior al inicio, considerando la hora si viene.
func periodo(sl validator.StructLevel, fIni time.Time, hIni string, fFin time.Time, hFin string, campoIni, campoFin string) {
	okIni := fechaRequerida(sl, fIni, campoIni, "FechaInicio")
	okFin := fechaRequerida(sl, fFin, campoFin, "FechaFin")
	if !okIni || !okFin {
		return
	}
	ini, errIni := helpers.CreateTimestamp(fIni, hIni)
	fin, errFin := helpers.CreateTimestamp(fFin, hFin)
	if errIni != nil || errFin != nil {
		return
	}
	if fin < ini {
		sl.ReportError(fFin, campoFin, "FechaFin", "fechafin", "")
	}
}

func imagenRequerida(sl validator.StructLevel, a *models.Archivo, campo string) {
	if a.Vacio() {
		sl.ReportError(a, campo, "Imagen", "imagen", "")
	}
}

func imagenMaxima(sl validator.StructLevel, a *models.Archivo, campo string, max int) {
	if a.Size() > max {
		sl.ReportError(a, campo, "Imagen", "tamano", strconv.Itoa(max/mb))
	}
}
