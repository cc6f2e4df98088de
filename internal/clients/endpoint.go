package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/core/logs"
	"github.com/google/uuid"

	"github.com/wanda/backoffice_admin/helpers"
	ihelpers "github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/internal/validation"
	rootservices "github.com/wanda/backoffice_admin/services"
)

// Politica decide cuándo una respuesta cuenta como éxito. Cada endpoint declara la suya.
type Politica int

const (
	// PoliticaEstadoHTTP acepta 200 o 201, sin mirar el cuerpo.
	PoliticaEstadoHTTP Politica = iota + 1
	// PoliticaSoloOK exige exactamente 200.
	PoliticaSoloOK
	// PoliticaFlagSuccess exige 2xx y success:true.
	PoliticaFlagSuccess
	// PoliticaFlagOID exige 2xx y success:true o el identificador del recurso en la respuesta.
	PoliticaFlagOID
	// PoliticaNoRechazada exige 2xx y que success no sea false.
	PoliticaNoRechazada
)

const mensajeRechazo = "La operación no fue exitosa"

// llamada describe un endpoint concreto.
type llamada struct {
	metodo     string
	ruta       []string
	json       any
	form       *ihelpers.FormBuilder
	politica   Politica
	campoID    string
	textoError bool
}

// call ejecuta la llamada y aplica la política. Los fallos de transporte se propagan sin envolver.
func (c *Client) call(ctx context.Context, l llamada) (*helpers.Response, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	var (
		body    []byte
		headers map[string]string
	)
	switch {
	case l.form != nil:
		b, contentType, err := l.form.Build()
		if err != nil {
			return nil, err
		}
		body = b
		headers = c.store.AuthHeaders(false)
		headers["Content-Type"] = contentType
	case l.json != nil:
		b, err := json.Marshal(l.json)
		if err != nil {
			return nil, err
		}
		body = b
		headers = c.store.AuthHeaders(true)
	default:
		headers = c.store.AuthHeaders(true)
	}
	correlationID := uuid.NewString()
	headers["X-Correlation-Id"] = correlationID

	resp, err := helpers.Do(ctx, helpers.Request{
		Method:  l.metodo,
		URL:     rootservices.BuildURL(c.cfg.APIBaseURL, l.ruta...),
		Headers: headers,
		Body:    body,
		Timeout: c.cfg.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	if err := l.politica.evaluar(resp, l.campoID, l.textoError); err != nil {
		logs.Debug("[%s] %s %v rechazada: %v", correlationID, l.metodo, l.ruta, err)
		return nil, err
	}
	return resp, nil
}

// callInto ejecuta la llamada y decodifica el resultado en out, desenvolviendo `data` si existe.
func (c *Client) callInto(ctx context.Context, l llamada, out any) error {
	resp, err := c.call(ctx, l)
	if err != nil {
		return err
	}
	return helpers.DecodeData(resp, out)
}

// cuerpoCrudo devuelve el JSON decodificado (desenvolviendo data) o el texto tal cual.
func cuerpoCrudo(resp *helpers.Response) any {
	texto := strings.TrimSpace(string(resp.Body))
	if texto == "" {
		return nil
	}
	if !json.Valid([]byte(texto)) {
		return texto
	}
	var out any
	_ = helpers.DecodeData(resp, &out)
	return out
}

func (p Politica) evaluar(resp *helpers.Response, campoID string, allowText bool) error {
	switch p {
	case PoliticaSoloOK:
		if resp.Status != http.StatusOK {
			return helpers.ErrorFromResponse(resp, allowText)
		}
		return nil
	case PoliticaEstadoHTTP:
		if resp.Status != http.StatusOK && resp.Status != http.StatusCreated {
			return helpers.ErrorFromResponse(resp, allowText)
		}
		return nil
	}
	if !resp.OK() {
		return helpers.ErrorFromResponse(resp, allowText)
	}

	env, isEnvelope := resp.Envelope()
	switch p {
	case PoliticaFlagSuccess:
		if isEnvelope && env.IsSuccess() {
			return nil
		}
	case PoliticaFlagOID:
		if isEnvelope && env.IsSuccess() {
			return nil
		}
		if _, ok := extraerID(resp.Body, campoID); ok {
			return nil
		}
	case PoliticaNoRechazada:
		if !isEnvelope || !env.IsRejected() {
			return nil
		}
	default:
		return nil
	}

	msg := env.Mensaje()
	if msg == "" {
		msg = mensajeRechazo
	}
	return helpers.NewDomainError(resp.Status, msg, string(resp.Body))
}

func validar(dto any) error {
	if err := validation.Validate(dto); err != nil {
		return helpers.NewValidationError(err)
	}
	return nil
}

func validarID(id int) error {
	if id <= 0 {
		return helpers.NewValidationError(validation.Errors{{
			Campo:   "id",
			Regla:   "gt",
			Mensaje: "el identificador debe ser mayor que 0",
		}})
	}
	return nil
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
