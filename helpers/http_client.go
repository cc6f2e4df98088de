// helpers/http_client.go
package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/beego/beego/v2/client/httplib"
	"github.com/beego/beego/v2/core/logs"

	"github.com/wanda/backoffice_admin/models/requestresponse"
)

// Request describe una única ida y vuelta contra el backend.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
	Timeout time.Duration
}

// Response conserva el status y el cuerpo crudo para que cada endpoint aplique su propia política.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK indica si el status está en el rango 2xx.
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status <= 299
}

// Envelope intenta leer el cuerpo como sobre estándar del backend.
// Devuelve false si el cuerpo no es un objeto JSON.
func (r *Response) Envelope() (requestresponse.APIResponse, bool) {
	var env requestresponse.APIResponse
	if r == nil || len(r.Body) == 0 {
		return env, false
	}
	trimmed := strings.TrimSpace(string(r.Body))
	if !strings.HasPrefix(trimmed, "{") {
		return env, false
	}
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return env, false
	}
	return env, true
}

// Do ejecuta la petición. Los fallos de transporte se devuelven tal cual, sin envolver.
// No hay reintentos: cada llamada es exactamente un intento.
func Do(ctx context.Context, r Request) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := httplib.NewBeegoRequestWithCtx(ctx, r.URL, r.Method)
	req.SetEnableCookie(true)
	req.Retries(0)
	if r.Timeout > 0 {
		req.SetTimeout(r.Timeout, r.Timeout)
	}
	for k, v := range r.Headers {
		req.Header(k, v)
	}
	if r.Body != nil {
		req.Body(r.Body)
	}

	started := time.Now()
	resp, err := req.DoRequestWithCtx(ctx)
	if err != nil {
		logs.Debug("%s %s -> error de transporte: %v", r.Method, r.URL, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	logs.Debug("%s %s -> %d (%s)", r.Method, r.URL, resp.StatusCode, time.Since(started).Round(time.Millisecond))

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   body,
	}, nil
}

// GenericHTTPMessage es el mensaje usado cuando el cuerpo de error no aporta uno propio.
func GenericHTTPMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}

// ErrorFromResponse traduce una respuesta no exitosa a AppError.
// Toma `mensaje` o `message` del cuerpo JSON; si no hay, usa el mensaje genérico con el status.
// Con allowText, un cuerpo de texto plano no vacío se usa como mensaje.
func ErrorFromResponse(resp *Response, allowText bool) *AppError {
	body := strings.TrimSpace(string(resp.Body))
	if env, ok := resp.Envelope(); ok {
		if msg := env.Mensaje(); msg != "" {
			return NewHTTPError(resp.Status, msg, body)
		}
	} else if allowText && body != "" && !strings.HasPrefix(body, "{") && !strings.HasPrefix(body, "[") {
		return NewHTTPError(resp.Status, body, body)
	}
	return NewHTTPError(resp.Status, GenericHTTPMessage(resp.Status), body)
}

// DecodeData decodifica la respuesta en out, desenvolviendo `data` cuando el backend usa el sobre estándar.
// Se llama solo con respuestas ya aceptadas por la política del endpoint: un cuerpo que no es JSON,
// un sobre sin data o una forma que no calza con out dejan out en cero (o parcial) sin error.
func DecodeData(resp *Response, out any) error {
	if out == nil || resp == nil {
		return nil
	}
	payload := bytes.TrimSpace(resp.Body)
	if len(payload) == 0 {
		return nil
	}
	if !json.Valid(payload) {
		logs.Debug("respuesta %d sin JSON, se ignora el cuerpo", resp.Status)
		return nil
	}
	if env, ok := resp.Envelope(); ok && env.HasData() {
		payload = bytes.TrimSpace(env.Data)
	}
	if !formaCompatible(payload, out) {
		logs.Debug("respuesta %d con forma %q incompatible con %T, se ignora", resp.Status, payload[:1], out)
		return nil
	}
	err := json.Unmarshal(payload, out)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		logs.Debug("respuesta %d decodificada parcialmente: %v", resp.Status, err)
		return nil
	}
	return err
}

// formaCompatible compara el primer carácter del JSON con el tipo destino:
// structs y maps esperan un objeto, slices y arrays una lista.
func formaCompatible(payload []byte, out any) bool {
	t := reflect.TypeOf(out)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return payload[0] == '{'
	case reflect.Slice, reflect.Array:
		return payload[0] == '['
	default:
		return true
	}
}
