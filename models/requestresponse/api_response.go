package requestresponse

import (
	"bytes"
	"encoding/json"
	"strings"
)

// APIResponse es el sobre que el backend de Wanda usa en la mayoría de endpoints.
// Success es puntero para distinguir "ausente" de "false".
type APIResponse struct {
	Success     *bool           `json:"success,omitempty"`
	Message     string          `json:"message,omitempty"`
	MensajeText string          `json:"mensaje,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// Mensaje prioriza `mensaje` sobre `message`.
func (r APIResponse) Mensaje() string {
	if m := strings.TrimSpace(r.MensajeText); m != "" {
		return m
	}
	return strings.TrimSpace(r.Message)
}

// IsSuccess indica si el backend envió success:true.
func (r APIResponse) IsSuccess() bool {
	return r.Success != nil && *r.Success
}

// IsRejected indica si el backend envió success:false explícito.
func (r APIResponse) IsRejected() bool {
	return r.Success != nil && !*r.Success
}

// HasData indica si el sobre trae un campo data no nulo.
func (r APIResponse) HasData() bool {
	trimmed := bytes.TrimSpace(r.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// NewSuccess construye un sobre exitoso; lo usan el backend de pruebas y los tests.
func NewSuccess(message string, data any) map[string]any {
	if message == "" {
		message = "OK"
	}
	out := map[string]any{"success": true, "message": message}
	if data != nil {
		out["data"] = data
	}
	return out
}

// NewError construye un sobre de error con la clave `mensaje`.
func NewError(mensaje string) map[string]any {
	if mensaje == "" {
		mensaje = "Error"
	}
	return map[string]any{"success": false, "mensaje": mensaje}
}
