// Package backendtest levanta un backend falso de Wanda para las pruebas de la fachada.
// Registra cada petición recibida para que los tests inspeccionen cabeceras y cuerpos.
package backendtest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	rootservices "github.com/wanda/backoffice_admin/services"
)

// Prefix es la ruta base que usa la configuración de pruebas.
const Prefix = "/api"

// Recorded es una petición tal como llegó al backend falso.
type Recorded struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// ContentType devuelve el media type sin parámetros.
func (r Recorded) ContentType() string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// Multipart decodifica el cuerpo multipart de la petición.
func (r Recorded) Multipart() (*multipart.Form, error) {
	mt, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	if mt != "multipart/form-data" {
		return nil, errors.New("la petición no es multipart: " + mt)
	}
	return multipart.NewReader(bytes.NewReader(r.Body), params["boundary"]).ReadForm(64 << 20)
}

// JSON decodifica el cuerpo JSON de la petición.
func (r Recorded) JSON(out any) error {
	return json.Unmarshal(r.Body, out)
}

// Server es un httptest.Server enrutado con chi.
type Server struct {
	*httptest.Server
	router chi.Router

	mu       sync.Mutex
	requests []Recorded
	handlers map[string]http.HandlerFunc
}

// New levanta el servidor y lo cierra al terminar el test.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{handlers: map[string]http.HandlerFunc{}}
	r := chi.NewRouter()
	r.Use(s.record)
	s.router = r
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Config devuelve una configuración apuntando a este servidor con sesión en memoria.
func (s *Server) Config() rootservices.Config {
	cfg := rootservices.DefaultConfig()
	cfg.APIBaseURL = s.URL + Prefix
	cfg.StorageDriver = rootservices.StorageMemory
	return cfg
}

// Handle registra un handler bajo el prefijo /api.
// Registrar de nuevo el mismo método y patrón reemplaza la respuesta anterior.
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	key := method + " " + pattern
	s.mu.Lock()
	_, existe := s.handlers[key]
	s.handlers[key] = h
	s.mu.Unlock()
	if existe {
		return
	}
	s.router.Method(method, Prefix+pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		actual := s.handlers[key]
		s.mu.Unlock()
		actual(w, r)
	}))
}

// JSON registra una respuesta JSON fija.
func (s *Server) JSON(method, pattern string, status int, body any) {
	s.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Text registra una respuesta de texto plano fija.
func (s *Server) Text(method, pattern string, status int, body string) {
	s.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Requests devuelve una copia de las peticiones recibidas.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last devuelve la última petición recibida; falla el test si no hubo ninguna.
func (s *Server) Last(t testing.TB) Recorded {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("el backend no recibió peticiones")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// WriteJSON escribe body como JSON con el status indicado.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
