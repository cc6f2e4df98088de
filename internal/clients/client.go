// Package clients es la fachada REST del back-office de Wanda.
// Cada recurso expone un cliente tipado; todos comparten la configuración y la sesión.
package clients

import (
	"github.com/wanda/backoffice_admin/internal/session"
	rootservices "github.com/wanda/backoffice_admin/services"
)

// Client agrupa los clientes por recurso. Es seguro para uso concurrente.
type Client struct {
	cfg   rootservices.Config
	store *session.Store
}

// New crea la fachada. Un store nil equivale a una sesión vacía.
func New(cfg rootservices.Config, store *session.Store) *Client {
	if store == nil {
		store = session.New(cfg, nil)
	}
	return &Client{cfg: cfg, store: store}
}

// Session devuelve el store de sesión usado para las cabeceras.
func (c *Client) Session() *session.Store { return c.store }

func (c *Client) Auth() *AuthClient               { return &AuthClient{c: c} }
func (c *Client) Usuarios() *UsuariosClient       { return &UsuariosClient{c: c} }
func (c *Client) Anfitriones() *AnfitrionesClient { return &AnfitrionesClient{c: c} }
func (c *Client) Concursos() *ConcursosClient     { return &ConcursosClient{c: c} }
func (c *Client) Promociones() *PromocionesClient { return &PromocionesClient{c: c} }
func (c *Client) Novedades() *NovedadesClient     { return &NovedadesClient{c: c} }
func (c *Client) Sponsors() *SponsorsClient       { return &SponsorsClient{c: c} }
func (c *Client) Parametros() *ParametrosClient   { return &ParametrosClient{c: c} }
func (c *Client) Preguntas() *PreguntasClient     { return &PreguntasClient{c: c} }
func (c *Client) Paginas() *PaginasClient         { return &PaginasClient{c: c} }
