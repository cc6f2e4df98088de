package clients

import (
	"context"
	"net/http"

	ihelpers "github.com/wanda/backoffice_admin/internal/helpers"
	"github.com/wanda/backoffice_admin/models"
)

// ParametrosClient administra los parámetros de la plataforma.
type ParametrosClient struct {
	c *Client
}

func (p *ParametrosClient) GetAll(ctx context.Context) ([]models.Parametro, error) {
	var out []models.Parametro
	err := p.c.callInto(ctx, simple(http.MethodGet, nil, "parametros", "find-all"), &out)
	return out, err
}

func (p *ParametrosClient) Create(ctx context.Context, form models.ParametroForm) (*models.Parametro, error) {
	if err := validar(form); err != nil {
		return nil, err
	}
	var out models.Parametro
	if err := p.c.callInto(ctx, simple(http.MethodPost, form, "parametros", "create-from-dto"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ParametrosClient) Update(ctx context.Context, id int, form models.ParametroForm) (*models.Parametro, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	if err := validar(form); err != nil {
		return nil, err
	}
	var out models.Parametro
	if err := p.c.callInto(ctx, simple(http.MethodPut, form, "parametros", "update-from-dto", itoa(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ParametrosClient) Delete(ctx context.Context, id int) error {
	if err := validarID(id); err != nil {
		return err
	}
	_, err := p.c.call(ctx, simple(http.MethodDelete, nil, "parametros", "delete", itoa(id)))
	return err
}

// PreguntasClient administra las preguntas frecuentes.
type PreguntasClient struct {
	c *Client
}

func (p *PreguntasClient) GetAll(ctx context.Context) ([]models.Pregunta, error) {
	var out []models.Pregunta
	err := p.c.callInto(ctx, simple(http.MethodGet, nil, "preguntas-frecuentes", "find-all"), &out)
	return out, err
}

func (p *PreguntasClient) GetByID(ctx context.Context, id int) (*models.Pregunta, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	var out models.Pregunta
	if err := p.c.callInto(ctx, simple(http.MethodGet, nil, "preguntas-frecuentes", "find-by-id", itoa(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PreguntasClient) Create(ctx context.Context, form models.PreguntaForm) (*models.Pregunta, error) {
	if err := validar(form); err != nil {
		return nil, err
	}
	var out models.Pregunta
	if err := p.c.callInto(ctx, simple(http.MethodPost, form, "preguntas-frecuentes", "create-from-dto"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PreguntasClient) Update(ctx context.Context, id int, form models.PreguntaForm) (*models.Pregunta, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	if err := validar(form); err != nil {
		return nil, err
	}
	var out models.Pregunta
	if err := p.c.callInto(ctx, simple(http.MethodPut, form, "preguntas-frecuentes", "update-from-dto", itoa(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PreguntasClient) Delete(ctx context.Context, id int) error {
	if err := validarID(id); err != nil {
		return err
	}
	_, err := p.c.call(ctx, simple(http.MethodDelete, nil, "preguntas-frecuentes", "delete", itoa(id)))
	return err
}

// PaginasClient administra las páginas estáticas; las imágenes viajan con el nombre de campo repetido.
type PaginasClient struct {
	c *Client
}

func (p *PaginasClient) GetAll(ctx context.Context) ([]models.PaginaEstatica, error) {
	var out []models.PaginaEstatica
	err := p.c.callInto(ctx, simple(http.MethodGet, nil, "paginas-estaticas", "find-all"), &out)
	return out, err
}

func (p *PaginasClient) GetByID(ctx context.Context, id int) (*models.PaginaEstatica, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	var out models.PaginaEstatica
	if err := p.c.callInto(ctx, simple(http.MethodGet, nil, "paginas-estaticas", "find-by-id", itoa(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PaginasClient) Create(ctx context.Context, form models.PaginaEstaticaForm) (*models.PaginaEstatica, error) {
	return p.guardar(ctx, http.MethodPost, form, "create-from-dto")
}

func (p *PaginasClient) Update(ctx context.Context, id int, form models.PaginaEstaticaForm) (*models.PaginaEstatica, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	return p.guardar(ctx, http.MethodPut, form, "update-from-dto", itoa(id))
}

func (p *PaginasClient) Delete(ctx context.Context, id int) error {
	if err := validarID(id); err != nil {
		return err
	}
	_, err := p.c.call(ctx, simple(http.MethodDelete, nil, "paginas-estaticas", "delete", itoa(id)))
	return err
}

func (p *PaginasClient) guardar(ctx context.Context, metodo string, form models.PaginaEstaticaForm, ruta ...string) (*models.PaginaEstatica, error) {
	if err := validar(form); err != nil {
		return nil, err
	}
	l := llamada{
		metodo: metodo,
		ruta:   append([]string{"paginas-estaticas"}, ruta...),
		form: ihelpers.NewFormBuilder().
			Field("pagiNombre", form.Nombre).
			Field("pagiDescripcion", form.Descripcion).
			Field("pagiLink", form.Link).
			Files("pagiImagenes", form.Imagenes),
		politica: PoliticaNoRechazada,
	}
	var out models.PaginaEstatica
	if err := p.c.callInto(ctx, l, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// simple arma una llamada JSON con la política de no rechazo que comparten los catálogos.
func simple(metodo string, body any, ruta ...string) llamada {
	return llamada{
		metodo:   metodo,
		ruta:     ruta,
		json:     body,
		politica: PoliticaNoRechazada,
	}
}
