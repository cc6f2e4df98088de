package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanda/backoffice_admin/internal/clients"
	"github.com/wanda/backoffice_admin/models"
)

func (a *app) usuariosCmd() *cobra.Command {
	return a.grupo("usuarios", "Cuentas del back-office",
		a.listar("list", "Lista los usuarios", func(ctx context.Context) (any, error) {
			return a.client.Usuarios().FindAll(ctx)
		}),
		a.formulario("create", "Crea un usuario", false, 0, func(ctx context.Context, _ int, path string, _ []string) (any, error) {
			var dto models.UsuarioCreate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			return a.client.Usuarios().Create(ctx, dto)
		}),
		a.formulario("update <id>", "Edita un usuario", true, 0, func(ctx context.Context, id int, path string, _ []string) (any, error) {
			var dto models.UsuarioUpdate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			return a.client.Usuarios().Update(ctx, id, dto)
		}),
		a.eliminar("Elimina un usuario", func(ctx context.Context, id int) error {
			return a.client.Usuarios().Delete(ctx, id)
		}),
		a.formulario("reset-password <id>", "Cambia la contraseña de un usuario", true, 0, func(ctx context.Context, id int, path string, _ []string) (any, error) {
			var dto models.ResetPassword
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			if err := a.client.Usuarios().ResetPassword(ctx, id, dto); err != nil {
				return nil, err
			}
			return map[string]any{"success": true, "message": "Contraseña actualizada"}, nil
		}),
	)
}

func (a *app) anfitrionesCmd() *cobra.Command {
	return a.grupo("anfitriones", "Anfitriones disponibles para concursos",
		a.listar("list", "Lista los anfitriones activos", func(ctx context.Context) (any, error) {
			return a.client.Anfitriones().GetActivos(ctx)
		}),
	)
}

func (a *app) concursosCmd() *cobra.Command {
	var activos bool
	list := a.listar("list", "Lista los concursos", func(ctx context.Context) (any, error) {
		lista, err := clients.NewConcursoLoader(a.client.Concursos()).Load(ctx, activos)
		if err != nil {
			return nil, err
		}
		for i := range lista {
			lista[i].Estado = lista[i].EstadoCalculado()
		}
		return lista, nil
	})
	list.Flags().BoolVar(&activos, "activos", false, "solo concursos activos")

	return a.grupo("concursos", "Concursos",
		list,
		a.obtener("Muestra un concurso", func(ctx context.Context, id int) (any, error) {
			c, err := a.client.Concursos().GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			c.Estado = c.EstadoCalculado()
			return c, nil
		}),
		a.formulario("create", "Crea un concurso con imagen", false, 1, func(ctx context.Context, _ int, path string, imgs []string) (any, error) {
			var dto models.ConcursoCreate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			img, err := primeraImagen(imgs)
			if err != nil {
				return nil, err
			}
			dto.Imagen = img
			return a.client.Concursos().CreateWithImage(ctx, dto)
		}),
		a.formulario("update <id>", "Edita un concurso", true, 1, func(ctx context.Context, id int, path string, imgs []string) (any, error) {
			var dto models.ConcursoUpdate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			img, err := primeraImagen(imgs)
			if err != nil {
				return nil, err
			}
			dto.Imagen = img
			return a.client.Concursos().UpdateWithImage(ctx, id, dto)
		}),
		a.eliminar("Elimina un concurso", func(ctx context.Context, id int) error {
			return a.client.Concursos().Delete(ctx, id)
		}),
	)
}

func (a *app) promocionesCmd() *cobra.Command {
	p := func() *clients.PromocionesClient { return a.client.Promociones() }
	return a.grupo("promociones", "Promociones",
		a.listar("list", "Lista las promociones", func(ctx context.Context) (any, error) {
			return p().FindAll(ctx)
		}),
		a.obtener("Muestra una promoción", func(ctx context.Context, id int) (any, error) {
			return p().FindByID(ctx, id)
		}),
		a.listar("actuales", "Promociones vigentes", func(ctx context.Context) (any, error) {
			return p().GetActuales(ctx)
		}),
		a.listar("solicitadas", "Promociones con solicitudes", func(ctx context.Context) (any, error) {
			return p().GetSolicitadas(ctx)
		}),
		a.listar("vencidas", "Promociones vencidas", func(ctx context.Context) (any, error) {
			return p().GetVencidas(ctx)
		}),
		a.formulario("create", "Crea una promoción con imagen", false, 1, func(ctx context.Context, _ int, path string, imgs []string) (any, error) {
			var dto models.PromocionCreate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			img, err := primeraImagen(imgs)
			if err != nil {
				return nil, err
			}
			dto.Imagen = img
			return p().Create(ctx, dto)
		}),
		a.eliminar("Elimina una promoción", func(ctx context.Context, id int) error {
			return p().Delete(ctx, id)
		}),
	)
}

func (a *app) novedadesCmd() *cobra.Command {
	var estado string
	list := a.listar("list", "Lista las novedades por estado", func(ctx context.Context) (any, error) {
		n := a.client.Novedades()
		switch estado {
		case "activas":
			return n.GetActivas(ctx)
		case "inactivas":
			return n.GetInactivas(ctx)
		case "borrador":
			return n.GetBorrador(ctx)
		default:
			return nil, fmt.Errorf("estado %q no soportado (activas|inactivas|borrador)", estado)
		}
	})
	list.Flags().StringVar(&estado, "estado", "activas", "activas|inactivas|borrador")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina una novedad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := a.client.Novedades().Delete(cmd.Context(), id)
			if err := a.imprimir(res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("no se pudo eliminar la novedad %d", id)
			}
			return nil
		},
	}

	return a.grupo("novedades", "Novedades",
		list,
		a.obtener("Muestra una novedad", func(ctx context.Context, id int) (any, error) {
			return a.client.Novedades().FindByID(ctx, id)
		}),
		a.formulario("create", "Crea una novedad con imagen", false, 1, func(ctx context.Context, _ int, path string, imgs []string) (any, error) {
			var dto models.NovedadCreate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			img, err := primeraImagen(imgs)
			if err != nil {
				return nil, err
			}
			dto.Imagen = img
			return a.client.Novedades().CreateFromDTO(ctx, dto)
		}),
		a.formulario("update <id>", "Edita una novedad", true, 1, func(ctx context.Context, id int, path string, imgs []string) (any, error) {
			var dto models.NovedadUpdate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			img, err := primeraImagen(imgs)
			if err != nil {
				return nil, err
			}
			dto.Imagen = img
			return a.client.Novedades().UpdateFromDTO(ctx, id, dto)
		}),
		del,
	)
}

func (a *app) sponsorsCmd() *cobra.Command {
	return a.grupo("sponsors", "Patrocinadores",
		a.listar("list", "Lista los sponsors", func(ctx context.Context) (any, error) {
			return a.client.Sponsors().GetAll(ctx)
		}),
		a.obtener("Muestra un sponsor", func(ctx context.Context, id int) (any, error) {
			return a.client.Sponsors().GetByID(ctx, id)
		}),
		a.formulario("create", "Crea un sponsor con imagen", false, 1, func(ctx context.Context, _ int, path string, imgs []string) (any, error) {
			var dto models.SponsorCreate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			img, err := primeraImagen(imgs)
			if err != nil {
				return nil, err
			}
			dto.Imagen = img
			return a.client.Sponsors().CreateFromDTO(ctx, dto)
		}),
		a.formulario("update <id>", "Edita un sponsor", true, 1, func(ctx context.Context, id int, path string, imgs []string) (any, error) {
			var dto models.SponsorUpdate
			if err := leerPayload(path, &dto); err != nil {
				return nil, err
			}
			img, err := primeraImagen(imgs)
			if err != nil {
				return nil, err
			}
			dto.ID = id
			dto.Imagen = img
			return a.client.Sponsors().Update(ctx, dto)
		}),
	)
}

func (a *app) parametrosCmd() *cobra.Command {
	return a.grupo("parametros", "Parámetros de la plataforma",
		a.listar("list", "Lista los parámetros", func(ctx context.Context) (any, error) {
			return a.client.Parametros().GetAll(ctx)
		}),
		a.formulario("create", "Crea un parámetro", false, 0, func(ctx context.Context, _ int, path string, _ []string) (any, error) {
			var form models.ParametroForm
			if err := leerPayload(path, &form); err != nil {
				return nil, err
			}
			return a.client.Parametros().Create(ctx, form)
		}),
		a.formulario("update <id>", "Edita un parámetro", true, 0, func(ctx context.Context, id int, path string, _ []string) (any, error) {
			var form models.ParametroForm
			if err := leerPayload(path, &form); err != nil {
				return nil, err
			}
			return a.client.Parametros().Update(ctx, id, form)
		}),
		a.eliminar("Elimina un parámetro", func(ctx context.Context, id int) error {
			return a.client.Parametros().Delete(ctx, id)
		}),
	)
}

func (a *app) preguntasCmd() *cobra.Command {
	return a.grupo("preguntas", "Preguntas frecuentes",
		a.listar("list", "Lista las preguntas", func(ctx context.Context) (any, error) {
			return a.client.Preguntas().GetAll(ctx)
		}),
		a.obtener("Muestra una pregunta", func(ctx context.Context, id int) (any, error) {
			return a.client.Preguntas().GetByID(ctx, id)
		}),
		a.formulario("create", "Crea una pregunta", false, 0, func(ctx context.Context, _ int, path string, _ []string) (any, error) {
			var form models.PreguntaForm
			if err := leerPayload(path, &form); err != nil {
				return nil, err
			}
			return a.client.Preguntas().Create(ctx, form)
		}),
		a.formulario("update <id>", "Edita una pregunta", true, 0, func(ctx context.Context, id int, path string, _ []string) (any, error) {
			var form models.PreguntaForm
			if err := leerPayload(path, &form); err != nil {
				return nil, err
			}
			return a.client.Preguntas().Update(ctx, id, form)
		}),
		a.eliminar("Elimina una pregunta", func(ctx context.Context, id int) error {
			return a.client.Preguntas().Delete(ctx, id)
		}),
	)
}

func (a *app) paginasCmd() *cobra.Command {
	guardar := func(ctx context.Context, id int, path string, imgs []string) (any, error) {
		var form models.PaginaEstaticaForm
		if err := leerPayload(path, &form); err != nil {
			return nil, err
		}
		archivos, err := leerImagenes(imgs)
		if err != nil {
			return nil, err
		}
		form.Imagenes = archivos
		if id == 0 {
			return a.client.Paginas().Create(ctx, form)
		}
		return a.client.Paginas().Update(ctx, id, form)
	}
	return a.grupo("paginas", "Páginas estáticas",
		a.listar("list", "Lista las páginas", func(ctx context.Context) (any, error) {
			return a.client.Paginas().GetAll(ctx)
		}),
		a.obtener("Muestra una página", func(ctx context.Context, id int) (any, error) {
			return a.client.Paginas().GetByID(ctx, id)
		}),
		a.formulario("create", "Crea una página", false, models.MaxImagenesPagina, guardar),
		a.formulario("update <id>", "Edita una página", true, models.MaxImagenesPagina, guardar),
		a.eliminar("Elimina una página", func(ctx context.Context, id int) error {
			return a.client.Paginas().Delete(ctx, id)
		}),
	)
}

func primeraImagen(paths []string) (*models.Archivo, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	return leerImagen(paths[0])
}
