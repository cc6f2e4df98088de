package main

import (
	"context"

	"github.com/spf13/cobra"
)

// Constructores comunes: cada sub-comando llama exactamente una operación de la fachada.

func (a *app) grupo(use, short string, hijos ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.AddCommand(hijos...)
	return cmd
}

func (a *app) listar(use, short string, fn func(ctx context.Context) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := fn(cmd.Context())
			if err != nil {
				return explicar(err)
			}
			return a.imprimir(v)
		},
	}
}

func (a *app) obtener(short string, fn func(ctx context.Context, id int) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v, err := fn(cmd.Context(), id)
			if err != nil {
				return explicar(err)
			}
			return a.imprimir(v)
		},
	}
}

func (a *app) eliminar(short string, fn func(ctx context.Context, id int) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := fn(cmd.Context(), id); err != nil {
				return explicar(err)
			}
			return a.ok("Eliminado")
		},
	}
}

// formulario arma un comando de alta (sin id) o edición (con id) que lee el payload de -f.
// imagenes indica cuántas rutas --imagen acepta: 0 ninguna, 1 una, otro valor varias.
func (a *app) formulario(use, short string, conID bool, imagenes int, fn func(ctx context.Context, id int, path string, imgs []string) (any, error)) *cobra.Command {
	var (
		path  string
		imgs  []string
		unica string
	)
	var posArgs cobra.PositionalArgs = cobra.NoArgs
	if conID {
		posArgs = cobra.ExactArgs(1)
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  posArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := 0
			if conID {
				v, err := parseID(args[0])
				if err != nil {
					return err
				}
				id = v
			}
			if unica != "" {
				imgs = []string{unica}
			}
			v, err := fn(cmd.Context(), id, path, imgs)
			if err != nil {
				return explicar(err)
			}
			return a.imprimir(v)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "archivo YAML o JSON con los datos")
	switch imagenes {
	case 0:
	case 1:
		cmd.Flags().StringVar(&unica, "imagen", "", "ruta de la imagen")
	default:
		cmd.Flags().StringArrayVar(&imgs, "imagen", nil, "ruta de imagen (repetible)")
	}
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
