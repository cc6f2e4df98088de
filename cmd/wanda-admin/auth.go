package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wanda/backoffice_admin/internal/session"
	"github.com/wanda/backoffice_admin/models"
)

func (a *app) loginCmd() *cobra.Command {
	var correo, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión en el back-office",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if correo == "" {
				v, err := preguntar("Correo: ")
				if err != nil {
					return err
				}
				correo = v
			}
			if password == "" {
				v, err := preguntarPassword("Contraseña: ")
				if err != nil {
					return err
				}
				password = v
			}
			resp, err := a.client.Auth().Login(cmd.Context(), models.LoginRequest{Correo: correo, Password: password})
			if err != nil {
				return explicar(err)
			}
			msg := resp.Message
			if msg == "" {
				msg = "Sesión iniciada"
			}
			return a.ok(msg)
		},
	}
	cmd.Flags().StringVar(&correo, "correo", "", "correo del usuario")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (si se omite se pide por terminal)")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión local",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Auth().Logout(); err != nil {
				return err
			}
			return a.ok("Sesión cerrada")
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra el usuario de la sesión actual",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := a.client.Session()
			if !store.IsAuthenticated() {
				return errors.New("no hay sesión iniciada")
			}
			out := map[string]any{"autenticado": true}
			if perfil, err := a.client.Auth().Perfil(); err == nil {
				out["usuario"] = perfil
			} else if !errors.Is(err, session.ErrSinDatos) {
				return err
			}
			if exp, ok := store.ExpiresAt(); ok {
				out["expira"] = exp.Format(time.RFC3339)
				out["expirado"] = time.Now().After(exp)
			}
			return a.imprimir(out)
		},
	}
}

func preguntar(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func preguntarPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return preguntar(prompt)
	}
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
