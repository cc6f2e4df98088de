package clients

import (
	"context"
	"net/http"

	"github.com/wanda/backoffice_admin/models"
)

// UsuariosClient administra las cuentas del back-office.
type UsuariosClient struct {
	c *Client
}

// FindAll lista todos los usuarios.
func (u *UsuariosClient) FindAll(ctx context.Context) ([]models.UsuarioAdmin, error) {
	var out []models.UsuarioAdmin
	err := u.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"usuario", "find-all"},
		politica: PoliticaNoRechazada,
	}, &out)
	return out, err
}

// Create da de alta un usuario.
func (u *UsuariosClient) Create(ctx context.Context, dto models.UsuarioCreate) (*models.UsuarioAdmin, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	var out models.UsuarioAdmin
	if err := u.c.callInto(ctx, llamada{
		metodo:   http.MethodPost,
		ruta:     []string{"usuario", "create"},
		json:     dto,
		politica: PoliticaFlagSuccess,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifica los datos de un usuario; success:false se reporta con el mensaje del backend.
func (u *UsuariosClient) Update(ctx context.Context, id int, dto models.UsuarioUpdate) (*models.UsuarioAdmin, error) {
	if err := validarID(id); err != nil {
		return nil, err
	}
	if err := validar(dto); err != nil {
		return nil, err
	}
	var out models.UsuarioAdmin
	if err := u.c.callInto(ctx, llamada{
		metodo:   http.MethodPut,
		ruta:     []string{"usuario", "update", itoa(id)},
		json:     dto,
		politica: PoliticaFlagSuccess,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un usuario.
func (u *UsuariosClient) Delete(ctx context.Context, id int) error {
	if err := validarID(id); err != nil {
		return err
	}
	_, err := u.c.call(ctx, llamada{
		metodo:   http.MethodDelete,
		ruta:     []string{"usuario", "delete", itoa(id)},
		politica: PoliticaFlagSuccess,
	})
	return err
}

// ResetPassword fija una nueva contraseña. Solo viaja el campo password.
func (u *UsuariosClient) ResetPassword(ctx context.Context, id int, dto models.ResetPassword) error {
	if err := validarID(id); err != nil {
		return err
	}
	if err := validar(dto); err != nil {
		return err
	}
	_, err := u.c.call(ctx, llamada{
		metodo:   http.MethodPut,
		ruta:     []string{"usuario", "reset-password", itoa(id)},
		json:     dto,
		politica: PoliticaFlagSuccess,
	})
	return err
}

// AnfitrionesClient consulta los usuarios que pueden conducir concursos.
type AnfitrionesClient struct {
	c *Client
}

// GetActivos lista los anfitriones activos.
func (a *AnfitrionesClient) GetActivos(ctx context.Context) ([]models.Anfitrion, error) {
	var out []models.Anfitrion
	err := a.c.callInto(ctx, llamada{
		metodo:   http.MethodGet,
		ruta:     []string{"usuario", "anfitriones-activos"},
		politica: PoliticaNoRechazada,
	}, &out)
	return out, err
}
