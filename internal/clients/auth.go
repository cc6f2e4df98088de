package clients

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/beego/beego/v2/core/logs"

	"github.com/wanda/backoffice_admin/helpers"
	"github.com/wanda/backoffice_admin/models"
)

// AuthClient maneja el inicio y cierre de sesión del back-office.
type AuthClient struct {
	c *Client
}

// Login autentica contra /auth/login-backoffice y persiste tokens y perfil.
// Una respuesta 2xx sin success:true o sin token es un rechazo.
func (a *AuthClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := validar(req); err != nil {
		return nil, err
	}
	resp, err := a.c.call(ctx, llamada{
		metodo:   http.MethodPost,
		ruta:     []string{"auth", "login-backoffice"},
		json:     req,
		politica: PoliticaFlagSuccess,
	})
	if err != nil {
		return nil, err
	}

	var out models.LoginResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, helpers.NewDomainError(resp.Status, "La respuesta de login no incluye token", string(resp.Body))
	}

	store := a.c.store
	if err := store.SaveTokens(out.Token, out.RefreshToken); err != nil {
		return nil, err
	}
	if perfil := out.Perfil(); perfil != nil {
		if err := store.SaveUserData(perfil); err != nil {
			logs.Warn("login: no se pudo guardar el perfil: %v", err)
		}
	}
	logs.Info("sesión iniciada para %s", req.Correo)
	return &out, nil
}

// Logout borra la sesión local. No llama al backend.
func (a *AuthClient) Logout() error {
	return a.c.store.ClearAuth()
}

// Perfil devuelve el usuario guardado al iniciar sesión.
func (a *AuthClient) Perfil() (*models.UsuarioAdmin, error) {
	var u models.UsuarioAdmin
	if err := a.c.store.UserData(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
