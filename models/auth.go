package models

import "encoding/json"

// LoginRequest son las credenciales del back-office.
type LoginRequest struct {
	Correo   string `json:"correo" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse es la respuesta de /auth/login-backoffice.
// El perfil llega en `usuario` o, para cuentas de suscriptor, en `suscriptor`.
type LoginResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Mensaje      string          `json:"mensaje,omitempty"`
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	Usuario      json.RawMessage `json:"usuario,omitempty"`
	Suscriptor   json.RawMessage `json:"suscriptor,omitempty"`
}

// Perfil devuelve el bloque de perfil presente en la respuesta.
func (r LoginResponse) Perfil() json.RawMessage {
	if len(r.Usuario) > 0 && string(r.Usuario) != "null" {
		return r.Usuario
	}
	if len(r.Suscriptor) > 0 && string(r.Suscriptor) != "null" {
		return r.Suscriptor
	}
	return nil
}
