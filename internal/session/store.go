package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wanda/backoffice_admin/services"
)

var (
	// ErrSinDatos indica que no hay perfil guardado.
	ErrSinDatos = errors.New("no hay datos de usuario en la sesión")
	// ErrSinToken indica que no hay token de acceso guardado.
	ErrSinToken = errors.New("no hay token de acceso en la sesión")
)

// Store guarda el token de acceso, el refresh token y el perfil del usuario.
// Un Store sin Storage se comporta como una sesión vacía de solo lectura.
type Store struct {
	storage         Storage
	tokenKey        string
	refreshTokenKey string
	userDataKey     string
}

// New crea el store con los nombres de clave definidos en la configuración.
func New(cfg services.Config, storage Storage) *Store {
	def := services.DefaultConfig()
	return &Store{
		storage:         storage,
		tokenKey:        firstNonEmpty(cfg.TokenKey, def.TokenKey),
		refreshTokenKey: firstNonEmpty(cfg.RefreshTokenKey, def.RefreshTokenKey),
		userDataKey:     firstNonEmpty(cfg.UserDataKey, def.UserDataKey),
	}
}

// SaveTokens sobrescribe ambos tokens sin validar su formato.
func (s *Store) SaveTokens(token, refreshToken string) error {
	if s.storage == nil {
		return nil
	}
	ctx := context.Background()
	if err := s.storage.Set(ctx, s.tokenKey, token); err != nil {
		return err
	}
	return s.storage.Set(ctx, s.refreshTokenKey, refreshToken)
}

// Token devuelve el token de acceso o "" si no existe.
func (s *Store) Token() string {
	return s.get(s.tokenKey)
}

// RefreshToken devuelve el refresh token o "" si no existe. Se guarda pero no se usa para renovar.
func (s *Store) RefreshToken() string {
	return s.get(s.refreshTokenKey)
}

// SaveUserData serializa el perfil como JSON.
func (s *Store) SaveUserData(profile any) error {
	if s.storage == nil {
		return nil
	}
	var raw []byte
	switch p := profile.(type) {
	case json.RawMessage:
		raw = p
	case []byte:
		raw = p
	default:
		b, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		raw = b
	}
	return s.storage.Set(context.Background(), s.userDataKey, string(raw))
}

// UserData deserializa el perfil guardado en out.
func (s *Store) UserData(out any) error {
	raw := s.get(s.userDataKey)
	if raw == "" {
		return ErrSinDatos
	}
	return json.Unmarshal([]byte(raw), out)
}

// ClearAuth borra las tres claves. Llamarlo sin sesión no es error.
func (s *Store) ClearAuth() error {
	if s.storage == nil {
		return nil
	}
	ctx := context.Background()
	var errs []error
	for _, key := range []string{s.tokenKey, s.refreshTokenKey, s.userDataKey} {
		if err := s.storage.Remove(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsAuthenticated solo verifica presencia del token; no revisa expiración ni firma.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// AuthHeaders arma las cabeceras de cada petición.
// Quien envía multipart debe pasar includeContentType=false para que el boundary lo fije el cliente HTTP.
func (s *Store) AuthHeaders(includeContentType bool) map[string]string {
	headers := map[string]string{"Accept": "application/json"}
	if includeContentType {
		headers["Content-Type"] = "application/json"
	}
	if token := s.Token(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// Claims decodifica el payload del JWT sin verificar la firma.
func (s *Store) Claims() (jwt.MapClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrSinToken
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresAt devuelve el claim exp si el token lo trae.
func (s *Store) ExpiresAt() (time.Time, bool) {
	claims, err := s.Claims()
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Store) get(key string) string {
	if s == nil || s.storage == nil {
		return ""
	}
	v, ok, err := s.storage.Get(context.Background(), key)
	if err != nil {
		logs.Warn("sesión: no se pudo leer %s: %v", key, err)
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
