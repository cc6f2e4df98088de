package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/beego/beego/v2/core/config"
)

// Config centraliza la configuración del cliente del back-office.
type Config struct {
	AppName         string
	RunMode         string
	APIBaseURL      string
	RequestTimeout  time.Duration
	StorageDriver   string
	StoragePath     string
	TokenKey        string
	RefreshTokenKey string
	UserDataKey     string
	LogLevel        string
}

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// ErrBaseURLVacia indica que no se pudo resolver la URL base del API.
var ErrBaseURLVacia = errors.New("WANDA_API_BASE_URL no configurado")

// DefaultConfig devuelve los valores por defecto, sin consultar entorno ni archivo.
func DefaultConfig() Config {
	return Config{
		AppName:         "wanda_admin",
		RunMode:         "prod",
		APIBaseURL:      "http://localhost:8080/api",
		RequestTimeout:  30 * time.Second,
		StorageDriver:   StorageSQLite,
		StoragePath:     "wanda_session.db",
		TokenKey:        "auth_token",
		RefreshTokenKey: "refresh_token",
		UserDataKey:     "user_data",
		LogLevel:        "info",
	}
}

// LoadConfig resuelve la configuración desde variables de entorno, luego app.conf (ini) y por último defaults.
// Un path vacío o inexistente no es error: solo se consultan entorno y defaults.
func LoadConfig(path string) (Config, error) {
	var conf config.Configer
	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err == nil {
			c, err := config.NewConfig("ini", path)
			if err != nil {
				return Config{}, fmt.Errorf("leyendo %s: %w", path, err)
			}
			conf = c
		}
	}

	def := DefaultConfig()
	cfg := Config{
		AppName:         getString(conf, "WANDA_APP_NAME", "appname", def.AppName),
		RunMode:         getString(conf, "WANDA_RUN_MODE", "runmode", def.RunMode),
		APIBaseURL:      normalizeBase(getString(conf, "WANDA_API_BASE_URL", "api_base_url", def.APIBaseURL)),
		RequestTimeout:  time.Duration(getInt(conf, "WANDA_REQUEST_TIMEOUT_MS", "request_timeout_ms", int(def.RequestTimeout/time.Millisecond))) * time.Millisecond,
		StorageDriver:   strings.ToLower(getString(conf, "WANDA_STORAGE_DRIVER", "storage_driver", def.StorageDriver)),
		StoragePath:     getString(conf, "WANDA_STORAGE_PATH", "storage_path", def.StoragePath),
		TokenKey:        getString(conf, "WANDA_TOKEN_KEY", "token_key", def.TokenKey),
		RefreshTokenKey: getString(conf, "WANDA_REFRESH_TOKEN_KEY", "refresh_token_key", def.RefreshTokenKey),
		UserDataKey:     getString(conf, "WANDA_USER_DATA_KEY", "user_data_key", def.UserDataKey),
		LogLevel:        strings.ToLower(getString(conf, "WANDA_LOG_LEVEL", "log_level", def.LogLevel)),
	}

	if cfg.APIBaseURL == "" {
		return Config{}, ErrBaseURLVacia
	}
	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite:
	default:
		return Config{}, fmt.Errorf("storage_driver %q no soportado", cfg.StorageDriver)
	}
	return cfg, nil
}

// IsDev indica si el cliente corre en modo desarrollo.
func (c Config) IsDev() bool {
	return strings.EqualFold(c.RunMode, "dev")
}

func getString(conf config.Configer, envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if conf != nil {
		if val, err := conf.String(confKey); err == nil && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
	}
	return def
}

func getInt(conf config.Configer, envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if conf != nil {
		if val, err := conf.Int(confKey); err == nil {
			return val
		}
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSuffix(strings.TrimSpace(value), "/")
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
