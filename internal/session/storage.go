package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/beego/beego/v2/client/cache"
	_ "modernc.org/sqlite"

	"github.com/wanda/backoffice_admin/services"
)

// Storage es el almacén clave/valor persistente donde vive la sesión.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// OpenStorage abre el backend indicado por la configuración.
func OpenStorage(cfg services.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case services.StorageMemory:
		return NewMemoryStorage()
	case services.StorageSQLite, "":
		return OpenSQLiteStorage(cfg.StoragePath)
	default:
		return nil, fmt.Errorf("storage_driver %q no soportado", cfg.StorageDriver)
	}
}

// MemoryStorage guarda la sesión en el cache de memoria de beego; se pierde al terminar el proceso.
type MemoryStorage struct {
	bm cache.Cache
}

// NewMemoryStorage crea un almacén en memoria sin expiración.
func NewMemoryStorage() (*MemoryStorage, error) {
	bm, err := cache.NewCache("memory", `{"interval":3600}`)
	if err != nil {
		return nil, err
	}
	return &MemoryStorage{bm: bm}, nil
}

// Get devuelve el valor y si existía.
func (m *MemoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	ok, err := m.bm.IsExist(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}
	v, err := m.bm.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	s, _ := v.(string)
	return s, true, nil
}

// Set sobrescribe el valor sin expiración.
func (m *MemoryStorage) Set(ctx context.Context, key, value string) error {
	return m.bm.Put(ctx, key, value, 0)
}

// Remove borra la clave; borrar una clave inexistente no es error.
func (m *MemoryStorage) Remove(ctx context.Context, key string) error {
	ok, err := m.bm.IsExist(ctx, key)
	if err != nil || !ok {
		return err
	}
	return m.bm.Delete(ctx, key)
}

// SQLiteStorage persiste la sesión entre ejecuciones del CLI.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLiteStorage abre (o crea) el archivo de sesión.
func OpenSQLiteStorage(path string) (*SQLiteStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage_path vacío")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS almacenamiento (
			clave TEXT PRIMARY KEY,
			valor TEXT NOT NULL,
			actualizado_en DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStorage{db: db}, nil
}

// Get devuelve el valor y si existía.
func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var valor string
	err := s.db.QueryRowContext(ctx, "SELECT valor FROM almacenamiento WHERE clave = ?", key).Scan(&valor)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return valor, true, nil
}

// Set sobrescribe el valor.
func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO almacenamiento (clave, valor, actualizado_en) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(clave) DO UPDATE SET valor = excluded.valor, actualizado_en = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

// Remove borra la clave si existe.
func (s *SQLiteStorage) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM almacenamiento WHERE clave = ?", key)
	return err
}

// Close libera el archivo.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
