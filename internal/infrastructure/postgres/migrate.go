package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Registra el driver pgx5:// de golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jhoicas/crm-ventas-api/pkg/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator construye un *migrate.Migrate con las migraciones embebidas.
// El llamador debe cerrar el migrador con Close.
func NewMigrator(cfg config.DBConfig) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("abrir migraciones: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(cfg.ConnectionString()))
	if err != nil {
		return nil, fmt.Errorf("crear migrador: %w", err)
	}
	return m, nil
}

// MigrateUp aplica las migraciones pendientes. No hacer nada no es un error.
func MigrateUp(cfg config.DBConfig) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}

// migrateURL cambia el esquema postgres:// por pgx5://, que es el que registra el driver.
func migrateURL(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
