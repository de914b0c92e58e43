// migrate aplica o revierte las migraciones embebidas del esquema.
//
// Uso: go run ./cmd/migrate [up|down|version]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-ventas-api/pkg/config"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	m, err := postgres.NewMigrator(cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migrador: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			err = verr
			break
		}
		fmt.Printf("versión %d (dirty=%t)\n", version, dirty)
		return
	default:
		fmt.Fprintf(os.Stderr, "Comando desconocido %q: use up, down o version\n", cmd)
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintf(os.Stderr, "Migración %s: %v\n", cmd, err)
		os.Exit(1)
	}
	fmt.Printf("Migración %s completada\n", cmd)
}
