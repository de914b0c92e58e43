// seed carga datos iniciales (empresas, productos y cuentas) desde archivos CSV.
//
// Uso: go run ./cmd/seed -empresas empresas.csv -productos productos.csv -cuentas cuentas.csv
// Cada archivo es opcional. Con -latin1 los CSV se leen como ISO-8859-1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-ventas-api/pkg/config"
	"github.com/jhoicas/crm-ventas-api/pkg/logger"
)

// options rutas de los CSV a cargar; una ruta vacía omite ese archivo.
type options struct {
	companies string
	products  string
	accounts  string
	latin1    bool
}

// dataset filas leídas de los CSV, listas para insertar.
type dataset struct {
	companies []*entity.Company
	products  []*entity.Product
	accounts  []*entity.Account
}

func main() {
	var opts options
	flag.StringVar(&opts.companies, "empresas", "", "CSV con columnas Nombre,Numero,Direccion")
	flag.StringVar(&opts.products, "productos", "", "CSV con columnas Nombre,Precio,Descripcion,Stock,Categoria")
	flag.StringVar(&opts.accounts, "cuentas", "", "CSV con columnas email,password")
	flag.BoolVar(&opts.latin1, "latin1", false, "leer los CSV como ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed"})

	data, err := run(context.Background(), cfg.DB, opts)
	if err != nil {
		log.Error().Err(err).Msg("cargar datos")
		os.Exit(1)
	}
	log.Info().
		Int("empresas", len(data.companies)).
		Int("productos", len(data.products)).
		Int("cuentas", len(data.accounts)).
		Msg("datos cargados")
}

// run lee los CSV y, si todos son válidos, los inserta en una sola transacción.
// Los archivos se validan antes de abrir la conexión.
func run(ctx context.Context, db config.DBConfig, opts options) (*dataset, error) {
	data, err := readAll(opts)
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	if err := load(ctx, postgres.NewTxRunner(pool), data); err != nil {
		return nil, err
	}
	return data, nil
}

func readAll(opts options) (*dataset, error) {
	var (
		data dataset
		err  error
	)
	if opts.companies != "" {
		if data.companies, err = readFile(opts.companies, opts.latin1, readCompanies); err != nil {
			return nil, err
		}
	}
	if opts.products != "" {
		if data.products, err = readFile(opts.products, opts.latin1, readProducts); err != nil {
			return nil, err
		}
	}
	if opts.accounts != "" {
		if data.accounts, err = readFile(opts.accounts, opts.latin1, readAccounts); err != nil {
			return nil, err
		}
	}
	return &data, nil
}

// load inserta todo o nada: un error en cualquier fila revierte la carga completa.
func load(ctx context.Context, tx *postgres.TxRunner, data *dataset) error {
	return tx.Run(ctx, func(q postgres.Querier) error {
		companyRepo := postgres.NewCompanyRepository(q)
		for _, c := range data.companies {
			if err := companyRepo.Create(ctx, c); err != nil {
				return fmt.Errorf("empresa %q: %w", c.Name, err)
			}
		}
		productRepo := postgres.NewProductRepository(q)
		for _, p := range data.products {
			if err := productRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("producto %q: %w", p.Name, err)
			}
		}
		accountRepo := postgres.NewAccountRepository(q)
		for _, a := range data.accounts {
			if err := accountRepo.Save(ctx, a); err != nil {
				return fmt.Errorf("cuenta %q: %w", a.Email, err)
			}
		}
		return nil
	})
}

func readFile[T any](path string, latin1 bool, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()
	return read(decodeReader(f, latin1))
}
