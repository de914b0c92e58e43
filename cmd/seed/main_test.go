package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-ventas-api/pkg/config"
)

func TestRun_ArchivoInexistenteNoAbreConexion(t *testing.T) {
	// Host inalcanzable: si run intentara conectar, el error sería de conexión y no de archivo.
	db := config.DBConfig{DatabaseURL: "postgres://nadie@127.0.0.1:1/nada?sslmode=disable&connect_timeout=1"}

	_, err := run(context.Background(), db, options{companies: filepath.Join(t.TempDir(), "no-existe.csv")})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	companies := filepath.Join(dir, "empresas.csv")
	accounts := filepath.Join(dir, "cuentas.csv")
	require.NoError(t, os.WriteFile(companies, []byte("Nombre,Numero,Direccion\nAcme,,Calle 1\n"), 0o600))
	require.NoError(t, os.WriteFile(accounts, []byte("email,password\nadmin@acme.com,secreto\n"), 0o600))

	data, err := readAll(options{companies: companies, accounts: accounts})

	require.NoError(t, err)
	assert.Len(t, data.companies, 1)
	assert.Empty(t, data.products)
	assert.Len(t, data.accounts, 1)
}

func TestLoad_RevierteSiUnaFilaFalla(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	companies, err := readCompanies(strings.NewReader("Nombre,Numero,Direccion\nAcme,,Calle 1\nGlobex,,Av 2\n"))
	require.NoError(t, err)
	data := &dataset{companies: companies}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO Empresas")).
		WillReturnRows(mock.NewRows([]string{"Empresas_ID"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO Empresas")).
		WillReturnError(errors.New("conexión perdida"))
	mock.ExpectRollback()

	err = load(context.Background(), postgres.NewTxRunner(mock), data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `empresa "Globex"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
