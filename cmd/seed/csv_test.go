package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadCompanies(t *testing.T) {
	in := "Nombre,Numero,Direccion\nAcme, ,Calle 1\nGlobex,555-1234,Av 2\n"
	companies, err := readCompanies(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Nil(t, companies[0].Number)
	require.NotNil(t, companies[1].Number)
	assert.Equal(t, "555-1234", *companies[1].Number)
}

func TestReadCompanies_SinDireccion(t *testing.T) {
	_, err := readCompanies(strings.NewReader("Nombre,Numero,Direccion\nAcme,1,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 2")
}

func TestReadProducts(t *testing.T) {
	in := "Nombre,Precio,Descripcion,Stock,Categoria\nLaptop,1500.50,,10,Tech\nMouse,20,Inalámbrico,,Tech\n"
	products, err := readProducts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1500.5", products[0].Price.String())
	assert.Nil(t, products[0].Description)
	assert.Equal(t, int64(10), products[0].Stock)
	assert.Equal(t, int64(0), products[1].Stock)
}

func TestReadProducts_PrecioInvalido(t *testing.T) {
	_, err := readProducts(strings.NewReader("Nombre,Precio,Descripcion,Stock,Categoria\nLaptop,abc,,1,Tech\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precio")
}

func TestReadAccounts_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("email,password\nmaría@example.com,contraseña\n")
	require.NoError(t, err)

	accounts, err := readAccounts(decodeReader(bytes.NewBufferString(raw), true))
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "maría@example.com", accounts[0].Email)
	assert.Equal(t, "contraseña", accounts[0].Password)
}
