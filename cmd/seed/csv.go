package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

type companyRow struct {
	Name    string `csv:"Nombre"`
	Number  string `csv:"Numero"`
	Address string `csv:"Direccion"`
}

type productRow struct {
	Name        string `csv:"Nombre"`
	Price       string `csv:"Precio"`
	Description string `csv:"Descripcion"`
	Stock       int64  `csv:"Stock"`
	Category    string `csv:"Categoria"`
}

type accountRow struct {
	Email    string `csv:"email"`
	Password string `csv:"password"`
}

// decodeReader envuelve r con el decodificador ISO-8859-1 cuando latin1 es true.
// Las exportaciones de Excel en español suelen venir en ese charset.
func decodeReader(r io.Reader, latin1 bool) io.Reader {
	if !latin1 {
		return r
	}
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
}

func readCompanies(r io.Reader) ([]*entity.Company, error) {
	var rows []*companyRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("leer empresas: %w", err)
	}
	out := make([]*entity.Company, 0, len(rows))
	for i, row := range rows {
		name, address := strings.TrimSpace(row.Name), strings.TrimSpace(row.Address)
		if name == "" || address == "" {
			return nil, fmt.Errorf("empresas fila %d: Nombre y Direccion son obligatorios", i+2)
		}
		out = append(out, &entity.Company{
			Name:    name,
			Number:  optional(row.Number),
			Address: address,
		})
	}
	return out, nil
}

func readProducts(r io.Reader) ([]*entity.Product, error) {
	var rows []*productRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("leer productos: %w", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for i, row := range rows {
		name, category := strings.TrimSpace(row.Name), strings.TrimSpace(row.Category)
		if name == "" || category == "" {
			return nil, fmt.Errorf("productos fila %d: Nombre y Categoria son obligatorios", i+2)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
		if err != nil {
			return nil, fmt.Errorf("productos fila %d: precio %q: %w", i+2, row.Price, err)
		}
		out = append(out, &entity.Product{
			Name:        name,
			Price:       price,
			Description: optional(row.Description),
			Stock:       row.Stock,
			Category:    category,
		})
	}
	return out, nil
}

func readAccounts(r io.Reader) ([]*entity.Account, error) {
	var rows []*accountRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("leer cuentas: %w", err)
	}
	out := make([]*entity.Account, 0, len(rows))
	for i, row := range rows {
		email := strings.TrimSpace(row.Email)
		if email == "" || row.Password == "" {
			return nil, fmt.Errorf("cuentas fila %d: email y password son obligatorios", i+2)
		}
		out = append(out, &entity.Account{Email: email, Password: row.Password})
	}
	return out, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
