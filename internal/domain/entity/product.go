package entity

import "github.com/shopspring/decimal"

// Product representa una fila de Productos.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description *string
	Stock       int64
	Category    string
}
