package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reemplazar un producto. Precio y Stock admiten número o texto.
type ProductRequest struct {
	Name        string  `json:"Nombre"`
	Price       any     `json:"Precio" swaggertype:"number"`
	Description *string `json:"Descripcion"`
	Stock       any     `json:"Stock" swaggertype:"integer"`
	Category    string  `json:"Categoria"`
}

// ProductResponse fila de Productos.
type ProductResponse struct {
	ID          int64           `json:"Producto_ID"`
	Name        string          `json:"Nombre"`
	Price       decimal.Decimal `json:"Precio" swaggertype:"string"`
	Description *string         `json:"Descripcion"`
	Stock       int64           `json:"Stock"`
	Category    string          `json:"Categoria"`
}

// ProductCreatedResponse respuesta de POST /api/productos.
type ProductCreatedResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ProductID int64           `json:"productId"`
	Product   ProductResponse `json:"product"`
}

// ProductUpdatedResponse respuesta de PUT /api/productos/:id.
type ProductUpdatedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}
