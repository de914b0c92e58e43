package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest entrada para crear o actualizar una venta.
// Los ids y montos admiten número o texto; Fecha admite los formatos comunes de fecha.
type SaleRequest struct {
	ClientID      any    `json:"Cliente_ID" swaggertype:"integer"`
	ProductID     any    `json:"Producto_ID" swaggertype:"integer"`
	Commission    any    `json:"Comision" swaggertype:"number"`
	Date          string `json:"Fecha"`
	PaymentMethod string `json:"Metodo_pago" enums:"Efectivo,Tarjeta"`
	PaymentStatus string `json:"Estado_pago" enums:"Pendiente,Pagado"`
	Total         any    `json:"Total" swaggertype:"number"`
}

// SaleResponse fila de Ventas.
type SaleResponse struct {
	ID            int64           `json:"Ventas_ID"`
	ClientID      int64           `json:"Cliente_ID"`
	ProductID     int64           `json:"Producto_ID"`
	Commission    decimal.Decimal `json:"Comision" swaggertype:"string"`
	Date          time.Time       `json:"Fecha"`
	PaymentMethod string          `json:"Metodo_pago"`
	PaymentStatus string          `json:"Estado_pago"`
	Total         decimal.Decimal `json:"Total" swaggertype:"string"`
}

// SaleCreatedResponse respuesta de POST /api/ventas.
type SaleCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SaleID  int64  `json:"ventaId"`
}

// SaleUpdatedResponse respuesta de PUT /api/ventas/:id. Changes son las filas modificadas.
type SaleUpdatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SaleID  int64  `json:"ventaId"`
	Changes int64  `json:"changes"`
}
