package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en Ventas.Metodo_pago.
const (
	PaymentCash = "Efectivo"
	PaymentCard = "Tarjeta"
)

// Estados de pago aceptados en Ventas.Estado_pago.
const (
	PaymentPending = "Pendiente"
	PaymentPaid    = "Pagado"
)

// PaymentMethods lista los métodos válidos en el orden en que se muestran al usuario.
var PaymentMethods = []string{PaymentCash, PaymentCard}

// PaymentStatuses lista los estados de pago válidos.
var PaymentStatuses = []string{PaymentPending, PaymentPaid}

// Sale representa una fila de Ventas.
type Sale struct {
	ID            int64
	ClientID      int64
	ProductID     int64
	Commission    decimal.Decimal
	Date          time.Time
	PaymentMethod string
	PaymentStatus string
	Total         decimal.Decimal
}
