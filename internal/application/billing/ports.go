package billing

import (
	"time"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// Receipt datos necesarios para el comprobante de una venta.
// Client y Product pueden ser nil si la fila referenciada ya no existe.
type Receipt struct {
	Sale     *entity.Sale
	Client   *entity.Client
	Product  *entity.Product
	IssuedAt time.Time
}

// ReceiptPDFGenerator puerto de salida para renderizar el comprobante en PDF.
// La implementación vive en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	Generate(receipt *Receipt) ([]byte, error)
}
