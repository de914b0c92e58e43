package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-ventas-api/internal/application/input"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
	now         func() time.Time
}

// NewReceiptUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		generator:   generator,
		now:         time.Now,
	}
}

// DownloadReceipt carga la venta con su cliente y producto y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - *domain.ValidationError    si el id no es numérico.
//   - domain.ErrNotFound         si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, rawID string) (pdfBytes []byte, filename string, err error) {
	id, ok := input.ID(rawID)
	if !ok {
		return nil, "", domain.NewValidationError("ID de venta no válido")
	}

	// ── 1. Cargar venta ───────────────────────────────────────────────────────
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Cargar cliente y producto (pueden haber sido eliminados) ───────────
	client, err := uc.clientRepo.GetByID(ctx, sale.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener cliente: %w", err)
	}
	product, err := uc.productRepo.GetByID(ctx, sale.ProductID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener producto: %w", err)
	}

	// ── 3. Renderizar ─────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.Generate(&Receipt{
		Sale:     sale,
		Client:   client,
		Product:  product,
		IssuedAt: uc.now(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venta-%d.pdf", sale.ID), nil
}
