package billing

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/input"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var (
	invalidMethodMessage = "Método de pago inválido. Use uno de: " + strings.Join(entity.PaymentMethods, ", ")
	invalidStatusMessage = "Estado de pago inválido. Use uno de: " + strings.Join(entity.PaymentStatuses, ", ")
)

// SaleUseCase casos de uso de ventas.
type SaleUseCase struct {
	repo repository.SaleRepository
	now  func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj usado cuando una actualización no trae Fecha.
func (uc *SaleUseCase) WithClock(now func() time.Time) *SaleUseCase {
	uc.now = now
	return uc
}

// List devuelve todas las ventas.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return items, nil
}

// Create valida en orden: obligatorios, método de pago, estado de pago, montos; luego inserta.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.SaleRequest) (int64, error) {
	if !input.Present(in.ClientID) || !input.Present(in.ProductID) || strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.PaymentMethod) == "" || strings.TrimSpace(in.PaymentStatus) == "" || !input.Present(in.Total) {
		return 0, domain.NewValidationError("Cliente, Producto, Fecha, Método de pago, Estado y Total son campos obligatorios")
	}
	method, ok := input.Option(in.PaymentMethod, entity.PaymentMethods)
	if !ok {
		return 0, domain.NewValidationError(invalidMethodMessage)
	}
	status, ok := input.Option(in.PaymentStatus, entity.PaymentStatuses)
	if !ok {
		return 0, domain.NewValidationError(invalidStatusMessage)
	}
	commission, okCommission := optionalAmount(in.Commission)
	total, okTotal := input.Decimal(in.Total)
	if !okCommission || !okTotal {
		return 0, domain.NewValidationError("Comisión y Total deben ser números válidos")
	}
	clientID, productID, err := references(in)
	if err != nil {
		return 0, err
	}
	date, ok := input.Date(in.Date)
	if !ok {
		return 0, domain.NewValidationError("Formato de fecha inválido")
	}
	sale := &entity.Sale{
		ClientID:      clientID,
		ProductID:     productID,
		Commission:    commission,
		Date:          date,
		PaymentMethod: method,
		PaymentStatus: status,
		Total:         total,
	}
	if err := uc.repo.Create(ctx, sale); err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// Update reemplaza la venta. Fecha ausente toma la hora actual; Metodo_pago y Estado_pago
// ausentes conservan el valor guardado. Devuelve el id y las filas modificadas.
func (uc *SaleUseCase) Update(ctx context.Context, rawID string, in dto.SaleRequest) (id, changes int64, err error) {
	id, ok := input.ID(rawID)
	if !ok {
		return 0, 0, domain.NewValidationError("ID de venta no válido")
	}
	if !input.Present(in.ClientID) || !input.Present(in.ProductID) || !input.Present(in.Total) {
		return 0, 0, domain.NewValidationError("Cliente, Producto y Total son campos obligatorios")
	}
	total, ok := input.Decimal(in.Total)
	if !ok {
		return 0, 0, domain.NewValidationError("Total debe ser un número válido")
	}
	commission, ok := optionalAmount(in.Commission)
	if !ok {
		return 0, 0, domain.NewValidationError("Comisión debe ser un número válido")
	}
	clientID, productID, err := references(in)
	if err != nil {
		return 0, 0, err
	}
	date := uc.now().UTC()
	if strings.TrimSpace(in.Date) != "" {
		if date, ok = input.Date(in.Date); !ok {
			return 0, 0, domain.NewValidationError("Formato de fecha inválido")
		}
	}
	var method, status string
	if strings.TrimSpace(in.PaymentMethod) != "" {
		if method, ok = input.Option(in.PaymentMethod, entity.PaymentMethods); !ok {
			return 0, 0, domain.NewValidationError(invalidMethodMessage)
		}
	}
	if strings.TrimSpace(in.PaymentStatus) != "" {
		if status, ok = input.Option(in.PaymentStatus, entity.PaymentStatuses); !ok {
			return 0, 0, domain.NewValidationError(invalidStatusMessage)
		}
	}
	changes, err = uc.repo.Update(ctx, &entity.Sale{
		ID:            id,
		ClientID:      clientID,
		ProductID:     productID,
		Commission:    commission,
		Date:          date,
		PaymentMethod: method,
		PaymentStatus: status,
		Total:         total,
	})
	if err != nil {
		return 0, 0, err
	}
	if changes == 0 {
		return 0, 0, domain.ErrNotFound
	}
	return id, changes, nil
}

// Delete elimina la venta si existe.
func (uc *SaleUseCase) Delete(ctx context.Context, rawID string) (int64, error) {
	id, ok := input.ID(rawID)
	if !ok {
		return 0, domain.NewValidationError("ID de venta no válido")
	}
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return 0, domain.DeleteFailed(err)
	}
	return id, nil
}

// optionalAmount interpreta Comision: ausente vale 0.
func optionalAmount(v any) (decimal.Decimal, bool) {
	if !input.Present(v) {
		return decimal.Zero, true
	}
	return input.Decimal(v)
}

func references(in dto.SaleRequest) (clientID, productID int64, err error) {
	clientID, okClient := input.Reference(in.ClientID)
	productID, okProduct := input.Reference(in.ProductID)
	if !okClient || !okProduct {
		return 0, 0, domain.NewValidationError("Cliente_ID y Producto_ID deben ser números válidos")
	}
	return clientID, productID, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		ProductID:     s.ProductID,
		Commission:    s.Commission,
		Date:          s.Date,
		PaymentMethod: s.PaymentMethod,
		PaymentStatus: s.PaymentStatus,
		Total:         s.Total,
	}
}
