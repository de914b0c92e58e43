package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/input"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

var invalidStatusMessage = "Estatus inválido. Use uno de: " + strings.Join(entity.NegotiationStatuses, ", ")

// NegotiationUseCase casos de uso del embudo de negociaciones.
type NegotiationUseCase struct {
	repo repository.NegotiationRepository
	now  func() time.Time
}

// NewNegotiationUseCase construye el caso de uso.
func NewNegotiationUseCase(repo repository.NegotiationRepository) *NegotiationUseCase {
	return &NegotiationUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj usado para Fecha_Inicio y Fecha_Cierre.
func (uc *NegotiationUseCase) WithClock(now func() time.Time) *NegotiationUseCase {
	uc.now = now
	return uc
}

// List devuelve las negociaciones con el nombre del cliente.
func (uc *NegotiationUseCase) List(ctx context.Context) ([]dto.NegotiationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NegotiationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NegotiationResponse{
			ID:         n.ID,
			ClientID:   n.ClientID,
			StartDate:  n.StartDate.Format(dateLayout),
			CloseDate:  n.CloseDate,
			Status:     n.Status,
			ClientName: n.ClientName,
		})
	}
	return items, nil
}

// Create abre una negociación. Estatus por defecto Iniciado y Fecha_Inicio por defecto hoy.
func (uc *NegotiationUseCase) Create(ctx context.Context, in dto.CreateNegotiationRequest) (int64, error) {
	clientID, ok := input.Reference(in.ClientID)
	if !ok {
		return 0, domain.NewValidationError("Cliente_ID es un campo obligatorio y debe ser un número válido")
	}
	status := entity.NegotiationStarted
	if strings.TrimSpace(in.Status) != "" {
		if status, ok = input.Option(in.Status, entity.NegotiationStatuses); !ok {
			return 0, domain.NewValidationError(invalidStatusMessage)
		}
	}
	start := truncateToDate(uc.now().UTC())
	if strings.TrimSpace(in.StartDate) != "" {
		parsed, ok := input.Date(in.StartDate)
		if !ok {
			return 0, domain.NewValidationError("Fecha_Inicio debe ser una fecha válida")
		}
		start = truncateToDate(parsed)
	}
	negotiation := &entity.Negotiation{
		ClientID:  clientID,
		StartDate: start,
		Status:    status,
	}
	if entity.IsTerminalStatus(status) {
		closed := uc.now().UTC()
		negotiation.CloseDate = &closed
	}
	if err := uc.repo.Create(ctx, negotiation); err != nil {
		return 0, err
	}
	return negotiation.ID, nil
}

// UpdateStatus cambia el estatus. Terminado y Cancelado fijan Fecha_Cierre con la hora
// actual; cualquier otro estatus válido la deja en NULL.
func (uc *NegotiationUseCase) UpdateStatus(ctx context.Context, rawID string, in dto.UpdateNegotiationRequest) (*dto.NegotiationStatus, error) {
	id, ok := input.ID(rawID)
	if !ok {
		return nil, domain.NewValidationError("ID inválido")
	}
	status, ok := input.Option(in.Status, entity.NegotiationStatuses)
	if !ok {
		return nil, domain.NewValidationError(invalidStatusMessage)
	}
	var closeDate *time.Time
	if entity.IsTerminalStatus(status) {
		t := uc.now().UTC()
		closeDate = &t
	}
	if err := uc.repo.UpdateStatus(ctx, id, status, closeDate); err != nil {
		return nil, err
	}
	return &dto.NegotiationStatus{ID: id, Status: status, CloseDate: closeDate}, nil
}

// truncateToDate conserva el día calendario de t en su propia zona, a medianoche UTC.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
