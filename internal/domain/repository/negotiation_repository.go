package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// NegotiationRepository define el puerto de persistencia para Negociaciones.
type NegotiationRepository interface {
	// List incluye el nombre del cliente (LEFT JOIN).
	List(ctx context.Context) ([]*entity.Negotiation, error)
	Create(ctx context.Context, negotiation *entity.Negotiation) error
	// UpdateStatus fija Estatus y Fecha_Cierre (nil la limpia). domain.ErrNotFound si no hay fila.
	UpdateStatus(ctx context.Context, id int64, status string, closeDate *time.Time) error
}
