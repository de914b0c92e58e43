package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Ventas.
type SaleRepository interface {
	List(ctx context.Context) ([]*entity.Sale, error)
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// Update aplica los cambios y devuelve las filas afectadas; 0 significa que la venta no existe.
	// PaymentMethod/PaymentStatus vacíos conservan el valor almacenado.
	Update(ctx context.Context, sale *entity.Sale) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
