package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Productos (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Update devuelve domain.ErrNotFound si ninguna fila coincide con product.ID.
	Update(ctx context.Context, product *entity.Product) error
	Exists(ctx context.Context, id int64) (bool, error)
	HasSales(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
