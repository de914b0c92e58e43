package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Clientes.
type ClientRepository interface {
	List(ctx context.Context) ([]*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// HasDependents informa si existen negociaciones o ventas del cliente.
	HasDependents(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
