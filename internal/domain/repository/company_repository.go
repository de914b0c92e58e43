package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Empresas.
// La implementación vive en infrastructure.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	// Create inserta la empresa y asigna company.ID con el id generado.
	Create(ctx context.Context, company *entity.Company) error
	Exists(ctx context.Context, id int64) (bool, error)
	// HasClients informa si algún cliente referencia la empresa.
	HasClients(ctx context.Context, id int64) (bool, error)
	// Delete devuelve domain.ErrNotFound si no se eliminó ninguna fila.
	Delete(ctx context.Context, id int64) error
}
