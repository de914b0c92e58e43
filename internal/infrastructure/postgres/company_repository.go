package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las empresas.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx,
		`SELECT Empresas_ID, Nombre, Numero, Direccion FROM Empresas ORDER BY Empresas_ID`)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Number, &c.Address); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste una nueva empresa y asigna el id generado.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO Empresas (Nombre, Numero, Direccion)
		VALUES ($1, $2, $3)
		RETURNING Empresas_ID`
	err := r.q.QueryRow(ctx, query, company.Name, company.Number, company.Address).Scan(&company.ID)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotCreated
		}
		return writeError("insert empresa", err)
	}
	return nil
}

// Exists informa si la empresa existe.
func (r *CompanyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, "get empresa",
		`SELECT EXISTS (SELECT 1 FROM Empresas WHERE Empresas_ID = $1)`, id)
}

// HasClients informa si algún cliente referencia la empresa.
func (r *CompanyRepo) HasClients(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, "check clientes de empresa",
		`SELECT EXISTS (SELECT 1 FROM Clientes WHERE Empresa_ID = $1)`, id)
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "delete empresa", `DELETE FROM Empresas WHERE Empresas_ID = $1`, id)
}
