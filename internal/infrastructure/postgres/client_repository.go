package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT Cliente_ID, Nombre, Email, Telefono, Empresa_ID
		FROM Clientes ORDER BY Cliente_ID`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Client, 0)
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyID); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste un nuevo cliente y asigna el id generado.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO Clientes (Nombre, Email, Telefono, Empresa_ID)
		VALUES ($1, $2, $3, $4)
		RETURNING Cliente_ID`
	err := r.q.QueryRow(ctx, query,
		client.Name, client.Email, client.Phone, client.CompanyID,
	).Scan(&client.ID)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotCreated
		}
		return writeError("insert cliente", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `
		SELECT Cliente_ID, Nombre, Email, Telefono, Empresa_ID
		FROM Clientes WHERE Cliente_ID = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Exists informa si el cliente existe.
func (r *ClientRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, "get cliente",
		`SELECT EXISTS (SELECT 1 FROM Clientes WHERE Cliente_ID = $1)`, id)
}

// HasDependents informa si el cliente tiene negociaciones o ventas.
func (r *ClientRepo) HasDependents(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM Negociaciones WHERE Cliente_ID = $1
			UNION
			SELECT 1 FROM Ventas WHERE Cliente_ID = $1
		)`
	return exists(ctx, r.q, "check relaciones de cliente", query, id)
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "delete cliente", `DELETE FROM Clientes WHERE Cliente_ID = $1`, id)
}
