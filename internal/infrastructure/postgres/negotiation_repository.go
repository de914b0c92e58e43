package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.NegotiationRepository = (*NegotiationRepo)(nil)

// NegotiationRepo implementación de NegotiationRepository sobre PostgreSQL.
type NegotiationRepo struct {
	q Querier
}

// NewNegotiationRepository construye el adaptador de negociaciones.
func NewNegotiationRepository(q Querier) *NegotiationRepo {
	return &NegotiationRepo{q: q}
}

// List devuelve las negociaciones con el nombre del cliente.
func (r *NegotiationRepo) List(ctx context.Context) ([]*entity.Negotiation, error) {
	query := `
		SELECT n.ID_Negociaciones, n.Cliente_ID, n.Fecha_Inicio, n.Fecha_Cierre, n.Estatus,
		       c.Nombre AS ClienteNombre
		FROM Negociaciones n
		LEFT JOIN Clientes c ON n.Cliente_ID = c.Cliente_ID
		ORDER BY n.ID_Negociaciones`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list negociaciones: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Negotiation, 0)
	for rows.Next() {
		var n entity.Negotiation
		if err := rows.Scan(&n.ID, &n.ClientID, &n.StartDate, &n.CloseDate, &n.Status, &n.ClientName); err != nil {
			return nil, fmt.Errorf("scan negociacion: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Create persiste una negociación y asigna el id generado.
func (r *NegotiationRepo) Create(ctx context.Context, negotiation *entity.Negotiation) error {
	query := `
		INSERT INTO Negociaciones (Cliente_ID, Fecha_Inicio, Fecha_Cierre, Estatus)
		VALUES ($1, $2, $3, $4)
		RETURNING ID_Negociaciones`
	err := r.q.QueryRow(ctx, query,
		negotiation.ClientID, negotiation.StartDate, negotiation.CloseDate, negotiation.Status,
	).Scan(&negotiation.ID)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotCreated
		}
		return writeError("insert negociacion", err)
	}
	return nil
}

// UpdateStatus fija el estatus y la fecha de cierre de una negociación.
func (r *NegotiationRepo) UpdateStatus(ctx context.Context, id int64, status string, closeDate *time.Time) error {
	query := `
		UPDATE Negociaciones SET
			Fecha_Cierre = $2,
			Estatus = $3
		WHERE ID_Negociaciones = $1`
	cmd, err := r.q.Exec(ctx, query, id, closeDate, status)
	if err != nil {
		return fmt.Errorf("update negociacion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
