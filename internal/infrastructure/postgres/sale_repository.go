package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `Ventas_ID, Cliente_ID, Producto_ID, Comision, Fecha, Metodo_pago, Estado_pago, Total`

func scanSale(row interface{ Scan(dest ...any) error }) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.ClientID, &s.ProductID, &s.Commission, &s.Date,
		&s.PaymentMethod, &s.PaymentStatus, &s.Total)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve todas las ventas.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM Ventas ORDER BY Ventas_ID`)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Create registra una venta y asigna el id generado.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO Ventas (Cliente_ID, Producto_ID, Comision, Fecha, Metodo_pago, Estado_pago, Total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING Ventas_ID`
	err := r.q.QueryRow(ctx, query,
		sale.ClientID, sale.ProductID, sale.Commission, sale.Date,
		sale.PaymentMethod, sale.PaymentStatus, sale.Total,
	).Scan(&sale.ID)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotCreated
		}
		return writeError("insert venta", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM Ventas WHERE Ventas_ID = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return s, nil
}

// Update reemplaza la venta. Metodo_pago y Estado_pago vacíos conservan el valor actual.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) (int64, error) {
	query := `
		UPDATE Ventas SET
			Cliente_ID = $2,
			Producto_ID = $3,
			Comision = $4,
			Fecha = $5,
			Metodo_pago = COALESCE(NULLIF($6, ''), Metodo_pago),
			Estado_pago = COALESCE(NULLIF($7, ''), Estado_pago),
			Total = $8
		WHERE Ventas_ID = $1`
	cmd, err := r.q.Exec(ctx, query,
		sale.ID, sale.ClientID, sale.ProductID, sale.Commission, sale.Date,
		sale.PaymentMethod, sale.PaymentStatus, sale.Total,
	)
	if err != nil {
		return 0, writeError("update venta", err)
	}
	return cmd.RowsAffected(), nil
}

// Exists informa si la venta existe.
func (r *SaleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, "get venta",
		`SELECT EXISTS (SELECT 1 FROM Ventas WHERE Ventas_ID = $1)`, id)
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "delete venta", `DELETE FROM Ventas WHERE Ventas_ID = $1`, id)
}
