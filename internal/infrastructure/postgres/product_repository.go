package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `Producto_ID, Nombre, Precio, Descripcion, Stock, Categoria`

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM Productos ORDER BY Producto_ID`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Stock, &p.Category); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto y asigna el id generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO Productos (Nombre, Precio, Descripcion, Stock, Categoria)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING Producto_ID`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Price, product.Description, product.Stock, product.Category,
	).Scan(&product.ID)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotCreated
		}
		return writeError("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM Productos WHERE Producto_ID = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Stock, &p.Category)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update reemplaza todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE Productos SET
			Nombre = $2,
			Precio = $3,
			Descripcion = $4,
			Stock = $5,
			Categoria = $6
		WHERE Producto_ID = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Description, product.Stock, product.Category,
	)
	if err != nil {
		return writeError("update producto", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists informa si el producto existe.
func (r *ProductRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, "get producto",
		`SELECT EXISTS (SELECT 1 FROM Productos WHERE Producto_ID = $1)`, id)
}

// HasSales informa si alguna venta referencia el producto.
func (r *ProductRepo) HasSales(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.q, "check ventas de producto",
		`SELECT EXISTS (SELECT 1 FROM Ventas WHERE Producto_ID = $1)`, id)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "delete producto", `DELETE FROM Productos WHERE Producto_ID = $1`, id)
}
