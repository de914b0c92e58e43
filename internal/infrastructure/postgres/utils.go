package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
)

const codeForeignKeyViolation = "23503"

// foreignKeyError traduce una violación de llave foránea (23503) a *domain.ForeignKeyError.
// Las FK siguen la convención fk_<tabla>_<referencia>, ver migrations/.
func foreignKeyError(err error) (*domain.ForeignKeyError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeForeignKeyViolation {
		return nil, false
	}
	name := strings.ToLower(pgErr.ConstraintName)
	ref := name
	if i := strings.LastIndex(name, "_"); i >= 0 {
		ref = name[i+1:]
	}
	return &domain.ForeignKeyError{Reference: ref}, true
}

// writeError clasifica el error de un INSERT/UPDATE.
func writeError(op string, err error) error {
	if fk, ok := foreignKeyError(err); ok {
		return fk
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// exists ejecuta una consulta SELECT EXISTS(...) y devuelve el booleano.
func exists(ctx context.Context, q Querier, op, query string, args ...any) (bool, error) {
	var ok bool
	if err := q.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

// deleteByID ejecuta un DELETE y devuelve domain.ErrNotFound si no afectó filas.
// Si otra fila empezó a referenciar el registro entre la verificación y el DELETE,
// la FK de la base lo rechaza y se reporta como domain.ErrHasDependents.
func deleteByID(ctx context.Context, q Querier, op, query string, id int64) error {
	cmd, err := q.Exec(ctx, query, id)
	if err != nil {
		if _, ok := foreignKeyError(err); ok {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
