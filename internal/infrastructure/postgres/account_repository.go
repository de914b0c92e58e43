package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo consulta Cuenta_Valida.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// MatchCredentials compara email y password por igualdad exacta.
func (r *AccountRepo) MatchCredentials(ctx context.Context, email, password string) (bool, error) {
	return exists(ctx, r.q, "login",
		`SELECT EXISTS (SELECT 1 FROM Cuenta_Valida WHERE email = $1 AND password = $2)`,
		email, password)
}

// Save inserta la cuenta o reemplaza su password si el email ya existe.
func (r *AccountRepo) Save(ctx context.Context, account *entity.Account) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO Cuenta_Valida (email, password)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET password = EXCLUDED.password`,
		account.Email, account.Password)
	if err != nil {
		return fmt.Errorf("save cuenta: %w", err)
	}
	return nil
}
