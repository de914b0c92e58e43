package repository

import "context"

// AccountRepository verifica credenciales contra Cuenta_Valida.
type AccountRepository interface {
	MatchCredentials(ctx context.Context, email, password string) (bool, error)
}
