package entity

// Account es una credencial válida de Cuenta_Valida. El password se guarda en texto plano.
type Account struct {
	Email    string
	Password string
}
