package entity

// Company representa una fila de Empresas.
type Company struct {
	ID      int64
	Name    string
	Number  *string // teléfono o número de contacto, opcional
	Address string
}
