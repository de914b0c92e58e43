package entity

// Client representa una fila de Clientes. Empresa_ID referencia a Company.
type Client struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	CompanyID int64
}
