package dto

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name      string `json:"Nombre"`
	Email     string `json:"Email"`
	Phone     any    `json:"Telefono" swaggertype:"string"`
	CompanyID any    `json:"Empresa_ID" swaggertype:"integer"`
}

// ClientResponse fila de Clientes.
type ClientResponse struct {
	ID        int64   `json:"Cliente_ID"`
	Name      string  `json:"Nombre"`
	Email     string  `json:"Email"`
	Phone     *string `json:"Telefono"`
	CompanyID int64   `json:"Empresa_ID"`
}

// ClientCreatedResponse respuesta de POST /api/clientes.
type ClientCreatedResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ClientID int64  `json:"clienteId"`
}
