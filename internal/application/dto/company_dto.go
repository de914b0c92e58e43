package dto

// CreateCompanyRequest entrada para crear una empresa. Numero admite número o texto.
type CreateCompanyRequest struct {
	Name    string `json:"Nombre"`
	Number  any    `json:"Numero" swaggertype:"string"`
	Address string `json:"Direccion"`
}

// CompanyResponse fila de Empresas.
type CompanyResponse struct {
	ID      int64   `json:"Empresas_ID"`
	Name    string  `json:"Nombre"`
	Number  *string `json:"Numero"`
	Address string  `json:"Direccion"`
}

// CompanyCreatedResponse respuesta de POST /api/empresas.
type CompanyCreatedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CompanyID int64  `json:"empresaId"`
}
