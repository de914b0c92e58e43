package dto

import "time"

// CreateNegotiationRequest entrada para abrir una negociación.
// Estatus y Fecha_Inicio son opcionales (Iniciado y la fecha actual).
type CreateNegotiationRequest struct {
	ClientID  any    `json:"Cliente_ID" swaggertype:"integer"`
	StartDate string `json:"Fecha_Inicio"`
	Status    string `json:"Estatus"`
}

// UpdateNegotiationRequest entrada para cambiar el estatus.
type UpdateNegotiationRequest struct {
	Status string `json:"Estatus" enums:"Iniciado,Terminado,Cancelado,En Revisión"`
}

// NegotiationResponse fila de Negociaciones con el nombre del cliente.
type NegotiationResponse struct {
	ID         int64      `json:"ID_Negociaciones"`
	ClientID   int64      `json:"Cliente_ID"`
	StartDate  string     `json:"Fecha_Inicio"`
	CloseDate  *time.Time `json:"Fecha_Cierre"`
	Status     string     `json:"Estatus"`
	ClientName *string    `json:"ClienteNombre"`
}

// NegotiationCreatedResponse respuesta de POST /api/negociaciones.
type NegotiationCreatedResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	NegotiationID int64  `json:"negociacionId"`
}

// NegotiationStatus estado resultante de una actualización.
type NegotiationStatus struct {
	ID        int64      `json:"ID_Negociaciones"`
	Status    string     `json:"Estatus"`
	CloseDate *time.Time `json:"Fecha_Cierre"`
}

// NegotiationUpdatedResponse respuesta de PUT /api/negociaciones/:id.
type NegotiationUpdatedResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    NegotiationStatus `json:"data"`
}
