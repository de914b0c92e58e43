package entity

import "time"

// Estatus de una negociación.
const (
	NegotiationStarted   = "Iniciado"
	NegotiationFinished  = "Terminado"
	NegotiationCancelled = "Cancelado"
	NegotiationInReview  = "En Revisión"
)

// NegotiationStatuses lista los estatus válidos en el orden en que se muestran al usuario.
var NegotiationStatuses = []string{
	NegotiationStarted,
	NegotiationFinished,
	NegotiationCancelled,
	NegotiationInReview,
}

// Negotiation representa una fila de Negociaciones.
// ClientName solo se llena en los listados (LEFT JOIN con Clientes).
type Negotiation struct {
	ID         int64
	ClientID   int64
	StartDate  time.Time
	CloseDate  *time.Time
	Status     string
	ClientName *string
}

// IsTerminalStatus informa si el estatus cierra la negociación (se registra Fecha_Cierre).
func IsTerminalStatus(status string) bool {
	return status == NegotiationFinished || status == NegotiationCancelled
}
