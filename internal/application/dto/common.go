package dto

// Códigos de error expuestos en ErrorResponse.Code.
const (
	CodeValidation    = "VALIDATION"
	CodeInvalidBody   = "INVALID_BODY"
	CodeNotFound      = "NOT_FOUND"
	CodeHasDependents = "HAS_DEPENDENTS"
	CodeForeignKey    = "FOREIGN_KEY"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternal      = "INTERNAL"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// DeletedResponse confirmación de un borrado.
type DeletedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID int64  `json:"deletedId"`
}
