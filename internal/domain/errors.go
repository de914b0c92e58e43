package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrHasDependents = errors.New("el recurso tiene registros asociados")
	ErrForeignKey    = errors.New("referencia a un recurso inexistente")
	ErrNotCreated    = errors.New("no se pudo crear el recurso")
	ErrDeleteFailed  = errors.New("no se pudo eliminar el recurso")
	ErrUnauthorized  = errors.New("no autorizado")
)

// ValidationError describe una entrada rechazada antes de tocar la base de datos.
// Message es el texto que se devuelve al cliente.
type ValidationError struct {
	Message string
}

// NewValidationError construye un ValidationError con el mensaje dado.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ForeignKeyError indica que una escritura apuntó a una fila inexistente de otra tabla.
// Reference es la entidad referenciada: "cliente", "producto" o "empresa".
type ForeignKeyError struct {
	Reference string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("llave foránea inválida: %s", e.Reference)
}

// Unwrap permite errors.Is(err, ErrForeignKey).
func (e *ForeignKeyError) Unwrap() error { return ErrForeignKey }

// Detail devuelve el mensaje legible para el cliente HTTP.
func (e *ForeignKeyError) Detail() string {
	switch e.Reference {
	case "cliente":
		return "El cliente especificado no existe"
	case "producto":
		return "El producto especificado no existe"
	case "empresa":
		return "La empresa especificada no existe"
	default:
		return "El registro referenciado no existe"
	}
}

// DeleteFailed marca como ErrDeleteFailed el fallo del DELETE final de un borrado
// protegido. ErrNotFound y ErrHasDependents se devuelven sin cambios.
func DeleteFailed(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrHasDependents) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
}
