package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
)

const (
	msgQueryFailed = "Error en la consulta a la base de datos"
	msgInvalidBody = "Cuerpo de la petición inválido"
	msgForeignKey  = "Restricción de llave foránea"
)

// messages textos por recurso para los errores que dependen de la entidad.
type messages struct {
	notFound     string
	dependents   string
	notCreated   string
	deleteFailed string
}

// writeError traduce un error de dominio a exactamente una respuesta HTTP.
// Los errores de persistencia se registran y se responden con un mensaje fijo.
func writeError(c *fiber.Ctx, err error, msgs messages) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: dto.CodeValidation, Message: verr.Message})
	}
	var fkErr *domain.ForeignKeyError
	if errors.As(err, &fkErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: dto.CodeForeignKey, Message: msgForeignKey, Detail: fkErr.Detail(),
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: dto.CodeNotFound, Message: msgs.notFound})
	case errors.Is(err, domain.ErrHasDependents):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: dto.CodeHasDependents, Message: msgs.dependents})
	}

	message := msgQueryFailed
	switch {
	case errors.Is(err, domain.ErrNotCreated) && msgs.notCreated != "":
		message = msgs.notCreated
	case errors.Is(err, domain.ErrDeleteFailed) && msgs.deleteFailed != "":
		message = msgs.deleteFailed
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("route", c.Route().Path).
		Str("request_id", requestID(c)).
		Msg("error de base de datos")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: dto.CodeInternal, Message: message})
}

// parseBody decodifica el JSON del cuerpo. Un cuerpo vacío deja out en cero para
// que la validación del caso de uso responda con el mensaje de campos obligatorios.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return err
	}
	return nil
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: dto.CodeInvalidBody, Message: msgInvalidBody})
}
