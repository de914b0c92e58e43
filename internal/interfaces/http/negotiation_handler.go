package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
)

var negotiationMessages = messages{
	notFound:   "Negociación no encontrada",
	notCreated: "No se pudo crear la negociación",
}

// NegotiationHandler maneja las peticiones HTTP para Negociaciones.
type NegotiationHandler struct {
	uc *usecase.NegotiationUseCase
}

// NewNegotiationHandler construye el handler.
func NewNegotiationHandler(uc *usecase.NegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{uc: uc}
}

// List godoc
// @Summary      Listar negociaciones
// @Description  Incluye el nombre del cliente (ClienteNombre).
// @Tags         negociaciones
// @Produce      json
// @Success      200  {array}   dto.NegotiationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/negociaciones [get]
func (h *NegotiationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, negotiationMessages)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Abrir negociación
// @Description  Estatus por defecto "Iniciado"; Fecha_Inicio por defecto la fecha actual.
// @Tags         negociaciones
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateNegotiationRequest  true  "Datos de la negociación"
// @Success      201   {object}  dto.NegotiationCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/negociaciones [post]
func (h *NegotiationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNegotiationRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, negotiationMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NegotiationCreatedResponse{
		Success:       true,
		Message:       "Negociación creada correctamente",
		NegotiationID: id,
	})
}

// UpdateStatus godoc
// @Summary      Cambiar estatus de una negociación
// @Description  Terminado y Cancelado fijan Fecha_Cierre; los demás estatus la limpian.
// @Tags         negociaciones
// @Accept       json
// @Produce      json
// @Param        id    path      int                           true  "ID de la negociación"
// @Param        body  body      dto.UpdateNegotiationRequest  true  "Nuevo estatus"
// @Success      200   {object}  dto.NegotiationUpdatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/negociaciones/{id} [put]
func (h *NegotiationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateNegotiationRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, negotiationMessages)
	}
	return c.JSON(dto.NegotiationUpdatedResponse{
		Success: true,
		Message: "Negociación actualizada correctamente",
		Data:    *out,
	})
}
