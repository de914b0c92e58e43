package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
)

var clientMessages = messages{
	notFound:     "Cliente no encontrado",
	dependents:   "No se puede eliminar el cliente porque tiene negociaciones o ventas asociadas",
	notCreated:   "No se pudo crear el cliente",
	deleteFailed: "Error al eliminar el cliente",
}

// ClientHandler maneja las peticiones HTTP para Clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.ClientResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, clientMessages)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, clientMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ClientCreatedResponse{
		Success:  true,
		Message:  "Cliente agregado correctamente",
		ClientID: out.ID,
	})
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Solo elimina el cliente si no tiene negociaciones ni ventas.
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, clientMessages)
	}
	return c.JSON(dto.DeletedResponse{Success: true, Message: "Cliente eliminado correctamente", DeletedID: id})
}
