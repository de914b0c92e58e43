package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
)

var productMessages = messages{
	notFound:     "Producto no encontrado",
	dependents:   "No se puede eliminar el producto porque tiene ventas asociadas",
	notCreated:   "No se pudo agregar el producto",
	deleteFailed: "Error al eliminar el producto",
}

// ProductHandler maneja las peticiones HTTP para Productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, productMessages)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, productMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductCreatedResponse{
		Success:   true,
		Message:   "Producto agregado correctamente",
		ProductID: out.ID,
		Product:   *out,
	})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ID del producto"
// @Param        body  body      dto.ProductRequest  true  "Datos completos del producto"
// @Success      200   {object}  dto.ProductUpdatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, productMessages)
	}
	return c.JSON(dto.ProductUpdatedResponse{
		Success:   true,
		Message:   "Producto actualizado correctamente",
		ProductID: out.ID,
	})
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Solo elimina el producto si no tiene ventas asociadas.
// @Tags         productos
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, productMessages)
	}
	return c.JSON(dto.DeletedResponse{Success: true, Message: "Producto eliminado correctamente", DeletedID: id})
}
