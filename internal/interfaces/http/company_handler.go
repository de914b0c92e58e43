package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
)

var companyMessages = messages{
	notFound:     "Empresa no encontrada",
	dependents:   "No se puede eliminar la empresa porque tiene clientes asociados",
	notCreated:   "No se pudo crear la empresa",
	deleteFailed: "Error al eliminar la empresa",
}

// CompanyHandler maneja las peticiones HTTP para Empresas.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {array}   dto.CompanyResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/empresas [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, companyMessages)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, companyMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyCreatedResponse{
		Success:   true,
		Message:   "Empresa creada correctamente",
		CompanyID: out.ID,
	})
}

// Delete godoc
// @Summary      Eliminar empresa
// @Description  Solo elimina la empresa si no tiene clientes asociados.
// @Tags         empresas
// @Produce      json
// @Param        id   path      int  true  "ID de la empresa"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, companyMessages)
	}
	return c.JSON(dto.DeletedResponse{Success: true, Message: "Empresa eliminada correctamente", DeletedID: id})
}
