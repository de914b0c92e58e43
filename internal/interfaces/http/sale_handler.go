package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/billing"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
)

var saleMessages = messages{
	notFound:     "Venta no encontrada",
	notCreated:   "No se pudo registrar la venta",
	deleteFailed: "Error al eliminar la venta",
}

// SaleHandler maneja las peticiones HTTP para Ventas y su comprobante.
type SaleHandler struct {
	uc      *billing.SaleUseCase
	receipt *billing.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *billing.SaleUseCase, receipt *billing.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receipt: receipt}
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}   dto.SaleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, saleMessages)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, saleMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleCreatedResponse{
		Success: true,
		Message: "Venta registrada correctamente",
		SaleID:  id,
	})
}

// Update godoc
// @Summary      Actualizar venta
// @Description  Fecha ausente toma la hora actual; Metodo_pago y Estado_pago ausentes conservan el valor guardado.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "ID de la venta"
// @Param        body  body      dto.SaleRequest  true  "Datos de la venta"
// @Success      200   {object}  dto.SaleUpdatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	id, changes, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, saleMessages)
	}
	return c.JSON(dto.SaleUpdatedResponse{
		Success: true,
		Message: "Venta actualizada correctamente",
		SaleID:  id,
		Changes: changes,
	})
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         ventas
// @Produce      json
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, saleMessages)
	}
	return c.JSON(dto.DeletedResponse{Success: true, Message: "Venta eliminada correctamente", DeletedID: id})
}

// Receipt godoc
// @Summary      Descargar comprobante PDF de la venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/comprobante [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receipt.DownloadReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, saleMessages)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
