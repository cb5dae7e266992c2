package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/application/inventory"
)

// BatchHandler maneja la recepción de mercadería por lotes (protegido).
type BatchHandler struct {
	uc *inventory.ReceivingUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *inventory.ReceivingUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Receive godoc
// @Summary      Registrar recepción de mercadería (lote + stock, atómico)
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveBatchRequest  true  "Lote a recibir"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Receive(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de recepciones
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda por producto o categoría"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListBatches(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Revertir una recepción (solo admin; rechazada si el stock ya se vendió)
// @Tags         batches
// @Security     Bearer
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteBatch(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
