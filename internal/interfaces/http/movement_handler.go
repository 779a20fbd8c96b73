package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
	"github.com/stockmaster/stockmaster-api/pkg/validator"
)

// MovementHandler maneja las consultas del libro de movimientos (protegido, solo lectura).
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        location   query  string  false  "Filtrar por ubicación"
// @Param        operation  query  string  false  "Receipt | Delivery | Transfer | Adjustment"
// @Param        startDate  query  string  false  "YYYY-MM-DD inclusive"
// @Param        endDate    query  string  false  "YYYY-MM-DD inclusive"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/stock-movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	if errs := validator.ValidateStruct(q); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	out, err := h.uc.List(GetOrganizationID(c), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
