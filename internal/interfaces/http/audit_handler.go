package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
	"github.com/stockmaster/stockmaster-api/pkg/validator"
)

// AuditLogHandler maneja la bitácora de auditoría (protegido).
type AuditLogHandler struct {
	uc *usecase.AuditLogUseCase
}

// NewAuditLogHandler construye el handler.
func NewAuditLogHandler(uc *usecase.AuditLogUseCase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada manual en la bitácora
// @Tags         audit-log
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAuditLogRequest  true  "Entrada de auditoría"
// @Success      201   {object}  dto.AuditLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/audit-log [post]
func (h *AuditLogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAuditLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	out, err := h.uc.Create(GetOrganizationID(c), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar la bitácora de auditoría
// @Tags         audit-log
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AuditLogListResponse
// @Router       /api/audit-log [get]
func (h *AuditLogHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetOrganizationID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
