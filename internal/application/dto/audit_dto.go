package dto

import (
	"time"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

// CreateAuditLogRequest entrada de POST /api/audit-log (registro manual desde
// el cliente; la mayoría de entradas las genera el recorder del servidor).
type CreateAuditLogRequest struct {
	Action       string         `json:"action" validate:"required,oneof=CREATE UPDATE DELETE VALIDATE"`
	DocumentType string         `json:"documentType" validate:"required"`
	DocumentID   string         `json:"documentId" validate:"required"`
	Changes      map[string]any `json:"changes"`
}

// AuditLogResponse entrada de la bitácora.
type AuditLogResponse struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organizationId"`
	Action         string             `json:"action"`
	UserID         string             `json:"userId"`
	DocumentType   string             `json:"documentType"`
	DocumentID     string             `json:"documentId"`
	Changes        entity.AuditChange `json:"changes"`
	Timestamp      time.Time          `json:"timestamp"`
}

// AuditLogListResponse lista paginada de la bitácora.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
