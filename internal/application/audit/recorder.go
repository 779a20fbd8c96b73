// Package audit registra la bitácora de auditoría: una entrada por cada
// create/update/delete, independiente de si hubo transición de estado.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
	"github.com/stockmaster/stockmaster-api/pkg/logger"
)

// Entry datos mínimos para asentar una entrada en la bitácora.
type Entry struct {
	OrganizationID string
	Action         string // CREATE, UPDATE, DELETE, VALIDATE
	UserID         string
	DocumentType   string
	DocumentID     string
	Changes        entity.AuditChange
}

// Recorder asienta entradas en la bitácora. Un fallo de escritura se loggea y
// se traga: la bitácora nunca hace fallar la petición que la originó.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste la entrada; nunca retorna error.
func (rec *Recorder) Record(e Entry) {
	if e.UserID == "" {
		// Igual que el original: sin usuario identificado no se asienta.
		return
	}
	row := &entity.AuditLog{
		ID:             uuid.New().String(),
		OrganizationID: e.OrganizationID,
		Action:         e.Action,
		UserID:         e.UserID,
		DocumentType:   e.DocumentType,
		DocumentID:     e.DocumentID,
		Changes:        e.Changes,
		Timestamp:      time.Now(),
	}
	if err := rec.repo.Create(row); err != nil && rec.log != nil {
		rec.log.Warn().
			Err(err).
			Str("action", e.Action).
			Str("document_type", e.DocumentType).
			Str("document_id", e.DocumentID).
			Msg("no se pudo asentar la entrada de auditoría")
	}
}

// ActionForStatusChange decide la acción de bitácora para un cambio de estado:
// VALIDATE solo para la transición Draft→Validated de una recepción; cualquier
// otro cambio de estado colapsa a UPDATE, como en el sistema original.
func ActionForStatusChange(documentType, oldStatus, newStatus string) string {
	if documentType == "Receipt" &&
		oldStatus == entity.StatusDraft && newStatus == entity.StatusValidated {
		return entity.ActionValidate
	}
	return entity.ActionUpdate
}
