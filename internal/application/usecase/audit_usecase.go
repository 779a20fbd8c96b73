package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// AuditLogUseCase consulta y registro manual de la bitácora. Las entradas
// automáticas las escribe el recorder; este caso de uso cubre el POST directo
// del cliente y los listados.
type AuditLogUseCase struct {
	repo repository.AuditLogRepository
}

func NewAuditLogUseCase(repo repository.AuditLogRepository) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo}
}

// Create registra una entrada manual en la bitácora.
func (uc *AuditLogUseCase) Create(organizationID, userID string, in dto.CreateAuditLogRequest) (*dto.AuditLogResponse, error) {
	log := &entity.AuditLog{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Action:         in.Action,
		UserID:         userID,
		DocumentType:   in.DocumentType,
		DocumentID:     in.DocumentID,
		Changes:        entity.FieldsChange(in.Changes),
		Timestamp:      time.Now(),
	}
	if err := uc.repo.Create(log); err != nil {
		return nil, err
	}
	return toAuditLogResponse(log), nil
}

// List lista la bitácora por organización, más reciente primero.
func (uc *AuditLogUseCase) List(organizationID string, limit, offset int) (*dto.AuditLogListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toAuditLogResponse(l))
	}
	return &dto.AuditLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAuditLogResponse(l *entity.AuditLog) *dto.AuditLogResponse {
	return &dto.AuditLogResponse{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Action:         l.Action,
		UserID:         l.UserID,
		DocumentType:   l.DocumentType,
		DocumentID:     l.DocumentID,
		Changes:        l.Changes,
		Timestamp:      l.Timestamp,
	}
}
