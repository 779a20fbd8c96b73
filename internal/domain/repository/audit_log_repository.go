package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// AuditLogRepository define el puerto de la bitácora de auditoría (DIP).
// La bitácora es append-only: no hay Update ni Delete.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.AuditLog, error)
}
