package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de la bitácora sobre PostgreSQL (usable con pool
// o tx). Changes se persiste como JSONB. Append-only.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador de la bitácora. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste una entrada de la bitácora.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO audit_logs (id, organization_id, action, user_id, document_type, document_id, changes, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.OrganizationID, log.Action, log.UserID,
		log.DocumentType, log.DocumentID, log.Changes, log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByOrganization lista la bitácora de la organización, más reciente primero.
func (r *AuditLogRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, organization_id, action, user_id, document_type, document_id, changes, timestamp
		FROM audit_logs WHERE organization_id = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.OrganizationID, &l.Action, &l.UserID,
			&l.DocumentType, &l.DocumentID, &l.Changes, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
