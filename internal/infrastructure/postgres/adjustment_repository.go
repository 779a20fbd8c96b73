package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación del puerto AdjustmentRepository sobre PostgreSQL (usable con pool o tx).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador de persistencia para ajustes. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

const adjustmentColumns = "id, organization_id, product_id, product_name, location, counted, recorded, variance, reason, status, date, user_id, created_at, updated_at"

// Create persiste un nuevo ajuste.
func (r *AdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	query := `
		INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.OrganizationID, adjustment.ProductID, adjustment.ProductName,
		adjustment.Location, adjustment.Counted, adjustment.Recorded, adjustment.Variance,
		adjustment.Reason, adjustment.Status, adjustment.Date, adjustment.UserID,
		adjustment.CreatedAt, adjustment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// GetByID obtiene un ajuste por ID dentro de la organización.
func (r *AdjustmentRepo) GetByID(id, organizationID string) (*entity.Adjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments WHERE id = $1 AND organization_id = $2`
	var a entity.Adjustment
	err := r.q.QueryRow(context.Background(), query, id, organizationID).Scan(
		&a.ID, &a.OrganizationID, &a.ProductID, &a.ProductName, &a.Location,
		&a.Counted, &a.Recorded, &a.Variance, &a.Reason, &a.Status, &a.Date,
		&a.UserID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	return &a, nil
}

// Update actualiza un ajuste existente.
func (r *AdjustmentRepo) Update(adjustment *entity.Adjustment) error {
	query := `
		UPDATE adjustments SET product_id = $3, product_name = $4, location = $5, counted = $6,
			recorded = $7, variance = $8, reason = $9, status = $10, date = $11, updated_at = $12
		WHERE id = $1 AND organization_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.OrganizationID, adjustment.ProductID, adjustment.ProductName,
		adjustment.Location, adjustment.Counted, adjustment.Recorded, adjustment.Variance,
		adjustment.Reason, adjustment.Status, adjustment.Date, adjustment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update adjustment: %w", err)
	}
	return nil
}

// ListByOrganization lista ajustes por organización con paginación.
func (r *AdjustmentRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Adjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		var a entity.Adjustment
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.ProductID, &a.ProductName, &a.Location,
			&a.Counted, &a.Recorded, &a.Variance, &a.Reason, &a.Status, &a.Date,
			&a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un ajuste de la organización.
func (r *AdjustmentRepo) Delete(id, organizationID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM adjustments WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("delete adjustment: %w", err)
	}
	return nil
}
