package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). El libro es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = "id, organization_id, product_id, product_name, operation, beginning, qty, ending, location, date, user_id, document_id, document_type, created_at"

// Create persiste un asiento del libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.OrganizationID, movement.ProductID, movement.ProductName,
		movement.Operation, movement.Beginning, movement.Qty, movement.Ending,
		movement.Location, movement.Date, movement.User, movement.DocumentID,
		movement.DocumentType, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByOrganization lista asientos de la organización con filtros opcionales,
// más reciente primero. Los filtros vacíos no aplican.
func (r *StockMovementRepo) ListByOrganization(organizationID string, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE organization_id = $1`
	args := []any{organizationID}
	pos := 2
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND location = $%d", pos)
		args = append(args, filter.Location)
		pos++
	}
	if filter.Operation != "" {
		query += fmt.Sprintf(" AND operation = $%d", pos)
		args = append(args, filter.Operation)
		pos++
	}
	if filter.StartDate != "" {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, filter.StartDate)
		pos++
	}
	if filter.EndDate != "" {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, filter.EndDate)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.ProductID, &m.ProductName,
			&m.Operation, &m.Beginning, &m.Qty, &m.Ending, &m.Location, &m.Date,
			&m.User, &m.DocumentID, &m.DocumentType, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
