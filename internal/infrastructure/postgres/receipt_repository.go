package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas se guardan en una columna JSONB: el
// documento se lee y escribe siempre completo.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de persistencia para recepciones. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste una nueva recepción.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, organization_id, supplier, date, items, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.OrganizationID, receipt.Supplier, receipt.Date,
		receipt.Items, receipt.Status, receipt.Total, receipt.CreatedAt, receipt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID dentro de la organización.
func (r *ReceiptRepo) GetByID(id, organizationID string) (*entity.Receipt, error) {
	query := `
		SELECT id, organization_id, supplier, date, items, status, total, created_at, updated_at
		FROM receipts WHERE id = $1 AND organization_id = $2`
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id, organizationID).Scan(
		&rec.ID, &rec.OrganizationID, &rec.Supplier, &rec.Date, &rec.Items,
		&rec.Status, &rec.Total, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rec, nil
}

// Update actualiza una recepción existente (documento completo, items incluidos).
func (r *ReceiptRepo) Update(receipt *entity.Receipt) error {
	query := `
		UPDATE receipts SET supplier = $3, date = $4, items = $5, status = $6, total = $7, updated_at = $8
		WHERE id = $1 AND organization_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.OrganizationID, receipt.Supplier, receipt.Date,
		receipt.Items, receipt.Status, receipt.Total, receipt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	return nil
}

// ListByOrganization lista recepciones por organización con paginación.
func (r *ReceiptRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, organization_id, supplier, date, items, status, total, created_at, updated_at
		FROM receipts WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.OrganizationID, &rec.Supplier, &rec.Date,
			&rec.Items, &rec.Status, &rec.Total, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete elimina una recepción de la organización.
func (r *ReceiptRepo) Delete(id, organizationID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM receipts WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}
