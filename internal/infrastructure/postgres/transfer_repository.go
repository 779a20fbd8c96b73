package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de persistencia para traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un nuevo traslado.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, organization_id, product_id, from_location, to_location, qty, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.OrganizationID, transfer.ProductID, transfer.From, transfer.To,
		transfer.Qty, transfer.Status, transfer.Date, transfer.CreatedAt, transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID dentro de la organización.
func (r *TransferRepo) GetByID(id, organizationID string) (*entity.Transfer, error) {
	query := `
		SELECT id, organization_id, product_id, from_location, to_location, qty, status, date, created_at, updated_at
		FROM transfers WHERE id = $1 AND organization_id = $2`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id, organizationID).Scan(
		&t.ID, &t.OrganizationID, &t.ProductID, &t.From, &t.To,
		&t.Qty, &t.Status, &t.Date, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// Update actualiza un traslado existente.
func (r *TransferRepo) Update(transfer *entity.Transfer) error {
	query := `
		UPDATE transfers SET product_id = $3, from_location = $4, to_location = $5, qty = $6, status = $7, date = $8, updated_at = $9
		WHERE id = $1 AND organization_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.OrganizationID, transfer.ProductID, transfer.From, transfer.To,
		transfer.Qty, transfer.Status, transfer.Date, transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

// ListByOrganization lista traslados por organización con paginación.
func (r *TransferRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, organization_id, product_id, from_location, to_location, qty, status, date, created_at, updated_at
		FROM transfers WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.ProductID, &t.From, &t.To,
			&t.Qty, &t.Status, &t.Date, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un traslado de la organización.
func (r *TransferRepo) Delete(id, organizationID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM transfers WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}
