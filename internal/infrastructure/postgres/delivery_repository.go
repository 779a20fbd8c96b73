package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas viven en una columna JSONB.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste una nueva entrega.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, organization_id, customer, date, items, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.OrganizationID, delivery.Customer, delivery.Date,
		delivery.Items, delivery.Status, delivery.Total, delivery.CreatedAt, delivery.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega por ID dentro de la organización.
func (r *DeliveryRepo) GetByID(id, organizationID string) (*entity.Delivery, error) {
	query := `
		SELECT id, organization_id, customer, date, items, status, total, created_at, updated_at
		FROM deliveries WHERE id = $1 AND organization_id = $2`
	var d entity.Delivery
	err := r.q.QueryRow(context.Background(), query, id, organizationID).Scan(
		&d.ID, &d.OrganizationID, &d.Customer, &d.Date, &d.Items,
		&d.Status, &d.Total, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return &d, nil
}

// Update actualiza una entrega existente (documento completo, items incluidos).
func (r *DeliveryRepo) Update(delivery *entity.Delivery) error {
	query := `
		UPDATE deliveries SET customer = $3, date = $4, items = $5, status = $6, total = $7, updated_at = $8
		WHERE id = $1 AND organization_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.OrganizationID, delivery.Customer, delivery.Date,
		delivery.Items, delivery.Status, delivery.Total, delivery.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	return nil
}

// ListByOrganization lista entregas por organización con paginación.
func (r *DeliveryRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Delivery, error) {
	query := `
		SELECT id, organization_id, customer, date, items, status, total, created_at, updated_at
		FROM deliveries WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.OrganizationID, &d.Customer, &d.Date,
			&d.Items, &d.Status, &d.Total, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina una entrega de la organización.
func (r *DeliveryRepo) Delete(id, organizationID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM deliveries WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}
