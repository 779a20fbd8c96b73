package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, organization_id, name, location, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.OrganizationID, warehouse.Name, warehouse.Location,
		warehouse.Capacity, warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID dentro de la organización.
func (r *WarehouseRepo) GetByID(id, organizationID string) (*entity.Warehouse, error) {
	query := `
		SELECT id, organization_id, name, location, capacity, created_at, updated_at
		FROM warehouses WHERE id = $1 AND organization_id = $2`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id, organizationID).Scan(
		&w.ID, &w.OrganizationID, &w.Name, &w.Location, &w.Capacity, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// FirstByOrganization devuelve la bodega más antigua de la organización o nil.
func (r *WarehouseRepo) FirstByOrganization(organizationID string) (*entity.Warehouse, error) {
	query := `
		SELECT id, organization_id, name, location, capacity, created_at, updated_at
		FROM warehouses WHERE organization_id = $1 ORDER BY created_at ASC LIMIT 1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, organizationID).Scan(
		&w.ID, &w.OrganizationID, &w.Name, &w.Location, &w.Capacity, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("first warehouse: %w", err)
	}
	return &w, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $3, location = $4, capacity = $5, updated_at = $6
		WHERE id = $1 AND organization_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.OrganizationID, warehouse.Name, warehouse.Location,
		warehouse.Capacity, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// ListByOrganization lista bodegas por organización con paginación.
func (r *WarehouseRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, organization_id, name, location, capacity, created_at, updated_at
		FROM warehouses WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.OrganizationID, &w.Name, &w.Location,
			&w.Capacity, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete elimina una bodega de la organización.
func (r *WarehouseRepo) Delete(id, organizationID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM warehouses WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
