package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id, organizationID string) (*entity.Warehouse, error)
	// FirstByOrganization devuelve la bodega más antigua de la organización
	// (la ubicación por defecto de recepciones y entregas), o nil si no hay.
	FirstByOrganization(organizationID string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Warehouse, error)
	Delete(id, organizationID string) error
}
