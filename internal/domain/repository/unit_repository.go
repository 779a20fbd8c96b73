package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit (DIP).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id, organizationID string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Unit, error)
	Delete(id, organizationID string) error
}
