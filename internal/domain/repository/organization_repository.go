package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
}
