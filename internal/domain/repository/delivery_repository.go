package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// DeliveryRepository define el puerto de persistencia para Delivery (DIP).
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id, organizationID string) (*entity.Delivery, error)
	Update(delivery *entity.Delivery) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Delivery, error)
	Delete(id, organizationID string) error
}
