package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para Receipt (DIP).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id, organizationID string) (*entity.Receipt, error)
	Update(receipt *entity.Receipt) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Receipt, error)
	Delete(id, organizationID string) error
}
