package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para Transfer (DIP).
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id, organizationID string) (*entity.Transfer, error)
	Update(transfer *entity.Transfer) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Transfer, error)
	Delete(id, organizationID string) error
}
