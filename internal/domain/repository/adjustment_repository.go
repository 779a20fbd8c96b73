package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// AdjustmentRepository define el puerto de persistencia para Adjustment (DIP).
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	GetByID(id, organizationID string) (*entity.Adjustment, error)
	Update(adjustment *entity.Adjustment) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Adjustment, error)
	Delete(id, organizationID string) error
}
