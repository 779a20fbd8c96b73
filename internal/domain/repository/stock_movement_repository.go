package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// MovementFilter filtros opcionales del libro de movimientos. Los campos
// vacíos / nil no filtran.
type MovementFilter struct {
	ProductID string
	Location  string
	Operation string
	StartDate string // YYYY-MM-DD inclusive
	EndDate   string // YYYY-MM-DD inclusive
}

// StockMovementRepository define el puerto del libro de movimientos (DIP).
// El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByOrganization(organizationID string, filter MovementFilter, limit, offset int) ([]*entity.StockMovement, error)
}
