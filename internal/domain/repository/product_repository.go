package repository

import "github.com/stockmaster/stockmaster-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas filtran por organización.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id, organizationID string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(id, organizationID string) (*entity.Product, error)
	GetByOrgAndSKU(organizationID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int64) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Product, error)
	Delete(id, organizationID string) error
}
