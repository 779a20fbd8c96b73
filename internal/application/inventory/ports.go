package inventory

import (
	"context"

	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD. El propagador y
// los use cases de documentos trabajan contra este conjunto para que la
// escritura del documento, la mutación de stock y los asientos del libro
// queden en una única transacción.
type TxRepos struct {
	Receipts    repository.ReceiptRepository
	Deliveries  repository.DeliveryRepository
	Transfers   repository.TransferRepository
	Adjustments repository.AdjustmentRepository
	Products    repository.ProductRepository
	Warehouses  repository.WarehouseRepository
	Movements   repository.StockMovementRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn retorna nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
