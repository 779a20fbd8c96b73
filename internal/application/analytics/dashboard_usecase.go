package analytics

import (
	"sync"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// DashboardUseCase conteos agregados para el dashboard de la organización.
type DashboardUseCase struct {
	repo              repository.DashboardRepository
	lowStockThreshold int64
}

// NewDashboardUseCase construye el caso de uso. threshold define por debajo de
// qué stock un producto cuenta como low stock.
func NewDashboardUseCase(repo repository.DashboardRepository, threshold int64) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, lowStockThreshold: threshold}
}

// GetSummary corre los cinco conteos en paralelo y arma el resumen.
// "Pendiente" = todo estado distinto de Completed.
func (uc *DashboardUseCase) GetSummary(organizationID string) (*dto.DashboardSummaryDTO, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		summary  dto.DashboardSummaryDTO
	)

	run := func(fn func() (int64, error), dst *int64) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := fn()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			*dst = n
		}()
	}

	run(func() (int64, error) {
		return uc.repo.CountProducts(organizationID)
	}, &summary.TotalProducts)
	run(func() (int64, error) {
		return uc.repo.CountLowStock(organizationID, uc.lowStockThreshold)
	}, &summary.LowStockItems)
	run(func() (int64, error) {
		return uc.repo.CountReceiptsByStatus(organizationID, entity.StatusDraft, entity.StatusValidated)
	}, &summary.PendingReceipts)
	run(func() (int64, error) {
		return uc.repo.CountDeliveriesByStatus(organizationID, entity.StatusDraft, entity.StatusReady)
	}, &summary.PendingDeliveries)
	run(func() (int64, error) {
		return uc.repo.CountTransfers(organizationID)
	}, &summary.InternalTransfers)

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return &summary, nil
}
