package analytics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/analytics"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

// fakeDashboardRepo devuelve conteos fijos y registra los estados pedidos.
type fakeDashboardRepo struct {
	products, lowStock, receipts, deliveries, transfers int64

	receiptStatuses  []string
	deliveryStatuses []string
	thresholdPedido  int64

	err error
}

func (f *fakeDashboardRepo) CountProducts(string) (int64, error) { return f.products, f.err }

func (f *fakeDashboardRepo) CountLowStock(_ string, threshold int64) (int64, error) {
	f.thresholdPedido = threshold
	return f.lowStock, f.err
}

func (f *fakeDashboardRepo) CountReceiptsByStatus(_ string, statuses ...string) (int64, error) {
	f.receiptStatuses = statuses
	return f.receipts, f.err
}

func (f *fakeDashboardRepo) CountDeliveriesByStatus(_ string, statuses ...string) (int64, error) {
	f.deliveryStatuses = statuses
	return f.deliveries, f.err
}

func (f *fakeDashboardRepo) CountTransfers(string) (int64, error) { return f.transfers, f.err }

func TestGetSummary_ArmaLosCincoConteos(t *testing.T) {
	repo := &fakeDashboardRepo{products: 42, lowStock: 3, receipts: 5, deliveries: 2, transfers: 7}
	uc := analytics.NewDashboardUseCase(repo, 10)

	summary, err := uc.GetSummary("org-1")
	require.NoError(t, err)

	assert.Equal(t, int64(42), summary.TotalProducts)
	assert.Equal(t, int64(3), summary.LowStockItems)
	assert.Equal(t, int64(5), summary.PendingReceipts)
	assert.Equal(t, int64(2), summary.PendingDeliveries)
	assert.Equal(t, int64(7), summary.InternalTransfers)

	assert.Equal(t, int64(10), repo.thresholdPedido)
	assert.Equal(t, []string{entity.StatusDraft, entity.StatusValidated}, repo.receiptStatuses,
		"pendiente de recepción = Draft o Validated")
	assert.Equal(t, []string{entity.StatusDraft, entity.StatusReady}, repo.deliveryStatuses,
		"pendiente de entrega = Draft o Ready")
}

func TestGetSummary_ErrorEnUnConteo_Propaga(t *testing.T) {
	repo := &fakeDashboardRepo{err: errors.New("conexión caída")}
	uc := analytics.NewDashboardUseCase(repo, 10)

	_, err := uc.GetSummary("org-1")
	assert.Error(t, err)
}
