package postgres

import (
	"context"
	"fmt"

	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de conteos para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de conteos del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) count(query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}

// CountProducts cuenta los productos de la organización.
func (r *DashboardRepo) CountProducts(organizationID string) (int64, error) {
	return r.count(`SELECT count(*) FROM products WHERE organization_id = $1`, organizationID)
}

// CountLowStock cuenta productos con stock por debajo del umbral.
func (r *DashboardRepo) CountLowStock(organizationID string, threshold int64) (int64, error) {
	return r.count(`SELECT count(*) FROM products WHERE organization_id = $1 AND stock < $2`,
		organizationID, threshold)
}

// CountReceiptsByStatus cuenta recepciones en cualquiera de los estados dados.
func (r *DashboardRepo) CountReceiptsByStatus(organizationID string, statuses ...string) (int64, error) {
	return r.count(`SELECT count(*) FROM receipts WHERE organization_id = $1 AND status = ANY($2)`,
		organizationID, statuses)
}

// CountDeliveriesByStatus cuenta entregas en cualquiera de los estados dados.
func (r *DashboardRepo) CountDeliveriesByStatus(organizationID string, statuses ...string) (int64, error) {
	return r.count(`SELECT count(*) FROM deliveries WHERE organization_id = $1 AND status = ANY($2)`,
		organizationID, statuses)
}

// CountTransfers cuenta todos los traslados de la organización.
func (r *DashboardRepo) CountTransfers(organizationID string) (int64, error) {
	return r.count(`SELECT count(*) FROM transfers WHERE organization_id = $1`, organizationID)
}
