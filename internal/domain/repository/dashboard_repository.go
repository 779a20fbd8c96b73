package repository

// DashboardRepository consultas read-only de conteos para el dashboard (DIP).
type DashboardRepository interface {
	CountProducts(organizationID string) (int64, error)
	CountLowStock(organizationID string, threshold int64) (int64, error)
	CountReceiptsByStatus(organizationID string, statuses ...string) (int64, error)
	CountDeliveriesByStatus(organizationID string, statuses ...string) (int64, error)
	CountTransfers(organizationID string) (int64, error)
}
