package dto

// DashboardSummaryDTO conteos del dashboard para la organización.
type DashboardSummaryDTO struct {
	TotalProducts     int64 `json:"totalProducts"`
	LowStockItems     int64 `json:"lowStockItems"`
	PendingReceipts   int64 `json:"pendingReceipts"`
	PendingDeliveries int64 `json:"pendingDeliveries"`
	InternalTransfers int64 `json:"internalTransfers"`
}
