package dto

import "time"

// MovementQuery filtros de GET /api/stock-movements (query params).
type MovementQuery struct {
	ProductID string `query:"productId"`
	Location  string `query:"location"`
	Operation string `query:"operation" validate:"omitempty,oneof=Receipt Delivery Transfer Adjustment"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	PageRequest
}

// MovementResponse asiento del libro de movimientos.
type MovementResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	Operation      string    `json:"operation"`
	Beginning      int64     `json:"beginning"`
	Qty            int64     `json:"qty"`
	Ending         int64     `json:"ending"`
	Location       string    `json:"location"`
	Date           string    `json:"date"`
	User           string    `json:"user"`
	DocumentID     string    `json:"documentId,omitempty"`
	DocumentType   string    `json:"documentType,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
