package dto

import "time"

// CreateAdjustmentRequest entrada para crear un ajuste de inventario.
// Variance no se recibe: siempre se deriva como Counted − Recorded.
type CreateAdjustmentRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	ProductName string `json:"productName"`
	Location    string `json:"location"`
	Counted     int64  `json:"counted" validate:"min=0"`
	Recorded    int64  `json:"recorded" validate:"min=0"`
	Reason      string `json:"reason"`
	Status      string `json:"status" validate:"omitempty,oneof=Draft Completed"`
	Date        string `json:"date" validate:"required"`
}

// UpdateAdjustmentRequest entrada para actualizar un ajuste (merge parcial).
type UpdateAdjustmentRequest struct {
	ProductID   *string `json:"productId"`
	ProductName *string `json:"productName"`
	Location    *string `json:"location"`
	Counted     *int64  `json:"counted" validate:"omitempty,min=0"`
	Recorded    *int64  `json:"recorded" validate:"omitempty,min=0"`
	Reason      *string `json:"reason"`
	Status      *string `json:"status" validate:"omitempty,oneof=Draft Completed"`
	Date        *string `json:"date"`
}

// AdjustmentResponse salida de un ajuste.
type AdjustmentResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	Location       string    `json:"location"`
	Counted        int64     `json:"counted"`
	Recorded       int64     `json:"recorded"`
	Variance       int64     `json:"variance"`
	Reason         string    `json:"reason"`
	Status         string    `json:"status"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AdjustmentListResponse lista paginada de ajustes.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
