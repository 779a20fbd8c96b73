package dto

import "time"

// CreateTransferRequest entrada para crear un traslado interno.
type CreateTransferRequest struct {
	ProductID string `json:"productId" validate:"required"`
	From      string `json:"from" validate:"required,min=1,max=200"`
	To        string `json:"to" validate:"required,min=1,max=200"`
	Qty       int64  `json:"qty" validate:"required,gt=0"`
	Status    string `json:"status" validate:"omitempty,oneof=Draft Ready Completed"`
	Date      string `json:"date" validate:"required"`
}

// UpdateTransferRequest entrada para actualizar un traslado (merge parcial).
type UpdateTransferRequest struct {
	ProductID *string `json:"productId"`
	From      *string `json:"from" validate:"omitempty,min=1,max=200"`
	To        *string `json:"to" validate:"omitempty,min=1,max=200"`
	Qty       *int64  `json:"qty" validate:"omitempty,gt=0"`
	Status    *string `json:"status" validate:"omitempty,oneof=Draft Ready Completed"`
	Date      *string `json:"date"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	ProductID      string    `json:"productId"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Qty            int64     `json:"qty"`
	Status         string    `json:"status"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TransferListResponse lista paginada de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
