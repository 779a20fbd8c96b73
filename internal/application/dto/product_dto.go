package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	SKU      string `json:"sku" validate:"required,min=1,max=100"`
	Category string `json:"category"`
	UOM      string `json:"uom"`
	Stock    int64  `json:"stock" validate:"omitempty,min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (merge parcial).
// Stock editable directamente: es la vía de corrección manual fuera de ajustes.
type UpdateProductRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	SKU      *string `json:"sku" validate:"omitempty,min=1,max=100"`
	Category *string `json:"category"`
	UOM      *string `json:"uom"`
	Stock    *int64  `json:"stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	Category       string    `json:"category"`
	UOM            string    `json:"uom"`
	Stock          int64     `json:"stock"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
