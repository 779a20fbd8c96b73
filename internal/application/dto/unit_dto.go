package dto

import "time"

// CreateUnitRequest entrada para crear una unidad de medida.
type CreateUnitRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Code string `json:"code" validate:"required,min=1,max=20"`
}

// UpdateUnitRequest entrada para actualizar una unidad de medida.
type UpdateUnitRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Code *string `json:"code" validate:"omitempty,min=1,max=20"`
}

// UnitResponse salida de una unidad de medida.
type UnitResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UnitListResponse lista paginada de unidades.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
