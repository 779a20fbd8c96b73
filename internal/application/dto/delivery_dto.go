package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

// DeliveryItemDTO línea de entrega en el API.
type DeliveryItemDTO struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateDeliveryRequest entrada para crear una entrega.
type CreateDeliveryRequest struct {
	Customer string            `json:"customer" validate:"required,min=1,max=200"`
	Date     string            `json:"date" validate:"required"`
	Items    []DeliveryItemDTO `json:"items" validate:"dive"`
	Status   string            `json:"status" validate:"omitempty,oneof=Draft Ready Completed"`
	Total    decimal.Decimal   `json:"total"`
}

// UpdateDeliveryRequest entrada para actualizar una entrega (merge parcial).
type UpdateDeliveryRequest struct {
	Customer *string           `json:"customer" validate:"omitempty,min=1,max=200"`
	Date     *string           `json:"date"`
	Items    []DeliveryItemDTO `json:"items" validate:"omitempty,dive"`
	Status   *string           `json:"status" validate:"omitempty,oneof=Draft Ready Completed"`
	Total    *decimal.Decimal  `json:"total"`
}

// DeliveryResponse salida de una entrega.
type DeliveryResponse struct {
	ID             string            `json:"id"`
	OrganizationID string            `json:"organizationId"`
	Customer       string            `json:"customer"`
	Date           string            `json:"date"`
	Items          []DeliveryItemDTO `json:"items"`
	Status         string            `json:"status"`
	Total          decimal.Decimal   `json:"total"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// DeliveryListResponse lista paginada de entregas.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToEntityDeliveryItems convierte las líneas del DTO a entidad.
func ToEntityDeliveryItems(items []DeliveryItemDTO) []entity.DeliveryItem {
	out := make([]entity.DeliveryItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.DeliveryItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

// FromEntityDeliveryItems convierte las líneas de entidad al DTO.
func FromEntityDeliveryItems(items []entity.DeliveryItem) []DeliveryItemDTO {
	out := make([]DeliveryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, DeliveryItemDTO{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}
