package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

// ReceiptItemDTO línea de recepción en el API.
type ReceiptItemDTO struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateReceiptRequest entrada para crear una recepción. Si Status viene vacío
// se crea en Draft; crearla directamente en Validated/Completed dispara los
// mismos efectos de stock que la transición por PUT.
type CreateReceiptRequest struct {
	Supplier string           `json:"supplier" validate:"required,min=1,max=200"`
	Date     string           `json:"date" validate:"required"`
	Items    []ReceiptItemDTO `json:"items" validate:"dive"`
	Status   string           `json:"status" validate:"omitempty,oneof=Draft Validated Completed"`
	Total    decimal.Decimal  `json:"total"`
}

// UpdateReceiptRequest entrada para actualizar una recepción (merge parcial).
type UpdateReceiptRequest struct {
	Supplier *string          `json:"supplier" validate:"omitempty,min=1,max=200"`
	Date     *string          `json:"date"`
	Items    []ReceiptItemDTO `json:"items" validate:"omitempty,dive"`
	Status   *string          `json:"status" validate:"omitempty,oneof=Draft Validated Completed"`
	Total    *decimal.Decimal `json:"total"`
}

// ReceiptResponse salida de una recepción.
type ReceiptResponse struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organizationId"`
	Supplier       string           `json:"supplier"`
	Date           string           `json:"date"`
	Items          []ReceiptItemDTO `json:"items"`
	Status         string           `json:"status"`
	Total          decimal.Decimal  `json:"total"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ReceiptListResponse lista paginada de recepciones.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ToEntityItems convierte las líneas del DTO a entidad.
func ToEntityReceiptItems(items []ReceiptItemDTO) []entity.ReceiptItem {
	out := make([]entity.ReceiptItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.ReceiptItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}

// FromEntityReceiptItems convierte las líneas de entidad al DTO.
func FromEntityReceiptItems(items []entity.ReceiptItem) []ReceiptItemDTO {
	out := make([]ReceiptItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, ReceiptItemDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}
