package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryItem línea de una entrega: producto y cantidad saliente.
type DeliveryItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// Delivery documento de salida de stock (entrega a cliente).
// Al pasar a Completed, cada línea resta su cantidad del stock del producto
// (con piso en cero) y genera un movimiento en el libro.
type Delivery struct {
	ID             string
	OrganizationID string
	Customer       string
	Date           string // YYYY-MM-DD
	Items          []DeliveryItem
	Status         string // Draft, Ready, Completed
	Total          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
