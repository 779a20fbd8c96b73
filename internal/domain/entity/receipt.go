package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptItem línea de una recepción: producto, cantidad entrante y precio unitario.
type ReceiptItem struct {
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Receipt documento de entrada de stock (compra a proveedor).
// Al pasar de Draft a Validated o Completed, cada línea suma su cantidad al
// stock del producto y genera un movimiento en el libro.
type Receipt struct {
	ID             string
	OrganizationID string
	Supplier       string
	Date           string // YYYY-MM-DD, tal como lo envía el cliente
	Items          []ReceiptItem
	Status         string // Draft, Validated, Completed
	Total          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
