package entity

import "time"

// Operaciones que originan un movimiento de stock.
const (
	OperationReceipt    = "Receipt"
	OperationDelivery   = "Delivery"
	OperationTransfer   = "Transfer"
	OperationAdjustment = "Adjustment"
)

// StockMovement asiento inmutable del libro de movimientos: qué cantidad
// cambió, por qué documento y el antes/después del stock.
//
// Invariante: Ending == Beginning + Qty para Receipt/Delivery/Adjustment.
// Transfer es la excepción: Ending == Beginning (cambia la ubicación, no la cantidad).
type StockMovement struct {
	ID             string
	OrganizationID string
	ProductID      string
	ProductName    string
	Operation      string // Receipt, Delivery, Transfer, Adjustment
	Beginning      int64
	Qty            int64 // delta con signo
	Ending         int64
	Location       string
	Date           string // YYYY-MM-DD del documento origen
	User           string // UserID que disparó la transición
	DocumentID     string
	DocumentType   string
	CreatedAt      time.Time
}
