package entity

import "time"

// Adjustment concilia el stock contado físicamente contra el registrado.
// Al pasar a Completed fija el stock del producto en Counted y genera un
// movimiento con qty = Variance (= Counted − Recorded).
type Adjustment struct {
	ID             string
	OrganizationID string
	ProductID      string
	ProductName    string
	Location       string
	Counted        int64
	Recorded       int64
	Variance       int64 // Counted − Recorded
	Reason         string
	Status         string // Draft, Completed
	Date           string // YYYY-MM-DD
	UserID         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
