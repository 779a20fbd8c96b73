package entity

import "time"

// Transfer traslado interno de un producto entre dos ubicaciones.
// Al pasar a Completed genera un movimiento en el libro pero NO muta el stock:
// cambia la ubicación, no la cantidad total.
type Transfer struct {
	ID             string
	OrganizationID string
	ProductID      string
	From           string
	To             string
	Qty            int64
	Status         string // Draft, Ready, Completed
	Date           string // YYYY-MM-DD
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
