package entity

import "time"

// Unit representa una unidad de medida (pcs, kg, m...) configurable por organización.
type Unit struct {
	ID             string
	OrganizationID string
	Name           string
	Code           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
