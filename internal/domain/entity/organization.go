package entity

import "time"

// Organization representa un tenant del sistema. Toda lectura y escritura de
// entidades de inventario filtra por OrganizationID.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
