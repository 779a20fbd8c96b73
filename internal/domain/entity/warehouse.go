package entity

import "time"

// Warehouse representa una bodega o ubicación física de inventario.
// La primera bodega de la organización actúa como ubicación por defecto
// para los movimientos de recepciones y entregas.
type Warehouse struct {
	ID             string
	OrganizationID string
	Name           string
	Location       string
	Capacity       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
