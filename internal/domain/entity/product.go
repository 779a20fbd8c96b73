package entity

import "time"

// Product representa un producto o SKU del inventario.
// Stock es la única fuente de verdad del disponible; solo lo muta el
// propagador de transiciones de estado (o una edición directa del producto).
type Product struct {
	ID             string
	OrganizationID string
	Name           string
	SKU            string // único por organización
	Category       string
	UOM            string // unidad de medida (pcs, kg, ...)
	Stock          int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
