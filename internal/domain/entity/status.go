package entity

// Estados de los documentos de inventario. Los valores van tal cual al API
// (el cliente histórico los espera capitalizados en inglés).
//
// Receipt:    Draft → Validated → Completed
// Delivery:   Draft → Ready → Completed
// Transfer:   Draft → Ready → Completed
// Adjustment: Draft → Completed
const (
	StatusDraft     = "Draft"
	StatusReady     = "Ready"
	StatusValidated = "Validated"
	StatusCompleted = "Completed"
)
