package entity

import "time"

// Acciones registradas en la bitácora.
const (
	ActionCreate   = "CREATE"
	ActionUpdate   = "UPDATE"
	ActionDelete   = "DELETE"
	ActionValidate = "VALIDATE" // transición Draft→Validated de una recepción
)

// Tipos de evento de cambio para AuditChange.Kind.
const (
	ChangeKindStatus = "status"
	ChangeKindFields = "fields"
)

// AuditChange evento de cambio tipado que se persiste como payload JSON de la
// bitácora: o bien una transición de estado (from/to) o bien los campos enviados.
type AuditChange struct {
	Kind   string         `json:"kind"` // status | fields
	From   string         `json:"from,omitempty"`
	To     string         `json:"to,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// StatusChange construye el evento de transición de estado.
func StatusChange(from, to string) AuditChange {
	return AuditChange{Kind: ChangeKindStatus, From: from, To: to}
}

// FieldsChange construye el evento con los campos enviados en el request.
func FieldsChange(fields map[string]any) AuditChange {
	return AuditChange{Kind: ChangeKindFields, Fields: fields}
}

// AuditLog entrada inmutable de la bitácora: una por cada create/update/delete.
type AuditLog struct {
	ID             string
	OrganizationID string
	Action         string // CREATE, UPDATE, DELETE, VALIDATE
	UserID         string
	DocumentType   string
	DocumentID     string
	Changes        AuditChange
	Timestamp      time.Time
}
