package audit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/audit"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

type memAuditRepo struct {
	entries []*entity.AuditLog
	err     error
}

func (m *memAuditRepo) Create(l *entity.AuditLog) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, l)
	return nil
}

func (m *memAuditRepo) ListByOrganization(string, int, int) ([]*entity.AuditLog, error) {
	return m.entries, nil
}

func TestRecord_AsientaEntradaCompleta(t *testing.T) {
	repo := &memAuditRepo{}
	rec := audit.NewRecorder(repo, nil)

	rec.Record(audit.Entry{
		OrganizationID: "org-1",
		Action:         entity.ActionCreate,
		UserID:         "user-1",
		DocumentType:   "Receipt",
		DocumentID:     "rec-1",
		Changes:        entity.FieldsChange(map[string]any{"supplier": "ACME"}),
	})

	require.Len(t, repo.entries, 1)
	row := repo.entries[0]
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, "org-1", row.OrganizationID)
	assert.Equal(t, entity.ActionCreate, row.Action)
	assert.Equal(t, "Receipt", row.DocumentType)
	assert.Equal(t, "rec-1", row.DocumentID)
	assert.False(t, row.Timestamp.IsZero())
}

func TestRecord_SinUserID_NoAsienta(t *testing.T) {
	repo := &memAuditRepo{}
	rec := audit.NewRecorder(repo, nil)

	rec.Record(audit.Entry{OrganizationID: "org-1", Action: entity.ActionUpdate, DocumentType: "Product"})

	assert.Empty(t, repo.entries, "sin usuario identificado no se asienta")
}

func TestRecord_ErrorDePersistencia_NoPropaga(t *testing.T) {
	repo := &memAuditRepo{err: errors.New("conexión caída")}
	rec := audit.NewRecorder(repo, nil)

	// Record no retorna error: la bitácora nunca hace fallar la petición.
	rec.Record(audit.Entry{OrganizationID: "org-1", Action: entity.ActionCreate, UserID: "user-1"})
	assert.Empty(t, repo.entries)
}

func TestActionForStatusChange(t *testing.T) {
	cases := []struct {
		docType, old, nuevo, want string
	}{
		{"Receipt", entity.StatusDraft, entity.StatusValidated, entity.ActionValidate},
		{"Receipt", entity.StatusDraft, entity.StatusCompleted, entity.ActionUpdate},
		{"Receipt", entity.StatusValidated, entity.StatusCompleted, entity.ActionUpdate},
		{"Delivery", entity.StatusDraft, entity.StatusCompleted, entity.ActionUpdate},
		{"Transfer", entity.StatusReady, entity.StatusCompleted, entity.ActionUpdate},
		{"Adjustment", entity.StatusDraft, entity.StatusCompleted, entity.ActionUpdate},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, audit.ActionForStatusChange(c.docType, c.old, c.nuevo),
			"ActionForStatusChange(%s, %s, %s)", c.docType, c.old, c.nuevo)
	}
}
