package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/audit"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/inventory"
	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memReceiptRepo struct {
	receipts map[string]*entity.Receipt
}

func (m *memReceiptRepo) Create(r *entity.Receipt) error { m.receipts[r.ID] = r; return nil }

func (m *memReceiptRepo) GetByID(id, organizationID string) (*entity.Receipt, error) {
	r, ok := m.receipts[id]
	if !ok || r.OrganizationID != organizationID {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memReceiptRepo) Update(r *entity.Receipt) error { m.receipts[r.ID] = r; return nil }

func (m *memReceiptRepo) ListByOrganization(organizationID string, _, _ int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range m.receipts {
		if r.OrganizationID == organizationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReceiptRepo) Delete(id, _ string) error { delete(m.receipts, id); return nil }

type memProductRepo struct {
	products map[string]*entity.Product
}

func (m *memProductRepo) Create(p *entity.Product) error { m.products[p.ID] = p; return nil }

func (m *memProductRepo) GetByID(id, organizationID string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok || p.OrganizationID != organizationID {
		return nil, nil
	}
	return p, nil
}

func (m *memProductRepo) GetForUpdate(id, organizationID string) (*entity.Product, error) {
	return m.GetByID(id, organizationID)
}

func (m *memProductRepo) GetByOrgAndSKU(string, string) (*entity.Product, error) { return nil, nil }

func (m *memProductRepo) Update(p *entity.Product) error { m.products[p.ID] = p; return nil }

func (m *memProductRepo) UpdateStock(productID string, stock int64) error {
	m.products[productID].Stock = stock
	return nil
}

func (m *memProductRepo) ListByOrganization(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (m *memProductRepo) Delete(string, string) error { return nil }

type memWarehouseRepo struct{}

func (memWarehouseRepo) Create(*entity.Warehouse) error                    { return nil }
func (memWarehouseRepo) GetByID(string, string) (*entity.Warehouse, error) { return nil, nil }

func (memWarehouseRepo) FirstByOrganization(string) (*entity.Warehouse, error) {
	return &entity.Warehouse{ID: "wh-1", Name: "Bodega Central"}, nil
}
func (memWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (memWarehouseRepo) ListByOrganization(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (memWarehouseRepo) Delete(string, string) error { return nil }

type memMovementRepo struct {
	created []*entity.StockMovement
}

func (m *memMovementRepo) Create(mov *entity.StockMovement) error {
	m.created = append(m.created, mov)
	return nil
}

func (m *memMovementRepo) ListByOrganization(string, repository.MovementFilter, int, int) ([]*entity.StockMovement, error) {
	return m.created, nil
}

type memAuditRepo struct {
	entries []*entity.AuditLog
}

func (m *memAuditRepo) Create(l *entity.AuditLog) error {
	m.entries = append(m.entries, l)
	return nil
}

func (m *memAuditRepo) ListByOrganization(string, int, int) ([]*entity.AuditLog, error) {
	return m.entries, nil
}

// fakeTxRunner ejecuta fn contra un TxRepos fijo, sin transacción real.
type fakeTxRunner struct {
	repos inventory.TxRepos
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r inventory.TxRepos) error) error {
	return fn(f.repos)
}

// entorno agrupa el caso de uso armado sobre fakes y los fakes mismos para
// inspección en los asserts.
type entorno struct {
	uc        *usecase.ReceiptUseCase
	receipts  *memReceiptRepo
	products  *memProductRepo
	movements *memMovementRepo
	audits    *memAuditRepo
}

func nuevoEntorno(products ...*entity.Product) *entorno {
	rr := &memReceiptRepo{receipts: map[string]*entity.Receipt{}}
	pr := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		pr.products[p.ID] = p
	}
	mr := &memMovementRepo{}
	ar := &memAuditRepo{}
	runner := &fakeTxRunner{repos: inventory.TxRepos{
		Receipts:   rr,
		Products:   pr,
		Warehouses: memWarehouseRepo{},
		Movements:  mr,
	}}
	propagator := inventory.NewPropagator("Main Warehouse", nil)
	recorder := audit.NewRecorder(ar, nil)
	return &entorno{
		uc:        usecase.NewReceiptUseCase(rr, runner, propagator, recorder),
		receipts:  rr,
		products:  pr,
		movements: mr,
		audits:    ar,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptCreate_SinStatus_QuedaEnDraftYNoPropaga(t *testing.T) {
	env := nuevoEntorno(&entity.Product{ID: "p-1", OrganizationID: "org-1", Stock: 100})

	resp, err := env.uc.Create(context.Background(), "org-1", "user-1", dto.CreateReceiptRequest{
		Supplier: "ACME",
		Date:     "2025-03-10",
		Items:    []dto.ReceiptItemDTO{{ProductID: "p-1", Quantity: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, resp.Status)

	assert.Equal(t, int64(100), env.products.products["p-1"].Stock, "Draft no toca el stock")
	assert.Empty(t, env.movements.created)

	require.Len(t, env.audits.entries, 1)
	assert.Equal(t, entity.ActionCreate, env.audits.entries[0].Action)
}

func TestReceiptCreate_EnCompleted_PropagaEnLaMismaEscritura(t *testing.T) {
	env := nuevoEntorno(&entity.Product{ID: "p-1", OrganizationID: "org-1", Name: "Tornillos", Stock: 100})

	resp, err := env.uc.Create(context.Background(), "org-1", "user-1", dto.CreateReceiptRequest{
		Supplier: "ACME",
		Date:     "2025-03-10",
		Items:    []dto.ReceiptItemDTO{{ProductID: "p-1", Quantity: 50}},
		Status:   entity.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, resp.Status)

	assert.Equal(t, int64(150), env.products.products["p-1"].Stock,
		"crear directamente en estado terminal dispara los mismos efectos que el PUT")
	require.Len(t, env.movements.created, 1)
	assert.Equal(t, resp.ID, env.movements.created[0].DocumentID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func sembrarRecepcion(env *entorno, status string) *entity.Receipt {
	r := &entity.Receipt{
		ID:             "rec-1",
		OrganizationID: "org-1",
		Supplier:       "ACME",
		Date:           "2025-03-10",
		Items:          []entity.ReceiptItem{{ProductID: "p-1", Quantity: 50}},
		Status:         status,
	}
	env.receipts.receipts[r.ID] = r
	return r
}

func TestReceiptUpdate_DraftAValidated_PropagaYAuditaValidate(t *testing.T) {
	env := nuevoEntorno(&entity.Product{ID: "p-1", OrganizationID: "org-1", Stock: 100})
	sembrarRecepcion(env, entity.StatusDraft)

	status := entity.StatusValidated
	resp, err := env.uc.Update(context.Background(), "rec-1", "org-1", "user-1", dto.UpdateReceiptRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusValidated, resp.Status)

	assert.Equal(t, int64(150), env.products.products["p-1"].Stock)
	assert.Len(t, env.movements.created, 1)

	require.Len(t, env.audits.entries, 1)
	entry := env.audits.entries[0]
	assert.Equal(t, entity.ActionValidate, entry.Action)
	assert.Equal(t, entity.ChangeKindStatus, entry.Changes.Kind)
	assert.Equal(t, entity.StatusDraft, entry.Changes.From)
	assert.Equal(t, entity.StatusValidated, entry.Changes.To)
}

func TestReceiptUpdate_ValidatedACompleted_NoRePropaga(t *testing.T) {
	// El stock ya se sumó en Draft→Validated; completar después no debe sumar de nuevo.
	env := nuevoEntorno(&entity.Product{ID: "p-1", OrganizationID: "org-1", Stock: 150})
	sembrarRecepcion(env, entity.StatusValidated)

	status := entity.StatusCompleted
	_, err := env.uc.Update(context.Background(), "rec-1", "org-1", "user-1", dto.UpdateReceiptRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, int64(150), env.products.products["p-1"].Stock)
	assert.Empty(t, env.movements.created)

	require.Len(t, env.audits.entries, 1)
	assert.Equal(t, entity.ActionUpdate, env.audits.entries[0].Action,
		"Validated→Completed audita UPDATE, no VALIDATE")
}

func TestReceiptUpdate_SinCambioDeEstado_AuditaCampos(t *testing.T) {
	env := nuevoEntorno()
	sembrarRecepcion(env, entity.StatusDraft)

	supplier := "Proveedor Nuevo"
	resp, err := env.uc.Update(context.Background(), "rec-1", "org-1", "user-1", dto.UpdateReceiptRequest{Supplier: &supplier})
	require.NoError(t, err)
	assert.Equal(t, "Proveedor Nuevo", resp.Supplier)
	assert.Equal(t, entity.StatusDraft, resp.Status, "los campos no enviados no cambian")

	require.Len(t, env.audits.entries, 1)
	entry := env.audits.entries[0]
	assert.Equal(t, entity.ActionUpdate, entry.Action)
	assert.Equal(t, entity.ChangeKindFields, entry.Changes.Kind)
	assert.Equal(t, "Proveedor Nuevo", entry.Changes.Fields["supplier"])
}

func TestReceiptUpdate_NoExiste_RetornaNotFound(t *testing.T) {
	env := nuevoEntorno()

	status := entity.StatusValidated
	_, err := env.uc.Update(context.Background(), "no-existe", "org-1", "user-1", dto.UpdateReceiptRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, env.audits.entries, "un update fallido no asienta auditoría")
}

func TestReceiptDelete_AuditaDelete(t *testing.T) {
	env := nuevoEntorno()
	sembrarRecepcion(env, entity.StatusDraft)

	require.NoError(t, env.uc.Delete("rec-1", "org-1", "user-1"))
	assert.Empty(t, env.receipts.receipts)

	require.Len(t, env.audits.entries, 1)
	assert.Equal(t, entity.ActionDelete, env.audits.entries[0].Action)
}
