package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/inventory"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo mapa de productos por ID. UpdateStock muta el stock en sitio.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id, organizationID string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.OrganizationID != organizationID {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProductRepo) GetForUpdate(id, organizationID string) (*entity.Product, error) {
	return f.GetByID(id, organizationID)
}

func (f *fakeProductRepo) GetByOrgAndSKU(organizationID, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.OrganizationID == organizationID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProductRepo) UpdateStock(productID string, stock int64) error {
	f.products[productID].Stock = stock
	return nil
}

func (f *fakeProductRepo) ListByOrganization(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(id, _ string) error { delete(f.products, id); return nil }

// fakeWarehouseRepo devuelve siempre la misma "primera bodega" (o nil).
type fakeWarehouseRepo struct {
	first *entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(string, string) (*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) FirstByOrganization(string) (*entity.Warehouse, error) {
	return f.first, nil
}
func (f *fakeWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) ListByOrganization(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) Delete(string, string) error { return nil }

// fakeMovementRepo acumula los asientos creados.
type fakeMovementRepo struct {
	created []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMovementRepo) ListByOrganization(string, repository.MovementFilter, int, int) ([]*entity.StockMovement, error) {
	return f.created, nil
}

// newTxRepos arma un TxRepos con fakes precargados con los productos dados y
// una bodega "Bodega Central" como primera de la organización.
func newTxRepos(products ...*entity.Product) (inventory.TxRepos, *fakeProductRepo, *fakeMovementRepo) {
	pr := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		pr.products[p.ID] = p
	}
	mr := &fakeMovementRepo{}
	wr := &fakeWarehouseRepo{first: &entity.Warehouse{ID: "wh-1", OrganizationID: "org-1", Name: "Bodega Central"}}
	return inventory.TxRepos{Products: pr, Warehouses: wr, Movements: mr}, pr, mr
}

func producto(id string, stock int64) *entity.Product {
	return &entity.Product{ID: id, OrganizationID: "org-1", Name: "Producto " + id, SKU: "SKU-" + id, Stock: stock}
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de disparo
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptTriggers(t *testing.T) {
	cases := []struct {
		old, nuevo string
		want       bool
	}{
		{entity.StatusDraft, entity.StatusValidated, true},
		{entity.StatusDraft, entity.StatusCompleted, true},
		{entity.StatusDraft, entity.StatusDraft, false},
		{entity.StatusValidated, entity.StatusCompleted, false}, // ya se aplicó en Draft→Validated
		{entity.StatusValidated, entity.StatusValidated, false},
		{entity.StatusCompleted, entity.StatusCompleted, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, inventory.ReceiptTriggers(c.old, c.nuevo),
			"ReceiptTriggers(%s, %s)", c.old, c.nuevo)
	}
}

func TestDeliveryTriggers(t *testing.T) {
	cases := []struct {
		old, nuevo string
		want       bool
	}{
		{entity.StatusDraft, entity.StatusCompleted, true},
		{entity.StatusReady, entity.StatusCompleted, true},
		{entity.StatusDraft, entity.StatusReady, false},
		{entity.StatusCompleted, entity.StatusCompleted, false}, // PUT sin cambio no re-dispara
	}
	for _, c := range cases {
		assert.Equal(t, c.want, inventory.DeliveryTriggers(c.old, c.nuevo),
			"DeliveryTriggers(%s, %s)", c.old, c.nuevo)
		// Transfer y Adjustment comparten la misma regla de transición.
		assert.Equal(t, c.want, inventory.TransferTriggers(c.old, c.nuevo))
		assert.Equal(t, c.want, inventory.AdjustmentTriggers(c.old, c.nuevo))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyReceipt
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyReceipt_SumaStockYAsientaMovimiento(t *testing.T) {
	repos, pr, mr := newTxRepos(producto("p-1", 100))
	p := inventory.NewPropagator("Main Warehouse", nil)

	receipt := &entity.Receipt{
		ID:             "rec-1",
		OrganizationID: "org-1",
		Date:           "2025-03-10",
		Items:          []entity.ReceiptItem{{ProductID: "p-1", Quantity: 50}},
		Status:         entity.StatusValidated,
	}
	require.NoError(t, p.ApplyReceipt(repos, receipt, "user-1"))

	assert.Equal(t, int64(150), pr.products["p-1"].Stock, "100 + 50 = 150")

	require.Len(t, mr.created, 1)
	mov := mr.created[0]
	assert.Equal(t, entity.OperationReceipt, mov.Operation)
	assert.Equal(t, int64(100), mov.Beginning)
	assert.Equal(t, int64(50), mov.Qty)
	assert.Equal(t, int64(150), mov.Ending)
	assert.Equal(t, "Bodega Central", mov.Location, "debe usar la primera bodega de la organización")
	assert.Equal(t, "2025-03-10", mov.Date, "la fecha del asiento es la del documento")
	assert.Equal(t, "user-1", mov.User)
	assert.Equal(t, "rec-1", mov.DocumentID)
	assert.Equal(t, "Receipt", mov.DocumentType)
	assert.NotEmpty(t, mov.ID)
}

func TestApplyReceipt_VariasLineas_UnAsientoPorLinea(t *testing.T) {
	repos, pr, mr := newTxRepos(producto("p-1", 10), producto("p-2", 0))
	p := inventory.NewPropagator("Main Warehouse", nil)

	receipt := &entity.Receipt{
		ID:             "rec-2",
		OrganizationID: "org-1",
		Items: []entity.ReceiptItem{
			{ProductID: "p-1", Quantity: 5},
			{ProductID: "p-2", Quantity: 7},
		},
		Status: entity.StatusCompleted,
	}
	require.NoError(t, p.ApplyReceipt(repos, receipt, "user-1"))

	assert.Equal(t, int64(15), pr.products["p-1"].Stock)
	assert.Equal(t, int64(7), pr.products["p-2"].Stock)
	assert.Len(t, mr.created, 2)
}

func TestApplyReceipt_ProductoInexistente_OmiteLaLineaYSigue(t *testing.T) {
	repos, pr, mr := newTxRepos(producto("p-1", 10))
	p := inventory.NewPropagator("Main Warehouse", nil)

	receipt := &entity.Receipt{
		ID:             "rec-3",
		OrganizationID: "org-1",
		Items: []entity.ReceiptItem{
			{ProductID: "fantasma", Quantity: 99},
			{ProductID: "p-1", Quantity: 5},
		},
		Status: entity.StatusValidated,
	}
	require.NoError(t, p.ApplyReceipt(repos, receipt, "user-1"),
		"una línea sin producto no debe abortar la transacción")

	assert.Equal(t, int64(15), pr.products["p-1"].Stock, "las demás líneas sí se aplican")
	require.Len(t, mr.created, 1, "solo la línea válida asienta movimiento")
	assert.Equal(t, "p-1", mr.created[0].ProductID)
}

func TestApplyReceipt_SinBodegas_UsaUbicacionPorDefecto(t *testing.T) {
	repos, _, mr := newTxRepos(producto("p-1", 0))
	repos.Warehouses = &fakeWarehouseRepo{first: nil}
	p := inventory.NewPropagator("Main Warehouse", nil)

	receipt := &entity.Receipt{
		ID:             "rec-4",
		OrganizationID: "org-1",
		Items:          []entity.ReceiptItem{{ProductID: "p-1", Quantity: 1}},
		Status:         entity.StatusValidated,
	}
	require.NoError(t, p.ApplyReceipt(repos, receipt, "user-1"))

	require.Len(t, mr.created, 1)
	assert.Equal(t, "Main Warehouse", mr.created[0].Location)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDelivery
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelivery_RestaStock(t *testing.T) {
	repos, pr, mr := newTxRepos(producto("p-1", 100))
	p := inventory.NewPropagator("Main Warehouse", nil)

	delivery := &entity.Delivery{
		ID:             "del-1",
		OrganizationID: "org-1",
		Date:           "2025-03-11",
		Items:          []entity.DeliveryItem{{ProductID: "p-1", Quantity: 40}},
		Status:         entity.StatusCompleted,
	}
	require.NoError(t, p.ApplyDelivery(repos, delivery, "user-1"))

	assert.Equal(t, int64(60), pr.products["p-1"].Stock)

	require.Len(t, mr.created, 1)
	mov := mr.created[0]
	assert.Equal(t, entity.OperationDelivery, mov.Operation)
	assert.Equal(t, int64(100), mov.Beginning)
	assert.Equal(t, int64(-40), mov.Qty, "el asiento de entrega es negativo")
	assert.Equal(t, int64(60), mov.Ending)
}

func TestApplyDelivery_SobreGiro_PisoEnCero(t *testing.T) {
	repos, pr, mr := newTxRepos(producto("p-1", 30))
	p := inventory.NewPropagator("Main Warehouse", nil)

	delivery := &entity.Delivery{
		ID:             "del-2",
		OrganizationID: "org-1",
		Items:          []entity.DeliveryItem{{ProductID: "p-1", Quantity: 50}},
		Status:         entity.StatusCompleted,
	}
	require.NoError(t, p.ApplyDelivery(repos, delivery, "user-1"))

	assert.Equal(t, int64(0), pr.products["p-1"].Stock, "el stock nunca queda negativo")

	require.Len(t, mr.created, 1)
	mov := mr.created[0]
	assert.Equal(t, int64(30), mov.Beginning)
	assert.Equal(t, int64(-50), mov.Qty, "el asiento registra la cantidad completa pedida")
	assert.Equal(t, int64(0), mov.Ending)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyTransfer
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyTransfer_NoMutaStock(t *testing.T) {
	repos, pr, mr := newTxRepos(producto("p-1", 80))
	p := inventory.NewPropagator("Main Warehouse", nil)

	transfer := &entity.Transfer{
		ID:             "tra-1",
		OrganizationID: "org-1",
		ProductID:      "p-1",
		From:           "Bodega Central",
		To:             "Bodega Norte",
		Qty:            25,
		Date:           "2025-03-12",
		Status:         entity.StatusCompleted,
	}
	require.NoError(t, p.ApplyTransfer(repos, transfer, "user-1"))

	assert.Equal(t, int64(80), pr.products["p-1"].Stock, "un traslado no cambia la cantidad total")

	require.Len(t, mr.created, 1)
	mov := mr.created[0]
	assert.Equal(t, entity.OperationTransfer, mov.Operation)
	assert.Equal(t, int64(80), mov.Beginning)
	assert.Equal(t, int64(25), mov.Qty)
	assert.Equal(t, int64(80), mov.Ending, "beginning == ending en traslados")
	assert.Equal(t, "Bodega Central → Bodega Norte", mov.Location)
}

func TestApplyTransfer_ProductoInexistente_NoAsienta(t *testing.T) {
	repos, _, mr := newTxRepos()
	p := inventory.NewPropagator("Main Warehouse", nil)

	transfer := &entity.Transfer{ID: "tra-2", OrganizationID: "org-1", ProductID: "fantasma", Qty: 5, Status: entity.StatusCompleted}
	require.NoError(t, p.ApplyTransfer(repos, transfer, "user-1"))
	assert.Empty(t, mr.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyAdjustment
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyAdjustment_FijaStockEnContado(t *testing.T) {
	repos, pr, mr := newTxRepos(producto("p-1", 95))
	p := inventory.NewPropagator("Main Warehouse", nil)

	adj := &entity.Adjustment{
		ID:             "adj-1",
		OrganizationID: "org-1",
		ProductID:      "p-1",
		ProductName:    "Producto p-1",
		Location:       "Bodega Central",
		Recorded:       95,
		Counted:        90,
		Variance:       -5,
		Date:           "2025-03-13",
		Status:         entity.StatusCompleted,
	}
	require.NoError(t, p.ApplyAdjustment(repos, adj, "user-1"))

	assert.Equal(t, int64(90), pr.products["p-1"].Stock, "el stock queda en el contado físico")

	require.Len(t, mr.created, 1)
	mov := mr.created[0]
	assert.Equal(t, entity.OperationAdjustment, mov.Operation)
	assert.Equal(t, int64(95), mov.Beginning, "beginning = registrado")
	assert.Equal(t, int64(-5), mov.Qty, "qty = varianza")
	assert.Equal(t, int64(90), mov.Ending, "ending = contado")
	assert.Equal(t, "Bodega Central", mov.Location, "ubicación del documento, no de la bodega")
	assert.Equal(t, "user-1", mov.User)
}

func TestApplyAdjustment_SinUserID_UsaElDelDocumento(t *testing.T) {
	repos, _, mr := newTxRepos(producto("p-1", 10))
	p := inventory.NewPropagator("Main Warehouse", nil)

	adj := &entity.Adjustment{
		ID:             "adj-2",
		OrganizationID: "org-1",
		ProductID:      "p-1",
		Recorded:       10,
		Counted:        12,
		Variance:       2,
		UserID:         "user-doc",
		Status:         entity.StatusCompleted,
	}
	require.NoError(t, p.ApplyAdjustment(repos, adj, ""))

	require.Len(t, mr.created, 1)
	assert.Equal(t, "user-doc", mr.created[0].User)
}

func TestApplyAdjustment_ProductoInexistente_AsientaIgual(t *testing.T) {
	repos, _, mr := newTxRepos()
	p := inventory.NewPropagator("Main Warehouse", nil)

	adj := &entity.Adjustment{
		ID:             "adj-3",
		OrganizationID: "org-1",
		ProductID:      "fantasma",
		Recorded:       4,
		Counted:        6,
		Variance:       2,
		Status:         entity.StatusCompleted,
	}
	require.NoError(t, p.ApplyAdjustment(repos, adj, "user-1"))

	// El asiento se escribe antes de resolver el producto; solo se omite la
	// mutación de stock.
	assert.Len(t, mr.created, 1)
}
