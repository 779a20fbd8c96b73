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
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

type memAdjustmentRepo struct {
	adjustments map[string]*entity.Adjustment
}

func (m *memAdjustmentRepo) Create(a *entity.Adjustment) error { m.adjustments[a.ID] = a; return nil }

func (m *memAdjustmentRepo) GetByID(id, organizationID string) (*entity.Adjustment, error) {
	a, ok := m.adjustments[id]
	if !ok || a.OrganizationID != organizationID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memAdjustmentRepo) Update(a *entity.Adjustment) error { m.adjustments[a.ID] = a; return nil }

func (m *memAdjustmentRepo) ListByOrganization(string, int, int) ([]*entity.Adjustment, error) {
	return nil, nil
}

func (m *memAdjustmentRepo) Delete(id, _ string) error { delete(m.adjustments, id); return nil }

type entornoAjuste struct {
	uc          *usecase.AdjustmentUseCase
	adjustments *memAdjustmentRepo
	products    *memProductRepo
	movements   *memMovementRepo
}

func nuevoEntornoAjuste(products ...*entity.Product) *entornoAjuste {
	ar := &memAdjustmentRepo{adjustments: map[string]*entity.Adjustment{}}
	pr := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		pr.products[p.ID] = p
	}
	mr := &memMovementRepo{}
	runner := &fakeTxRunner{repos: inventory.TxRepos{
		Adjustments: ar,
		Products:    pr,
		Warehouses:  memWarehouseRepo{},
		Movements:   mr,
	}}
	propagator := inventory.NewPropagator("Main Warehouse", nil)
	recorder := audit.NewRecorder(&memAuditRepo{}, nil)
	return &entornoAjuste{
		uc:          usecase.NewAdjustmentUseCase(ar, runner, propagator, recorder),
		adjustments: ar,
		products:    pr,
		movements:   mr,
	}
}

func TestAdjustmentCreate_DerivaVariance(t *testing.T) {
	env := nuevoEntornoAjuste()

	resp, err := env.uc.Create(context.Background(), "org-1", "user-1", dto.CreateAdjustmentRequest{
		ProductID: "p-1",
		Counted:   90,
		Recorded:  95,
		Date:      "2025-03-13",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-5), resp.Variance, "variance = counted − recorded, nunca la manda el cliente")
	assert.Equal(t, entity.StatusDraft, resp.Status)
	assert.Empty(t, env.movements.created, "Draft no toca stock ni libro")
}

func TestAdjustmentCreate_EnCompleted_FijaStockEnContado(t *testing.T) {
	env := nuevoEntornoAjuste(&entity.Product{ID: "p-1", OrganizationID: "org-1", Stock: 95})

	_, err := env.uc.Create(context.Background(), "org-1", "user-1", dto.CreateAdjustmentRequest{
		ProductID: "p-1",
		Counted:   90,
		Recorded:  95,
		Date:      "2025-03-13",
		Status:    entity.StatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(90), env.products.products["p-1"].Stock)
	require.Len(t, env.movements.created, 1)
	assert.Equal(t, int64(-5), env.movements.created[0].Qty)
}

func TestAdjustmentUpdate_RederivaVarianceAlCambiarConteos(t *testing.T) {
	env := nuevoEntornoAjuste()
	env.adjustments.adjustments["adj-1"] = &entity.Adjustment{
		ID:             "adj-1",
		OrganizationID: "org-1",
		ProductID:      "p-1",
		Counted:        90,
		Recorded:       95,
		Variance:       -5,
		Status:         entity.StatusDraft,
	}

	counted := int64(100)
	resp, err := env.uc.Update(context.Background(), "adj-1", "org-1", "user-1", dto.UpdateAdjustmentRequest{Counted: &counted})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.Variance, "100 − 95 = 5")
	assert.Equal(t, entity.StatusDraft, resp.Status)
}

func TestAdjustmentUpdate_DraftACompleted_AplicaElAjuste(t *testing.T) {
	env := nuevoEntornoAjuste(&entity.Product{ID: "p-1", OrganizationID: "org-1", Stock: 95})
	env.adjustments.adjustments["adj-1"] = &entity.Adjustment{
		ID:             "adj-1",
		OrganizationID: "org-1",
		ProductID:      "p-1",
		Counted:        90,
		Recorded:       95,
		Variance:       -5,
		Status:         entity.StatusDraft,
	}

	status := entity.StatusCompleted
	_, err := env.uc.Update(context.Background(), "adj-1", "org-1", "user-1", dto.UpdateAdjustmentRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, int64(90), env.products.products["p-1"].Stock)
	require.Len(t, env.movements.created, 1)
	mov := env.movements.created[0]
	assert.Equal(t, int64(95), mov.Beginning)
	assert.Equal(t, int64(90), mov.Ending)
}
