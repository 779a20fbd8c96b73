package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
)

type memOrgRepo struct {
	orgs map[string]*entity.Organization
}

func (m *memOrgRepo) Create(o *entity.Organization) error { m.orgs[o.ID] = o; return nil }
func (m *memOrgRepo) GetByID(id string) (*entity.Organization, error) {
	return m.orgs[id], nil
}

// fakePDFGenerator captura los argumentos y devuelve bytes fijos.
type fakePDFGenerator struct {
	receipt *entity.Receipt
	org     *entity.Organization
	lines   []usecase.ReceiptPDFLine
}

func (f *fakePDFGenerator) GenerateReceiptPDF(receipt *entity.Receipt, org *entity.Organization, lines []usecase.ReceiptPDFLine) ([]byte, error) {
	f.receipt, f.org, f.lines = receipt, org, lines
	return []byte("%PDF-fake"), nil
}

func TestReceiptPDF_ResuelveNombresYSubtotales(t *testing.T) {
	receipts := &memReceiptRepo{receipts: map[string]*entity.Receipt{
		"rec-1": {
			ID:             "rec-1",
			OrganizationID: "org-1",
			Supplier:       "ACME",
			Items: []entity.ReceiptItem{
				{ProductID: "p-1", Quantity: 3, UnitPrice: decimal.NewFromFloat(2.50)},
				{ProductID: "borrado", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
			},
		},
	}}
	products := &memProductRepo{products: map[string]*entity.Product{
		"p-1": {ID: "p-1", OrganizationID: "org-1", Name: "Tornillos"},
	}}
	orgs := &memOrgRepo{orgs: map[string]*entity.Organization{
		"org-1": {ID: "org-1", Name: "ACME S.A."},
	}}
	gen := &fakePDFGenerator{}
	uc := usecase.NewReceiptPDFUseCase(receipts, products, orgs, gen)

	data, err := uc.Generate("rec-1", "org-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)

	assert.Equal(t, "ACME S.A.", gen.org.Name)
	require.Len(t, gen.lines, 2)
	assert.Equal(t, "Tornillos", gen.lines[0].ProductName)
	assert.True(t, gen.lines[0].Subtotal.Equal(decimal.NewFromFloat(7.50)), "3 × 2.50 = 7.50")
	assert.Equal(t, "borrado", gen.lines[1].ProductName,
		"producto borrado sale con el ID como nombre")
}

func TestReceiptPDF_RecepcionInexistente_RetornaNilNil(t *testing.T) {
	uc := usecase.NewReceiptPDFUseCase(
		&memReceiptRepo{receipts: map[string]*entity.Receipt{}},
		&memProductRepo{products: map[string]*entity.Product{}},
		&memOrgRepo{orgs: map[string]*entity.Organization{}},
		&fakePDFGenerator{},
	)

	data, err := uc.Generate("no-existe", "org-1")
	assert.NoError(t, err)
	assert.Nil(t, data)
}
