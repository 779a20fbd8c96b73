package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// ReceiptPDFLine línea de recepción resuelta para el PDF (con nombre de producto).
type ReceiptPDFLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPDFGenerator puerto del generador de PDF de recepciones.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(receipt *entity.Receipt, org *entity.Organization, lines []ReceiptPDFLine) ([]byte, error)
}

// ReceiptPDFUseCase arma los datos de una recepción y delega la generación del PDF.
type ReceiptPDFUseCase struct {
	receipts  repository.ReceiptRepository
	products  repository.ProductRepository
	orgs      repository.OrganizationRepository
	generator ReceiptPDFGenerator
}

func NewReceiptPDFUseCase(receipts repository.ReceiptRepository, products repository.ProductRepository, orgs repository.OrganizationRepository, generator ReceiptPDFGenerator) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{receipts: receipts, products: products, orgs: orgs, generator: generator}
}

// Generate genera el PDF de una recepción. Devuelve nil, nil si la recepción
// no existe en la organización. Productos borrados salen con el ID como nombre.
func (uc *ReceiptPDFUseCase) Generate(id, organizationID string) ([]byte, error) {
	receipt, err := uc.receipts.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	org, err := uc.orgs.GetByID(organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		org = &entity.Organization{ID: organizationID, Name: organizationID}
	}

	lines := make([]ReceiptPDFLine, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		name := item.ProductID
		product, err := uc.products.GetByID(item.ProductID, organizationID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			name = product.Name
		}
		qty := decimal.NewFromInt(item.Quantity)
		lines = append(lines, ReceiptPDFLine{
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.UnitPrice.Mul(qty),
		})
	}
	return uc.generator.GenerateReceiptPDF(receipt, org, lines)
}
