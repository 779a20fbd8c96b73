package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/application/audit"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	recorder *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, recorder: recorder}
}

// Create crea un producto. SKU único por organización.
func (uc *ProductUseCase) Create(organizationID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByOrgAndSKU(organizationID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           in.Name,
		SKU:            in.SKU,
		Category:       in.Category,
		UOM:            in.UOM,
		Stock:          in.Stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionCreate,
		UserID:         userID,
		DocumentType:   "Product",
		DocumentID:     product.ID,
		Changes: entity.FieldsChange(map[string]any{
			"name": product.Name, "sku": product.SKU, "stock": product.Stock,
		}),
	})
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID dentro de la organización.
func (uc *ProductUseCase) GetByID(id, organizationID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica un merge parcial y devuelve el producto post-update.
func (uc *ProductUseCase) Update(id, organizationID, userID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	fields := map[string]any{}
	if in.Name != nil {
		product.Name = *in.Name
		fields["name"] = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
		fields["sku"] = *in.SKU
	}
	if in.Category != nil {
		product.Category = *in.Category
		fields["category"] = *in.Category
	}
	if in.UOM != nil {
		product.UOM = *in.UOM
		fields["uom"] = *in.UOM
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
		fields["stock"] = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionUpdate,
		UserID:         userID,
		DocumentType:   "Product",
		DocumentID:     product.ID,
		Changes:        entity.FieldsChange(fields),
	})
	return toProductResponse(product), nil
}

// List lista productos por organización con paginación.
func (uc *ProductUseCase) List(organizationID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. No hay cascada: documentos que lo referencian
// quedan con la referencia colgante, igual que en el sistema original.
func (uc *ProductUseCase) Delete(id, organizationID, userID string) error {
	if err := uc.repo.Delete(id, organizationID); err != nil {
		return err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionDelete,
		UserID:         userID,
		DocumentType:   "Product",
		DocumentID:     id,
		Changes:        entity.FieldsChange(nil),
	})
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		SKU:            p.SKU,
		Category:       p.Category,
		UOM:            p.UOM,
		Stock:          p.Stock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
