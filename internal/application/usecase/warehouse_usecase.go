package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/application/audit"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	recorder *audit.Recorder
}

func NewWarehouseUseCase(repo repository.WarehouseRepository, recorder *audit.Recorder) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, recorder: recorder}
}

func (uc *WarehouseUseCase) Create(organizationID, userID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           in.Name,
		Location:       in.Location,
		Capacity:       in.Capacity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionCreate,
		UserID:         userID,
		DocumentType:   "Warehouse",
		DocumentID:     warehouse.ID,
		Changes:        entity.FieldsChange(map[string]any{"name": warehouse.Name, "location": warehouse.Location}),
	})
	return toWarehouseResponse(warehouse), nil
}

func (uc *WarehouseUseCase) GetByID(id, organizationID string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

func (uc *WarehouseUseCase) Update(id, organizationID, userID string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	fields := map[string]any{}
	if in.Name != nil {
		warehouse.Name = *in.Name
		fields["name"] = *in.Name
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
		fields["location"] = *in.Location
	}
	if in.Capacity != nil {
		warehouse.Capacity = *in.Capacity
		fields["capacity"] = *in.Capacity
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionUpdate,
		UserID:         userID,
		DocumentType:   "Warehouse",
		DocumentID:     warehouse.ID,
		Changes:        entity.FieldsChange(fields),
	})
	return toWarehouseResponse(warehouse), nil
}

func (uc *WarehouseUseCase) List(organizationID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *WarehouseUseCase) Delete(id, organizationID, userID string) error {
	if err := uc.repo.Delete(id, organizationID); err != nil {
		return err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionDelete,
		UserID:         userID,
		DocumentType:   "Warehouse",
		DocumentID:     id,
		Changes:        entity.FieldsChange(nil),
	})
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:             w.ID,
		OrganizationID: w.OrganizationID,
		Name:           w.Name,
		Location:       w.Location,
		Capacity:       w.Capacity,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
