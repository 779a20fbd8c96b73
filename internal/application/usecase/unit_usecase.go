package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/application/audit"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida.
type UnitUseCase struct {
	repo     repository.UnitRepository
	recorder *audit.Recorder
}

func NewUnitUseCase(repo repository.UnitRepository, recorder *audit.Recorder) *UnitUseCase {
	return &UnitUseCase{repo: repo, recorder: recorder}
}

func (uc *UnitUseCase) Create(organizationID, userID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	now := time.Now()
	unit := &entity.Unit{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           in.Name,
		Code:           in.Code,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionCreate,
		UserID:         userID,
		DocumentType:   "Unit",
		DocumentID:     unit.ID,
		Changes:        entity.FieldsChange(map[string]any{"name": unit.Name, "code": unit.Code}),
	})
	return toUnitResponse(unit), nil
}

func (uc *UnitUseCase) GetByID(id, organizationID string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return toUnitResponse(unit), nil
}

func (uc *UnitUseCase) Update(id, organizationID, userID string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	fields := map[string]any{}
	if in.Name != nil {
		unit.Name = *in.Name
		fields["name"] = *in.Name
	}
	if in.Code != nil {
		unit.Code = *in.Code
		fields["code"] = *in.Code
	}
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionUpdate,
		UserID:         userID,
		DocumentType:   "Unit",
		DocumentID:     unit.ID,
		Changes:        entity.FieldsChange(fields),
	})
	return toUnitResponse(unit), nil
}

func (uc *UnitUseCase) List(organizationID string, limit, offset int) (*dto.UnitListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return &dto.UnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *UnitUseCase) Delete(id, organizationID, userID string) error {
	if err := uc.repo.Delete(id, organizationID); err != nil {
		return err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionDelete,
		UserID:         userID,
		DocumentType:   "Unit",
		DocumentID:     id,
		Changes:        entity.FieldsChange(nil),
	})
	return nil
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Name:           u.Name,
		Code:           u.Code,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
