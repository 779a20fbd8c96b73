package usecase

import (
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// MovementUseCase consulta de solo lectura del libro de movimientos.
// Los asientos los escribe el propagador; aquí no hay Create ni Update.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List lista movimientos con filtros opcionales por producto, ubicación,
// operación y rango de fechas.
func (uc *MovementUseCase) List(organizationID string, q dto.MovementQuery) (*dto.MovementListResponse, error) {
	q.DefaultPage()
	filter := repository.MovementFilter{
		ProductID: q.ProductID,
		Location:  q.Location,
		Operation: q.Operation,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	}
	list, err := uc.repo.ListByOrganization(organizationID, filter, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Operation:      m.Operation,
		Beginning:      m.Beginning,
		Qty:            m.Qty,
		Ending:         m.Ending,
		Location:       m.Location,
		Date:           m.Date,
		User:           m.User,
		DocumentID:     m.DocumentID,
		DocumentType:   m.DocumentType,
		CreatedAt:      m.CreatedAt,
	}
}
