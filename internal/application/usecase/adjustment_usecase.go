package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/application/audit"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/application/inventory"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

// AdjustmentUseCase casos de uso para ajustes de inventario.
// Variance siempre se deriva como Counted − Recorded, nunca se acepta del cliente.
type AdjustmentUseCase struct {
	repo       repository.AdjustmentRepository
	txRunner   inventory.TxRunner
	propagator *inventory.Propagator
	recorder   *audit.Recorder
}

func NewAdjustmentUseCase(repo repository.AdjustmentRepository, txRunner inventory.TxRunner, propagator *inventory.Propagator, recorder *audit.Recorder) *AdjustmentUseCase {
	return &AdjustmentUseCase{repo: repo, txRunner: txRunner, propagator: propagator, recorder: recorder}
}

// Create crea un ajuste. Si nace en Completed fija el stock en Counted de inmediato.
func (uc *AdjustmentUseCase) Create(ctx context.Context, organizationID, userID string, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	now := time.Now()
	adj := &entity.Adjustment{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		ProductID:      in.ProductID,
		ProductName:    in.ProductName,
		Location:       in.Location,
		Counted:        in.Counted,
		Recorded:       in.Recorded,
		Variance:       in.Counted - in.Recorded,
		Reason:         in.Reason,
		Status:         status,
		Date:           in.Date,
		UserID:         userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		if err := r.Adjustments.Create(adj); err != nil {
			return err
		}
		if inventory.AdjustmentTriggers(entity.StatusDraft, adj.Status) {
			return uc.propagator.ApplyAdjustment(r, adj, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionCreate,
		UserID:         userID,
		DocumentType:   "Adjustment",
		DocumentID:     adj.ID,
		Changes: entity.FieldsChange(map[string]any{
			"productId": adj.ProductID, "counted": adj.Counted, "recorded": adj.Recorded, "variance": adj.Variance, "status": adj.Status,
		}),
	})
	return toAdjustmentResponse(adj), nil
}

func (uc *AdjustmentUseCase) GetByID(id, organizationID string) (*dto.AdjustmentResponse, error) {
	adj, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if adj == nil {
		return nil, nil
	}
	return toAdjustmentResponse(adj), nil
}

// Update aplica un merge parcial y rederiva Variance si cambió Counted o
// Recorded. La transición a Completed fija el stock en la misma transacción.
func (uc *AdjustmentUseCase) Update(ctx context.Context, id, organizationID, userID string, in dto.UpdateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	var updated *entity.Adjustment
	var oldStatus string
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		adj, err := r.Adjustments.GetByID(id, organizationID)
		if err != nil {
			return err
		}
		if adj == nil {
			return domain.ErrNotFound
		}
		oldStatus = adj.Status
		if in.ProductID != nil {
			adj.ProductID = *in.ProductID
		}
		if in.ProductName != nil {
			adj.ProductName = *in.ProductName
		}
		if in.Location != nil {
			adj.Location = *in.Location
		}
		if in.Counted != nil {
			adj.Counted = *in.Counted
		}
		if in.Recorded != nil {
			adj.Recorded = *in.Recorded
		}
		if in.Reason != nil {
			adj.Reason = *in.Reason
		}
		if in.Status != nil {
			adj.Status = *in.Status
		}
		if in.Date != nil {
			adj.Date = *in.Date
		}
		adj.Variance = adj.Counted - adj.Recorded
		adj.UpdatedAt = time.Now()
		if err := r.Adjustments.Update(adj); err != nil {
			return err
		}
		if inventory.AdjustmentTriggers(oldStatus, adj.Status) {
			if err := uc.propagator.ApplyAdjustment(r, adj, userID); err != nil {
				return err
			}
		}
		updated = adj
		return nil
	})
	if err != nil {
		return nil, err
	}
	entry := audit.Entry{
		OrganizationID: organizationID,
		UserID:         userID,
		DocumentType:   "Adjustment",
		DocumentID:     updated.ID,
	}
	if oldStatus != updated.Status {
		entry.Action = audit.ActionForStatusChange("Adjustment", oldStatus, updated.Status)
		entry.Changes = entity.StatusChange(oldStatus, updated.Status)
	} else {
		entry.Action = entity.ActionUpdate
		fields := map[string]any{}
		if in.Counted != nil {
			fields["counted"] = *in.Counted
		}
		if in.Recorded != nil {
			fields["recorded"] = *in.Recorded
		}
		if in.Reason != nil {
			fields["reason"] = *in.Reason
		}
		if in.Location != nil {
			fields["location"] = *in.Location
		}
		entry.Changes = entity.FieldsChange(fields)
	}
	uc.recorder.Record(entry)
	return toAdjustmentResponse(updated), nil
}

func (uc *AdjustmentUseCase) List(organizationID string, limit, offset int) (*dto.AdjustmentListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdjustmentResponse(a))
	}
	return &dto.AdjustmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *AdjustmentUseCase) Delete(id, organizationID, userID string) error {
	if err := uc.repo.Delete(id, organizationID); err != nil {
		return err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionDelete,
		UserID:         userID,
		DocumentType:   "Adjustment",
		DocumentID:     id,
		Changes:        entity.FieldsChange(nil),
	})
	return nil
}

func toAdjustmentResponse(a *entity.Adjustment) *dto.AdjustmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AdjustmentResponse{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		ProductID:      a.ProductID,
		ProductName:    a.ProductName,
		Location:       a.Location,
		Counted:        a.Counted,
		Recorded:       a.Recorded,
		Variance:       a.Variance,
		Reason:         a.Reason,
		Status:         a.Status,
		Date:           a.Date,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
