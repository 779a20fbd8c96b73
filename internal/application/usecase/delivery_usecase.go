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

// DeliveryUseCase casos de uso para entregas.
type DeliveryUseCase struct {
	repo       repository.DeliveryRepository
	txRunner   inventory.TxRunner
	propagator *inventory.Propagator
	recorder   *audit.Recorder
}

func NewDeliveryUseCase(repo repository.DeliveryRepository, txRunner inventory.TxRunner, propagator *inventory.Propagator, recorder *audit.Recorder) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, txRunner: txRunner, propagator: propagator, recorder: recorder}
}

// Create crea una entrega. Si nace en Completed descuenta stock de inmediato.
func (uc *DeliveryUseCase) Create(ctx context.Context, organizationID, userID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	now := time.Now()
	delivery := &entity.Delivery{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Customer:       in.Customer,
		Date:           in.Date,
		Items:          dto.ToEntityDeliveryItems(in.Items),
		Status:         status,
		Total:          in.Total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		if err := r.Deliveries.Create(delivery); err != nil {
			return err
		}
		if inventory.DeliveryTriggers(entity.StatusDraft, delivery.Status) {
			return uc.propagator.ApplyDelivery(r, delivery, userID)
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
		DocumentType:   "Delivery",
		DocumentID:     delivery.ID,
		Changes: entity.FieldsChange(map[string]any{
			"customer": delivery.Customer, "status": delivery.Status, "total": delivery.Total,
		}),
	})
	return toDeliveryResponse(delivery), nil
}

func (uc *DeliveryUseCase) GetByID(id, organizationID string) (*dto.DeliveryResponse, error) {
	delivery, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, nil
	}
	return toDeliveryResponse(delivery), nil
}

// Update aplica un merge parcial. La transición a Completed descuenta stock
// y escribe los movimientos en la misma transacción.
func (uc *DeliveryUseCase) Update(ctx context.Context, id, organizationID, userID string, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	var updated *entity.Delivery
	var oldStatus string
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		delivery, err := r.Deliveries.GetByID(id, organizationID)
		if err != nil {
			return err
		}
		if delivery == nil {
			return domain.ErrNotFound
		}
		oldStatus = delivery.Status
		if in.Customer != nil {
			delivery.Customer = *in.Customer
		}
		if in.Date != nil {
			delivery.Date = *in.Date
		}
		if in.Items != nil {
			delivery.Items = dto.ToEntityDeliveryItems(in.Items)
		}
		if in.Status != nil {
			delivery.Status = *in.Status
		}
		if in.Total != nil {
			delivery.Total = *in.Total
		}
		delivery.UpdatedAt = time.Now()
		if err := r.Deliveries.Update(delivery); err != nil {
			return err
		}
		if inventory.DeliveryTriggers(oldStatus, delivery.Status) {
			if err := uc.propagator.ApplyDelivery(r, delivery, userID); err != nil {
				return err
			}
		}
		updated = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	entry := audit.Entry{
		OrganizationID: organizationID,
		UserID:         userID,
		DocumentType:   "Delivery",
		DocumentID:     updated.ID,
	}
	if oldStatus != updated.Status {
		entry.Action = audit.ActionForStatusChange("Delivery", oldStatus, updated.Status)
		entry.Changes = entity.StatusChange(oldStatus, updated.Status)
	} else {
		entry.Action = entity.ActionUpdate
		fields := map[string]any{}
		if in.Customer != nil {
			fields["customer"] = *in.Customer
		}
		if in.Date != nil {
			fields["date"] = *in.Date
		}
		if in.Items != nil {
			fields["items"] = len(in.Items)
		}
		if in.Total != nil {
			fields["total"] = *in.Total
		}
		entry.Changes = entity.FieldsChange(fields)
	}
	uc.recorder.Record(entry)
	return toDeliveryResponse(updated), nil
}

func (uc *DeliveryUseCase) List(organizationID string, limit, offset int) (*dto.DeliveryListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *DeliveryUseCase) Delete(id, organizationID, userID string) error {
	if err := uc.repo.Delete(id, organizationID); err != nil {
		return err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionDelete,
		UserID:         userID,
		DocumentType:   "Delivery",
		DocumentID:     id,
		Changes:        entity.FieldsChange(nil),
	})
	return nil
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	if d == nil {
		return nil
	}
	return &dto.DeliveryResponse{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		Customer:       d.Customer,
		Date:           d.Date,
		Items:          dto.FromEntityDeliveryItems(d.Items),
		Status:         d.Status,
		Total:          d.Total,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
