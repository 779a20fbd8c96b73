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

// ReceiptUseCase casos de uso para recepciones. Las escrituras corren dentro
// de una transacción: el documento, el stock y los asientos del libro se
// confirman o revierten juntos.
type ReceiptUseCase struct {
	repo       repository.ReceiptRepository
	txRunner   inventory.TxRunner
	propagator *inventory.Propagator
	recorder   *audit.Recorder
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(repo repository.ReceiptRepository, txRunner inventory.TxRunner, propagator *inventory.Propagator, recorder *audit.Recorder) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, txRunner: txRunner, propagator: propagator, recorder: recorder}
}

// Create crea una recepción. Si nace en Validated o Completed dispara la
// propagación de stock en la misma transacción.
func (uc *ReceiptUseCase) Create(ctx context.Context, organizationID, userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	now := time.Now()
	receipt := &entity.Receipt{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Supplier:       in.Supplier,
		Date:           in.Date,
		Items:          dto.ToEntityReceiptItems(in.Items),
		Status:         status,
		Total:          in.Total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		if err := r.Receipts.Create(receipt); err != nil {
			return err
		}
		if inventory.ReceiptTriggers(entity.StatusDraft, receipt.Status) {
			return uc.propagator.ApplyReceipt(r, receipt, userID)
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
		DocumentType:   "Receipt",
		DocumentID:     receipt.ID,
		Changes: entity.FieldsChange(map[string]any{
			"supplier": receipt.Supplier, "status": receipt.Status, "total": receipt.Total,
		}),
	})
	return toReceiptResponse(receipt), nil
}

// GetByID obtiene una recepción por ID dentro de la organización.
func (uc *ReceiptUseCase) GetByID(id, organizationID string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	return toReceiptResponse(receipt), nil
}

// Update aplica un merge parcial. Si la transición de estado dispara la
// propagación (Draft → Validated/Completed), stock y movimientos se escriben
// en la misma transacción que el documento.
func (uc *ReceiptUseCase) Update(ctx context.Context, id, organizationID, userID string, in dto.UpdateReceiptRequest) (*dto.ReceiptResponse, error) {
	var updated *entity.Receipt
	var oldStatus string
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		receipt, err := r.Receipts.GetByID(id, organizationID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}
		oldStatus = receipt.Status
		if in.Supplier != nil {
			receipt.Supplier = *in.Supplier
		}
		if in.Date != nil {
			receipt.Date = *in.Date
		}
		if in.Items != nil {
			receipt.Items = dto.ToEntityReceiptItems(in.Items)
		}
		if in.Status != nil {
			receipt.Status = *in.Status
		}
		if in.Total != nil {
			receipt.Total = *in.Total
		}
		receipt.UpdatedAt = time.Now()
		if err := r.Receipts.Update(receipt); err != nil {
			return err
		}
		if inventory.ReceiptTriggers(oldStatus, receipt.Status) {
			if err := uc.propagator.ApplyReceipt(r, receipt, userID); err != nil {
				return err
			}
		}
		updated = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.recordUpdate(organizationID, userID, updated.ID, oldStatus, updated.Status, in)
	return toReceiptResponse(updated), nil
}

func (uc *ReceiptUseCase) recordUpdate(organizationID, userID, id, oldStatus, newStatus string, in dto.UpdateReceiptRequest) {
	entry := audit.Entry{
		OrganizationID: organizationID,
		UserID:         userID,
		DocumentType:   "Receipt",
		DocumentID:     id,
	}
	if oldStatus != newStatus {
		entry.Action = audit.ActionForStatusChange("Receipt", oldStatus, newStatus)
		entry.Changes = entity.StatusChange(oldStatus, newStatus)
	} else {
		entry.Action = entity.ActionUpdate
		fields := map[string]any{}
		if in.Supplier != nil {
			fields["supplier"] = *in.Supplier
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
}

// List lista recepciones por organización con paginación.
func (uc *ReceiptUseCase) List(organizationID string, limit, offset int) (*dto.ReceiptListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toReceiptResponse(rec))
	}
	return &dto.ReceiptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una recepción. Los movimientos ya generados no se revierten.
func (uc *ReceiptUseCase) Delete(id, organizationID, userID string) error {
	if err := uc.repo.Delete(id, organizationID); err != nil {
		return err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionDelete,
		UserID:         userID,
		DocumentType:   "Receipt",
		DocumentID:     id,
		Changes:        entity.FieldsChange(nil),
	})
	return nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceiptResponse{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Supplier:       r.Supplier,
		Date:           r.Date,
		Items:          dto.FromEntityReceiptItems(r.Items),
		Status:         r.Status,
		Total:          r.Total,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
