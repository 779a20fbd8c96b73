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

// TransferUseCase casos de uso para traslados internos.
type TransferUseCase struct {
	repo       repository.TransferRepository
	txRunner   inventory.TxRunner
	propagator *inventory.Propagator
	recorder   *audit.Recorder
}

func NewTransferUseCase(repo repository.TransferRepository, txRunner inventory.TxRunner, propagator *inventory.Propagator, recorder *audit.Recorder) *TransferUseCase {
	return &TransferUseCase{repo: repo, txRunner: txRunner, propagator: propagator, recorder: recorder}
}

// Create crea un traslado. Si nace en Completed genera el asiento en el libro
// (sin mutar stock) en la misma transacción.
func (uc *TransferUseCase) Create(ctx context.Context, organizationID, userID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	now := time.Now()
	transfer := &entity.Transfer{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		ProductID:      in.ProductID,
		From:           in.From,
		To:             in.To,
		Qty:            in.Qty,
		Status:         status,
		Date:           in.Date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		if err := r.Transfers.Create(transfer); err != nil {
			return err
		}
		if inventory.TransferTriggers(entity.StatusDraft, transfer.Status) {
			return uc.propagator.ApplyTransfer(r, transfer, userID)
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
		DocumentType:   "Transfer",
		DocumentID:     transfer.ID,
		Changes: entity.FieldsChange(map[string]any{
			"productId": transfer.ProductID, "from": transfer.From, "to": transfer.To, "qty": transfer.Qty, "status": transfer.Status,
		}),
	})
	return toTransferResponse(transfer), nil
}

func (uc *TransferUseCase) GetByID(id, organizationID string) (*dto.TransferResponse, error) {
	transfer, err := uc.repo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	return toTransferResponse(transfer), nil
}

// Update aplica un merge parcial. La transición a Completed genera el asiento.
func (uc *TransferUseCase) Update(ctx context.Context, id, organizationID, userID string, in dto.UpdateTransferRequest) (*dto.TransferResponse, error) {
	var updated *entity.Transfer
	var oldStatus string
	err := uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		transfer, err := r.Transfers.GetByID(id, organizationID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		oldStatus = transfer.Status
		if in.ProductID != nil {
			transfer.ProductID = *in.ProductID
		}
		if in.From != nil {
			transfer.From = *in.From
		}
		if in.To != nil {
			transfer.To = *in.To
		}
		if in.Qty != nil {
			transfer.Qty = *in.Qty
		}
		if in.Status != nil {
			transfer.Status = *in.Status
		}
		if in.Date != nil {
			transfer.Date = *in.Date
		}
		transfer.UpdatedAt = time.Now()
		if err := r.Transfers.Update(transfer); err != nil {
			return err
		}
		if inventory.TransferTriggers(oldStatus, transfer.Status) {
			if err := uc.propagator.ApplyTransfer(r, transfer, userID); err != nil {
				return err
			}
		}
		updated = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	entry := audit.Entry{
		OrganizationID: organizationID,
		UserID:         userID,
		DocumentType:   "Transfer",
		DocumentID:     updated.ID,
	}
	if oldStatus != updated.Status {
		entry.Action = audit.ActionForStatusChange("Transfer", oldStatus, updated.Status)
		entry.Changes = entity.StatusChange(oldStatus, updated.Status)
	} else {
		entry.Action = entity.ActionUpdate
		fields := map[string]any{}
		if in.From != nil {
			fields["from"] = *in.From
		}
		if in.To != nil {
			fields["to"] = *in.To
		}
		if in.Qty != nil {
			fields["qty"] = *in.Qty
		}
		if in.Date != nil {
			fields["date"] = *in.Date
		}
		entry.Changes = entity.FieldsChange(fields)
	}
	uc.recorder.Record(entry)
	return toTransferResponse(updated), nil
}

func (uc *TransferUseCase) List(organizationID string, limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *TransferUseCase) Delete(id, organizationID, userID string) error {
	if err := uc.repo.Delete(id, organizationID); err != nil {
		return err
	}
	uc.recorder.Record(audit.Entry{
		OrganizationID: organizationID,
		Action:         entity.ActionDelete,
		UserID:         userID,
		DocumentType:   "Transfer",
		DocumentID:     id,
		Changes:        entity.FieldsChange(nil),
	})
	return nil
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	return &dto.TransferResponse{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		ProductID:      t.ProductID,
		From:           t.From,
		To:             t.To,
		Qty:            t.Qty,
		Status:         t.Status,
		Date:           t.Date,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
