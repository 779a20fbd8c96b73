package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/pkg/logger"
)

// Propagator aplica los efectos secundarios de una transición de estado a
// estado terminal: mutación de stock del producto y un asiento inmutable en el
// libro de movimientos por cada línea del documento.
//
// Reglas por documento:
//
//	Receipt    Draft → Validated|Completed   stock += qty          movimiento +qty
//	Delivery   ≠Completed → Completed        stock = max(0, s−qty) movimiento −qty
//	Transfer   ≠Completed → Completed        stock sin cambio      movimiento +qty (beginning == ending)
//	Adjustment ≠Completed → Completed        stock = counted       movimiento qty = variance
//
// Siempre se invoca dentro de la transacción que escribe el documento
// (TxRepos), de modo que documento + stock + libro aterrizan juntos o no
// aterrizan. Una línea cuyo producto no existe se omite (se loggea y se sigue
// con las demás); eso no aborta la transacción.
type Propagator struct {
	defaultLocation string // fallback cuando la organización no tiene bodegas
	log             *logger.Logger
}

// NewPropagator construye el propagador.
func NewPropagator(defaultLocation string, log *logger.Logger) *Propagator {
	if defaultLocation == "" {
		defaultLocation = "Main Warehouse"
	}
	return &Propagator{defaultLocation: defaultLocation, log: log}
}

// ── Predicados de disparo ─────────────────────────────────────────────────────
// Comparan el estado previo contra el nuevo; un PUT que no cambia el estado
// nunca re-dispara (no hay flag "ya procesado": la detección es old vs new
// dentro de la misma transacción).

// ReceiptTriggers indica si la transición de una recepción dispara efectos.
func ReceiptTriggers(oldStatus, newStatus string) bool {
	return oldStatus == entity.StatusDraft &&
		(newStatus == entity.StatusValidated || newStatus == entity.StatusCompleted)
}

// DeliveryTriggers indica si la transición de una entrega dispara efectos.
func DeliveryTriggers(oldStatus, newStatus string) bool {
	return oldStatus != entity.StatusCompleted && newStatus == entity.StatusCompleted
}

// TransferTriggers indica si la transición de un traslado dispara efectos.
func TransferTriggers(oldStatus, newStatus string) bool {
	return oldStatus != entity.StatusCompleted && newStatus == entity.StatusCompleted
}

// AdjustmentTriggers indica si la transición de un ajuste dispara efectos.
func AdjustmentTriggers(oldStatus, newStatus string) bool {
	return oldStatus != entity.StatusCompleted && newStatus == entity.StatusCompleted
}

// ── Aplicación de efectos ─────────────────────────────────────────────────────

// ApplyReceipt suma cada línea al stock y crea un movimiento +qty por línea.
func (p *Propagator) ApplyReceipt(r TxRepos, receipt *entity.Receipt, userID string) error {
	location, err := p.resolveLocation(r, receipt.OrganizationID)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, item := range receipt.Items {
		product, err := r.Products.GetForUpdate(item.ProductID, receipt.OrganizationID)
		if err != nil {
			return fmt.Errorf("receipt %s: lock product %s: %w", receipt.ID, item.ProductID, err)
		}
		if product == nil {
			p.skip(receipt.OrganizationID, entity.OperationReceipt, receipt.ID, item.ProductID)
			continue
		}
		beginning := product.Stock
		ending := beginning + item.Quantity
		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			OrganizationID: receipt.OrganizationID,
			ProductID:      product.ID,
			ProductName:    product.Name,
			Operation:      entity.OperationReceipt,
			Beginning:      beginning,
			Qty:            item.Quantity,
			Ending:         ending,
			Location:       location,
			Date:           receipt.Date,
			User:           userID,
			DocumentID:     receipt.ID,
			DocumentType:   "Receipt",
			CreatedAt:      now,
		}
		if err := r.Movements.Create(mov); err != nil {
			return fmt.Errorf("receipt %s: create movement: %w", receipt.ID, err)
		}
		if err := r.Products.UpdateStock(product.ID, ending); err != nil {
			return fmt.Errorf("receipt %s: update stock: %w", receipt.ID, err)
		}
	}
	return nil
}

// ApplyDelivery resta cada línea del stock (piso en cero) y crea un movimiento
// −qty por línea. Si la cantidad pedida supera el disponible, el stock queda
// en 0 pero el movimiento registra el −qty completo solicitado: comportamiento
// heredado del sistema original, pendiente de definición de producto.
func (p *Propagator) ApplyDelivery(r TxRepos, delivery *entity.Delivery, userID string) error {
	location, err := p.resolveLocation(r, delivery.OrganizationID)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, item := range delivery.Items {
		product, err := r.Products.GetForUpdate(item.ProductID, delivery.OrganizationID)
		if err != nil {
			return fmt.Errorf("delivery %s: lock product %s: %w", delivery.ID, item.ProductID, err)
		}
		if product == nil {
			p.skip(delivery.OrganizationID, entity.OperationDelivery, delivery.ID, item.ProductID)
			continue
		}
		beginning := product.Stock
		ending := beginning - item.Quantity
		if ending < 0 {
			ending = 0
		}
		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			OrganizationID: delivery.OrganizationID,
			ProductID:      product.ID,
			ProductName:    product.Name,
			Operation:      entity.OperationDelivery,
			Beginning:      beginning,
			Qty:            -item.Quantity,
			Ending:         ending,
			Location:       location,
			Date:           delivery.Date,
			User:           userID,
			DocumentID:     delivery.ID,
			DocumentType:   "Delivery",
			CreatedAt:      now,
		}
		if err := r.Movements.Create(mov); err != nil {
			return fmt.Errorf("delivery %s: create movement: %w", delivery.ID, err)
		}
		if err := r.Products.UpdateStock(product.ID, ending); err != nil {
			return fmt.Errorf("delivery %s: update stock: %w", delivery.ID, err)
		}
	}
	return nil
}

// ApplyTransfer crea un movimiento con beginning == ending: un traslado cambia
// la ubicación del producto, no la cantidad total. No toca Product.Stock.
func (p *Propagator) ApplyTransfer(r TxRepos, transfer *entity.Transfer, userID string) error {
	product, err := r.Products.GetByID(transfer.ProductID, transfer.OrganizationID)
	if err != nil {
		return fmt.Errorf("transfer %s: get product %s: %w", transfer.ID, transfer.ProductID, err)
	}
	if product == nil {
		p.skip(transfer.OrganizationID, entity.OperationTransfer, transfer.ID, transfer.ProductID)
		return nil
	}
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		OrganizationID: transfer.OrganizationID,
		ProductID:      product.ID,
		ProductName:    product.Name,
		Operation:      entity.OperationTransfer,
		Beginning:      product.Stock,
		Qty:            transfer.Qty,
		Ending:         product.Stock,
		Location:       transfer.From + " → " + transfer.To,
		Date:           transfer.Date,
		User:           userID,
		DocumentID:     transfer.ID,
		DocumentType:   "Transfer",
		CreatedAt:      time.Now(),
	}
	if err := r.Movements.Create(mov); err != nil {
		return fmt.Errorf("transfer %s: create movement: %w", transfer.ID, err)
	}
	return nil
}

// ApplyAdjustment fija el stock del producto en Counted y crea un movimiento
// con qty = Variance, beginning = Recorded y ending = Counted.
func (p *Propagator) ApplyAdjustment(r TxRepos, adj *entity.Adjustment, userID string) error {
	user := userID
	if user == "" {
		user = adj.UserID
	}
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		OrganizationID: adj.OrganizationID,
		ProductID:      adj.ProductID,
		ProductName:    adj.ProductName,
		Operation:      entity.OperationAdjustment,
		Beginning:      adj.Recorded,
		Qty:            adj.Variance,
		Ending:         adj.Counted,
		Location:       adj.Location,
		Date:           adj.Date,
		User:           user,
		DocumentID:     adj.ID,
		DocumentType:   "Adjustment",
		CreatedAt:      time.Now(),
	}
	if err := r.Movements.Create(mov); err != nil {
		return fmt.Errorf("adjustment %s: create movement: %w", adj.ID, err)
	}
	product, err := r.Products.GetForUpdate(adj.ProductID, adj.OrganizationID)
	if err != nil {
		return fmt.Errorf("adjustment %s: lock product %s: %w", adj.ID, adj.ProductID, err)
	}
	if product == nil {
		// El asiento queda registrado igual: el original también lo hacía así.
		p.skip(adj.OrganizationID, entity.OperationAdjustment, adj.ID, adj.ProductID)
		return nil
	}
	if err := r.Products.UpdateStock(product.ID, adj.Counted); err != nil {
		return fmt.Errorf("adjustment %s: update stock: %w", adj.ID, err)
	}
	return nil
}

// resolveLocation devuelve el nombre de la primera bodega de la organización
// o el fallback configurado. Resolución unificada para recepciones y entregas.
func (p *Propagator) resolveLocation(r TxRepos, organizationID string) (string, error) {
	wh, err := r.Warehouses.FirstByOrganization(organizationID)
	if err != nil {
		return "", fmt.Errorf("resolve location: %w", err)
	}
	if wh == nil || wh.Name == "" {
		return p.defaultLocation, nil
	}
	return wh.Name, nil
}

func (p *Propagator) skip(orgID, operation, documentID, productID string) {
	if p.log == nil {
		return
	}
	p.log.Warn().
		Str("organization_id", orgID).
		Str("operation", operation).
		Str("document_id", documentID).
		Str("product_id", productID).
		Msg("línea omitida: producto no encontrado")
}
