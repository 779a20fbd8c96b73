package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/stockmaster-api/internal/application/analytics"
	"github.com/stockmaster/stockmaster-api/internal/application/auth"
	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProductUC    *usecase.ProductUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	UnitUC       *usecase.UnitUseCase
	ReceiptUC    *usecase.ReceiptUseCase
	ReceiptPDFUC *usecase.ReceiptPDFUseCase
	DeliveryUC   *usecase.DeliveryUseCase
	TransferUC   *usecase.TransferUseCase
	AdjustmentUC *usecase.AdjustmentUseCase
	MovementUC   *usecase.MovementUseCase
	AuditLogUC   *usecase.AuditLogUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth", authHandler.Authenticate)

	// Rutas protegidas (requieren Bearer Token con organization_id)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC, deps.ReceiptPDFUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Get("/:id/pdf", receiptHandler.Pdf)
	receipts.Put("/:id", receiptHandler.Update)
	receipts.Delete("/:id", receiptHandler.Delete)

	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Put("/:id", deliveryHandler.Update)
	deliveries.Delete("/:id", deliveryHandler.Delete)

	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Delete("/:id", transferHandler.Delete)

	adjustments := protected.Group("/adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Get("/:id", adjustmentHandler.GetByID)
	adjustments.Put("/:id", adjustmentHandler.Update)
	adjustments.Delete("/:id", adjustmentHandler.Delete)

	movementHandler := NewMovementHandler(deps.MovementUC)
	protected.Get("/stock-movements", movementHandler.List)

	auditHandler := NewAuditLogHandler(deps.AuditLogUC)
	protected.Get("/audit-log", auditHandler.List)
	protected.Post("/audit-log", auditHandler.Create)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
