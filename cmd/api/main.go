package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/stockmaster/stockmaster-api/internal/application/analytics"
	appaudit "github.com/stockmaster/stockmaster-api/internal/application/audit"
	"github.com/stockmaster/stockmaster-api/internal/application/auth"
	"github.com/stockmaster/stockmaster-api/internal/application/inventory"
	"github.com/stockmaster/stockmaster-api/internal/application/usecase"
	infrapdf "github.com/stockmaster/stockmaster-api/internal/infrastructure/pdf"
	"github.com/stockmaster/stockmaster-api/internal/infrastructure/postgres"
	httpRouter "github.com/stockmaster/stockmaster-api/internal/interfaces/http"
	"github.com/stockmaster/stockmaster-api/pkg/config"
	"github.com/stockmaster/stockmaster-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	propagator := inventory.NewPropagator(cfg.Inventory.DefaultLocation, log)
	recorder := appaudit.NewRecorder(auditRepo, log)

	authUC := auth.NewUseCase(userRepo, orgRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, recorder)
	unitUC := usecase.NewUnitUseCase(unitRepo, recorder)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, txRunner, propagator, recorder)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, txRunner, propagator, recorder)
	transferUC := usecase.NewTransferUseCase(transferRepo, txRunner, propagator, recorder)
	adjustmentUC := usecase.NewAdjustmentUseCase(adjustmentRepo, txRunner, propagator, recorder)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	auditUC := usecase.NewAuditLogUseCase(auditRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, cfg.Inventory.LowStockThreshold)

	// PDF: comprobante imprimible de recepción
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	receiptPDFUC := usecase.NewReceiptPDFUseCase(receiptRepo, productRepo, orgRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMaster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		WarehouseUC:  warehouseUC,
		UnitUC:       unitUC,
		ReceiptUC:    receiptUC,
		ReceiptPDFUC: receiptPDFUC,
		DeliveryUC:   deliveryUC,
		TransferUC:   transferUC,
		AdjustmentUC: adjustmentUC,
		MovementUC:   movementUC,
		AuditLogUC:   auditUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
