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

	appanalytics "github.com/erp-pro/erp-pro-api/internal/application/analytics"
	"github.com/erp-pro/erp-pro-api/internal/application/auth"
	"github.com/erp-pro/erp-pro-api/internal/application/inventory"
	"github.com/erp-pro/erp-pro-api/internal/application/pos"
	"github.com/erp-pro/erp-pro-api/internal/application/usecase"
	infrapdf "github.com/erp-pro/erp-pro-api/internal/infrastructure/pdf"
	"github.com/erp-pro/erp-pro-api/internal/infrastructure/postgres"
	httpRouter "github.com/erp-pro/erp-pro-api/internal/interfaces/http"
	"github.com/erp-pro/erp-pro-api/pkg/config"
	"github.com/erp-pro/erp-pro-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	allowedEmailRepo := postgres.NewAllowedEmailRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(profileRepo, allowedEmailRepo, auth.Config{
		JWTSecret:  cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	productUC := usecase.NewProductUseCase(productRepo, cfg.POS.LowStockThreshold, cfg.POS.DashboardLowStock)
	clientUC := usecase.NewClientUseCase(clientRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	accessUC := usecase.NewAccessUseCase(allowedEmailRepo, profileRepo)
	receivingUC := inventory.NewReceivingUseCase(txRunner, batchRepo, productRepo)
	checkoutUC := pos.NewCheckoutUseCase(txRunner, saleRepo, productRepo, clientRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := pos.NewReceiptUseCase(saleRepo, productRepo, clientRepo, profileRepo, receiptGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, productRepo, appanalytics.Config{
		LowStockThreshold: cfg.POS.LowStockThreshold,
		RecentLimit:       cfg.POS.DashboardRecent,
		LowStockLimit:     cfg.POS.DashboardLowStock,
	})

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
		Title:    "ERP Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ClientUC:    clientUC,
		ExpenseUC:   expenseUC,
		AccessUC:    accessUC,
		ReceivingUC: receivingUC,
		CheckoutUC:  checkoutUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
