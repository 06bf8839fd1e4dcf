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
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-caja/internal/application/auth"
	appfinance "github.com/tu-usuario/resto-caja/internal/application/finance"
	"github.com/tu-usuario/resto-caja/internal/application/orders"
	"github.com/tu-usuario/resto-caja/internal/application/usecase"
	domfinance "github.com/tu-usuario/resto-caja/internal/domain/finance"
	"github.com/tu-usuario/resto-caja/internal/infrastructure/htmlexport"
	infrapdf "github.com/tu-usuario/resto-caja/internal/infrastructure/pdf"
	"github.com/tu-usuario/resto-caja/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/resto-caja/internal/interfaces/http"
	"github.com/tu-usuario/resto-caja/pkg/config"
	"github.com/tu-usuario/resto-caja/pkg/logger"
	"github.com/tu-usuario/resto-caja/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	financeOpts := domfinance.Options{
		PastMonthGrowth:   decimal.NewFromFloat(cfg.Finance.PastMonthGrowth),
		DefaultMarginRate: decimal.NewFromFloat(cfg.Finance.DefaultMarginRate),
	}
	reportUC := appfinance.NewReportUseCase(productRepo, orderRepo, transactionRepo, customerRepo, financeOpts, log)
	resetUC := appfinance.NewResetUseCase(txRunner, auditRepo, log)
	importUC := appfinance.NewImportUseCase(txRunner, log)
	seedUC := appfinance.NewSeedUseCase(txRunner, log)

	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, auditRepo, log)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	reservationUC := usecase.NewReservationUseCase(reservationRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.Finance.SeedDemoData {
		if err := seedUC.EnsureSeeded(); err != nil {
			log.Error().Err(err).Msg("siembra de datos demo")
		}
	}

	formatter := money.NewFormatter(cfg.Finance.CurrencySymbol, cfg.Finance.Locale)
	pdfGen := infrapdf.NewFinanceReportGenerator(cfg.App.Name, formatter)
	htmlGen := htmlexport.NewReportBuilder(cfg.App.Name, formatter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RestoCaja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		TransactionUC: transactionUC,
		ReservationUC: reservationUC,
		OrderUC:       orderUC,
		ReportUC:      reportUC,
		ResetUC:       resetUC,
		ImportUC:      importUC,
		PDFGen:        pdfGen,
		HTMLGen:       htmlGen,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
