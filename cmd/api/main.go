package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/invoicepro/invoice-api/internal/application/analytics"
	"github.com/invoicepro/invoice-api/internal/application/auth"
	"github.com/invoicepro/invoice-api/internal/application/billing"
	appmodel "github.com/invoicepro/invoice-api/internal/application/billing/render"
	"github.com/invoicepro/invoice-api/internal/application/usecase"
	"github.com/invoicepro/invoice-api/internal/infrastructure/email"
	"github.com/invoicepro/invoice-api/internal/infrastructure/postgres"
	infrarender "github.com/invoicepro/invoice-api/internal/infrastructure/render"
	httpRouter "github.com/invoicepro/invoice-api/internal/interfaces/http"
	"github.com/invoicepro/invoice-api/pkg/config"
	"github.com/invoicepro/invoice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	themeRepo := postgres.NewThemeRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	themeUC := usecase.NewThemeUseCase(themeRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, invoiceRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, customerRepo, companyRepo, templateRepo)
	analyticsUC := appanalytics.NewUseCase(analyticsRepo)

	renderers := map[string]billing.DocumentRenderer{
		appmodel.KindPDF:          infrarender.NewPDFRenderer(),
		appmodel.KindSpreadsheet:  infrarender.NewExcelRenderer(),
		appmodel.KindFlowDocument: infrarender.NewDocxRenderer(),
	}
	var notifier billing.InvoiceNotifier
	if cfg.Email.APIKey != "" {
		notifier = email.NewResendNotifier(cfg.Email.APIKey, cfg.Email.From, log)
	} else {
		log.Warn().Msg("RESEND_API_KEY not set, invoice sending disabled")
	}
	exportUC := billing.NewExportUseCase(invoiceUC, renderers, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		ExportUC:    exportUC,
		AnalyticsUC: analyticsUC,
		TemplateUC:  templateUC,
		ThemeUC:     themeUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
