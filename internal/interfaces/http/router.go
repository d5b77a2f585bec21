package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoicepro/invoice-api/internal/application/analytics"
	"github.com/invoicepro/invoice-api/internal/application/auth"
	"github.com/invoicepro/invoice-api/internal/application/billing"
	"github.com/invoicepro/invoice-api/internal/application/usecase"
)

// RouterDeps collects the use cases the router wires up.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CompanyUC   *usecase.CompanyUseCase
	CustomerUC  *billing.CustomerUseCase
	InvoiceUC   *billing.InvoiceUseCase
	ExportUC    *billing.ExportUseCase
	AnalyticsUC *analytics.UseCase
	TemplateUC  *usecase.TemplateUseCase
	ThemeUC     *usecase.ThemeUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	company := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", company.Get)
	protected.Put("/company", company.Upsert)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Patch("/:id/toggle-active", customerHandler.ToggleActive)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/duplicate", invoiceHandler.Duplicate)
	invoices.Get("/:id/export/pdf", invoiceHandler.ExportPDF)
	invoices.Get("/:id/export/excel", invoiceHandler.ExportExcel)
	invoices.Get("/:id/export/word", invoiceHandler.ExportWord)
	invoices.Post("/:id/send", invoiceHandler.Send)

	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/dashboard", analyticsHandler.Dashboard)
	analyticsGroup.Get("/monthly-revenue", analyticsHandler.MonthlyRevenue)
	analyticsGroup.Get("/top-customers", analyticsHandler.TopCustomers)
	analyticsGroup.Get("/status-breakdown", analyticsHandler.StatusBreakdown)

	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Post("/", templateHandler.Create)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.Get)
	templates.Put("/:id", templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)

	themes := protected.Group("/themes")
	themeHandler := NewThemeHandler(deps.ThemeUC)
	themes.Post("/", themeHandler.Create)
	themes.Get("/", themeHandler.List)
	themes.Put("/:id", themeHandler.Update)
	themes.Patch("/:id/activate", themeHandler.Activate)
	themes.Delete("/:id", themeHandler.Delete)
}
