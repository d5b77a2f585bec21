package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/invoicepro/invoice-api/internal/application/analytics"
)

// AnalyticsHandler serves the dashboard aggregations (protected).
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler builds the handler.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard GET /api/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.uc.DashboardStats(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MonthlyRevenue GET /api/analytics/monthly-revenue?year=2026
func (h *AnalyticsHandler) MonthlyRevenue(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year", "0"))
	resp, err := h.uc.MonthlyRevenue(c.Context(), GetUserID(c), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// TopCustomers GET /api/analytics/top-customers?limit=5
func (h *AnalyticsHandler) TopCustomers(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	resp, err := h.uc.TopCustomers(c.Context(), GetUserID(c), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// StatusBreakdown GET /api/analytics/status-breakdown
func (h *AnalyticsHandler) StatusBreakdown(c *fiber.Ctx) error {
	resp, err := h.uc.StatusBreakdown(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
