package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCounts are the year-scoped invoice counters and revenue sums for
// an owner. Pending counts SENT invoices; pending revenue is everything not
// yet paid.
type DashboardCounts struct {
	TotalInvoices   int
	PaidInvoices    int
	PendingInvoices int
	OverdueInvoices int
	TotalRevenue    decimal.Decimal
	PaidRevenue     decimal.Decimal
}

// RevenueRow is the minimal projection needed for month bucketing.
type RevenueRow struct {
	IssueDate   time.Time
	Status      string
	TotalAmount decimal.Decimal
}

// CustomerRevenueRow ranks a customer by the sum of their paid invoices.
// InvoiceCount counts the paid invoices only.
type CustomerRevenueRow struct {
	CustomerID   string
	Name         string
	Company      string
	Email        string
	TotalRevenue decimal.Decimal
	InvoiceCount int
}

// StatusBreakdownRow aggregates one invoice status.
type StatusBreakdownRow struct {
	Status      string
	Count       int
	TotalAmount decimal.Decimal
}

// AnalyticsRepository is the read-only aggregation port. Every query
// aggregates the same total_amount/status columns the lifecycle manager
// maintains; there is no second source of truth.
type AnalyticsRepository interface {
	DashboardCounts(ctx context.Context, userID string, from, to time.Time) (*DashboardCounts, error)
	ActiveCustomerCount(ctx context.Context, userID string) (int, error)
	RevenueRows(ctx context.Context, userID string, from, to time.Time) ([]RevenueRow, error)
	// TopCustomersByPaidRevenue returns customers ordered by paid revenue
	// descending; ties keep the customers' creation order.
	TopCustomersByPaidRevenue(ctx context.Context, userID string, limit int) ([]CustomerRevenueRow, error)
	StatusBreakdown(ctx context.Context, userID string) ([]StatusBreakdownRow, error)
	RecentInvoices(ctx context.Context, userID string, limit int) ([]*InvoiceListItem, error)
}
