// Package analytics aggregates invoice data into dashboard views. It only
// reads the totals the lifecycle manager already persisted; nothing here
// recomputes pricing.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoicepro/invoice-api/internal/application/dto"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

const defaultTopCustomers = 10

// UseCase serves the dashboard endpoints.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	clock         func() time.Time
}

// NewUseCase builds the use case.
func NewUseCase(analyticsRepo repository.AnalyticsRepository) *UseCase {
	return &UseCase{analyticsRepo: analyticsRepo, clock: time.Now}
}

// WithClock replaces the time source for tests pinning the "current year".
func (uc *UseCase) WithClock(clock func() time.Time) *UseCase {
	uc.clock = clock
	return uc
}

// DashboardStats returns the current year's counters: invoice counts per
// status, revenue totals, active customer count and the five most recent
// invoices.
func (uc *UseCase) DashboardStats(ctx context.Context, userID string) (*dto.DashboardStatsResponse, error) {
	from, to := uc.yearBounds()

	counts, err := uc.analyticsRepo.DashboardCounts(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	customers, err := uc.analyticsRepo.ActiveCustomerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := uc.analyticsRepo.RecentInvoices(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardStatsResponse{
		TotalInvoices:   counts.TotalInvoices,
		PaidInvoices:    counts.PaidInvoices,
		PendingInvoices: counts.PendingInvoices,
		OverdueInvoices: counts.OverdueInvoices,
		TotalRevenue:    counts.TotalRevenue,
		PaidRevenue:     counts.PaidRevenue,
		PendingRevenue:  counts.TotalRevenue.Sub(counts.PaidRevenue),
		CustomerCount:   customers,
		RecentInvoices:  make([]dto.InvoiceListEntry, 0, len(recent)),
	}
	for _, row := range recent {
		out.RecentInvoices = append(out.RecentInvoices, dto.InvoiceListEntry{
			ID:            row.Invoice.ID,
			InvoiceNumber: row.Invoice.InvoiceNumber,
			Status:        row.Invoice.Status,
			IssueDate:     row.Invoice.IssueDate,
			DueDate:       row.Invoice.DueDate,
			CustomerID:    row.Invoice.CustomerID,
			CustomerName:  row.CustomerName,
			TotalAmount:   row.Invoice.TotalAmount,
			CreatedAt:     row.Invoice.CreatedAt,
		})
	}
	return out, nil
}

// MonthlyRevenue buckets the requested year's invoices into twelve months
// by issue date. Every month appears, zero-filled; cancelled invoices are
// excluded from all three series.
func (uc *UseCase) MonthlyRevenue(ctx context.Context, userID string, year int) ([]dto.MonthlyRevenueEntry, error) {
	if year == 0 {
		year = uc.clock().UTC().Year()
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := uc.analyticsRepo.RevenueRows(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	months := make([]dto.MonthlyRevenueEntry, 12)
	for i := range months {
		months[i] = dto.MonthlyRevenueEntry{
			Month:     i + 1,
			MonthName: time.Month(i + 1).String(),
			Total:     decimal.Zero,
			Paid:      decimal.Zero,
			Pending:   decimal.Zero,
		}
	}
	for _, row := range rows {
		if row.Status == entity.StatusCancelled {
			continue
		}
		m := &months[int(row.IssueDate.Month())-1]
		m.Total = m.Total.Add(row.TotalAmount)
		if row.Status == entity.StatusPaid {
			m.Paid = m.Paid.Add(row.TotalAmount)
		} else {
			m.Pending = m.Pending.Add(row.TotalAmount)
		}
	}
	return months, nil
}

// TopCustomers ranks customers by paid revenue, descending. Ties keep the
// customers' creation order, which the repository guarantees.
func (uc *UseCase) TopCustomers(ctx context.Context, userID string, limit int) ([]dto.TopCustomerEntry, error) {
	if limit <= 0 {
		limit = defaultTopCustomers
	}
	rows, err := uc.analyticsRepo.TopCustomersByPaidRevenue(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopCustomerEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TopCustomerEntry{
			ID:           row.CustomerID,
			Name:         row.Name,
			Company:      row.Company,
			Email:        row.Email,
			TotalRevenue: row.TotalRevenue,
			InvoiceCount: row.InvoiceCount,
		})
	}
	return out, nil
}

// StatusBreakdown aggregates all of the owner's invoices by status.
func (uc *UseCase) StatusBreakdown(ctx context.Context, userID string) ([]dto.StatusBreakdownEntry, error) {
	rows, err := uc.analyticsRepo.StatusBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StatusBreakdownEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.StatusBreakdownEntry{
			Status:      row.Status,
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}
	return out, nil
}

// yearBounds is [Jan 1 of this year, Jan 1 of next year).
func (uc *UseCase) yearBounds() (time.Time, time.Time) {
	now := uc.clock().UTC()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}
