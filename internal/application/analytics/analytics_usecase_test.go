package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepro/invoice-api/internal/application/analytics"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeAnalyticsRepo returns canned rows and records the query windows it
// was asked for.
type fakeAnalyticsRepo struct {
	counts       *repository.DashboardCounts
	customers    int
	revenueRows  []repository.RevenueRow
	topCustomers []repository.CustomerRevenueRow
	breakdown    []repository.StatusBreakdownRow
	recent       []*repository.InvoiceListItem

	countsFrom, countsTo   time.Time
	revenueFrom, revenueTo time.Time
	topLimit               int
}

func (r *fakeAnalyticsRepo) DashboardCounts(_ context.Context, _ string, from, to time.Time) (*repository.DashboardCounts, error) {
	r.countsFrom, r.countsTo = from, to
	return r.counts, nil
}

func (r *fakeAnalyticsRepo) ActiveCustomerCount(_ context.Context, _ string) (int, error) {
	return r.customers, nil
}

func (r *fakeAnalyticsRepo) RevenueRows(_ context.Context, _ string, from, to time.Time) ([]repository.RevenueRow, error) {
	r.revenueFrom, r.revenueTo = from, to
	return r.revenueRows, nil
}

func (r *fakeAnalyticsRepo) TopCustomersByPaidRevenue(_ context.Context, _ string, limit int) ([]repository.CustomerRevenueRow, error) {
	r.topLimit = limit
	return r.topCustomers, nil
}

func (r *fakeAnalyticsRepo) StatusBreakdown(_ context.Context, _ string) ([]repository.StatusBreakdownRow, error) {
	return r.breakdown, nil
}

func (r *fakeAnalyticsRepo) RecentInvoices(_ context.Context, _ string, limit int) ([]*repository.InvoiceListItem, error) {
	if limit < len(r.recent) {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func fixedClock() time.Time {
	return time.Date(2026, time.August, 10, 15, 0, 0, 0, time.UTC)
}

func TestDashboardStats_DerivesPendingRevenue(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		counts: &repository.DashboardCounts{
			TotalInvoices: 10, PaidInvoices: 6, PendingInvoices: 3, OverdueInvoices: 1,
			TotalRevenue: dec("5000"), PaidRevenue: dec("3200"),
		},
		customers: 4,
	}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	stats, err := uc.DashboardStats(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalInvoices)
	assert.Equal(t, 4, stats.CustomerCount)
	assert.Equal(t, "1800", stats.PendingRevenue.String())
	assert.Empty(t, stats.RecentInvoices)
}

func TestDashboardStats_WindowIsCurrentCalendarYear(t *testing.T) {
	repo := &fakeAnalyticsRepo{counts: &repository.DashboardCounts{}}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	_, err := uc.DashboardStats(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), repo.countsFrom)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), repo.countsTo)
}

func TestDashboardStats_MapsRecentInvoices(t *testing.T) {
	issue := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		counts: &repository.DashboardCounts{},
		recent: []*repository.InvoiceListItem{
			{
				Invoice: &entity.Invoice{
					ID: "inv-1", InvoiceNumber: "INV-2026-009", Status: entity.StatusSent,
					IssueDate: issue, TotalAmount: dec("120.50"),
				},
				CustomerName: "Acme Corp",
			},
		},
	}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	stats, err := uc.DashboardStats(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, stats.RecentInvoices, 1)
	entry := stats.RecentInvoices[0]
	assert.Equal(t, "INV-2026-009", entry.InvoiceNumber)
	assert.Equal(t, "Acme Corp", entry.CustomerName)
	assert.Equal(t, "120.5", entry.TotalAmount.String())
}

func TestMonthlyRevenue_ZeroFillsAllTwelveMonths(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	months, err := uc.MonthlyRevenue(context.Background(), testUserID, 2026)
	require.NoError(t, err)

	require.Len(t, months, 12)
	assert.Equal(t, 1, months[0].Month)
	assert.Equal(t, "January", months[0].MonthName)
	assert.Equal(t, "December", months[11].MonthName)
	for _, m := range months {
		assert.True(t, m.Total.IsZero(), "month %d should be zero", m.Month)
	}
}

func TestMonthlyRevenue_BucketsByIssueMonthAndSplitsPaidPending(t *testing.T) {
	march := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		revenueRows: []repository.RevenueRow{
			{IssueDate: march, Status: entity.StatusPaid, TotalAmount: dec("100")},
			{IssueDate: march.AddDate(0, 0, 10), Status: entity.StatusSent, TotalAmount: dec("40")},
			{IssueDate: march.AddDate(0, 0, 20), Status: entity.StatusOverdue, TotalAmount: dec("60")},
			{IssueDate: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), Status: entity.StatusPaid, TotalAmount: dec("500")},
		},
	}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	months, err := uc.MonthlyRevenue(context.Background(), testUserID, 2026)
	require.NoError(t, err)

	marchBucket := months[2]
	assert.Equal(t, "200", marchBucket.Total.String())
	assert.Equal(t, "100", marchBucket.Paid.String())
	assert.Equal(t, "100", marchBucket.Pending.String())

	julyBucket := months[6]
	assert.Equal(t, "500", julyBucket.Paid.String())
	assert.True(t, julyBucket.Pending.IsZero())
}

func TestMonthlyRevenue_ExcludesCancelledInvoices(t *testing.T) {
	march := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		revenueRows: []repository.RevenueRow{
			{IssueDate: march, Status: entity.StatusCancelled, TotalAmount: dec("999")},
			{IssueDate: march, Status: entity.StatusPaid, TotalAmount: dec("100")},
		},
	}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	months, err := uc.MonthlyRevenue(context.Background(), testUserID, 2026)
	require.NoError(t, err)
	assert.Equal(t, "100", months[2].Total.String())
}

func TestMonthlyRevenue_ZeroYearMeansCurrentYear(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	_, err := uc.MonthlyRevenue(context.Background(), testUserID, 0)
	require.NoError(t, err)

	assert.Equal(t, 2026, repo.revenueFrom.Year())
	assert.Equal(t, 2027, repo.revenueTo.Year())
}

func TestTopCustomers_DefaultsTheLimit(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		topCustomers: []repository.CustomerRevenueRow{
			{CustomerID: "c1", Name: "Acme Corp", TotalRevenue: dec("900"), InvoiceCount: 3},
		},
	}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	out, err := uc.TopCustomers(context.Background(), testUserID, 0)
	require.NoError(t, err)

	assert.Equal(t, 10, repo.topLimit)
	require.Len(t, out, 1)
	assert.Equal(t, "Acme Corp", out[0].Name)
	assert.Equal(t, 3, out[0].InvoiceCount)

	// An explicit limit passes through untouched.
	_, err = uc.TopCustomers(context.Background(), testUserID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.topLimit)
}

func TestTopCustomers_KeepsZeroRevenueCustomers(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		topCustomers: []repository.CustomerRevenueRow{
			{CustomerID: "c1", Name: "Acme Corp", TotalRevenue: dec("900"), InvoiceCount: 3},
			{CustomerID: "c2", Name: "Globex", TotalRevenue: decimal.Zero, InvoiceCount: 0},
		},
	}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	out, err := uc.TopCustomers(context.Background(), testUserID, 10)
	require.NoError(t, err)

	// A customer with no paid invoices still ranks, at zero.
	require.Len(t, out, 2)
	assert.Equal(t, "Globex", out[1].Name)
	assert.True(t, out[1].TotalRevenue.IsZero())
	assert.Equal(t, 0, out[1].InvoiceCount)
}

func TestStatusBreakdown_MapsRows(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		breakdown: []repository.StatusBreakdownRow{
			{Status: entity.StatusDraft, Count: 2, TotalAmount: dec("50")},
			{Status: entity.StatusPaid, Count: 7, TotalAmount: dec("7000")},
		},
	}
	uc := analytics.NewUseCase(repo).WithClock(fixedClock)

	out, err := uc.StatusBreakdown(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, entity.StatusPaid, out[1].Status)
	assert.Equal(t, 7, out[1].Count)
	assert.Equal(t, "7000", out[1].TotalAmount.String())
}
