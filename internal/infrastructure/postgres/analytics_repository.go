package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements the read-only aggregation port. Everything here
// aggregates the persisted total_amount/status columns; cancelled invoices
// never count toward revenue.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// DashboardCounts aggregates the owner's invoices within [from, to).
func (r *AnalyticsRepo) DashboardCounts(ctx context.Context, userID string, from, to time.Time) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PAID'),
			COUNT(*) FILTER (WHERE status = 'SENT'),
			COUNT(*) FILTER (WHERE status = 'OVERDUE'),
			COALESCE(SUM(total_amount) FILTER (WHERE status <> 'CANCELLED'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'PAID'), 0)
		FROM invoices
		WHERE user_id = $1 AND issue_date >= $2 AND issue_date < $3`
	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query, userID, from, to).Scan(
		&c.TotalInvoices, &c.PaidInvoices, &c.PendingInvoices, &c.OverdueInvoices,
		&c.TotalRevenue, &c.PaidRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// ActiveCustomerCount counts the owner's active customers.
func (r *AnalyticsRepo) ActiveCustomerCount(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM customers WHERE user_id = $1 AND is_active`
	if err := r.q.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("active customer count: %w", err)
	}
	return count, nil
}

// RevenueRows returns the projection the month bucketing runs over.
func (r *AnalyticsRepo) RevenueRows(ctx context.Context, userID string, from, to time.Time) ([]repository.RevenueRow, error) {
	query := `
		SELECT issue_date, status, total_amount
		FROM invoices
		WHERE user_id = $1 AND issue_date >= $2 AND issue_date < $3`
	rows, err := r.q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue rows: %w", err)
	}
	defer rows.Close()

	var out []repository.RevenueRow
	for rows.Next() {
		var row repository.RevenueRow
		if err := rows.Scan(&row.IssueDate, &row.Status, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TopCustomersByPaidRevenue ranks customers by the sum of their paid
// invoices, descending; ties keep the customers' creation order. The count
// covers paid invoices only, and customers without any invoice still rank
// (at zero revenue).
func (r *AnalyticsRepo) TopCustomersByPaidRevenue(ctx context.Context, userID string, limit int) ([]repository.CustomerRevenueRow, error) {
	query := `
		SELECT c.id, c.name, c.company, c.email,
			COALESCE(SUM(i.total_amount) FILTER (WHERE i.status = 'PAID'), 0) AS revenue,
			COUNT(i.id) FILTER (WHERE i.status = 'PAID')
		FROM customers c
		LEFT JOIN invoices i ON i.customer_id = c.id
		WHERE c.user_id = $1
		GROUP BY c.id, c.name, c.company, c.email, c.created_at
		ORDER BY revenue DESC, c.created_at
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()

	var out []repository.CustomerRevenueRow
	for rows.Next() {
		var row repository.CustomerRevenueRow
		if err := rows.Scan(&row.CustomerID, &row.Name, &row.Company, &row.Email, &row.TotalRevenue, &row.InvoiceCount); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// StatusBreakdown aggregates all of the owner's invoices by status.
func (r *AnalyticsRepo) StatusBreakdown(ctx context.Context, userID string) ([]repository.StatusBreakdownRow, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE user_id = $1
		GROUP BY status
		ORDER BY status`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	defer rows.Close()

	var out []repository.StatusBreakdownRow
	for rows.Next() {
		var row repository.StatusBreakdownRow
		if err := rows.Scan(&row.Status, &row.Count, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan status breakdown: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// RecentInvoices returns the owner's newest invoices with customer names.
func (r *AnalyticsRepo) RecentInvoices(ctx context.Context, userID string, limit int) ([]*repository.InvoiceListItem, error) {
	query := `
		SELECT i.id, i.user_id, i.company_id, i.customer_id, i.invoice_number, i.status,
			i.issue_date, i.due_date, i.subtotal, i.tax_rate, i.tax_name, i.tax_amount,
			i.discount_type, i.discount_value, i.discount_amount, i.total_amount,
			i.notes, i.terms, i.footer, i.template_id, i.created_at, i.updated_at,
			c.name
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.user_id = $1
		ORDER BY i.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent invoices: %w", err)
	}
	defer rows.Close()

	var out []*repository.InvoiceListItem
	for rows.Next() {
		item, err := scanInvoiceListItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
