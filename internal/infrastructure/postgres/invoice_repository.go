package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/invoicepro/invoice-api/internal/domain"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, user_id, company_id, customer_id, invoice_number, status,
		issue_date, due_date, subtotal, tax_rate, tax_name, tax_amount,
		discount_type, discount_value, discount_amount, total_amount,
		notes, terms, footer, template_id, created_at, updated_at`

// Create inserts the invoice header. A duplicate invoice number for the
// owner maps to domain.ErrConflict so the allocator can retry.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.UserID, inv.CompanyID, inv.CustomerID, inv.InvoiceNumber, inv.Status,
		inv.IssueDate, inv.DueDate, inv.Subtotal, inv.TaxRate, nullString(inv.TaxName), inv.TaxAmount,
		nullString(inv.DiscountType), inv.DiscountValue, inv.DiscountAmount, inv.TotalAmount,
		inv.Notes, inv.Terms, inv.Footer, nullString(inv.TemplateID), inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s", domain.ErrConflict, inv.InvoiceNumber)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem inserts one line item.
func (r *InvoiceRepo) CreateItem(ctx context.Context, item *entity.LineItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, amount, tax_rate, tax_amount, discount, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.InvoiceID, item.Description, item.Quantity, item.UnitPrice, item.Amount,
		item.TaxRate, item.TaxAmount, item.Discount, item.Order,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// Update overwrites the header.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices SET
			customer_id = $2, status = $3, issue_date = $4, due_date = $5,
			subtotal = $6, tax_rate = $7, tax_name = $8, tax_amount = $9,
			discount_type = $10, discount_value = $11, discount_amount = $12, total_amount = $13,
			notes = $14, terms = $15, footer = $16, template_id = $17, updated_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CustomerID, inv.Status, inv.IssueDate, inv.DueDate,
		inv.Subtotal, inv.TaxRate, nullString(inv.TaxName), inv.TaxAmount,
		nullString(inv.DiscountType), inv.DiscountValue, inv.DiscountAmount, inv.TotalAmount,
		inv.Notes, inv.Terms, inv.Footer, nullString(inv.TemplateID), inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete removes the header; items cascade via FK.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// DeleteItems clears the invoice's line items.
func (r *InvoiceRepo) DeleteItems(ctx context.Context, invoiceID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// GetByID fetches an owner's invoice header, (nil, nil) on miss.
func (r *InvoiceRepo) GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 AND id = $2`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetItems returns the invoice's line items ordered by position.
func (r *InvoiceRepo) GetItems(ctx context.Context, invoiceID string) ([]*entity.LineItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, amount, tax_rate, tax_amount, discount, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	defer rows.Close()

	var items []*entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Amount,
			&it.TaxRate, &it.TaxAmount, &it.Discount, &it.Order,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List returns a filtered page plus the unpaginated total, newest first.
func (r *InvoiceRepo) List(ctx context.Context, userID string, f repository.InvoiceFilter, limit, offset int) ([]*repository.InvoiceListItem, int, error) {
	where := []string{"i.user_id = $1"}
	args := []any{userID}

	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		where = append(where, fmt.Sprintf("i.customer_id = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		where = append(where, fmt.Sprintf("i.issue_date >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		where = append(where, fmt.Sprintf("i.issue_date <= $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(i.invoice_number ILIKE $%d OR c.name ILIKE $%d)", len(args), len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM invoices i JOIN customers c ON c.id = i.customer_id WHERE ` + cond
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT i.id, i.user_id, i.company_id, i.customer_id, i.invoice_number, i.status,
			i.issue_date, i.due_date, i.subtotal, i.tax_rate, i.tax_name, i.tax_amount,
			i.discount_type, i.discount_value, i.discount_amount, i.total_amount,
			i.notes, i.terms, i.footer, i.template_id, i.created_at, i.updated_at,
			c.name
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE ` + cond + `
		ORDER BY i.created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*repository.InvoiceListItem
	for rows.Next() {
		item, err := scanInvoiceListItem(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	return out, total, rows.Err()
}

// MaxSequence returns the highest numeric suffix among the owner's invoice
// numbers with the given prefix, 0 when none exist. Run it inside the
// allocation transaction.
func (r *InvoiceRepo) MaxSequence(ctx context.Context, userID, prefix string) (int, error) {
	query := `
		SELECT COALESCE(MAX(substring(invoice_number FROM char_length($2) + 1)::int), 0)
		FROM invoices
		WHERE user_id = $1 AND invoice_number LIKE $2 || '%'`
	var max int
	if err := r.q.QueryRow(ctx, query, userID, prefix).Scan(&max); err != nil {
		return 0, fmt.Errorf("max invoice sequence: %w", err)
	}
	return max, nil
}

// CountByCustomer counts invoices referencing a customer.
func (r *InvoiceRepo) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE customer_id = $1`, customerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices by customer: %w", err)
	}
	return count, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var taxName, discountType, templateID *string
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.CompanyID, &inv.CustomerID, &inv.InvoiceNumber, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.TaxRate, &taxName, &inv.TaxAmount,
		&discountType, &inv.DiscountValue, &inv.DiscountAmount, &inv.TotalAmount,
		&inv.Notes, &inv.Terms, &inv.Footer, &templateID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.TaxName = derefString(taxName)
	inv.DiscountType = derefString(discountType)
	inv.TemplateID = derefString(templateID)
	return &inv, nil
}

func scanInvoiceListItem(row pgx.Row) (*repository.InvoiceListItem, error) {
	var inv entity.Invoice
	var taxName, discountType, templateID *string
	var customerName string
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.CompanyID, &inv.CustomerID, &inv.InvoiceNumber, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.TaxRate, &taxName, &inv.TaxAmount,
		&discountType, &inv.DiscountValue, &inv.DiscountAmount, &inv.TotalAmount,
		&inv.Notes, &inv.Terms, &inv.Footer, &templateID, &inv.CreatedAt, &inv.UpdatedAt,
		&customerName,
	)
	if err != nil {
		return nil, fmt.Errorf("scan invoice row: %w", err)
	}
	inv.TaxName = derefString(taxName)
	inv.DiscountType = derefString(discountType)
	inv.TemplateID = derefString(templateID)
	return &repository.InvoiceListItem{Invoice: &inv, CustomerName: customerName}, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
