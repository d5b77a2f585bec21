package repository

import (
	"context"
	"time"

	"github.com/invoicepro/invoice-api/internal/domain/entity"
)

// InvoiceFilter narrows invoice listings. Zero values mean "no filter".
// Search matches the invoice number and the customer name, case-insensitive
// substring.
type InvoiceFilter struct {
	Status     string
	CustomerID string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// InvoiceListItem is a listing row: the invoice header joined with the
// customer's display name.
type InvoiceListItem struct {
	Invoice      *entity.Invoice
	CustomerName string
}

// InvoiceRepository is the persistence port for invoices and their line
// items. Lookups return (nil, nil) when no row matches; use cases translate
// that into domain.ErrNotFound.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.LineItem) error
	Update(ctx context.Context, inv *entity.Invoice) error
	// Delete removes the invoice; line items cascade.
	Delete(ctx context.Context, id string) error
	DeleteItems(ctx context.Context, invoiceID string) error

	// GetByID is owner-scoped: an invoice owned by someone else is a miss.
	GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error)
	// GetItems returns the invoice's line items ordered by their position.
	GetItems(ctx context.Context, invoiceID string) ([]*entity.LineItem, error)
	List(ctx context.Context, userID string, f InvoiceFilter, limit, offset int) ([]*InvoiceListItem, int, error)

	// MaxSequence returns the highest numeric suffix among the owner's
	// invoice numbers carrying the given prefix, or 0 when none exist.
	MaxSequence(ctx context.Context, userID, prefix string) (int, error)
	// CountByCustomer counts invoices referencing a customer, any owner
	// scope already implied by the customer itself.
	CountByCustomer(ctx context.Context, customerID string) (int, error)
}
