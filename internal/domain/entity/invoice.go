package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle states.
const (
	StatusDraft     = "DRAFT"
	StatusSent      = "SENT"
	StatusPaid      = "PAID"
	StatusOverdue   = "OVERDUE"
	StatusCancelled = "CANCELLED"
)

// Discount kinds. A percentage discount is taken over the subtotal; a fixed
// discount is a flat currency amount and is not capped to the subtotal.
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

// ValidStatus reports whether s is a known invoice status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Invoice is the header of a billing document. Monetary fields are exact
// decimals; Subtotal, DiscountAmount, TaxAmount and TotalAmount are derived
// by the pricing engine and persisted for fast reads, never edited directly.
type Invoice struct {
	ID            string
	UserID        string // owner scope
	CompanyID     string
	CustomerID    string
	InvoiceNumber string // INV-{year}-{seq}, unique per owner
	Status        string
	IssueDate     time.Time
	DueDate       *time.Time

	Subtotal       decimal.Decimal
	TaxRate        *decimal.Decimal // invoice-level rate, ignored when items carry their own
	TaxName        string
	TaxAmount      decimal.Decimal
	DiscountType   string // "" = no discount
	DiscountValue  *decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	Notes      string
	Terms      string
	Footer     string
	TemplateID string // optional

	Items []*LineItem // populated on full reads, ordered by LineItem.Order

	CreatedAt time.Time
	UpdatedAt time.Time
}
