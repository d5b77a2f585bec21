package entity

import "github.com/shopspring/decimal"

// LineItem is one billable row on an invoice. Amount is always
// quantity × unitPrice recomputed on every write; it is stored for reads
// but never trusted from client input.
type LineItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
	TaxRate     *decimal.Decimal // per-item rate; overrides the invoice-level rate
	TaxAmount   *decimal.Decimal // derived when TaxRate is set
	Discount    *decimal.Decimal
	Order       int // 1-based position within the invoice
}
