// Package pricing computes invoice totals from line items and invoice-level
// modifiers. It is a pure package: no I/O, no persistence, total for every
// numeric input. Input validation (negative quantities, empty item lists)
// belongs to the callers, not here.
//
// Pipeline, in order:
//
//	subtotal   = Σ quantity_i × unitPrice_i
//	itemTax    = Σ amount_i × itemRate_i / 100   (only items with their own rate)
//	discount   = subtotal × value / 100          (PERCENTAGE)
//	           | value                           (FIXED, never capped to subtotal)
//	afterDisc  = subtotal − discount
//	tax        = itemTax                         (when any item carries a rate)
//	           | afterDisc × invoiceRate / 100   (otherwise)
//	total      = afterDisc + tax
//
// Item-level and invoice-level tax are mutually exclusive, never summed:
// per-item rates override the invoice-wide rate entirely. No currency
// rounding happens here; callers round at the persist/render boundary.
package pricing

import "github.com/shopspring/decimal"

// Discount kinds accepted by Compute. They mirror the entity constants so
// stored invoices feed back in without translation.
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

var hundred = decimal.NewFromInt(100)

// Item is the computation view of a line item.
type Item struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   *decimal.Decimal // percentage; nil = defer to the invoice-level rate
}

// Amount returns quantity × unitPrice at full precision.
func (i Item) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Totals is the computed financial summary of an invoice.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// Compute derives the invoice totals. invoiceTaxRate and discountValue are
// percentages/amounts as entered by the user; discountKind is one of the
// Discount constants or "" for no discount.
func Compute(items []Item, invoiceTaxRate decimal.Decimal, discountKind string, discountValue decimal.Decimal) Totals {
	var subtotal, itemTax decimal.Decimal

	for _, it := range items {
		amount := it.Amount()
		subtotal = subtotal.Add(amount)
		if it.TaxRate != nil {
			itemTax = itemTax.Add(amount.Mul(*it.TaxRate).Div(hundred))
		}
	}

	var discount decimal.Decimal
	if discountKind != "" && discountValue.IsPositive() {
		if discountKind == DiscountPercentage {
			discount = subtotal.Mul(discountValue).Div(hundred)
		} else {
			discount = discountValue
		}
	}

	// A fixed discount larger than the subtotal yields a negative balance.
	// That is accepted behavior, not clamped.
	afterDiscount := subtotal.Sub(discount)

	tax := itemTax
	if !itemTax.IsPositive() {
		tax = afterDiscount.Mul(invoiceTaxRate).Div(hundred)
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		TotalAmount:    afterDiscount.Add(tax),
	}
}

// ItemTax returns the derived tax for a single item, or nil when the item
// carries no rate of its own.
func ItemTax(it Item) *decimal.Decimal {
	if it.TaxRate == nil {
		return nil
	}
	t := it.Amount().Mul(*it.TaxRate).Div(hundred)
	return &t
}

// Round2 applies the currency boundary rounding: half-up to 2 decimal
// places. Use only when persisting or rendering, never mid-calculation.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
