// Package render defines the format-agnostic render model: one canonical
// intermediate representation of a fully-resolved invoice that every
// document backend (PDF, spreadsheet, flow document) consumes. All money
// strings are formatted exactly once here, from the totals already stored
// on the invoice, so the three formats cannot disagree numerically.
package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/invoicepro/invoice-api/internal/domain"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/pricing"
)

// Content kinds reported alongside rendered bytes. The HTTP layer maps
// these to transport content types; the core never sets headers.
const (
	KindPDF          = "pdf"
	KindSpreadsheet  = "spreadsheet"
	KindFlowDocument = "flow-document"
)

const dateLayout = "Jan 2, 2006"

// Party is a company or customer block: a display name plus free contact
// lines (address, city/state/zip, email, phone), empties already dropped.
type Party struct {
	Name  string
	Lines []string
}

// ItemRow is one pre-formatted item line.
type ItemRow struct {
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
}

// TotalLine is one row of the totals block. Emphasis marks the grand total.
type TotalLine struct {
	Label    string
	Value    string
	Emphasis bool
}

// Model is the canonical render input. Field order mirrors the document
// flow: title, parties, metadata, items, totals, trailing text.
type Model struct {
	Title         string
	InvoiceNumber string
	Status        string
	IssueDate     string
	DueDate       string // empty when the invoice has no due date

	Company  Party
	Customer Party

	Items  []ItemRow
	Totals []TotalLine

	Notes  string
	Terms  string
	Footer string
}

// TotalAmount returns the grand-total string (the emphasized totals line).
func (m *Model) TotalAmount() string {
	for _, t := range m.Totals {
		if t.Emphasis {
			return t.Value
		}
	}
	return ""
}

// Build assembles the render model. A renderable invoice must be fully
// resolved: a missing customer or company is a validation failure, not a
// renderer crash.
func Build(inv *entity.Invoice, company *entity.Company, customer *entity.Customer) (*Model, error) {
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice is not resolved", domain.ErrValidation)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: invoice %s has no resolved company", domain.ErrValidation, inv.InvoiceNumber)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: invoice %s has no resolved customer", domain.ErrValidation, inv.InvoiceNumber)
	}

	m := &Model{
		Title:         "INVOICE",
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		IssueDate:     inv.IssueDate.Format(dateLayout),
		Company:       companyParty(company),
		Customer:      customerParty(customer),
		Notes:         inv.Notes,
		Terms:         inv.Terms,
		Footer:        inv.Footer,
	}
	if inv.DueDate != nil {
		m.DueDate = inv.DueDate.Format(dateLayout)
	}

	for _, it := range inv.Items {
		m.Items = append(m.Items, ItemRow{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   Money(it.UnitPrice),
			Amount:      Money(it.Amount),
		})
	}

	m.Totals = totalLines(inv)
	return m, nil
}

// totalLines builds the totals block from the stored computed amounts.
// Discount and tax lines appear only when positive; the renderers never
// recompute anything.
func totalLines(inv *entity.Invoice) []TotalLine {
	lines := []TotalLine{{Label: "Subtotal:", Value: Money(inv.Subtotal)}}

	if inv.DiscountAmount.IsPositive() {
		lines = append(lines, TotalLine{Label: "Discount:", Value: "-" + Money(inv.DiscountAmount)})
	}
	if inv.TaxAmount.IsPositive() {
		lines = append(lines, TotalLine{Label: taxLabel(inv), Value: Money(inv.TaxAmount)})
	}
	lines = append(lines, TotalLine{Label: "TOTAL:", Value: Money(inv.TotalAmount), Emphasis: true})
	return lines
}

// taxLabel renders "VAT (10%):" when the invoice names its tax, "Tax:"
// otherwise.
func taxLabel(inv *entity.Invoice) string {
	if inv.TaxName != "" && inv.TaxRate != nil {
		return fmt.Sprintf("%s (%s%%):", inv.TaxName, inv.TaxRate.String())
	}
	return "Tax:"
}

func companyParty(c *entity.Company) Party {
	return Party{Name: c.Name, Lines: contactLines(c.Address, cityLine(c.City, c.State, c.ZipCode), c.Email, c.Phone)}
}

func customerParty(c *entity.Customer) Party {
	return Party{Name: c.Name, Lines: contactLines(c.Company, c.Address, cityLine(c.City, c.State, c.ZipCode), c.Email)}
}

func cityLine(city, state, zip string) string {
	if city == "" {
		return ""
	}
	line := city
	if state != "" {
		line += ", " + state
	}
	if zip != "" {
		line += " " + zip
	}
	return line
}

func contactLines(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Money formats an amount for documents: currency symbol plus half-up
// 2-decimal rounding. This is the single rounding boundary for rendering.
func Money(d decimal.Decimal) string {
	return "$" + pricing.Round2(d).StringFixed(2)
}
