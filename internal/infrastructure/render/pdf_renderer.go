// Package render holds the concrete document backends. Each renderer
// consumes the canonical model from application/billing/render and emits
// one encoding; none of them touch amounts beyond printing the strings the
// model already carries.
//
// A4 page layout of the PDF:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name        │  INVOICE + number + dates    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: company contact lines                                │
//	│  BILL TO: customer name + contact lines                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Qty | Unit Price | Amount             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Discount / Tax / TOTAL                  │
//	│  Notes / Terms / Footer                                     │
//	└─────────────────────────────────────────────────────────────┘
package render

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invoicepro/invoice-api/internal/application/billing"
	appmodel "github.com/invoicepro/invoice-api/internal/application/billing/render"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.DocumentRenderer = (*PDFRenderer)(nil)

// PDFRenderer renders the model with Maroto v2.
type PDFRenderer struct{}

// NewPDFRenderer builds the renderer.
func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

// Render generates the PDF and returns its bytes.
func (r *PDFRenderer) Render(m *appmodel.Model) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+m.InvoiceNumber, true).
		WithAuthor(m.Company.Name, true).
		Build()

	doc := maroto.New(cfg)

	doc.AddRows(headerRow(m))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	doc.AddRows(partiesRow(m))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	doc.AddRows(tableHeaderRow())
	for _, r := range itemRows(m.Items) {
		doc.AddRows(r)
	}

	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	doc.AddRows(totalsRow(m.Totals))

	for _, r := range trailingRows(m) {
		doc.AddRows(r)
	}

	out, err := doc.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: company name (left), title + number + dates (right).
func headerRow(m *appmodel.Model) core.Row {
	right := []core.Component{
		text.New(m.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
		text.New(m.InvoiceNumber, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
		}),
		text.New("Issue date: "+m.IssueDate, props.Text{
			Size: 8, Align: align.Right, Top: 14, Color: colorGray,
		}),
	}
	if m.DueDate != "" {
		right = append(right, text.New("Due date: "+m.DueDate, props.Text{
			Size: 8, Align: align.Right, Top: 18, Color: colorGray,
		}))
	}
	return row.New(24).Add(
		col.New(7).Add(
			text.New(m.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(m.Status, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(right...),
	)
}

// partiesRow: FROM block (left) and BILL TO block (right).
func partiesRow(m *appmodel.Model) core.Row {
	height := 14 + 4*maxInt(len(m.Company.Lines), len(m.Customer.Lines))
	return row.New(float64(height)).Add(
		partyCol("FROM", m.Company),
		partyCol("BILL TO", m.Customer),
	)
}

func partyCol(title string, p appmodel.Party) core.Col {
	components := []core.Component{
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	}
	top := 12.0
	for _, l := range p.Lines {
		components = append(components, text.New(l, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4
	}
	return col.New(6).Add(components...)
}

// tableHeaderRow: item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

// itemRows: one row per line item.
func itemRows(items []appmodel.ItemRow) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(it.Description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.Quantity, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(it.UnitPrice, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(it.Amount, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: right-aligned totals block, grand total emphasized.
func totalsRow(totals []appmodel.TotalLine) core.Row {
	labels := make([]core.Component, 0, len(totals))
	values := make([]core.Component, 0, len(totals))
	top := 1.0
	for _, t := range totals {
		style := fontstyle.Normal
		size := 9.0
		color := (*props.Color)(nil)
		if t.Emphasis {
			style = fontstyle.Bold
			size = 10
			color = colorPrimary
		}
		labels = append(labels, text.New(t.Label, props.Text{
			Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2, Top: top, Color: color,
		}))
		values = append(values, text.New(t.Value, props.Text{
			Style: style, Size: size, Align: align.Right, Right: 1, Top: top, Color: color,
		}))
		top += 5
	}
	return row.New(top + 4).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

// trailingRows: notes, terms and footer text.
func trailingRows(m *appmodel.Model) []core.Row {
	var rows []core.Row
	section := func(title, body string) {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			)),
			row.New(8).Add(col.New(12).Add(
				text.New(body, props.Text{Size: 8, Color: colorGray, Top: 1}),
			)),
		)
	}
	if m.Notes != "" {
		section("NOTES", m.Notes)
	}
	if m.Terms != "" {
		section("TERMS", m.Terms)
	}
	if m.Footer != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(m.Footer, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 3}),
		)))
	}
	return rows
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
