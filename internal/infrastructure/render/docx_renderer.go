package render

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"github.com/invoicepro/invoice-api/internal/application/billing"
	appmodel "github.com/invoicepro/invoice-api/internal/application/billing/render"
)

// Half-point font sizes used through the document.
const (
	docxTitleSize   = "36"
	docxHeadingSize = "22"
)

const docxTableWidth = 9000 // twips, fills an A4 text column

var _ billing.DocumentRenderer = (*DocxRenderer)(nil)

// DocxRenderer renders the model as a flow document (.docx).
type DocxRenderer struct{}

// NewDocxRenderer builds the renderer.
func NewDocxRenderer() *DocxRenderer { return &DocxRenderer{} }

// Render generates the document and returns its bytes.
func (r *DocxRenderer) Render(m *appmodel.Model) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	title := w.AddParagraph().Justification("center")
	title.AddText(m.Title + " " + m.InvoiceNumber).Size(docxTitleSize).Bold()

	meta := w.AddParagraph().Justification("center")
	metaText := "Status: " + m.Status + "    Issue date: " + m.IssueDate
	if m.DueDate != "" {
		metaText += "    Due date: " + m.DueDate
	}
	meta.AddText(metaText)

	w.AddParagraph() // spacer

	writeDocxParty(w, "From", m.Company)
	writeDocxParty(w, "Bill To", m.Customer)

	if err := writeItemTable(w, m.Items); err != nil {
		return nil, err
	}

	w.AddParagraph()
	for _, t := range m.Totals {
		p := w.AddParagraph().Justification("end")
		run := p.AddText(t.Label + " " + t.Value)
		if t.Emphasis {
			run.Size(docxHeadingSize).Bold()
		}
	}

	for _, section := range []struct{ title, body string }{
		{"Notes", m.Notes},
		{"Terms", m.Terms},
	} {
		if section.body == "" {
			continue
		}
		w.AddParagraph()
		w.AddParagraph().AddText(section.title).Bold()
		w.AddParagraph().AddText(section.body)
	}
	if m.Footer != "" {
		w.AddParagraph()
		w.AddParagraph().Justification("center").AddText(m.Footer)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docx: write document: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDocxParty(w *docx.Docx, title string, p appmodel.Party) {
	w.AddParagraph().AddText(title).Bold()
	w.AddParagraph().AddText(p.Name).Bold()
	for _, l := range p.Lines {
		w.AddParagraph().AddText(l)
	}
	w.AddParagraph()
}

func writeItemTable(w *docx.Docx, items []appmodel.ItemRow) error {
	tbl := w.AddTable(len(items)+1, 4, docxTableWidth, nil)
	if tbl == nil || len(tbl.TableRows) != len(items)+1 {
		return fmt.Errorf("docx: build item table")
	}

	headers := []string{"Description", "Quantity", "Unit Price", "Amount"}
	for i, h := range headers {
		tbl.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
	}
	for i, it := range items {
		cells := tbl.TableRows[i+1].TableCells
		cells[0].AddParagraph().AddText(it.Description)
		cells[1].AddParagraph().AddText(it.Quantity)
		cells[2].AddParagraph().AddText(it.UnitPrice)
		cells[3].AddParagraph().AddText(it.Amount)
	}
	return nil
}
