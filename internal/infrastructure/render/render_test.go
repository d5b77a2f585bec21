package render_test

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/invoicepro/invoice-api/internal/application/billing"
	appmodel "github.com/invoicepro/invoice-api/internal/application/billing/render"
	"github.com/invoicepro/invoice-api/internal/infrastructure/render"
)

func sampleModel() *appmodel.Model {
	return &appmodel.Model{
		Title:         "INVOICE",
		InvoiceNumber: "INV-2026-042",
		Status:        "SENT",
		IssueDate:     "Mar 15, 2026",
		DueDate:       "Apr 14, 2026",
		Company: appmodel.Party{
			Name:  "Nimbus Consulting",
			Lines: []string{"1 Cloud Way", "Porto 4000-000", "hello@nimbus.test"},
		},
		Customer: appmodel.Party{
			Name:  "Acme Corp",
			Lines: []string{"Acme Holdings", "Lisbon, LX", "billing@acme.test"},
		},
		Items: []appmodel.ItemRow{
			{Description: "Consulting", Quantity: "40", UnitPrice: "$50.00", Amount: "$2000.00"},
			{Description: "Hosting", Quantity: "10", UnitPrice: "$100.00", Amount: "$1000.00"},
		},
		Totals: []appmodel.TotalLine{
			{Label: "Subtotal:", Value: "$3000.00"},
			{Label: "VAT (10%):", Value: "$300.00"},
			{Label: "TOTAL:", Value: "$3300.00", Emphasis: true},
		},
		Notes: "Thank you for your business.",
		Terms: "Net 30.",
	}
}

// The interface checks double as compile-time wiring assertions.
var (
	_ billing.DocumentRenderer = (*render.PDFRenderer)(nil)
	_ billing.DocumentRenderer = (*render.ExcelRenderer)(nil)
	_ billing.DocumentRenderer = (*render.DocxRenderer)(nil)
)

func TestPDFRenderer_ProducesValidPDF(t *testing.T) {
	out, err := render.NewPDFRenderer().Render(sampleModel())
	require.NoError(t, err)

	require.Greater(t, len(out), 1000)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output lacks PDF magic bytes")
}

func TestPDFRenderer_HandlesMinimalModel(t *testing.T) {
	m := &appmodel.Model{
		Title:         "INVOICE",
		InvoiceNumber: "INV-2026-001",
		Status:        "DRAFT",
		IssueDate:     "Jan 1, 2026",
		Company:       appmodel.Party{Name: "Solo Co"},
		Customer:      appmodel.Party{Name: "Solo Client"},
		Items:         []appmodel.ItemRow{{Description: "Thing", Quantity: "1", UnitPrice: "$1.00", Amount: "$1.00"}},
		Totals:        []appmodel.TotalLine{{Label: "TOTAL:", Value: "$1.00", Emphasis: true}},
	}
	out, err := render.NewPDFRenderer().Render(m)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExcelRenderer_WorkbookRoundTrips(t *testing.T) {
	out, err := render.NewExcelRenderer().Render(sampleModel())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Invoice"}, f.GetSheetList())

	title, err := f.GetCellValue("Invoice", "A1")
	require.NoError(t, err)
	assert.Equal(t, "INVOICE INV-2026-042", title)

	rows, err := f.GetRows("Invoice")
	require.NoError(t, err)

	flat := make([]string, 0, 64)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	joined := strings.Join(flat, "\n")
	for _, want := range []string{
		"Nimbus Consulting", "Acme Corp", "Consulting", "$2000.00",
		"TOTAL:", "$3300.00", "Thank you for your business.",
	} {
		assert.Contains(t, joined, want)
	}
}

func TestDocxRenderer_DocumentCarriesModelText(t *testing.T) {
	out, err := render.NewDocxRenderer().Render(sampleModel())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	var doc string
	for _, zf := range zr.File {
		if zf.Name != "word/document.xml" {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		doc = string(raw)
	}
	require.NotEmpty(t, doc, "archive has no word/document.xml")

	for _, want := range []string{
		"INV-2026-042", "Nimbus Consulting", "Acme Corp",
		"Consulting", "$3300.00", "TOTAL:",
	} {
		assert.Contains(t, doc, want)
	}
}

// All three backends consume the same model, so the grand total printed on
// each document is byte-for-byte the model's emphasized line.
func TestRenderers_AgreeOnGrandTotal(t *testing.T) {
	m := sampleModel()
	require.Equal(t, "$3300.00", m.TotalAmount())

	xlsx, err := render.NewExcelRenderer().Render(m)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Invoice")
	require.NoError(t, err)
	found := false
	for _, row := range rows {
		for i, cell := range row {
			if cell == "TOTAL:" && i+1 < len(row) {
				assert.Equal(t, "$3300.00", row[i+1])
				found = true
			}
		}
	}
	assert.True(t, found, "xlsx totals block has no TOTAL row")

	docxOut, err := render.NewDocxRenderer().Render(m)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(docxOut, []byte("$3300.00")) ||
		zipContains(t, docxOut, "$3300.00"))
}

func zipContains(t *testing.T, archive []byte, needle string) bool {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	for _, zf := range zr.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		if strings.Contains(string(raw), needle) {
			return true
		}
	}
	return false
}
