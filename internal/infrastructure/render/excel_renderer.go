package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/invoicepro/invoice-api/internal/application/billing"
	appmodel "github.com/invoicepro/invoice-api/internal/application/billing/render"
)

const sheetName = "Invoice"

var _ billing.DocumentRenderer = (*ExcelRenderer)(nil)

// ExcelRenderer renders the model as an xlsx workbook with one sheet.
type ExcelRenderer struct{}

// NewExcelRenderer builds the renderer.
func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

// Render generates the workbook and returns its bytes.
func (r *ExcelRenderer) Render(m *appmodel.Model) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: drop default sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: title style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: bold style: %w", err)
	}

	set := func(cell string, value any) {
		_ = f.SetCellValue(sheetName, cell, value)
	}
	bold := func(cell string) {
		_ = f.SetCellStyle(sheetName, cell, cell, boldStyle)
	}

	set("A1", m.Title+" "+m.InvoiceNumber)
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	set("A2", "Status: "+m.Status)
	set("A3", "Issue date: "+m.IssueDate)
	rowNum := 4
	if m.DueDate != "" {
		set(fmt.Sprintf("A%d", rowNum), "Due date: "+m.DueDate)
		rowNum++
	}
	rowNum++

	rowNum = writeParty(f, "From", m.Company, rowNum, bold, set)
	rowNum = writeParty(f, "Bill To", m.Customer, rowNum, bold, set)

	// Item table.
	headers := []string{"Description", "Quantity", "Unit Price", "Amount"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c%d", 'A'+i, rowNum)
		set(cell, h)
		bold(cell)
	}
	rowNum++
	for _, it := range m.Items {
		set(fmt.Sprintf("A%d", rowNum), it.Description)
		set(fmt.Sprintf("B%d", rowNum), it.Quantity)
		set(fmt.Sprintf("C%d", rowNum), it.UnitPrice)
		set(fmt.Sprintf("D%d", rowNum), it.Amount)
		rowNum++
	}
	rowNum++

	// Totals block in the two rightmost columns.
	for _, t := range m.Totals {
		labelCell := fmt.Sprintf("C%d", rowNum)
		valueCell := fmt.Sprintf("D%d", rowNum)
		set(labelCell, t.Label)
		set(valueCell, t.Value)
		if t.Emphasis {
			bold(labelCell)
			bold(valueCell)
		}
		rowNum++
	}
	rowNum++

	for _, section := range []struct{ title, body string }{
		{"Notes", m.Notes},
		{"Terms", m.Terms},
		{"", m.Footer},
	} {
		if section.body == "" {
			continue
		}
		if section.title != "" {
			cell := fmt.Sprintf("A%d", rowNum)
			set(cell, section.title)
			bold(cell)
			rowNum++
		}
		set(fmt.Sprintf("A%d", rowNum), section.body)
		rowNum += 2
	}

	_ = f.SetColWidth(sheetName, "A", "A", 40)
	_ = f.SetColWidth(sheetName, "B", "D", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeParty(f *excelize.File, title string, p appmodel.Party, rowNum int, bold func(string), set func(string, any)) int {
	cell := fmt.Sprintf("A%d", rowNum)
	set(cell, title)
	bold(cell)
	rowNum++
	set(fmt.Sprintf("A%d", rowNum), p.Name)
	rowNum++
	for _, l := range p.Lines {
		set(fmt.Sprintf("A%d", rowNum), l)
		rowNum++
	}
	return rowNum + 1
}
