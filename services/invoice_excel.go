package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// GenerateInvoiceExcel creates an Excel workbook with the same content and
// style intent as the PDF invoice and returns the file bytes.
func GenerateInvoiceExcel(data InvoiceData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 chars by the format.
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1] // "F"

	widths := []float64{6, 12, 40, 8, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  14,
			Color: hexColor(data.TitleColor),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style carries the variant's fill so the internal bill
	// is visually unmistakable even as a spreadsheet.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: hexColor(data.HeaderText),
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{hexColor(data.HeaderFill)},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: invoiceBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: invoiceBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeInvoiceCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge customer: %w", err)
	}
	// The label prefix already starts these cells, so the values cannot be
	// interpreted as formulas and must not be quote-escaped.
	f.SetCellValue(sheetName, "A2", "Customer Name: "+data.CustomerName)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge place: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Place: "+data.Place)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Column headers (row 5) ──────────────────────────────────────────

	headers := []string{"S.No", "Product ID", "Product Name", "Qty", "SVPP Price (per)", "Total Amount"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"5", h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Body rows ───────────────────────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := strconv.Itoa(row)
		f.SetCellValue(sheetName, "A"+rowStr, r.SNo)
		f.SetCellValue(sheetName, "B"+rowStr, r.ProductID)
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeInvoiceCell(r.Name))
		f.SetCellValue(sheetName, "D"+rowStr, r.Qty)
		f.SetCellValue(sheetName, "E"+rowStr, r.UnitPrice)
		f.SetCellValue(sheetName, "F"+rowStr, r.Amount)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bodyStyle)
		row++
	}

	// ── Summary rows ────────────────────────────────────────────────────

	row++
	for _, s := range data.SummaryRows {
		rowStr := strconv.Itoa(row)
		f.SetCellValue(sheetName, "E"+rowStr, s.Label)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, summaryStyle)
		f.SetCellValue(sheetName, "F"+rowStr, s.Value)
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, summaryStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// hexColor converts a style-intent color to the #RRGGBB form excelize expects.
func hexColor(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func invoiceBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}

// sanitizeInvoiceCell prevents formula injection by prefixing dangerous
// leading characters with a single quote.
func sanitizeInvoiceCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
