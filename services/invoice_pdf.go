package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInvoicePDF renders an invoice document using maroto/v2 and
// returns the raw PDF bytes.
func GenerateInvoicePDF(data InvoiceData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, data)
	addInvoiceTableHeader(m, data)
	for _, r := range data.Rows {
		addInvoiceRow(m, r)
	}
	addInvoiceSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func pdfColor(c RGB) *props.Color {
	return &props.Color{Red: c.R, Green: c.G, Blue: c.B}
}

// addInvoiceHeader adds the colored title and the customer block.
func addInvoiceHeader(m core.Maroto, data InvoiceData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: pdfColor(data.TitleColor),
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Customer Name: %s", data.CustomerName), props.Text{
					Size:  11,
					Align: align.Left,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Place: %s", data.Place), props.Text{
					Size:  11,
					Align: align.Left,
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addInvoiceTableHeader adds the column header row with the variant's fill.
func addInvoiceTableHeader(m core.Maroto, data InvoiceData) {
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: pdfColor(data.HeaderText),
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: pdfColor(data.HeaderFill)}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("S.No", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Product ID", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Product Name", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("SVPP Price (per)", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total Amount", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addInvoiceRow adds one cart line to the invoice body.
func addInvoiceRow(m core.Maroto, r InvoiceRow) {
	baseText := props.Text{
		Size:  10,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(r.SNo), baseText)),
			col.New(2).Add(text.New(strconv.Itoa(r.ProductID), baseText)),
			col.New(4).Add(text.New(r.Name, leftText)),
			col.New(1).Add(text.New(strconv.Itoa(r.Qty), baseText)),
			col.New(2).Add(text.New(r.UnitPrice, rightText)),
			col.New(2).Add(text.New(r.Amount, rightText)),
		),
	)
}

// addInvoiceSummary adds the trailing summary rows. Labels and values are
// bold in both variants; the internal copy carries the profit row.
func addInvoiceSummary(m core.Maroto, data InvoiceData) {
	m.AddRows(row.New(4))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	for _, s := range data.SummaryRows {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(s.Label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(s.Value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}
