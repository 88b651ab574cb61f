package services

import (
	"errors"
	"fmt"
)

// SellerName is the business the internal copy's profit row reports for.
const SellerName = "SVPP Crackers"

// ErrMissingCustomerName is returned by Compose when no customer name has
// been entered. No document may be produced in that case.
var ErrMissingCustomerName = errors.New("customer name is required")

// Variant selects which of the two invoice documents to compose.
type Variant int

const (
	// CustomerCopy is the retail invoice handed to the customer.
	CustomerCopy Variant = iota
	// InternalCopy is the internal bill carrying the profit figure. It is
	// styled with an alert accent so it cannot be mistaken for the
	// customer-facing document.
	InternalCopy
)

func (v Variant) String() string {
	if v == InternalCopy {
		return "internal"
	}
	return "customer"
}

// RGB is a style-intent color passed to the document renderers.
type RGB struct {
	R, G, B int
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
	amber = RGB{255, 204, 0}
	red   = RGB{255, 0, 0}
)

// InvoiceRow is one cart line in the invoice body. Monetary fields are
// preformatted with FormatRs; agency pricing never appears here.
type InvoiceRow struct {
	SNo       int
	ProductID int
	Name      string
	Qty       int
	UnitPrice string
	Amount    string
}

// SummaryRow is a trailing label/value row. Renderers must draw both cells
// bold.
type SummaryRow struct {
	Label string
	Value string
}

// InvoiceData is a fully materialized invoice ready for a document
// renderer: content plus style intent, no rendering mechanics.
type InvoiceData struct {
	Variant      Variant
	Title        string
	TitleColor   RGB
	HeaderFill   RGB
	HeaderText   RGB
	CustomerName string
	Place        string
	Rows         []InvoiceRow
	SummaryRows  []SummaryRow
	FileName     string
}

// Compose derives one of the two invoice documents from the cart and the
// customer details. Both variants share the same body rows at customer
// pricing; only the internal copy's summary exposes the profit, and only
// its title and header carry the red accent.
func Compose(variant Variant, cart Cart, customer CustomerInfo) (InvoiceData, error) {
	if customer.Name == "" {
		return InvoiceData{}, ErrMissingCustomerName
	}

	data := InvoiceData{
		Variant:      variant,
		CustomerName: customer.Name,
		Place:        customer.PlaceOrDash(),
	}

	switch variant {
	case InternalCopy:
		data.Title = SellerName + " Internal Bill"
		data.TitleColor = red
		data.HeaderFill = red
		data.HeaderText = white
		data.FileName = fmt.Sprintf("%s_%s_internal_bill.pdf", customer.Name, customer.PlaceOrDash())
	default:
		data.Title = SellerName
		data.TitleColor = black
		data.HeaderFill = amber
		data.HeaderText = black
		data.FileName = fmt.Sprintf("%s_%s.pdf", customer.Name, customer.PlaceOrDash())
	}

	for i, line := range cart.Lines() {
		data.Rows = append(data.Rows, InvoiceRow{
			SNo:       i + 1,
			ProductID: line.ID,
			Name:      line.NameEN,
			Qty:       line.Qty,
			UnitPrice: FormatRs(line.Price),
			Amount:    FormatRs(line.Amount),
		})
	}

	totals := cart.Totals()
	data.SummaryRows = append(data.SummaryRows, SummaryRow{
		Label: "Total",
		Value: FormatRs(totals.Customer),
	})
	if variant == InternalCopy {
		data.SummaryRows = append(data.SummaryRows, SummaryRow{
			Label: "Profit for " + SellerName,
			Value: FormatRs(totals.Profit),
		})
	}

	return data, nil
}
