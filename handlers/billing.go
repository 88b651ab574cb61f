// Package handlers wires the billing session and catalog to the HTTP
// surface: the billing page, cart mutations and invoice downloads.
package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"svppbilling/services"
	"svppbilling/templates"
)

// HandleBillingPage returns a handler that renders the billing screen.
func HandleBillingPage(app *pocketbase.PocketBase, session *services.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.BillingPage(buildBillingData(session))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildBillingData projects the session onto the view model. Every monetary
// value is formatted here with the same FormatRs the invoices use.
func buildBillingData(session *services.Session) templates.BillingData {
	cart := session.Cart()
	customer := session.Customer()
	pendingID, pendingQty := session.Pending()

	data := templates.BillingData{
		CustomerName:  customer.Name,
		CustomerPlace: customer.Place,
		PendingID:     pendingID,
		PendingQty:    pendingQty,
	}

	for i, line := range cart.Lines() {
		data.Rows = append(data.Rows, templates.CartRow{
			SNo:            i + 1,
			ProductID:      line.ID,
			NameEN:         line.NameEN,
			NameTA:         line.NameTA,
			Qty:            line.Qty,
			AgenciesPrice:  services.FormatRs(line.AgenciesPrice),
			AgenciesAmount: services.FormatRs(line.AgenciesAmount),
			Price:          services.FormatRs(line.Price),
			Amount:         services.FormatRs(line.Amount),
		})
	}

	totals := cart.Totals()
	data.TotalAgencies = services.FormatRs(totals.Agencies)
	data.Total = services.FormatRs(totals.Customer)
	data.Profit = services.FormatRs(totals.Profit)

	return data
}

// renderCartSection re-renders the cart fragment after a mutation.
func renderCartSection(e *core.RequestEvent, session *services.Session) error {
	component := templates.CartSection(buildBillingData(session))
	return component.Render(e.Request.Context(), e.Response)
}
