// Package templates renders the billing UI. Components implement
// templ.Component directly so handlers can treat full pages and htmx
// fragments uniformly.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CartRow is one cart line prepared for display. All monetary fields are
// preformatted so the table always matches the exported documents.
type CartRow struct {
	SNo            int
	ProductID      int
	NameEN         string
	NameTA         string
	Qty            int
	AgenciesPrice  string
	AgenciesAmount string
	Price          string
	Amount         string
}

// BillingData is everything the billing page needs: customer details, the
// pending add-form input echoed back on failure, the cart rows and the
// preformatted totals.
type BillingData struct {
	CustomerName  string
	CustomerPlace string
	PendingID     string
	PendingQty    string
	Rows          []CartRow
	TotalAgencies string
	Total         string
	Profit        string
}

// BillingPage renders the full billing screen.
func BillingPage(data BillingData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>SVPP Billing System</title>
<link rel="stylesheet" href="/static/styles.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<div class="page">
<h1>&#127878; SVPP Billing System</h1>
`); err != nil {
			return err
		}
		if err := customerForm(data, w); err != nil {
			return err
		}
		if err := addForm(data, w); err != nil {
			return err
		}
		if err := CartSection(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>
<div id="toast" class="toast" hidden></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  var toast = document.getElementById("toast");
  toast.textContent = evt.detail.message;
  toast.className = "toast toast-" + evt.detail.type;
  toast.hidden = false;
  setTimeout(function () { toast.hidden = true; }, 4000);
});
</script>
</body>
</html>
`)
		return err
	})
}

// customerForm writes the customer name/place inputs. Values auto-save so
// the export buttons can rely on the stored session state.
func customerForm(data BillingData, w io.Writer) error {
	_, err := fmt.Fprintf(w, `<div class="form-container">
<div class="form-group">
<label>Customer Name</label>
<input type="text" name="name" placeholder="Enter name" value="%s"
 hx-post="/customer" hx-include="[name='place']" hx-trigger="change" hx-swap="none">
</div>
<div class="form-group">
<label>Place</label>
<input type="text" name="place" placeholder="Enter place" value="%s"
 hx-post="/customer" hx-include="[name='name']" hx-trigger="change" hx-swap="none">
</div>
</div>
`, templ.EscapeString(data.CustomerName), templ.EscapeString(data.CustomerPlace))
	return err
}

// addForm writes the product-id/quantity inputs and the add button.
func addForm(data BillingData, w io.Writer) error {
	_, err := fmt.Fprintf(w, `<form class="form-container" hx-post="/cart/items" hx-target="#cart-section" hx-swap="outerHTML">
<div class="form-group">
<label>Product ID</label>
<input type="number" name="product_id" placeholder="Enter Product ID" value="%s">
</div>
<div class="form-group">
<label>Quantity</label>
<input type="number" name="qty" min="1" placeholder="Enter Qty" value="%s">
</div>
<button class="add-btn" type="submit">Add to Cart</button>
</form>
`, templ.EscapeString(data.PendingID), templ.EscapeString(data.PendingQty))
	return err
}

// CartSection renders the cart table, totals and export buttons. It is the
// htmx swap target for every cart mutation.
func CartSection(data BillingData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="cart-section">
<h2>&#128722; Cart</h2>
`); err != nil {
			return err
		}

		if len(data.Rows) == 0 {
			_, err := io.WriteString(w, `<p>No products added</p>
</div>
`)
			return err
		}

		if _, err := io.WriteString(w, `<div class="export-buttons">
<a class="add-btn" href="/export/customer/pdf">Download PDF for Customer</a>
<a class="add-btn" href="/export/internal/pdf">Download PDF for SVPP</a>
<a class="add-btn secondary" href="/export/customer/xlsx">Excel (Customer)</a>
<a class="add-btn secondary" href="/export/internal/xlsx">Excel (SVPP)</a>
</div>
<table class="crackers-table">
<thead>
<tr><th>S.No</th><th>Product ID</th><th>Product Name</th><th>&#2997;&#3007;&#2986;&#2992;&#2990;&#3021;</th><th>Qty</th><th>Agencies Rate</th><th>Agencies Total Amount</th><th>SVPP Price (per)</th><th>Total Amount</th><th>Action</th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}

		for _, row := range data.Rows {
			if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%d</td><td>%s</td><td class="tamil">%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><button class="delete-btn" hx-delete="/cart/items/%d" hx-target="#cart-section" hx-swap="outerHTML">Delete</button></td></tr>
`,
				row.SNo, row.ProductID,
				templ.EscapeString(row.NameEN), templ.EscapeString(row.NameTA),
				row.Qty,
				templ.EscapeString(row.AgenciesPrice), templ.EscapeString(row.AgenciesAmount),
				templ.EscapeString(row.Price), templ.EscapeString(row.Amount),
				row.ProductID); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `<tr class="totals-row"><td colspan="6">Total</td><td>%s</td><td></td><td>%s</td><td></td></tr>
<tr class="profit-row"><td colspan="6">Profit for SVPP Crackers</td><td colspan="3">%s</td><td></td></tr>
</tbody>
</table>
</div>
`,
			templ.EscapeString(data.TotalAgencies),
			templ.EscapeString(data.Total),
			templ.EscapeString(data.Profit))
		return err
	})
}
