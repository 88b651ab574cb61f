package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"svppbilling/services"
)

// HandleCartAdd resolves the submitted product ID against the catalog and
// merges a line into the cart. A miss leaves the cart untouched and echoes
// the form input back with an error toast.
func HandleCartAdd(app *pocketbase.PocketBase, session *services.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		idValue := e.Request.FormValue("product_id")
		qtyValue := e.Request.FormValue("qty")
		session.SetPending(idValue, qtyValue)

		id, err := strconv.Atoi(idValue)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid Product ID")
		}

		qty := 1
		if qtyValue != "" {
			qty, err = strconv.Atoi(qtyValue)
			if err != nil || qty < 1 {
				return ErrorToast(e, http.StatusBadRequest, "Quantity must be at least 1")
			}
		}

		product, ok := services.FindProductByID(app, id)
		if !ok {
			log.Printf("cart_add: unknown product id %d", id)
			return ErrorToast(e, http.StatusNotFound, "Invalid Product ID")
		}

		session.AddProduct(product, qty)

		SetToast(e, "success", "Added to cart")
		return renderCartSection(e, session)
	}
}

// HandleCartRemove deletes a cart line. Removing an absent line is not an
// error; the fragment is re-rendered either way.
func HandleCartRemove(app *pocketbase.PocketBase, session *services.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := strconv.Atoi(e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid Product ID")
		}

		session.RemoveLine(id)

		SetToast(e, "success", "Item removed")
		return renderCartSection(e, session)
	}
}

// HandleCustomerSave stores the customer name and place from the form.
func HandleCustomerSave(app *pocketbase.PocketBase, session *services.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session.SetCustomer(e.Request.FormValue("name"), e.Request.FormValue("place"))
		return e.NoContent(http.StatusNoContent)
	}
}
