package services

import (
	"github.com/pocketbase/pocketbase"
)

// Product is the service-side view of a catalog record with its textual
// price fields already parsed.
type Product struct {
	ID            int
	NameEN        string
	NameTA        string
	Price         float64 // customer unit price
	AgenciesPrice float64 // agencies unit price
}

// FindProductByID looks up a catalog record by exact product ID. The second
// return value is false when no record matches; that is the only failure
// signal and callers must treat it as an invalid product ID.
func FindProductByID(app *pocketbase.PocketBase, id int) (Product, bool) {
	record, err := app.FindFirstRecordByFilter(
		"products",
		"product_id = {:id}",
		map[string]any{"id": id},
	)
	if err != nil {
		return Product{}, false
	}

	return Product{
		ID:            record.GetInt("product_id"),
		NameEN:        record.GetString("name_en"),
		NameTA:        record.GetString("name_ta"),
		Price:         ParseAmount(record.GetString("customer_price")),
		AgenciesPrice: ParseAmount(record.GetString("agencies_price")),
	}, true
}
