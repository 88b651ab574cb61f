package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"svppbilling/collections"
	"svppbilling/handlers"
	"svppbilling/services"
)

func main() {
	app := pocketbase.New()

	// One billing session per process: a single operator runs the counter.
	session := &services.Session{}

	// Create collections and seed the catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: catalog seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Billing screen ───────────────────────────────────────
		se.Router.GET("/", handlers.HandleBillingPage(app, session))

		// ── Cart ─────────────────────────────────────────────────
		se.Router.POST("/cart/items", handlers.HandleCartAdd(app, session))
		se.Router.DELETE("/cart/items/{id}", handlers.HandleCartRemove(app, session))

		// ── Customer details ─────────────────────────────────────
		se.Router.POST("/customer", handlers.HandleCustomerSave(app, session))

		// ── Invoice downloads (variant: customer | internal) ─────
		se.Router.GET("/export/{variant}/pdf", handlers.HandleInvoiceExportPDF(app, session))
		se.Router.GET("/export/{variant}/xlsx", handlers.HandleInvoiceExportExcel(app, session))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
