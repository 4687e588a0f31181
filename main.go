package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"rentalquote/collections"
	"rentalquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		exportCfg := handlers.DefaultExportConfig()

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/items", handlers.HandleItemList(app))
		se.Router.POST("/items/import", handlers.HandleItemImport(app))

		// ── Quotes ───────────────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/quotes", handlers.HandleQuoteSave(app))

		// Export routes must be before /quotes/{id}
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app, exportCfg))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		se.Router.GET("/quotes/{id}", handlers.HandleQuoteView(app))

		// Redirect home to quote list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotes")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
