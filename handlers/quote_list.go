package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentalquote/services"
	"rentalquote/templates"
)

// HandleQuoteList lists saved quotes, newest first.
// Route: GET /quotes
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_list: could not find quotes collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(quotesCol, "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.QuoteListEntry
		for _, rec := range records {
			createdDate := "—"
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("2006-01-02")
			}
			items = append(items, templates.QuoteListEntry{
				ID:          rec.Id,
				EventName:   rec.GetString("event_name"),
				EventDate:   rec.GetString("event_date"),
				GrandTotal:  services.FormatComma(int64(rec.GetInt("grand_total"))),
				CreatedDate: createdDate,
			})
		}

		data := templates.QuoteListData{
			Items:      items,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			component = templates.QuoteListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteView returns one quote with its lines and totals as JSON.
// Route: GET /quotes/{id}
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("quote_view: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"event_name":     data.EventName,
			"event_date":     data.EventDate,
			"event_location": data.EventLocation,
			"install_date":   data.InstallDate,
			"retrieval_date": data.RetrievalDate,
			"contact_person": data.ContactPerson,
			"contact_phone":  data.ContactPhone,
			"rental_days":    data.RentalDays,
			"tier_label":     data.Tier.Label(),
			"lines":          data.Lines,
			"transport_qty":  data.TransportQty,
			"totals":         data.Totals,
		})
	}
}
