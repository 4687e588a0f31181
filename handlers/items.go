package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentalquote/services"
	"rentalquote/templates"
)

// HandleItemList lists the catalog, optionally filtered by category
// substring (?category=) and priced for a rental length (?days=, default
// tier 1~3일).
// Route: GET /items
func HandleItemList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemsCol, err := app.FindCollectionByNameOrId("items")
		if err != nil {
			log.Printf("item_list: could not find items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		category := e.Request.URL.Query().Get("category")

		var records []*core.Record
		if category != "" {
			records, err = app.FindRecordsByFilter(
				itemsCol,
				"category ~ {:category}",
				"code", 0, 0,
				map[string]any{"category": category},
			)
		} else {
			records, err = app.FindAllRecords(itemsCol)
		}
		if err != nil {
			log.Printf("item_list: could not query items: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		tier := services.Tier1To3Days
		if daysParam := e.Request.URL.Query().Get("days"); daysParam != "" {
			if days, err := strconv.Atoi(daysParam); err == nil && days >= 1 {
				tier = services.ResolveTier(days)
			}
		}

		var entries []templates.ItemListEntry
		for _, rec := range records {
			item := services.CatalogItemFromRecord(rec)
			entries = append(entries, templates.ItemListEntry{
				Code:     item.Code,
				Name:     item.Name,
				Size:     item.Size,
				Category: item.Category,
				Price:    services.FormatComma(item.Price(tier)),
			})
		}

		data := templates.ItemListData{
			Items:      entries,
			TierLabel:  tier.Label(),
			TotalCount: len(entries),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ItemListContent(data)
		} else {
			component = templates.ItemListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
