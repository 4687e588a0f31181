package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentalquote/services"
)

type quoteLineRequest struct {
	Code string `json:"code"`
	Qty  int    `json:"qty"`
}

type quoteSaveRequest struct {
	EventName     string `json:"event_name"`
	EventDate     string `json:"event_date"`
	EventLocation string `json:"event_location"`
	InstallDate   string `json:"install_date"`
	RetrievalDate string `json:"retrieval_date"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// Tier optionally overrides the resolved tier; this is the only way to
	// reach the month-based bands.
	Tier *int `json:"tier"`

	TransportQty       int   `json:"transport_qty"`
	TransportUnitPrice int64 `json:"transport_unit_price"`

	Items []quoteLineRequest `json:"items"`
}

// HandleQuoteSave validates and persists a quote. Unit prices are always
// re-resolved server-side from the catalog for the effective tier, so a
// stale client price can never be stored. The quote record and its lines
// are written in one transaction.
// Route: POST /quotes
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req quoteSaveRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quote data")
		}

		if req.EventName == "" {
			return ErrorToast(e, http.StatusBadRequest, "행사명을 입력해주세요")
		}
		if len(req.Items) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "선택된 품목이 없습니다")
		}

		days := 1
		if req.StartDate != "" && req.EndDate != "" {
			var err error
			days, err = services.ParseRentalDays(req.StartDate, req.EndDate)
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
			}
		}

		tier := services.ResolveTier(days)
		if req.Tier != nil {
			if *req.Tier < 0 || *req.Tier >= services.TierCount {
				return ErrorToast(e, http.StatusBadRequest, "Unknown rental tier")
			}
			tier = services.DurationTier(*req.Tier)
		}

		itemsCol, err := app.FindCollectionByNameOrId("items")
		if err != nil {
			log.Printf("quote_save: could not find items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		itemRecords, err := app.FindAllRecords(itemsCol)
		if err != nil {
			log.Printf("quote_save: could not query items: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		catalog := services.CatalogSnapshot(itemRecords)

		var lines []services.QuoteLine
		lineIndex := make(map[string]int)
		for _, li := range req.Items {
			qty := li.Qty
			if qty < 1 {
				qty = 1
			}
			if idx, ok := lineIndex[li.Code]; ok {
				lines[idx].Qty += qty
				continue
			}
			item, ok := catalog[li.Code]
			if !ok {
				return ErrorToast(e, http.StatusBadRequest, "Unknown item code: "+li.Code)
			}
			lineIndex[li.Code] = len(lines)
			lines = append(lines, services.QuoteLine{
				ItemCode:  item.Code,
				Name:      item.Name,
				Size:      item.Size,
				Qty:       qty,
				UnitPrice: item.Price(tier),
			})
		}

		totals := services.CalcQuoteTotals(lines, req.TransportQty, req.TransportUnitPrice)

		var quote *core.Record
		err = app.RunInTransaction(func(tx core.App) error {
			quotesCol, err := tx.FindCollectionByNameOrId("quotes")
			if err != nil {
				return err
			}
			linesCol, err := tx.FindCollectionByNameOrId("quote_items")
			if err != nil {
				return err
			}

			quote = core.NewRecord(quotesCol)
			quote.Set("event_name", req.EventName)
			quote.Set("event_date", req.EventDate)
			quote.Set("event_location", req.EventLocation)
			quote.Set("install_date", req.InstallDate)
			quote.Set("retrieval_date", req.RetrievalDate)
			quote.Set("contact_person", req.ContactPerson)
			quote.Set("contact_phone", req.ContactPhone)
			quote.Set("start_date", req.StartDate)
			quote.Set("end_date", req.EndDate)
			quote.Set("rental_days", days)
			quote.Set("tier", int(tier))
			quote.Set("transport_qty", req.TransportQty)
			quote.Set("transport_unit_price", req.TransportUnitPrice)
			quote.Set("subtotal", totals.Subtotal)
			quote.Set("transport_total", totals.TransportTotal)
			quote.Set("supply_total", totals.SupplyTotal)
			quote.Set("vat", totals.VAT)
			quote.Set("grand_total", totals.GrandTotal)
			if err := tx.Save(quote); err != nil {
				return err
			}

			for i, line := range lines {
				rec := core.NewRecord(linesCol)
				rec.Set("quote", quote.Id)
				rec.Set("sort_order", i+1)
				rec.Set("item_code", line.ItemCode)
				rec.Set("name", line.Name)
				rec.Set("size", line.Size)
				rec.Set("qty", line.Qty)
				rec.Set("unit_price", line.UnitPrice)
				if err := tx.Save(rec); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("quote_save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "견적서 저장에 실패했습니다")
		}

		SetToast(e, "success", "견적서가 저장되었습니다")
		return e.JSON(http.StatusOK, map[string]any{
			"id":          quote.Id,
			"created":     quote.GetDateTime("created").Time(),
			"grand_total": totals.GrandTotal,
		})
	}
}
