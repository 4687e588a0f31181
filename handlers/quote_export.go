package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentalquote/services"
)

// ExportConfig locates the spreadsheet template and image assets used
// when rendering quote documents.
type ExportConfig struct {
	TemplatePath string
	ImageDir     string
}

// DefaultExportConfig points at the assets shipped next to the binary.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		TemplatePath: filepath.Join("assets", "quote_template.xlsx"),
		ImageDir:     filepath.Join("assets", "images"),
	}
}

// buildQuoteExportData fetches a quote and its lines, returning the value
// the document renderers consume.
func buildQuoteExportData(app *pocketbase.PocketBase, quoteID string) (services.QuoteExportData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("quote not found: %w", err)
	}

	linesCol, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("collection not found: %w", err)
	}

	lineRecords, err := app.FindRecordsByFilter(
		linesCol,
		"quote = {:quoteId}",
		"sort_order", 0, 0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("load quote lines: %w", err)
	}

	var lines []services.QuoteLine
	for _, rec := range lineRecords {
		lines = append(lines, services.QuoteLine{
			ItemCode:  rec.GetString("item_code"),
			Name:      rec.GetString("name"),
			Size:      rec.GetString("size"),
			Qty:       rec.GetInt("qty"),
			UnitPrice: int64(rec.GetInt("unit_price")),
		})
	}

	data := services.QuoteExportData{
		EventName:          quote.GetString("event_name"),
		EventDate:          quote.GetString("event_date"),
		EventLocation:      quote.GetString("event_location"),
		InstallDate:        quote.GetString("install_date"),
		RetrievalDate:      quote.GetString("retrieval_date"),
		ContactPerson:      quote.GetString("contact_person"),
		ContactPhone:       quote.GetString("contact_phone"),
		RentalDays:         quote.GetInt("rental_days"),
		Tier:               services.DurationTier(quote.GetInt("tier")),
		Lines:              lines,
		TransportQty:       quote.GetInt("transport_qty"),
		TransportUnitPrice: int64(quote.GetInt("transport_unit_price")),
	}
	data.Totals = services.CalcQuoteTotals(lines, data.TransportQty, data.TransportUnitPrice)
	return data, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuoteExportExcel renders the quote into the spreadsheet template
// and downloads it.
// Route: GET /quotes/{id}/export/excel
func HandleQuoteExportExcel(app *pocketbase.PocketBase, cfg ExportConfig) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("quote_export_excel: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		layout := services.DefaultTemplateLayout()
		images := services.DefaultImageOptions(cfg.ImageDir)
		xlsxBytes, err := services.GenerateQuoteExcel(cfg.TemplatePath, data, layout, images)
		if err != nil {
			log.Printf("quote_export_excel: failed to generate: %v", err)
			if errors.Is(err, services.ErrSourceNotFound) {
				return e.String(http.StatusInternalServerError, "Quote template file is missing")
			}
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("견적서_%s_%s.xlsx", sanitizeFilename(data.EventName), data.EventDate)

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF downloads the PDF rendition of a quote.
// Route: GET /quotes/{id}/export/pdf
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("quote_export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("견적서_%s_%s.pdf", sanitizeFilename(data.EventName), data.EventDate)

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
