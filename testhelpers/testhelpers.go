// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentalquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestItem creates a catalog item record with the given code, name
// and per-tier prices, and returns it.
func CreateTestItem(t *testing.T, app *pocketbase.PocketBase, code, name, size string, prices [8]int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("items")
	if err != nil {
		t.Fatalf("failed to find items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("name", name)
	record.Set("size", size)
	record.Set("category", strings.SplitN(name, "\n", 2)[0])

	priceFields := []string{
		"price_1_3", "price_4_7", "price_8_10", "price_11_14",
		"price_15_20", "price_21_31", "price_1_2m", "price_2_3m",
	}
	for i, field := range priceFields {
		record.Set(field, prices[i])
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test item: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record with the given event name and
// sensible header defaults, and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, eventName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("event_name", eventName)
	record.Set("event_date", "2025-06-01")
	record.Set("event_location", "서울 월드컵공원")
	record.Set("install_date", "2025-05-31")
	record.Set("retrieval_date", "2025-06-02")
	record.Set("contact_person", "김담당")
	record.Set("contact_phone", "010-1234-5678")
	record.Set("start_date", "2025-06-01")
	record.Set("end_date", "2025-06-02")
	record.Set("rental_days", 2)
	record.Set("tier", 0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteLine creates a quote_items record linked to a quote.
func CreateTestQuoteLine(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, itemCode, name string, qty int, unitPrice int64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		t.Fatalf("failed to find quote_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("item_code", itemCode)
	record.Set("name", name)
	record.Set("size", "")
	record.Set("qty", qty)
	record.Set("unit_price", unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote line: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
