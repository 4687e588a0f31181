package collections_test

import (
	"testing"

	"rentalquote/collections"
	"rentalquote/testhelpers"
)

func TestSeed_CreatesDemoCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	items, err := app.FindAllRecords("items")
	if err != nil {
		t.Fatalf("query items error: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 demo items, got %d", len(items))
	}

	tent, err := app.FindFirstRecordByFilter("items", "code = 'A-1'")
	if err != nil {
		t.Fatalf("demo item A-1 not found: %v", err)
	}
	if got := tent.GetString("category"); got != "몽골텐트" {
		t.Errorf("category = %q, want 몽골텐트", got)
	}
	if got := tent.GetInt("price_1_3"); got != 50000 {
		t.Errorf("price_1_3 = %d, want 50000", got)
	}
	if got := tent.GetInt("price_2_3m"); got != 25000 {
		t.Errorf("price_2_3m = %d, want 25000", got)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	items, _ := app.FindAllRecords("items")
	if len(items) != 5 {
		t.Errorf("expected 5 items after idempotent seed, got %d", len(items))
	}
}

func TestSeed_SkipsWhenCatalogExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestItem(t, app, "X-1", "기존 품목", "", [8]int{1, 2, 3, 4, 5, 6, 7, 8})

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	items, _ := app.FindAllRecords("items")
	if len(items) != 1 {
		t.Errorf("expected 1 pre-existing item only, got %d", len(items))
	}
	if items[0].GetString("code") != "X-1" {
		t.Errorf("expected pre-existing item, got %q", items[0].GetString("code"))
	}
}
