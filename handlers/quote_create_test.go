package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rentalquote/testhelpers"
)

func newQuoteRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleQuoteSave_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	testhelpers.CreateTestItem(t, app, "B-1", "테이블", "1800x600", [8]int{3000, 3500, 4000, 4500, 5000, 5500, 6000, 6500})
	handler := HandleQuoteSave(app)

	body := `{
		"event_name": "여름 축제",
		"event_date": "2025-06-01",
		"event_location": "서울 월드컵공원",
		"start_date": "2025-06-01",
		"end_date": "2025-06-02",
		"transport_qty": 1,
		"transport_unit_price": 50000,
		"items": [
			{"code": "A-1", "qty": 3},
			{"code": "B-1", "qty": 4}
		]
	}`
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newQuoteRequest(body), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID         string `json:"id"`
		GrandTotal int64  `json:"grand_total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	// 2 rental days resolves to tier 1~3일: 3×10000 + 4×3000 + 50000
	// transport = 92000 supply, 9200 VAT.
	if resp.GrandTotal != 101200 {
		t.Errorf("grand_total = %d, want 101200", resp.GrandTotal)
	}

	quote, err := app.FindRecordById("quotes", resp.ID)
	if err != nil {
		t.Fatalf("saved quote not found: %v", err)
	}
	if got := quote.GetInt("rental_days"); got != 2 {
		t.Errorf("rental_days = %d, want 2", got)
	}
	if got := quote.GetInt("tier"); got != 0 {
		t.Errorf("tier = %d, want 0 (1~3일)", got)
	}
	if got := quote.GetInt("supply_total"); got != 92000 {
		t.Errorf("supply_total = %d, want 92000", got)
	}

	lines, err := app.FindRecordsByFilter("quote_items", "quote = {:q}", "sort_order", 0, 0, map[string]any{"q": resp.ID})
	if err != nil {
		t.Fatalf("failed to query quote lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if got := lines[0].GetString("item_code"); got != "A-1" {
		t.Errorf("first line code = %q, want A-1", got)
	}
	if got := lines[0].GetInt("unit_price"); got != 10000 {
		t.Errorf("first line unit_price = %d, want server-resolved 10000", got)
	}
}

func TestHandleQuoteSave_DeduplicatesItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	handler := HandleQuoteSave(app)

	body := `{
		"event_name": "중복 품목",
		"items": [
			{"code": "A-1", "qty": 2},
			{"code": "A-1", "qty": 3}
		]
	}`
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newQuoteRequest(body), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		ID string `json:"id"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)

	lines, err := app.FindRecordsByFilter("quote_items", "quote = {:q}", "sort_order", 0, 0, map[string]any{"q": resp.ID})
	if err != nil {
		t.Fatalf("failed to query quote lines: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("line count = %d, want duplicates merged into 1", len(lines))
	}
	if got := lines[0].GetInt("qty"); got != 5 {
		t.Errorf("merged qty = %d, want 5", got)
	}
}

func TestHandleQuoteSave_TierOverrideReachesMonthBands(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	handler := HandleQuoteSave(app)

	body := `{
		"event_name": "장기 렌탈",
		"tier": 7,
		"items": [{"code": "A-1", "qty": 1}]
	}`
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newQuoteRequest(body), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)

	lines, _ := app.FindRecordsByFilter("quote_items", "quote = {:q}", "sort_order", 0, 0, map[string]any{"q": resp.ID})
	if got := lines[0].GetInt("unit_price"); got != 30000 {
		t.Errorf("unit_price = %d, want 2~3개월 price 30000", got)
	}
}

func TestHandleQuoteSave_Validation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	handler := HandleQuoteSave(app)

	tests := []struct {
		name string
		body string
	}{
		{"missing event name", `{"items": [{"code": "A-1", "qty": 1}]}`},
		{"no items", `{"event_name": "빈 견적"}`},
		{"unknown item code", `{"event_name": "모르는 코드", "items": [{"code": "X-404", "qty": 1}]}`},
		{"bad dates", `{"event_name": "날짜 오류", "start_date": "06/01", "end_date": "06/02", "items": [{"code": "A-1", "qty": 1}]}`},
		{"tier out of range", `{"event_name": "티어 오류", "tier": 8, "items": [{"code": "A-1", "qty": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, newQuoteRequest(tt.body), rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}

			quotes, _ := app.FindAllRecords("quotes")
			if len(quotes) != 0 {
				t.Errorf("invalid request persisted %d quotes", len(quotes))
			}
		})
	}
}
