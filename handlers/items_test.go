package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rentalquote/testhelpers"
)

func standardTestPrices() [8]int {
	return [8]int{10000, 12000, 14000, 16000, 18000, 20000, 25000, 30000}
}

func TestHandleItemList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleItemList(app)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandleItemList_ShowsItemsWithTierPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	handler := HandleItemList(app)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	// Default tier is 1~3일, so the first-band price shows.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "몽골텐트", "A-1", "10,000", "1~3일")
}

func TestHandleItemList_DaysParamSelectsTier(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	handler := HandleItemList(app)

	req := httptest.NewRequest(http.MethodGet, "/items?days=9", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "14,000", "8~10일")
}

func TestHandleItemList_CategoryFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	testhelpers.CreateTestItem(t, app, "B-1", "테이블", "1800x600", standardTestPrices())
	handler := HandleItemList(app)

	req := httptest.NewRequest(http.MethodGet, "/items?category="+urlEncode("테이블"), nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "테이블")
	if strings.Contains(body, "몽골텐트") {
		t.Error("filtered list should not contain other categories")
	}
}

func TestHandleItemList_HTMXReturnsPartial(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestItem(t, app, "A-1", "몽골텐트", "3x3m", standardTestPrices())
	handler := HandleItemList(app)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "몽골텐트")
	if strings.Contains(body, "<html") {
		t.Error("HTMX partial should not include the page shell")
	}
}
