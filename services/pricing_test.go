package services

import "testing"

func testItem(code, name string, prices [TierCount]int64) CatalogItem {
	return CatalogItem{Code: code, Name: name, Size: "3x3m", TierPrices: prices}
}

func TestAddLine_DeduplicatesByCode(t *testing.T) {
	tent := testItem("A-1", "몽골텐트", [TierCount]int64{10000, 12000, 14000, 16000, 18000, 20000, 25000, 30000})
	table := testItem("B-1", "테이블", [TierCount]int64{3000, 3500, 4000, 4500, 5000, 5500, 6000, 6500})

	lines := AddLine(nil, tent, Tier1To3Days)
	lines = AddLine(lines, table, Tier1To3Days)
	lines = AddLine(lines, tent, Tier1To3Days)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after duplicate add, got %d", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("tent qty = %d, want 2", lines[0].Qty)
	}
	if lines[0].UnitPrice != 10000 {
		t.Errorf("tent unit price = %d, want 10000", lines[0].UnitPrice)
	}
	if lines[1].Qty != 1 {
		t.Errorf("table qty = %d, want 1", lines[1].Qty)
	}
}

func TestAddLine_SnapshotsTierPrice(t *testing.T) {
	tent := testItem("A-1", "몽골텐트", [TierCount]int64{10000, 12000, 14000, 16000, 18000, 20000, 25000, 30000})

	lines := AddLine(nil, tent, Tier4To7Days)
	if lines[0].UnitPrice != 12000 {
		t.Errorf("unit price = %d, want tier 4~7 price 12000", lines[0].UnitPrice)
	}
}

func TestReapplyTier(t *testing.T) {
	tent := testItem("A-1", "몽골텐트", [TierCount]int64{10000, 12000, 14000, 16000, 18000, 20000, 25000, 30000})
	catalog := map[string]CatalogItem{"A-1": tent}

	lines := AddLine(nil, tent, Tier1To3Days)
	lines = ReapplyTier(lines, catalog, Tier8To10Days)

	if lines[0].UnitPrice != 14000 {
		t.Errorf("unit price after re-pricing = %d, want 14000", lines[0].UnitPrice)
	}

	// An item missing from the snapshot keeps its current price.
	lines = append(lines, QuoteLine{ItemCode: "GONE", Qty: 1, UnitPrice: 777})
	lines = ReapplyTier(lines, catalog, Tier1To3Days)
	if lines[1].UnitPrice != 777 {
		t.Errorf("orphan line price = %d, want 777", lines[1].UnitPrice)
	}
}

func TestCalcQuoteTotals(t *testing.T) {
	tests := []struct {
		name            string
		lines           []QuoteLine
		transportQty    int
		transportPrice  int64
		expectSubtotal  int64
		expectTransport int64
		expectSupply    int64
		expectVAT       int64
		expectGrand     int64
	}{
		{
			name: "basic quote",
			lines: []QuoteLine{
				{ItemCode: "A-1", Qty: 3, UnitPrice: 10000},
			},
			expectSubtotal: 30000,
			expectSupply:   30000,
			expectVAT:      3000,
			expectGrand:    33000,
		},
		{
			name: "with transport",
			lines: []QuoteLine{
				{ItemCode: "A-1", Qty: 2, UnitPrice: 10000},
				{ItemCode: "B-1", Qty: 4, UnitPrice: 3000},
			},
			transportQty:    1,
			transportPrice:  50000,
			expectSubtotal:  32000,
			expectTransport: 50000,
			expectSupply:    82000,
			expectVAT:       8200,
			expectGrand:     90200,
		},
		{
			name: "VAT rounds half up",
			lines: []QuoteLine{
				{ItemCode: "A-1", Qty: 1, UnitPrice: 15},
			},
			expectSubtotal: 15,
			expectSupply:   15,
			expectVAT:      2,
			expectGrand:    17,
		},
		{
			name: "VAT rounds down",
			lines: []QuoteLine{
				{ItemCode: "A-1", Qty: 1, UnitPrice: 14},
			},
			expectSubtotal: 14,
			expectSupply:   14,
			expectVAT:      1,
			expectGrand:    15,
		},
		{
			name:        "empty quote",
			expectGrand: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcQuoteTotals(tt.lines, tt.transportQty, tt.transportPrice)
			if got.Subtotal != tt.expectSubtotal {
				t.Errorf("Subtotal = %d, want %d", got.Subtotal, tt.expectSubtotal)
			}
			if got.TransportTotal != tt.expectTransport {
				t.Errorf("TransportTotal = %d, want %d", got.TransportTotal, tt.expectTransport)
			}
			if got.SupplyTotal != tt.expectSupply {
				t.Errorf("SupplyTotal = %d, want %d", got.SupplyTotal, tt.expectSupply)
			}
			if got.VAT != tt.expectVAT {
				t.Errorf("VAT = %d, want %d", got.VAT, tt.expectVAT)
			}
			if got.GrandTotal != tt.expectGrand {
				t.Errorf("GrandTotal = %d, want %d", got.GrandTotal, tt.expectGrand)
			}
		})
	}
}

func TestQuoteExportData_TotalLineCount(t *testing.T) {
	data := QuoteExportData{
		Lines: []QuoteLine{{ItemCode: "A-1"}, {ItemCode: "B-1"}},
	}
	if got := data.TotalLineCount(); got != 2 {
		t.Errorf("TotalLineCount() without transport = %d, want 2", got)
	}

	data.TransportQty = 1
	if got := data.TotalLineCount(); got != 3 {
		t.Errorf("TotalLineCount() with transport = %d, want 3", got)
	}
	if !data.HasTransport() {
		t.Error("HasTransport() = false, want true")
	}
}
