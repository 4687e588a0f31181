package services

// QuoteLine is one priced row of a quote. UnitPrice is a snapshot of the
// catalog price for the tier that was active when the line was added or
// last re-priced, not a live reference.
type QuoteLine struct {
	ItemCode  string
	Name      string
	Size      string
	Qty       int
	UnitPrice int64
}

// Total returns Qty × UnitPrice for the line.
func (l QuoteLine) Total() int64 {
	return int64(l.Qty) * l.UnitPrice
}

// QuoteTotals aggregates a quote's monetary summary.
type QuoteTotals struct {
	Subtotal       int64
	TransportTotal int64
	SupplyTotal    int64
	VAT            int64
	GrandTotal     int64
}

// AddLine adds a catalog item to the quote at the given tier. If a line
// with the same item code already exists its quantity is incremented
// instead of appending a duplicate row.
func AddLine(lines []QuoteLine, item CatalogItem, tier DurationTier) []QuoteLine {
	for i := range lines {
		if lines[i].ItemCode == item.Code {
			lines[i].Qty++
			return lines
		}
	}
	return append(lines, QuoteLine{
		ItemCode:  item.Code,
		Name:      item.Name,
		Size:      item.Size,
		Qty:       1,
		UnitPrice: item.Price(tier),
	})
}

// ReapplyTier re-resolves every line's unit price from the catalog
// snapshot for the given tier. Lines whose item no longer exists in the
// snapshot keep their current price. Called whenever the rental period
// changes so applied prices never drift past a period change.
func ReapplyTier(lines []QuoteLine, catalog map[string]CatalogItem, tier DurationTier) []QuoteLine {
	for i := range lines {
		if item, ok := catalog[lines[i].ItemCode]; ok {
			lines[i].UnitPrice = item.Price(tier)
		}
	}
	return lines
}

// CalcQuoteTotals computes the quote summary:
// subtotal = Σ qty×price, transport = qty×unit, supply = subtotal+transport,
// VAT = round(supply × 0.10), grand total = supply + VAT.
func CalcQuoteTotals(lines []QuoteLine, transportQty int, transportUnitPrice int64) QuoteTotals {
	var totals QuoteTotals
	for _, line := range lines {
		totals.Subtotal += line.Total()
	}
	totals.TransportTotal = int64(transportQty) * transportUnitPrice
	totals.SupplyTotal = totals.Subtotal + totals.TransportTotal
	totals.VAT = (totals.SupplyTotal + 5) / 10
	totals.GrandTotal = totals.SupplyTotal + totals.VAT
	return totals
}
