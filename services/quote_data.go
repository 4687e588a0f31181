package services

// QuoteExportData carries everything the document renderers need for one
// quote: header fields, the priced lines, the transport line and the
// precomputed totals. It is a plain value assembled from records by the
// caller; rendering never reads storage.
type QuoteExportData struct {
	EventName     string
	EventDate     string
	EventLocation string
	InstallDate   string
	RetrievalDate string
	ContactPerson string
	ContactPhone  string

	RentalDays int
	Tier       DurationTier

	Lines              []QuoteLine
	TransportQty       int
	TransportUnitPrice int64

	Totals QuoteTotals
}

// HasTransport reports whether the quote carries a transport line.
func (d QuoteExportData) HasTransport() bool {
	return d.TransportQty > 0
}

// TotalLineCount is the number of document rows the quote occupies:
// one per item plus the optional transport row.
func (d QuoteExportData) TotalLineCount() int {
	n := len(d.Lines)
	if d.HasTransport() {
		n++
	}
	return n
}
