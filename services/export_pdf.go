package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates a PDF rendition of a quote using maroto/v2.
// The PDF is a plain listing (no template layout); the spreadsheet export
// remains the authoritative visual document.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, line := range data.Lines {
		addQuoteTableRow(m, line)
	}
	if data.HasTransport() {
		addQuoteTableRow(m, QuoteLine{
			Name:      TransportLabel,
			Qty:       data.TransportQty,
			UnitPrice: data.TransportUnitPrice,
		})
	}
	addQuoteSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the event name and header fields.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.EventName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtitle := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	rightSubtitle := subtitle
	rightSubtitle.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("일시: %s", data.EventDate), subtitle)),
			col.New(6).Add(text.New(fmt.Sprintf("장소: %s", data.EventLocation), rightSubtitle)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("담당: %s %s", data.ContactPhone, data.ContactPerson), subtitle)),
			col.New(6).Add(text.New(fmt.Sprintf("렌탈 기간: %s", data.Tier.Label()), rightSubtitle)),
		),
		row.New(4),
	)
}

// addQuoteTableHeader adds the column header row.
func addQuoteTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("품명", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("규격", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("수량", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("단가", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("합계", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds one priced line.
func addQuoteTableRow(m core.Maroto, line QuoteLine) {
	baseText := props.Text{Size: 8, Align: align.Left}
	rightText := baseText
	rightText.Align = align.Right
	centerText := baseText
	centerText.Align = align.Center

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New(line.Name, baseText)),
			col.New(3).Add(text.New(line.Size, baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", line.Qty), centerText)),
			col.New(2).Add(text.New(FormatComma(line.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatComma(line.Total()), rightText)),
		),
	)
}

// addQuoteSummary adds supply total, VAT, grand total and the Korean
// amount line.
func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(4))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := labelStyle

	summaryRow := func(label string, amount int64) core.Row {
		return row.New(8).Add(
			col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatComma(amount), valueStyle)).WithStyle(summaryCell),
		)
	}

	m.AddRows(
		summaryRow("공급가액", data.Totals.SupplyTotal),
		summaryRow("부가세 (10%)", data.Totals.VAT),
		summaryRow("총합계", data.Totals.GrandTotal),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("일금 %s원정 (₩%s)", NumberToKorean(data.Totals.GrandTotal), FormatComma(data.Totals.GrandTotal)),
					props.Text{Size: 9, Align: align.Left},
				),
			),
		),
	)
}
