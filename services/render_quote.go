package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// TransportLabel is the fixed label of the transport-fee row.
const TransportLabel = "설치 회수비(왕복)"

// ErrNoDestination is returned when a render is asked to write to an
// empty path. It marks the caller-cancelled case and is not a failure;
// no partial file is written.
var ErrNoDestination = errors.New("no destination path chosen")

// numberFormat is the display format for every numeric cell.
const numberFormat = "#,##0"

// GenerateQuoteExcel renders a quote into the spreadsheet template at
// templatePath and returns the finished workbook bytes. The template's
// fixed structure is described by layout; when the quote carries more
// lines than the template holds, rows are inserted and every anchor below
// them shifts down. Image placement failures are logged and skipped;
// structural failures abort the render.
func GenerateQuoteExcel(templatePath string, data QuoteExportData, layout TemplateLayout, images ImageOptions) ([]byte, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, templatePath)
		}
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("template has no sheets")
	}

	plan := PlanLayout(layout, data.TotalLineCount())
	if err := ApplyLayout(f, sheet, layout, plan); err != nil {
		return nil, err
	}

	if err := renderQuote(f, sheet, plan, data, images); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// renderQuote writes all dynamic content into the (already expanded)
// sheet at the positions the plan dictates.
func renderQuote(f *excelize.File, sheet string, plan LayoutPlan, data QuoteExportData, images ImageOptions) error {
	// ── Header fields ───────────────────────────────────────────────────
	f.SetCellValue(sheet, "B2", data.EventDate)
	f.SetCellValue(sheet, "B4", data.EventLocation)
	f.SetCellValue(sheet, "B5", fmt.Sprintf("%s %s", data.ContactPhone, data.ContactPerson))

	// ── Item rows ───────────────────────────────────────────────────────
	row := plan.ItemStartRow
	for _, line := range data.Lines {
		if err := writeLineRow(f, sheet, row, line.Name, line.Size, line.Qty, line.UnitPrice); err != nil {
			return err
		}
		placeItemImage(f, sheet, row, line.ItemCode, images)
		row++
	}

	if data.HasTransport() {
		if err := writeLineRow(f, sheet, row, TransportLabel, "", data.TransportQty, data.TransportUnitPrice); err != nil {
			return err
		}
		row++
	}

	// ── Summary formulas ────────────────────────────────────────────────
	sumRange := fmt.Sprintf("H%d:H%d", plan.ItemStartRow, plan.LastItemRow)
	supplyCell := fmt.Sprintf("H%d", plan.SupplyTotalRow)
	vatCell := fmt.Sprintf("H%d", plan.VATRow)
	grandCell := fmt.Sprintf("H%d", plan.GrandTotalRow)

	if err := f.SetCellFormula(sheet, supplyCell, fmt.Sprintf("SUM(%s)", sumRange)); err != nil {
		return fmt.Errorf("set supply total formula: %w", err)
	}
	if err := f.SetCellFormula(sheet, vatCell, fmt.Sprintf("ROUND(%s*0.1,0)", supplyCell)); err != nil {
		return fmt.Errorf("set VAT formula: %w", err)
	}
	if err := f.SetCellFormula(sheet, grandCell, fmt.Sprintf("%s+%s", supplyCell, vatCell)); err != nil {
		return fmt.Errorf("set grand total formula: %w", err)
	}
	for _, cell := range []string{supplyCell, vatCell, grandCell} {
		if err := setNumberFormat(f, sheet, cell); err != nil {
			return err
		}
	}

	// ── Korean amount line ──────────────────────────────────────────────
	amount := data.Totals.GrandTotal
	koreanCell := fmt.Sprintf("B%d", plan.KoreanAmountRow)
	f.SetCellValue(sheet, koreanCell,
		fmt.Sprintf("일금 %s원정 (₩%s)", NumberToKorean(amount), FormatComma(amount)))

	// ── Footer fields ───────────────────────────────────────────────────
	f.SetCellValue(sheet, fmt.Sprintf("A%d", plan.FooterRow), data.EventLocation)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", plan.FooterRow), data.InstallDate)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", plan.FooterRow), data.RetrievalDate)

	// ── Decorative images ───────────────────────────────────────────────
	if images.Dir != "" {
		for i, name := range images.DecorativeFiles {
			if name == "" {
				continue
			}
			cell := fmt.Sprintf("A%d", plan.ImageRows[i])
			path := filepath.Join(images.Dir, name)
			if err := f.AddPicture(sheet, cell, path, nil); err != nil {
				log.Printf("render_quote: decorative image %s at %s skipped: %v", name, cell, err)
			}
		}
	}

	return nil
}

// writeLineRow writes one item (or transport) row: name in A, size in B,
// quantity in F, unit price in G and the qty×price formula in H, all with
// the thousands-separator display format.
func writeLineRow(f *excelize.File, sheet string, row int, name, size string, qty int, unitPrice int64) error {
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), size)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), qty)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), unitPrice)

	totalCell := fmt.Sprintf("H%d", row)
	if err := f.SetCellFormula(sheet, totalCell, fmt.Sprintf("G%d*F%d", row, row)); err != nil {
		return fmt.Errorf("set row %d total formula: %w", row, err)
	}

	for _, col := range []string{"F", "G", "H"} {
		if err := setNumberFormat(f, sheet, fmt.Sprintf("%s%d", col, row)); err != nil {
			return err
		}
	}
	return nil
}

// placeItemImage anchors the item's photo next to its row. Failures are
// non-fatal: a quote without a photo is still a valid quote.
func placeItemImage(f *excelize.File, sheet string, row int, code string, images ImageOptions) {
	path := ItemImagePath(images.Dir, code)
	if path == "" {
		return
	}
	cell := fmt.Sprintf("C%d", row)
	if err := f.AddPicture(sheet, cell, path, nil); err != nil {
		log.Printf("render_quote: image for %s at %s skipped: %v", code, cell, err)
	}
}

// setNumberFormat overlays the #,##0 display format on a cell while
// keeping its existing border/fill/font/alignment attributes.
func setNumberFormat(f *excelize.File, sheet, cell string) error {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return fmt.Errorf("read style of %s: %w", cell, err)
	}

	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		style = &excelize.Style{}
	}
	numFmt := numberFormat
	style.CustomNumFmt = &numFmt

	newID, err := f.NewStyle(style)
	if err != nil {
		return fmt.Errorf("build number format style: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, newID); err != nil {
		return fmt.Errorf("apply number format to %s: %w", cell, err)
	}
	return nil
}

// WriteQuoteFile writes rendered workbook bytes to path. An empty path is
// the cancelled case: nothing is written and ErrNoDestination is returned
// so callers can treat it as a normal early return.
func WriteQuoteFile(path string, workbook []byte) error {
	if path == "" {
		return ErrNoDestination
	}
	if err := os.WriteFile(path, workbook, 0o644); err != nil {
		return fmt.Errorf("write quote file: %w", err)
	}
	return nil
}
