package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateLayout describes the fixed structure of the quote template
// sheet. Item rows occupy [ItemStartRow, FixedRowStart); everything at or
// after FixedRowStart (summary block, footer, decorative image anchors) is
// shifted down when more item rows are needed than the template provides.
type TemplateLayout struct {
	// ItemStartRow is the first item row.
	ItemStartRow int
	// FixedRowStart is the first row of the fixed summary block.
	FixedRowStart int
	// StyleSourceRow is the item row whose cell styles are cloned onto
	// inserted rows. It stays in place and keeps its own formatting.
	StyleSourceRow int
	// FooterRow carries the location / install date / retrieval date cells.
	FooterRow int
	// ImageRow is the anchor row of the first decorative image; the second
	// sits on the row below.
	ImageRow int
	// Columns is the item-row column span, in order.
	Columns []string
}

// DefaultTemplateLayout matches the shipped 견적서 template: items from row
// 9, fixed block from row 17 (eight item rows available), footer on row 22
// and decorative images anchored at rows 24 and 25.
func DefaultTemplateLayout() TemplateLayout {
	return TemplateLayout{
		ItemStartRow:   9,
		FixedRowStart:  17,
		StyleSourceRow: 9,
		FooterRow:      22,
		ImageRow:       24,
		Columns:        []string{"A", "B", "C", "D", "E", "F", "G", "H"},
	}
}

// AvailableRows is the number of item rows the template holds before any
// insertion is required.
func (t TemplateLayout) AvailableRows() int {
	return t.FixedRowStart - t.ItemStartRow
}

// LayoutPlan is the set of row offsets used to place every dynamic element
// of the output document. It is computed once per render and threaded
// through all subsequent writes, so no step recomputes anchor positions.
type LayoutPlan struct {
	RowsAdded    int
	ItemStartRow int
	LastItemRow  int

	// Shifted fixed-block anchors.
	SupplyTotalRow  int
	VATRow          int
	GrandTotalRow   int
	KoreanAmountRow int
	FooterRow       int
	ImageRows       [2]int
}

// PlanLayout computes the layout plan for a quote with totalLineCount rows
// (items plus the optional transport line). Every anchor at or after
// FixedRowStart moves down by RowsAdded.
func PlanLayout(layout TemplateLayout, totalLineCount int) LayoutPlan {
	rowsAdded := totalLineCount - layout.AvailableRows()
	if rowsAdded < 0 {
		rowsAdded = 0
	}

	plan := LayoutPlan{
		RowsAdded:       rowsAdded,
		ItemStartRow:    layout.ItemStartRow,
		LastItemRow:     layout.FixedRowStart + rowsAdded - 1,
		SupplyTotalRow:  layout.FixedRowStart + rowsAdded,
		VATRow:          layout.FixedRowStart + 1 + rowsAdded,
		GrandTotalRow:   layout.FixedRowStart + 2 + rowsAdded,
		KoreanAmountRow: layout.FixedRowStart + 3 + rowsAdded,
		FooterRow:       layout.FooterRow + rowsAdded,
	}
	plan.ImageRows[0] = layout.ImageRow + rowsAdded
	plan.ImageRows[1] = layout.ImageRow + 1 + rowsAdded
	return plan
}

// ApplyLayout expands the template sheet according to the plan: it
// captures the style of the style-source row for every item column,
// inserts the blank rows immediately before the fixed block, and clones
// the captured styles onto the inserted cells. Rows before ItemStartRow
// are never touched. A zero-insert plan is a no-op.
func ApplyLayout(f *excelize.File, sheet string, layout TemplateLayout, plan LayoutPlan) error {
	if plan.RowsAdded == 0 {
		return nil
	}

	styles := make([]int, len(layout.Columns))
	for i, col := range layout.Columns {
		cell := fmt.Sprintf("%s%d", col, layout.StyleSourceRow)
		styleID, err := f.GetCellStyle(sheet, cell)
		if err != nil {
			return fmt.Errorf("capture style of %s: %w", cell, err)
		}
		styles[i] = styleID
	}

	if err := f.InsertRows(sheet, layout.FixedRowStart, plan.RowsAdded); err != nil {
		return fmt.Errorf("insert %d rows before row %d: %w", plan.RowsAdded, layout.FixedRowStart, err)
	}

	for row := layout.FixedRowStart; row < layout.FixedRowStart+plan.RowsAdded; row++ {
		for i, col := range layout.Columns {
			cell := fmt.Sprintf("%s%d", col, row)
			if err := f.SetCellStyle(sheet, cell, cell, styles[i]); err != nil {
				return fmt.Errorf("apply style to %s: %w", cell, err)
			}
		}
	}

	return nil
}
