package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// ErrSourceNotFound is returned when a catalog or template file does not
// exist at the given path. Nothing is written in that case.
var ErrSourceNotFound = errors.New("source file not found")

// ImportStrategy selects how imported rows map onto stored items.
type ImportStrategy string

const (
	// ImportAppend creates a new record for every row, with a freshly
	// generated code. Existing records are left untouched.
	ImportAppend ImportStrategy = "append"
	// ImportMergeByCode upserts by item code: rows carrying a code update
	// the existing record, rows without one get a generated code and are
	// created.
	ImportMergeByCode ImportStrategy = "merge_by_code"
)

// ColumnMap holds zero-based column indices for the fixed catalog layout.
// Code may be negative when the source file carries no code column.
type ColumnMap struct {
	Name   int
	Size   int
	Code   int
	Prices [TierCount]int
}

// DefaultColumnMap matches the master price sheet layout: name in A,
// size in D, code in E, and the eight tier prices in F through M.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		Name:   0,
		Size:   3,
		Code:   4,
		Prices: [TierCount]int{5, 6, 7, 8, 9, 10, 11, 12},
	}
}

// ImportOptions configures one import run.
type ImportOptions struct {
	// HeaderRows is the number of leading rows to skip (1, 2 or 3
	// depending on the sheet variant).
	HeaderRows int
	Strategy   ImportStrategy
	Columns    ColumnMap
}

// DefaultImportOptions returns the options for the standard master sheet:
// three header rows, merge-by-code.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		HeaderRows: 3,
		Strategy:   ImportMergeByCode,
		Columns:    DefaultColumnMap(),
	}
}

// ImportResult summarizes a completed import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// Total returns the number of rows that produced or updated a record.
func (r ImportResult) Total() int {
	return r.Imported + r.Updated
}

// CellKind tags how a cell's effective value was obtained.
type CellKind int

const (
	CellLiteral CellKind = iota
	CellFormulaResult
)

// CellValue is the effective value of one cell, resolved once at import
// time. The raw excelize cell handle is never retained.
type CellValue struct {
	Kind CellKind
	Text string
}

// effectiveCellValue resolves a cell to its formula result if the cell
// holds a formula, otherwise to its literal value, otherwise to "".
func effectiveCellValue(f *excelize.File, sheet, cell string) CellValue {
	formula, err := f.GetCellFormula(sheet, cell)
	kind := CellLiteral
	if err == nil && formula != "" {
		kind = CellFormulaResult
	}
	// GetCellValue returns the cached result for formula cells and the
	// stored value for everything else.
	text, err := f.GetCellValue(sheet, cell)
	if err != nil {
		text = ""
	}
	return CellValue{Kind: kind, Text: strings.TrimSpace(text)}
}

// parsePrice leniently converts a price cell to a non-negative integer.
// Plain numbers parse directly; decorated strings ("₩12,000") fall back to
// digit extraction; anything else degrades to 0 rather than failing the row.
func parsePrice(text string) int64 {
	if text == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64); err == nil {
		if v < 0 {
			return 0
		}
		return int64(v)
	}
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// categoryFromName derives the category from the text before the first
// newline of the name field.
func categoryFromName(name string) string {
	return strings.TrimSpace(strings.SplitN(name, "\n", 2)[0])
}

// GenerateItemCode builds a unique item code in the ITEM-<millis>-<seq>
// form. seq disambiguates rows generated within the same millisecond.
func GenerateItemCode(now time.Time, seq int) string {
	return fmt.Sprintf("ITEM-%d-%03d", now.UnixMilli(), seq)
}

// parsedItem is one normalized catalog row awaiting persistence.
type parsedItem struct {
	item    CatalogItem
	hasCode bool
}

// parseCatalogSheet reads the first sheet of an opened workbook into
// normalized catalog rows. A "last seen name" carries non-empty names down
// into merged-cell continuation rows; it is scoped to the single pass.
func parseCatalogSheet(f *excelize.File, opts ImportOptions) ([]parsedItem, int, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, 0, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	readCell := func(rowNum, colIdx int) CellValue {
		if colIdx < 0 {
			return CellValue{}
		}
		cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
		if err != nil {
			return CellValue{}
		}
		return effectiveCellValue(f, sheet, cell)
	}

	var (
		items    []parsedItem
		skipped  int
		lastName string
	)

	for rowNum := opts.HeaderRows + 1; rowNum <= len(rows); rowNum++ {
		name := readCell(rowNum, opts.Columns.Name).Text
		size := readCell(rowNum, opts.Columns.Size).Text

		if name == "" && size == "" {
			skipped++
			continue
		}

		// Merged name cells leave continuation rows empty; inherit the
		// most recent non-empty name within this pass.
		if name == "" {
			name = lastName
		} else {
			lastName = name
		}

		item := CatalogItem{
			Name:     name,
			Size:     size,
			Category: categoryFromName(name),
		}
		for tier, colIdx := range opts.Columns.Prices {
			item.TierPrices[tier] = parsePrice(readCell(rowNum, colIdx).Text)
		}

		hasCode := false
		if opts.Columns.Code >= 0 {
			if code := readCell(rowNum, opts.Columns.Code).Text; code != "" {
				item.Code = code
				hasCode = true
			}
		}

		items = append(items, parsedItem{item: item, hasCode: hasCode})
	}

	return items, skipped, nil
}

// ImportCatalog parses an xlsx catalog stream and persists the rows
// according to the configured strategy. All writes of one run share a
// single transaction, so a failing row rolls the whole import back.
func ImportCatalog(app *pocketbase.PocketBase, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	parsed, skipped, err := parseCatalogSheet(f, opts)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Skipped: skipped}
	now := time.Now()
	seq := 0

	err = app.RunInTransaction(func(tx core.App) error {
		col, err := tx.FindCollectionByNameOrId("items")
		if err != nil {
			return fmt.Errorf("items collection not found: %w", err)
		}

		for _, p := range parsed {
			var record *core.Record

			if opts.Strategy == ImportMergeByCode && p.hasCode {
				existing, err := tx.FindFirstRecordByFilter(
					col,
					"code = {:code}",
					map[string]any{"code": p.item.Code},
				)
				if err == nil && existing != nil {
					record = existing
					result.Updated++
				}
			}

			if record == nil {
				record = core.NewRecord(col)
				if !p.hasCode || opts.Strategy == ImportAppend {
					p.item.Code = GenerateItemCode(now, seq)
					seq++
				}
				result.Imported++
			}

			record.Set("code", p.item.Code)
			record.Set("name", p.item.Name)
			record.Set("size", p.item.Size)
			record.Set("spec", p.item.Spec)
			record.Set("category", p.item.Category)
			for tier, field := range TierPriceFields {
				record.Set(field, p.item.TierPrices[tier])
			}

			if err := tx.Save(record); err != nil {
				return fmt.Errorf("save item %q: %w", p.item.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ImportCatalogFile imports a catalog from a file path.
func ImportCatalogFile(app *pocketbase.PocketBase, path string, opts ImportOptions) (*ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	return ImportCatalog(app, file, opts)
}
