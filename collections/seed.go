package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type seedItem struct {
	code     string
	name     string
	size     string
	category string
	prices   [8]int
}

// demoItems is a small starter catalog so a fresh install can compose a
// quote before the real master sheet is imported. Prices are per tier:
// 1-3, 4-7, 8-10, 11-14, 15-20, 21-31 days, 1-2 and 2-3 months.
var demoItems = []seedItem{
	{"A-1", "몽골텐트\n3x3m", "3x3m", "몽골텐트", [8]int{50000, 45000, 40000, 36000, 33000, 30000, 27000, 25000}},
	{"A-4", "몽골텐트\n5x5m", "5x5m", "몽골텐트", [8]int{90000, 81000, 72000, 65000, 59000, 54000, 49000, 45000}},
	{"A-14", "접이식 테이블", "1800x600", "접이식 테이블", [8]int{10000, 9000, 8000, 7200, 6600, 6000, 5400, 5000}},
	{"A-19", "플라스틱 의자", "백색", "플라스틱 의자", [8]int{2000, 1800, 1600, 1400, 1300, 1200, 1100, 1000}},
	{"B-1", "행사용 파라솔", "직경 2.4m", "행사용 파라솔", [8]int{15000, 13500, 12000, 10800, 9900, 9000, 8100, 7500}},
}

// Seed inserts the demo catalog when the items collection is empty.
// Imports of the real master sheet later upsert over these by code.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("items")
	if err != nil {
		return fmt.Errorf("items collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("query items: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	priceFields := []string{
		"price_1_3", "price_4_7", "price_8_10", "price_11_14",
		"price_15_20", "price_21_31", "price_1_2m", "price_2_3m",
	}

	for _, item := range demoItems {
		record := core.NewRecord(col)
		record.Set("code", item.code)
		record.Set("name", item.name)
		record.Set("size", item.size)
		record.Set("category", item.category)
		for i, field := range priceFields {
			record.Set(field, item.prices[i])
		}
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed item %q: %w", item.code, err)
		}
	}

	return nil
}
