package services

import (
	"github.com/pocketbase/pocketbase/core"
)

// CatalogItem is a normalized master-catalog record: one rentable product
// with a unit price per duration tier. Instances are plain values; once
// imported they are never mutated, only superseded by a later import.
type CatalogItem struct {
	Code     string
	Name     string
	Size     string
	Spec     string
	Category string
	// TierPrices holds the unit price for each DurationTier, in tier order.
	TierPrices [TierCount]int64
}

// Price returns the unit price for the given tier, or 0 for an
// out-of-range tier.
func (c CatalogItem) Price(tier DurationTier) int64 {
	if tier < 0 || int(tier) >= TierCount {
		return 0
	}
	return c.TierPrices[tier]
}

// CatalogItemFromRecord converts an items record into a CatalogItem value.
func CatalogItemFromRecord(rec *core.Record) CatalogItem {
	item := CatalogItem{
		Code:     rec.GetString("code"),
		Name:     rec.GetString("name"),
		Size:     rec.GetString("size"),
		Spec:     rec.GetString("spec"),
		Category: rec.GetString("category"),
	}
	for tier, field := range TierPriceFields {
		item.TierPrices[tier] = int64(rec.GetInt(field))
	}
	return item
}

// CatalogSnapshot builds a code-keyed catalog map from a slice of item
// records. The pricing pipeline reads from the snapshot rather than going
// back to storage mid-computation.
func CatalogSnapshot(records []*core.Record) map[string]CatalogItem {
	snapshot := make(map[string]CatalogItem, len(records))
	for _, rec := range records {
		item := CatalogItemFromRecord(rec)
		snapshot[item.Code] = item
	}
	return snapshot
}
