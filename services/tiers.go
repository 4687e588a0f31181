package services

import (
	"math"
	"time"
)

// DurationTier identifies one of the rental duration price bands. The
// ordering matters: it doubles as the index into CatalogItem.TierPrices
// and into TierPriceFields.
type DurationTier int

const (
	Tier1To3Days DurationTier = iota
	Tier4To7Days
	Tier8To10Days
	Tier11To14Days
	Tier15To20Days
	Tier21To31Days
	Tier1To2Months
	Tier2To3Months

	TierCount = 8
)

// TierLabels holds the display label for each tier, in tier order.
var TierLabels = [TierCount]string{
	"1~3일",
	"4~7일",
	"8~10일",
	"11~14일",
	"15~20일",
	"21~31일",
	"1~2개월",
	"2~3개월",
}

// TierPriceFields maps each tier to its price column on the items
// collection, in tier order.
var TierPriceFields = [TierCount]string{
	"price_1_3",
	"price_4_7",
	"price_8_10",
	"price_11_14",
	"price_15_20",
	"price_21_31",
	"price_1_2m",
	"price_2_3m",
}

// Label returns the tier's display label, or "" for an out of range tier.
func (t DurationTier) Label() string {
	if t < 0 || int(t) >= TierCount {
		return ""
	}
	return TierLabels[t]
}

// PriceField returns the items collection field holding this tier's
// price, or "" for an out of range tier.
func (t DurationTier) PriceField() string {
	if t < 0 || int(t) >= TierCount {
		return ""
	}
	return TierPriceFields[t]
}

// RentalDays returns the inclusive day count of a rental running from
// start to end: ceil(|end−start| in days) + 1. Same-day rentals count
// as 1; the order of the two dates does not matter.
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(math.Abs(end.Sub(start).Hours())/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// ParseRentalDays parses two YYYY-MM-DD dates and returns the inclusive
// day count between them.
func ParseRentalDays(startDate, endDate string) (int, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, err
	}
	return RentalDays(start, end), nil
}

// ResolveTier maps a rental length in days to its price band. Every day
// count resolves to exactly one tier; anything above 31 days stays in
// the 21~31일 band, since the month bands are only selectable
// explicitly.
func ResolveTier(days int) DurationTier {
	switch {
	case days <= 3:
		return Tier1To3Days
	case days <= 7:
		return Tier4To7Days
	case days <= 10:
		return Tier8To10Days
	case days <= 14:
		return Tier11To14Days
	case days <= 20:
		return Tier15To20Days
	default:
		return Tier21To31Days
	}
}
