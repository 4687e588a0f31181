package services

import "strconv"

// FormatComma formats an integer amount with thousands separators,
// e.g. 1234567 → "1,234,567". Amounts are stored as plain integers;
// currency symbols are display-only and added by callers.
func FormatComma(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	n := len(s)
	if n > 3 {
		grouped := s[n-3:]
		remaining := s[:n-3]
		for len(remaining) > 3 {
			grouped = remaining[len(remaining)-3:] + "," + grouped
			remaining = remaining[:len(remaining)-3]
		}
		s = remaining + "," + grouped
	}

	if negative {
		return "-" + s
	}
	return s
}
