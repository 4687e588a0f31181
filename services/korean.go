package services

import "strings"

var (
	koreanDigits    = [10]string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}
	koreanPositions = [4]string{"", "십", "백", "천"}
	// 경 covers the fifth chunk, so every int64 (at most 19 digits)
	// resolves to a unit word.
	koreanUnits = [5]string{"", "만", "억", "조", "경"}
)

// NumberToKorean renders an amount as Sino-Korean numerals, grouped by
// ten-thousands (만, 억, 조). Zero and negative amounts render as "영".
func NumberToKorean(n int64) string {
	if n <= 0 {
		return "영"
	}

	var parts []string
	unit := 0
	for n > 0 {
		chunk := int(n % 10000)
		if chunk > 0 {
			parts = append([]string{koreanChunk(chunk) + koreanUnits[unit]}, parts...)
		}
		n /= 10000
		unit++
	}
	return strings.Join(parts, "")
}

// koreanChunk renders a value in [1, 9999].
func koreanChunk(chunk int) string {
	var b strings.Builder
	for pos := 3; pos >= 0; pos-- {
		digit := chunk / pow10(pos) % 10
		if digit == 0 {
			continue
		}
		b.WriteString(koreanDigits[digit])
		b.WriteString(koreanPositions[pos])
	}
	return b.String()
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
