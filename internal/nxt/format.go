package nxt

import (
	"strconv"
	"strings"
)

// minFractionDigits is the number of decimals always kept by FormatAmount.
const minFractionDigits = 4

// FormatAmount renders a fixed point amount with the given number of decimals.
// Thousands are separated by commas and trailing zeros beyond four decimals are dropped.
func FormatAmount(value int64, decimals int) string {
	negative := value < 0
	magnitude := uint64(value)
	if negative {
		magnitude = -magnitude
	}

	digits := strconv.FormatUint(magnitude, 10)
	if len(digits) < decimals+1 {
		digits = strings.Repeat("0", decimals+1-len(digits)) + digits
	}
	point := len(digits) - decimals

	fraction := digits[point:]
	keep := len(fraction)
	for keep > minFractionDigits && fraction[keep-1] == '0' {
		keep--
	}
	fraction = fraction[:keep]

	whole := digits[:point]
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if fraction != "" {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}
