package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money values in this generator are decimal.Decimal rounded to cents.
// decimal keeps the revenue totals exact over millions of rows and
// renders the same bytes on every run, which float64 would not.

// RoundCents rounds a decimal to two places, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatUSD renders a dollar amount as "$1,234,567.89".
func FormatUSD(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	out := "$" + groupThousands(intPart) + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatCount renders an integer with thousands separators, e.g. "114,999".
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	if strings.HasPrefix(s, "-") {
		return "-" + groupThousands(s[1:])
	}
	return groupThousands(s)
}

// groupThousands inserts commas into a bare digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var sb strings.Builder
	lead := n % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
