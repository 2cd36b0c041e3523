// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency formats whole currency units with a dollar sign and
// thousands separators. e.g., 1234567 -> "$1,234,567", -500 -> "$-500"
func FormatCurrency(amount int64) string {
	return "$" + FormatNumber(amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		// Handled on the unsigned value so math.MinInt64 does not overflow.
		return "-" + GroupDigits(strconv.FormatUint(uint64(-(n+1))+1, 10))
	}
	return GroupDigits(strconv.FormatInt(n, 10))
}

// GroupDigits inserts a comma every three digits from the right of an
// unsigned digit string.
func GroupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a whole-number percentage, e.g. 334 -> "334%".
func FormatPercent(pct int64) string {
	return strconv.FormatInt(pct, 10) + "%"
}

// FormatShare formats part as a percentage of total with one decimal.
// Returns "" when total is not positive.
func FormatShare(part, total int64) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
