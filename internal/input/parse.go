// Package input converts what a user types into the numeric Inputs the
// estimator works with, and back into display text.
package input

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse coerces raw field text into a number. Currency, grouping, and
// percent characters are ignored, then the longest numeric prefix is read.
// Text with no numeric prefix, and values that overflow, yield 0.
func Parse(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', '%':
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimLeftFunc(cleaned, unicode.IsSpace)

	prefix := numericPrefix(cleaned)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// numericPrefix returns the longest leading run of s that forms a decimal
// literal: optional sign, digits with at most one point, optional exponent.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
