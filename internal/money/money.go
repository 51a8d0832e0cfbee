// Package money normalizes the loosely formatted amount strings found in
// the legacy loan book. The book mixes US ("1,500.50"), European
// ("1500,50") and symbol-prefixed ("$2,000") notations, so parsing is
// heuristic; the rules live here so callers never touch raw strings and a
// typed monetary column can replace this later without touching them.
package money

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var thousandsGrouped = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)

// Parse converts a raw amount string into a decimal value.
//
// Empty or whitespace-only input parses as zero. Input that cannot be
// interpreted at all returns ok=false and must be skipped by callers,
// never treated as an error.
func Parse(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, true
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && !hasDot:
		if thousandsGrouped.MatchString(s) {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			// European decimal comma, e.g. "1500,50"
			s = strings.ReplaceAll(s, ",", ".")
		}
	case hasComma && hasDot:
		idx := strings.LastIndex(s, ".")
		if len(s)-idx-1 <= 2 {
			// Last dot is the decimal separator; everything else groups
			// thousands, e.g. "1,500.50".
			head := strings.ReplaceAll(s[:idx], ",", "")
			head = strings.ReplaceAll(head, ".", "")
			s = head + s[idx:]
		} else {
			// Both characters group thousands, e.g. "1.500.000,"-style
			// integers; strip them all.
			s = strings.ReplaceAll(s, ",", "")
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	if d, err := decimal.NewFromString(s); err == nil {
		return d, true
	}
	// Salvage the integer part of values like "1200.00.00".
	if i := strings.Index(s, "."); i > 0 {
		if n, err := strconv.ParseInt(s[:i], 10, 64); err == nil {
			return decimal.NewFromInt(n), true
		}
	}
	return decimal.Zero, false
}

// Sum adds the strictly positive parseable values in raws. Zero, negative
// and unusable entries contribute nothing, so paid-off credits and dirty
// legacy rows never distort a total.
func Sum(raws []string) decimal.Decimal {
	total := decimal.Zero
	for _, raw := range raws {
		d, ok := Parse(raw)
		if !ok || !d.IsPositive() {
			continue
		}
		total = total.Add(d)
	}
	return total
}
