// Package dates coerces the mixed date formats found in the legacy loan
// book into canonical calendar dates.
package dates

import (
	"strings"
	"time"
)

const (
	// ISO is the canonical storage and display layout.
	ISO = "2006-01-02"
	// DayMonthYear is the legacy capture layout still present in old rows.
	DayMonthYear = "02/01/2006"
)

// Normalize parses a date string, trying ISO first and then DD/MM/YYYY.
// Unparsable values report ok=false; callers must treat them as unknown
// rather than substituting the current date.
func Normalize(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(ISO, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DayMonthYear, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Format renders a canonical date back to its ISO storage form.
func Format(t time.Time) string {
	return t.Format(ISO)
}
