// Package schedule derives the expected weekly due dates of a credit.
// Slots are generated on demand, never persisted; payments are matched to
// them by date equality.
package schedule

import "time"

// Generate returns the n expected due dates for a credit starting at
// start: the first one week after start, then weekly.
func Generate(start time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	due := make([]time.Time, 0, n)
	next := start.AddDate(0, 0, 7)
	for i := 0; i < n; i++ {
		due = append(due, next)
		next = next.AddDate(0, 0, 7)
	}
	return due
}
