// Package ledger owns the arithmetic and derived state of a single credit:
// interest terms at creation, the running balance as payments post and
// reverse, and the status read off (balance, end date, today).
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of a credit, recomputed on every read. It is never stored, so
// the balance and the calendar can never drift apart.
type Status string

const (
	StatusPaid     Status = "Paid"
	StatusOverdue  Status = "Overdue"
	StatusUpcoming Status = "Upcoming"
	StatusCurrent  Status = "Current"
)

// UpcomingWindowDays is how close an end date has to be before an unpaid
// credit is flagged as upcoming.
const UpcomingWindowDays = 20

var hundred = decimal.NewFromInt(100)

// Terms are the fixed amounts computed when a credit is created.
type Terms struct {
	Principal      decimal.Decimal
	InterestAmount decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTerms derives the interest amount and original total from the
// principal and the interest rate expressed as a percentage.
func ComputeTerms(principal, ratePercent decimal.Decimal) Terms {
	interest := principal.Mul(ratePercent).Div(hundred)
	return Terms{
		Principal:      principal,
		InterestAmount: interest,
		Total:          principal.Add(interest),
	}
}

// ApplyPayment subtracts a posted payment from the running total. The
// result is clamped at zero: an overpayment is absorbed, never carried as
// a negative balance or a credit in the client's favor.
func ApplyPayment(total, amount decimal.Decimal) decimal.Decimal {
	remaining := total.Sub(amount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// RestorePayment adds a reversed payment's amount back onto the running
// total.
func RestorePayment(total, amount decimal.Decimal) decimal.Decimal {
	return total.Add(amount)
}

// DeriveStatus computes a credit's status. A zero balance always reads
// Paid, even with an end date in the past. endKnown is false when the
// stored end date could not be normalized; such credits read Current
// rather than being guessed overdue.
func DeriveStatus(total decimal.Decimal, endDate time.Time, endKnown bool, today time.Time) Status {
	if !total.IsPositive() {
		return StatusPaid
	}
	if !endKnown {
		return StatusCurrent
	}
	days := DaysBetween(today, endDate)
	switch {
	case days < 0:
		return StatusOverdue
	case days <= UpcomingWindowDays:
		return StatusUpcoming
	default:
		return StatusCurrent
	}
}

// DaysBetween returns the whole calendar days from one date to another,
// negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	from = truncateDay(from)
	to = truncateDay(to)
	return int(to.Sub(from) / (24 * time.Hour))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
