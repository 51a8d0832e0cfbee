// Package portfolio computes the fleet-wide figures shown on the totals
// and credits pages. The loan book contains dirty legacy rows, so every
// per-record parse failure skips that record for the failing figure and
// the rest of the report still comes out.
package portfolio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/dates"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/money"
)

// Summary is the fully computed view handed to the presentation layer.
type Summary struct {
	TotalCredits   int `json:"total_credits"`
	ActiveCredits  int `json:"active_credits"`
	OverdueCredits int `json:"overdue_credits"`
	PaidCredits    int `json:"paid_credits"`

	OutstandingTotal decimal.Decimal `json:"outstanding_total"`
	CashOnHand       decimal.Decimal `json:"cash_on_hand"`
	PartnerCapital   decimal.Decimal `json:"partner_capital"`
	CombinedTotal    decimal.Decimal `json:"combined_total"`

	Year                int     `json:"year"`
	AvailableYears      []int   `json:"available_years"`
	MonthlyOriginations [12]int `json:"monthly_originations"`
}

// Aggregate computes the portfolio summary. treasury may be nil when no
// figures have ever been captured. year selects the histogram year; zero
// means the current year, falling back to the most recent year present in
// the data when the current year has no originations.
func Aggregate(credits []models.Credit, treasury *models.TreasuryFigures, today time.Time, year int) Summary {
	s := Summary{TotalCredits: len(credits)}

	outstanding := make([]string, 0, len(credits))
	byYearMonth := map[int]*[12]int{}
	for _, c := range credits {
		outstanding = append(outstanding, c.Total)

		total, ok := money.Parse(c.Total)
		if ok {
			switch {
			case !total.IsPositive():
				s.PaidCredits++
			default:
				if end, endOK := dates.Normalize(c.EndDate); endOK {
					if end.Before(truncateDay(today)) {
						s.OverdueCredits++
					} else {
						s.ActiveCredits++
					}
				}
				// Unknown end date: the credit still counts toward the
				// book size and the outstanding total, just not the
				// active/overdue split.
			}
		}

		if start, startOK := dates.Normalize(c.StartDate); startOK {
			y := start.Year()
			if byYearMonth[y] == nil {
				byYearMonth[y] = &[12]int{}
			}
			byYearMonth[y][start.Month()-1]++
		}
	}

	s.OutstandingTotal = money.Sum(outstanding)
	s.CashOnHand, s.PartnerCapital = treasuryAmounts(treasury)
	s.CombinedTotal = s.OutstandingTotal.Add(s.CashOnHand).Add(s.PartnerCapital)

	for y := range byYearMonth {
		s.AvailableYears = append(s.AvailableYears, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.AvailableYears)))

	s.Year = year
	if s.Year == 0 {
		s.Year = today.Year()
		if byYearMonth[s.Year] == nil && len(s.AvailableYears) > 0 {
			s.Year = s.AvailableYears[0]
		}
	}
	if counts := byYearMonth[s.Year]; counts != nil {
		s.MonthlyOriginations = *counts
	}
	return s
}

func treasuryAmounts(t *models.TreasuryFigures) (cash, partners decimal.Decimal) {
	cash, partners = decimal.Zero, decimal.Zero
	if t == nil {
		return cash, partners
	}
	if v, ok := money.Parse(t.CashOnHand); ok {
		cash = v
	}
	if v, ok := money.Parse(t.PartnerCapital); ok {
		partners = v
	}
	return cash, partners
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
