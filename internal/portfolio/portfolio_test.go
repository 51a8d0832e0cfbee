package portfolio_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/portfolio"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStatusCountsExcludePaid(t *testing.T) {
	today := day("2024-06-01")
	credits := []models.Credit{
		{Total: "0", EndDate: "2024-01-01"},    // paid, end date irrelevant
		{Total: "500", EndDate: "2024-01-01"},  // overdue
		{Total: "800", EndDate: "2024-12-31"},  // current
	}
	s := portfolio.Aggregate(credits, nil, today, 0)
	if s.ActiveCredits != 1 || s.OverdueCredits != 1 || s.PaidCredits != 1 {
		t.Fatalf("counts got active=%d overdue=%d paid=%d want 1/1/1",
			s.ActiveCredits, s.OverdueCredits, s.PaidCredits)
	}
	if s.TotalCredits != 3 {
		t.Fatalf("total got=%d want=3", s.TotalCredits)
	}
}

func TestOutstandingAndCombinedTotals(t *testing.T) {
	today := day("2024-06-01")
	credits := []models.Credit{
		{Total: "1,500.50", EndDate: "2024-12-31"},
		{Total: "0", EndDate: "2024-12-31"},
		{Total: "garbage", EndDate: "2024-12-31"},
		{Total: "-20", EndDate: "2024-12-31"},
	}
	treasury := &models.TreasuryFigures{CashOnHand: "1000", PartnerCapital: "$2,000"}
	s := portfolio.Aggregate(credits, treasury, today, 0)

	want, _ := decimal.NewFromString("1500.50")
	if !s.OutstandingTotal.Equal(want) {
		t.Fatalf("outstanding got=%s want=%s", s.OutstandingTotal, want)
	}
	combined, _ := decimal.NewFromString("4500.50")
	if !s.CombinedTotal.Equal(combined) {
		t.Fatalf("combined got=%s want=%s", s.CombinedTotal, combined)
	}
}

func TestCombinedTotalDefaultsWithoutTreasury(t *testing.T) {
	s := portfolio.Aggregate(nil, nil, day("2024-06-01"), 0)
	if !s.CombinedTotal.Equal(decimal.Zero) {
		t.Fatalf("combined got=%s want=0", s.CombinedTotal)
	}
}

func TestHistogramZeroFilledAndYearFallback(t *testing.T) {
	today := day("2026-06-01")
	credits := []models.Credit{
		{Total: "100", StartDate: "2024-01-10", EndDate: "2024-06-01"},
		{Total: "100", StartDate: "2024-01-20", EndDate: "2024-06-01"},
		{Total: "100", StartDate: "15/03/2024", EndDate: "2024-06-01"},
		{Total: "100", StartDate: "2023-12-01", EndDate: "2024-06-01"},
		{Total: "100", StartDate: "not a date", EndDate: "2024-06-01"},
	}
	s := portfolio.Aggregate(credits, nil, today, 0)

	// 2026 has no data, so the most recent data year wins.
	if s.Year != 2024 {
		t.Fatalf("year got=%d want=2024", s.Year)
	}
	want := [12]int{2, 0, 1}
	if s.MonthlyOriginations != want {
		t.Fatalf("histogram got=%v want=%v", s.MonthlyOriginations, want)
	}
	if len(s.AvailableYears) != 2 || s.AvailableYears[0] != 2024 || s.AvailableYears[1] != 2023 {
		t.Fatalf("available years got=%v want=[2024 2023]", s.AvailableYears)
	}
}

func TestHistogramExplicitYear(t *testing.T) {
	credits := []models.Credit{
		{Total: "100", StartDate: "2023-05-01", EndDate: "2024-06-01"},
		{Total: "100", StartDate: "2024-02-01", EndDate: "2024-06-01"},
	}
	s := portfolio.Aggregate(credits, nil, day("2024-06-01"), 2023)
	if s.Year != 2023 {
		t.Fatalf("year got=%d want=2023", s.Year)
	}
	want := [12]int{0, 0, 0, 0, 1}
	if s.MonthlyOriginations != want {
		t.Fatalf("histogram got=%v want=%v", s.MonthlyOriginations, want)
	}
}

func TestBadEndDateSkippedFromStatusSplit(t *testing.T) {
	credits := []models.Credit{
		{Total: "100", EndDate: "someday"},
	}
	s := portfolio.Aggregate(credits, nil, day("2024-06-01"), 0)
	if s.ActiveCredits != 0 || s.OverdueCredits != 0 {
		t.Fatalf("split got active=%d overdue=%d want 0/0", s.ActiveCredits, s.OverdueCredits)
	}
	if !s.OutstandingTotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("outstanding got=%s want=100", s.OutstandingTotal)
	}
}
