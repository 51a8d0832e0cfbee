package ledger_test

import (
	"testing"
	"time"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/ledger"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeTerms(t *testing.T) {
	terms := ledger.ComputeTerms(d("1000"), d("10"))
	if !terms.InterestAmount.Equal(d("100")) {
		t.Fatalf("interest got=%s want=100", terms.InterestAmount)
	}
	if !terms.Total.Equal(d("1100")) {
		t.Fatalf("total got=%s want=1100", terms.Total)
	}
}

func TestApplyPaymentClampsAtZero(t *testing.T) {
	if got := ledger.ApplyPayment(d("1100"), d("1500")); !got.Equal(decimal.Zero) {
		t.Fatalf("overpayment got=%s want=0", got)
	}
	if got := ledger.ApplyPayment(d("1100"), d("300")); !got.Equal(d("800")) {
		t.Fatalf("payment got=%s want=800", got)
	}
}

func TestReverseRestoresExactAmount(t *testing.T) {
	before := d("1100")
	after := ledger.ApplyPayment(before, d("200"))
	restored := ledger.RestorePayment(after, d("200"))
	if !restored.Equal(before) {
		t.Fatalf("restored got=%s want=%s", restored, before)
	}
}

func TestDeriveStatus(t *testing.T) {
	today := day("2024-06-01")
	cases := []struct {
		name     string
		total    string
		end      string
		endKnown bool
		want     ledger.Status
	}{
		{"paid wins over past end date", "0", "2020-01-01", true, ledger.StatusPaid},
		{"overdue", "500", "2024-05-31", true, ledger.StatusOverdue},
		{"upcoming boundary today", "500", "2024-06-01", true, ledger.StatusUpcoming},
		{"upcoming at 20 days", "500", "2024-06-21", true, ledger.StatusUpcoming},
		{"current at 21 days", "500", "2024-06-22", true, ledger.StatusCurrent},
		{"unknown end date", "500", "", false, ledger.StatusCurrent},
	}
	for _, c := range cases {
		var end time.Time
		if c.endKnown {
			end = day(c.end)
		}
		got := ledger.DeriveStatus(d(c.total), end, c.endKnown, today)
		if got != c.want {
			t.Errorf("%s: got=%s want=%s", c.name, got, c.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	if got := ledger.DaysBetween(day("2024-06-01"), day("2024-05-30")); got != -2 {
		t.Fatalf("got=%d want=-2", got)
	}
	if got := ledger.DaysBetween(day("2024-06-01"), day("2024-06-15")); got != 14 {
		t.Fatalf("got=%d want=14", got)
	}
}
