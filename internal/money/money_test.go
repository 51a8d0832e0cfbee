package money_test

import (
	"testing"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/money"
	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"1,500.50", "1500.50", true},
		{"1500,50", "1500.50", true},
		{"", "0", true},
		{"   ", "0", true},
		{"abc", "0", false},
		{"$2,000", "2000", true},
		{"1000", "1000", true},
		{"1000.5", "1000.5", true},
		{"$ 1,234,567.89", "1234567.89", true},
		{"2,000,000", "2000000", true},
		{"-5", "-5", true},
		{"0.00", "0", true},
		{"1200.00.00", "1200", true},
	}
	for _, c := range cases {
		got, ok := money.Parse(c.raw)
		if ok != c.ok {
			t.Errorf("Parse(%q) ok got=%v want=%v", c.raw, ok, c.ok)
			continue
		}
		want, _ := decimal.NewFromString(c.want)
		if !got.Equal(want) {
			t.Errorf("Parse(%q) got=%s want=%s", c.raw, got, want)
		}
	}
}

func TestSumExcludesNonPositive(t *testing.T) {
	got := money.Sum([]string{"0", "-5", "100"})
	if !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("Sum got=%s want=100", got)
	}
}

func TestSumSkipsUnusable(t *testing.T) {
	got := money.Sum([]string{"garbage", "1,500.50", "", "200"})
	want, _ := decimal.NewFromString("1700.50")
	if !got.Equal(want) {
		t.Fatalf("Sum got=%s want=%s", got, want)
	}
}
