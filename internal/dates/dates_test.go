package dates_test

import (
	"testing"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/dates"
)

func TestNormalizeBothFormats(t *testing.T) {
	iso, ok := dates.Normalize("2024-03-15")
	if !ok {
		t.Fatal("ISO date did not parse")
	}
	dmy, ok := dates.Normalize("15/03/2024")
	if !ok {
		t.Fatal("DD/MM/YYYY date did not parse")
	}
	if !iso.Equal(dmy) {
		t.Fatalf("formats disagree: %s vs %s", iso, dmy)
	}
	if dates.Format(iso) != "2024-03-15" {
		t.Fatalf("Format got=%s want=2024-03-15", dates.Format(iso))
	}
}

func TestNormalizeUnparsableStaysUnknown(t *testing.T) {
	for _, raw := range []string{"", "   ", "marzo 15", "2024/03/15", "15-03-2024"} {
		if _, ok := dates.Normalize(raw); ok {
			t.Errorf("Normalize(%q) parsed, want unknown", raw)
		}
	}
}
