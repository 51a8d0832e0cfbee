package schedule_test

import (
	"testing"
	"time"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/schedule"
)

func TestGenerateWeeklyFromStart(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	got := schedule.Generate(start, 3)
	want := []string{"2024-01-08", "2024-01-15", "2024-01-22"}
	if len(got) != len(want) {
		t.Fatalf("len got=%d want=%d", len(got), len(want))
	}
	for i, w := range want {
		if s := got[i].Format("2006-01-02"); s != w {
			t.Errorf("slot %d got=%s want=%s", i, s, w)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	if got := schedule.Generate(start, 0); got != nil {
		t.Fatalf("count 0 got=%v want nil", got)
	}
	if got := schedule.Generate(start, -4); got != nil {
		t.Fatalf("negative count got=%v want nil", got)
	}
}
