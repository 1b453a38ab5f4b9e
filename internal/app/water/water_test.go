package water_test

import (
	"errors"
	"testing"
	"time"

	"github.com/daykeep/daykeep/internal/app/water"
	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/identity"
	"github.com/daykeep/daykeep/internal/infra/store"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time { return c.t }

func testService(t *testing.T, start time.Time) (*water.Service, *stepClock) {
	t.Helper()
	clock := &stepClock{t: start}
	svc := water.NewService(store.NewMemory(), identity.Static("mei"), clock)
	return svc, clock
}

func noon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// ═══════════════════════════════════════════════════════════════════════════
// Service Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestAddEntry_Validation(t *testing.T) {
	svc, _ := testService(t, noon(2024, 6, 1))

	if _, err := svc.AddEntry(0); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("zero: got %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.AddEntry(-250); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("negative: got %v, want ErrInvalidAmount", err)
	}
}

func TestAddEntry_NotAuthenticated(t *testing.T) {
	clock := &stepClock{t: noon(2024, 6, 1)}
	svc := water.NewService(store.NewMemory(), identity.Static(""), clock)

	if _, err := svc.AddEntry(250); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	svc, _ := testService(t, noon(2024, 6, 1))

	entry, err := svc.AddEntry(250)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.DeleteEntry(entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteEntry(entry.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}

	progress, _ := svc.TodayTotal()
	if progress.AmountML != 0 {
		t.Errorf("expected 0 after delete, got %d", progress.AmountML)
	}
}

func TestTodayTotal(t *testing.T) {
	svc, clock := testService(t, noon(2024, 6, 1))

	_, _ = svc.AddEntry(250)
	_, _ = svc.AddEntry(300)
	clock.t = noon(2024, 6, 2)
	_, _ = svc.AddEntry(500)

	progress, err := svc.TodayTotal()
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if progress.Date != "2024-06-02" {
		t.Errorf("expected date 2024-06-02, got %s", progress.Date)
	}
	if progress.AmountML != 500 {
		t.Errorf("yesterday's entries must not count: got %d, want 500", progress.AmountML)
	}
	if progress.GoalML != 2000 {
		t.Errorf("expected default goal 2000, got %d", progress.GoalML)
	}
	if progress.Pct() != 25 {
		t.Errorf("expected 25%%, got %v", progress.Pct())
	}
}

func TestSettings_DefaultsAndSave(t *testing.T) {
	svc, _ := testService(t, noon(2024, 6, 1))

	settings, err := svc.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings != domain.DefaultWaterSettings() {
		t.Errorf("fresh user should get defaults, got %+v", settings)
	}

	settings.DailyGoalML = 3000
	if err := svc.SaveSettings(settings); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, _ := svc.Settings()
	if reloaded.DailyGoalML != 3000 {
		t.Errorf("expected saved goal 3000, got %d", reloaded.DailyGoalML)
	}

	settings.DailyGoalML = 0
	if err := svc.SaveSettings(settings); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("zero goal: got %v, want ErrInvalidAmount", err)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Rollup Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestWeeklyTotals_AlwaysSevenDense(t *testing.T) {
	now := noon(2024, 6, 10)

	// Sparse input: entries on only two of the seven days, plus one
	// outside the window.
	entries := []domain.WaterEntry{
		{ID: "a", AmountML: 250, At: noon(2024, 6, 10)},
		{ID: "b", AmountML: 300, At: noon(2024, 6, 10)},
		{ID: "c", AmountML: 500, At: noon(2024, 6, 7)},
		{ID: "d", AmountML: 999, At: noon(2024, 6, 1)}, // older than the window
	}

	series := water.WeeklyTotals(entries, now)
	if len(series) != 7 {
		t.Fatalf("expected exactly 7 days, got %d", len(series))
	}
	if series[0].Date != "2024-06-04" {
		t.Errorf("oldest first: expected 2024-06-04, got %s", series[0].Date)
	}
	if series[6].Date != "2024-06-10" {
		t.Errorf("newest last: expected 2024-06-10, got %s", series[6].Date)
	}

	byDate := map[string]int{}
	for _, day := range series {
		byDate[day.Date] = day.AmountML
	}
	if byDate["2024-06-10"] != 550 {
		t.Errorf("today should sum to 550, got %d", byDate["2024-06-10"])
	}
	if byDate["2024-06-07"] != 500 {
		t.Errorf("June 7 should be 500, got %d", byDate["2024-06-07"])
	}
	for _, date := range []string{"2024-06-04", "2024-06-05", "2024-06-06", "2024-06-08", "2024-06-09"} {
		if byDate[date] != 0 {
			t.Errorf("%s should be 0, got %d", date, byDate[date])
		}
	}
}

func TestWeeklyTotals_EmptyLog(t *testing.T) {
	series := water.WeeklyTotals(nil, noon(2024, 6, 10))
	if len(series) != 7 {
		t.Fatalf("expected 7 days for empty log, got %d", len(series))
	}
	for _, day := range series {
		if day.AmountML != 0 {
			t.Errorf("%s should be 0, got %d", day.Date, day.AmountML)
		}
	}
}

func TestWeeklySeries_ThroughService(t *testing.T) {
	svc, clock := testService(t, noon(2024, 6, 4))

	for day := 4; day <= 10; day++ {
		clock.t = noon(2024, 6, day)
		_, _ = svc.AddEntry(100 * (day - 3))
	}

	series, err := svc.WeeklySeries()
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("expected 7, got %d", len(series))
	}
	if series[0].AmountML != 100 || series[6].AmountML != 700 {
		t.Errorf("expected 100..700, got first %d last %d", series[0].AmountML, series[6].AmountML)
	}
}
