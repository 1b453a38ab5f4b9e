package domain

import "time"

// ─── Water Intake Types ─────────────────────────────────────────────────────

// WaterEntry is one recorded drink. Append-only, removed only by
// delete-by-id.
type WaterEntry struct {
	ID       string    `json:"id"`
	AmountML int       `json:"amount_ml"`
	At       time.Time `json:"at"`
}

// Date returns the entry's local calendar date.
func (e WaterEntry) Date() string {
	return DateOf(e.At)
}

// DayTotal is one day of a rolled-up intake series.
type DayTotal struct {
	Date     string `json:"date"`
	AmountML int    `json:"amount_ml"`
}

// WaterSettings holds a user's hydration preferences.
type WaterSettings struct {
	DailyGoalML       int  `json:"daily_goal_ml"`
	CupSizeML         int  `json:"cup_size_ml"`
	RemindEnabled     bool `json:"remind_enabled"`
	RemindIntervalMin int  `json:"remind_interval_min"`
}

// DefaultWaterSettings returns the settings a fresh user starts with.
func DefaultWaterSettings() WaterSettings {
	return WaterSettings{
		DailyGoalML:       2000,
		CupSizeML:         250,
		RemindEnabled:     false,
		RemindIntervalMin: 60,
	}
}

// WaterProgress reports today's intake against the daily goal.
type WaterProgress struct {
	Date     string `json:"date"`
	AmountML int    `json:"amount_ml"`
	GoalML   int    `json:"goal_ml"`
}

// Pct returns goal completion as a percentage, capped at 100.
func (p WaterProgress) Pct() float64 {
	if p.GoalML <= 0 {
		return 0
	}
	pct := float64(p.AmountML) / float64(p.GoalML) * 100.0
	if pct > 100.0 {
		pct = 100.0
	}
	return pct
}
