// Package domain holds the pure types of the daykeep engine.
// The engagement engine drives habit streaks: cumulative counters,
// day-boundary detection, and threshold achievements.
package domain

import "time"

// DateLayout is the calendar-date format used everywhere a day matters.
// Streaks compare local wall-clock dates, never timestamps.
const DateLayout = "2006-01-02"

// DateOf returns t's local calendar date, time-of-day stripped.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// PrevDate returns the calendar date one day before date.
// Malformed input yields "".
func PrevDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// ─── Engagement Record ──────────────────────────────────────────────────────

// EngagementRecord is one user's counter state. Lazily created zeroed on
// first read; mutated only by recording an event; never deleted.
type EngagementRecord struct {
	// CumulativeScore is the lifetime point total. One point per event is
	// the current policy, not an invariant, so it is tracked separately
	// from TotalEvents.
	CumulativeScore int `json:"cumulative_score"`
	TotalEvents     int `json:"total_events"`

	// TodayEvents counts events dated LastEventDate. Resets to exactly 1
	// on the first event of a new calendar day.
	TodayEvents int `json:"today_events"`

	// LastEventDate is the calendar date of the most recent event,
	// "" if the user has never recorded one.
	LastEventDate string `json:"last_event_date,omitempty"`

	// ContinuousDays is the current unbroken streak length. Zero only
	// while LastEventDate is "".
	ContinuousDays int `json:"continuous_days"`

	// Achievements is append-only, unique by ID.
	Achievements []Achievement `json:"achievements"`
}

// Value returns the counter selected by m. Unknown metrics read as 0.
func (r EngagementRecord) Value(m Metric) int {
	switch m {
	case MetricCumulative:
		return r.CumulativeScore
	case MetricStreak:
		return r.ContinuousDays
	case MetricDaily:
		return r.TodayEvents
	}
	return 0
}

// Unlocked reports whether the achievement id has already been earned.
func (r EngagementRecord) Unlocked(id string) bool {
	for _, a := range r.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// ─── Achievement Types ──────────────────────────────────────────────────────

// Metric names a counter an achievement rule thresholds against.
type Metric string

const (
	MetricCumulative Metric = "cumulative_score"
	MetricStreak     Metric = "continuous_days"
	MetricDaily      Metric = "today_events"
)

// AchievementRule is a named monotonic threshold on one metric.
// Rules are immutable and statically enumerated.
type AchievementRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Metric      Metric `json:"metric"`
	Threshold   int    `json:"threshold"`
}

// Achievement records an unlock. Unlocked once, never re-locked.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}
