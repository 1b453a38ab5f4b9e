package engagement

import (
	"time"

	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/metrics"
)

// evaluate scans every rule against the record's counters and appends the
// newly earned unlocks. Idempotent: re-running with unchanged counters
// appends nothing. Returns the unlocks added by this call.
//
// Every rule is checked on every call, so a threshold passed while a rule
// was somehow skipped still fires on the next evaluation.
func evaluate(r *domain.EngagementRecord, rules []domain.AchievementRule, now time.Time) []domain.Achievement {
	var unlocked []domain.Achievement
	for _, rule := range rules {
		if r.Value(rule.Metric) < rule.Threshold || r.Unlocked(rule.ID) {
			continue
		}
		a := domain.Achievement{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			UnlockedAt:  now,
		}
		r.Achievements = append(r.Achievements, a)
		unlocked = append(unlocked, a)
		metrics.AchievementsUnlocked.WithLabelValues(string(rule.Metric)).Inc()
	}
	return unlocked
}

// AllRules returns the full achievement catalog: cumulative-score rules
// first, then streak rules, then daily-count rules. Enumeration order only
// affects the order unlocks land in the record, not which rules fire.
func AllRules() []domain.AchievementRule {
	return []domain.AchievementRule{
		// ── Cumulative score ───────────────────────────────────────────
		{
			ID: "merits_100", Name: "Good Start",
			Description: "Reach a cumulative score of 100",
			Metric:      domain.MetricCumulative, Threshold: 100,
		},
		{
			ID: "merits_500", Name: "Boundless Merit",
			Description: "Reach a cumulative score of 500",
			Metric:      domain.MetricCumulative, Threshold: 500,
		},
		{
			ID: "merits_1000", Name: "Thousand Deeds",
			Description: "Reach a cumulative score of 1000",
			Metric:      domain.MetricCumulative, Threshold: 1000,
		},
		{
			ID: "merits_10000", Name: "Endless Sea",
			Description: "Reach a cumulative score of 10000",
			Metric:      domain.MetricCumulative, Threshold: 10000,
		},

		// ── Continuous days ────────────────────────────────────────────
		{
			ID: "continuous_3", Name: "First Resolve",
			Description: "Keep a 3-day streak",
			Metric:      domain.MetricStreak, Threshold: 3,
		},
		{
			ID: "continuous_7", Name: "Perseverance",
			Description: "Keep a 7-day streak",
			Metric:      domain.MetricStreak, Threshold: 7,
		},
		{
			ID: "continuous_30", Name: "Unbroken Practice",
			Description: "Keep a 30-day streak",
			Metric:      domain.MetricStreak, Threshold: 30,
		},
		{
			ID: "continuous_100", Name: "Single-Minded",
			Description: "Keep a 100-day streak",
			Metric:      domain.MetricStreak, Threshold: 100,
		},

		// ── Daily count ────────────────────────────────────────────────
		{
			ID: "daily_hits_100", Name: "Daily Devotion",
			Description: "Record 100 events in a single day",
			Metric:      domain.MetricDaily, Threshold: 100,
		},
		{
			ID: "daily_hits_500", Name: "Hundredfold Day",
			Description: "Record 500 events in a single day",
			Metric:      domain.MetricDaily, Threshold: 500,
		},
		{
			ID: "daily_hits_1000", Name: "Diligent Practice",
			Description: "Record 1000 events in a single day",
			Metric:      domain.MetricDaily, Threshold: 1000,
		},
	}
}
