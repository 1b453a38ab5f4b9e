// Package engagement implements the daykeep streak and counter engine.
// One tap is one event: counters advance, the day boundary is checked, and
// the achievement catalog is re-evaluated before the record is persisted.
package engagement

import (
	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/identity"
	"github.com/daykeep/daykeep/internal/infra/metrics"
	"github.com/daykeep/daykeep/internal/infra/store"
)

// Namespace is the keyed-store namespace for engagement records.
const Namespace = "engagement"

// Service owns per-user engagement records.
type Service struct {
	records *store.Scoped[domain.EngagementRecord]
	ident   identity.Provider
	clock   domain.Clock
	rules   []domain.AchievementRule
}

// NewService creates an engagement service over the given backend.
func NewService(backend store.Backend, ident identity.Provider, clock domain.Clock) *Service {
	return &Service{
		records: store.New[domain.EngagementRecord](backend, Namespace, nil),
		ident:   ident,
		clock:   clock,
		rules:   AllRules(),
	}
}

// EventResult is what a single tap reports back to the caller.
type EventResult struct {
	CumulativeScore int                  `json:"cumulative_score"`
	TodayEvents     int                  `json:"today_events"`
	ContinuousDays  int                  `json:"continuous_days"`
	NewAchievements []domain.Achievement `json:"new_achievements,omitempty"`
}

// RecordEvent records one action event for the acting user: advances the
// counters across the day boundary, evaluates the rule catalog, and
// persists the record. Always succeeds given a logged-in user.
func (s *Service) RecordEvent() (EventResult, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return EventResult{}, err
	}

	now := s.clock.Now()
	var unlocked []domain.Achievement
	rec, err := s.records.Update(username, func(r *domain.EngagementRecord) error {
		advance(r, domain.DateOf(now))
		unlocked = evaluate(r, s.rules, now)
		return nil
	})
	if err != nil {
		return EventResult{}, err
	}

	metrics.EventsRecorded.Inc()
	return EventResult{
		CumulativeScore: rec.CumulativeScore,
		TodayEvents:     rec.TodayEvents,
		ContinuousDays:  rec.ContinuousDays,
		NewAchievements: unlocked,
	}, nil
}

// Snapshot returns the acting user's current record. A user who has never
// tapped gets a zeroed record; nothing is written.
func (s *Service) Snapshot() (domain.EngagementRecord, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return domain.EngagementRecord{}, err
	}
	return s.records.Load(username)
}

// Achievements returns the acting user's unlocks in unlock order.
func (s *Service) Achievements() ([]domain.Achievement, error) {
	rec, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return rec.Achievements, nil
}

// Rules returns the full rule catalog (for display).
func (s *Service) Rules() []domain.AchievementRule {
	return s.rules
}

// advance applies one event dated today to the record.
//
// A streak continues only when the gap between the prior event date and
// today is exactly one calendar day. Any larger gap resets to 1, never 0:
// the triggering event itself counts as day one of the new streak. Do not
// "fix" this to reset to 0.
func advance(r *domain.EngagementRecord, today string) {
	r.CumulativeScore++
	r.TotalEvents++

	if r.LastEventDate == today {
		// Same calendar day: streak untouched.
		r.TodayEvents++
		return
	}

	r.TodayEvents = 1
	switch r.LastEventDate {
	case "":
		// First-ever event.
		r.ContinuousDays = 1
	case domain.PrevDate(today):
		// Unbroken: prior event was yesterday.
		r.ContinuousDays++
	default:
		r.ContinuousDays = 1
	}
	r.LastEventDate = today
}
