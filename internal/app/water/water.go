// Package water implements hydration tracking: an append-only intake log,
// per-user goal settings, and the dense 7-day rollup.
package water

import (
	"github.com/google/uuid"

	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/identity"
	"github.com/daykeep/daykeep/internal/infra/metrics"
	"github.com/daykeep/daykeep/internal/infra/store"
)

// Keyed-store namespaces for the intake log and per-user settings.
const (
	Namespace         = "water_records"
	SettingsNamespace = "water_settings"
)

// Service owns per-user intake logs and settings.
type Service struct {
	entries  *store.Scoped[[]domain.WaterEntry]
	settings *store.Scoped[domain.WaterSettings]
	ident    identity.Provider
	clock    domain.Clock
}

// NewService creates a water service over the given backend.
func NewService(backend store.Backend, ident identity.Provider, clock domain.Clock) *Service {
	return &Service{
		entries:  store.New[[]domain.WaterEntry](backend, Namespace, nil),
		settings: store.New[domain.WaterSettings](backend, SettingsNamespace, domain.DefaultWaterSettings),
		ident:    ident,
		clock:    clock,
	}
}

// AddEntry records one drink for the acting user.
func (s *Service) AddEntry(amountML int) (domain.WaterEntry, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return domain.WaterEntry{}, err
	}
	if amountML <= 0 {
		return domain.WaterEntry{}, domain.ErrInvalidAmount
	}

	entry := domain.WaterEntry{
		ID:       uuid.NewString(),
		AmountML: amountML,
		At:       s.clock.Now(),
	}
	_, err = s.entries.Update(username, func(list *[]domain.WaterEntry) error {
		*list = append(*list, entry)
		return nil
	})
	if err != nil {
		return domain.WaterEntry{}, err
	}

	metrics.WaterIntake.Add(float64(amountML))
	return entry, nil
}

// DeleteEntry removes the entry with the given id.
func (s *Service) DeleteEntry(id string) error {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return err
	}
	_, err = s.entries.Update(username, func(list *[]domain.WaterEntry) error {
		for i, e := range *list {
			if e.ID == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return err
}

// Entries returns the acting user's full intake log, oldest first.
func (s *Service) Entries() ([]domain.WaterEntry, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return nil, err
	}
	return s.entries.Load(username)
}

// TodayTotal reports today's intake against the user's daily goal.
func (s *Service) TodayTotal() (domain.WaterProgress, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return domain.WaterProgress{}, err
	}
	entries, err := s.entries.Load(username)
	if err != nil {
		return domain.WaterProgress{}, err
	}
	settings, err := s.settings.Load(username)
	if err != nil {
		return domain.WaterProgress{}, err
	}

	today := domain.DateOf(s.clock.Now())
	return domain.WaterProgress{
		Date:     today,
		AmountML: DayAmount(entries, today),
		GoalML:   settings.DailyGoalML,
	}, nil
}

// WeeklySeries returns the dense 7-day intake series ending today.
func (s *Service) WeeklySeries() ([]domain.DayTotal, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	return WeeklyTotals(entries, s.clock.Now()), nil
}

// Settings returns the acting user's hydration settings, creating the
// defaults on first read.
func (s *Service) Settings() (domain.WaterSettings, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return domain.WaterSettings{}, err
	}
	return s.settings.Load(username)
}

// SaveSettings replaces the acting user's hydration settings.
func (s *Service) SaveSettings(settings domain.WaterSettings) error {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return err
	}
	if settings.DailyGoalML <= 0 || settings.CupSizeML <= 0 {
		return domain.ErrInvalidAmount
	}
	return s.settings.Save(username, settings)
}
