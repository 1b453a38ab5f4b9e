// Package budget implements the ledger and its read-time aggregation:
// income/expense/balance summary and dense category breakdowns.
package budget

import (
	"github.com/google/uuid"

	"github.com/daykeep/daykeep/internal/domain"
	"github.com/daykeep/daykeep/internal/infra/identity"
	"github.com/daykeep/daykeep/internal/infra/metrics"
	"github.com/daykeep/daykeep/internal/infra/store"
)

// Namespace is the keyed-store namespace for ledger entries.
const Namespace = "transactions"

// IncomeCategories is the fixed income category catalog, in display order.
var IncomeCategories = []string{
	"salary", "bonus", "side job", "investment", "interest", "other income",
}

// ExpenseCategories is the fixed expense category catalog, in display order.
var ExpenseCategories = []string{
	"food", "shopping", "transport", "housing", "entertainment",
	"medical", "education", "travel", "other expense",
}

// Categories returns the catalog for the given entry type.
func Categories(t domain.EntryType) []string {
	if t == domain.EntryIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// Service owns per-user ledgers.
type Service struct {
	entries *store.Scoped[[]domain.LedgerEntry]
	ident   identity.Provider
	clock   domain.Clock
}

// NewService creates a budget service over the given backend.
func NewService(backend store.Backend, ident identity.Provider, clock domain.Clock) *Service {
	return &Service{
		entries: store.New[[]domain.LedgerEntry](backend, Namespace, nil),
		ident:   ident,
		clock:   clock,
	}
}

// AddEntry validates and appends one transaction for the acting user.
func (s *Service) AddEntry(amount float64, typ domain.EntryType, category, description string) (domain.LedgerEntry, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	if amount <= 0 {
		return domain.LedgerEntry{}, domain.ErrInvalidAmount
	}
	if typ == "" {
		return domain.LedgerEntry{}, domain.ErrMissingType
	}
	if !typ.Valid() {
		return domain.LedgerEntry{}, domain.ErrMissingType
	}
	if category == "" {
		return domain.LedgerEntry{}, domain.ErrMissingCategory
	}
	if !inCatalog(Categories(typ), category) {
		return domain.LedgerEntry{}, domain.ErrUnknownCategory
	}

	entry := domain.LedgerEntry{
		ID:          uuid.NewString(),
		Amount:      amount,
		Type:        typ,
		Category:    category,
		Description: description,
		Date:        s.clock.Now(),
	}
	_, err = s.entries.Update(username, func(list *[]domain.LedgerEntry) error {
		*list = append(*list, entry)
		return nil
	})
	if err != nil {
		return domain.LedgerEntry{}, err
	}

	metrics.LedgerEntries.WithLabelValues(string(typ)).Inc()
	return entry, nil
}

// DeleteEntry removes the entry with the given id.
func (s *Service) DeleteEntry(id string) error {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return err
	}
	_, err = s.entries.Update(username, func(list *[]domain.LedgerEntry) error {
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

// Entries returns the acting user's full ledger, oldest first.
func (s *Service) Entries() ([]domain.LedgerEntry, error) {
	username, err := s.ident.CurrentUser()
	if err != nil {
		return nil, err
	}
	return s.entries.Load(username)
}

// Summary folds the acting user's ledger into income/expense/balance.
func (s *Service) Summary() (domain.BudgetSummary, error) {
	entries, err := s.Entries()
	if err != nil {
		return domain.BudgetSummary{}, err
	}
	return Summarize(entries), nil
}

// Breakdown returns the per-category totals of the given type for the
// acting user, dense over the catalog.
func (s *Service) Breakdown(typ domain.EntryType) ([]domain.CategoryTotal, error) {
	if !typ.Valid() {
		return nil, domain.ErrMissingType
	}
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	return BreakdownBy(entries, Categories(typ), typ), nil
}

func inCatalog(catalog []string, category string) bool {
	for _, c := range catalog {
		if c == category {
			return true
		}
	}
	return false
}
