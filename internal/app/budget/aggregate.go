package budget

import (
	"sort"

	"github.com/daykeep/daykeep/internal/domain"
)

// Summarize folds a ledger into totals. Derived on read, never maintained
// incrementally. Empty input yields all zeros.
func Summarize(entries []domain.LedgerEntry) domain.BudgetSummary {
	var sum domain.BudgetSummary
	for _, e := range entries {
		switch e.Type {
		case domain.EntryIncome:
			sum.Income += e.Amount
		case domain.EntryExpense:
			sum.Expense += e.Amount
		}
	}
	sum.Balance = sum.Income - sum.Expense
	return sum
}

// BreakdownBy sums entries of the given type per category. Every catalog
// category appears even with no entries; entries tagged outside the catalog
// are ignored. Rows are sorted descending by amount, ties keeping catalog
// order (stable sort), with percentage of the type's total (0 when the
// total is 0).
func BreakdownBy(entries []domain.LedgerEntry, catalog []string, typ domain.EntryType) []domain.CategoryTotal {
	sums := make(map[string]float64, len(catalog))
	for _, c := range catalog {
		sums[c] = 0
	}

	var total float64
	for _, e := range entries {
		if e.Type != typ {
			continue
		}
		if _, ok := sums[e.Category]; !ok {
			continue
		}
		sums[e.Category] += e.Amount
		total += e.Amount
	}

	out := make([]domain.CategoryTotal, 0, len(catalog))
	for _, c := range catalog {
		row := domain.CategoryTotal{Category: c, Amount: sums[c]}
		if total > 0 {
			row.Percentage = sums[c] / total * 100.0
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}
