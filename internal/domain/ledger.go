package domain

import "time"

// ─── Budget Ledger Types ────────────────────────────────────────────────────

// EntryType classifies a ledger entry as money in or money out.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// LedgerEntry is one budget transaction. Entries are append-only and only
// ever removed by explicit delete-by-id.
type LedgerEntry struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Type        EntryType `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// BudgetSummary is the read-time fold over a ledger.
// Balance == Income - Expense always holds.
type BudgetSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// CategoryTotal is one row of a category breakdown. Categories with no
// entries still appear with zero amount.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}
