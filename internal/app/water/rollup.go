package water

import (
	"time"

	"github.com/daykeep/daykeep/internal/domain"
)

// DayAmount sums the entries dated date.
func DayAmount(entries []domain.WaterEntry, date string) int {
	total := 0
	for _, e := range entries {
		if e.Date() == date {
			total += e.AmountML
		}
	}
	return total
}

// WeeklyTotals folds the log into the 7 calendar dates ending now's date,
// oldest first. Always exactly 7 rows regardless of data sparsity; days
// with no entries read 0.
func WeeklyTotals(entries []domain.WaterEntry, now time.Time) []domain.DayTotal {
	byDate := make(map[string]int)
	for _, e := range entries {
		byDate[e.Date()] += e.AmountML
	}

	out := make([]domain.DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		date := domain.DateOf(now.AddDate(0, 0, -i))
		out = append(out, domain.DayTotal{Date: date, AmountML: byDate[date]})
	}
	return out
}
