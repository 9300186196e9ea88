package engine

import (
	"time"

	"github.com/moneylens/backend/internal/model"
)

// txn is the engine's internal view of a dated, categorized amount. Incomes
// and expenses are converted to this shape once so every aggregation below
// works for both.
type txn struct {
	amount   float64
	category string
	date     time.Time
	dated    bool
}

func incomeTxns(incomes []*model.Income) []txn {
	out := make([]txn, 0, len(incomes))
	for _, in := range incomes {
		t := txn{amount: in.Amount, category: in.Category}
		if in.Category == "" && in.Source != "" {
			t.category = in.Source
		}
		t.date, t.dated = in.When()
		out = append(out, t)
	}
	return out
}

func expenseTxns(expenses []*model.Expense) []txn {
	out := make([]txn, 0, len(expenses))
	for _, e := range expenses {
		t := txn{amount: e.Amount, category: e.Category}
		t.date, t.dated = e.When()
		out = append(out, t)
	}
	return out
}

// dateOnly strips the time of day so window inclusion compares calendar
// dates, not instants.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// windowTotal sums amounts whose date falls in [from, to], compared by
// calendar date. Records without a resolvable date are excluded. The count of
// matched records is returned alongside the sum.
func windowTotal(txns []txn, from, to time.Time) (float64, int) {
	lo, hi := dateOnly(from), dateOnly(to)
	var sum float64
	var n int
	for _, t := range txns {
		if !t.dated {
			continue
		}
		d := dateOnly(t.date)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		sum += t.amount
		n++
	}
	return sum, n
}

func totalAmount(txns []txn) float64 {
	var sum float64
	for _, t := range txns {
		sum += t.amount
	}
	return sum
}

// monthlyTotal sums amounts in the trailing 30-day window ending at now.
//
// Fallback rule: when the window is empty but the collection is not, the
// all-time sum is returned instead of 0. This silently changes the meaning of
// the "monthly" figure for dormant accounts, and that is intentional — a
// stale but real income signal beats "no recent activity looks like zero".
// Do not "correct" this to return 0.
func monthlyTotal(txns []txn, now time.Time) float64 {
	sum, n := windowTotal(txns, now.AddDate(0, 0, -30), now)
	if n > 0 {
		return sum
	}
	if len(txns) == 0 {
		return 0
	}
	return totalAmount(txns)
}
