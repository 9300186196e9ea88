package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/moneylens/backend/internal/model"
)

// Alert is a threshold-triggered warning.
type Alert struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// alerts runs an independent pass over the raw collections: weekly overspend
// first, then near-deadline under-funded goals in input order, so output
// ordering is deterministic.
func (e *Engine) alerts(expenses []txn, goals []*model.Goal, now time.Time, currency string) []Alert {
	var out []Alert

	weekly, _ := windowTotal(expenses, now.AddDate(0, 0, -7), now)
	if weekly > e.thresholds.WeeklyOverspendLimit {
		out = append(out, Alert{
			Type:     "warning",
			Priority: "medium",
			Message:  fmt.Sprintf("You spent %s in the last 7 days.", money(currency, weekly)),
		})
	}

	for _, g := range goals {
		if g.Deadline == nil {
			// Goals without a deadline carry no urgency.
			continue
		}
		daysLeft := int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))

		var progress float64
		if g.TargetAmount > 0 {
			progress = round1(g.CurrentAmount / g.TargetAmount * 100)
		}

		if daysLeft < e.thresholds.DeadlineSoonDays && progress < e.thresholds.LowGoalProgress {
			out = append(out, Alert{
				Type:     "urgent",
				Priority: "high",
				Message: fmt.Sprintf("Goal %q is %d days from its deadline and only %.1f%% funded.",
					g.Title, daysLeft, progress),
			})
		}
	}
	return out
}
