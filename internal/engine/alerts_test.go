package engine

import (
	"testing"
	"time"

	"github.com/moneylens/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlerts(t *testing.T) {
	e := newTestEngine()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("weekly overspend", func(t *testing.T) {
		expenses := []txn{
			{amount: 8000, date: now.AddDate(0, 0, -2), dated: true},
			{amount: 4500, date: now.AddDate(0, 0, -6), dated: true},
			{amount: 9000, date: now.AddDate(0, 0, -10), dated: true}, // outside the week
		}
		got := e.alerts(expenses, nil, now, "₹")
		require.Len(t, got, 1)
		assert.Equal(t, "warning", got[0].Type)
		assert.Equal(t, "medium", got[0].Priority)
		assert.Equal(t, "You spent ₹12,500 in the last 7 days.", got[0].Message)
	})

	t.Run("weekly spend at the limit stays quiet", func(t *testing.T) {
		expenses := []txn{{amount: 10000, date: now.AddDate(0, 0, -1), dated: true}}
		assert.Empty(t, e.alerts(expenses, nil, now, "₹"))
	})

	t.Run("near-deadline under-funded goal", func(t *testing.T) {
		deadline := now.AddDate(0, 0, 10)
		goals := []*model.Goal{{
			Title: "Emergency fund", TargetAmount: 10000, CurrentAmount: 3000,
			Deadline: &deadline,
		}}
		got := e.alerts(nil, goals, now, "₹")
		require.Len(t, got, 1)
		assert.Equal(t, "urgent", got[0].Type)
		assert.Equal(t, "high", got[0].Priority)
		assert.Equal(t, `Goal "Emergency fund" is 10 days from its deadline and only 30.0% funded.`, got[0].Message)
	})

	t.Run("goal without a deadline is skipped regardless of progress", func(t *testing.T) {
		goals := []*model.Goal{{Title: "No rush", TargetAmount: 10000, CurrentAmount: 0}}
		assert.Empty(t, e.alerts(nil, goals, now, "₹"))
	})

	t.Run("well-funded goal near deadline is fine", func(t *testing.T) {
		deadline := now.AddDate(0, 0, 5)
		goals := []*model.Goal{{
			Title: "Nearly there", TargetAmount: 10000, CurrentAmount: 8000,
			Deadline: &deadline,
		}}
		assert.Empty(t, e.alerts(nil, goals, now, "₹"))
	})

	t.Run("overspend precedes goal alerts and goals keep input order", func(t *testing.T) {
		d1 := now.AddDate(0, 0, 3)
		d2 := now.AddDate(0, 0, 8)
		goals := []*model.Goal{
			{Title: "B", TargetAmount: 100, Deadline: &d1},
			{Title: "A", TargetAmount: 100, Deadline: &d2},
		}
		expenses := []txn{{amount: 20000, date: now, dated: true}}
		got := e.alerts(expenses, goals, now, "₹")
		require.Len(t, got, 3)
		assert.Equal(t, "warning", got[0].Type)
		assert.Contains(t, got[1].Message, `"B"`)
		assert.Contains(t, got[2].Message, `"A"`)
	})
}
