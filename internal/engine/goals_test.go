package engine

import (
	"testing"

	"github.com/moneylens/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessGoal(t *testing.T) {
	e := newTestEngine()

	t.Run("needs-attention between 12 and 24 months", func(t *testing.T) {
		got := e.assessGoal(&model.Goal{
			Title: "House deposit", TargetAmount: 120000, CurrentAmount: 20000,
		}, 5000)

		assert.Equal(t, 100000.0, got.RemainingAmount)
		assert.Equal(t, 20, got.MonthsNeeded)
		assert.InDelta(t, 16.7, got.ProgressPercent, 1e-9)
		assert.Equal(t, GoalNeedsAttention, got.Status)
		assert.Equal(t, "You are on track but could get there faster.", got.Suggestion)
	})

	t.Run("on-track within 12 months", func(t *testing.T) {
		got := e.assessGoal(&model.Goal{Title: "Trip", TargetAmount: 60000, CurrentAmount: 30000}, 5000)
		assert.Equal(t, 6, got.MonthsNeeded)
		assert.Equal(t, GoalOnTrack, got.Status)
	})

	t.Run("critical beyond 24 months", func(t *testing.T) {
		got := e.assessGoal(&model.Goal{Title: "Car", TargetAmount: 300000, CurrentAmount: 0}, 10000)
		assert.Equal(t, 30, got.MonthsNeeded)
		assert.Equal(t, GoalCritical, got.Status)
	})

	t.Run("no savings yields the 999 sentinel, not infinity", func(t *testing.T) {
		for _, savings := range []float64{0, -2500} {
			got := e.assessGoal(&model.Goal{Title: "Fund", TargetAmount: 10000}, savings)
			assert.Equal(t, 999, got.MonthsNeeded)
			assert.Equal(t, GoalCritical, got.Status)
		}
	})

	t.Run("completed wins over every other bucket", func(t *testing.T) {
		got := e.assessGoal(&model.Goal{Title: "Done", TargetAmount: 5000, CurrentAmount: 5000}, 0)
		assert.Equal(t, GoalCompleted, got.Status)
		assert.Equal(t, "Goal achieved! Set a new one.", got.Suggestion)
	})

	t.Run("over-funded goal keeps its negative remainder", func(t *testing.T) {
		got := e.assessGoal(&model.Goal{Title: "Done", TargetAmount: 5000, CurrentAmount: 6000}, 1000)
		assert.Equal(t, -1000.0, got.RemainingAmount)
		assert.Equal(t, 120.0, got.ProgressPercent)
		assert.Equal(t, GoalCompleted, got.Status)
		assert.GreaterOrEqual(t, got.MonthsNeeded, 0)
	})

	t.Run("non-positive target reads as zero progress", func(t *testing.T) {
		got := e.assessGoal(&model.Goal{Title: "Broken", TargetAmount: 0, CurrentAmount: 100}, 1000)
		assert.Zero(t, got.ProgressPercent)
		assert.GreaterOrEqual(t, got.MonthsNeeded, 0)
	})
}

func TestAnalyzeGoals(t *testing.T) {
	e := newTestEngine()

	t.Run("counts completed and critical goals", func(t *testing.T) {
		goals := []*model.Goal{
			{Title: "Done", TargetAmount: 1000, CurrentAmount: 1000},
			{Title: "Slow", TargetAmount: 500000, CurrentAmount: 0},
			{Title: "Fine", TargetAmount: 10000, CurrentAmount: 5000},
		}
		got := e.analyzeGoals(goals, 5000)
		require.Len(t, got.Goals, 3)
		assert.Equal(t, 1, got.CompletedGoals)
		assert.Equal(t, 1, got.CriticalGoals)
		assert.Empty(t, got.Insights)
	})

	t.Run("negative savings adds the overspending insight", func(t *testing.T) {
		got := e.analyzeGoals([]*model.Goal{{Title: "G", TargetAmount: 1000}}, -100)
		require.Len(t, got.Insights, 1)
		assert.Equal(t, "You are spending more than you earn, so goals cannot progress.", got.Insights[0])
	})

	t.Run("no goals", func(t *testing.T) {
		got := e.analyzeGoals(nil, 5000)
		assert.Equal(t, "No savings goals set", got.Message)
		assert.Empty(t, got.Goals)
	})
}
