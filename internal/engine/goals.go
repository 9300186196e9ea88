package engine

import (
	"math"

	"github.com/moneylens/backend/internal/model"
)

// Goal statuses, first match wins in the order listed.
const (
	GoalCompleted      = "completed"
	GoalCritical       = "critical"
	GoalNeedsAttention = "needs-attention"
	GoalOnTrack        = "on-track"
)

// GoalAssessment is the per-goal projection result.
type GoalAssessment struct {
	Title           string  `json:"title"`
	ProgressPercent float64 `json:"progressPercent"`
	RemainingAmount float64 `json:"remainingAmount"`
	MonthsNeeded    int     `json:"monthsNeeded"`
	Status          string  `json:"status"`
	Suggestion      string  `json:"suggestion"`
}

// GoalAnalysis aggregates the per-goal assessments.
type GoalAnalysis struct {
	Message        string           `json:"message,omitempty"`
	Goals          []GoalAssessment `json:"goals,omitempty"`
	MonthlySavings float64          `json:"monthlySavings"`
	CompletedGoals int              `json:"completedGoals"`
	CriticalGoals  int              `json:"criticalGoals"`
	Insights       []string         `json:"insights,omitempty"`
}

// assessGoal projects one goal against the current monthly savings.
//
// RemainingAmount is deliberately not clamped below zero: an over-funded goal
// yields a negative remainder, which reads as completed.
func (e *Engine) assessGoal(goal *model.Goal, monthlySavings float64) GoalAssessment {
	remaining := goal.TargetAmount - goal.CurrentAmount

	var progress float64
	if goal.TargetAmount > 0 {
		progress = round1(goal.CurrentAmount / goal.TargetAmount * 100)
	}

	months := e.thresholds.NeverMonths
	if monthlySavings > 0 {
		months = int(math.Ceil(remaining / monthlySavings))
		if months < 0 {
			months = 0
		}
	}

	var status, suggestion string
	switch {
	case progress >= 100:
		status = GoalCompleted
		suggestion = "Goal achieved! Set a new one."
	case months > e.thresholds.CriticalMonths:
		status = GoalCritical
		suggestion = "This goal will take too long at the current pace. Increase savings or reduce the target."
	case months > e.thresholds.AttentionMonths:
		status = GoalNeedsAttention
		suggestion = "You are on track but could get there faster."
	default:
		status = GoalOnTrack
		suggestion = "Good progress! Keep going."
	}

	return GoalAssessment{
		Title:           goal.Title,
		ProgressPercent: progress,
		RemainingAmount: remaining,
		MonthsNeeded:    months,
		Status:          status,
		Suggestion:      suggestion,
	}
}

func (e *Engine) analyzeGoals(goals []*model.Goal, monthlySavings float64) *GoalAnalysis {
	out := &GoalAnalysis{MonthlySavings: monthlySavings}
	if len(goals) == 0 {
		out.Message = "No savings goals set"
		return out
	}

	for _, g := range goals {
		assessment := e.assessGoal(g, monthlySavings)
		out.Goals = append(out.Goals, assessment)
		if assessment.ProgressPercent >= 100 {
			out.CompletedGoals++
		}
		if assessment.Status == GoalCritical {
			out.CriticalGoals++
		}
	}

	if monthlySavings <= 0 {
		out.Insights = append(out.Insights,
			"You are spending more than you earn, so goals cannot progress.")
	}
	return out
}
