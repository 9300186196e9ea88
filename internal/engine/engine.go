// Package engine is the financial analytics engine: a deterministic,
// rule-based computation that turns raw income, expense and goal collections
// into scores, insights and suggestions.
//
// The engine is a pure function of its inputs and an explicit "now"
// timestamp. It performs no I/O, holds no state between calls, and is safe to
// run concurrently for any number of users.
package engine

import (
	"fmt"
	"time"

	"github.com/moneylens/backend/internal/model"
)

// Engine evaluates user finances against a fixed set of thresholds.
type Engine struct {
	thresholds Thresholds
}

// New returns an engine using the given thresholds.
func New(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Summary is the flat numeric digest of one analysis. It stays flat so
// downstream consumers (including prompt templates) can interpolate fields
// directly.
type Summary struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	MonthlyExpense float64 `json:"monthlyExpense"`
	MonthlySavings float64 `json:"monthlySavings"`
	HealthScore    int     `json:"healthScore"`
}

// Analysis groups the per-domain sub-results.
type Analysis struct {
	Spending *SpendingAnalysis `json:"spending"`
	Income   *IncomeAnalysis   `json:"income"`
	Goals    *GoalAnalysis     `json:"goals"`
}

// Result is the complete outcome of one analysis call.
type Result struct {
	Success         bool             `json:"success"`
	Summary         *Summary         `json:"summary,omitempty"`
	Analysis        *Analysis        `json:"analysis,omitempty"`
	Health          *HealthScore     `json:"health,omitempty"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
	Alerts          []Alert          `json:"alerts,omitempty"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

// Analyze runs the full pipeline over one user's records. The profile is
// optional context; now anchors every time-window computation so identical
// inputs always produce identical output.
//
// Analyze never panics outward: any unexpected failure is converted into a
// Result with Success=false and a human-readable message. No partial result
// is returned on failure.
func (e *Engine) Analyze(incomes []*model.Income, expenses []*model.Expense, goals []*model.Goal, profile *model.User, now time.Time) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			res = &Result{
				Success: false,
				Error:   fmt.Sprintf("%v", r),
				Message: "Financial analysis failed",
			}
		}
	}()

	currency := defaultCurrency
	if profile != nil && profile.Currency != "" {
		currency = profile.Currency
	}

	in := incomeTxns(incomes)
	ex := expenseTxns(expenses)

	monthlyIncome := monthlyTotal(in, now)
	if monthlyIncome == 0 && len(incomes) == 0 && profile != nil {
		// Profile income is the last-resort signal when no records exist.
		monthlyIncome = profile.MonthlyIncome
	}
	monthlyExpense := monthlyTotal(ex, now)
	monthlySavings := monthlyIncome - monthlyExpense

	spending := e.analyzeSpending(ex, currency)
	income := e.analyzeIncome(in)
	goalAnalysis := e.analyzeGoals(goals, monthlySavings)
	health := e.scoreHealth(monthlyIncome, monthlyExpense, goals)

	return &Result{
		Success: true,
		Summary: &Summary{
			MonthlyIncome:  monthlyIncome,
			MonthlyExpense: monthlyExpense,
			MonthlySavings: monthlySavings,
			HealthScore:    health.Score,
		},
		Analysis: &Analysis{
			Spending: spending,
			Income:   income,
			Goals:    goalAnalysis,
		},
		Health:          health,
		Recommendations: e.recommend(spending, monthlyIncome, monthlyExpense, len(goals)),
		Alerts:          e.alerts(ex, goals, now, currency),
	}
}
