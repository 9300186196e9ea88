package engine

import (
	"fmt"
	"math"

	"github.com/moneylens/backend/internal/model"
)

// HealthScore is the composite 0-100 wellbeing indicator.
type HealthScore struct {
	Score     int             `json:"score"`
	Rating    string          `json:"rating"`
	Breakdown HealthBreakdown `json:"breakdown"`
}

// HealthBreakdown exposes the raw factors behind the score.
type HealthBreakdown struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	SavingsRate    string  `json:"savingsRate"`
	MonthlySavings float64 `json:"monthlySavings"`
}

// savingsRate is (income - expense) / income, 0 when income is not positive.
func savingsRate(monthlyIncome, monthlyExpense float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	return (monthlyIncome - monthlyExpense) / monthlyIncome
}

// scoreHealth starts from a baseline of 50 and applies income, savings-rate
// and goal-completion factors. The savings-rate penalty only applies when
// there is income to rate: a profile with no income at all stays at the
// income-factor result instead of being pushed down 20 points.
func (e *Engine) scoreHealth(monthlyIncome, monthlyExpense float64, goals []*model.Goal) *HealthScore {
	score := 50.0

	switch {
	case monthlyIncome > e.thresholds.HighMonthlyIncome:
		score += 20
	case monthlyIncome > e.thresholds.ModerateMonthlyIncome:
		score += 10
	}

	rate := savingsRate(monthlyIncome, monthlyExpense)
	if monthlyIncome > 0 {
		switch {
		case rate > e.thresholds.StrongSavingsRate:
			score += 20
		case rate > e.thresholds.ModestSavingsRate:
			score += 10
		case rate <= 0:
			score -= 20
		}
	}

	if len(goals) > 0 {
		completed := 0
		for _, g := range goals {
			if g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount {
				completed++
			}
		}
		score += float64(completed) / float64(len(goals)) * 10
	}

	score = math.Max(0, math.Min(100, score))
	final := int(math.Round(score))

	return &HealthScore{
		Score:  final,
		Rating: rating(final),
		Breakdown: HealthBreakdown{
			MonthlyIncome:  monthlyIncome,
			SavingsRate:    fmt.Sprintf("%.1f%%", rate*100),
			MonthlySavings: monthlyIncome - monthlyExpense,
		},
	}
}

func rating(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}
