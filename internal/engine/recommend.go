package engine

import "fmt"

// Recommendations is the ranked, de-duplicated advice list, split into what
// to act on now and a fixed long-term list.
type Recommendations struct {
	Immediate []string `json:"immediate"`
	LongTerm  []string `json:"longTerm"`
}

// immediateCap limits the immediate list to what a user will actually read.
const immediateCap = 3

var longTermRecommendations = []string{
	"Invest in index funds for long-term growth",
	"Review your insurance coverage once a year",
	"Plan for retirement with recurring contributions",
}

var fallbackRecommendations = []string{
	"Track your expenses for 30 days",
	"Set a monthly budget",
	"Start with one small savings goal",
}

// recommend merges the analyzer outputs into actionable advice. Rules fire in
// priority order; if none fire the caller still gets the fallback list so
// there is always actionable content.
func (e *Engine) recommend(spending *SpendingAnalysis, monthlyIncome, monthlyExpense float64, goalCount int) *Recommendations {
	var immediate []string

	if spending != nil && spending.TopCategory != nil {
		immediate = append(immediate, fmt.Sprintf(
			"Reduce spending on %s by 10%%", spending.TopCategory.Category))
	}

	rate := savingsRate(monthlyIncome, monthlyExpense)
	if rate < e.thresholds.TargetSavingsRate {
		immediate = append(immediate, "Aim to save at least 20% of your income")
	}

	monthlySavings := monthlyIncome - monthlyExpense
	if monthlySavings*3 < monthlyExpense {
		immediate = append(immediate, "Build a 3-month emergency fund")
	}

	if goalCount > e.thresholds.MaxFocusGoals {
		immediate = append(immediate, "Focus on 2-3 main goals instead of spreading savings thin")
	}

	if len(immediate) == 0 {
		immediate = append(immediate, fallbackRecommendations...)
	}
	if len(immediate) > immediateCap {
		immediate = immediate[:immediateCap]
	}

	return &Recommendations{
		Immediate: immediate,
		LongTerm:  longTermRecommendations,
	}
}
