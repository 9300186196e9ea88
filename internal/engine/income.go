package engine

// IncomeAnalysis is the income-side pattern result.
type IncomeAnalysis struct {
	Message       string          `json:"message,omitempty"`
	TotalIncome   float64         `json:"totalIncome,omitempty"`
	AverageIncome float64         `json:"averageIncome,omitempty"`
	IncomeSources []CategoryShare `json:"incomeSources,omitempty"`
	Insights      []string        `json:"insights,omitempty"`
	Suggestions   []string        `json:"suggestions"`
}

func (e *Engine) analyzeIncome(incomes []txn) *IncomeAnalysis {
	if len(incomes) == 0 {
		return &IncomeAnalysis{
			Message:     "No income data available for analysis",
			Suggestions: []string{"Add your income sources to get insights"},
		}
	}

	total := totalAmount(incomes)
	out := &IncomeAnalysis{
		TotalIncome:   total,
		AverageIncome: total / float64(len(incomes)),
		IncomeSources: breakdown(incomes),
	}

	if len(out.IncomeSources) == 1 {
		out.Insights = append(out.Insights,
			"All your income comes from a single source. Consider diversifying.")
	}

	out.Suggestions = []string{
		"Explore passive income opportunities like investments",
		"Consider freelance work to supplement your income",
	}
	return out
}
