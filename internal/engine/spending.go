package engine

import "fmt"

// SpendingAnalysis is the expense-side pattern result.
type SpendingAnalysis struct {
	Message           string          `json:"message,omitempty"`
	TotalSpent        float64         `json:"totalSpent,omitempty"`
	CategoryBreakdown []CategoryShare `json:"categoryBreakdown,omitempty"`
	TopCategory       *CategoryShare  `json:"topCategory,omitempty"`
	Insights          []string        `json:"insights,omitempty"`
	Suggestions       []string        `json:"suggestions"`
}

// analyzeSpending builds the category breakdown and derives insights and
// suggestions from it. All applicable suggestion rules fire independently.
func (e *Engine) analyzeSpending(expenses []txn, currency string) *SpendingAnalysis {
	if len(expenses) == 0 {
		return &SpendingAnalysis{
			Message:     "No expense data available for analysis",
			Suggestions: []string{"Start tracking your expenses to get insights"},
		}
	}

	shares := breakdown(expenses)
	total := totalAmount(expenses)

	out := &SpendingAnalysis{
		TotalSpent:        total,
		CategoryBreakdown: shares,
	}
	if len(shares) > 0 {
		top := shares[0]
		out.TopCategory = &top
	}

	if out.TopCategory != nil && out.TopCategory.Percentage > e.thresholds.TopCategoryShare {
		out.Insights = append(out.Insights, fmt.Sprintf(
			"%s accounts for %.1f%% of your spending. Consider reducing it.",
			out.TopCategory.Category, out.TopCategory.Percentage))
	}
	if total > 0 {
		out.Insights = append(out.Insights, fmt.Sprintf(
			"Your average daily spending is %s.", money(currency, total/30)))
	}

	for _, share := range shares {
		switch share.Category {
		case "Food":
			if share.Percentage > e.thresholds.FoodShare {
				out.Suggestions = append(out.Suggestions,
					"Try cooking at home more often to cut food costs")
			}
		case "Shopping":
			if share.Percentage > e.thresholds.ShoppingShare {
				out.Suggestions = append(out.Suggestions,
					"Wait 24 hours before making non-essential purchases")
			}
		case "Entertainment":
			if share.Percentage > e.thresholds.EntertainmentShare {
				out.Suggestions = append(out.Suggestions,
					"Look for low-cost entertainment alternatives")
			}
		}
	}
	if len(out.Suggestions) == 0 {
		out.Suggestions = []string{"Your spending looks balanced across categories"}
	}
	return out
}
