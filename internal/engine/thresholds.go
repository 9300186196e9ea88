package engine

// Thresholds collects every heuristic cutoff the engine applies. Keeping them
// in one structure keeps behavior identical while staying adjustable and
// independently testable.
type Thresholds struct {
	// Share-of-spending cutoffs, in percent of total spending.
	TopCategoryShare   float64
	FoodShare          float64
	ShoppingShare      float64
	EntertainmentShare float64

	// Monthly income levels, in currency units.
	HighMonthlyIncome     float64
	ModerateMonthlyIncome float64

	// Savings-rate cutoffs, as fractions of monthly income.
	StrongSavingsRate float64
	ModestSavingsRate float64
	TargetSavingsRate float64

	// Goal projection buckets, in months to completion.
	AttentionMonths int
	CriticalMonths  int

	// NeverMonths is the sentinel for "effectively never" when monthly
	// savings are zero or negative. It is a finite number on purpose:
	// downstream JSON consumers do not tolerate Infinity.
	NeverMonths int

	// Alerting.
	WeeklyOverspendLimit float64
	DeadlineSoonDays     int
	LowGoalProgress      float64

	// MaxFocusGoals is the goal count above which the engine recommends
	// narrowing focus.
	MaxFocusGoals int
}

// DefaultThresholds returns the production cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TopCategoryShare:   40,
		FoodShare:          30,
		ShoppingShare:      20,
		EntertainmentShare: 15,

		HighMonthlyIncome:     50000,
		ModerateMonthlyIncome: 25000,

		StrongSavingsRate: 0.3,
		ModestSavingsRate: 0.1,
		TargetSavingsRate: 0.2,

		AttentionMonths: 12,
		CriticalMonths:  24,
		NeverMonths:     999,

		WeeklyOverspendLimit: 10000,
		DeadlineSoonDays:     30,
		LowGoalProgress:      50,

		MaxFocusGoals: 3,
	}
}
