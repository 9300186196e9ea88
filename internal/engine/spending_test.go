package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine { return New(DefaultThresholds()) }

func TestAnalyzeSpendingEmpty(t *testing.T) {
	got := newTestEngine().analyzeSpending(nil, defaultCurrency)

	assert.Equal(t, "No expense data available for analysis", got.Message)
	assert.Equal(t, []string{"Start tracking your expenses to get insights"}, got.Suggestions)
	assert.Zero(t, got.TotalSpent)
	assert.Nil(t, got.TopCategory)
	assert.Empty(t, got.CategoryBreakdown)
}

func TestAnalyzeSpendingDominantCategory(t *testing.T) {
	// Food 4000 of 5000 total: 80% share trips the top-category insight, and
	// the daily average works out to 5000/30 ~ 167.
	got := newTestEngine().analyzeSpending([]txn{
		{amount: 4000, category: "Food"},
		{amount: 1000, category: "Transport"},
	}, "₹")

	assert.Equal(t, 5000.0, got.TotalSpent)
	require.NotNil(t, got.TopCategory)
	assert.Equal(t, "Food", got.TopCategory.Category)
	assert.Equal(t, 80.0, got.TopCategory.Percentage)

	require.Len(t, got.Insights, 2)
	assert.Equal(t, "Food accounts for 80.0% of your spending. Consider reducing it.", got.Insights[0])
	assert.Equal(t, "Your average daily spending is ₹167.", got.Insights[1])

	// Food share > 30% fires the cook-at-home suggestion.
	assert.Contains(t, got.Suggestions, "Try cooking at home more often to cut food costs")
}

func TestAnalyzeSpendingSuggestionRulesFireIndependently(t *testing.T) {
	got := newTestEngine().analyzeSpending([]txn{
		{amount: 3500, category: "Food"},          // 35%
		{amount: 2500, category: "Shopping"},      // 25%
		{amount: 2000, category: "Entertainment"}, // 20%
		{amount: 2000, category: "Rent"},          // 20%
	}, "₹")

	assert.Equal(t, []string{
		"Try cooking at home more often to cut food costs",
		"Wait 24 hours before making non-essential purchases",
		"Look for low-cost entertainment alternatives",
	}, got.Suggestions)
}

func TestAnalyzeSpendingBalanced(t *testing.T) {
	got := newTestEngine().analyzeSpending([]txn{
		{amount: 25, category: "Food"},
		{amount: 25, category: "Rent"},
		{amount: 25, category: "Transport"},
		{amount: 25, category: "Utilities"},
	}, "₹")

	assert.Equal(t, []string{"Your spending looks balanced across categories"}, got.Suggestions)
	// 25% each: no category crosses the 40% insight line, daily average remains.
	require.Len(t, got.Insights, 1)
	assert.Equal(t, "Your average daily spending is ₹3.", got.Insights[0])
}
