package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown(t *testing.T) {
	t.Run("groups, ranks and computes shares", func(t *testing.T) {
		shares := breakdown([]txn{
			{amount: 1000, category: "Transport"},
			{amount: 3000, category: "Food"},
			{amount: 1000, category: "Food"},
		})
		require.Len(t, shares, 2)
		assert.Equal(t, CategoryShare{Category: "Food", Amount: 4000, Percentage: 80.0}, shares[0])
		assert.Equal(t, CategoryShare{Category: "Transport", Amount: 1000, Percentage: 20.0}, shares[1])
	})

	t.Run("amounts sum to the total and percentages to ~100", func(t *testing.T) {
		txns := []txn{
			{amount: 333.33, category: "A"},
			{amount: 333.33, category: "B"},
			{amount: 333.34, category: "C"},
		}
		shares := breakdown(txns)
		var amountSum, pctSum float64
		for _, s := range shares {
			amountSum += s.Amount
			pctSum += s.Percentage
		}
		assert.InDelta(t, totalAmount(txns), amountSum, 1e-9)
		assert.InDelta(t, 100.0, pctSum, 0.2)
	})

	t.Run("missing category coerces to Other", func(t *testing.T) {
		shares := breakdown([]txn{
			{amount: 10, category: ""},
			{amount: 5, category: "   "},
		})
		require.Len(t, shares, 1)
		assert.Equal(t, "Other", shares[0].Category)
		assert.Equal(t, 15.0, shares[0].Amount)
	})

	t.Run("zero total yields an empty breakdown", func(t *testing.T) {
		assert.Empty(t, breakdown(nil))
		assert.Empty(t, breakdown([]txn{{amount: 0, category: "Food"}}))
	})

	t.Run("equal amounts keep first-encountered order", func(t *testing.T) {
		txns := []txn{
			{amount: 100, category: "B"},
			{amount: 100, category: "A"},
			{amount: 100, category: "C"},
		}
		for i := 0; i < 50; i++ {
			shares := breakdown(txns)
			require.Len(t, shares, 3)
			assert.Equal(t, "B", shares[0].Category)
			assert.Equal(t, "A", shares[1].Category)
			assert.Equal(t, "C", shares[2].Category)
		}
	})
}
