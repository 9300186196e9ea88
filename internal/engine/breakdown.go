package engine

import (
	"math"
	"sort"
	"strings"
)

// CategoryShare is one group's amount and its percentage of the total.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// fallbackCategory is the grouping key for records with no category.
const fallbackCategory = "Other"

// breakdown groups txns by category and returns shares sorted by amount
// descending. Ties keep first-encountered order, so identical inputs always
// produce identical output. A zero total yields an empty breakdown rather
// than divide-by-zero artifacts.
func breakdown(txns []txn) []CategoryShare {
	totals := make(map[string]float64)
	var order []string
	var total float64

	for _, t := range txns {
		cat := strings.TrimSpace(t.category)
		if cat == "" {
			cat = fallbackCategory
		}
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] += t.amount
		total += t.amount
	}

	if total == 0 {
		return nil
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, cat := range order {
		amount := totals[cat]
		shares = append(shares, CategoryShare{
			Category:   cat,
			Amount:     amount,
			Percentage: round1(amount / total * 100),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount > shares[j].Amount
	})
	return shares
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
