package engine

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// defaultCurrency is used when the profile carries no currency symbol.
const defaultCurrency = "₹"

var amountPrinter = message.NewPrinter(language.English)

// money renders an amount as a grouped whole number with a currency symbol,
// e.g. "₹12,500".
func money(symbol string, amount float64) string {
	if symbol == "" {
		symbol = defaultCurrency
	}
	return amountPrinter.Sprintf("%s%d", symbol, int64(math.Round(amount)))
}
