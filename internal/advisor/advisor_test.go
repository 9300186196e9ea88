package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moneylens/backend/internal/engine"
)

func TestNewWithoutKeyDisablesAdvisor(t *testing.T) {
	assert.Nil(t, New("", "whatever"))
}

func TestBuildPrompt(t *testing.T) {
	summary := &engine.Summary{
		MonthlyIncome:  50000,
		MonthlyExpense: 20000,
		MonthlySavings: 30000,
		HealthScore:    80,
	}

	prompt := BuildPrompt("Alice", summary)
	assert.Contains(t, prompt, "Alice has a monthly income of 50000")
	assert.Contains(t, prompt, "monthly expenses of 20000")
	assert.Contains(t, prompt, "monthly savings of 30000")
	assert.Contains(t, prompt, "80 out of 100")

	anonymous := BuildPrompt("", summary)
	assert.Contains(t, anonymous, "The user has a monthly income")
}
