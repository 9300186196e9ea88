// Package advisor turns an analysis summary into free-text advice via the
// Anthropic Messages API. It is an optional collaborator: when no API key is
// configured the service simply reports the feature as unavailable.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/moneylens/backend/internal/engine"
)

const systemPrompt = "You are a pragmatic personal-finance coach. " +
	"Answer in at most four short sentences, concrete and non-judgmental. " +
	"Never recommend specific securities."

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// Advisor wraps the Anthropic client.
type Advisor struct {
	client anthropic.Client
	model  string
}

// New creates an advisor. Returns nil when apiKey is empty, which callers
// treat as "advice disabled".
func New(apiKey, model string) *Advisor {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// BuildPrompt renders the flat summary digest the model sees. The summary
// fields interpolate directly because the engine keeps them flat on purpose.
func BuildPrompt(name string, s *engine.Summary) string {
	if name == "" {
		name = "The user"
	}
	return fmt.Sprintf(
		"%s has a monthly income of %.0f, monthly expenses of %.0f and monthly savings of %.0f. "+
			"Their financial health score is %d out of 100. "+
			"Give them practical advice for the coming month.",
		name, s.MonthlyIncome, s.MonthlyExpense, s.MonthlySavings, s.HealthScore)
}

// Advise sends the digest and returns the model's text.
func (a *Advisor) Advise(ctx context.Context, name string, summary *engine.Summary) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 512,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(name, summary))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("advisor request: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
