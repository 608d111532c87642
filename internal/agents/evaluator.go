// Package agents holds the prompt-construction and delegation layer:
// each agent composes a role-specific prompt from the student's skill
// profile and task inputs, calls the text-generation client, and parses
// structured output where the role expects it.
package agents

import (
	"context"
	"fmt"

	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/rubric"
)

// Evaluator grades a lesson plan against the 5-D CIDDP standard.
type Evaluator struct {
	provider llm.Provider
}

// NewEvaluator creates an evaluator backed by the given provider.
func NewEvaluator(provider llm.Provider) *Evaluator {
	return &Evaluator{provider: provider}
}

// Evaluate sends the plan for a CIDDP verdict and parses the result.
// A generation failure is returned as an error; a verdict that parses
// to zero scores comes back as a degraded scorecard, not an error.
func (e *Evaluator) Evaluate(ctx context.Context, plan, profileBlock string) (rubric.Scorecard, error) {
	ctx = llm.WithPurpose(ctx, "evaluate")

	resp, err := e.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleEvaluator,
		System: evaluatorSystemPrompt(profileBlock),
		User:   buildEvaluatorUserMessage(plan),
	})
	if err != nil {
		return rubric.Scorecard{}, fmt.Errorf("evaluate plan: %w", err)
	}

	return rubric.ParseScorecard(resp.Content), nil
}
