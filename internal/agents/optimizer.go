package agents

import (
	"context"
	"fmt"

	"github.com/ameya/eduplan/internal/llm"
)

// Optimizer drafts and revises lesson plans. Its output is used
// verbatim as the next candidate's text: the instruction suppresses
// commentary outside the plan body, but the remote model is untrusted,
// so downstream consumers treat the full returned text as the plan.
type Optimizer struct {
	provider llm.Provider
}

// NewOptimizer creates an optimizer backed by the given provider.
func NewOptimizer(provider llm.Provider) *Optimizer {
	return &Optimizer{provider: provider}
}

// Draft generates the initial lesson plan for a topic.
func (o *Optimizer) Draft(ctx context.Context, topic, focus, profileBlock string) (string, error) {
	ctx = llm.WithPurpose(ctx, "draft")

	resp, err := o.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleOptimizer,
		System: draftSystemPrompt(topic, profileBlock),
		User:   buildDraftUserMessage(focus),
	})
	if err != nil {
		return "", fmt.Errorf("draft initial plan: %w", err)
	}

	return resp.Content, nil
}

// Optimize produces a revised plan from the previous plan, the
// evaluator feedback, and an optional analyst insertion.
func (o *Optimizer) Optimize(ctx context.Context, plan, feedback, insertion, profileBlock string) (string, error) {
	ctx = llm.WithPurpose(ctx, "optimize")

	resp, err := o.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleOptimizer,
		System: optimizeSystemPrompt(profileBlock, insertion),
		User:   buildOptimizeUserMessage(plan, feedback),
	})
	if err != nil {
		return "", fmt.Errorf("optimize plan: %w", err)
	}

	return resp.Content, nil
}
