package agents

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/rubric"
)

// Analyst predicts student mistakes. It has two contracts: a JSON
// concept→misconceptions mapping over a whole plan, and a free-text
// ranked mistake prediction for a single question.
type Analyst struct {
	provider llm.Provider
}

// NewAnalyst creates an analyst backed by the given provider.
func NewAnalyst(provider llm.Provider) *Analyst {
	return &Analyst{provider: provider}
}

// Misconceptions lists common misconceptions per concept found in the
// plan. Failures — generation or parsing — degrade to an empty map so
// a finished plan is never blocked on its appendix.
func (a *Analyst) Misconceptions(ctx context.Context, plan string) map[string][]string {
	ctx = llm.WithPurpose(ctx, "misconceptions")

	resp, err := a.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleAnalyst,
		System: misconceptionSystemPrompt,
		User:   buildMisconceptionUserMessage(plan),
		Schema: misconceptionSchema,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: misconception analysis failed: %v\n", err)
		return map[string][]string{}
	}

	var out map[string][]string
	if err := rubric.ExtractJSON(resp.Content, &out); err != nil {
		fmt.Fprintf(os.Stderr, "warning: misconception response unreadable: %v\n", err)
		return map[string][]string{}
	}
	return out
}

// PredictMistakes predicts the top error-prone points for one example
// question. The output is free text used verbatim; no parsing. On
// failure it returns an empty string so the loop proceeds without an
// analyst insertion for that iteration.
func (a *Analyst) PredictMistakes(ctx context.Context, question, profileBlock string) string {
	ctx = llm.WithPurpose(ctx, "predict-mistakes")

	resp, err := a.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleAnalyst,
		System: mistakePredictionSystemPrompt(profileBlock),
		User:   buildMistakePredictionUserMessage(question),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: mistake prediction failed: %v\n", err)
		return ""
	}

	return resp.Content
}

// FormatMisconceptions renders a misconception map as the appendix
// attached to a finished plan. Returns "" for an empty map. Concepts
// are sorted for deterministic output.
func FormatMisconceptions(misconceptions map[string][]string) string {
	if len(misconceptions) == 0 {
		return ""
	}

	concepts := make([]string, 0, len(misconceptions))
	for c := range misconceptions {
		concepts = append(concepts, c)
	}
	sort.Strings(concepts)

	var b strings.Builder
	b.WriteString("\n\n=== AVOID THESE COMMON MISTAKES ===\n")
	for _, concept := range concepts {
		fmt.Fprintf(&b, "\n%s:\n", concept)
		for _, m := range misconceptions[concept] {
			fmt.Fprintf(&b, "   - %s\n", m)
		}
	}
	return b.String()
}
