package skilltree

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/rubric"
)

// Builder estimates an initial skill profile from the expert-tier model.
type Builder struct {
	provider llm.Provider
	subject  string
	nodes    []string
}

// NewBuilder creates a skill-tree builder for the given subject nodes.
func NewBuilder(provider llm.Provider, subject string, nodes []string) *Builder {
	return &Builder{provider: provider, subject: subject, nodes: nodes}
}

// Generate asks the expert model for a score per node given the
// student's self-reported level. Any failure — generation or parsing —
// falls back to a baseline profile instead of propagating: a session
// with a crude default profile beats no session at all.
func (b *Builder) Generate(ctx context.Context, level string) Profile {
	ctx = llm.WithPurpose(ctx, "skill-tree")

	resp, err := b.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleExpert,
		System: fmt.Sprintf("You are a %s tutor assessing a new student.", b.subject),
		User:   b.buildUserMessage(level),
		Schema: profileSchema(b.nodes),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: skill-tree generation failed, using baseline profile: %v\n", err)
		return Baseline(b.nodes)
	}

	var scores map[string]int
	if err := rubric.ExtractJSON(resp.Content, &scores); err != nil {
		fmt.Fprintf(os.Stderr, "warning: skill-tree response unreadable, using baseline profile: %v\n", err)
		return Baseline(b.nodes)
	}

	return NewProfile(b.nodes, scores)
}

func (b *Builder) buildUserMessage(level string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "The student is %s.\n", level)
	fmt.Fprintf(&sb, "Build a Skill-Tree with the following %d nodes: %s.\n", len(b.nodes), strings.Join(b.nodes, ", "))
	fmt.Fprintf(&sb, "Rate the student's expected capability for each node on a scale of %d (no knowledge) to %d (expert).\n", MinScore, MaxScore)
	sb.WriteString("Output the result ONLY as a JSON object where keys are the skill names and values are the scores.")

	return sb.String()
}
