// Package skilltree holds the per-student capability estimate that
// tailors every agent prompt, and the heuristic post-quiz update rule.
package skilltree

import (
	"fmt"
	"sort"
	"strings"
)

// Score bounds for every skill node.
const (
	MinScore = 0
	MaxScore = 5

	// BaselineScore is assigned to unknown nodes and used wholesale
	// when skill-tree generation fails.
	BaselineScore = 1
)

// Profile is a named numeric capability estimate for one student.
// Profiles are replaced whole, never partially mutated: Apply returns
// a fresh Profile and leaves the receiver untouched.
type Profile struct {
	nodes  []string
	scores map[string]int
}

// NewProfile builds a profile over the given nodes. Scores outside
// [MinScore, MaxScore] are clamped; nodes absent from scores get the
// baseline.
func NewProfile(nodes []string, scores map[string]int) Profile {
	p := Profile{
		nodes:  append([]string(nil), nodes...),
		scores: make(map[string]int, len(nodes)),
	}
	for _, node := range nodes {
		score, ok := scores[node]
		if !ok {
			score = BaselineScore
		}
		p.scores[node] = clamp(score)
	}
	return p
}

// Baseline returns a profile with every node at the baseline score.
func Baseline(nodes []string) Profile {
	return NewProfile(nodes, nil)
}

// Nodes returns the node names in display order.
func (p Profile) Nodes() []string {
	return append([]string(nil), p.nodes...)
}

// Score returns the score for a node, baseline for unknown nodes.
func (p Profile) Score(node string) int {
	if s, ok := p.scores[node]; ok {
		return s
	}
	return BaselineScore
}

// Scores returns a copy of the node→score mapping.
func (p Profile) Scores() map[string]int {
	out := make(map[string]int, len(p.scores))
	for k, v := range p.scores {
		out[k] = v
	}
	return out
}

// Apply returns the post-quiz profile. For every node below MaxScore:
// +1 when accuracy >= 0.8, +2 when accuracy is exactly 1.0, clamped at
// MaxScore. Nodes already at the maximum are untouched. This is a
// simulated reinforcement heuristic, not a mastery model: quiz items
// are not mapped to individual nodes.
func (p Profile) Apply(accuracy float64) Profile {
	next := NewProfile(p.nodes, p.scores)
	if accuracy < 0.8 {
		return next
	}

	increment := 1
	if accuracy == 1.0 {
		increment = 2
	}

	for node, score := range next.scores {
		if score < MaxScore {
			next.scores[node] = clamp(score + increment)
		}
	}
	return next
}

// PromptBlock renders the descriptive block injected into every agent
// prompt.
func (p Profile) PromptBlock(subject, topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student Profile (Skill-Tree Analysis - %s):\n", subject)
	fmt.Fprintf(&b, "Teaching Topic: %s\n", topic)
	fmt.Fprintf(&b, "Core Abilities (Scores %d-%d, where %d is highest):\n", MinScore, MaxScore, MaxScore)
	for _, node := range p.nodes {
		fmt.Fprintf(&b, "- %s: Level %d\n", node, p.scores[node])
	}

	return b.String()
}

// String renders the profile for logs and console output.
func (p Profile) String() string {
	nodes := p.Nodes()
	if len(nodes) == 0 {
		nodes = make([]string, 0, len(p.scores))
		for n := range p.scores {
			nodes = append(nodes, n)
		}
		sort.Strings(nodes)
	}

	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, fmt.Sprintf("%s=%d", n, p.scores[n]))
	}
	return strings.Join(parts, ", ")
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
