package skilltree

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ameya/eduplan/internal/llm"
)

var testNodes = []string{
	"Processes & Threads",
	"Memory Management",
	"Concurrency & Sync",
}

func TestNewProfile_ClampsAndDefaults(t *testing.T) {
	p := NewProfile(testNodes, map[string]int{
		"Processes & Threads": 9,  // above max
		"Memory Management":   -3, // below min
		// Concurrency & Sync absent
	})

	if got := p.Score("Processes & Threads"); got != MaxScore {
		t.Errorf("expected clamp to %d, got %d", MaxScore, got)
	}
	if got := p.Score("Memory Management"); got != MinScore {
		t.Errorf("expected clamp to %d, got %d", MinScore, got)
	}
	if got := p.Score("Concurrency & Sync"); got != BaselineScore {
		t.Errorf("expected baseline %d for missing node, got %d", BaselineScore, got)
	}
}

func TestApply_UpdateRule(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		start    int
		want     int
	}{
		{"below threshold leaves scores alone", 0.5, 3, 3},
		{"at threshold increments by one", 0.8, 3, 4},
		{"above threshold increments by one", 0.9, 3, 4},
		{"perfect score increments by two", 1.0, 3, 5},
		{"perfect score clamps at max", 1.0, 4, 5},
		{"node at max is untouched", 1.0, 5, 5},
		{"threshold from min score", 0.8, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile([]string{"Paging"}, map[string]int{"Paging": tt.start})
			updated := p.Apply(tt.accuracy)

			if got := updated.Score("Paging"); got != tt.want {
				t.Errorf("Apply(%.1f) from %d: want %d, got %d", tt.accuracy, tt.start, tt.want, got)
			}
			// The original profile is replaced, never mutated in place.
			if got := p.Score("Paging"); got != tt.start {
				t.Errorf("receiver mutated: want %d, got %d", tt.start, got)
			}
		})
	}
}

func TestApply_NeverLeavesRange(t *testing.T) {
	for start := MinScore; start <= MaxScore; start++ {
		for _, accuracy := range []float64{0.0, 0.5, 0.8, 0.95, 1.0} {
			p := NewProfile([]string{"n"}, map[string]int{"n": start})
			got := p.Apply(accuracy).Score("n")
			if got < start {
				t.Errorf("score decreased: start=%d accuracy=%.2f got=%d", start, accuracy, got)
			}
			if got > MaxScore {
				t.Errorf("score exceeded max: start=%d accuracy=%.2f got=%d", start, accuracy, got)
			}
		}
	}
}

func TestPromptBlock(t *testing.T) {
	p := NewProfile(testNodes, map[string]int{"Memory Management": 3})
	block := p.PromptBlock("Operating Systems", "Paging")

	if !strings.Contains(block, "Teaching Topic: Paging") {
		t.Error("prompt block missing topic")
	}
	if !strings.Contains(block, "- Memory Management: Level 3") {
		t.Errorf("prompt block missing node line:\n%s", block)
	}
}

func TestBuilder_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: `{"Processes & Threads": 4, "Memory Management": 2, "Concurrency & Sync": 1}`,
	})
	b := NewBuilder(mock, "Operating Systems", testNodes)

	p := b.Generate(context.Background(), "Intermediate")

	if got := p.Score("Processes & Threads"); got != 4 {
		t.Errorf("expected generated score 4, got %d", got)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected one generation call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Role != llm.RoleExpert {
		t.Errorf("skill-tree building must use the expert tier, got %q", mock.Calls[0].Role)
	}
	if mock.Calls[0].Schema == nil {
		t.Error("skill-tree request must carry a schema")
	}
}

func TestBuilder_FallbackOnGenerationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrTransport{Err: errors.New("connection refused")},
	})
	b := NewBuilder(mock, "Operating Systems", testNodes)

	p := b.Generate(context.Background(), "Beginner")

	for _, node := range testNodes {
		if got := p.Score(node); got != BaselineScore {
			t.Errorf("node %q: expected baseline %d, got %d", node, BaselineScore, got)
		}
	}
}

func TestBuilder_FallbackOnUnreadableJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "I estimate the student is roughly intermediate.",
	})
	b := NewBuilder(mock, "Operating Systems", testNodes)

	p := b.Generate(context.Background(), "Beginner")

	if got := p.Score(testNodes[0]); got != BaselineScore {
		t.Errorf("expected baseline fallback, got %d", got)
	}
}
