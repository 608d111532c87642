package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ameya/eduplan/internal/llm"
)

const testProfileBlock = `Student Profile (Skill-Tree Analysis - Operating Systems):
Teaching Topic: Paging
Core Abilities (Scores 0-5, where 5 is highest):
- Memory Management: Level 2
`

func TestEvaluator_ParsesVerdict(t *testing.T) {
	verdict := `[C]: 80; fine
[I]: 70; fine
[D]: 60; fine
[P]: 90; fine
[Pe]: 50; fine
Advantage: concise. Disadvantage: shallow.`

	mock := llm.NewMockProvider(llm.MockResponse{Content: verdict})
	e := NewEvaluator(mock)

	card, err := e.Evaluate(context.Background(), "a plan", testProfileBlock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Average != 70 {
		t.Fatalf("expected average 70, got %.1f", card.Average)
	}
	if mock.Calls[0].Role != llm.RoleEvaluator {
		t.Errorf("expected evaluator role, got %q", mock.Calls[0].Role)
	}
	if !strings.Contains(mock.Calls[0].System, "CIDDP") && !strings.Contains(mock.Calls[0].System, "[Pe]:") {
		t.Error("evaluator system prompt should carry the scoring standard")
	}
	if !strings.Contains(mock.Calls[0].System, "Teaching Topic: Paging") {
		t.Error("evaluator system prompt should carry the profile block")
	}
}

func TestEvaluator_GenerationFailureIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRemoteStatus{Code: 503, Err: errors.New("overloaded")},
	})
	e := NewEvaluator(mock)

	_, err := e.Evaluate(context.Background(), "a plan", testProfileBlock)
	var rs *llm.ErrRemoteStatus
	if !errors.As(err, &rs) {
		t.Fatalf("expected wrapped ErrRemoteStatus, got %v", err)
	}
}

func TestEvaluator_UnparseableVerdictIsDegradedNotError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "I liked it a lot!"})
	e := NewEvaluator(mock)

	card, err := e.Evaluate(context.Background(), "a plan", testProfileBlock)
	if err != nil {
		t.Fatalf("degraded verdict must not be an error, got %v", err)
	}
	if !card.Degraded || card.Average != 0 {
		t.Fatalf("expected degraded zero scorecard, got %+v", card)
	}
}

func TestAnalyst_Misconceptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: `{"Paging": ["confusing pages with frames", "thinking the TLB is in RAM"]}`,
	})
	a := NewAnalyst(mock)

	out := a.Misconceptions(context.Background(), "a plan about paging")
	if len(out["Paging"]) != 2 {
		t.Fatalf("unexpected misconception map: %v", out)
	}
}

func TestAnalyst_MisconceptionsDegradeToEmpty(t *testing.T) {
	for name, resp := range map[string]llm.MockResponse{
		"generation failure": {Err: &llm.ErrTransport{Err: errors.New("down")}},
		"non-JSON response":  {Content: "students often mix up pages and frames"},
	} {
		t.Run(name, func(t *testing.T) {
			a := NewAnalyst(llm.NewMockProvider(resp))
			out := a.Misconceptions(context.Background(), "a plan")
			if out == nil {
				t.Fatal("expected empty map, got nil")
			}
			if len(out) != 0 {
				t.Fatalf("expected empty map, got %v", out)
			}
		})
	}
}

func TestFormatMisconceptions(t *testing.T) {
	if got := FormatMisconceptions(nil); got != "" {
		t.Fatalf("empty map must render nothing, got %q", got)
	}

	out := FormatMisconceptions(map[string][]string{
		"Paging":     {"a page is a frame"},
		"Interrupts": {"polling is an interrupt"},
	})
	if !strings.Contains(out, "=== AVOID THESE COMMON MISTAKES ===") {
		t.Fatalf("missing appendix header: %q", out)
	}
	// Sorted concepts: Interrupts before Paging.
	if strings.Index(out, "Interrupts:") > strings.Index(out, "Paging:") {
		t.Fatalf("concepts must be sorted: %q", out)
	}
	if !strings.Contains(out, "   - a page is a frame") {
		t.Fatalf("missing item line: %q", out)
	}
}

func TestAnalyst_PredictMistakes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "Common Mistake 1: Off-by-one in page offset (60%)",
	})
	a := NewAnalyst(mock)

	text := a.PredictMistakes(context.Background(), "What is a page fault?", testProfileBlock)
	if !strings.Contains(text, "Common Mistake 1") {
		t.Fatalf("free text must pass through verbatim, got %q", text)
	}

	// Failure degrades to empty insertion, not an error.
	a = NewAnalyst(llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrTransport{Err: errors.New("down")},
	}))
	if got := a.PredictMistakes(context.Background(), "q", testProfileBlock); got != "" {
		t.Fatalf("expected empty prediction on failure, got %q", got)
	}
}

func TestOptimizer_DraftAndOptimize(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "Part1: ... Part2: ..."},
		llm.MockResponse{Content: "Part1 (revised): ... Part2: ..."},
	)
	o := NewOptimizer(mock)

	draft, err := o.Draft(context.Background(), "Paging", "Focus on core concepts", testProfileBlock)
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if draft != "Part1: ... Part2: ..." {
		t.Fatalf("draft output must be verbatim, got %q", draft)
	}

	revised, err := o.Optimize(context.Background(), draft, "Advantage: ok", BuildInsertion("q", "m"), testProfileBlock)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if !strings.Contains(revised, "revised") {
		t.Fatalf("unexpected revision: %q", revised)
	}

	if mock.Calls[0].Role != llm.RoleOptimizer || mock.Calls[1].Role != llm.RoleOptimizer {
		t.Error("both calls must route to the optimizer role")
	}
	if !strings.Contains(mock.Calls[1].System, "ANALYST AGENT INSERTION") {
		t.Error("optimize system prompt should embed the analyst insertion")
	}
	if !strings.Contains(mock.Calls[1].User, "Evaluator Feedback") {
		t.Error("optimize user message should embed the evaluator feedback")
	}
}

func TestQuizmaster_GenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: `{"questions":[{"question":"What is a page fault?","answer":"An access to an unmapped page."},{"question":"What does the MMU do?","answer":"Translates virtual to physical addresses."}]}`,
	})
	q := NewQuizmaster(mock)

	items, err := q.GenerateQuiz(context.Background(), []string{"Memory Management"}, 2)
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if mock.Calls[0].Role != llm.RoleExpert {
		t.Errorf("quiz generation must use the expert tier, got %q", mock.Calls[0].Role)
	}
}

func TestQuizmaster_Grade(t *testing.T) {
	tests := []struct {
		verdict string
		want    bool
	}{
		{"CORRECT", true},
		{"The answer is CORRECT.", true},
		{"INCORRECT", false},
		{"That is INCORRECT, the user missed the point.", false},
		{"I am not sure.", false},
	}

	for _, tt := range tests {
		q := NewQuizmaster(llm.NewMockProvider(llm.MockResponse{Content: tt.verdict}))
		got, err := q.Grade(context.Background(), "user answer", "reference answer")
		if err != nil {
			t.Fatalf("Grade(%q): %v", tt.verdict, err)
		}
		if got != tt.want {
			t.Errorf("Grade verdict %q: want %v, got %v", tt.verdict, tt.want, got)
		}
	}
}
