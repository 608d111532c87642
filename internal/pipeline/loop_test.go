package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/ameya/eduplan/internal/agents"
	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/questionbank"
)

// verdict renders a one-axis evaluator verdict with the given score.
func verdict(score int) string {
	return fmt.Sprintf("[C]: %d; adequate coverage\nAdvantage: solid structure. Disadvantage: thin examples.", score)
}

func newTestLoop(mock *llm.MockProvider, bank *questionbank.Bank, cfg Config) *Loop {
	return NewLoop(
		agents.NewEvaluator(mock),
		agents.NewAnalyst(mock),
		agents.NewOptimizer(mock),
		bank,
		cfg,
	)
}

func TestLoop_FixedModeRunsExactCycles(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "plan-1"})
	for i := 2; i <= 5; i++ {
		mock.AddResponse(llm.MockResponse{Content: verdict(50)})
		mock.AddResponse(llm.MockResponse{Content: "students confuse X with Y"})
		mock.AddResponse(llm.MockResponse{Content: fmt.Sprintf("plan-%d", i)})
	}

	cfg := DefaultConfig()
	cfg.MaxIterations = 4
	loop := newTestLoop(mock, nil, cfg)

	result, err := loop.Run(context.Background(), "Paging", "depth over breadth", "profile")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Iterations) != 4 {
		t.Fatalf("expected exactly 4 iterations, got %d", len(result.Iterations))
	}
	// Draft plus four evaluate/predict/optimize cycles.
	if mock.CallCount() != 13 {
		t.Fatalf("expected 13 provider calls, got %d", mock.CallCount())
	}

	var evaluates, optimizes int
	for _, call := range mock.Calls {
		switch call.Role {
		case llm.RoleEvaluator:
			evaluates++
		case llm.RoleOptimizer:
			optimizes++
		}
	}
	if evaluates != 4 || optimizes != 5 {
		t.Fatalf("expected 4 evaluations and 5 optimizer calls (draft + 4 passes), got %d/%d", evaluates, optimizes)
	}
}

func TestLoop_BestCandidateIsFirstMaximum(t *testing.T) {
	scores := []int{5, 9, 3, 9}

	mock := llm.NewMockProvider(llm.MockResponse{Content: "plan-1"})
	for i, s := range scores {
		mock.AddResponse(llm.MockResponse{Content: verdict(s)})
		mock.AddResponse(llm.MockResponse{Content: "mistake"})
		mock.AddResponse(llm.MockResponse{Content: fmt.Sprintf("plan-%d", i+2)})
	}

	cfg := DefaultConfig()
	cfg.MaxIterations = 4
	loop := newTestLoop(mock, nil, cfg)

	result, err := loop.Run(context.Background(), "Paging", "", "profile")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Best.Iteration != 2 || result.Best.Text != "plan-2" {
		t.Fatalf("expected the first score-9 candidate (iteration 2) to win, got %+v", result.Best)
	}
	if result.Best.Score != 9 {
		t.Fatalf("expected best score 9, got %v", result.Best.Score)
	}
}

func TestLoop_EmptyDraftKeepsHighScoreAsBest(t *testing.T) {
	// The model may return an empty draft; a later lower-scored
	// candidate must not displace it.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: ""},
		llm.MockResponse{Content: verdict(9)},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-2"},
		llm.MockResponse{Content: verdict(3)},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-3"},
	)

	cfg := DefaultConfig()
	cfg.MaxIterations = 2
	loop := newTestLoop(mock, nil, cfg)

	result, err := loop.Run(context.Background(), "Paging", "", "profile")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Best.Iteration != 1 || result.Best.Score != 9 {
		t.Fatalf("expected the empty iteration-1 draft to stay best, got %+v", result.Best)
	}
	if result.Best.Text != "" {
		t.Fatalf("expected the best text to remain empty, got %q", result.Best.Text)
	}
}

func TestLoop_ThresholdStopsAfterOneExtraPass(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "plan-1"},
		llm.MockResponse{Content: verdict(60)},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-2"},
		llm.MockResponse{Content: "[C]: 80; good\n[I]: 90; strong"}, // average 85
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-3"},
	)

	cfg := DefaultConfig()
	cfg.StopMode = StopThreshold
	cfg.ScoreThreshold = 80
	cfg.MaxIterations = 6
	loop := newTestLoop(mock, nil, cfg)

	result, err := loop.Run(context.Background(), "Paging", "", "profile")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Iterations) != 2 {
		t.Fatalf("expected the loop to stop after 2 iterations, got %d", len(result.Iterations))
	}
	// The crossing iteration still runs its optimize pass, then stops.
	if mock.CallCount() != 7 {
		t.Fatalf("expected 7 provider calls, got %d", mock.CallCount())
	}
	if result.Best.Score != 85 {
		t.Fatalf("expected best score 85, got %v", result.Best.Score)
	}
}

func TestLoop_EvaluationFailureReturnsPartialResult(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "plan-1"},
		llm.MockResponse{Content: verdict(70)},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-2"},
		llm.MockResponse{Err: &llm.ErrRemoteStatus{Code: 503}},
	)

	cfg := DefaultConfig()
	cfg.MaxIterations = 4
	loop := newTestLoop(mock, nil, cfg)

	result, err := loop.Run(context.Background(), "Paging", "", "profile")
	if err == nil {
		t.Fatal("expected an error when evaluation fails")
	}
	var remote *llm.ErrRemoteStatus
	if !errors.As(err, &remote) || remote.Code != 503 {
		t.Fatalf("expected ErrRemoteStatus(503), got %v", err)
	}
	if len(result.Iterations) != 1 {
		t.Fatalf("expected 1 completed iteration in the partial result, got %d", len(result.Iterations))
	}
	if result.Best.Iteration != 1 || result.Best.Score != 70 {
		t.Fatalf("partial result must keep the best candidate so far, got %+v", result.Best)
	}
	if len(result.Retained) != 1 {
		t.Fatalf("expected 1 retained candidate, got %d", len(result.Retained))
	}
}

func TestLoop_UnparseableVerdictDegradesAndContinues(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "plan-1"},
		llm.MockResponse{Content: "the plan looks fine to me"},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-2"},
		llm.MockResponse{Content: verdict(40)},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-3"},
	)

	cfg := DefaultConfig()
	cfg.MaxIterations = 2
	loop := newTestLoop(mock, nil, cfg)

	result, err := loop.Run(context.Background(), "Paging", "", "profile")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Iterations[0].Degraded || result.Iterations[0].Score != 0 {
		t.Fatalf("expected a degraded zero-score first iteration, got %+v", result.Iterations[0])
	}
	if result.Best.Iteration != 2 {
		t.Fatalf("expected the parsed iteration to win, got %+v", result.Best)
	}
}

func TestLoop_EmptyBankUsesPlaceholderQuestion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "plan-1"},
		llm.MockResponse{Content: verdict(50)},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-2"},
	)

	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	loop := newTestLoop(mock, questionbank.New(nil), cfg)

	result, err := loop.Run(context.Background(), "Paging", "", "profile")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Iterations[0].Question != placeholderQuestion {
		t.Fatalf("expected placeholder question, got %q", result.Iterations[0].Question)
	}
}

func TestLoop_QuestionMatchesTopic(t *testing.T) {
	bank := questionbank.New([]questionbank.Record{
		{Topic: "Paging", Question: "What is a page fault?", Answer: "..."},
		{Topic: "Paging", Question: "Explain TLB misses.", Answer: "..."},
		{Topic: "Scheduling", Question: "What is round robin?", Answer: "..."},
	})

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "plan-1"},
		llm.MockResponse{Content: verdict(50)},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-2"},
	)

	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	cfg.Rand = rand.New(rand.NewPCG(1, 2))
	loop := newTestLoop(mock, bank, cfg)

	result, err := loop.Run(context.Background(), "Paging", "", "profile")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	q := result.Iterations[0].Question
	if q != "What is a page fault?" && q != "Explain TLB misses." {
		t.Fatalf("expected a topic-matched question, got %q", q)
	}
}

func TestLoop_EmptyMistakePredictionOmitsInsertion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "plan-1"},
		llm.MockResponse{Content: verdict(50)},
		llm.MockResponse{Content: ""}, // analyst came back empty
		llm.MockResponse{Content: "plan-2"},
	)

	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	loop := newTestLoop(mock, nil, cfg)

	if _, err := loop.Run(context.Background(), "Paging", "", "profile"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	optimize := mock.Calls[len(mock.Calls)-1]
	if strings.Contains(optimize.System, "ANALYST AGENT INSERTION") {
		t.Fatal("optimize prompt must not carry an insertion when prediction is empty")
	}
}
