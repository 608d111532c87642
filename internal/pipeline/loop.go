package pipeline

import (
	"context"
	"fmt"

	"github.com/ameya/eduplan/internal/agents"
	"github.com/ameya/eduplan/internal/questionbank"
)

// placeholderQuestion stands in for the analyst's example question when
// the question bank is empty.
const placeholderQuestion = "Placeholder question for a core concept."

// Loop drives the iterative optimization: Evaluate -> Analyze ->
// Optimize, serialized within and across iterations. One Loop value
// owns all per-run state; nothing here is shared across runs.
type Loop struct {
	evaluator *agents.Evaluator
	analyst   *agents.Analyst
	optimizer *agents.Optimizer
	bank      *questionbank.Bank
	cfg       Config
}

// NewLoop assembles an optimization loop from its agents.
func NewLoop(evaluator *agents.Evaluator, analyst *agents.Analyst, optimizer *agents.Optimizer, bank *questionbank.Bank, cfg Config) *Loop {
	return &Loop{
		evaluator: evaluator,
		analyst:   analyst,
		optimizer: optimizer,
		bank:      bank,
		cfg:       cfg,
	}
}

// IterationTrace records what one loop iteration saw and did.
type IterationTrace struct {
	Index    int
	Score    float64
	Degraded bool
	Question string
}

// Result is the outcome of one optimization run. Best is the
// highest-scoring candidate ever observed, not necessarily the last
// one produced: scores are non-monotonic across iterations.
type Result struct {
	Best       Candidate
	Iterations []IterationTrace
	Retained   []Candidate
}

// Run drafts an initial plan and iterates until the configured stop
// condition. An evaluation or optimization failure is loop-fatal: the
// loop stops early and surfaces the accumulated partial result
// alongside the error. There are no retries anywhere in this path.
func (l *Loop) Run(ctx context.Context, topic, focus, profileBlock string) (Result, error) {
	var result Result

	plan, err := l.optimizer.Draft(ctx, topic, focus, profileBlock)
	if err != nil {
		return result, err
	}

	queue := NewRetentionQueue(l.cfg.QueueCapacity)
	var best Candidate
	thresholdMet := false

	for i := 1; i <= l.cfg.MaxIterations; i++ {
		card, err := l.evaluator.Evaluate(ctx, plan, profileBlock)
		if err != nil {
			result.Retained = queue.Candidates()
			result.Best = best
			return result, fmt.Errorf("iteration %d: %w", i, err)
		}

		candidate := Candidate{Text: plan, Score: card.Average, Iteration: i}
		queue.Insert(candidate)
		// Iteration is never 0 once a best is assigned; plan text can
		// legitimately be empty when the model misbehaves.
		if card.Average > best.Score || best.Iteration == 0 {
			best = candidate
		}

		question := l.pickQuestion(topic)
		result.Iterations = append(result.Iterations, IterationTrace{
			Index:    i,
			Score:    card.Average,
			Degraded: card.Degraded,
			Question: question,
		})

		if l.cfg.StopMode == StopThreshold && !card.Degraded && card.Average >= l.cfg.ScoreThreshold {
			thresholdMet = true
		}

		lastIteration := i == l.cfg.MaxIterations

		// The final optimize pass still runs: in fixed mode every
		// iteration is a full evaluate/optimize cycle, and in
		// threshold mode one extra pass runs after the threshold is
		// first met, for robustness.
		insertion := ""
		if mistakes := l.analyst.PredictMistakes(ctx, question, profileBlock); mistakes != "" {
			insertion = agents.BuildInsertion(question, mistakes)
		}

		plan, err = l.optimizer.Optimize(ctx, plan, card.Feedback, insertion, profileBlock)
		if err != nil {
			result.Retained = queue.Candidates()
			result.Best = best
			return result, fmt.Errorf("iteration %d: %w", i, err)
		}

		if thresholdMet || lastIteration {
			break
		}
	}

	result.Best = best
	result.Retained = queue.Candidates()
	return result, nil
}

// pickQuestion selects the analyst's example question: uniform among
// topic matches, any record when none match, a placeholder when the
// bank is empty.
func (l *Loop) pickQuestion(topic string) string {
	if l.bank == nil {
		return placeholderQuestion
	}
	rec, ok := l.bank.Pick(l.cfg.rng(), topic)
	if !ok {
		return placeholderQuestion
	}
	return rec.Question
}
