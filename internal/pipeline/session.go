// Package pipeline orchestrates one end-to-end tutoring session: build
// a skill profile, iteratively optimize a lesson plan, quiz the
// student, and log the session.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ameya/eduplan/internal/agents"
	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/questionbank"
	"github.com/ameya/eduplan/internal/skilltree"
	"github.com/ameya/eduplan/internal/store"
	"github.com/ameya/eduplan/internal/subject"
)

// Session status labels surfaced to the caller.
const (
	StatusCompleted  = "Module Completed"
	StatusIncomplete = "Incomplete/Needs Practice"
)

const planExcerptLen = 500

// ErrConfigurationMissing indicates a required static collaborator
// (question bank, subject schema) is absent.
type ErrConfigurationMissing struct {
	What string
}

func (e *ErrConfigurationMissing) Error() string {
	return fmt.Sprintf("configuration missing: %s", e.What)
}

// Session is the per-run state handle. Owned by a single execution
// context for the duration of one end-to-end run.
type Session struct {
	ID        string
	Level     string
	Topic     string
	Profile   skilltree.Profile
	CreatedAt time.Time

	outcome *Outcome
}

// Outcome is what one pipeline run produced.
type Outcome struct {
	Plan       string
	Score      float64
	Iterations int
	Trace      []IterationTrace
	Quiz       []agents.QuizItem
}

// QuizResult holds per-item correctness and the aggregate accuracy.
type QuizResult struct {
	Correct  []bool
	Accuracy float64
}

// Service runs tutoring sessions. Safe to share across sessions: all
// mutable per-run state lives in Session, and the underlying role
// configuration is read-only after construction.
type Service struct {
	subject subject.Subject
	bank    *questionbank.Bank
	cfg     Config
	events  store.EventRepo

	builder    *skilltree.Builder
	evaluator  *agents.Evaluator
	analyst    *agents.Analyst
	optimizer  *agents.Optimizer
	quizmaster *agents.Quizmaster
}

// NewService assembles a session service. events may be nil when no
// persistence is wanted (tests, dry runs).
func NewService(provider llm.Provider, subj subject.Subject, bank *questionbank.Bank, cfg Config, events store.EventRepo) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(subj.SkillNodes) == 0 {
		return nil, &ErrConfigurationMissing{What: "subject schema has no skill nodes"}
	}

	return &Service{
		subject:    subj,
		bank:       bank,
		cfg:        cfg,
		events:     events,
		builder:    skilltree.NewBuilder(provider, subj.Name, subj.SkillNodes),
		evaluator:  agents.NewEvaluator(provider),
		analyst:    agents.NewAnalyst(provider),
		optimizer:  agents.NewOptimizer(provider),
		quizmaster: agents.NewQuizmaster(provider),
	}, nil
}

// Subject returns the subject this service teaches.
func (s *Service) Subject() subject.Subject {
	return s.subject
}

// StartSession builds the initial skill profile for a student and
// returns the session handle. Profile generation never fails hard: on
// any generation error the student gets a baseline profile.
func (s *Service) StartSession(ctx context.Context, level, topic string) (*Session, error) {
	if !s.subject.ValidLevel(level) {
		return nil, fmt.Errorf("invalid level %q (want one of %v)", level, s.subject.Levels)
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	return &Session{
		ID:        uuid.NewString(),
		Level:     level,
		Topic:     topic,
		Profile:   s.builder.Generate(ctx, level),
		CreatedAt: time.Now(),
	}, nil
}

// RunPipeline executes the optimization loop for the session, attaches
// the misconception appendix to the best plan, and generates the
// post-session quiz. The best candidate ever seen wins, not the last
// one produced.
func (s *Service) RunPipeline(ctx context.Context, sess *Session) (*Outcome, error) {
	profileBlock := sess.Profile.PromptBlock(s.subject.Name, sess.Topic)
	loop := NewLoop(s.evaluator, s.analyst, s.optimizer, s.bank, s.cfg)

	result, err := loop.Run(ctx, sess.Topic, s.subject.GeneratorFocus, profileBlock)
	if err != nil {
		return nil, err
	}

	plan := result.Best.Text
	if appendix := agents.FormatMisconceptions(s.analyst.Misconceptions(ctx, plan)); appendix != "" {
		plan += appendix
	}

	quiz, err := s.quizmaster.GenerateQuiz(ctx, s.subject.QuizTopics, s.cfg.QuizQuestions)
	if err != nil {
		// A missing quiz degrades the session, it doesn't abort it:
		// the plan is still worth showing.
		fmt.Fprintf(os.Stderr, "warning: quiz generation failed: %v\n", err)
		quiz = nil
	}

	sess.outcome = &Outcome{
		Plan:       plan,
		Score:      result.Best.Score,
		Iterations: len(result.Iterations),
		Trace:      result.Iterations,
		Quiz:       quiz,
	}
	return sess.outcome, nil
}

// GradeAnswer grades a single free-text answer against its reference.
func (s *Service) GradeAnswer(ctx context.Context, userAnswer, referenceAnswer string) (bool, error) {
	return s.quizmaster.Grade(ctx, userAnswer, referenceAnswer)
}

// GradeQuiz grades every answer against the session's quiz and returns
// per-item correctness plus the aggregate accuracy.
func (s *Service) GradeQuiz(ctx context.Context, quiz []agents.QuizItem, answers []string) (QuizResult, error) {
	if len(quiz) == 0 {
		return QuizResult{}, &ErrConfigurationMissing{What: "no quiz questions to grade"}
	}

	result := QuizResult{Correct: make([]bool, len(quiz))}
	correct := 0
	for i, item := range quiz {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		ok, err := s.quizmaster.Grade(ctx, answer, item.Answer)
		if err != nil {
			return QuizResult{}, err
		}
		result.Correct[i] = ok
		if ok {
			correct++
		}
	}
	result.Accuracy = float64(correct) / float64(len(quiz))
	return result, nil
}

// FinalizeSession applies the post-quiz skill update, determines the
// session status, and persists the session record. The updated profile
// replaces the session's profile wholesale.
func (s *Service) FinalizeSession(ctx context.Context, sess *Session, quizAccuracy float64) (skilltree.Profile, string, error) {
	if sess.outcome == nil {
		return sess.Profile, "", fmt.Errorf("session %s has no pipeline outcome to finalize", sess.ID)
	}

	updated := sess.Profile.Apply(quizAccuracy)
	sess.Profile = updated

	status := StatusIncomplete
	if sess.outcome.Score >= s.cfg.ScoreThreshold && quizAccuracy >= QuizAccuracyThreshold {
		status = StatusCompleted
	}

	if s.events != nil {
		data := store.SessionEventData{
			SessionID:    sess.ID,
			StudentLevel: sess.Level,
			Topic:        sess.Topic,
			Subject:      s.subject.Name,
			Iterations:   sess.outcome.Iterations,
			FinalScore:   sess.outcome.Score,
			QuizAccuracy: quizAccuracy,
			SkillProfile: updated.Scores(),
			PlanExcerpt:  excerpt(sess.outcome.Plan, planExcerptLen),
			Status:       status,
		}
		if err := s.events.AppendSession(ctx, data); err != nil {
			return updated, status, fmt.Errorf("log session: %w", err)
		}
	}

	return updated, status, nil
}

func excerpt(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n] + "..."
}
