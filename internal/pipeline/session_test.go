package pipeline

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/questionbank"
	"github.com/ameya/eduplan/internal/store"
	"github.com/ameya/eduplan/internal/subject"
)

// recordingEventRepo captures appended events for assertions.
type recordingEventRepo struct {
	sessions []store.SessionEventData
	requests []store.LLMRequestEventData
}

func (r *recordingEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.requests = append(r.requests, data)
	return nil
}

func (r *recordingEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}

const beginnerProfileJSON = `{
	"Processes & Threads": 2,
	"Memory Management": 1,
	"Concurrency & Sync": 1,
	"File System & I/O": 2,
	"OS Fundamentals": 3
}`

func newSessionMock() *llm.MockProvider {
	return llm.NewMockProvider(
		// StartSession: skill-tree generation.
		llm.MockResponse{Content: beginnerProfileJSON},
		// RunPipeline: draft, then two evaluate/predict/optimize cycles.
		llm.MockResponse{Content: "initial paging plan"},
		llm.MockResponse{Content: "[C]: 60; shallow\n[I]: 60; flat\n[D]: 60; ok\n[P]: 60; ok\n[Pe]: 60; ok\nAdvantage: clear. Disadvantage: no exercises."},
		llm.MockResponse{Content: "students conflate pages with frames"},
		llm.MockResponse{Content: "revised paging plan"},
		llm.MockResponse{Content: "[C]: 70; better\n[I]: 70; ok\n[D]: 70; ok\n[P]: 70; ok\n[Pe]: 70; ok\nAdvantage: improved. Disadvantage: still thin."},
		llm.MockResponse{Content: "students forget the TLB"},
		llm.MockResponse{Content: "final optimize output"},
		// RunPipeline tail: misconceptions and quiz.
		llm.MockResponse{Content: `{"Paging": ["A page and a frame are the same thing"]}`},
		llm.MockResponse{Content: `{"questions": [{"question": "What is a page fault?", "answer": "A trap on access to an unmapped page"}, {"question": "What does the TLB cache?", "answer": "Page table entries"}]}`},
	)
}

func newTestService(t *testing.T, mock *llm.MockProvider, events store.EventRepo) *Service {
	t.Helper()

	bank := questionbank.New([]questionbank.Record{
		{Topic: "Paging", Question: "Walk through an address translation.", Answer: "..."},
		{Topic: "Paging", Question: "Why do page faults happen?", Answer: "..."},
	})

	cfg := DefaultConfig()
	cfg.MaxIterations = 2
	cfg.QuizQuestions = 2
	cfg.Rand = rand.New(rand.NewPCG(7, 11))

	svc, err := NewService(mock, subject.OperatingSystems(), bank, cfg, events)
	require.NoError(t, err)
	return svc
}

func TestService_EndToEndSession(t *testing.T) {
	mock := newSessionMock()
	events := &recordingEventRepo{}
	svc := newTestService(t, mock, events)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "Beginner", "Paging")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 2, sess.Profile.Score("Processes & Threads"))
	assert.Equal(t, 3, sess.Profile.Score("OS Fundamentals"))

	outcome, err := svc.RunPipeline(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Iterations)
	assert.Equal(t, float64(70), outcome.Score)
	// Iteration 2 scored highest, so its input plan wins, with the
	// misconception appendix attached.
	assert.True(t, strings.HasPrefix(outcome.Plan, "revised paging plan"))
	assert.Contains(t, outcome.Plan, "=== AVOID THESE COMMON MISTAKES ===")
	assert.Contains(t, outcome.Plan, "A page and a frame are the same thing")
	require.Len(t, outcome.Quiz, 2)
	assert.Equal(t, "What is a page fault?", outcome.Quiz[0].Question)

	for _, trace := range outcome.Trace {
		assert.Contains(t, []string{
			"Walk through an address translation.",
			"Why do page faults happen?",
		}, trace.Question)
	}

	// One right, one wrong.
	mock.AddResponse(llm.MockResponse{Content: "CORRECT"})
	mock.AddResponse(llm.MockResponse{Content: "INCORRECT"})
	quizResult, err := svc.GradeQuiz(ctx, outcome.Quiz, []string{"a trap on unmapped access", "no idea"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, quizResult.Correct)
	assert.Equal(t, 0.5, quizResult.Accuracy)

	updated, status, err := svc.FinalizeSession(ctx, sess, quizResult.Accuracy)
	require.NoError(t, err)
	assert.Equal(t, StatusIncomplete, status)
	// Accuracy below 0.8 leaves the profile unchanged.
	assert.Equal(t, 2, updated.Score("Processes & Threads"))

	require.Len(t, events.sessions, 1)
	logged := events.sessions[0]
	assert.Equal(t, sess.ID, logged.SessionID)
	assert.Equal(t, "Beginner", logged.StudentLevel)
	assert.Equal(t, "Paging", logged.Topic)
	assert.Equal(t, 2, logged.Iterations)
	assert.Equal(t, float64(70), logged.FinalScore)
	assert.Equal(t, 0.5, logged.QuizAccuracy)
	assert.Equal(t, StatusIncomplete, logged.Status)
	assert.NotEmpty(t, logged.PlanExcerpt)
}

func TestService_PerfectQuizReinforcesProfile(t *testing.T) {
	mock := newSessionMock()
	svc := newTestService(t, mock, nil)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "Beginner", "Paging")
	require.NoError(t, err)

	_, err = svc.RunPipeline(ctx, sess)
	require.NoError(t, err)

	updated, status, err := svc.FinalizeSession(ctx, sess, 1.0)
	require.NoError(t, err)
	// Plan score 70 is below the completion threshold even with a
	// perfect quiz.
	assert.Equal(t, StatusIncomplete, status)
	// Every node gains +2, clamped to the maximum.
	assert.Equal(t, 4, updated.Score("Processes & Threads"))
	assert.Equal(t, 3, updated.Score("Memory Management"))
	assert.Equal(t, 5, updated.Score("OS Fundamentals"))
}

func TestService_CompletedStatus(t *testing.T) {
	mock := newSessionMock()

	bank := questionbank.New([]questionbank.Record{
		{Topic: "Paging", Question: "Q", Answer: "A"},
	})
	cfg := DefaultConfig()
	cfg.MaxIterations = 2
	cfg.ScoreThreshold = 65 // the mocked run peaks at 70
	cfg.Rand = rand.New(rand.NewPCG(1, 1))

	svc, err := NewService(mock, subject.OperatingSystems(), bank, cfg, nil)
	require.NoError(t, err)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "Beginner", "Paging")
	require.NoError(t, err)
	_, err = svc.RunPipeline(ctx, sess)
	require.NoError(t, err)

	_, status, err := svc.FinalizeSession(ctx, sess, 1.0)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)
}

func TestService_StartSessionValidation(t *testing.T) {
	svc := newTestService(t, llm.NewMockProvider(), nil)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, "Expert", "Paging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")

	_, err = svc.StartSession(ctx, "Beginner", "")
	require.Error(t, err)
}

func TestService_ProfileFallsBackToBaseline(t *testing.T) {
	// Skill-tree generation fails; the session still starts.
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrTransport{Timeout: true}})
	svc := newTestService(t, mock, nil)

	sess, err := svc.StartSession(context.Background(), "Beginner", "Paging")
	require.NoError(t, err)
	for _, node := range subject.OperatingSystems().SkillNodes {
		assert.Equal(t, 1, sess.Profile.Score(node))
	}
}

func TestService_FinalizeRequiresOutcome(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: beginnerProfileJSON})
	svc := newTestService(t, mock, nil)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "Beginner", "Paging")
	require.NoError(t, err)

	_, _, err = svc.FinalizeSession(ctx, sess, 1.0)
	require.Error(t, err)
}

func TestService_QuizGenerationFailureDegrades(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: beginnerProfileJSON},
		llm.MockResponse{Content: "plan"},
		llm.MockResponse{Content: "[C]: 50; ok"},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-2"},
		llm.MockResponse{Content: "[C]: 55; ok"},
		llm.MockResponse{Content: "mistake"},
		llm.MockResponse{Content: "plan-3"},
		llm.MockResponse{Content: `{}`},
		llm.MockResponse{Err: &llm.ErrRemoteStatus{Code: 429}},
	)
	svc := newTestService(t, mock, nil)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "Beginner", "Paging")
	require.NoError(t, err)

	outcome, err := svc.RunPipeline(ctx, sess)
	require.NoError(t, err)
	assert.Empty(t, outcome.Quiz)
	assert.Equal(t, float64(55), outcome.Score)
}

func TestService_GradeQuizRejectsEmptyQuiz(t *testing.T) {
	svc := newTestService(t, llm.NewMockProvider(), nil)

	_, err := svc.GradeQuiz(context.Background(), nil, nil)
	require.Error(t, err)
	var missing *ErrConfigurationMissing
	require.ErrorAs(t, err, &missing)
}
