package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/rubric"
)

// QuizItem is one generated concept-check question with its reference
// answer.
type QuizItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Quizmaster generates post-session quizzes and grades free-text
// answers conceptually.
type Quizmaster struct {
	provider llm.Provider
}

// NewQuizmaster creates a quizmaster backed by the given provider.
func NewQuizmaster(provider llm.Provider) *Quizmaster {
	return &Quizmaster{provider: provider}
}

// GenerateQuiz asks the expert model for n concept-check questions
// covering the given topics.
func (q *Quizmaster) GenerateQuiz(ctx context.Context, topics []string, n int) ([]QuizItem, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := q.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleExpert,
		System: quizSystemPrompt,
		User:   buildQuizUserMessage(topics, n),
		Schema: quizSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var out struct {
		Questions []QuizItem `json:"questions"`
	}
	if err := rubric.ExtractJSON(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	return out.Questions, nil
}

// Grade compares a user's answer against the reference answer using
// the agent model, accepting conceptually correct rewordings. A
// response that is not a recognizable verdict grades as incorrect.
func (q *Quizmaster) Grade(ctx context.Context, userAnswer, referenceAnswer string) (bool, error) {
	ctx = llm.WithPurpose(ctx, "grade")

	resp, err := q.provider.Generate(ctx, llm.Request{
		Role:   llm.RoleAnalyst,
		System: gradingSystemPrompt,
		User:   buildGradingUserMessage(userAnswer, referenceAnswer),
	})
	if err != nil {
		return false, fmt.Errorf("grade answer: %w", err)
	}

	verdict := strings.ToUpper(resp.Content)
	// "INCORRECT" contains "CORRECT"; check the negative verdict first.
	if strings.Contains(verdict, "INCORRECT") {
		return false, nil
	}
	return strings.Contains(verdict, "CORRECT"), nil
}
