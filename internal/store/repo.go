package store

import (
	"context"
	"time"
)

// SessionEventData is the flat record emitted once per completed session.
type SessionEventData struct {
	SessionID    string
	StudentLevel string
	Topic        string
	Subject      string
	Iterations   int
	FinalScore   float64
	QuizAccuracy float64
	SkillProfile map[string]int
	PlanExcerpt  string
	Status       string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Role         string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionRecord is a persisted session event as read back from storage.
type SessionRecord struct {
	Sequence     int64
	Timestamp    time.Time
	SessionID    string
	StudentLevel string
	Topic        string
	Iterations   int
	FinalScore   float64
	QuizAccuracy float64
	SkillProfile map[string]int
	PlanExcerpt  string
	Status       string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendSession records one completed session.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns the most recent session records, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
}
