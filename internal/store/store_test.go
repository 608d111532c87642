package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestEventRepo_SessionRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatalf("EventRepo: %v", err)
	}

	ctx := context.Background()
	data := SessionEventData{
		SessionID:    "s-1",
		StudentLevel: "Beginner",
		Topic:        "Paging",
		Subject:      "Operating Systems",
		Iterations:   4,
		FinalScore:   82.5,
		QuizAccuracy: 1.0,
		SkillProfile: map[string]int{"Memory Management": 4},
		PlanExcerpt:  "Part1: ...",
		Status:       "Module Completed",
	}
	if err := repo.AppendSession(ctx, data); err != nil {
		t.Fatalf("AppendSession: %v", err)
	}

	records, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if got.SessionID != "s-1" || got.Topic != "Paging" || got.Iterations != 4 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.FinalScore != 82.5 || got.QuizAccuracy != 1.0 {
		t.Fatalf("unexpected scores: %+v", got)
	}
	if got.SkillProfile["Memory Management"] != 4 {
		t.Fatalf("unexpected profile: %v", got.SkillProfile)
	}
}

func TestEventRepo_SequenceOrdering(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatalf("EventRepo: %v", err)
	}

	ctx := context.Background()

	// Interleave event types; sequence must stay globally increasing.
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Role: "expert", Model: "m", Purpose: "draft", Success: true}); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}
	for i, id := range []string{"s-1", "s-2"} {
		if err := repo.AppendSession(ctx, SessionEventData{SessionID: id, StudentLevel: "Beginner", Topic: "Paging", Subject: "OS", Iterations: i}); err != nil {
			t.Fatalf("AppendSession: %v", err)
		}
	}

	records, err := repo.RecentSessions(ctx, 0)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 session records, got %d", len(records))
	}
	if records[0].SessionID != "s-2" {
		t.Fatalf("expected newest first, got %+v", records)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Fatal("sequence numbers must increase")
	}
}
