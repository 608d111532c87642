package store

import (
	"context"
	"fmt"

	"github.com/ameya/eduplan/ent"
	"github.com/ameya/eduplan/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentLevel(data.StudentLevel).
		SetTopic(data.Topic).
		SetSubject(data.Subject).
		SetIterations(data.Iterations).
		SetFinalScore(data.FinalScore).
		SetQuizAccuracy(data.QuizAccuracy).
		SetPlanExcerpt(data.PlanExcerpt).
		SetStatus(data.Status)

	if len(data.SkillProfile) > 0 {
		builder = builder.SetSkillProfile(data.SkillProfile)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			SessionID:    e.SessionID,
			StudentLevel: e.StudentLevel,
			Topic:        e.Topic,
			Iterations:   e.Iterations,
			FinalScore:   e.FinalScore,
			QuizAccuracy: e.QuizAccuracy,
			SkillProfile: e.SkillProfile,
			PlanExcerpt:  e.PlanExcerpt,
			Status:       e.Status,
		})
	}
	return records, nil
}
