package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one completed tutoring session: the optimization
// run's outcome plus the quiz result and updated skill profile.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session"),
		field.String("student_level").
			Comment("Beginner, Intermediate, or Advanced"),
		field.String("topic").
			Comment("Lesson topic the plan was optimized for"),
		field.String("subject").
			Comment("Subject the topic belongs to"),
		field.Int("iterations").
			Default(0).
			Comment("Optimization iterations actually run"),
		field.Float("final_score").
			Default(0).
			Comment("CIDDP average of the best candidate"),
		field.Float("quiz_accuracy").
			Default(0).
			Comment("Post-session quiz accuracy in [0,1]"),
		field.JSON("skill_profile", map[string]int{}).
			Optional().
			Comment("Updated skill profile after the post-quiz rule"),
		field.String("plan_excerpt").
			Default("").
			Comment("First 500 characters of the final plan"),
		field.String("status").
			Default("").
			Comment("Module Completed or Incomplete/Needs Practice"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}
