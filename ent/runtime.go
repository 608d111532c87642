// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ameya/eduplan/ent/llmrequestevent"
	"github.com/ameya/eduplan/ent/schema"
	"github.com/ameya/eduplan/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescIterations is the schema descriptor for iterations field.
	sessioneventDescIterations := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultIterations holds the default value on creation for the iterations field.
	sessionevent.DefaultIterations = sessioneventDescIterations.Default.(int)
	// sessioneventDescFinalScore is the schema descriptor for final_score field.
	sessioneventDescFinalScore := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultFinalScore holds the default value on creation for the final_score field.
	sessionevent.DefaultFinalScore = sessioneventDescFinalScore.Default.(float64)
	// sessioneventDescQuizAccuracy is the schema descriptor for quiz_accuracy field.
	sessioneventDescQuizAccuracy := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultQuizAccuracy holds the default value on creation for the quiz_accuracy field.
	sessionevent.DefaultQuizAccuracy = sessioneventDescQuizAccuracy.Default.(float64)
	// sessioneventDescPlanExcerpt is the schema descriptor for plan_excerpt field.
	sessioneventDescPlanExcerpt := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultPlanExcerpt holds the default value on creation for the plan_excerpt field.
	sessionevent.DefaultPlanExcerpt = sessioneventDescPlanExcerpt.Default.(string)
	// sessioneventDescStatus is the schema descriptor for status field.
	sessioneventDescStatus := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultStatus holds the default value on creation for the status field.
	sessionevent.DefaultStatus = sessioneventDescStatus.Default.(string)
}
