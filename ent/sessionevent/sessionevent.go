// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentLevel holds the string denoting the student_level field in the database.
	FieldStudentLevel = "student_level"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldIterations holds the string denoting the iterations field in the database.
	FieldIterations = "iterations"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldQuizAccuracy holds the string denoting the quiz_accuracy field in the database.
	FieldQuizAccuracy = "quiz_accuracy"
	// FieldSkillProfile holds the string denoting the skill_profile field in the database.
	FieldSkillProfile = "skill_profile"
	// FieldPlanExcerpt holds the string denoting the plan_excerpt field in the database.
	FieldPlanExcerpt = "plan_excerpt"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStudentLevel,
	FieldTopic,
	FieldSubject,
	FieldIterations,
	FieldFinalScore,
	FieldQuizAccuracy,
	FieldSkillProfile,
	FieldPlanExcerpt,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultIterations holds the default value on creation for the "iterations" field.
	DefaultIterations int
	// DefaultFinalScore holds the default value on creation for the "final_score" field.
	DefaultFinalScore float64
	// DefaultQuizAccuracy holds the default value on creation for the "quiz_accuracy" field.
	DefaultQuizAccuracy float64
	// DefaultPlanExcerpt holds the default value on creation for the "plan_excerpt" field.
	DefaultPlanExcerpt string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentLevel orders the results by the student_level field.
func ByStudentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentLevel, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByIterations orders the results by the iterations field.
func ByIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterations, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByQuizAccuracy orders the results by the quiz_accuracy field.
func ByQuizAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizAccuracy, opts...).ToFunc()
}

// ByPlanExcerpt orders the results by the plan_excerpt field.
func ByPlanExcerpt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanExcerpt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
