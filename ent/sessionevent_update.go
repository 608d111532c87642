// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameya/eduplan/ent/predicate"
	"github.com/ameya/eduplan/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentLevel sets the "student_level" field.
func (_u *SessionEventUpdate) SetStudentLevel(v string) *SessionEventUpdate {
	_u.mutation.SetStudentLevel(v)
	return _u
}

// SetNillableStudentLevel sets the "student_level" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStudentLevel(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStudentLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdate) SetTopic(v string) *SessionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTopic(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionEventUpdate) SetSubject(v string) *SessionEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSubject(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *SessionEventUpdate) SetIterations(v int) *SessionEventUpdate {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableIterations(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *SessionEventUpdate) AddIterations(v int) *SessionEventUpdate {
	_u.mutation.AddIterations(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SessionEventUpdate) SetFinalScore(v float64) *SessionEventUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableFinalScore(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SessionEventUpdate) AddFinalScore(v float64) *SessionEventUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetQuizAccuracy sets the "quiz_accuracy" field.
func (_u *SessionEventUpdate) SetQuizAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.ResetQuizAccuracy()
	_u.mutation.SetQuizAccuracy(v)
	return _u
}

// SetNillableQuizAccuracy sets the "quiz_accuracy" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuizAccuracy(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetQuizAccuracy(*v)
	}
	return _u
}

// AddQuizAccuracy adds value to the "quiz_accuracy" field.
func (_u *SessionEventUpdate) AddQuizAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.AddQuizAccuracy(v)
	return _u
}

// SetSkillProfile sets the "skill_profile" field.
func (_u *SessionEventUpdate) SetSkillProfile(v map[string]int) *SessionEventUpdate {
	_u.mutation.SetSkillProfile(v)
	return _u
}

// ClearSkillProfile clears the value of the "skill_profile" field.
func (_u *SessionEventUpdate) ClearSkillProfile() *SessionEventUpdate {
	_u.mutation.ClearSkillProfile()
	return _u
}

// SetPlanExcerpt sets the "plan_excerpt" field.
func (_u *SessionEventUpdate) SetPlanExcerpt(v string) *SessionEventUpdate {
	_u.mutation.SetPlanExcerpt(v)
	return _u
}

// SetNillablePlanExcerpt sets the "plan_excerpt" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePlanExcerpt(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetPlanExcerpt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionEventUpdate) SetStatus(v string) *SessionEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStatus(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentLevel(); ok {
		_spec.SetField(sessionevent.FieldStudentLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(sessionevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(sessionevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(sessionevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(sessionevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuizAccuracy(); ok {
		_spec.SetField(sessionevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizAccuracy(); ok {
		_spec.AddField(sessionevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SkillProfile(); ok {
		_spec.SetField(sessionevent.FieldSkillProfile, field.TypeJSON, value)
	}
	if _u.mutation.SkillProfileCleared() {
		_spec.ClearField(sessionevent.FieldSkillProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanExcerpt(); ok {
		_spec.SetField(sessionevent.FieldPlanExcerpt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionevent.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentLevel sets the "student_level" field.
func (_u *SessionEventUpdateOne) SetStudentLevel(v string) *SessionEventUpdateOne {
	_u.mutation.SetStudentLevel(v)
	return _u
}

// SetNillableStudentLevel sets the "student_level" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStudentLevel(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStudentLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdateOne) SetTopic(v string) *SessionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTopic(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionEventUpdateOne) SetSubject(v string) *SessionEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSubject(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *SessionEventUpdateOne) SetIterations(v int) *SessionEventUpdateOne {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableIterations(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *SessionEventUpdateOne) AddIterations(v int) *SessionEventUpdateOne {
	_u.mutation.AddIterations(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SessionEventUpdateOne) SetFinalScore(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableFinalScore(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SessionEventUpdateOne) AddFinalScore(v float64) *SessionEventUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetQuizAccuracy sets the "quiz_accuracy" field.
func (_u *SessionEventUpdateOne) SetQuizAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetQuizAccuracy()
	_u.mutation.SetQuizAccuracy(v)
	return _u
}

// SetNillableQuizAccuracy sets the "quiz_accuracy" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuizAccuracy(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuizAccuracy(*v)
	}
	return _u
}

// AddQuizAccuracy adds value to the "quiz_accuracy" field.
func (_u *SessionEventUpdateOne) AddQuizAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.AddQuizAccuracy(v)
	return _u
}

// SetSkillProfile sets the "skill_profile" field.
func (_u *SessionEventUpdateOne) SetSkillProfile(v map[string]int) *SessionEventUpdateOne {
	_u.mutation.SetSkillProfile(v)
	return _u
}

// ClearSkillProfile clears the value of the "skill_profile" field.
func (_u *SessionEventUpdateOne) ClearSkillProfile() *SessionEventUpdateOne {
	_u.mutation.ClearSkillProfile()
	return _u
}

// SetPlanExcerpt sets the "plan_excerpt" field.
func (_u *SessionEventUpdateOne) SetPlanExcerpt(v string) *SessionEventUpdateOne {
	_u.mutation.SetPlanExcerpt(v)
	return _u
}

// SetNillablePlanExcerpt sets the "plan_excerpt" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePlanExcerpt(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPlanExcerpt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionEventUpdateOne) SetStatus(v string) *SessionEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStatus(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentLevel(); ok {
		_spec.SetField(sessionevent.FieldStudentLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(sessionevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(sessionevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(sessionevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(sessionevent.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuizAccuracy(); ok {
		_spec.SetField(sessionevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizAccuracy(); ok {
		_spec.AddField(sessionevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SkillProfile(); ok {
		_spec.SetField(sessionevent.FieldSkillProfile, field.TypeJSON, value)
	}
	if _u.mutation.SkillProfileCleared() {
		_spec.ClearField(sessionevent.FieldSkillProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanExcerpt(); ok {
		_spec.SetField(sessionevent.FieldPlanExcerpt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionevent.FieldStatus, field.TypeString, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
