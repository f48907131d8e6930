// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/interviewlog"
	"github.com/abhisek/intervu/ent/predicate"
	"github.com/abhisek/intervu/ent/schema"
)

// InterviewLogUpdate is the builder for updating InterviewLog entities.
type InterviewLogUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewLogMutation
}

// Where appends a list predicates to the InterviewLogUpdate builder.
func (_u *InterviewLogUpdate) Where(ps ...predicate.InterviewLog) *InterviewLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *InterviewLogUpdate) SetCandidateName(v string) *InterviewLogUpdate {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *InterviewLogUpdate) SetNillableCandidateName(v *string) *InterviewLogUpdate {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetInterviewRole sets the "interview_role" field.
func (_u *InterviewLogUpdate) SetInterviewRole(v string) *InterviewLogUpdate {
	_u.mutation.SetInterviewRole(v)
	return _u
}

// SetNillableInterviewRole sets the "interview_role" field if the given value is not nil.
func (_u *InterviewLogUpdate) SetNillableInterviewRole(v *string) *InterviewLogUpdate {
	if v != nil {
		_u.SetInterviewRole(*v)
	}
	return _u
}

// SetSkillProfile sets the "skill_profile" field.
func (_u *InterviewLogUpdate) SetSkillProfile(v map[string]schema.SkillRecord) *InterviewLogUpdate {
	_u.mutation.SetSkillProfile(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *InterviewLogUpdate) SetReport(v string) *InterviewLogUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// SetNillableReport sets the "report" field if the given value is not nil.
func (_u *InterviewLogUpdate) SetNillableReport(v *string) *InterviewLogUpdate {
	if v != nil {
		_u.SetReport(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *InterviewLogUpdate) SetTranscript(v []schema.TranscriptEntry) *InterviewLogUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *InterviewLogUpdate) AppendTranscript(v []schema.TranscriptEntry) *InterviewLogUpdate {
	_u.mutation.AppendTranscript(v)
	return _u
}

// Mutation returns the InterviewLogMutation object of the builder.
func (_u *InterviewLogUpdate) Mutation() *InterviewLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewLogUpdate) check() error {
	if v, ok := _u.mutation.CandidateName(); ok {
		if err := interviewlog.CandidateNameValidator(v); err != nil {
			return &ValidationError{Name: "candidate_name", err: fmt.Errorf(`ent: validator failed for field "InterviewLog.candidate_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InterviewRole(); ok {
		if err := interviewlog.InterviewRoleValidator(v); err != nil {
			return &ValidationError{Name: "interview_role", err: fmt.Errorf(`ent: validator failed for field "InterviewLog.interview_role": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewlog.Table, interviewlog.Columns, sqlgraph.NewFieldSpec(interviewlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(interviewlog.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterviewRole(); ok {
		_spec.SetField(interviewlog.FieldInterviewRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillProfile(); ok {
		_spec.SetField(interviewlog.FieldSkillProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(interviewlog.FieldReport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(interviewlog.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interviewlog.FieldTranscript, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewLogUpdateOne is the builder for updating a single InterviewLog entity.
type InterviewLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewLogMutation
}

// SetCandidateName sets the "candidate_name" field.
func (_u *InterviewLogUpdateOne) SetCandidateName(v string) *InterviewLogUpdateOne {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *InterviewLogUpdateOne) SetNillableCandidateName(v *string) *InterviewLogUpdateOne {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetInterviewRole sets the "interview_role" field.
func (_u *InterviewLogUpdateOne) SetInterviewRole(v string) *InterviewLogUpdateOne {
	_u.mutation.SetInterviewRole(v)
	return _u
}

// SetNillableInterviewRole sets the "interview_role" field if the given value is not nil.
func (_u *InterviewLogUpdateOne) SetNillableInterviewRole(v *string) *InterviewLogUpdateOne {
	if v != nil {
		_u.SetInterviewRole(*v)
	}
	return _u
}

// SetSkillProfile sets the "skill_profile" field.
func (_u *InterviewLogUpdateOne) SetSkillProfile(v map[string]schema.SkillRecord) *InterviewLogUpdateOne {
	_u.mutation.SetSkillProfile(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *InterviewLogUpdateOne) SetReport(v string) *InterviewLogUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// SetNillableReport sets the "report" field if the given value is not nil.
func (_u *InterviewLogUpdateOne) SetNillableReport(v *string) *InterviewLogUpdateOne {
	if v != nil {
		_u.SetReport(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *InterviewLogUpdateOne) SetTranscript(v []schema.TranscriptEntry) *InterviewLogUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *InterviewLogUpdateOne) AppendTranscript(v []schema.TranscriptEntry) *InterviewLogUpdateOne {
	_u.mutation.AppendTranscript(v)
	return _u
}

// Mutation returns the InterviewLogMutation object of the builder.
func (_u *InterviewLogUpdateOne) Mutation() *InterviewLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewLogUpdate builder.
func (_u *InterviewLogUpdateOne) Where(ps ...predicate.InterviewLog) *InterviewLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewLogUpdateOne) Select(field string, fields ...string) *InterviewLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewLog entity.
func (_u *InterviewLogUpdateOne) Save(ctx context.Context) (*InterviewLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewLogUpdateOne) SaveX(ctx context.Context) *InterviewLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewLogUpdateOne) check() error {
	if v, ok := _u.mutation.CandidateName(); ok {
		if err := interviewlog.CandidateNameValidator(v); err != nil {
			return &ValidationError{Name: "candidate_name", err: fmt.Errorf(`ent: validator failed for field "InterviewLog.candidate_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InterviewRole(); ok {
		if err := interviewlog.InterviewRoleValidator(v); err != nil {
			return &ValidationError{Name: "interview_role", err: fmt.Errorf(`ent: validator failed for field "InterviewLog.interview_role": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewLogUpdateOne) sqlSave(ctx context.Context) (_node *InterviewLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewlog.Table, interviewlog.Columns, sqlgraph.NewFieldSpec(interviewlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewlog.FieldID)
		for _, f := range fields {
			if !interviewlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewlog.FieldID {
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
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(interviewlog.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterviewRole(); ok {
		_spec.SetField(interviewlog.FieldInterviewRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillProfile(); ok {
		_spec.SetField(interviewlog.FieldSkillProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(interviewlog.FieldReport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(interviewlog.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interviewlog.FieldTranscript, value)
		})
	}
	_node = &InterviewLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
