// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/interviewlog"
	"github.com/abhisek/intervu/ent/schema"
)

// InterviewLogCreate is the builder for creating a InterviewLog entity.
type InterviewLogCreate struct {
	config
	mutation *InterviewLogMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewLogCreate) SetSessionID(v string) *InterviewLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCandidateName sets the "candidate_name" field.
func (_c *InterviewLogCreate) SetCandidateName(v string) *InterviewLogCreate {
	_c.mutation.SetCandidateName(v)
	return _c
}

// SetInterviewRole sets the "interview_role" field.
func (_c *InterviewLogCreate) SetInterviewRole(v string) *InterviewLogCreate {
	_c.mutation.SetInterviewRole(v)
	return _c
}

// SetSkillProfile sets the "skill_profile" field.
func (_c *InterviewLogCreate) SetSkillProfile(v map[string]schema.SkillRecord) *InterviewLogCreate {
	_c.mutation.SetSkillProfile(v)
	return _c
}

// SetReport sets the "report" field.
func (_c *InterviewLogCreate) SetReport(v string) *InterviewLogCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *InterviewLogCreate) SetTranscript(v []schema.TranscriptEntry) *InterviewLogCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterviewLogCreate) SetCreatedAt(v time.Time) *InterviewLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterviewLogCreate) SetNillableCreatedAt(v *time.Time) *InterviewLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the InterviewLogMutation object of the builder.
func (_c *InterviewLogCreate) Mutation() *InterviewLogMutation {
	return _c.mutation
}

// Save creates the InterviewLog in the database.
func (_c *InterviewLogCreate) Save(ctx context.Context) (*InterviewLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewLogCreate) SaveX(ctx context.Context) *InterviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interviewlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewLogCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewLog.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interviewlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewLog.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CandidateName(); !ok {
		return &ValidationError{Name: "candidate_name", err: errors.New(`ent: missing required field "InterviewLog.candidate_name"`)}
	}
	if v, ok := _c.mutation.CandidateName(); ok {
		if err := interviewlog.CandidateNameValidator(v); err != nil {
			return &ValidationError{Name: "candidate_name", err: fmt.Errorf(`ent: validator failed for field "InterviewLog.candidate_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InterviewRole(); !ok {
		return &ValidationError{Name: "interview_role", err: errors.New(`ent: missing required field "InterviewLog.interview_role"`)}
	}
	if v, ok := _c.mutation.InterviewRole(); ok {
		if err := interviewlog.InterviewRoleValidator(v); err != nil {
			return &ValidationError{Name: "interview_role", err: fmt.Errorf(`ent: validator failed for field "InterviewLog.interview_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillProfile(); !ok {
		return &ValidationError{Name: "skill_profile", err: errors.New(`ent: missing required field "InterviewLog.skill_profile"`)}
	}
	if _, ok := _c.mutation.Report(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required field "InterviewLog.report"`)}
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required field "InterviewLog.transcript"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InterviewLog.created_at"`)}
	}
	return nil
}

func (_c *InterviewLogCreate) sqlSave(ctx context.Context) (*InterviewLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewLogCreate) createSpec() (*InterviewLog, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewlog.Table, sqlgraph.NewFieldSpec(interviewlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CandidateName(); ok {
		_spec.SetField(interviewlog.FieldCandidateName, field.TypeString, value)
		_node.CandidateName = value
	}
	if value, ok := _c.mutation.InterviewRole(); ok {
		_spec.SetField(interviewlog.FieldInterviewRole, field.TypeString, value)
		_node.InterviewRole = value
	}
	if value, ok := _c.mutation.SkillProfile(); ok {
		_spec.SetField(interviewlog.FieldSkillProfile, field.TypeJSON, value)
		_node.SkillProfile = value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(interviewlog.FieldReport, field.TypeString, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(interviewlog.FieldTranscript, field.TypeJSON, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interviewlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InterviewLogCreateBulk is the builder for creating many InterviewLog entities in bulk.
type InterviewLogCreateBulk struct {
	config
	err      error
	builders []*InterviewLogCreate
}

// Save creates the InterviewLog entities in the database.
func (_c *InterviewLogCreateBulk) Save(ctx context.Context) ([]*InterviewLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterviewLogCreateBulk) SaveX(ctx context.Context) []*InterviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
