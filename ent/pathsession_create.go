// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/text"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// PathSessionCreate is the builder for creating a PathSession entity.
type PathSessionCreate struct {
	config
	mutation *PathSessionMutation
	hooks    []Hook
}

// SetStepOrder sets the "step_order" field.
func (_c *PathSessionCreate) SetStepOrder(v int) *PathSessionCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *PathSessionCreate) SetStepType(v string) *PathSessionCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetContentRef sets the "content_ref" field.
func (_c *PathSessionCreate) SetContentRef(v string) *PathSessionCreate {
	_c.mutation.SetContentRef(v)
	return _c
}

// SetNillableContentRef sets the "content_ref" field if the given value is not nil.
func (_c *PathSessionCreate) SetNillableContentRef(v *string) *PathSessionCreate {
	if v != nil {
		_c.SetContentRef(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PathSessionCreate) SetStatus(v pathsession.Status) *PathSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PathSessionCreate) SetNillableStatus(v *pathsession.Status) *PathSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PathSessionCreate) SetStartedAt(v time.Time) *PathSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PathSessionCreate) SetNillableStartedAt(v *time.Time) *PathSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PathSessionCreate) SetCompletedAt(v time.Time) *PathSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PathSessionCreate) SetNillableCompletedAt(v *time.Time) *PathSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetRunID sets the "run" edge to the PathRun entity by ID.
func (_c *PathSessionCreate) SetRunID(id int) *PathSessionCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the PathRun entity.
func (_c *PathSessionCreate) SetRun(v *PathRun) *PathSessionCreate {
	return _c.SetRunID(v.ID)
}

// SetTextID sets the "text" edge to the Text entity by ID.
func (_c *PathSessionCreate) SetTextID(id int) *PathSessionCreate {
	_c.mutation.SetTextID(id)
	return _c
}

// SetNillableTextID sets the "text" edge to the Text entity by ID if the given value is not nil.
func (_c *PathSessionCreate) SetNillableTextID(id *int) *PathSessionCreate {
	if id != nil {
		_c = _c.SetTextID(*id)
	}
	return _c
}

// SetText sets the "text" edge to the Text entity.
func (_c *PathSessionCreate) SetText(v *Text) *PathSessionCreate {
	return _c.SetTextID(v.ID)
}

// AddVocabIDs adds the "vocab" edge to the Vocab entity by IDs.
func (_c *PathSessionCreate) AddVocabIDs(ids ...int) *PathSessionCreate {
	_c.mutation.AddVocabIDs(ids...)
	return _c
}

// AddVocab adds the "vocab" edges to the Vocab entity.
func (_c *PathSessionCreate) AddVocab(v ...*Vocab) *PathSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVocabIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_c *PathSessionCreate) AddAttemptIDs(ids ...int) *PathSessionCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_c *PathSessionCreate) AddAttempts(v ...*Attempt) *PathSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the PathSessionMutation object of the builder.
func (_c *PathSessionCreate) Mutation() *PathSessionMutation {
	return _c.mutation
}

// Save creates the PathSession in the database.
func (_c *PathSessionCreate) Save(ctx context.Context) (*PathSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathSessionCreate) SaveX(ctx context.Context) *PathSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pathsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := pathsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathSessionCreate) check() error {
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "PathSession.step_order"`)}
	}
	if v, ok := _c.mutation.StepOrder(); ok {
		if err := pathsession.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PathSession.step_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "PathSession.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := pathsession.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "PathSession.step_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PathSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pathsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PathSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PathSession.started_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "PathSession.run"`)}
	}
	return nil
}

func (_c *PathSessionCreate) sqlSave(ctx context.Context) (*PathSession, error) {
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

func (_c *PathSessionCreate) createSpec() (*PathSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PathSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathsession.Table, sqlgraph.NewFieldSpec(pathsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(pathsession.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(pathsession.FieldStepType, field.TypeString, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.ContentRef(); ok {
		_spec.SetField(pathsession.FieldContentRef, field.TypeString, value)
		_node.ContentRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pathsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pathsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pathsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pathsession.RunTable,
			Columns: []string{pathsession.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pathrun.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.path_run_sessions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TextIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   pathsession.TextTable,
			Columns: []string{pathsession.TextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(text.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.path_session_text = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VocabIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   pathsession.VocabTable,
			Columns: pathsession.VocabPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocab.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pathsession.AttemptsTable,
			Columns: []string{pathsession.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PathSessionCreateBulk is the builder for creating many PathSession entities in bulk.
type PathSessionCreateBulk struct {
	config
	err      error
	builders []*PathSessionCreate
}

// Save creates the PathSession entities in the database.
func (_c *PathSessionCreateBulk) Save(ctx context.Context) ([]*PathSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathSessionMutation)
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
func (_c *PathSessionCreateBulk) SaveX(ctx context.Context) []*PathSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
