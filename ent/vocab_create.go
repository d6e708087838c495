// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// VocabCreate is the builder for creating a Vocab entity.
type VocabCreate struct {
	config
	mutation *VocabMutation
	hooks    []Hook
}

// SetTerm sets the "term" field.
func (_c *VocabCreate) SetTerm(v string) *VocabCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetLang sets the "lang" field.
func (_c *VocabCreate) SetLang(v string) *VocabCreate {
	_c.mutation.SetLang(v)
	return _c
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_c *VocabCreate) SetNillableLang(v *string) *VocabCreate {
	if v != nil {
		_c.SetLang(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *VocabCreate) SetDifficulty(v string) *VocabCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *VocabCreate) SetNillableDifficulty(v *string) *VocabCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *VocabCreate) SetDefinition(v string) *VocabCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_c *VocabCreate) SetNillableDefinition(v *string) *VocabCreate {
	if v != nil {
		_c.SetDefinition(*v)
	}
	return _c
}

// SetExamples sets the "examples" field.
func (_c *VocabCreate) SetExamples(v []string) *VocabCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *VocabCreate) SetPracticeCount(v int) *VocabCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *VocabCreate) SetNillablePracticeCount(v *int) *VocabCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *VocabCreate) SetLastPracticedAt(v time.Time) *VocabCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *VocabCreate) SetNillableLastPracticedAt(v *time.Time) *VocabCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VocabCreate) SetCreatedAt(v time.Time) *VocabCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VocabCreate) SetNillableCreatedAt(v *time.Time) *VocabCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by IDs.
func (_c *VocabCreate) AddSessionIDs(ids ...int) *VocabCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the PathSession entity.
func (_c *VocabCreate) AddSessions(v ...*PathSession) *VocabCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the VocabMutation object of the builder.
func (_c *VocabCreate) Mutation() *VocabMutation {
	return _c.mutation
}

// Save creates the Vocab in the database.
func (_c *VocabCreate) Save(ctx context.Context) (*Vocab, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocabCreate) SaveX(ctx context.Context) *Vocab {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VocabCreate) defaults() {
	if _, ok := _c.mutation.Lang(); !ok {
		v := vocab.DefaultLang
		_c.mutation.SetLang(v)
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := vocab.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vocab.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocabCreate) check() error {
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "Vocab.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := vocab.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Vocab.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Lang(); !ok {
		return &ValidationError{Name: "lang", err: errors.New(`ent: missing required field "Vocab.lang"`)}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "Vocab.practice_count"`)}
	}
	if v, ok := _c.mutation.PracticeCount(); ok {
		if err := vocab.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "Vocab.practice_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vocab.created_at"`)}
	}
	return nil
}

func (_c *VocabCreate) sqlSave(ctx context.Context) (*Vocab, error) {
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

func (_c *VocabCreate) createSpec() (*Vocab, *sqlgraph.CreateSpec) {
	var (
		_node = &Vocab{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocab.Table, sqlgraph.NewFieldSpec(vocab.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(vocab.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Lang(); ok {
		_spec.SetField(vocab.FieldLang, field.TypeString, value)
		_node.Lang = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(vocab.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(vocab.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(vocab.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(vocab.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(vocab.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vocab.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   vocab.SessionsTable,
			Columns: vocab.SessionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pathsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VocabCreateBulk is the builder for creating many Vocab entities in bulk.
type VocabCreateBulk struct {
	config
	err      error
	builders []*VocabCreate
}

// Save creates the Vocab entities in the database.
func (_c *VocabCreateBulk) Save(ctx context.Context) ([]*Vocab, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vocab, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabMutation)
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
func (_c *VocabCreateBulk) SaveX(ctx context.Context) []*Vocab {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
