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
	"github.com/mkoehler/sprechzeit/ent/text"
)

// TextCreate is the builder for creating a Text entity.
type TextCreate struct {
	config
	mutation *TextMutation
	hooks    []Hook
}

// SetSourceType sets the "source_type" field.
func (_c *TextCreate) SetSourceType(v string) *TextCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TextCreate) SetTitle(v string) *TextCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *TextCreate) SetNillableTitle(v *string) *TextCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSourceRef sets the "source_ref" field.
func (_c *TextCreate) SetSourceRef(v string) *TextCreate {
	_c.mutation.SetSourceRef(v)
	return _c
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_c *TextCreate) SetNillableSourceRef(v *string) *TextCreate {
	if v != nil {
		_c.SetSourceRef(*v)
	}
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *TextCreate) SetChunkIndex(v int) *TextCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_c *TextCreate) SetNillableChunkIndex(v *int) *TextCreate {
	if v != nil {
		_c.SetChunkIndex(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *TextCreate) SetContent(v string) *TextCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TextCreate) SetCreatedAt(v time.Time) *TextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TextCreate) SetNillableCreatedAt(v *time.Time) *TextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by IDs.
func (_c *TextCreate) AddSessionIDs(ids ...int) *TextCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the PathSession entity.
func (_c *TextCreate) AddSessions(v ...*PathSession) *TextCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the TextMutation object of the builder.
func (_c *TextCreate) Mutation() *TextMutation {
	return _c.mutation
}

// Save creates the Text in the database.
func (_c *TextCreate) Save(ctx context.Context) (*Text, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TextCreate) SaveX(ctx context.Context) *Text {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TextCreate) defaults() {
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		v := text.DefaultChunkIndex
		_c.mutation.SetChunkIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := text.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TextCreate) check() error {
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Text.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := text.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Text.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "Text.chunk_index"`)}
	}
	if v, ok := _c.mutation.ChunkIndex(); ok {
		if err := text.ChunkIndexValidator(v); err != nil {
			return &ValidationError{Name: "chunk_index", err: fmt.Errorf(`ent: validator failed for field "Text.chunk_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Text.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := text.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Text.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Text.created_at"`)}
	}
	return nil
}

func (_c *TextCreate) sqlSave(ctx context.Context) (*Text, error) {
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

func (_c *TextCreate) createSpec() (*Text, *sqlgraph.CreateSpec) {
	var (
		_node = &Text{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(text.Table, sqlgraph.NewFieldSpec(text.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(text.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(text.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SourceRef(); ok {
		_spec.SetField(text.FieldSourceRef, field.TypeString, value)
		_node.SourceRef = value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(text.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(text.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(text.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   text.SessionsTable,
			Columns: []string{text.SessionsColumn},
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

// TextCreateBulk is the builder for creating many Text entities in bulk.
type TextCreateBulk struct {
	config
	err      error
	builders []*TextCreate
}

// Save creates the Text entities in the database.
func (_c *TextCreateBulk) Save(ctx context.Context) ([]*Text, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Text, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TextMutation)
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
func (_c *TextCreateBulk) SaveX(ctx context.Context) []*Text {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
