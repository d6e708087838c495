// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/pathstep"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
)

// PathStepCreate is the builder for creating a PathStep entity.
type PathStepCreate struct {
	config
	mutation *PathStepMutation
	hooks    []Hook
}

// SetStepOrder sets the "step_order" field.
func (_c *PathStepCreate) SetStepOrder(v int) *PathStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *PathStepCreate) SetStepType(v string) *PathStepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *PathStepCreate) SetConfig(v map[string]interface{}) *PathStepCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetTemplateID sets the "template" edge to the PathTemplate entity by ID.
func (_c *PathStepCreate) SetTemplateID(id int) *PathStepCreate {
	_c.mutation.SetTemplateID(id)
	return _c
}

// SetTemplate sets the "template" edge to the PathTemplate entity.
func (_c *PathStepCreate) SetTemplate(v *PathTemplate) *PathStepCreate {
	return _c.SetTemplateID(v.ID)
}

// Mutation returns the PathStepMutation object of the builder.
func (_c *PathStepCreate) Mutation() *PathStepMutation {
	return _c.mutation
}

// Save creates the PathStep in the database.
func (_c *PathStepCreate) Save(ctx context.Context) (*PathStep, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathStepCreate) SaveX(ctx context.Context) *PathStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathStepCreate) check() error {
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "PathStep.step_order"`)}
	}
	if v, ok := _c.mutation.StepOrder(); ok {
		if err := pathstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PathStep.step_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "PathStep.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := pathstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "PathStep.step_type": %w`, err)}
		}
	}
	if len(_c.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required edge "PathStep.template"`)}
	}
	return nil
}

func (_c *PathStepCreate) sqlSave(ctx context.Context) (*PathStep, error) {
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

func (_c *PathStepCreate) createSpec() (*PathStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PathStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathstep.Table, sqlgraph.NewFieldSpec(pathstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(pathstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(pathstep.FieldStepType, field.TypeString, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(pathstep.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pathstep.TemplateTable,
			Columns: []string{pathstep.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pathtemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.path_template_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PathStepCreateBulk is the builder for creating many PathStep entities in bulk.
type PathStepCreateBulk struct {
	config
	err      error
	builders []*PathStepCreate
}

// Save creates the PathStep entities in the database.
func (_c *PathStepCreateBulk) Save(ctx context.Context) ([]*PathStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathStepMutation)
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
func (_c *PathStepCreateBulk) SaveX(ctx context.Context) []*PathStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
