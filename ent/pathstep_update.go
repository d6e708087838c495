// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/pathstep"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
	"github.com/mkoehler/sprechzeit/ent/predicate"
)

// PathStepUpdate is the builder for updating PathStep entities.
type PathStepUpdate struct {
	config
	hooks    []Hook
	mutation *PathStepMutation
}

// Where appends a list predicates to the PathStepUpdate builder.
func (_u *PathStepUpdate) Where(ps ...predicate.PathStep) *PathStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *PathStepUpdate) SetStepOrder(v int) *PathStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PathStepUpdate) SetNillableStepOrder(v *int) *PathStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PathStepUpdate) AddStepOrder(v int) *PathStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *PathStepUpdate) SetStepType(v string) *PathStepUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *PathStepUpdate) SetNillableStepType(v *string) *PathStepUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PathStepUpdate) SetConfig(v map[string]interface{}) *PathStepUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PathStepUpdate) ClearConfig() *PathStepUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetTemplateID sets the "template" edge to the PathTemplate entity by ID.
func (_u *PathStepUpdate) SetTemplateID(id int) *PathStepUpdate {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the PathTemplate entity.
func (_u *PathStepUpdate) SetTemplate(v *PathTemplate) *PathStepUpdate {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the PathStepMutation object of the builder.
func (_u *PathStepUpdate) Mutation() *PathStepMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the PathTemplate entity.
func (_u *PathStepUpdate) ClearTemplate() *PathStepUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathStepUpdate) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := pathstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PathStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := pathstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "PathStep.step_type": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathStep.template"`)
	}
	return nil
}

func (_u *PathStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathstep.Table, pathstep.Columns, sqlgraph.NewFieldSpec(pathstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(pathstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(pathstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(pathstep.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(pathstep.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(pathstep.FieldConfig, field.TypeJSON)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathStepUpdateOne is the builder for updating a single PathStep entity.
type PathStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathStepMutation
}

// SetStepOrder sets the "step_order" field.
func (_u *PathStepUpdateOne) SetStepOrder(v int) *PathStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PathStepUpdateOne) SetNillableStepOrder(v *int) *PathStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PathStepUpdateOne) AddStepOrder(v int) *PathStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *PathStepUpdateOne) SetStepType(v string) *PathStepUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *PathStepUpdateOne) SetNillableStepType(v *string) *PathStepUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PathStepUpdateOne) SetConfig(v map[string]interface{}) *PathStepUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PathStepUpdateOne) ClearConfig() *PathStepUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetTemplateID sets the "template" edge to the PathTemplate entity by ID.
func (_u *PathStepUpdateOne) SetTemplateID(id int) *PathStepUpdateOne {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the PathTemplate entity.
func (_u *PathStepUpdateOne) SetTemplate(v *PathTemplate) *PathStepUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the PathStepMutation object of the builder.
func (_u *PathStepUpdateOne) Mutation() *PathStepMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the PathTemplate entity.
func (_u *PathStepUpdateOne) ClearTemplate() *PathStepUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Where appends a list predicates to the PathStepUpdate builder.
func (_u *PathStepUpdateOne) Where(ps ...predicate.PathStep) *PathStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathStepUpdateOne) Select(field string, fields ...string) *PathStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathStep entity.
func (_u *PathStepUpdateOne) Save(ctx context.Context) (*PathStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathStepUpdateOne) SaveX(ctx context.Context) *PathStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := pathstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PathStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := pathstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "PathStep.step_type": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathStep.template"`)
	}
	return nil
}

func (_u *PathStepUpdateOne) sqlSave(ctx context.Context) (_node *PathStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathstep.Table, pathstep.Columns, sqlgraph.NewFieldSpec(pathstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathstep.FieldID)
		for _, f := range fields {
			if !pathstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathstep.FieldID {
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
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(pathstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(pathstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(pathstep.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(pathstep.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(pathstep.FieldConfig, field.TypeJSON)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PathStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
