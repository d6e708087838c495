// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/predicate"
	"github.com/mkoehler/sprechzeit/ent/text"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// PathSessionUpdate is the builder for updating PathSession entities.
type PathSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PathSessionMutation
}

// Where appends a list predicates to the PathSessionUpdate builder.
func (_u *PathSessionUpdate) Where(ps ...predicate.PathSession) *PathSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *PathSessionUpdate) SetStepOrder(v int) *PathSessionUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PathSessionUpdate) SetNillableStepOrder(v *int) *PathSessionUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PathSessionUpdate) AddStepOrder(v int) *PathSessionUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *PathSessionUpdate) SetStepType(v string) *PathSessionUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *PathSessionUpdate) SetNillableStepType(v *string) *PathSessionUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetContentRef sets the "content_ref" field.
func (_u *PathSessionUpdate) SetContentRef(v string) *PathSessionUpdate {
	_u.mutation.SetContentRef(v)
	return _u
}

// SetNillableContentRef sets the "content_ref" field if the given value is not nil.
func (_u *PathSessionUpdate) SetNillableContentRef(v *string) *PathSessionUpdate {
	if v != nil {
		_u.SetContentRef(*v)
	}
	return _u
}

// ClearContentRef clears the value of the "content_ref" field.
func (_u *PathSessionUpdate) ClearContentRef() *PathSessionUpdate {
	_u.mutation.ClearContentRef()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathSessionUpdate) SetStatus(v pathsession.Status) *PathSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathSessionUpdate) SetNillableStatus(v *pathsession.Status) *PathSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PathSessionUpdate) SetCompletedAt(v time.Time) *PathSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PathSessionUpdate) SetNillableCompletedAt(v *time.Time) *PathSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PathSessionUpdate) ClearCompletedAt() *PathSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRunID sets the "run" edge to the PathRun entity by ID.
func (_u *PathSessionUpdate) SetRunID(id int) *PathSessionUpdate {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the PathRun entity.
func (_u *PathSessionUpdate) SetRun(v *PathRun) *PathSessionUpdate {
	return _u.SetRunID(v.ID)
}

// SetTextID sets the "text" edge to the Text entity by ID.
func (_u *PathSessionUpdate) SetTextID(id int) *PathSessionUpdate {
	_u.mutation.SetTextID(id)
	return _u
}

// SetNillableTextID sets the "text" edge to the Text entity by ID if the given value is not nil.
func (_u *PathSessionUpdate) SetNillableTextID(id *int) *PathSessionUpdate {
	if id != nil {
		_u = _u.SetTextID(*id)
	}
	return _u
}

// SetText sets the "text" edge to the Text entity.
func (_u *PathSessionUpdate) SetText(v *Text) *PathSessionUpdate {
	return _u.SetTextID(v.ID)
}

// AddVocabIDs adds the "vocab" edge to the Vocab entity by IDs.
func (_u *PathSessionUpdate) AddVocabIDs(ids ...int) *PathSessionUpdate {
	_u.mutation.AddVocabIDs(ids...)
	return _u
}

// AddVocab adds the "vocab" edges to the Vocab entity.
func (_u *PathSessionUpdate) AddVocab(v ...*Vocab) *PathSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVocabIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *PathSessionUpdate) AddAttemptIDs(ids ...int) *PathSessionUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *PathSessionUpdate) AddAttempts(v ...*Attempt) *PathSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the PathSessionMutation object of the builder.
func (_u *PathSessionUpdate) Mutation() *PathSessionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the PathRun entity.
func (_u *PathSessionUpdate) ClearRun() *PathSessionUpdate {
	_u.mutation.ClearRun()
	return _u
}

// ClearText clears the "text" edge to the Text entity.
func (_u *PathSessionUpdate) ClearText() *PathSessionUpdate {
	_u.mutation.ClearText()
	return _u
}

// ClearVocab clears all "vocab" edges to the Vocab entity.
func (_u *PathSessionUpdate) ClearVocab() *PathSessionUpdate {
	_u.mutation.ClearVocab()
	return _u
}

// RemoveVocabIDs removes the "vocab" edge to Vocab entities by IDs.
func (_u *PathSessionUpdate) RemoveVocabIDs(ids ...int) *PathSessionUpdate {
	_u.mutation.RemoveVocabIDs(ids...)
	return _u
}

// RemoveVocab removes "vocab" edges to Vocab entities.
func (_u *PathSessionUpdate) RemoveVocab(v ...*Vocab) *PathSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVocabIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *PathSessionUpdate) ClearAttempts() *PathSessionUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *PathSessionUpdate) RemoveAttemptIDs(ids ...int) *PathSessionUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *PathSessionUpdate) RemoveAttempts(v ...*Attempt) *PathSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathSessionUpdate) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := pathsession.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PathSession.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := pathsession.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "PathSession.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pathsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PathSession.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathSession.run"`)
	}
	return nil
}

func (_u *PathSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathsession.Table, pathsession.Columns, sqlgraph.NewFieldSpec(pathsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(pathsession.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(pathsession.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(pathsession.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentRef(); ok {
		_spec.SetField(pathsession.FieldContentRef, field.TypeString, value)
	}
	if _u.mutation.ContentRefCleared() {
		_spec.ClearField(pathsession.FieldContentRef, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pathsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pathsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TextCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VocabCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVocabIDs(); len(nodes) > 0 && !_u.mutation.VocabCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VocabIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathSessionUpdateOne is the builder for updating a single PathSession entity.
type PathSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathSessionMutation
}

// SetStepOrder sets the "step_order" field.
func (_u *PathSessionUpdateOne) SetStepOrder(v int) *PathSessionUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PathSessionUpdateOne) SetNillableStepOrder(v *int) *PathSessionUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PathSessionUpdateOne) AddStepOrder(v int) *PathSessionUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *PathSessionUpdateOne) SetStepType(v string) *PathSessionUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *PathSessionUpdateOne) SetNillableStepType(v *string) *PathSessionUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetContentRef sets the "content_ref" field.
func (_u *PathSessionUpdateOne) SetContentRef(v string) *PathSessionUpdateOne {
	_u.mutation.SetContentRef(v)
	return _u
}

// SetNillableContentRef sets the "content_ref" field if the given value is not nil.
func (_u *PathSessionUpdateOne) SetNillableContentRef(v *string) *PathSessionUpdateOne {
	if v != nil {
		_u.SetContentRef(*v)
	}
	return _u
}

// ClearContentRef clears the value of the "content_ref" field.
func (_u *PathSessionUpdateOne) ClearContentRef() *PathSessionUpdateOne {
	_u.mutation.ClearContentRef()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PathSessionUpdateOne) SetStatus(v pathsession.Status) *PathSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PathSessionUpdateOne) SetNillableStatus(v *pathsession.Status) *PathSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PathSessionUpdateOne) SetCompletedAt(v time.Time) *PathSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PathSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *PathSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PathSessionUpdateOne) ClearCompletedAt() *PathSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRunID sets the "run" edge to the PathRun entity by ID.
func (_u *PathSessionUpdateOne) SetRunID(id int) *PathSessionUpdateOne {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the PathRun entity.
func (_u *PathSessionUpdateOne) SetRun(v *PathRun) *PathSessionUpdateOne {
	return _u.SetRunID(v.ID)
}

// SetTextID sets the "text" edge to the Text entity by ID.
func (_u *PathSessionUpdateOne) SetTextID(id int) *PathSessionUpdateOne {
	_u.mutation.SetTextID(id)
	return _u
}

// SetNillableTextID sets the "text" edge to the Text entity by ID if the given value is not nil.
func (_u *PathSessionUpdateOne) SetNillableTextID(id *int) *PathSessionUpdateOne {
	if id != nil {
		_u = _u.SetTextID(*id)
	}
	return _u
}

// SetText sets the "text" edge to the Text entity.
func (_u *PathSessionUpdateOne) SetText(v *Text) *PathSessionUpdateOne {
	return _u.SetTextID(v.ID)
}

// AddVocabIDs adds the "vocab" edge to the Vocab entity by IDs.
func (_u *PathSessionUpdateOne) AddVocabIDs(ids ...int) *PathSessionUpdateOne {
	_u.mutation.AddVocabIDs(ids...)
	return _u
}

// AddVocab adds the "vocab" edges to the Vocab entity.
func (_u *PathSessionUpdateOne) AddVocab(v ...*Vocab) *PathSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVocabIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *PathSessionUpdateOne) AddAttemptIDs(ids ...int) *PathSessionUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *PathSessionUpdateOne) AddAttempts(v ...*Attempt) *PathSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the PathSessionMutation object of the builder.
func (_u *PathSessionUpdateOne) Mutation() *PathSessionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the PathRun entity.
func (_u *PathSessionUpdateOne) ClearRun() *PathSessionUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// ClearText clears the "text" edge to the Text entity.
func (_u *PathSessionUpdateOne) ClearText() *PathSessionUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// ClearVocab clears all "vocab" edges to the Vocab entity.
func (_u *PathSessionUpdateOne) ClearVocab() *PathSessionUpdateOne {
	_u.mutation.ClearVocab()
	return _u
}

// RemoveVocabIDs removes the "vocab" edge to Vocab entities by IDs.
func (_u *PathSessionUpdateOne) RemoveVocabIDs(ids ...int) *PathSessionUpdateOne {
	_u.mutation.RemoveVocabIDs(ids...)
	return _u
}

// RemoveVocab removes "vocab" edges to Vocab entities.
func (_u *PathSessionUpdateOne) RemoveVocab(v ...*Vocab) *PathSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVocabIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *PathSessionUpdateOne) ClearAttempts() *PathSessionUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *PathSessionUpdateOne) RemoveAttemptIDs(ids ...int) *PathSessionUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *PathSessionUpdateOne) RemoveAttempts(v ...*Attempt) *PathSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the PathSessionUpdate builder.
func (_u *PathSessionUpdateOne) Where(ps ...predicate.PathSession) *PathSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathSessionUpdateOne) Select(field string, fields ...string) *PathSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathSession entity.
func (_u *PathSessionUpdateOne) Save(ctx context.Context) (*PathSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathSessionUpdateOne) SaveX(ctx context.Context) *PathSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathSessionUpdateOne) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := pathsession.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PathSession.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepType(); ok {
		if err := pathsession.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "PathSession.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pathsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PathSession.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathSession.run"`)
	}
	return nil
}

func (_u *PathSessionUpdateOne) sqlSave(ctx context.Context) (_node *PathSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathsession.Table, pathsession.Columns, sqlgraph.NewFieldSpec(pathsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathsession.FieldID)
		for _, f := range fields {
			if !pathsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathsession.FieldID {
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
		_spec.SetField(pathsession.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(pathsession.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(pathsession.FieldStepType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentRef(); ok {
		_spec.SetField(pathsession.FieldContentRef, field.TypeString, value)
	}
	if _u.mutation.ContentRefCleared() {
		_spec.ClearField(pathsession.FieldContentRef, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pathsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pathsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pathsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TextCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VocabCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVocabIDs(); len(nodes) > 0 && !_u.mutation.VocabCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VocabIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PathSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
