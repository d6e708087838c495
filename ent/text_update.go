// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/predicate"
	"github.com/mkoehler/sprechzeit/ent/text"
)

// TextUpdate is the builder for updating Text entities.
type TextUpdate struct {
	config
	hooks    []Hook
	mutation *TextMutation
}

// Where appends a list predicates to the TextUpdate builder.
func (_u *TextUpdate) Where(ps ...predicate.Text) *TextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *TextUpdate) SetSourceType(v string) *TextUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TextUpdate) SetNillableSourceType(v *string) *TextUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TextUpdate) SetTitle(v string) *TextUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TextUpdate) SetNillableTitle(v *string) *TextUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TextUpdate) ClearTitle() *TextUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *TextUpdate) SetSourceRef(v string) *TextUpdate {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *TextUpdate) SetNillableSourceRef(v *string) *TextUpdate {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// ClearSourceRef clears the value of the "source_ref" field.
func (_u *TextUpdate) ClearSourceRef() *TextUpdate {
	_u.mutation.ClearSourceRef()
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *TextUpdate) SetChunkIndex(v int) *TextUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *TextUpdate) SetNillableChunkIndex(v *int) *TextUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *TextUpdate) AddChunkIndex(v int) *TextUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *TextUpdate) SetContent(v string) *TextUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TextUpdate) SetNillableContent(v *string) *TextUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by IDs.
func (_u *TextUpdate) AddSessionIDs(ids ...int) *TextUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the PathSession entity.
func (_u *TextUpdate) AddSessions(v ...*PathSession) *TextUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the TextMutation object of the builder.
func (_u *TextUpdate) Mutation() *TextMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the PathSession entity.
func (_u *TextUpdate) ClearSessions() *TextUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to PathSession entities by IDs.
func (_u *TextUpdate) RemoveSessionIDs(ids ...int) *TextUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to PathSession entities.
func (_u *TextUpdate) RemoveSessions(v ...*PathSession) *TextUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TextUpdate) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := text.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Text.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChunkIndex(); ok {
		if err := text.ChunkIndexValidator(v); err != nil {
			return &ValidationError{Name: "chunk_index", err: fmt.Errorf(`ent: validator failed for field "Text.chunk_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := text.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Text.content": %w`, err)}
		}
	}
	return nil
}

func (_u *TextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(text.Table, text.Columns, sqlgraph.NewFieldSpec(text.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(text.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(text.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(text.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(text.FieldSourceRef, field.TypeString, value)
	}
	if _u.mutation.SourceRefCleared() {
		_spec.ClearField(text.FieldSourceRef, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(text.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(text.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(text.FieldContent, field.TypeString, value)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{text.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TextUpdateOne is the builder for updating a single Text entity.
type TextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TextMutation
}

// SetSourceType sets the "source_type" field.
func (_u *TextUpdateOne) SetSourceType(v string) *TextUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TextUpdateOne) SetNillableSourceType(v *string) *TextUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TextUpdateOne) SetTitle(v string) *TextUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TextUpdateOne) SetNillableTitle(v *string) *TextUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TextUpdateOne) ClearTitle() *TextUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *TextUpdateOne) SetSourceRef(v string) *TextUpdateOne {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *TextUpdateOne) SetNillableSourceRef(v *string) *TextUpdateOne {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// ClearSourceRef clears the value of the "source_ref" field.
func (_u *TextUpdateOne) ClearSourceRef() *TextUpdateOne {
	_u.mutation.ClearSourceRef()
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *TextUpdateOne) SetChunkIndex(v int) *TextUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *TextUpdateOne) SetNillableChunkIndex(v *int) *TextUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *TextUpdateOne) AddChunkIndex(v int) *TextUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *TextUpdateOne) SetContent(v string) *TextUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TextUpdateOne) SetNillableContent(v *string) *TextUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by IDs.
func (_u *TextUpdateOne) AddSessionIDs(ids ...int) *TextUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the PathSession entity.
func (_u *TextUpdateOne) AddSessions(v ...*PathSession) *TextUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the TextMutation object of the builder.
func (_u *TextUpdateOne) Mutation() *TextMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the PathSession entity.
func (_u *TextUpdateOne) ClearSessions() *TextUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to PathSession entities by IDs.
func (_u *TextUpdateOne) RemoveSessionIDs(ids ...int) *TextUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to PathSession entities.
func (_u *TextUpdateOne) RemoveSessions(v ...*PathSession) *TextUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the TextUpdate builder.
func (_u *TextUpdateOne) Where(ps ...predicate.Text) *TextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TextUpdateOne) Select(field string, fields ...string) *TextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Text entity.
func (_u *TextUpdateOne) Save(ctx context.Context) (*Text, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextUpdateOne) SaveX(ctx context.Context) *Text {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TextUpdateOne) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := text.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Text.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChunkIndex(); ok {
		if err := text.ChunkIndexValidator(v); err != nil {
			return &ValidationError{Name: "chunk_index", err: fmt.Errorf(`ent: validator failed for field "Text.chunk_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := text.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Text.content": %w`, err)}
		}
	}
	return nil
}

func (_u *TextUpdateOne) sqlSave(ctx context.Context) (_node *Text, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(text.Table, text.Columns, sqlgraph.NewFieldSpec(text.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Text.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, text.FieldID)
		for _, f := range fields {
			if !text.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != text.FieldID {
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
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(text.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(text.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(text.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(text.FieldSourceRef, field.TypeString, value)
	}
	if _u.mutation.SourceRefCleared() {
		_spec.ClearField(text.FieldSourceRef, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(text.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(text.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(text.FieldContent, field.TypeString, value)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Text{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{text.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
