// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/predicate"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// VocabUpdate is the builder for updating Vocab entities.
type VocabUpdate struct {
	config
	hooks    []Hook
	mutation *VocabMutation
}

// Where appends a list predicates to the VocabUpdate builder.
func (_u *VocabUpdate) Where(ps ...predicate.Vocab) *VocabUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTerm sets the "term" field.
func (_u *VocabUpdate) SetTerm(v string) *VocabUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *VocabUpdate) SetNillableTerm(v *string) *VocabUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *VocabUpdate) SetLang(v string) *VocabUpdate {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *VocabUpdate) SetNillableLang(v *string) *VocabUpdate {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *VocabUpdate) SetDifficulty(v string) *VocabUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *VocabUpdate) SetNillableDifficulty(v *string) *VocabUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *VocabUpdate) ClearDifficulty() *VocabUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *VocabUpdate) SetDefinition(v string) *VocabUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *VocabUpdate) SetNillableDefinition(v *string) *VocabUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// ClearDefinition clears the value of the "definition" field.
func (_u *VocabUpdate) ClearDefinition() *VocabUpdate {
	_u.mutation.ClearDefinition()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *VocabUpdate) SetExamples(v []string) *VocabUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *VocabUpdate) AppendExamples(v []string) *VocabUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *VocabUpdate) ClearExamples() *VocabUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *VocabUpdate) SetPracticeCount(v int) *VocabUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *VocabUpdate) SetNillablePracticeCount(v *int) *VocabUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *VocabUpdate) AddPracticeCount(v int) *VocabUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *VocabUpdate) SetLastPracticedAt(v time.Time) *VocabUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *VocabUpdate) SetNillableLastPracticedAt(v *time.Time) *VocabUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *VocabUpdate) ClearLastPracticedAt() *VocabUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by IDs.
func (_u *VocabUpdate) AddSessionIDs(ids ...int) *VocabUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the PathSession entity.
func (_u *VocabUpdate) AddSessions(v ...*PathSession) *VocabUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the VocabMutation object of the builder.
func (_u *VocabUpdate) Mutation() *VocabMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the PathSession entity.
func (_u *VocabUpdate) ClearSessions() *VocabUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to PathSession entities by IDs.
func (_u *VocabUpdate) RemoveSessionIDs(ids ...int) *VocabUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to PathSession entities.
func (_u *VocabUpdate) RemoveSessions(v ...*PathSession) *VocabUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocabUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocabUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabUpdate) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := vocab.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Vocab.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := vocab.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "Vocab.practice_count": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocab.Table, vocab.Columns, sqlgraph.NewFieldSpec(vocab.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(vocab.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(vocab.FieldLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(vocab.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(vocab.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(vocab.FieldDefinition, field.TypeString, value)
	}
	if _u.mutation.DefinitionCleared() {
		_spec.ClearField(vocab.FieldDefinition, field.TypeString)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(vocab.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocab.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(vocab.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(vocab.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(vocab.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(vocab.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(vocab.FieldLastPracticedAt, field.TypeTime)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocab.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocabUpdateOne is the builder for updating a single Vocab entity.
type VocabUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabMutation
}

// SetTerm sets the "term" field.
func (_u *VocabUpdateOne) SetTerm(v string) *VocabUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *VocabUpdateOne) SetNillableTerm(v *string) *VocabUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *VocabUpdateOne) SetLang(v string) *VocabUpdateOne {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *VocabUpdateOne) SetNillableLang(v *string) *VocabUpdateOne {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *VocabUpdateOne) SetDifficulty(v string) *VocabUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *VocabUpdateOne) SetNillableDifficulty(v *string) *VocabUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *VocabUpdateOne) ClearDifficulty() *VocabUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *VocabUpdateOne) SetDefinition(v string) *VocabUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *VocabUpdateOne) SetNillableDefinition(v *string) *VocabUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// ClearDefinition clears the value of the "definition" field.
func (_u *VocabUpdateOne) ClearDefinition() *VocabUpdateOne {
	_u.mutation.ClearDefinition()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *VocabUpdateOne) SetExamples(v []string) *VocabUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *VocabUpdateOne) AppendExamples(v []string) *VocabUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *VocabUpdateOne) ClearExamples() *VocabUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *VocabUpdateOne) SetPracticeCount(v int) *VocabUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *VocabUpdateOne) SetNillablePracticeCount(v *int) *VocabUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *VocabUpdateOne) AddPracticeCount(v int) *VocabUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *VocabUpdateOne) SetLastPracticedAt(v time.Time) *VocabUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *VocabUpdateOne) SetNillableLastPracticedAt(v *time.Time) *VocabUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *VocabUpdateOne) ClearLastPracticedAt() *VocabUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by IDs.
func (_u *VocabUpdateOne) AddSessionIDs(ids ...int) *VocabUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the PathSession entity.
func (_u *VocabUpdateOne) AddSessions(v ...*PathSession) *VocabUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the VocabMutation object of the builder.
func (_u *VocabUpdateOne) Mutation() *VocabMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the PathSession entity.
func (_u *VocabUpdateOne) ClearSessions() *VocabUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to PathSession entities by IDs.
func (_u *VocabUpdateOne) RemoveSessionIDs(ids ...int) *VocabUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to PathSession entities.
func (_u *VocabUpdateOne) RemoveSessions(v ...*PathSession) *VocabUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the VocabUpdate builder.
func (_u *VocabUpdateOne) Where(ps ...predicate.Vocab) *VocabUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocabUpdateOne) Select(field string, fields ...string) *VocabUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vocab entity.
func (_u *VocabUpdateOne) Save(ctx context.Context) (*Vocab, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabUpdateOne) SaveX(ctx context.Context) *Vocab {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocabUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabUpdateOne) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := vocab.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Vocab.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := vocab.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "Vocab.practice_count": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabUpdateOne) sqlSave(ctx context.Context) (_node *Vocab, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocab.Table, vocab.Columns, sqlgraph.NewFieldSpec(vocab.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vocab.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocab.FieldID)
		for _, f := range fields {
			if !vocab.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocab.FieldID {
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
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(vocab.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(vocab.FieldLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(vocab.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(vocab.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(vocab.FieldDefinition, field.TypeString, value)
	}
	if _u.mutation.DefinitionCleared() {
		_spec.ClearField(vocab.FieldDefinition, field.TypeString)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(vocab.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocab.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(vocab.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(vocab.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(vocab.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(vocab.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(vocab.FieldLastPracticedAt, field.TypeTime)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vocab{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocab.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
