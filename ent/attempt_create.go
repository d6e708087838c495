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
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/schema"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptCreate) SetAttemptID(v string) *AttemptCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *AttemptCreate) SetMode(v string) *AttemptCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AttemptCreate) SetTopic(v string) *AttemptCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTopic(v *string) *AttemptCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetSourceText sets the "source_text" field.
func (_c *AttemptCreate) SetSourceText(v string) *AttemptCreate {
	_c.mutation.SetSourceText(v)
	return _c
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableSourceText(v *string) *AttemptCreate {
	if v != nil {
		_c.SetSourceText(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *AttemptCreate) SetTranscript(v string) *AttemptCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *AttemptCreate) SetDurationSeconds(v float64) *AttemptCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableDurationSeconds(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetWpm sets the "wpm" field.
func (_c *AttemptCreate) SetWpm(v float64) *AttemptCreate {
	_c.mutation.SetWpm(v)
	return _c
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableWpm(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetWpm(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *AttemptCreate) SetWordCount(v int) *AttemptCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableWordCount(v *int) *AttemptCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetUniqueWords sets the "unique_words" field.
func (_c *AttemptCreate) SetUniqueWords(v int) *AttemptCreate {
	_c.mutation.SetUniqueWords(v)
	return _c
}

// SetNillableUniqueWords sets the "unique_words" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableUniqueWords(v *int) *AttemptCreate {
	if v != nil {
		_c.SetUniqueWords(*v)
	}
	return _c
}

// SetUniqueRatio sets the "unique_ratio" field.
func (_c *AttemptCreate) SetUniqueRatio(v float64) *AttemptCreate {
	_c.mutation.SetUniqueRatio(v)
	return _c
}

// SetNillableUniqueRatio sets the "unique_ratio" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableUniqueRatio(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetUniqueRatio(*v)
	}
	return _c
}

// SetAvgWordLen sets the "avg_word_len" field.
func (_c *AttemptCreate) SetAvgWordLen(v float64) *AttemptCreate {
	_c.mutation.SetAvgWordLen(v)
	return _c
}

// SetNillableAvgWordLen sets the "avg_word_len" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableAvgWordLen(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetAvgWordLen(*v)
	}
	return _c
}

// SetFillerCount sets the "filler_count" field.
func (_c *AttemptCreate) SetFillerCount(v int) *AttemptCreate {
	_c.mutation.SetFillerCount(v)
	return _c
}

// SetNillableFillerCount sets the "filler_count" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableFillerCount(v *int) *AttemptCreate {
	if v != nil {
		_c.SetFillerCount(*v)
	}
	return _c
}

// SetAsrEmpty sets the "asr_empty" field.
func (_c *AttemptCreate) SetAsrEmpty(v bool) *AttemptCreate {
	_c.mutation.SetAsrEmpty(v)
	return _c
}

// SetNillableAsrEmpty sets the "asr_empty" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableAsrEmpty(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetAsrEmpty(*v)
	}
	return _c
}

// SetRetellEmpty sets the "retell_empty" field.
func (_c *AttemptCreate) SetRetellEmpty(v bool) *AttemptCreate {
	_c.mutation.SetRetellEmpty(v)
	return _c
}

// SetNillableRetellEmpty sets the "retell_empty" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableRetellEmpty(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetRetellEmpty(*v)
	}
	return _c
}

// SetTooShort sets the "too_short" field.
func (_c *AttemptCreate) SetTooShort(v bool) *AttemptCreate {
	_c.mutation.SetTooShort(v)
	return _c
}

// SetNillableTooShort sets the "too_short" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTooShort(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetTooShort(*v)
	}
	return _c
}

// SetSuspectedSilence sets the "suspected_silence" field.
func (_c *AttemptCreate) SetSuspectedSilence(v bool) *AttemptCreate {
	_c.mutation.SetSuspectedSilence(v)
	return _c
}

// SetNillableSuspectedSilence sets the "suspected_silence" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableSuspectedSilence(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetSuspectedSilence(*v)
	}
	return _c
}

// SetHallucinationHit sets the "hallucination_hit" field.
func (_c *AttemptCreate) SetHallucinationHit(v bool) *AttemptCreate {
	_c.mutation.SetHallucinationHit(v)
	return _c
}

// SetNillableHallucinationHit sets the "hallucination_hit" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableHallucinationHit(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetHallucinationHit(*v)
	}
	return _c
}

// SetStopwordRatio sets the "stopword_ratio" field.
func (_c *AttemptCreate) SetStopwordRatio(v float64) *AttemptCreate {
	_c.mutation.SetStopwordRatio(v)
	return _c
}

// SetNillableStopwordRatio sets the "stopword_ratio" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableStopwordRatio(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetStopwordRatio(*v)
	}
	return _c
}

// SetLowQuality sets the "low_quality" field.
func (_c *AttemptCreate) SetLowQuality(v bool) *AttemptCreate {
	_c.mutation.SetLowQuality(v)
	return _c
}

// SetNillableLowQuality sets the "low_quality" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableLowQuality(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetLowQuality(*v)
	}
	return _c
}

// SetExtras sets the "extras" field.
func (_c *AttemptCreate) SetExtras(v *schema.AttemptExtras) *AttemptCreate {
	_c.mutation.SetExtras(v)
	return _c
}

// SetSessionID sets the "session" edge to the PathSession entity by ID.
func (_c *AttemptCreate) SetSessionID(id int) *AttemptCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetNillableSessionID sets the "session" edge to the PathSession entity by ID if the given value is not nil.
func (_c *AttemptCreate) SetNillableSessionID(id *int) *AttemptCreate {
	if id != nil {
		_c = _c.SetSessionID(*id)
	}
	return _c
}

// SetSession sets the "session" edge to the PathSession entity.
func (_c *AttemptCreate) SetSession(v *PathSession) *AttemptCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := attempt.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.UniqueWords(); !ok {
		v := attempt.DefaultUniqueWords
		_c.mutation.SetUniqueWords(v)
	}
	if _, ok := _c.mutation.UniqueRatio(); !ok {
		v := attempt.DefaultUniqueRatio
		_c.mutation.SetUniqueRatio(v)
	}
	if _, ok := _c.mutation.AvgWordLen(); !ok {
		v := attempt.DefaultAvgWordLen
		_c.mutation.SetAvgWordLen(v)
	}
	if _, ok := _c.mutation.FillerCount(); !ok {
		v := attempt.DefaultFillerCount
		_c.mutation.SetFillerCount(v)
	}
	if _, ok := _c.mutation.AsrEmpty(); !ok {
		v := attempt.DefaultAsrEmpty
		_c.mutation.SetAsrEmpty(v)
	}
	if _, ok := _c.mutation.RetellEmpty(); !ok {
		v := attempt.DefaultRetellEmpty
		_c.mutation.SetRetellEmpty(v)
	}
	if _, ok := _c.mutation.TooShort(); !ok {
		v := attempt.DefaultTooShort
		_c.mutation.SetTooShort(v)
	}
	if _, ok := _c.mutation.SuspectedSilence(); !ok {
		v := attempt.DefaultSuspectedSilence
		_c.mutation.SetSuspectedSilence(v)
	}
	if _, ok := _c.mutation.HallucinationHit(); !ok {
		v := attempt.DefaultHallucinationHit
		_c.mutation.SetHallucinationHit(v)
	}
	if _, ok := _c.mutation.StopwordRatio(); !ok {
		v := attempt.DefaultStopwordRatio
		_c.mutation.SetStopwordRatio(v)
	}
	if _, ok := _c.mutation.LowQuality(); !ok {
		v := attempt.DefaultLowQuality
		_c.mutation.SetLowQuality(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Attempt.attempt_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Attempt.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := attempt.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Attempt.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required field "Attempt.transcript"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "Attempt.word_count"`)}
	}
	if _, ok := _c.mutation.UniqueWords(); !ok {
		return &ValidationError{Name: "unique_words", err: errors.New(`ent: missing required field "Attempt.unique_words"`)}
	}
	if _, ok := _c.mutation.UniqueRatio(); !ok {
		return &ValidationError{Name: "unique_ratio", err: errors.New(`ent: missing required field "Attempt.unique_ratio"`)}
	}
	if _, ok := _c.mutation.AvgWordLen(); !ok {
		return &ValidationError{Name: "avg_word_len", err: errors.New(`ent: missing required field "Attempt.avg_word_len"`)}
	}
	if _, ok := _c.mutation.FillerCount(); !ok {
		return &ValidationError{Name: "filler_count", err: errors.New(`ent: missing required field "Attempt.filler_count"`)}
	}
	if _, ok := _c.mutation.AsrEmpty(); !ok {
		return &ValidationError{Name: "asr_empty", err: errors.New(`ent: missing required field "Attempt.asr_empty"`)}
	}
	if _, ok := _c.mutation.RetellEmpty(); !ok {
		return &ValidationError{Name: "retell_empty", err: errors.New(`ent: missing required field "Attempt.retell_empty"`)}
	}
	if _, ok := _c.mutation.TooShort(); !ok {
		return &ValidationError{Name: "too_short", err: errors.New(`ent: missing required field "Attempt.too_short"`)}
	}
	if _, ok := _c.mutation.SuspectedSilence(); !ok {
		return &ValidationError{Name: "suspected_silence", err: errors.New(`ent: missing required field "Attempt.suspected_silence"`)}
	}
	if _, ok := _c.mutation.HallucinationHit(); !ok {
		return &ValidationError{Name: "hallucination_hit", err: errors.New(`ent: missing required field "Attempt.hallucination_hit"`)}
	}
	if _, ok := _c.mutation.StopwordRatio(); !ok {
		return &ValidationError{Name: "stopword_ratio", err: errors.New(`ent: missing required field "Attempt.stopword_ratio"`)}
	}
	if _, ok := _c.mutation.LowQuality(); !ok {
		return &ValidationError{Name: "low_quality", err: errors.New(`ent: missing required field "Attempt.low_quality"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attempt.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(attempt.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.SourceText(); ok {
		_spec.SetField(attempt.FieldSourceText, field.TypeString, value)
		_node.SourceText = &value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(attempt.FieldTranscript, field.TypeString, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(attempt.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.Wpm(); ok {
		_spec.SetField(attempt.FieldWpm, field.TypeFloat64, value)
		_node.Wpm = &value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(attempt.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.UniqueWords(); ok {
		_spec.SetField(attempt.FieldUniqueWords, field.TypeInt, value)
		_node.UniqueWords = value
	}
	if value, ok := _c.mutation.UniqueRatio(); ok {
		_spec.SetField(attempt.FieldUniqueRatio, field.TypeFloat64, value)
		_node.UniqueRatio = value
	}
	if value, ok := _c.mutation.AvgWordLen(); ok {
		_spec.SetField(attempt.FieldAvgWordLen, field.TypeFloat64, value)
		_node.AvgWordLen = value
	}
	if value, ok := _c.mutation.FillerCount(); ok {
		_spec.SetField(attempt.FieldFillerCount, field.TypeInt, value)
		_node.FillerCount = value
	}
	if value, ok := _c.mutation.AsrEmpty(); ok {
		_spec.SetField(attempt.FieldAsrEmpty, field.TypeBool, value)
		_node.AsrEmpty = value
	}
	if value, ok := _c.mutation.RetellEmpty(); ok {
		_spec.SetField(attempt.FieldRetellEmpty, field.TypeBool, value)
		_node.RetellEmpty = value
	}
	if value, ok := _c.mutation.TooShort(); ok {
		_spec.SetField(attempt.FieldTooShort, field.TypeBool, value)
		_node.TooShort = value
	}
	if value, ok := _c.mutation.SuspectedSilence(); ok {
		_spec.SetField(attempt.FieldSuspectedSilence, field.TypeBool, value)
		_node.SuspectedSilence = value
	}
	if value, ok := _c.mutation.HallucinationHit(); ok {
		_spec.SetField(attempt.FieldHallucinationHit, field.TypeBool, value)
		_node.HallucinationHit = value
	}
	if value, ok := _c.mutation.StopwordRatio(); ok {
		_spec.SetField(attempt.FieldStopwordRatio, field.TypeFloat64, value)
		_node.StopwordRatio = value
	}
	if value, ok := _c.mutation.LowQuality(); ok {
		_spec.SetField(attempt.FieldLowQuality, field.TypeBool, value)
		_node.LowQuality = value
	}
	if value, ok := _c.mutation.Extras(); ok {
		_spec.SetField(attempt.FieldExtras, field.TypeJSON, value)
		_node.Extras = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.SessionTable,
			Columns: []string{attempt.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pathsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.path_session_attempts = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
