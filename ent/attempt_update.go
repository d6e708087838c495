// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/predicate"
	"github.com/mkoehler/sprechzeit/ent/schema"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptUpdate) SetMode(v string) *AttemptUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableMode(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptUpdate) SetTopic(v string) *AttemptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTopic(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *AttemptUpdate) ClearTopic() *AttemptUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *AttemptUpdate) SetSourceText(v string) *AttemptUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSourceText(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *AttemptUpdate) ClearSourceText() *AttemptUpdate {
	_u.mutation.ClearSourceText()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *AttemptUpdate) SetTranscript(v string) *AttemptUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTranscript(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *AttemptUpdate) SetDurationSeconds(v float64) *AttemptUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableDurationSeconds(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *AttemptUpdate) AddDurationSeconds(v float64) *AttemptUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *AttemptUpdate) ClearDurationSeconds() *AttemptUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *AttemptUpdate) SetWpm(v float64) *AttemptUpdate {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableWpm(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *AttemptUpdate) AddWpm(v float64) *AttemptUpdate {
	_u.mutation.AddWpm(v)
	return _u
}

// ClearWpm clears the value of the "wpm" field.
func (_u *AttemptUpdate) ClearWpm() *AttemptUpdate {
	_u.mutation.ClearWpm()
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *AttemptUpdate) SetWordCount(v int) *AttemptUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableWordCount(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *AttemptUpdate) AddWordCount(v int) *AttemptUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetUniqueWords sets the "unique_words" field.
func (_u *AttemptUpdate) SetUniqueWords(v int) *AttemptUpdate {
	_u.mutation.ResetUniqueWords()
	_u.mutation.SetUniqueWords(v)
	return _u
}

// SetNillableUniqueWords sets the "unique_words" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUniqueWords(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetUniqueWords(*v)
	}
	return _u
}

// AddUniqueWords adds value to the "unique_words" field.
func (_u *AttemptUpdate) AddUniqueWords(v int) *AttemptUpdate {
	_u.mutation.AddUniqueWords(v)
	return _u
}

// SetUniqueRatio sets the "unique_ratio" field.
func (_u *AttemptUpdate) SetUniqueRatio(v float64) *AttemptUpdate {
	_u.mutation.ResetUniqueRatio()
	_u.mutation.SetUniqueRatio(v)
	return _u
}

// SetNillableUniqueRatio sets the "unique_ratio" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUniqueRatio(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetUniqueRatio(*v)
	}
	return _u
}

// AddUniqueRatio adds value to the "unique_ratio" field.
func (_u *AttemptUpdate) AddUniqueRatio(v float64) *AttemptUpdate {
	_u.mutation.AddUniqueRatio(v)
	return _u
}

// SetAvgWordLen sets the "avg_word_len" field.
func (_u *AttemptUpdate) SetAvgWordLen(v float64) *AttemptUpdate {
	_u.mutation.ResetAvgWordLen()
	_u.mutation.SetAvgWordLen(v)
	return _u
}

// SetNillableAvgWordLen sets the "avg_word_len" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAvgWordLen(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetAvgWordLen(*v)
	}
	return _u
}

// AddAvgWordLen adds value to the "avg_word_len" field.
func (_u *AttemptUpdate) AddAvgWordLen(v float64) *AttemptUpdate {
	_u.mutation.AddAvgWordLen(v)
	return _u
}

// SetFillerCount sets the "filler_count" field.
func (_u *AttemptUpdate) SetFillerCount(v int) *AttemptUpdate {
	_u.mutation.ResetFillerCount()
	_u.mutation.SetFillerCount(v)
	return _u
}

// SetNillableFillerCount sets the "filler_count" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFillerCount(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetFillerCount(*v)
	}
	return _u
}

// AddFillerCount adds value to the "filler_count" field.
func (_u *AttemptUpdate) AddFillerCount(v int) *AttemptUpdate {
	_u.mutation.AddFillerCount(v)
	return _u
}

// SetAsrEmpty sets the "asr_empty" field.
func (_u *AttemptUpdate) SetAsrEmpty(v bool) *AttemptUpdate {
	_u.mutation.SetAsrEmpty(v)
	return _u
}

// SetNillableAsrEmpty sets the "asr_empty" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAsrEmpty(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetAsrEmpty(*v)
	}
	return _u
}

// SetRetellEmpty sets the "retell_empty" field.
func (_u *AttemptUpdate) SetRetellEmpty(v bool) *AttemptUpdate {
	_u.mutation.SetRetellEmpty(v)
	return _u
}

// SetNillableRetellEmpty sets the "retell_empty" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableRetellEmpty(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetRetellEmpty(*v)
	}
	return _u
}

// SetTooShort sets the "too_short" field.
func (_u *AttemptUpdate) SetTooShort(v bool) *AttemptUpdate {
	_u.mutation.SetTooShort(v)
	return _u
}

// SetNillableTooShort sets the "too_short" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTooShort(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetTooShort(*v)
	}
	return _u
}

// SetSuspectedSilence sets the "suspected_silence" field.
func (_u *AttemptUpdate) SetSuspectedSilence(v bool) *AttemptUpdate {
	_u.mutation.SetSuspectedSilence(v)
	return _u
}

// SetNillableSuspectedSilence sets the "suspected_silence" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSuspectedSilence(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetSuspectedSilence(*v)
	}
	return _u
}

// SetHallucinationHit sets the "hallucination_hit" field.
func (_u *AttemptUpdate) SetHallucinationHit(v bool) *AttemptUpdate {
	_u.mutation.SetHallucinationHit(v)
	return _u
}

// SetNillableHallucinationHit sets the "hallucination_hit" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableHallucinationHit(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetHallucinationHit(*v)
	}
	return _u
}

// SetStopwordRatio sets the "stopword_ratio" field.
func (_u *AttemptUpdate) SetStopwordRatio(v float64) *AttemptUpdate {
	_u.mutation.ResetStopwordRatio()
	_u.mutation.SetStopwordRatio(v)
	return _u
}

// SetNillableStopwordRatio sets the "stopword_ratio" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableStopwordRatio(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetStopwordRatio(*v)
	}
	return _u
}

// AddStopwordRatio adds value to the "stopword_ratio" field.
func (_u *AttemptUpdate) AddStopwordRatio(v float64) *AttemptUpdate {
	_u.mutation.AddStopwordRatio(v)
	return _u
}

// SetLowQuality sets the "low_quality" field.
func (_u *AttemptUpdate) SetLowQuality(v bool) *AttemptUpdate {
	_u.mutation.SetLowQuality(v)
	return _u
}

// SetNillableLowQuality sets the "low_quality" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableLowQuality(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetLowQuality(*v)
	}
	return _u
}

// SetExtras sets the "extras" field.
func (_u *AttemptUpdate) SetExtras(v *schema.AttemptExtras) *AttemptUpdate {
	_u.mutation.SetExtras(v)
	return _u
}

// ClearExtras clears the value of the "extras" field.
func (_u *AttemptUpdate) ClearExtras() *AttemptUpdate {
	_u.mutation.ClearExtras()
	return _u
}

// SetSessionID sets the "session" edge to the PathSession entity by ID.
func (_u *AttemptUpdate) SetSessionID(id int) *AttemptUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the PathSession entity by ID if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSessionID(id *int) *AttemptUpdate {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the PathSession entity.
func (_u *AttemptUpdate) SetSession(v *PathSession) *AttemptUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the PathSession entity.
func (_u *AttemptUpdate) ClearSession() *AttemptUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := attempt.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Attempt.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attempt.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(attempt.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(attempt.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(attempt.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(attempt.FieldTranscript, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(attempt.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(attempt.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(attempt.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(attempt.FieldWpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(attempt.FieldWpm, field.TypeFloat64, value)
	}
	if _u.mutation.WpmCleared() {
		_spec.ClearField(attempt.FieldWpm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(attempt.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(attempt.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UniqueWords(); ok {
		_spec.SetField(attempt.FieldUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUniqueWords(); ok {
		_spec.AddField(attempt.FieldUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UniqueRatio(); ok {
		_spec.SetField(attempt.FieldUniqueRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUniqueRatio(); ok {
		_spec.AddField(attempt.FieldUniqueRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgWordLen(); ok {
		_spec.SetField(attempt.FieldAvgWordLen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgWordLen(); ok {
		_spec.AddField(attempt.FieldAvgWordLen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FillerCount(); ok {
		_spec.SetField(attempt.FieldFillerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFillerCount(); ok {
		_spec.AddField(attempt.FieldFillerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AsrEmpty(); ok {
		_spec.SetField(attempt.FieldAsrEmpty, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RetellEmpty(); ok {
		_spec.SetField(attempt.FieldRetellEmpty, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TooShort(); ok {
		_spec.SetField(attempt.FieldTooShort, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspectedSilence(); ok {
		_spec.SetField(attempt.FieldSuspectedSilence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HallucinationHit(); ok {
		_spec.SetField(attempt.FieldHallucinationHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopwordRatio(); ok {
		_spec.SetField(attempt.FieldStopwordRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStopwordRatio(); ok {
		_spec.AddField(attempt.FieldStopwordRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LowQuality(); ok {
		_spec.SetField(attempt.FieldLowQuality, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Extras(); ok {
		_spec.SetField(attempt.FieldExtras, field.TypeJSON, value)
	}
	if _u.mutation.ExtrasCleared() {
		_spec.ClearField(attempt.FieldExtras, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetMode sets the "mode" field.
func (_u *AttemptUpdateOne) SetMode(v string) *AttemptUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableMode(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptUpdateOne) SetTopic(v string) *AttemptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTopic(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *AttemptUpdateOne) ClearTopic() *AttemptUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *AttemptUpdateOne) SetSourceText(v string) *AttemptUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSourceText(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *AttemptUpdateOne) ClearSourceText() *AttemptUpdateOne {
	_u.mutation.ClearSourceText()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *AttemptUpdateOne) SetTranscript(v string) *AttemptUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTranscript(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *AttemptUpdateOne) SetDurationSeconds(v float64) *AttemptUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableDurationSeconds(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *AttemptUpdateOne) AddDurationSeconds(v float64) *AttemptUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *AttemptUpdateOne) ClearDurationSeconds() *AttemptUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *AttemptUpdateOne) SetWpm(v float64) *AttemptUpdateOne {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableWpm(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *AttemptUpdateOne) AddWpm(v float64) *AttemptUpdateOne {
	_u.mutation.AddWpm(v)
	return _u
}

// ClearWpm clears the value of the "wpm" field.
func (_u *AttemptUpdateOne) ClearWpm() *AttemptUpdateOne {
	_u.mutation.ClearWpm()
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *AttemptUpdateOne) SetWordCount(v int) *AttemptUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableWordCount(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *AttemptUpdateOne) AddWordCount(v int) *AttemptUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetUniqueWords sets the "unique_words" field.
func (_u *AttemptUpdateOne) SetUniqueWords(v int) *AttemptUpdateOne {
	_u.mutation.ResetUniqueWords()
	_u.mutation.SetUniqueWords(v)
	return _u
}

// SetNillableUniqueWords sets the "unique_words" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUniqueWords(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetUniqueWords(*v)
	}
	return _u
}

// AddUniqueWords adds value to the "unique_words" field.
func (_u *AttemptUpdateOne) AddUniqueWords(v int) *AttemptUpdateOne {
	_u.mutation.AddUniqueWords(v)
	return _u
}

// SetUniqueRatio sets the "unique_ratio" field.
func (_u *AttemptUpdateOne) SetUniqueRatio(v float64) *AttemptUpdateOne {
	_u.mutation.ResetUniqueRatio()
	_u.mutation.SetUniqueRatio(v)
	return _u
}

// SetNillableUniqueRatio sets the "unique_ratio" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUniqueRatio(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetUniqueRatio(*v)
	}
	return _u
}

// AddUniqueRatio adds value to the "unique_ratio" field.
func (_u *AttemptUpdateOne) AddUniqueRatio(v float64) *AttemptUpdateOne {
	_u.mutation.AddUniqueRatio(v)
	return _u
}

// SetAvgWordLen sets the "avg_word_len" field.
func (_u *AttemptUpdateOne) SetAvgWordLen(v float64) *AttemptUpdateOne {
	_u.mutation.ResetAvgWordLen()
	_u.mutation.SetAvgWordLen(v)
	return _u
}

// SetNillableAvgWordLen sets the "avg_word_len" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAvgWordLen(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetAvgWordLen(*v)
	}
	return _u
}

// AddAvgWordLen adds value to the "avg_word_len" field.
func (_u *AttemptUpdateOne) AddAvgWordLen(v float64) *AttemptUpdateOne {
	_u.mutation.AddAvgWordLen(v)
	return _u
}

// SetFillerCount sets the "filler_count" field.
func (_u *AttemptUpdateOne) SetFillerCount(v int) *AttemptUpdateOne {
	_u.mutation.ResetFillerCount()
	_u.mutation.SetFillerCount(v)
	return _u
}

// SetNillableFillerCount sets the "filler_count" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFillerCount(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetFillerCount(*v)
	}
	return _u
}

// AddFillerCount adds value to the "filler_count" field.
func (_u *AttemptUpdateOne) AddFillerCount(v int) *AttemptUpdateOne {
	_u.mutation.AddFillerCount(v)
	return _u
}

// SetAsrEmpty sets the "asr_empty" field.
func (_u *AttemptUpdateOne) SetAsrEmpty(v bool) *AttemptUpdateOne {
	_u.mutation.SetAsrEmpty(v)
	return _u
}

// SetNillableAsrEmpty sets the "asr_empty" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAsrEmpty(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetAsrEmpty(*v)
	}
	return _u
}

// SetRetellEmpty sets the "retell_empty" field.
func (_u *AttemptUpdateOne) SetRetellEmpty(v bool) *AttemptUpdateOne {
	_u.mutation.SetRetellEmpty(v)
	return _u
}

// SetNillableRetellEmpty sets the "retell_empty" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableRetellEmpty(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetRetellEmpty(*v)
	}
	return _u
}

// SetTooShort sets the "too_short" field.
func (_u *AttemptUpdateOne) SetTooShort(v bool) *AttemptUpdateOne {
	_u.mutation.SetTooShort(v)
	return _u
}

// SetNillableTooShort sets the "too_short" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTooShort(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetTooShort(*v)
	}
	return _u
}

// SetSuspectedSilence sets the "suspected_silence" field.
func (_u *AttemptUpdateOne) SetSuspectedSilence(v bool) *AttemptUpdateOne {
	_u.mutation.SetSuspectedSilence(v)
	return _u
}

// SetNillableSuspectedSilence sets the "suspected_silence" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSuspectedSilence(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetSuspectedSilence(*v)
	}
	return _u
}

// SetHallucinationHit sets the "hallucination_hit" field.
func (_u *AttemptUpdateOne) SetHallucinationHit(v bool) *AttemptUpdateOne {
	_u.mutation.SetHallucinationHit(v)
	return _u
}

// SetNillableHallucinationHit sets the "hallucination_hit" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableHallucinationHit(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetHallucinationHit(*v)
	}
	return _u
}

// SetStopwordRatio sets the "stopword_ratio" field.
func (_u *AttemptUpdateOne) SetStopwordRatio(v float64) *AttemptUpdateOne {
	_u.mutation.ResetStopwordRatio()
	_u.mutation.SetStopwordRatio(v)
	return _u
}

// SetNillableStopwordRatio sets the "stopword_ratio" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableStopwordRatio(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetStopwordRatio(*v)
	}
	return _u
}

// AddStopwordRatio adds value to the "stopword_ratio" field.
func (_u *AttemptUpdateOne) AddStopwordRatio(v float64) *AttemptUpdateOne {
	_u.mutation.AddStopwordRatio(v)
	return _u
}

// SetLowQuality sets the "low_quality" field.
func (_u *AttemptUpdateOne) SetLowQuality(v bool) *AttemptUpdateOne {
	_u.mutation.SetLowQuality(v)
	return _u
}

// SetNillableLowQuality sets the "low_quality" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableLowQuality(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetLowQuality(*v)
	}
	return _u
}

// SetExtras sets the "extras" field.
func (_u *AttemptUpdateOne) SetExtras(v *schema.AttemptExtras) *AttemptUpdateOne {
	_u.mutation.SetExtras(v)
	return _u
}

// ClearExtras clears the value of the "extras" field.
func (_u *AttemptUpdateOne) ClearExtras() *AttemptUpdateOne {
	_u.mutation.ClearExtras()
	return _u
}

// SetSessionID sets the "session" edge to the PathSession entity by ID.
func (_u *AttemptUpdateOne) SetSessionID(id int) *AttemptUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the PathSession entity by ID if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSessionID(id *int) *AttemptUpdateOne {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the PathSession entity.
func (_u *AttemptUpdateOne) SetSession(v *PathSession) *AttemptUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the PathSession entity.
func (_u *AttemptUpdateOne) ClearSession() *AttemptUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := attempt.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Attempt.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attempt.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(attempt.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(attempt.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(attempt.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(attempt.FieldTranscript, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(attempt.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(attempt.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(attempt.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(attempt.FieldWpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(attempt.FieldWpm, field.TypeFloat64, value)
	}
	if _u.mutation.WpmCleared() {
		_spec.ClearField(attempt.FieldWpm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(attempt.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(attempt.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UniqueWords(); ok {
		_spec.SetField(attempt.FieldUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUniqueWords(); ok {
		_spec.AddField(attempt.FieldUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UniqueRatio(); ok {
		_spec.SetField(attempt.FieldUniqueRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUniqueRatio(); ok {
		_spec.AddField(attempt.FieldUniqueRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgWordLen(); ok {
		_spec.SetField(attempt.FieldAvgWordLen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgWordLen(); ok {
		_spec.AddField(attempt.FieldAvgWordLen, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FillerCount(); ok {
		_spec.SetField(attempt.FieldFillerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFillerCount(); ok {
		_spec.AddField(attempt.FieldFillerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AsrEmpty(); ok {
		_spec.SetField(attempt.FieldAsrEmpty, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RetellEmpty(); ok {
		_spec.SetField(attempt.FieldRetellEmpty, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TooShort(); ok {
		_spec.SetField(attempt.FieldTooShort, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspectedSilence(); ok {
		_spec.SetField(attempt.FieldSuspectedSilence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HallucinationHit(); ok {
		_spec.SetField(attempt.FieldHallucinationHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopwordRatio(); ok {
		_spec.SetField(attempt.FieldStopwordRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStopwordRatio(); ok {
		_spec.AddField(attempt.FieldStopwordRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LowQuality(); ok {
		_spec.SetField(attempt.FieldLowQuality, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Extras(); ok {
		_spec.SetField(attempt.FieldExtras, field.TypeJSON, value)
	}
	if _u.mutation.ExtrasCleared() {
		_spec.ClearField(attempt.FieldExtras, field.TypeJSON)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
