// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/pathstep"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
	"github.com/mkoehler/sprechzeit/ent/predicate"
	"github.com/mkoehler/sprechzeit/ent/schema"
	"github.com/mkoehler/sprechzeit/ent/text"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt      = "Attempt"
	TypePathRun      = "PathRun"
	TypePathSession  = "PathSession"
	TypePathStep     = "PathStep"
	TypePathTemplate = "PathTemplate"
	TypeText         = "Text"
	TypeVocab        = "Vocab"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	attempt_id          *string
	created_at          *time.Time
	mode                *string
	topic               *string
	source_text         *string
	transcript          *string
	duration_seconds    *float64
	addduration_seconds *float64
	wpm                 *float64
	addwpm              *float64
	word_count          *int
	addword_count       *int
	unique_words        *int
	addunique_words     *int
	unique_ratio        *float64
	addunique_ratio     *float64
	avg_word_len        *float64
	addavg_word_len     *float64
	filler_count        *int
	addfiller_count     *int
	asr_empty           *bool
	retell_empty        *bool
	too_short           *bool
	suspected_silence   *bool
	hallucination_hit   *bool
	stopword_ratio      *float64
	addstopword_ratio   *float64
	low_quality         *bool
	extras              **schema.AttemptExtras
	clearedFields       map[string]struct{}
	session             *int
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*Attempt, error)
	predicates          []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAttemptID sets the "attempt_id" field.
func (m *AttemptMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AttemptMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AttemptMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetMode sets the "mode" field.
func (m *AttemptMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *AttemptMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *AttemptMutation) ResetMode() {
	m.mode = nil
}

// SetTopic sets the "topic" field.
func (m *AttemptMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *AttemptMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *AttemptMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[attempt.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *AttemptMutation) TopicCleared() bool {
	_, ok := m.clearedFields[attempt.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *AttemptMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, attempt.FieldTopic)
}

// SetSourceText sets the "source_text" field.
func (m *AttemptMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *AttemptMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSourceText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ClearSourceText clears the value of the "source_text" field.
func (m *AttemptMutation) ClearSourceText() {
	m.source_text = nil
	m.clearedFields[attempt.FieldSourceText] = struct{}{}
}

// SourceTextCleared returns if the "source_text" field was cleared in this mutation.
func (m *AttemptMutation) SourceTextCleared() bool {
	_, ok := m.clearedFields[attempt.FieldSourceText]
	return ok
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *AttemptMutation) ResetSourceText() {
	m.source_text = nil
	delete(m.clearedFields, attempt.FieldSourceText)
}

// SetTranscript sets the "transcript" field.
func (m *AttemptMutation) SetTranscript(s string) {
	m.transcript = &s
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *AttemptMutation) Transcript() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTranscript(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *AttemptMutation) ResetTranscript() {
	m.transcript = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *AttemptMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *AttemptMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *AttemptMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *AttemptMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *AttemptMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[attempt.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *AttemptMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[attempt.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *AttemptMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, attempt.FieldDurationSeconds)
}

// SetWpm sets the "wpm" field.
func (m *AttemptMutation) SetWpm(f float64) {
	m.wpm = &f
	m.addwpm = nil
}

// Wpm returns the value of the "wpm" field in the mutation.
func (m *AttemptMutation) Wpm() (r float64, exists bool) {
	v := m.wpm
	if v == nil {
		return
	}
	return *v, true
}

// OldWpm returns the old "wpm" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldWpm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWpm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWpm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWpm: %w", err)
	}
	return oldValue.Wpm, nil
}

// AddWpm adds f to the "wpm" field.
func (m *AttemptMutation) AddWpm(f float64) {
	if m.addwpm != nil {
		*m.addwpm += f
	} else {
		m.addwpm = &f
	}
}

// AddedWpm returns the value that was added to the "wpm" field in this mutation.
func (m *AttemptMutation) AddedWpm() (r float64, exists bool) {
	v := m.addwpm
	if v == nil {
		return
	}
	return *v, true
}

// ClearWpm clears the value of the "wpm" field.
func (m *AttemptMutation) ClearWpm() {
	m.wpm = nil
	m.addwpm = nil
	m.clearedFields[attempt.FieldWpm] = struct{}{}
}

// WpmCleared returns if the "wpm" field was cleared in this mutation.
func (m *AttemptMutation) WpmCleared() bool {
	_, ok := m.clearedFields[attempt.FieldWpm]
	return ok
}

// ResetWpm resets all changes to the "wpm" field.
func (m *AttemptMutation) ResetWpm() {
	m.wpm = nil
	m.addwpm = nil
	delete(m.clearedFields, attempt.FieldWpm)
}

// SetWordCount sets the "word_count" field.
func (m *AttemptMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *AttemptMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *AttemptMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *AttemptMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *AttemptMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetUniqueWords sets the "unique_words" field.
func (m *AttemptMutation) SetUniqueWords(i int) {
	m.unique_words = &i
	m.addunique_words = nil
}

// UniqueWords returns the value of the "unique_words" field in the mutation.
func (m *AttemptMutation) UniqueWords() (r int, exists bool) {
	v := m.unique_words
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueWords returns the old "unique_words" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldUniqueWords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueWords: %w", err)
	}
	return oldValue.UniqueWords, nil
}

// AddUniqueWords adds i to the "unique_words" field.
func (m *AttemptMutation) AddUniqueWords(i int) {
	if m.addunique_words != nil {
		*m.addunique_words += i
	} else {
		m.addunique_words = &i
	}
}

// AddedUniqueWords returns the value that was added to the "unique_words" field in this mutation.
func (m *AttemptMutation) AddedUniqueWords() (r int, exists bool) {
	v := m.addunique_words
	if v == nil {
		return
	}
	return *v, true
}

// ResetUniqueWords resets all changes to the "unique_words" field.
func (m *AttemptMutation) ResetUniqueWords() {
	m.unique_words = nil
	m.addunique_words = nil
}

// SetUniqueRatio sets the "unique_ratio" field.
func (m *AttemptMutation) SetUniqueRatio(f float64) {
	m.unique_ratio = &f
	m.addunique_ratio = nil
}

// UniqueRatio returns the value of the "unique_ratio" field in the mutation.
func (m *AttemptMutation) UniqueRatio() (r float64, exists bool) {
	v := m.unique_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueRatio returns the old "unique_ratio" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldUniqueRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueRatio: %w", err)
	}
	return oldValue.UniqueRatio, nil
}

// AddUniqueRatio adds f to the "unique_ratio" field.
func (m *AttemptMutation) AddUniqueRatio(f float64) {
	if m.addunique_ratio != nil {
		*m.addunique_ratio += f
	} else {
		m.addunique_ratio = &f
	}
}

// AddedUniqueRatio returns the value that was added to the "unique_ratio" field in this mutation.
func (m *AttemptMutation) AddedUniqueRatio() (r float64, exists bool) {
	v := m.addunique_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetUniqueRatio resets all changes to the "unique_ratio" field.
func (m *AttemptMutation) ResetUniqueRatio() {
	m.unique_ratio = nil
	m.addunique_ratio = nil
}

// SetAvgWordLen sets the "avg_word_len" field.
func (m *AttemptMutation) SetAvgWordLen(f float64) {
	m.avg_word_len = &f
	m.addavg_word_len = nil
}

// AvgWordLen returns the value of the "avg_word_len" field in the mutation.
func (m *AttemptMutation) AvgWordLen() (r float64, exists bool) {
	v := m.avg_word_len
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgWordLen returns the old "avg_word_len" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAvgWordLen(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgWordLen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgWordLen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgWordLen: %w", err)
	}
	return oldValue.AvgWordLen, nil
}

// AddAvgWordLen adds f to the "avg_word_len" field.
func (m *AttemptMutation) AddAvgWordLen(f float64) {
	if m.addavg_word_len != nil {
		*m.addavg_word_len += f
	} else {
		m.addavg_word_len = &f
	}
}

// AddedAvgWordLen returns the value that was added to the "avg_word_len" field in this mutation.
func (m *AttemptMutation) AddedAvgWordLen() (r float64, exists bool) {
	v := m.addavg_word_len
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgWordLen resets all changes to the "avg_word_len" field.
func (m *AttemptMutation) ResetAvgWordLen() {
	m.avg_word_len = nil
	m.addavg_word_len = nil
}

// SetFillerCount sets the "filler_count" field.
func (m *AttemptMutation) SetFillerCount(i int) {
	m.filler_count = &i
	m.addfiller_count = nil
}

// FillerCount returns the value of the "filler_count" field in the mutation.
func (m *AttemptMutation) FillerCount() (r int, exists bool) {
	v := m.filler_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFillerCount returns the old "filler_count" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldFillerCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFillerCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFillerCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFillerCount: %w", err)
	}
	return oldValue.FillerCount, nil
}

// AddFillerCount adds i to the "filler_count" field.
func (m *AttemptMutation) AddFillerCount(i int) {
	if m.addfiller_count != nil {
		*m.addfiller_count += i
	} else {
		m.addfiller_count = &i
	}
}

// AddedFillerCount returns the value that was added to the "filler_count" field in this mutation.
func (m *AttemptMutation) AddedFillerCount() (r int, exists bool) {
	v := m.addfiller_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFillerCount resets all changes to the "filler_count" field.
func (m *AttemptMutation) ResetFillerCount() {
	m.filler_count = nil
	m.addfiller_count = nil
}

// SetAsrEmpty sets the "asr_empty" field.
func (m *AttemptMutation) SetAsrEmpty(b bool) {
	m.asr_empty = &b
}

// AsrEmpty returns the value of the "asr_empty" field in the mutation.
func (m *AttemptMutation) AsrEmpty() (r bool, exists bool) {
	v := m.asr_empty
	if v == nil {
		return
	}
	return *v, true
}

// OldAsrEmpty returns the old "asr_empty" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAsrEmpty(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAsrEmpty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAsrEmpty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAsrEmpty: %w", err)
	}
	return oldValue.AsrEmpty, nil
}

// ResetAsrEmpty resets all changes to the "asr_empty" field.
func (m *AttemptMutation) ResetAsrEmpty() {
	m.asr_empty = nil
}

// SetRetellEmpty sets the "retell_empty" field.
func (m *AttemptMutation) SetRetellEmpty(b bool) {
	m.retell_empty = &b
}

// RetellEmpty returns the value of the "retell_empty" field in the mutation.
func (m *AttemptMutation) RetellEmpty() (r bool, exists bool) {
	v := m.retell_empty
	if v == nil {
		return
	}
	return *v, true
}

// OldRetellEmpty returns the old "retell_empty" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldRetellEmpty(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetellEmpty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetellEmpty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetellEmpty: %w", err)
	}
	return oldValue.RetellEmpty, nil
}

// ResetRetellEmpty resets all changes to the "retell_empty" field.
func (m *AttemptMutation) ResetRetellEmpty() {
	m.retell_empty = nil
}

// SetTooShort sets the "too_short" field.
func (m *AttemptMutation) SetTooShort(b bool) {
	m.too_short = &b
}

// TooShort returns the value of the "too_short" field in the mutation.
func (m *AttemptMutation) TooShort() (r bool, exists bool) {
	v := m.too_short
	if v == nil {
		return
	}
	return *v, true
}

// OldTooShort returns the old "too_short" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTooShort(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTooShort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTooShort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTooShort: %w", err)
	}
	return oldValue.TooShort, nil
}

// ResetTooShort resets all changes to the "too_short" field.
func (m *AttemptMutation) ResetTooShort() {
	m.too_short = nil
}

// SetSuspectedSilence sets the "suspected_silence" field.
func (m *AttemptMutation) SetSuspectedSilence(b bool) {
	m.suspected_silence = &b
}

// SuspectedSilence returns the value of the "suspected_silence" field in the mutation.
func (m *AttemptMutation) SuspectedSilence() (r bool, exists bool) {
	v := m.suspected_silence
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspectedSilence returns the old "suspected_silence" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSuspectedSilence(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspectedSilence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspectedSilence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspectedSilence: %w", err)
	}
	return oldValue.SuspectedSilence, nil
}

// ResetSuspectedSilence resets all changes to the "suspected_silence" field.
func (m *AttemptMutation) ResetSuspectedSilence() {
	m.suspected_silence = nil
}

// SetHallucinationHit sets the "hallucination_hit" field.
func (m *AttemptMutation) SetHallucinationHit(b bool) {
	m.hallucination_hit = &b
}

// HallucinationHit returns the value of the "hallucination_hit" field in the mutation.
func (m *AttemptMutation) HallucinationHit() (r bool, exists bool) {
	v := m.hallucination_hit
	if v == nil {
		return
	}
	return *v, true
}

// OldHallucinationHit returns the old "hallucination_hit" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldHallucinationHit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHallucinationHit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHallucinationHit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHallucinationHit: %w", err)
	}
	return oldValue.HallucinationHit, nil
}

// ResetHallucinationHit resets all changes to the "hallucination_hit" field.
func (m *AttemptMutation) ResetHallucinationHit() {
	m.hallucination_hit = nil
}

// SetStopwordRatio sets the "stopword_ratio" field.
func (m *AttemptMutation) SetStopwordRatio(f float64) {
	m.stopword_ratio = &f
	m.addstopword_ratio = nil
}

// StopwordRatio returns the value of the "stopword_ratio" field in the mutation.
func (m *AttemptMutation) StopwordRatio() (r float64, exists bool) {
	v := m.stopword_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldStopwordRatio returns the old "stopword_ratio" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldStopwordRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopwordRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopwordRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopwordRatio: %w", err)
	}
	return oldValue.StopwordRatio, nil
}

// AddStopwordRatio adds f to the "stopword_ratio" field.
func (m *AttemptMutation) AddStopwordRatio(f float64) {
	if m.addstopword_ratio != nil {
		*m.addstopword_ratio += f
	} else {
		m.addstopword_ratio = &f
	}
}

// AddedStopwordRatio returns the value that was added to the "stopword_ratio" field in this mutation.
func (m *AttemptMutation) AddedStopwordRatio() (r float64, exists bool) {
	v := m.addstopword_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetStopwordRatio resets all changes to the "stopword_ratio" field.
func (m *AttemptMutation) ResetStopwordRatio() {
	m.stopword_ratio = nil
	m.addstopword_ratio = nil
}

// SetLowQuality sets the "low_quality" field.
func (m *AttemptMutation) SetLowQuality(b bool) {
	m.low_quality = &b
}

// LowQuality returns the value of the "low_quality" field in the mutation.
func (m *AttemptMutation) LowQuality() (r bool, exists bool) {
	v := m.low_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldLowQuality returns the old "low_quality" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldLowQuality(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowQuality: %w", err)
	}
	return oldValue.LowQuality, nil
}

// ResetLowQuality resets all changes to the "low_quality" field.
func (m *AttemptMutation) ResetLowQuality() {
	m.low_quality = nil
}

// SetExtras sets the "extras" field.
func (m *AttemptMutation) SetExtras(se *schema.AttemptExtras) {
	m.extras = &se
}

// Extras returns the value of the "extras" field in the mutation.
func (m *AttemptMutation) Extras() (r *schema.AttemptExtras, exists bool) {
	v := m.extras
	if v == nil {
		return
	}
	return *v, true
}

// OldExtras returns the old "extras" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldExtras(ctx context.Context) (v *schema.AttemptExtras, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtras is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtras requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtras: %w", err)
	}
	return oldValue.Extras, nil
}

// ClearExtras clears the value of the "extras" field.
func (m *AttemptMutation) ClearExtras() {
	m.extras = nil
	m.clearedFields[attempt.FieldExtras] = struct{}{}
}

// ExtrasCleared returns if the "extras" field was cleared in this mutation.
func (m *AttemptMutation) ExtrasCleared() bool {
	_, ok := m.clearedFields[attempt.FieldExtras]
	return ok
}

// ResetExtras resets all changes to the "extras" field.
func (m *AttemptMutation) ResetExtras() {
	m.extras = nil
	delete(m.clearedFields, attempt.FieldExtras)
}

// SetSessionID sets the "session" edge to the PathSession entity by id.
func (m *AttemptMutation) SetSessionID(id int) {
	m.session = &id
}

// ClearSession clears the "session" edge to the PathSession entity.
func (m *AttemptMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the PathSession entity was cleared.
func (m *AttemptMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *AttemptMutation) SessionID() (id int, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AttemptMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AttemptMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.attempt_id != nil {
		fields = append(fields, attempt.FieldAttemptID)
	}
	if m.created_at != nil {
		fields = append(fields, attempt.FieldCreatedAt)
	}
	if m.mode != nil {
		fields = append(fields, attempt.FieldMode)
	}
	if m.topic != nil {
		fields = append(fields, attempt.FieldTopic)
	}
	if m.source_text != nil {
		fields = append(fields, attempt.FieldSourceText)
	}
	if m.transcript != nil {
		fields = append(fields, attempt.FieldTranscript)
	}
	if m.duration_seconds != nil {
		fields = append(fields, attempt.FieldDurationSeconds)
	}
	if m.wpm != nil {
		fields = append(fields, attempt.FieldWpm)
	}
	if m.word_count != nil {
		fields = append(fields, attempt.FieldWordCount)
	}
	if m.unique_words != nil {
		fields = append(fields, attempt.FieldUniqueWords)
	}
	if m.unique_ratio != nil {
		fields = append(fields, attempt.FieldUniqueRatio)
	}
	if m.avg_word_len != nil {
		fields = append(fields, attempt.FieldAvgWordLen)
	}
	if m.filler_count != nil {
		fields = append(fields, attempt.FieldFillerCount)
	}
	if m.asr_empty != nil {
		fields = append(fields, attempt.FieldAsrEmpty)
	}
	if m.retell_empty != nil {
		fields = append(fields, attempt.FieldRetellEmpty)
	}
	if m.too_short != nil {
		fields = append(fields, attempt.FieldTooShort)
	}
	if m.suspected_silence != nil {
		fields = append(fields, attempt.FieldSuspectedSilence)
	}
	if m.hallucination_hit != nil {
		fields = append(fields, attempt.FieldHallucinationHit)
	}
	if m.stopword_ratio != nil {
		fields = append(fields, attempt.FieldStopwordRatio)
	}
	if m.low_quality != nil {
		fields = append(fields, attempt.FieldLowQuality)
	}
	if m.extras != nil {
		fields = append(fields, attempt.FieldExtras)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldAttemptID:
		return m.AttemptID()
	case attempt.FieldCreatedAt:
		return m.CreatedAt()
	case attempt.FieldMode:
		return m.Mode()
	case attempt.FieldTopic:
		return m.Topic()
	case attempt.FieldSourceText:
		return m.SourceText()
	case attempt.FieldTranscript:
		return m.Transcript()
	case attempt.FieldDurationSeconds:
		return m.DurationSeconds()
	case attempt.FieldWpm:
		return m.Wpm()
	case attempt.FieldWordCount:
		return m.WordCount()
	case attempt.FieldUniqueWords:
		return m.UniqueWords()
	case attempt.FieldUniqueRatio:
		return m.UniqueRatio()
	case attempt.FieldAvgWordLen:
		return m.AvgWordLen()
	case attempt.FieldFillerCount:
		return m.FillerCount()
	case attempt.FieldAsrEmpty:
		return m.AsrEmpty()
	case attempt.FieldRetellEmpty:
		return m.RetellEmpty()
	case attempt.FieldTooShort:
		return m.TooShort()
	case attempt.FieldSuspectedSilence:
		return m.SuspectedSilence()
	case attempt.FieldHallucinationHit:
		return m.HallucinationHit()
	case attempt.FieldStopwordRatio:
		return m.StopwordRatio()
	case attempt.FieldLowQuality:
		return m.LowQuality()
	case attempt.FieldExtras:
		return m.Extras()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case attempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case attempt.FieldMode:
		return m.OldMode(ctx)
	case attempt.FieldTopic:
		return m.OldTopic(ctx)
	case attempt.FieldSourceText:
		return m.OldSourceText(ctx)
	case attempt.FieldTranscript:
		return m.OldTranscript(ctx)
	case attempt.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case attempt.FieldWpm:
		return m.OldWpm(ctx)
	case attempt.FieldWordCount:
		return m.OldWordCount(ctx)
	case attempt.FieldUniqueWords:
		return m.OldUniqueWords(ctx)
	case attempt.FieldUniqueRatio:
		return m.OldUniqueRatio(ctx)
	case attempt.FieldAvgWordLen:
		return m.OldAvgWordLen(ctx)
	case attempt.FieldFillerCount:
		return m.OldFillerCount(ctx)
	case attempt.FieldAsrEmpty:
		return m.OldAsrEmpty(ctx)
	case attempt.FieldRetellEmpty:
		return m.OldRetellEmpty(ctx)
	case attempt.FieldTooShort:
		return m.OldTooShort(ctx)
	case attempt.FieldSuspectedSilence:
		return m.OldSuspectedSilence(ctx)
	case attempt.FieldHallucinationHit:
		return m.OldHallucinationHit(ctx)
	case attempt.FieldStopwordRatio:
		return m.OldStopwordRatio(ctx)
	case attempt.FieldLowQuality:
		return m.OldLowQuality(ctx)
	case attempt.FieldExtras:
		return m.OldExtras(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case attempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case attempt.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case attempt.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case attempt.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case attempt.FieldTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case attempt.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case attempt.FieldWpm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWpm(v)
		return nil
	case attempt.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case attempt.FieldUniqueWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueWords(v)
		return nil
	case attempt.FieldUniqueRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueRatio(v)
		return nil
	case attempt.FieldAvgWordLen:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgWordLen(v)
		return nil
	case attempt.FieldFillerCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFillerCount(v)
		return nil
	case attempt.FieldAsrEmpty:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAsrEmpty(v)
		return nil
	case attempt.FieldRetellEmpty:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetellEmpty(v)
		return nil
	case attempt.FieldTooShort:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTooShort(v)
		return nil
	case attempt.FieldSuspectedSilence:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspectedSilence(v)
		return nil
	case attempt.FieldHallucinationHit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHallucinationHit(v)
		return nil
	case attempt.FieldStopwordRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopwordRatio(v)
		return nil
	case attempt.FieldLowQuality:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowQuality(v)
		return nil
	case attempt.FieldExtras:
		v, ok := value.(*schema.AttemptExtras)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtras(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, attempt.FieldDurationSeconds)
	}
	if m.addwpm != nil {
		fields = append(fields, attempt.FieldWpm)
	}
	if m.addword_count != nil {
		fields = append(fields, attempt.FieldWordCount)
	}
	if m.addunique_words != nil {
		fields = append(fields, attempt.FieldUniqueWords)
	}
	if m.addunique_ratio != nil {
		fields = append(fields, attempt.FieldUniqueRatio)
	}
	if m.addavg_word_len != nil {
		fields = append(fields, attempt.FieldAvgWordLen)
	}
	if m.addfiller_count != nil {
		fields = append(fields, attempt.FieldFillerCount)
	}
	if m.addstopword_ratio != nil {
		fields = append(fields, attempt.FieldStopwordRatio)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case attempt.FieldWpm:
		return m.AddedWpm()
	case attempt.FieldWordCount:
		return m.AddedWordCount()
	case attempt.FieldUniqueWords:
		return m.AddedUniqueWords()
	case attempt.FieldUniqueRatio:
		return m.AddedUniqueRatio()
	case attempt.FieldAvgWordLen:
		return m.AddedAvgWordLen()
	case attempt.FieldFillerCount:
		return m.AddedFillerCount()
	case attempt.FieldStopwordRatio:
		return m.AddedStopwordRatio()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case attempt.FieldWpm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWpm(v)
		return nil
	case attempt.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case attempt.FieldUniqueWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUniqueWords(v)
		return nil
	case attempt.FieldUniqueRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUniqueRatio(v)
		return nil
	case attempt.FieldAvgWordLen:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgWordLen(v)
		return nil
	case attempt.FieldFillerCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFillerCount(v)
		return nil
	case attempt.FieldStopwordRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStopwordRatio(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldTopic) {
		fields = append(fields, attempt.FieldTopic)
	}
	if m.FieldCleared(attempt.FieldSourceText) {
		fields = append(fields, attempt.FieldSourceText)
	}
	if m.FieldCleared(attempt.FieldDurationSeconds) {
		fields = append(fields, attempt.FieldDurationSeconds)
	}
	if m.FieldCleared(attempt.FieldWpm) {
		fields = append(fields, attempt.FieldWpm)
	}
	if m.FieldCleared(attempt.FieldExtras) {
		fields = append(fields, attempt.FieldExtras)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldTopic:
		m.ClearTopic()
		return nil
	case attempt.FieldSourceText:
		m.ClearSourceText()
		return nil
	case attempt.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case attempt.FieldWpm:
		m.ClearWpm()
		return nil
	case attempt.FieldExtras:
		m.ClearExtras()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case attempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case attempt.FieldMode:
		m.ResetMode()
		return nil
	case attempt.FieldTopic:
		m.ResetTopic()
		return nil
	case attempt.FieldSourceText:
		m.ResetSourceText()
		return nil
	case attempt.FieldTranscript:
		m.ResetTranscript()
		return nil
	case attempt.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case attempt.FieldWpm:
		m.ResetWpm()
		return nil
	case attempt.FieldWordCount:
		m.ResetWordCount()
		return nil
	case attempt.FieldUniqueWords:
		m.ResetUniqueWords()
		return nil
	case attempt.FieldUniqueRatio:
		m.ResetUniqueRatio()
		return nil
	case attempt.FieldAvgWordLen:
		m.ResetAvgWordLen()
		return nil
	case attempt.FieldFillerCount:
		m.ResetFillerCount()
		return nil
	case attempt.FieldAsrEmpty:
		m.ResetAsrEmpty()
		return nil
	case attempt.FieldRetellEmpty:
		m.ResetRetellEmpty()
		return nil
	case attempt.FieldTooShort:
		m.ResetTooShort()
		return nil
	case attempt.FieldSuspectedSilence:
		m.ResetSuspectedSilence()
		return nil
	case attempt.FieldHallucinationHit:
		m.ResetHallucinationHit()
		return nil
	case attempt.FieldStopwordRatio:
		m.ResetStopwordRatio()
		return nil
	case attempt.FieldLowQuality:
		m.ResetLowQuality()
		return nil
	case attempt.FieldExtras:
		m.ResetExtras()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, attempt.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attempt.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, attempt.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case attempt.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	switch name {
	case attempt.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	switch name {
	case attempt.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// PathRunMutation represents an operation that mutates the PathRun nodes in the graph.
type PathRunMutation struct {
	config
	op              Op
	typ             string
	id              *int
	run_id          *string
	status          *pathrun.Status
	started_at      *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	template        *int
	clearedtemplate bool
	sessions        map[int]struct{}
	removedsessions map[int]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*PathRun, error)
	predicates      []predicate.PathRun
}

var _ ent.Mutation = (*PathRunMutation)(nil)

// pathrunOption allows management of the mutation configuration using functional options.
type pathrunOption func(*PathRunMutation)

// newPathRunMutation creates new mutation for the PathRun entity.
func newPathRunMutation(c config, op Op, opts ...pathrunOption) *PathRunMutation {
	m := &PathRunMutation{
		config:        c,
		op:            op,
		typ:           TypePathRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathRunID sets the ID field of the mutation.
func withPathRunID(id int) pathrunOption {
	return func(m *PathRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PathRun
		)
		m.oldValue = func(ctx context.Context) (*PathRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PathRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathRun sets the old PathRun of the mutation.
func withPathRun(node *PathRun) pathrunOption {
	return func(m *PathRunMutation) {
		m.oldValue = func(context.Context) (*PathRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PathRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *PathRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *PathRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the PathRun entity.
// If the PathRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *PathRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetStatus sets the "status" field.
func (m *PathRunMutation) SetStatus(pa pathrun.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PathRunMutation) Status() (r pathrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PathRun entity.
// If the PathRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathRunMutation) OldStatus(ctx context.Context) (v pathrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PathRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PathRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PathRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PathRun entity.
// If the PathRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PathRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PathRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PathRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PathRun entity.
// If the PathRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PathRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pathrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PathRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pathrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PathRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pathrun.FieldCompletedAt)
}

// SetTemplateID sets the "template" edge to the PathTemplate entity by id.
func (m *PathRunMutation) SetTemplateID(id int) {
	m.template = &id
}

// ClearTemplate clears the "template" edge to the PathTemplate entity.
func (m *PathRunMutation) ClearTemplate() {
	m.clearedtemplate = true
}

// TemplateCleared reports if the "template" edge to the PathTemplate entity was cleared.
func (m *PathRunMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateID returns the "template" edge ID in the mutation.
func (m *PathRunMutation) TemplateID() (id int, exists bool) {
	if m.template != nil {
		return *m.template, true
	}
	return
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *PathRunMutation) TemplateIDs() (ids []int) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *PathRunMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by ids.
func (m *PathRunMutation) AddSessionIDs(ids ...int) {
	if m.sessions == nil {
		m.sessions = make(map[int]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the PathSession entity.
func (m *PathRunMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the PathSession entity was cleared.
func (m *PathRunMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the PathSession entity by IDs.
func (m *PathRunMutation) RemoveSessionIDs(ids ...int) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the PathSession entity.
func (m *PathRunMutation) RemovedSessionsIDs() (ids []int) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *PathRunMutation) SessionsIDs() (ids []int) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *PathRunMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the PathRunMutation builder.
func (m *PathRunMutation) Where(ps ...predicate.PathRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PathRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PathRun).
func (m *PathRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathRunMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run_id != nil {
		fields = append(fields, pathrun.FieldRunID)
	}
	if m.status != nil {
		fields = append(fields, pathrun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, pathrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pathrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathrun.FieldRunID:
		return m.RunID()
	case pathrun.FieldStatus:
		return m.Status()
	case pathrun.FieldStartedAt:
		return m.StartedAt()
	case pathrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathrun.FieldRunID:
		return m.OldRunID(ctx)
	case pathrun.FieldStatus:
		return m.OldStatus(ctx)
	case pathrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pathrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PathRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathrun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case pathrun.FieldStatus:
		v, ok := value.(pathrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pathrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pathrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PathRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PathRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pathrun.FieldCompletedAt) {
		fields = append(fields, pathrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathRunMutation) ClearField(name string) error {
	switch name {
	case pathrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PathRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathRunMutation) ResetField(name string) error {
	switch name {
	case pathrun.FieldRunID:
		m.ResetRunID()
		return nil
	case pathrun.FieldStatus:
		m.ResetStatus()
		return nil
	case pathrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pathrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PathRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.template != nil {
		edges = append(edges, pathrun.EdgeTemplate)
	}
	if m.sessions != nil {
		edges = append(edges, pathrun.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pathrun.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case pathrun.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, pathrun.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pathrun.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtemplate {
		edges = append(edges, pathrun.EdgeTemplate)
	}
	if m.clearedsessions {
		edges = append(edges, pathrun.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pathrun.EdgeTemplate:
		return m.clearedtemplate
	case pathrun.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathRunMutation) ClearEdge(name string) error {
	switch name {
	case pathrun.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown PathRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathRunMutation) ResetEdge(name string) error {
	switch name {
	case pathrun.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case pathrun.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown PathRun edge %s", name)
}

// PathSessionMutation represents an operation that mutates the PathSession nodes in the graph.
type PathSessionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	step_order      *int
	addstep_order   *int
	step_type       *string
	content_ref     *string
	status          *pathsession.Status
	started_at      *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	run             *int
	clearedrun      bool
	text            *int
	clearedtext     bool
	vocab           map[int]struct{}
	removedvocab    map[int]struct{}
	clearedvocab    bool
	attempts        map[int]struct{}
	removedattempts map[int]struct{}
	clearedattempts bool
	done            bool
	oldValue        func(context.Context) (*PathSession, error)
	predicates      []predicate.PathSession
}

var _ ent.Mutation = (*PathSessionMutation)(nil)

// pathsessionOption allows management of the mutation configuration using functional options.
type pathsessionOption func(*PathSessionMutation)

// newPathSessionMutation creates new mutation for the PathSession entity.
func newPathSessionMutation(c config, op Op, opts ...pathsessionOption) *PathSessionMutation {
	m := &PathSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePathSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathSessionID sets the ID field of the mutation.
func withPathSessionID(id int) pathsessionOption {
	return func(m *PathSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PathSession
		)
		m.oldValue = func(ctx context.Context) (*PathSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PathSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathSession sets the old PathSession of the mutation.
func withPathSession(node *PathSession) pathsessionOption {
	return func(m *PathSessionMutation) {
		m.oldValue = func(context.Context) (*PathSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PathSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepOrder sets the "step_order" field.
func (m *PathSessionMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *PathSessionMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the PathSession entity.
// If the PathSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathSessionMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *PathSessionMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *PathSessionMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *PathSessionMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetStepType sets the "step_type" field.
func (m *PathSessionMutation) SetStepType(s string) {
	m.step_type = &s
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *PathSessionMutation) StepType() (r string, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the PathSession entity.
// If the PathSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathSessionMutation) OldStepType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *PathSessionMutation) ResetStepType() {
	m.step_type = nil
}

// SetContentRef sets the "content_ref" field.
func (m *PathSessionMutation) SetContentRef(s string) {
	m.content_ref = &s
}

// ContentRef returns the value of the "content_ref" field in the mutation.
func (m *PathSessionMutation) ContentRef() (r string, exists bool) {
	v := m.content_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldContentRef returns the old "content_ref" field's value of the PathSession entity.
// If the PathSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathSessionMutation) OldContentRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentRef: %w", err)
	}
	return oldValue.ContentRef, nil
}

// ClearContentRef clears the value of the "content_ref" field.
func (m *PathSessionMutation) ClearContentRef() {
	m.content_ref = nil
	m.clearedFields[pathsession.FieldContentRef] = struct{}{}
}

// ContentRefCleared returns if the "content_ref" field was cleared in this mutation.
func (m *PathSessionMutation) ContentRefCleared() bool {
	_, ok := m.clearedFields[pathsession.FieldContentRef]
	return ok
}

// ResetContentRef resets all changes to the "content_ref" field.
func (m *PathSessionMutation) ResetContentRef() {
	m.content_ref = nil
	delete(m.clearedFields, pathsession.FieldContentRef)
}

// SetStatus sets the "status" field.
func (m *PathSessionMutation) SetStatus(pa pathsession.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PathSessionMutation) Status() (r pathsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PathSession entity.
// If the PathSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathSessionMutation) OldStatus(ctx context.Context) (v pathsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PathSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PathSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PathSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PathSession entity.
// If the PathSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PathSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PathSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PathSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PathSession entity.
// If the PathSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PathSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pathsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PathSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pathsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PathSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pathsession.FieldCompletedAt)
}

// SetRunID sets the "run" edge to the PathRun entity by id.
func (m *PathSessionMutation) SetRunID(id int) {
	m.run = &id
}

// ClearRun clears the "run" edge to the PathRun entity.
func (m *PathSessionMutation) ClearRun() {
	m.clearedrun = true
}

// RunCleared reports if the "run" edge to the PathRun entity was cleared.
func (m *PathSessionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *PathSessionMutation) RunID() (id int, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *PathSessionMutation) RunIDs() (ids []int) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *PathSessionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// SetTextID sets the "text" edge to the Text entity by id.
func (m *PathSessionMutation) SetTextID(id int) {
	m.text = &id
}

// ClearText clears the "text" edge to the Text entity.
func (m *PathSessionMutation) ClearText() {
	m.clearedtext = true
}

// TextCleared reports if the "text" edge to the Text entity was cleared.
func (m *PathSessionMutation) TextCleared() bool {
	return m.clearedtext
}

// TextID returns the "text" edge ID in the mutation.
func (m *PathSessionMutation) TextID() (id int, exists bool) {
	if m.text != nil {
		return *m.text, true
	}
	return
}

// TextIDs returns the "text" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TextID instead. It exists only for internal usage by the builders.
func (m *PathSessionMutation) TextIDs() (ids []int) {
	if id := m.text; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetText resets all changes to the "text" edge.
func (m *PathSessionMutation) ResetText() {
	m.text = nil
	m.clearedtext = false
}

// AddVocabIDs adds the "vocab" edge to the Vocab entity by ids.
func (m *PathSessionMutation) AddVocabIDs(ids ...int) {
	if m.vocab == nil {
		m.vocab = make(map[int]struct{})
	}
	for i := range ids {
		m.vocab[ids[i]] = struct{}{}
	}
}

// ClearVocab clears the "vocab" edge to the Vocab entity.
func (m *PathSessionMutation) ClearVocab() {
	m.clearedvocab = true
}

// VocabCleared reports if the "vocab" edge to the Vocab entity was cleared.
func (m *PathSessionMutation) VocabCleared() bool {
	return m.clearedvocab
}

// RemoveVocabIDs removes the "vocab" edge to the Vocab entity by IDs.
func (m *PathSessionMutation) RemoveVocabIDs(ids ...int) {
	if m.removedvocab == nil {
		m.removedvocab = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.vocab, ids[i])
		m.removedvocab[ids[i]] = struct{}{}
	}
}

// RemovedVocab returns the removed IDs of the "vocab" edge to the Vocab entity.
func (m *PathSessionMutation) RemovedVocabIDs() (ids []int) {
	for id := range m.removedvocab {
		ids = append(ids, id)
	}
	return
}

// VocabIDs returns the "vocab" edge IDs in the mutation.
func (m *PathSessionMutation) VocabIDs() (ids []int) {
	for id := range m.vocab {
		ids = append(ids, id)
	}
	return
}

// ResetVocab resets all changes to the "vocab" edge.
func (m *PathSessionMutation) ResetVocab() {
	m.vocab = nil
	m.clearedvocab = false
	m.removedvocab = nil
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by ids.
func (m *PathSessionMutation) AddAttemptIDs(ids ...int) {
	if m.attempts == nil {
		m.attempts = make(map[int]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the Attempt entity.
func (m *PathSessionMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the Attempt entity was cleared.
func (m *PathSessionMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the Attempt entity by IDs.
func (m *PathSessionMutation) RemoveAttemptIDs(ids ...int) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the Attempt entity.
func (m *PathSessionMutation) RemovedAttemptsIDs() (ids []int) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *PathSessionMutation) AttemptsIDs() (ids []int) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *PathSessionMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the PathSessionMutation builder.
func (m *PathSessionMutation) Where(ps ...predicate.PathSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PathSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PathSession).
func (m *PathSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.step_order != nil {
		fields = append(fields, pathsession.FieldStepOrder)
	}
	if m.step_type != nil {
		fields = append(fields, pathsession.FieldStepType)
	}
	if m.content_ref != nil {
		fields = append(fields, pathsession.FieldContentRef)
	}
	if m.status != nil {
		fields = append(fields, pathsession.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, pathsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pathsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathsession.FieldStepOrder:
		return m.StepOrder()
	case pathsession.FieldStepType:
		return m.StepType()
	case pathsession.FieldContentRef:
		return m.ContentRef()
	case pathsession.FieldStatus:
		return m.Status()
	case pathsession.FieldStartedAt:
		return m.StartedAt()
	case pathsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathsession.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case pathsession.FieldStepType:
		return m.OldStepType(ctx)
	case pathsession.FieldContentRef:
		return m.OldContentRef(ctx)
	case pathsession.FieldStatus:
		return m.OldStatus(ctx)
	case pathsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pathsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PathSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathsession.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case pathsession.FieldStepType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case pathsession.FieldContentRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentRef(v)
		return nil
	case pathsession.FieldStatus:
		v, ok := value.(pathsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pathsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pathsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PathSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathSessionMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, pathsession.FieldStepOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pathsession.FieldStepOrder:
		return m.AddedStepOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pathsession.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	}
	return fmt.Errorf("unknown PathSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pathsession.FieldContentRef) {
		fields = append(fields, pathsession.FieldContentRef)
	}
	if m.FieldCleared(pathsession.FieldCompletedAt) {
		fields = append(fields, pathsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathSessionMutation) ClearField(name string) error {
	switch name {
	case pathsession.FieldContentRef:
		m.ClearContentRef()
		return nil
	case pathsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PathSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathSessionMutation) ResetField(name string) error {
	switch name {
	case pathsession.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case pathsession.FieldStepType:
		m.ResetStepType()
		return nil
	case pathsession.FieldContentRef:
		m.ResetContentRef()
		return nil
	case pathsession.FieldStatus:
		m.ResetStatus()
		return nil
	case pathsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pathsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PathSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.run != nil {
		edges = append(edges, pathsession.EdgeRun)
	}
	if m.text != nil {
		edges = append(edges, pathsession.EdgeText)
	}
	if m.vocab != nil {
		edges = append(edges, pathsession.EdgeVocab)
	}
	if m.attempts != nil {
		edges = append(edges, pathsession.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pathsession.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case pathsession.EdgeText:
		if id := m.text; id != nil {
			return []ent.Value{*id}
		}
	case pathsession.EdgeVocab:
		ids := make([]ent.Value, 0, len(m.vocab))
		for id := range m.vocab {
			ids = append(ids, id)
		}
		return ids
	case pathsession.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedvocab != nil {
		edges = append(edges, pathsession.EdgeVocab)
	}
	if m.removedattempts != nil {
		edges = append(edges, pathsession.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pathsession.EdgeVocab:
		ids := make([]ent.Value, 0, len(m.removedvocab))
		for id := range m.removedvocab {
			ids = append(ids, id)
		}
		return ids
	case pathsession.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedrun {
		edges = append(edges, pathsession.EdgeRun)
	}
	if m.clearedtext {
		edges = append(edges, pathsession.EdgeText)
	}
	if m.clearedvocab {
		edges = append(edges, pathsession.EdgeVocab)
	}
	if m.clearedattempts {
		edges = append(edges, pathsession.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case pathsession.EdgeRun:
		return m.clearedrun
	case pathsession.EdgeText:
		return m.clearedtext
	case pathsession.EdgeVocab:
		return m.clearedvocab
	case pathsession.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathSessionMutation) ClearEdge(name string) error {
	switch name {
	case pathsession.EdgeRun:
		m.ClearRun()
		return nil
	case pathsession.EdgeText:
		m.ClearText()
		return nil
	}
	return fmt.Errorf("unknown PathSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathSessionMutation) ResetEdge(name string) error {
	switch name {
	case pathsession.EdgeRun:
		m.ResetRun()
		return nil
	case pathsession.EdgeText:
		m.ResetText()
		return nil
	case pathsession.EdgeVocab:
		m.ResetVocab()
		return nil
	case pathsession.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown PathSession edge %s", name)
}

// PathStepMutation represents an operation that mutates the PathStep nodes in the graph.
type PathStepMutation struct {
	config
	op              Op
	typ             string
	id              *int
	step_order      *int
	addstep_order   *int
	step_type       *string
	_config         *map[string]interface{}
	clearedFields   map[string]struct{}
	template        *int
	clearedtemplate bool
	done            bool
	oldValue        func(context.Context) (*PathStep, error)
	predicates      []predicate.PathStep
}

var _ ent.Mutation = (*PathStepMutation)(nil)

// pathstepOption allows management of the mutation configuration using functional options.
type pathstepOption func(*PathStepMutation)

// newPathStepMutation creates new mutation for the PathStep entity.
func newPathStepMutation(c config, op Op, opts ...pathstepOption) *PathStepMutation {
	m := &PathStepMutation{
		config:        c,
		op:            op,
		typ:           TypePathStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathStepID sets the ID field of the mutation.
func withPathStepID(id int) pathstepOption {
	return func(m *PathStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PathStep
		)
		m.oldValue = func(ctx context.Context) (*PathStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PathStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathStep sets the old PathStep of the mutation.
func withPathStep(node *PathStep) pathstepOption {
	return func(m *PathStepMutation) {
		m.oldValue = func(context.Context) (*PathStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PathStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepOrder sets the "step_order" field.
func (m *PathStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *PathStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the PathStep entity.
// If the PathStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *PathStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *PathStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *PathStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetStepType sets the "step_type" field.
func (m *PathStepMutation) SetStepType(s string) {
	m.step_type = &s
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *PathStepMutation) StepType() (r string, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the PathStep entity.
// If the PathStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathStepMutation) OldStepType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *PathStepMutation) ResetStepType() {
	m.step_type = nil
}

// SetConfig sets the "config" field.
func (m *PathStepMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *PathStepMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the PathStep entity.
// If the PathStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathStepMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *PathStepMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[pathstep.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *PathStepMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[pathstep.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *PathStepMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, pathstep.FieldConfig)
}

// SetTemplateID sets the "template" edge to the PathTemplate entity by id.
func (m *PathStepMutation) SetTemplateID(id int) {
	m.template = &id
}

// ClearTemplate clears the "template" edge to the PathTemplate entity.
func (m *PathStepMutation) ClearTemplate() {
	m.clearedtemplate = true
}

// TemplateCleared reports if the "template" edge to the PathTemplate entity was cleared.
func (m *PathStepMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateID returns the "template" edge ID in the mutation.
func (m *PathStepMutation) TemplateID() (id int, exists bool) {
	if m.template != nil {
		return *m.template, true
	}
	return
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *PathStepMutation) TemplateIDs() (ids []int) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *PathStepMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// Where appends a list predicates to the PathStepMutation builder.
func (m *PathStepMutation) Where(ps ...predicate.PathStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PathStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PathStep).
func (m *PathStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathStepMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.step_order != nil {
		fields = append(fields, pathstep.FieldStepOrder)
	}
	if m.step_type != nil {
		fields = append(fields, pathstep.FieldStepType)
	}
	if m._config != nil {
		fields = append(fields, pathstep.FieldConfig)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathstep.FieldStepOrder:
		return m.StepOrder()
	case pathstep.FieldStepType:
		return m.StepType()
	case pathstep.FieldConfig:
		return m.Config()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case pathstep.FieldStepType:
		return m.OldStepType(ctx)
	case pathstep.FieldConfig:
		return m.OldConfig(ctx)
	}
	return nil, fmt.Errorf("unknown PathStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case pathstep.FieldStepType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case pathstep.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	}
	return fmt.Errorf("unknown PathStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, pathstep.FieldStepOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pathstep.FieldStepOrder:
		return m.AddedStepOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pathstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	}
	return fmt.Errorf("unknown PathStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pathstep.FieldConfig) {
		fields = append(fields, pathstep.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathStepMutation) ClearField(name string) error {
	switch name {
	case pathstep.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown PathStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathStepMutation) ResetField(name string) error {
	switch name {
	case pathstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case pathstep.FieldStepType:
		m.ResetStepType()
		return nil
	case pathstep.FieldConfig:
		m.ResetConfig()
		return nil
	}
	return fmt.Errorf("unknown PathStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.template != nil {
		edges = append(edges, pathstep.EdgeTemplate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pathstep.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtemplate {
		edges = append(edges, pathstep.EdgeTemplate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathStepMutation) EdgeCleared(name string) bool {
	switch name {
	case pathstep.EdgeTemplate:
		return m.clearedtemplate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathStepMutation) ClearEdge(name string) error {
	switch name {
	case pathstep.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown PathStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathStepMutation) ResetEdge(name string) error {
	switch name {
	case pathstep.EdgeTemplate:
		m.ResetTemplate()
		return nil
	}
	return fmt.Errorf("unknown PathStep edge %s", name)
}

// PathTemplateMutation represents an operation that mutates the PathTemplate nodes in the graph.
type PathTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	level         *string
	description   *string
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	steps         map[int]struct{}
	removedsteps  map[int]struct{}
	clearedsteps  bool
	runs          map[int]struct{}
	removedruns   map[int]struct{}
	clearedruns   bool
	done          bool
	oldValue      func(context.Context) (*PathTemplate, error)
	predicates    []predicate.PathTemplate
}

var _ ent.Mutation = (*PathTemplateMutation)(nil)

// pathtemplateOption allows management of the mutation configuration using functional options.
type pathtemplateOption func(*PathTemplateMutation)

// newPathTemplateMutation creates new mutation for the PathTemplate entity.
func newPathTemplateMutation(c config, op Op, opts ...pathtemplateOption) *PathTemplateMutation {
	m := &PathTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypePathTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathTemplateID sets the ID field of the mutation.
func withPathTemplateID(id int) pathtemplateOption {
	return func(m *PathTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *PathTemplate
		)
		m.oldValue = func(ctx context.Context) (*PathTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PathTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathTemplate sets the old PathTemplate of the mutation.
func withPathTemplate(node *PathTemplate) pathtemplateOption {
	return func(m *PathTemplateMutation) {
		m.oldValue = func(context.Context) (*PathTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathTemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathTemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PathTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PathTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PathTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PathTemplate entity.
// If the PathTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PathTemplateMutation) ResetName() {
	m.name = nil
}

// SetLevel sets the "level" field.
func (m *PathTemplateMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *PathTemplateMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the PathTemplate entity.
// If the PathTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathTemplateMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *PathTemplateMutation) ResetLevel() {
	m.level = nil
}

// SetDescription sets the "description" field.
func (m *PathTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PathTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PathTemplate entity.
// If the PathTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PathTemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pathtemplate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PathTemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pathtemplate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PathTemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pathtemplate.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *PathTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PathTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PathTemplate entity.
// If the PathTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PathTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PathTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PathTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PathTemplate entity.
// If the PathTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PathTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStepIDs adds the "steps" edge to the PathStep entity by ids.
func (m *PathTemplateMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PathStep entity.
func (m *PathTemplateMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PathStep entity was cleared.
func (m *PathTemplateMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PathStep entity by IDs.
func (m *PathTemplateMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PathStep entity.
func (m *PathTemplateMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *PathTemplateMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *PathTemplateMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddRunIDs adds the "runs" edge to the PathRun entity by ids.
func (m *PathTemplateMutation) AddRunIDs(ids ...int) {
	if m.runs == nil {
		m.runs = make(map[int]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the PathRun entity.
func (m *PathTemplateMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the PathRun entity was cleared.
func (m *PathTemplateMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the PathRun entity by IDs.
func (m *PathTemplateMutation) RemoveRunIDs(ids ...int) {
	if m.removedruns == nil {
		m.removedruns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the PathRun entity.
func (m *PathTemplateMutation) RemovedRunsIDs() (ids []int) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *PathTemplateMutation) RunsIDs() (ids []int) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *PathTemplateMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the PathTemplateMutation builder.
func (m *PathTemplateMutation) Where(ps ...predicate.PathTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PathTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PathTemplate).
func (m *PathTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathTemplateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, pathtemplate.FieldName)
	}
	if m.level != nil {
		fields = append(fields, pathtemplate.FieldLevel)
	}
	if m.description != nil {
		fields = append(fields, pathtemplate.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, pathtemplate.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, pathtemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathtemplate.FieldName:
		return m.Name()
	case pathtemplate.FieldLevel:
		return m.Level()
	case pathtemplate.FieldDescription:
		return m.Description()
	case pathtemplate.FieldIsActive:
		return m.IsActive()
	case pathtemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathtemplate.FieldName:
		return m.OldName(ctx)
	case pathtemplate.FieldLevel:
		return m.OldLevel(ctx)
	case pathtemplate.FieldDescription:
		return m.OldDescription(ctx)
	case pathtemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case pathtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PathTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pathtemplate.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case pathtemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pathtemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case pathtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PathTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PathTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pathtemplate.FieldDescription) {
		fields = append(fields, pathtemplate.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathTemplateMutation) ClearField(name string) error {
	switch name {
	case pathtemplate.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown PathTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathTemplateMutation) ResetField(name string) error {
	switch name {
	case pathtemplate.FieldName:
		m.ResetName()
		return nil
	case pathtemplate.FieldLevel:
		m.ResetLevel()
		return nil
	case pathtemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case pathtemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case pathtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PathTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, pathtemplate.EdgeSteps)
	}
	if m.runs != nil {
		edges = append(edges, pathtemplate.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pathtemplate.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case pathtemplate.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, pathtemplate.EdgeSteps)
	}
	if m.removedruns != nil {
		edges = append(edges, pathtemplate.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pathtemplate.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case pathtemplate.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, pathtemplate.EdgeSteps)
	}
	if m.clearedruns {
		edges = append(edges, pathtemplate.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case pathtemplate.EdgeSteps:
		return m.clearedsteps
	case pathtemplate.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathTemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PathTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathTemplateMutation) ResetEdge(name string) error {
	switch name {
	case pathtemplate.EdgeSteps:
		m.ResetSteps()
		return nil
	case pathtemplate.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown PathTemplate edge %s", name)
}

// TextMutation represents an operation that mutates the Text nodes in the graph.
type TextMutation struct {
	config
	op              Op
	typ             string
	id              *int
	source_type     *string
	title           *string
	source_ref      *string
	chunk_index     *int
	addchunk_index  *int
	content         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	sessions        map[int]struct{}
	removedsessions map[int]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*Text, error)
	predicates      []predicate.Text
}

var _ ent.Mutation = (*TextMutation)(nil)

// textOption allows management of the mutation configuration using functional options.
type textOption func(*TextMutation)

// newTextMutation creates new mutation for the Text entity.
func newTextMutation(c config, op Op, opts ...textOption) *TextMutation {
	m := &TextMutation{
		config:        c,
		op:            op,
		typ:           TypeText,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTextID sets the ID field of the mutation.
func withTextID(id int) textOption {
	return func(m *TextMutation) {
		var (
			err   error
			once  sync.Once
			value *Text
		)
		m.oldValue = func(ctx context.Context) (*Text, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Text.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withText sets the old Text of the mutation.
func withText(node *Text) textOption {
	return func(m *TextMutation) {
		m.oldValue = func(context.Context) (*Text, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TextMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TextMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Text.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceType sets the "source_type" field.
func (m *TextMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *TextMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Text entity.
// If the Text object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *TextMutation) ResetSourceType() {
	m.source_type = nil
}

// SetTitle sets the "title" field.
func (m *TextMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TextMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Text entity.
// If the Text object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *TextMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[text.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *TextMutation) TitleCleared() bool {
	_, ok := m.clearedFields[text.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *TextMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, text.FieldTitle)
}

// SetSourceRef sets the "source_ref" field.
func (m *TextMutation) SetSourceRef(s string) {
	m.source_ref = &s
}

// SourceRef returns the value of the "source_ref" field in the mutation.
func (m *TextMutation) SourceRef() (r string, exists bool) {
	v := m.source_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRef returns the old "source_ref" field's value of the Text entity.
// If the Text object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextMutation) OldSourceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRef: %w", err)
	}
	return oldValue.SourceRef, nil
}

// ClearSourceRef clears the value of the "source_ref" field.
func (m *TextMutation) ClearSourceRef() {
	m.source_ref = nil
	m.clearedFields[text.FieldSourceRef] = struct{}{}
}

// SourceRefCleared returns if the "source_ref" field was cleared in this mutation.
func (m *TextMutation) SourceRefCleared() bool {
	_, ok := m.clearedFields[text.FieldSourceRef]
	return ok
}

// ResetSourceRef resets all changes to the "source_ref" field.
func (m *TextMutation) ResetSourceRef() {
	m.source_ref = nil
	delete(m.clearedFields, text.FieldSourceRef)
}

// SetChunkIndex sets the "chunk_index" field.
func (m *TextMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *TextMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the Text entity.
// If the Text object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *TextMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *TextMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *TextMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetContent sets the "content" field.
func (m *TextMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TextMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Text entity.
// If the Text object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *TextMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Text entity.
// If the Text object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by ids.
func (m *TextMutation) AddSessionIDs(ids ...int) {
	if m.sessions == nil {
		m.sessions = make(map[int]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the PathSession entity.
func (m *TextMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the PathSession entity was cleared.
func (m *TextMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the PathSession entity by IDs.
func (m *TextMutation) RemoveSessionIDs(ids ...int) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the PathSession entity.
func (m *TextMutation) RemovedSessionsIDs() (ids []int) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *TextMutation) SessionsIDs() (ids []int) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *TextMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the TextMutation builder.
func (m *TextMutation) Where(ps ...predicate.Text) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Text, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Text).
func (m *TextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TextMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_type != nil {
		fields = append(fields, text.FieldSourceType)
	}
	if m.title != nil {
		fields = append(fields, text.FieldTitle)
	}
	if m.source_ref != nil {
		fields = append(fields, text.FieldSourceRef)
	}
	if m.chunk_index != nil {
		fields = append(fields, text.FieldChunkIndex)
	}
	if m.content != nil {
		fields = append(fields, text.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, text.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case text.FieldSourceType:
		return m.SourceType()
	case text.FieldTitle:
		return m.Title()
	case text.FieldSourceRef:
		return m.SourceRef()
	case text.FieldChunkIndex:
		return m.ChunkIndex()
	case text.FieldContent:
		return m.Content()
	case text.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case text.FieldSourceType:
		return m.OldSourceType(ctx)
	case text.FieldTitle:
		return m.OldTitle(ctx)
	case text.FieldSourceRef:
		return m.OldSourceRef(ctx)
	case text.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case text.FieldContent:
		return m.OldContent(ctx)
	case text.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Text field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case text.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case text.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case text.FieldSourceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRef(v)
		return nil
	case text.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case text.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case text.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Text field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TextMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, text.FieldChunkIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TextMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case text.FieldChunkIndex:
		return m.AddedChunkIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextMutation) AddField(name string, value ent.Value) error {
	switch name {
	case text.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Text numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(text.FieldTitle) {
		fields = append(fields, text.FieldTitle)
	}
	if m.FieldCleared(text.FieldSourceRef) {
		fields = append(fields, text.FieldSourceRef)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TextMutation) ClearField(name string) error {
	switch name {
	case text.FieldTitle:
		m.ClearTitle()
		return nil
	case text.FieldSourceRef:
		m.ClearSourceRef()
		return nil
	}
	return fmt.Errorf("unknown Text nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TextMutation) ResetField(name string) error {
	switch name {
	case text.FieldSourceType:
		m.ResetSourceType()
		return nil
	case text.FieldTitle:
		m.ResetTitle()
		return nil
	case text.FieldSourceRef:
		m.ResetSourceRef()
		return nil
	case text.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case text.FieldContent:
		m.ResetContent()
		return nil
	case text.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Text field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TextMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sessions != nil {
		edges = append(edges, text.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case text.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsessions != nil {
		edges = append(edges, text.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TextMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case text.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsessions {
		edges = append(edges, text.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TextMutation) EdgeCleared(name string) bool {
	switch name {
	case text.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TextMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Text unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TextMutation) ResetEdge(name string) error {
	switch name {
	case text.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Text edge %s", name)
}

// VocabMutation represents an operation that mutates the Vocab nodes in the graph.
type VocabMutation struct {
	config
	op                Op
	typ               string
	id                *int
	term              *string
	lang              *string
	difficulty        *string
	definition        *string
	examples          *[]string
	appendexamples    []string
	practice_count    *int
	addpractice_count *int
	last_practiced_at *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	sessions          map[int]struct{}
	removedsessions   map[int]struct{}
	clearedsessions   bool
	done              bool
	oldValue          func(context.Context) (*Vocab, error)
	predicates        []predicate.Vocab
}

var _ ent.Mutation = (*VocabMutation)(nil)

// vocabOption allows management of the mutation configuration using functional options.
type vocabOption func(*VocabMutation)

// newVocabMutation creates new mutation for the Vocab entity.
func newVocabMutation(c config, op Op, opts ...vocabOption) *VocabMutation {
	m := &VocabMutation{
		config:        c,
		op:            op,
		typ:           TypeVocab,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocabID sets the ID field of the mutation.
func withVocabID(id int) vocabOption {
	return func(m *VocabMutation) {
		var (
			err   error
			once  sync.Once
			value *Vocab
		)
		m.oldValue = func(ctx context.Context) (*Vocab, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vocab.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocab sets the old Vocab of the mutation.
func withVocab(node *Vocab) vocabOption {
	return func(m *VocabMutation) {
		m.oldValue = func(context.Context) (*Vocab, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocabMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocabMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocabMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocabMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vocab.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTerm sets the "term" field.
func (m *VocabMutation) SetTerm(s string) {
	m.term = &s
}

// Term returns the value of the "term" field in the mutation.
func (m *VocabMutation) Term() (r string, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// ResetTerm resets all changes to the "term" field.
func (m *VocabMutation) ResetTerm() {
	m.term = nil
}

// SetLang sets the "lang" field.
func (m *VocabMutation) SetLang(s string) {
	m.lang = &s
}

// Lang returns the value of the "lang" field in the mutation.
func (m *VocabMutation) Lang() (r string, exists bool) {
	v := m.lang
	if v == nil {
		return
	}
	return *v, true
}

// OldLang returns the old "lang" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLang: %w", err)
	}
	return oldValue.Lang, nil
}

// ResetLang resets all changes to the "lang" field.
func (m *VocabMutation) ResetLang() {
	m.lang = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *VocabMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *VocabMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ClearDifficulty clears the value of the "difficulty" field.
func (m *VocabMutation) ClearDifficulty() {
	m.difficulty = nil
	m.clearedFields[vocab.FieldDifficulty] = struct{}{}
}

// DifficultyCleared returns if the "difficulty" field was cleared in this mutation.
func (m *VocabMutation) DifficultyCleared() bool {
	_, ok := m.clearedFields[vocab.FieldDifficulty]
	return ok
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *VocabMutation) ResetDifficulty() {
	m.difficulty = nil
	delete(m.clearedFields, vocab.FieldDifficulty)
}

// SetDefinition sets the "definition" field.
func (m *VocabMutation) SetDefinition(s string) {
	m.definition = &s
}

// Definition returns the value of the "definition" field in the mutation.
func (m *VocabMutation) Definition() (r string, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldDefinition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ClearDefinition clears the value of the "definition" field.
func (m *VocabMutation) ClearDefinition() {
	m.definition = nil
	m.clearedFields[vocab.FieldDefinition] = struct{}{}
}

// DefinitionCleared returns if the "definition" field was cleared in this mutation.
func (m *VocabMutation) DefinitionCleared() bool {
	_, ok := m.clearedFields[vocab.FieldDefinition]
	return ok
}

// ResetDefinition resets all changes to the "definition" field.
func (m *VocabMutation) ResetDefinition() {
	m.definition = nil
	delete(m.clearedFields, vocab.FieldDefinition)
}

// SetExamples sets the "examples" field.
func (m *VocabMutation) SetExamples(s []string) {
	m.examples = &s
	m.appendexamples = nil
}

// Examples returns the value of the "examples" field in the mutation.
func (m *VocabMutation) Examples() (r []string, exists bool) {
	v := m.examples
	if v == nil {
		return
	}
	return *v, true
}

// OldExamples returns the old "examples" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldExamples(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamples: %w", err)
	}
	return oldValue.Examples, nil
}

// AppendExamples adds s to the "examples" field.
func (m *VocabMutation) AppendExamples(s []string) {
	m.appendexamples = append(m.appendexamples, s...)
}

// AppendedExamples returns the list of values that were appended to the "examples" field in this mutation.
func (m *VocabMutation) AppendedExamples() ([]string, bool) {
	if len(m.appendexamples) == 0 {
		return nil, false
	}
	return m.appendexamples, true
}

// ClearExamples clears the value of the "examples" field.
func (m *VocabMutation) ClearExamples() {
	m.examples = nil
	m.appendexamples = nil
	m.clearedFields[vocab.FieldExamples] = struct{}{}
}

// ExamplesCleared returns if the "examples" field was cleared in this mutation.
func (m *VocabMutation) ExamplesCleared() bool {
	_, ok := m.clearedFields[vocab.FieldExamples]
	return ok
}

// ResetExamples resets all changes to the "examples" field.
func (m *VocabMutation) ResetExamples() {
	m.examples = nil
	m.appendexamples = nil
	delete(m.clearedFields, vocab.FieldExamples)
}

// SetPracticeCount sets the "practice_count" field.
func (m *VocabMutation) SetPracticeCount(i int) {
	m.practice_count = &i
	m.addpractice_count = nil
}

// PracticeCount returns the value of the "practice_count" field in the mutation.
func (m *VocabMutation) PracticeCount() (r int, exists bool) {
	v := m.practice_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeCount returns the old "practice_count" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldPracticeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeCount: %w", err)
	}
	return oldValue.PracticeCount, nil
}

// AddPracticeCount adds i to the "practice_count" field.
func (m *VocabMutation) AddPracticeCount(i int) {
	if m.addpractice_count != nil {
		*m.addpractice_count += i
	} else {
		m.addpractice_count = &i
	}
}

// AddedPracticeCount returns the value that was added to the "practice_count" field in this mutation.
func (m *VocabMutation) AddedPracticeCount() (r int, exists bool) {
	v := m.addpractice_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeCount resets all changes to the "practice_count" field.
func (m *VocabMutation) ResetPracticeCount() {
	m.practice_count = nil
	m.addpractice_count = nil
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *VocabMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *VocabMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldLastPracticedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (m *VocabMutation) ClearLastPracticedAt() {
	m.last_practiced_at = nil
	m.clearedFields[vocab.FieldLastPracticedAt] = struct{}{}
}

// LastPracticedAtCleared returns if the "last_practiced_at" field was cleared in this mutation.
func (m *VocabMutation) LastPracticedAtCleared() bool {
	_, ok := m.clearedFields[vocab.FieldLastPracticedAt]
	return ok
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *VocabMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
	delete(m.clearedFields, vocab.FieldLastPracticedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *VocabMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VocabMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vocab entity.
// If the Vocab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VocabMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSessionIDs adds the "sessions" edge to the PathSession entity by ids.
func (m *VocabMutation) AddSessionIDs(ids ...int) {
	if m.sessions == nil {
		m.sessions = make(map[int]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the PathSession entity.
func (m *VocabMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the PathSession entity was cleared.
func (m *VocabMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the PathSession entity by IDs.
func (m *VocabMutation) RemoveSessionIDs(ids ...int) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the PathSession entity.
func (m *VocabMutation) RemovedSessionsIDs() (ids []int) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *VocabMutation) SessionsIDs() (ids []int) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *VocabMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the VocabMutation builder.
func (m *VocabMutation) Where(ps ...predicate.Vocab) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocabMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocabMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vocab, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocabMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocabMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vocab).
func (m *VocabMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocabMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.term != nil {
		fields = append(fields, vocab.FieldTerm)
	}
	if m.lang != nil {
		fields = append(fields, vocab.FieldLang)
	}
	if m.difficulty != nil {
		fields = append(fields, vocab.FieldDifficulty)
	}
	if m.definition != nil {
		fields = append(fields, vocab.FieldDefinition)
	}
	if m.examples != nil {
		fields = append(fields, vocab.FieldExamples)
	}
	if m.practice_count != nil {
		fields = append(fields, vocab.FieldPracticeCount)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, vocab.FieldLastPracticedAt)
	}
	if m.created_at != nil {
		fields = append(fields, vocab.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocabMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocab.FieldTerm:
		return m.Term()
	case vocab.FieldLang:
		return m.Lang()
	case vocab.FieldDifficulty:
		return m.Difficulty()
	case vocab.FieldDefinition:
		return m.Definition()
	case vocab.FieldExamples:
		return m.Examples()
	case vocab.FieldPracticeCount:
		return m.PracticeCount()
	case vocab.FieldLastPracticedAt:
		return m.LastPracticedAt()
	case vocab.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocabMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocab.FieldTerm:
		return m.OldTerm(ctx)
	case vocab.FieldLang:
		return m.OldLang(ctx)
	case vocab.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case vocab.FieldDefinition:
		return m.OldDefinition(ctx)
	case vocab.FieldExamples:
		return m.OldExamples(ctx)
	case vocab.FieldPracticeCount:
		return m.OldPracticeCount(ctx)
	case vocab.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	case vocab.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vocab field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocab.FieldTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case vocab.FieldLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLang(v)
		return nil
	case vocab.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case vocab.FieldDefinition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case vocab.FieldExamples:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamples(v)
		return nil
	case vocab.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeCount(v)
		return nil
	case vocab.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	case vocab.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vocab field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocabMutation) AddedFields() []string {
	var fields []string
	if m.addpractice_count != nil {
		fields = append(fields, vocab.FieldPracticeCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocabMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vocab.FieldPracticeCount:
		return m.AddedPracticeCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vocab.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeCount(v)
		return nil
	}
	return fmt.Errorf("unknown Vocab numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocabMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vocab.FieldDifficulty) {
		fields = append(fields, vocab.FieldDifficulty)
	}
	if m.FieldCleared(vocab.FieldDefinition) {
		fields = append(fields, vocab.FieldDefinition)
	}
	if m.FieldCleared(vocab.FieldExamples) {
		fields = append(fields, vocab.FieldExamples)
	}
	if m.FieldCleared(vocab.FieldLastPracticedAt) {
		fields = append(fields, vocab.FieldLastPracticedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocabMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocabMutation) ClearField(name string) error {
	switch name {
	case vocab.FieldDifficulty:
		m.ClearDifficulty()
		return nil
	case vocab.FieldDefinition:
		m.ClearDefinition()
		return nil
	case vocab.FieldExamples:
		m.ClearExamples()
		return nil
	case vocab.FieldLastPracticedAt:
		m.ClearLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown Vocab nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocabMutation) ResetField(name string) error {
	switch name {
	case vocab.FieldTerm:
		m.ResetTerm()
		return nil
	case vocab.FieldLang:
		m.ResetLang()
		return nil
	case vocab.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case vocab.FieldDefinition:
		m.ResetDefinition()
		return nil
	case vocab.FieldExamples:
		m.ResetExamples()
		return nil
	case vocab.FieldPracticeCount:
		m.ResetPracticeCount()
		return nil
	case vocab.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	case vocab.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vocab field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocabMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sessions != nil {
		edges = append(edges, vocab.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocabMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vocab.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocabMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsessions != nil {
		edges = append(edges, vocab.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocabMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vocab.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocabMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsessions {
		edges = append(edges, vocab.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocabMutation) EdgeCleared(name string) bool {
	switch name {
	case vocab.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocabMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vocab unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocabMutation) ResetEdge(name string) error {
	switch name {
	case vocab.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Vocab edge %s", name)
}
