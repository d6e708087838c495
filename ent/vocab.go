// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// Vocab is the model entity for the Vocab schema.
type Vocab struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Term holds the value of the "term" field.
	Term string `json:"term,omitempty"`
	// Lang holds the value of the "lang" field.
	Lang string `json:"lang,omitempty"`
	// easy | medium | hard, as judged at suggestion time
	Difficulty string `json:"difficulty,omitempty"`
	// Definition holds the value of the "definition" field.
	Definition string `json:"definition,omitempty"`
	// Examples holds the value of the "examples" field.
	Examples []string `json:"examples,omitempty"`
	// PracticeCount holds the value of the "practice_count" field.
	PracticeCount int `json:"practice_count,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VocabQuery when eager-loading is set.
	Edges        VocabEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VocabEdges holds the relations/edges for other nodes in the graph.
type VocabEdges struct {
	// Sessions holds the value of the sessions edge.
	Sessions []*PathSession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e VocabEdges) SessionsOrErr() ([]*PathSession, error) {
	if e.loadedTypes[0] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vocab) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocab.FieldExamples:
			values[i] = new([]byte)
		case vocab.FieldID, vocab.FieldPracticeCount:
			values[i] = new(sql.NullInt64)
		case vocab.FieldTerm, vocab.FieldLang, vocab.FieldDifficulty, vocab.FieldDefinition:
			values[i] = new(sql.NullString)
		case vocab.FieldLastPracticedAt, vocab.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vocab fields.
func (_m *Vocab) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocab.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case vocab.FieldTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.String
			}
		case vocab.FieldLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lang", values[i])
			} else if value.Valid {
				_m.Lang = value.String
			}
		case vocab.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case vocab.FieldDefinition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field definition", values[i])
			} else if value.Valid {
				_m.Definition = value.String
			}
		case vocab.FieldExamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examples); err != nil {
					return fmt.Errorf("unmarshal field examples: %w", err)
				}
			}
		case vocab.FieldPracticeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_count", values[i])
			} else if value.Valid {
				_m.PracticeCount = int(value.Int64)
			}
		case vocab.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = new(time.Time)
				*_m.LastPracticedAt = value.Time
			}
		case vocab.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vocab.
// This includes values selected through modifiers, order, etc.
func (_m *Vocab) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySessions queries the "sessions" edge of the Vocab entity.
func (_m *Vocab) QuerySessions() *PathSessionQuery {
	return NewVocabClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this Vocab.
// Note that you need to call Vocab.Unwrap() before calling this method if this Vocab
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vocab) Update() *VocabUpdateOne {
	return NewVocabClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vocab entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vocab) Unwrap() *Vocab {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Vocab is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vocab) String() string {
	var builder strings.Builder
	builder.WriteString("Vocab(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("term=")
	builder.WriteString(_m.Term)
	builder.WriteString(", ")
	builder.WriteString("lang=")
	builder.WriteString(_m.Lang)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("definition=")
	builder.WriteString(_m.Definition)
	builder.WriteString(", ")
	builder.WriteString("examples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examples))
	builder.WriteString(", ")
	builder.WriteString("practice_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCount))
	builder.WriteString(", ")
	if v := _m.LastPracticedAt; v != nil {
		builder.WriteString("last_practiced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Vocabs is a parsable slice of Vocab.
type Vocabs []*Vocab
