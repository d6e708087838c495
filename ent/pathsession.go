// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/text"
)

// PathSession is the model entity for the PathSession schema.
type PathSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// StepType holds the value of the "step_type" field.
	StepType string `json:"step_type,omitempty"`
	// Opaque reference to the step's content (file, chunk)
	ContentRef string `json:"content_ref,omitempty"`
	// Status holds the value of the "status" field.
	Status pathsession.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PathSessionQuery when eager-loading is set.
	Edges             PathSessionEdges `json:"edges"`
	path_run_sessions *int
	path_session_text *int
	selectValues      sql.SelectValues
}

// PathSessionEdges holds the relations/edges for other nodes in the graph.
type PathSessionEdges struct {
	// Run holds the value of the run edge.
	Run *PathRun `json:"run,omitempty"`
	// Materialized text for news/book steps
	Text *Text `json:"text,omitempty"`
	// Words chosen during this session (VocabLink)
	Vocab []*Vocab `json:"vocab,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*Attempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PathSessionEdges) RunOrErr() (*PathRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pathrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// TextOrErr returns the Text value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PathSessionEdges) TextOrErr() (*Text, error) {
	if e.Text != nil {
		return e.Text, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: text.Label}
	}
	return nil, &NotLoadedError{edge: "text"}
}

// VocabOrErr returns the Vocab value or an error if the edge
// was not loaded in eager-loading.
func (e PathSessionEdges) VocabOrErr() ([]*Vocab, error) {
	if e.loadedTypes[2] {
		return e.Vocab, nil
	}
	return nil, &NotLoadedError{edge: "vocab"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e PathSessionEdges) AttemptsOrErr() ([]*Attempt, error) {
	if e.loadedTypes[3] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathsession.FieldID, pathsession.FieldStepOrder:
			values[i] = new(sql.NullInt64)
		case pathsession.FieldStepType, pathsession.FieldContentRef, pathsession.FieldStatus:
			values[i] = new(sql.NullString)
		case pathsession.FieldStartedAt, pathsession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case pathsession.ForeignKeys[0]: // path_run_sessions
			values[i] = new(sql.NullInt64)
		case pathsession.ForeignKeys[1]: // path_session_text
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathSession fields.
func (_m *PathSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathsession.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case pathsession.FieldStepType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_type", values[i])
			} else if value.Valid {
				_m.StepType = value.String
			}
		case pathsession.FieldContentRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_ref", values[i])
			} else if value.Valid {
				_m.ContentRef = value.String
			}
		case pathsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pathsession.Status(value.String)
			}
		case pathsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case pathsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pathsession.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field path_run_sessions", value)
			} else if value.Valid {
				_m.path_run_sessions = new(int)
				*_m.path_run_sessions = int(value.Int64)
			}
		case pathsession.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field path_session_text", value)
			} else if value.Valid {
				_m.path_session_text = new(int)
				*_m.path_session_text = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathSession.
// This includes values selected through modifiers, order, etc.
func (_m *PathSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the PathSession entity.
func (_m *PathSession) QueryRun() *PathRunQuery {
	return NewPathSessionClient(_m.config).QueryRun(_m)
}

// QueryText queries the "text" edge of the PathSession entity.
func (_m *PathSession) QueryText() *TextQuery {
	return NewPathSessionClient(_m.config).QueryText(_m)
}

// QueryVocab queries the "vocab" edge of the PathSession entity.
func (_m *PathSession) QueryVocab() *VocabQuery {
	return NewPathSessionClient(_m.config).QueryVocab(_m)
}

// QueryAttempts queries the "attempts" edge of the PathSession entity.
func (_m *PathSession) QueryAttempts() *AttemptQuery {
	return NewPathSessionClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this PathSession.
// Note that you need to call PathSession.Unwrap() before calling this method if this PathSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathSession) Update() *PathSessionUpdateOne {
	return NewPathSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathSession) Unwrap() *PathSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathSession) String() string {
	var builder strings.Builder
	builder.WriteString("PathSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("step_type=")
	builder.WriteString(_m.StepType)
	builder.WriteString(", ")
	builder.WriteString("content_ref=")
	builder.WriteString(_m.ContentRef)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PathSessions is a parsable slice of PathSession.
type PathSessions []*PathSession
