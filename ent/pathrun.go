// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
)

// PathRun is the model entity for the PathRun schema.
type PathRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID for external reference
	RunID string `json:"run_id,omitempty"`
	// Status holds the value of the "status" field.
	Status pathrun.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PathRunQuery when eager-loading is set.
	Edges              PathRunEdges `json:"edges"`
	path_template_runs *int
	selectValues       sql.SelectValues
}

// PathRunEdges holds the relations/edges for other nodes in the graph.
type PathRunEdges struct {
	// Template holds the value of the template edge.
	Template *PathTemplate `json:"template,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*PathSession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PathRunEdges) TemplateOrErr() (*PathTemplate, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pathtemplate.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e PathRunEdges) SessionsOrErr() ([]*PathSession, error) {
	if e.loadedTypes[1] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathrun.FieldID:
			values[i] = new(sql.NullInt64)
		case pathrun.FieldRunID, pathrun.FieldStatus:
			values[i] = new(sql.NullString)
		case pathrun.FieldStartedAt, pathrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case pathrun.ForeignKeys[0]: // path_template_runs
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathRun fields.
func (_m *PathRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case pathrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pathrun.Status(value.String)
			}
		case pathrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case pathrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pathrun.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field path_template_runs", value)
			} else if value.Valid {
				_m.path_template_runs = new(int)
				*_m.path_template_runs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathRun.
// This includes values selected through modifiers, order, etc.
func (_m *PathRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTemplate queries the "template" edge of the PathRun entity.
func (_m *PathRun) QueryTemplate() *PathTemplateQuery {
	return NewPathRunClient(_m.config).QueryTemplate(_m)
}

// QuerySessions queries the "sessions" edge of the PathRun entity.
func (_m *PathRun) QuerySessions() *PathSessionQuery {
	return NewPathRunClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this PathRun.
// Note that you need to call PathRun.Unwrap() before calling this method if this PathRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathRun) Update() *PathRunUpdateOne {
	return NewPathRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathRun) Unwrap() *PathRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathRun) String() string {
	var builder strings.Builder
	builder.WriteString("PathRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
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

// PathRuns is a parsable slice of PathRun.
type PathRuns []*PathRun
