// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkoehler/sprechzeit/ent/pathstep"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
)

// PathStep is the model entity for the PathStep schema.
type PathStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// news | book | define_vocab | review
	StepType string `json:"step_type,omitempty"`
	// Opaque step parameters (e.g. source file, chunk size)
	Config map[string]interface{} `json:"config,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PathStepQuery when eager-loading is set.
	Edges               PathStepEdges `json:"edges"`
	path_template_steps *int
	selectValues        sql.SelectValues
}

// PathStepEdges holds the relations/edges for other nodes in the graph.
type PathStepEdges struct {
	// Template holds the value of the template edge.
	Template *PathTemplate `json:"template,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PathStepEdges) TemplateOrErr() (*PathTemplate, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pathtemplate.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathstep.FieldConfig:
			values[i] = new([]byte)
		case pathstep.FieldID, pathstep.FieldStepOrder:
			values[i] = new(sql.NullInt64)
		case pathstep.FieldStepType:
			values[i] = new(sql.NullString)
		case pathstep.ForeignKeys[0]: // path_template_steps
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathStep fields.
func (_m *PathStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case pathstep.FieldStepType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_type", values[i])
			} else if value.Valid {
				_m.StepType = value.String
			}
		case pathstep.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case pathstep.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field path_template_steps", value)
			} else if value.Valid {
				_m.path_template_steps = new(int)
				*_m.path_template_steps = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathStep.
// This includes values selected through modifiers, order, etc.
func (_m *PathStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTemplate queries the "template" edge of the PathStep entity.
func (_m *PathStep) QueryTemplate() *PathTemplateQuery {
	return NewPathStepClient(_m.config).QueryTemplate(_m)
}

// Update returns a builder for updating this PathStep.
// Note that you need to call PathStep.Unwrap() before calling this method if this PathStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathStep) Update() *PathStepUpdateOne {
	return NewPathStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathStep) Unwrap() *PathStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathStep) String() string {
	var builder strings.Builder
	builder.WriteString("PathStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("step_type=")
	builder.WriteString(_m.StepType)
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteByte(')')
	return builder.String()
}

// PathSteps is a parsable slice of PathStep.
type PathSteps []*PathStep
