// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/schema"
)

// Attempt is the model entity for the Attempt schema.
type Attempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID identifying this recording
	AttemptID string `json:"attempt_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// retell | q1 | q2 | q3 | read
	Mode string `json:"mode,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// SourceText holds the value of the "source_text" field.
	SourceText *string `json:"source_text,omitempty"`
	// Transcript holds the value of the "transcript" field.
	Transcript string `json:"transcript,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// Wpm holds the value of the "wpm" field.
	Wpm *float64 `json:"wpm,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// UniqueWords holds the value of the "unique_words" field.
	UniqueWords int `json:"unique_words,omitempty"`
	// UniqueRatio holds the value of the "unique_ratio" field.
	UniqueRatio float64 `json:"unique_ratio,omitempty"`
	// AvgWordLen holds the value of the "avg_word_len" field.
	AvgWordLen float64 `json:"avg_word_len,omitempty"`
	// FillerCount holds the value of the "filler_count" field.
	FillerCount int `json:"filler_count,omitempty"`
	// AsrEmpty holds the value of the "asr_empty" field.
	AsrEmpty bool `json:"asr_empty,omitempty"`
	// RetellEmpty holds the value of the "retell_empty" field.
	RetellEmpty bool `json:"retell_empty,omitempty"`
	// TooShort holds the value of the "too_short" field.
	TooShort bool `json:"too_short,omitempty"`
	// SuspectedSilence holds the value of the "suspected_silence" field.
	SuspectedSilence bool `json:"suspected_silence,omitempty"`
	// HallucinationHit holds the value of the "hallucination_hit" field.
	HallucinationHit bool `json:"hallucination_hit,omitempty"`
	// StopwordRatio holds the value of the "stopword_ratio" field.
	StopwordRatio float64 `json:"stopword_ratio,omitempty"`
	// LowQuality holds the value of the "low_quality" field.
	LowQuality bool `json:"low_quality,omitempty"`
	// Mode-specific payload (term checks, overlap, q3 causal)
	Extras *schema.AttemptExtras `json:"extras,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttemptQuery when eager-loading is set.
	Edges                 AttemptEdges `json:"edges"`
	path_session_attempts *int
	selectValues          sql.SelectValues
}

// AttemptEdges holds the relations/edges for other nodes in the graph.
type AttemptEdges struct {
	// Path session this attempt was recorded in, if any
	Session *PathSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttemptEdges) SessionOrErr() (*PathSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pathsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attempt.FieldExtras:
			values[i] = new([]byte)
		case attempt.FieldAsrEmpty, attempt.FieldRetellEmpty, attempt.FieldTooShort, attempt.FieldSuspectedSilence, attempt.FieldHallucinationHit, attempt.FieldLowQuality:
			values[i] = new(sql.NullBool)
		case attempt.FieldDurationSeconds, attempt.FieldWpm, attempt.FieldUniqueRatio, attempt.FieldAvgWordLen, attempt.FieldStopwordRatio:
			values[i] = new(sql.NullFloat64)
		case attempt.FieldID, attempt.FieldWordCount, attempt.FieldUniqueWords, attempt.FieldFillerCount:
			values[i] = new(sql.NullInt64)
		case attempt.FieldAttemptID, attempt.FieldMode, attempt.FieldTopic, attempt.FieldSourceText, attempt.FieldTranscript:
			values[i] = new(sql.NullString)
		case attempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case attempt.ForeignKeys[0]: // path_session_attempts
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attempt fields.
func (_m *Attempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attempt.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case attempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case attempt.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case attempt.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case attempt.FieldSourceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_text", values[i])
			} else if value.Valid {
				_m.SourceText = new(string)
				*_m.SourceText = value.String
			}
		case attempt.FieldTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value.Valid {
				_m.Transcript = value.String
			}
		case attempt.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case attempt.FieldWpm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wpm", values[i])
			} else if value.Valid {
				_m.Wpm = new(float64)
				*_m.Wpm = value.Float64
			}
		case attempt.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case attempt.FieldUniqueWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unique_words", values[i])
			} else if value.Valid {
				_m.UniqueWords = int(value.Int64)
			}
		case attempt.FieldUniqueRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unique_ratio", values[i])
			} else if value.Valid {
				_m.UniqueRatio = value.Float64
			}
		case attempt.FieldAvgWordLen:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_word_len", values[i])
			} else if value.Valid {
				_m.AvgWordLen = value.Float64
			}
		case attempt.FieldFillerCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field filler_count", values[i])
			} else if value.Valid {
				_m.FillerCount = int(value.Int64)
			}
		case attempt.FieldAsrEmpty:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field asr_empty", values[i])
			} else if value.Valid {
				_m.AsrEmpty = value.Bool
			}
		case attempt.FieldRetellEmpty:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retell_empty", values[i])
			} else if value.Valid {
				_m.RetellEmpty = value.Bool
			}
		case attempt.FieldTooShort:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field too_short", values[i])
			} else if value.Valid {
				_m.TooShort = value.Bool
			}
		case attempt.FieldSuspectedSilence:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field suspected_silence", values[i])
			} else if value.Valid {
				_m.SuspectedSilence = value.Bool
			}
		case attempt.FieldHallucinationHit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hallucination_hit", values[i])
			} else if value.Valid {
				_m.HallucinationHit = value.Bool
			}
		case attempt.FieldStopwordRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stopword_ratio", values[i])
			} else if value.Valid {
				_m.StopwordRatio = value.Float64
			}
		case attempt.FieldLowQuality:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field low_quality", values[i])
			} else if value.Valid {
				_m.LowQuality = value.Bool
			}
		case attempt.FieldExtras:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extras", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Extras); err != nil {
					return fmt.Errorf("unmarshal field extras: %w", err)
				}
			}
		case attempt.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field path_session_attempts", value)
			} else if value.Valid {
				_m.path_session_attempts = new(int)
				*_m.path_session_attempts = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Attempt.
// This includes values selected through modifiers, order, etc.
func (_m *Attempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Attempt entity.
func (_m *Attempt) QuerySession() *PathSessionQuery {
	return NewAttemptClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Attempt.
// Note that you need to call Attempt.Unwrap() before calling this method if this Attempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attempt) Update() *AttemptUpdateOne {
	return NewAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attempt) Unwrap() *Attempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attempt) String() string {
	var builder strings.Builder
	builder.WriteString("Attempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	if v := _m.SourceText; v != nil {
		builder.WriteString("source_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(_m.Transcript)
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Wpm; v != nil {
		builder.WriteString("wpm=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("unique_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.UniqueWords))
	builder.WriteString(", ")
	builder.WriteString("unique_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.UniqueRatio))
	builder.WriteString(", ")
	builder.WriteString("avg_word_len=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgWordLen))
	builder.WriteString(", ")
	builder.WriteString("filler_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FillerCount))
	builder.WriteString(", ")
	builder.WriteString("asr_empty=")
	builder.WriteString(fmt.Sprintf("%v", _m.AsrEmpty))
	builder.WriteString(", ")
	builder.WriteString("retell_empty=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetellEmpty))
	builder.WriteString(", ")
	builder.WriteString("too_short=")
	builder.WriteString(fmt.Sprintf("%v", _m.TooShort))
	builder.WriteString(", ")
	builder.WriteString("suspected_silence=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuspectedSilence))
	builder.WriteString(", ")
	builder.WriteString("hallucination_hit=")
	builder.WriteString(fmt.Sprintf("%v", _m.HallucinationHit))
	builder.WriteString(", ")
	builder.WriteString("stopword_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.StopwordRatio))
	builder.WriteString(", ")
	builder.WriteString("low_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowQuality))
	builder.WriteString(", ")
	builder.WriteString("extras=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extras))
	builder.WriteByte(')')
	return builder.String()
}

// Attempts is a parsable slice of Attempt.
type Attempts []*Attempt
