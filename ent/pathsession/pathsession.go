// Code generated by ent, DO NOT EDIT.

package pathsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pathsession type in the database.
	Label = "path_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldStepType holds the string denoting the step_type field in the database.
	FieldStepType = "step_type"
	// FieldContentRef holds the string denoting the content_ref field in the database.
	FieldContentRef = "content_ref"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeText holds the string denoting the text edge name in mutations.
	EdgeText = "text"
	// EdgeVocab holds the string denoting the vocab edge name in mutations.
	EdgeVocab = "vocab"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// Table holds the table name of the pathsession in the database.
	Table = "path_sessions"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "path_sessions"
	// RunInverseTable is the table name for the PathRun entity.
	// It exists in this package in order to avoid circular dependency with the "pathrun" package.
	RunInverseTable = "path_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "path_run_sessions"
	// TextTable is the table that holds the text relation/edge.
	TextTable = "path_sessions"
	// TextInverseTable is the table name for the Text entity.
	// It exists in this package in order to avoid circular dependency with the "text" package.
	TextInverseTable = "texts"
	// TextColumn is the table column denoting the text relation/edge.
	TextColumn = "path_session_text"
	// VocabTable is the table that holds the vocab relation/edge. The primary key declared below.
	VocabTable = "path_session_vocab"
	// VocabInverseTable is the table name for the Vocab entity.
	// It exists in this package in order to avoid circular dependency with the "vocab" package.
	VocabInverseTable = "vocabs"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "attempts"
	// AttemptsInverseTable is the table name for the Attempt entity.
	// It exists in this package in order to avoid circular dependency with the "attempt" package.
	AttemptsInverseTable = "attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "path_session_attempts"
)

// Columns holds all SQL columns for pathsession fields.
var Columns = []string{
	FieldID,
	FieldStepOrder,
	FieldStepType,
	FieldContentRef,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "path_sessions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"path_run_sessions",
	"path_session_text",
}

var (
	// VocabPrimaryKey and VocabColumn2 are the table columns denoting the
	// primary key for the vocab relation (M2M).
	VocabPrimaryKey = []string{"path_session_id", "vocab_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	StepOrderValidator func(int) error
	// StepTypeValidator is a validator for the "step_type" field. It is called by the builders before save.
	StepTypeValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("pathsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PathSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByStepType orders the results by the step_type field.
func ByStepType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepType, opts...).ToFunc()
}

// ByContentRef orders the results by the content_ref field.
func ByContentRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentRef, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByTextField orders the results by text field.
func ByTextField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTextStep(), sql.OrderByField(field, opts...))
	}
}

// ByVocabCount orders the results by vocab count.
func ByVocabCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVocabStep(), opts...)
	}
}

// ByVocab orders the results by vocab terms.
func ByVocab(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVocabStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newTextStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TextInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, TextTable, TextColumn),
	)
}
func newVocabStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VocabInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, VocabTable, VocabPrimaryKey...),
	)
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
