// Code generated by ent, DO NOT EDIT.

package vocab

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the vocab type in the database.
	Label = "vocab"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTerm holds the string denoting the term field in the database.
	FieldTerm = "term"
	// FieldLang holds the string denoting the lang field in the database.
	FieldLang = "lang"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDefinition holds the string denoting the definition field in the database.
	FieldDefinition = "definition"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// Table holds the table name of the vocab in the database.
	Table = "vocabs"
	// SessionsTable is the table that holds the sessions relation/edge. The primary key declared below.
	SessionsTable = "path_session_vocab"
	// SessionsInverseTable is the table name for the PathSession entity.
	// It exists in this package in order to avoid circular dependency with the "pathsession" package.
	SessionsInverseTable = "path_sessions"
)

// Columns holds all SQL columns for vocab fields.
var Columns = []string{
	FieldID,
	FieldTerm,
	FieldLang,
	FieldDifficulty,
	FieldDefinition,
	FieldExamples,
	FieldPracticeCount,
	FieldLastPracticedAt,
	FieldCreatedAt,
}

var (
	// SessionsPrimaryKey and SessionsColumn2 are the table columns denoting the
	// primary key for the sessions relation (M2M).
	SessionsPrimaryKey = []string{"path_session_id", "vocab_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TermValidator is a validator for the "term" field. It is called by the builders before save.
	TermValidator func(string) error
	// DefaultLang holds the default value on creation for the "lang" field.
	DefaultLang string
	// DefaultPracticeCount holds the default value on creation for the "practice_count" field.
	DefaultPracticeCount int
	// PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	PracticeCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Vocab queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTerm orders the results by the term field.
func ByTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerm, opts...).ToFunc()
}

// ByLang orders the results by the lang field.
func ByLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLang, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDefinition orders the results by the definition field.
func ByDefinition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefinition, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, SessionsTable, SessionsPrimaryKey...),
	)
}
