// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSourceText holds the string denoting the source_text field in the database.
	FieldSourceText = "source_text"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldWpm holds the string denoting the wpm field in the database.
	FieldWpm = "wpm"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldUniqueWords holds the string denoting the unique_words field in the database.
	FieldUniqueWords = "unique_words"
	// FieldUniqueRatio holds the string denoting the unique_ratio field in the database.
	FieldUniqueRatio = "unique_ratio"
	// FieldAvgWordLen holds the string denoting the avg_word_len field in the database.
	FieldAvgWordLen = "avg_word_len"
	// FieldFillerCount holds the string denoting the filler_count field in the database.
	FieldFillerCount = "filler_count"
	// FieldAsrEmpty holds the string denoting the asr_empty field in the database.
	FieldAsrEmpty = "asr_empty"
	// FieldRetellEmpty holds the string denoting the retell_empty field in the database.
	FieldRetellEmpty = "retell_empty"
	// FieldTooShort holds the string denoting the too_short field in the database.
	FieldTooShort = "too_short"
	// FieldSuspectedSilence holds the string denoting the suspected_silence field in the database.
	FieldSuspectedSilence = "suspected_silence"
	// FieldHallucinationHit holds the string denoting the hallucination_hit field in the database.
	FieldHallucinationHit = "hallucination_hit"
	// FieldStopwordRatio holds the string denoting the stopword_ratio field in the database.
	FieldStopwordRatio = "stopword_ratio"
	// FieldLowQuality holds the string denoting the low_quality field in the database.
	FieldLowQuality = "low_quality"
	// FieldExtras holds the string denoting the extras field in the database.
	FieldExtras = "extras"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "attempts"
	// SessionInverseTable is the table name for the PathSession entity.
	// It exists in this package in order to avoid circular dependency with the "pathsession" package.
	SessionInverseTable = "path_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "path_session_attempts"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldAttemptID,
	FieldCreatedAt,
	FieldMode,
	FieldTopic,
	FieldSourceText,
	FieldTranscript,
	FieldDurationSeconds,
	FieldWpm,
	FieldWordCount,
	FieldUniqueWords,
	FieldUniqueRatio,
	FieldAvgWordLen,
	FieldFillerCount,
	FieldAsrEmpty,
	FieldRetellEmpty,
	FieldTooShort,
	FieldSuspectedSilence,
	FieldHallucinationHit,
	FieldStopwordRatio,
	FieldLowQuality,
	FieldExtras,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "attempts"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"path_session_attempts",
}

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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultUniqueWords holds the default value on creation for the "unique_words" field.
	DefaultUniqueWords int
	// DefaultUniqueRatio holds the default value on creation for the "unique_ratio" field.
	DefaultUniqueRatio float64
	// DefaultAvgWordLen holds the default value on creation for the "avg_word_len" field.
	DefaultAvgWordLen float64
	// DefaultFillerCount holds the default value on creation for the "filler_count" field.
	DefaultFillerCount int
	// DefaultAsrEmpty holds the default value on creation for the "asr_empty" field.
	DefaultAsrEmpty bool
	// DefaultRetellEmpty holds the default value on creation for the "retell_empty" field.
	DefaultRetellEmpty bool
	// DefaultTooShort holds the default value on creation for the "too_short" field.
	DefaultTooShort bool
	// DefaultSuspectedSilence holds the default value on creation for the "suspected_silence" field.
	DefaultSuspectedSilence bool
	// DefaultHallucinationHit holds the default value on creation for the "hallucination_hit" field.
	DefaultHallucinationHit bool
	// DefaultStopwordRatio holds the default value on creation for the "stopword_ratio" field.
	DefaultStopwordRatio float64
	// DefaultLowQuality holds the default value on creation for the "low_quality" field.
	DefaultLowQuality bool
)

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySourceText orders the results by the source_text field.
func BySourceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceText, opts...).ToFunc()
}

// ByTranscript orders the results by the transcript field.
func ByTranscript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscript, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByWpm orders the results by the wpm field.
func ByWpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWpm, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByUniqueWords orders the results by the unique_words field.
func ByUniqueWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueWords, opts...).ToFunc()
}

// ByUniqueRatio orders the results by the unique_ratio field.
func ByUniqueRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueRatio, opts...).ToFunc()
}

// ByAvgWordLen orders the results by the avg_word_len field.
func ByAvgWordLen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgWordLen, opts...).ToFunc()
}

// ByFillerCount orders the results by the filler_count field.
func ByFillerCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFillerCount, opts...).ToFunc()
}

// ByAsrEmpty orders the results by the asr_empty field.
func ByAsrEmpty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAsrEmpty, opts...).ToFunc()
}

// ByRetellEmpty orders the results by the retell_empty field.
func ByRetellEmpty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetellEmpty, opts...).ToFunc()
}

// ByTooShort orders the results by the too_short field.
func ByTooShort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTooShort, opts...).ToFunc()
}

// BySuspectedSilence orders the results by the suspected_silence field.
func BySuspectedSilence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspectedSilence, opts...).ToFunc()
}

// ByHallucinationHit orders the results by the hallucination_hit field.
func ByHallucinationHit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHallucinationHit, opts...).ToFunc()
}

// ByStopwordRatio orders the results by the stopword_ratio field.
func ByStopwordRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopwordRatio, opts...).ToFunc()
}

// ByLowQuality orders the results by the low_quality field.
func ByLowQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowQuality, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
