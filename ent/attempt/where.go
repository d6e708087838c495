// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mkoehler/sprechzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAttemptID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldMode, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTopic, v))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSourceText, v))
}

// Transcript applies equality check predicate on the "transcript" field. It's identical to TranscriptEQ.
func Transcript(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTranscript, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDurationSeconds, v))
}

// Wpm applies equality check predicate on the "wpm" field. It's identical to WpmEQ.
func Wpm(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldWpm, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldWordCount, v))
}

// UniqueWords applies equality check predicate on the "unique_words" field. It's identical to UniqueWordsEQ.
func UniqueWords(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUniqueWords, v))
}

// UniqueRatio applies equality check predicate on the "unique_ratio" field. It's identical to UniqueRatioEQ.
func UniqueRatio(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUniqueRatio, v))
}

// AvgWordLen applies equality check predicate on the "avg_word_len" field. It's identical to AvgWordLenEQ.
func AvgWordLen(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAvgWordLen, v))
}

// FillerCount applies equality check predicate on the "filler_count" field. It's identical to FillerCountEQ.
func FillerCount(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFillerCount, v))
}

// AsrEmpty applies equality check predicate on the "asr_empty" field. It's identical to AsrEmptyEQ.
func AsrEmpty(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAsrEmpty, v))
}

// RetellEmpty applies equality check predicate on the "retell_empty" field. It's identical to RetellEmptyEQ.
func RetellEmpty(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRetellEmpty, v))
}

// TooShort applies equality check predicate on the "too_short" field. It's identical to TooShortEQ.
func TooShort(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTooShort, v))
}

// SuspectedSilence applies equality check predicate on the "suspected_silence" field. It's identical to SuspectedSilenceEQ.
func SuspectedSilence(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSuspectedSilence, v))
}

// HallucinationHit applies equality check predicate on the "hallucination_hit" field. It's identical to HallucinationHitEQ.
func HallucinationHit(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHallucinationHit, v))
}

// StopwordRatio applies equality check predicate on the "stopword_ratio" field. It's identical to StopwordRatioEQ.
func StopwordRatio(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldStopwordRatio, v))
}

// LowQuality applies equality check predicate on the "low_quality" field. It's identical to LowQualityEQ.
func LowQuality(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldLowQuality, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldAttemptID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldMode, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldTopic, v))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextIsNil applies the IsNil predicate on the "source_text" field.
func SourceTextIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldSourceText))
}

// SourceTextNotNil applies the NotNil predicate on the "source_text" field.
func SourceTextNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldSourceText))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSourceText, v))
}

// TranscriptEQ applies the EQ predicate on the "transcript" field.
func TranscriptEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTranscript, v))
}

// TranscriptNEQ applies the NEQ predicate on the "transcript" field.
func TranscriptNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTranscript, v))
}

// TranscriptIn applies the In predicate on the "transcript" field.
func TranscriptIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTranscript, vs...))
}

// TranscriptNotIn applies the NotIn predicate on the "transcript" field.
func TranscriptNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTranscript, vs...))
}

// TranscriptGT applies the GT predicate on the "transcript" field.
func TranscriptGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTranscript, v))
}

// TranscriptGTE applies the GTE predicate on the "transcript" field.
func TranscriptGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTranscript, v))
}

// TranscriptLT applies the LT predicate on the "transcript" field.
func TranscriptLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTranscript, v))
}

// TranscriptLTE applies the LTE predicate on the "transcript" field.
func TranscriptLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTranscript, v))
}

// TranscriptContains applies the Contains predicate on the "transcript" field.
func TranscriptContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldTranscript, v))
}

// TranscriptHasPrefix applies the HasPrefix predicate on the "transcript" field.
func TranscriptHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldTranscript, v))
}

// TranscriptHasSuffix applies the HasSuffix predicate on the "transcript" field.
func TranscriptHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldTranscript, v))
}

// TranscriptEqualFold applies the EqualFold predicate on the "transcript" field.
func TranscriptEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldTranscript, v))
}

// TranscriptContainsFold applies the ContainsFold predicate on the "transcript" field.
func TranscriptContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldTranscript, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldDurationSeconds))
}

// WpmEQ applies the EQ predicate on the "wpm" field.
func WpmEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldWpm, v))
}

// WpmNEQ applies the NEQ predicate on the "wpm" field.
func WpmNEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldWpm, v))
}

// WpmIn applies the In predicate on the "wpm" field.
func WpmIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldWpm, vs...))
}

// WpmNotIn applies the NotIn predicate on the "wpm" field.
func WpmNotIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldWpm, vs...))
}

// WpmGT applies the GT predicate on the "wpm" field.
func WpmGT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldWpm, v))
}

// WpmGTE applies the GTE predicate on the "wpm" field.
func WpmGTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldWpm, v))
}

// WpmLT applies the LT predicate on the "wpm" field.
func WpmLT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldWpm, v))
}

// WpmLTE applies the LTE predicate on the "wpm" field.
func WpmLTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldWpm, v))
}

// WpmIsNil applies the IsNil predicate on the "wpm" field.
func WpmIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldWpm))
}

// WpmNotNil applies the NotNil predicate on the "wpm" field.
func WpmNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldWpm))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldWordCount, v))
}

// UniqueWordsEQ applies the EQ predicate on the "unique_words" field.
func UniqueWordsEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUniqueWords, v))
}

// UniqueWordsNEQ applies the NEQ predicate on the "unique_words" field.
func UniqueWordsNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUniqueWords, v))
}

// UniqueWordsIn applies the In predicate on the "unique_words" field.
func UniqueWordsIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUniqueWords, vs...))
}

// UniqueWordsNotIn applies the NotIn predicate on the "unique_words" field.
func UniqueWordsNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUniqueWords, vs...))
}

// UniqueWordsGT applies the GT predicate on the "unique_words" field.
func UniqueWordsGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUniqueWords, v))
}

// UniqueWordsGTE applies the GTE predicate on the "unique_words" field.
func UniqueWordsGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUniqueWords, v))
}

// UniqueWordsLT applies the LT predicate on the "unique_words" field.
func UniqueWordsLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUniqueWords, v))
}

// UniqueWordsLTE applies the LTE predicate on the "unique_words" field.
func UniqueWordsLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUniqueWords, v))
}

// UniqueRatioEQ applies the EQ predicate on the "unique_ratio" field.
func UniqueRatioEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUniqueRatio, v))
}

// UniqueRatioNEQ applies the NEQ predicate on the "unique_ratio" field.
func UniqueRatioNEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUniqueRatio, v))
}

// UniqueRatioIn applies the In predicate on the "unique_ratio" field.
func UniqueRatioIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUniqueRatio, vs...))
}

// UniqueRatioNotIn applies the NotIn predicate on the "unique_ratio" field.
func UniqueRatioNotIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUniqueRatio, vs...))
}

// UniqueRatioGT applies the GT predicate on the "unique_ratio" field.
func UniqueRatioGT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUniqueRatio, v))
}

// UniqueRatioGTE applies the GTE predicate on the "unique_ratio" field.
func UniqueRatioGTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUniqueRatio, v))
}

// UniqueRatioLT applies the LT predicate on the "unique_ratio" field.
func UniqueRatioLT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUniqueRatio, v))
}

// UniqueRatioLTE applies the LTE predicate on the "unique_ratio" field.
func UniqueRatioLTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUniqueRatio, v))
}

// AvgWordLenEQ applies the EQ predicate on the "avg_word_len" field.
func AvgWordLenEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAvgWordLen, v))
}

// AvgWordLenNEQ applies the NEQ predicate on the "avg_word_len" field.
func AvgWordLenNEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAvgWordLen, v))
}

// AvgWordLenIn applies the In predicate on the "avg_word_len" field.
func AvgWordLenIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAvgWordLen, vs...))
}

// AvgWordLenNotIn applies the NotIn predicate on the "avg_word_len" field.
func AvgWordLenNotIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAvgWordLen, vs...))
}

// AvgWordLenGT applies the GT predicate on the "avg_word_len" field.
func AvgWordLenGT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAvgWordLen, v))
}

// AvgWordLenGTE applies the GTE predicate on the "avg_word_len" field.
func AvgWordLenGTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAvgWordLen, v))
}

// AvgWordLenLT applies the LT predicate on the "avg_word_len" field.
func AvgWordLenLT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAvgWordLen, v))
}

// AvgWordLenLTE applies the LTE predicate on the "avg_word_len" field.
func AvgWordLenLTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAvgWordLen, v))
}

// FillerCountEQ applies the EQ predicate on the "filler_count" field.
func FillerCountEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFillerCount, v))
}

// FillerCountNEQ applies the NEQ predicate on the "filler_count" field.
func FillerCountNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldFillerCount, v))
}

// FillerCountIn applies the In predicate on the "filler_count" field.
func FillerCountIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldFillerCount, vs...))
}

// FillerCountNotIn applies the NotIn predicate on the "filler_count" field.
func FillerCountNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldFillerCount, vs...))
}

// FillerCountGT applies the GT predicate on the "filler_count" field.
func FillerCountGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldFillerCount, v))
}

// FillerCountGTE applies the GTE predicate on the "filler_count" field.
func FillerCountGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldFillerCount, v))
}

// FillerCountLT applies the LT predicate on the "filler_count" field.
func FillerCountLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldFillerCount, v))
}

// FillerCountLTE applies the LTE predicate on the "filler_count" field.
func FillerCountLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldFillerCount, v))
}

// AsrEmptyEQ applies the EQ predicate on the "asr_empty" field.
func AsrEmptyEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAsrEmpty, v))
}

// AsrEmptyNEQ applies the NEQ predicate on the "asr_empty" field.
func AsrEmptyNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAsrEmpty, v))
}

// RetellEmptyEQ applies the EQ predicate on the "retell_empty" field.
func RetellEmptyEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRetellEmpty, v))
}

// RetellEmptyNEQ applies the NEQ predicate on the "retell_empty" field.
func RetellEmptyNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldRetellEmpty, v))
}

// TooShortEQ applies the EQ predicate on the "too_short" field.
func TooShortEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTooShort, v))
}

// TooShortNEQ applies the NEQ predicate on the "too_short" field.
func TooShortNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTooShort, v))
}

// SuspectedSilenceEQ applies the EQ predicate on the "suspected_silence" field.
func SuspectedSilenceEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSuspectedSilence, v))
}

// SuspectedSilenceNEQ applies the NEQ predicate on the "suspected_silence" field.
func SuspectedSilenceNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSuspectedSilence, v))
}

// HallucinationHitEQ applies the EQ predicate on the "hallucination_hit" field.
func HallucinationHitEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHallucinationHit, v))
}

// HallucinationHitNEQ applies the NEQ predicate on the "hallucination_hit" field.
func HallucinationHitNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldHallucinationHit, v))
}

// StopwordRatioEQ applies the EQ predicate on the "stopword_ratio" field.
func StopwordRatioEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldStopwordRatio, v))
}

// StopwordRatioNEQ applies the NEQ predicate on the "stopword_ratio" field.
func StopwordRatioNEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldStopwordRatio, v))
}

// StopwordRatioIn applies the In predicate on the "stopword_ratio" field.
func StopwordRatioIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldStopwordRatio, vs...))
}

// StopwordRatioNotIn applies the NotIn predicate on the "stopword_ratio" field.
func StopwordRatioNotIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldStopwordRatio, vs...))
}

// StopwordRatioGT applies the GT predicate on the "stopword_ratio" field.
func StopwordRatioGT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldStopwordRatio, v))
}

// StopwordRatioGTE applies the GTE predicate on the "stopword_ratio" field.
func StopwordRatioGTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldStopwordRatio, v))
}

// StopwordRatioLT applies the LT predicate on the "stopword_ratio" field.
func StopwordRatioLT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldStopwordRatio, v))
}

// StopwordRatioLTE applies the LTE predicate on the "stopword_ratio" field.
func StopwordRatioLTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldStopwordRatio, v))
}

// LowQualityEQ applies the EQ predicate on the "low_quality" field.
func LowQualityEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldLowQuality, v))
}

// LowQualityNEQ applies the NEQ predicate on the "low_quality" field.
func LowQualityNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldLowQuality, v))
}

// ExtrasIsNil applies the IsNil predicate on the "extras" field.
func ExtrasIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldExtras))
}

// ExtrasNotNil applies the NotNil predicate on the "extras" field.
func ExtrasNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldExtras))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.PathSession) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
