// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mkoehler/sprechzeit/ent/attempt"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/pathstep"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
	"github.com/mkoehler/sprechzeit/ent/schema"
	"github.com/mkoehler/sprechzeit/ent/text"
	"github.com/mkoehler/sprechzeit/ent/vocab"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[1].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescMode is the schema descriptor for mode field.
	attemptDescMode := attemptFields[2].Descriptor()
	// attempt.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	attempt.ModeValidator = attemptDescMode.Validators[0].(func(string) error)
	// attemptDescWordCount is the schema descriptor for word_count field.
	attemptDescWordCount := attemptFields[8].Descriptor()
	// attempt.DefaultWordCount holds the default value on creation for the word_count field.
	attempt.DefaultWordCount = attemptDescWordCount.Default.(int)
	// attemptDescUniqueWords is the schema descriptor for unique_words field.
	attemptDescUniqueWords := attemptFields[9].Descriptor()
	// attempt.DefaultUniqueWords holds the default value on creation for the unique_words field.
	attempt.DefaultUniqueWords = attemptDescUniqueWords.Default.(int)
	// attemptDescUniqueRatio is the schema descriptor for unique_ratio field.
	attemptDescUniqueRatio := attemptFields[10].Descriptor()
	// attempt.DefaultUniqueRatio holds the default value on creation for the unique_ratio field.
	attempt.DefaultUniqueRatio = attemptDescUniqueRatio.Default.(float64)
	// attemptDescAvgWordLen is the schema descriptor for avg_word_len field.
	attemptDescAvgWordLen := attemptFields[11].Descriptor()
	// attempt.DefaultAvgWordLen holds the default value on creation for the avg_word_len field.
	attempt.DefaultAvgWordLen = attemptDescAvgWordLen.Default.(float64)
	// attemptDescFillerCount is the schema descriptor for filler_count field.
	attemptDescFillerCount := attemptFields[12].Descriptor()
	// attempt.DefaultFillerCount holds the default value on creation for the filler_count field.
	attempt.DefaultFillerCount = attemptDescFillerCount.Default.(int)
	// attemptDescAsrEmpty is the schema descriptor for asr_empty field.
	attemptDescAsrEmpty := attemptFields[13].Descriptor()
	// attempt.DefaultAsrEmpty holds the default value on creation for the asr_empty field.
	attempt.DefaultAsrEmpty = attemptDescAsrEmpty.Default.(bool)
	// attemptDescRetellEmpty is the schema descriptor for retell_empty field.
	attemptDescRetellEmpty := attemptFields[14].Descriptor()
	// attempt.DefaultRetellEmpty holds the default value on creation for the retell_empty field.
	attempt.DefaultRetellEmpty = attemptDescRetellEmpty.Default.(bool)
	// attemptDescTooShort is the schema descriptor for too_short field.
	attemptDescTooShort := attemptFields[15].Descriptor()
	// attempt.DefaultTooShort holds the default value on creation for the too_short field.
	attempt.DefaultTooShort = attemptDescTooShort.Default.(bool)
	// attemptDescSuspectedSilence is the schema descriptor for suspected_silence field.
	attemptDescSuspectedSilence := attemptFields[16].Descriptor()
	// attempt.DefaultSuspectedSilence holds the default value on creation for the suspected_silence field.
	attempt.DefaultSuspectedSilence = attemptDescSuspectedSilence.Default.(bool)
	// attemptDescHallucinationHit is the schema descriptor for hallucination_hit field.
	attemptDescHallucinationHit := attemptFields[17].Descriptor()
	// attempt.DefaultHallucinationHit holds the default value on creation for the hallucination_hit field.
	attempt.DefaultHallucinationHit = attemptDescHallucinationHit.Default.(bool)
	// attemptDescStopwordRatio is the schema descriptor for stopword_ratio field.
	attemptDescStopwordRatio := attemptFields[18].Descriptor()
	// attempt.DefaultStopwordRatio holds the default value on creation for the stopword_ratio field.
	attempt.DefaultStopwordRatio = attemptDescStopwordRatio.Default.(float64)
	// attemptDescLowQuality is the schema descriptor for low_quality field.
	attemptDescLowQuality := attemptFields[19].Descriptor()
	// attempt.DefaultLowQuality holds the default value on creation for the low_quality field.
	attempt.DefaultLowQuality = attemptDescLowQuality.Default.(bool)
	pathrunFields := schema.PathRun{}.Fields()
	_ = pathrunFields
	// pathrunDescStartedAt is the schema descriptor for started_at field.
	pathrunDescStartedAt := pathrunFields[2].Descriptor()
	// pathrun.DefaultStartedAt holds the default value on creation for the started_at field.
	pathrun.DefaultStartedAt = pathrunDescStartedAt.Default.(func() time.Time)
	pathsessionFields := schema.PathSession{}.Fields()
	_ = pathsessionFields
	// pathsessionDescStepOrder is the schema descriptor for step_order field.
	pathsessionDescStepOrder := pathsessionFields[0].Descriptor()
	// pathsession.StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	pathsession.StepOrderValidator = pathsessionDescStepOrder.Validators[0].(func(int) error)
	// pathsessionDescStepType is the schema descriptor for step_type field.
	pathsessionDescStepType := pathsessionFields[1].Descriptor()
	// pathsession.StepTypeValidator is a validator for the "step_type" field. It is called by the builders before save.
	pathsession.StepTypeValidator = pathsessionDescStepType.Validators[0].(func(string) error)
	// pathsessionDescStartedAt is the schema descriptor for started_at field.
	pathsessionDescStartedAt := pathsessionFields[4].Descriptor()
	// pathsession.DefaultStartedAt holds the default value on creation for the started_at field.
	pathsession.DefaultStartedAt = pathsessionDescStartedAt.Default.(func() time.Time)
	pathstepFields := schema.PathStep{}.Fields()
	_ = pathstepFields
	// pathstepDescStepOrder is the schema descriptor for step_order field.
	pathstepDescStepOrder := pathstepFields[0].Descriptor()
	// pathstep.StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	pathstep.StepOrderValidator = pathstepDescStepOrder.Validators[0].(func(int) error)
	// pathstepDescStepType is the schema descriptor for step_type field.
	pathstepDescStepType := pathstepFields[1].Descriptor()
	// pathstep.StepTypeValidator is a validator for the "step_type" field. It is called by the builders before save.
	pathstep.StepTypeValidator = pathstepDescStepType.Validators[0].(func(string) error)
	pathtemplateFields := schema.PathTemplate{}.Fields()
	_ = pathtemplateFields
	// pathtemplateDescName is the schema descriptor for name field.
	pathtemplateDescName := pathtemplateFields[0].Descriptor()
	// pathtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pathtemplate.NameValidator = pathtemplateDescName.Validators[0].(func(string) error)
	// pathtemplateDescLevel is the schema descriptor for level field.
	pathtemplateDescLevel := pathtemplateFields[1].Descriptor()
	// pathtemplate.DefaultLevel holds the default value on creation for the level field.
	pathtemplate.DefaultLevel = pathtemplateDescLevel.Default.(string)
	// pathtemplateDescIsActive is the schema descriptor for is_active field.
	pathtemplateDescIsActive := pathtemplateFields[3].Descriptor()
	// pathtemplate.DefaultIsActive holds the default value on creation for the is_active field.
	pathtemplate.DefaultIsActive = pathtemplateDescIsActive.Default.(bool)
	// pathtemplateDescCreatedAt is the schema descriptor for created_at field.
	pathtemplateDescCreatedAt := pathtemplateFields[4].Descriptor()
	// pathtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	pathtemplate.DefaultCreatedAt = pathtemplateDescCreatedAt.Default.(func() time.Time)
	textFields := schema.Text{}.Fields()
	_ = textFields
	// textDescSourceType is the schema descriptor for source_type field.
	textDescSourceType := textFields[0].Descriptor()
	// text.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	text.SourceTypeValidator = textDescSourceType.Validators[0].(func(string) error)
	// textDescChunkIndex is the schema descriptor for chunk_index field.
	textDescChunkIndex := textFields[3].Descriptor()
	// text.DefaultChunkIndex holds the default value on creation for the chunk_index field.
	text.DefaultChunkIndex = textDescChunkIndex.Default.(int)
	// text.ChunkIndexValidator is a validator for the "chunk_index" field. It is called by the builders before save.
	text.ChunkIndexValidator = textDescChunkIndex.Validators[0].(func(int) error)
	// textDescContent is the schema descriptor for content field.
	textDescContent := textFields[4].Descriptor()
	// text.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	text.ContentValidator = textDescContent.Validators[0].(func(string) error)
	// textDescCreatedAt is the schema descriptor for created_at field.
	textDescCreatedAt := textFields[5].Descriptor()
	// text.DefaultCreatedAt holds the default value on creation for the created_at field.
	text.DefaultCreatedAt = textDescCreatedAt.Default.(func() time.Time)
	vocabFields := schema.Vocab{}.Fields()
	_ = vocabFields
	// vocabDescTerm is the schema descriptor for term field.
	vocabDescTerm := vocabFields[0].Descriptor()
	// vocab.TermValidator is a validator for the "term" field. It is called by the builders before save.
	vocab.TermValidator = vocabDescTerm.Validators[0].(func(string) error)
	// vocabDescLang is the schema descriptor for lang field.
	vocabDescLang := vocabFields[1].Descriptor()
	// vocab.DefaultLang holds the default value on creation for the lang field.
	vocab.DefaultLang = vocabDescLang.Default.(string)
	// vocabDescPracticeCount is the schema descriptor for practice_count field.
	vocabDescPracticeCount := vocabFields[5].Descriptor()
	// vocab.DefaultPracticeCount holds the default value on creation for the practice_count field.
	vocab.DefaultPracticeCount = vocabDescPracticeCount.Default.(int)
	// vocab.PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	vocab.PracticeCountValidator = vocabDescPracticeCount.Validators[0].(func(int) error)
	// vocabDescCreatedAt is the schema descriptor for created_at field.
	vocabDescCreatedAt := vocabFields[7].Descriptor()
	// vocab.DefaultCreatedAt holds the default value on creation for the created_at field.
	vocab.DefaultCreatedAt = vocabDescCreatedAt.Default.(func() time.Time)
}
