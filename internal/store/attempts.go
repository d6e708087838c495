package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkoehler/sprechzeit/ent"
	"github.com/mkoehler/sprechzeit/ent/attempt"
	entschema "github.com/mkoehler/sprechzeit/ent/schema"
	"github.com/mkoehler/sprechzeit/internal/quality"
	"github.com/mkoehler/sprechzeit/internal/textstats"
)

// AttemptRecord is one practice utterance ready to persist. Optional
// fields are pointers; nil means absent, never a zero value pretending to
// be data.
type AttemptRecord struct {
	AttemptID       string
	Mode            string
	Topic           string
	SourceText      *string
	Transcript      string
	DurationSeconds *float64
	WPM             *float64
	Stats           textstats.Stats
	Diagnosis       quality.Diagnosis
	Extras          *entschema.AttemptExtras
	SessionID       *int
}

// AttemptSummary is the slice of an attempt row the report layer needs.
type AttemptSummary struct {
	CreatedAt   time.Time
	Mode        string
	WordCount   int
	UniqueRatio float64
	WPM         *float64
	LowQuality  *bool
	ASREmpty    *bool
	Q3HasCausal *bool
}

// AttemptRepo provides append and read access to the attempts table.
// Rows are append-only; nothing updates or deletes them.
type AttemptRepo struct {
	client *ent.Client
}

// Insert persists one attempt.
func (r *AttemptRepo) Insert(ctx context.Context, rec AttemptRecord) error {
	builder := r.client.Attempt.Create().
		SetAttemptID(rec.AttemptID).
		SetMode(rec.Mode).
		SetTopic(rec.Topic).
		SetTranscript(rec.Transcript).
		SetWordCount(rec.Stats.WordCount).
		SetUniqueWords(rec.Stats.UniqueWords).
		SetUniqueRatio(rec.Stats.UniqueRatio).
		SetAvgWordLen(rec.Stats.AvgWordLen).
		SetFillerCount(rec.Stats.FillerCount).
		SetAsrEmpty(rec.Diagnosis.ASREmpty).
		SetRetellEmpty(rec.Diagnosis.RetellEmpty).
		SetTooShort(rec.Diagnosis.TooShort).
		SetSuspectedSilence(rec.Diagnosis.SuspectedSilence).
		SetHallucinationHit(rec.Diagnosis.HallucinationHit).
		SetStopwordRatio(rec.Diagnosis.StopwordRatio).
		SetLowQuality(rec.Diagnosis.LowQuality)

	if rec.SourceText != nil {
		builder = builder.SetSourceText(*rec.SourceText)
	}
	if rec.DurationSeconds != nil {
		builder = builder.SetDurationSeconds(*rec.DurationSeconds)
	}
	if rec.WPM != nil {
		builder = builder.SetWpm(*rec.WPM)
	}
	if rec.Extras != nil {
		builder = builder.SetExtras(rec.Extras)
	}
	if rec.SessionID != nil {
		builder = builder.SetSessionID(*rec.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

// ListSummaries returns attempt summaries in chronological order, oldest
// first. mode filters to one mode when non-empty; lastN keeps only the N
// most recent rows (0 = all).
func (r *AttemptRepo) ListSummaries(ctx context.Context, mode string, lastN int) ([]AttemptSummary, error) {
	q := r.client.Attempt.Query().
		Order(ent.Desc(attempt.FieldCreatedAt), ent.Desc(attempt.FieldID))
	if mode != "" {
		q = q.Where(attempt.Mode(mode))
	}
	if lastN > 0 {
		q = q.Limit(lastN)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	// Rows arrive newest-first; reverse to chronological order.
	out := make([]AttemptSummary, len(rows))
	for i, row := range rows {
		lq := row.LowQuality
		ae := row.AsrEmpty
		s := AttemptSummary{
			CreatedAt:   row.CreatedAt,
			Mode:        row.Mode,
			WordCount:   row.WordCount,
			UniqueRatio: row.UniqueRatio,
			WPM:         row.Wpm,
			LowQuality:  &lq,
			ASREmpty:    &ae,
		}
		if row.Extras != nil {
			s.Q3HasCausal = row.Extras.Q3HasCausal
		}
		out[len(rows)-1-i] = s
	}
	return out, nil
}

// Count returns the total number of stored attempts.
func (r *AttemptRepo) Count(ctx context.Context) (int, error) {
	return r.client.Attempt.Query().Count(ctx)
}
