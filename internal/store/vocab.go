package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkoehler/sprechzeit/ent"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/vocab"
	"github.com/mkoehler/sprechzeit/internal/path"
)

// VocabRepo persists learned words and their session links. It implements
// path.VocabRepo.
type VocabRepo struct {
	client *ent.Client
}

// EnsureTerms upserts the given terms and returns their rows in input
// order. Existing rows are reused; terms are unique.
func (r *VocabRepo) EnsureTerms(ctx context.Context, terms []string) ([]path.VocabWord, error) {
	out := make([]path.VocabWord, 0, len(terms))
	for _, term := range terms {
		row, err := r.client.Vocab.Query().
			Where(vocab.Term(term)).
			First(ctx)
		if ent.IsNotFound(err) {
			row, err = r.client.Vocab.Create().SetTerm(term).Save(ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("ensure term %q: %w", term, err)
		}
		out = append(out, toVocabWord(row))
	}
	return out, nil
}

// LinkToSession associates the words with the session.
func (r *VocabRepo) LinkToSession(ctx context.Context, sessionID int, vocabIDs []int) error {
	if len(vocabIDs) == 0 {
		return nil
	}
	_, err := r.client.PathSession.UpdateOneID(sessionID).
		AddVocabIDs(vocabIDs...).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("link vocab to session %d: %w", sessionID, err)
	}
	return nil
}

// BySession returns the words linked to one session.
func (r *VocabRepo) BySession(ctx context.Context, sessionID int) ([]path.VocabWord, error) {
	rows, err := r.client.Vocab.Query().
		Where(vocab.HasSessionsWith(pathsession.ID(sessionID))).
		Order(ent.Asc(vocab.FieldTerm)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session vocab: %w", err)
	}
	return toVocabWords(rows), nil
}

// ByRun returns all words linked to any session of the run.
func (r *VocabRepo) ByRun(ctx context.Context, runID int) ([]path.VocabWord, error) {
	rows, err := r.client.Vocab.Query().
		Where(vocab.HasSessionsWith(pathsession.HasRunWith(pathrun.ID(runID)))).
		Order(ent.Asc(vocab.FieldTerm)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query run vocab: %w", err)
	}
	return toVocabWords(rows), nil
}

// RecordPractice increments the word's practice counter and stamps the
// practice time.
func (r *VocabRepo) RecordPractice(ctx context.Context, vocabID int, at time.Time) error {
	_, err := r.client.Vocab.UpdateOneID(vocabID).
		AddPracticeCount(1).
		SetLastPracticedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record practice for vocab %d: %w", vocabID, err)
	}
	return nil
}

// SetDefinition stores a word's definition and example sentences.
func (r *VocabRepo) SetDefinition(ctx context.Context, vocabID int, definition string, examples []string) error {
	builder := r.client.Vocab.UpdateOneID(vocabID).
		SetDefinition(definition)
	if len(examples) > 0 {
		builder = builder.SetExamples(examples)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("set definition for vocab %d: %w", vocabID, err)
	}
	return nil
}

// ListAll returns every learned word ordered by term.
func (r *VocabRepo) ListAll(ctx context.Context) ([]path.VocabWord, error) {
	rows, err := r.client.Vocab.Query().
		Order(ent.Asc(vocab.FieldTerm)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query vocab: %w", err)
	}
	return toVocabWords(rows), nil
}

// VocabEntry is one learned word with its practice bookkeeping.
type VocabEntry struct {
	Word            path.VocabWord
	PracticeCount   int
	LastPracticedAt *time.Time
}

// ListEntries returns every learned word with practice counters, ordered
// by term.
func (r *VocabRepo) ListEntries(ctx context.Context) ([]VocabEntry, error) {
	rows, err := r.client.Vocab.Query().
		Order(ent.Asc(vocab.FieldTerm)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query vocab: %w", err)
	}
	out := make([]VocabEntry, len(rows))
	for i, row := range rows {
		out[i] = VocabEntry{
			Word:            toVocabWord(row),
			PracticeCount:   row.PracticeCount,
			LastPracticedAt: row.LastPracticedAt,
		}
	}
	return out, nil
}

func toVocabWord(row *ent.Vocab) path.VocabWord {
	return path.VocabWord{
		ID:         row.ID,
		Term:       row.Term,
		Definition: row.Definition,
		Examples:   row.Examples,
	}
}

func toVocabWords(rows []*ent.Vocab) []path.VocabWord {
	out := make([]path.VocabWord, len(rows))
	for i, row := range rows {
		out[i] = toVocabWord(row)
	}
	return out
}
