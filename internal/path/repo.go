package path

import (
	"context"
	"time"
)

// TemplateRepo provides read access to authored templates.
type TemplateRepo interface {
	// ActiveByName returns the active template with the given name,
	// including its steps in order, or nil if none matches.
	ActiveByName(ctx context.Context, name string) (*Template, error)
}

// RunRepo manages run rows.
type RunRepo interface {
	// CreateRun inserts a new active run for the template.
	CreateRun(ctx context.Context, templateID int, runID string, startedAt time.Time) (*Run, error)

	// LatestActive returns the most recently started active run for the
	// template, or nil if none exists.
	LatestActive(ctx context.Context, templateID int) (*Run, error)

	// CompleteRun marks the run completed and records the time.
	CompleteRun(ctx context.Context, id int, at time.Time) error
}

// SessionRepo manages session rows. OpenExclusive is the only way a new
// session is created, so the at-most-one-open invariant holds as long as
// its check-then-insert is atomic.
type SessionRepo interface {
	// OpenExclusive creates an open session for the run after verifying,
	// inside a single transaction, that the run has no other open session.
	// It returns a *ConflictError when one exists.
	OpenExclusive(ctx context.Context, runID int, step Step, textID *int, contentRef string, at time.Time) (*Session, error)

	// Get returns the session by id, or nil if absent.
	Get(ctx context.Context, id int) (*Session, error)

	// OpenByRun returns the run's open session, or nil. When historical
	// duplicates exist the most recently started one wins.
	OpenByRun(ctx context.Context, runID int) (*Session, error)

	// MaxCompletedOrder returns the highest step_order among the run's
	// completed sessions, or 0 if none are completed.
	MaxCompletedOrder(ctx context.Context, runID int) (int, error)

	// ByRunAndOrder returns the session with the given step order in the
	// run, or nil. Most recently started wins on duplicates.
	ByRunAndOrder(ctx context.Context, runID, order int) (*Session, error)

	// CompleteSession marks the session completed. Completing an already
	// completed session is a no-op.
	CompleteSession(ctx context.Context, id int, at time.Time) error

	// ForceCompleteOpenByTemplate closes every open session belonging to
	// any run of the template and returns how many it closed.
	ForceCompleteOpenByTemplate(ctx context.Context, templateID int, at time.Time) (int, error)
}

// VocabRepo manages learned words and their session links.
type VocabRepo interface {
	// EnsureTerms upserts the given terms and returns their rows.
	EnsureTerms(ctx context.Context, terms []string) ([]VocabWord, error)

	// LinkToSession associates the words with the session.
	LinkToSession(ctx context.Context, sessionID int, vocabIDs []int) error

	// BySession returns the words linked to one session.
	BySession(ctx context.Context, sessionID int) ([]VocabWord, error)

	// ByRun returns all words linked to any session of the run.
	ByRun(ctx context.Context, runID int) ([]VocabWord, error)

	// RecordPractice increments the word's practice counter.
	RecordPractice(ctx context.Context, vocabID int, at time.Time) error
}

// TextRepo provides read access to materialized texts.
type TextRepo interface {
	// Get returns the text by id, or nil if absent.
	Get(ctx context.Context, id int) (*Text, error)
}

// TextMaterializer loads external text content for a news or book step and
// persists it as a Text row, returning its id.
type TextMaterializer interface {
	Materialize(ctx context.Context, step Step) (textID int, err error)
}

// WordSuggester proposes candidate vocabulary words for a text. It is
// non-deterministic and may be backed by an LLM or a heuristic.
type WordSuggester interface {
	SuggestCandidateWords(ctx context.Context, text string) ([]string, error)
}

// Selection is the learner's response to a candidate word list.
type Selection struct {
	Words      []string
	Regenerate bool
	Aborted    bool
}

// WordSelector presents candidate words and collects the learner's choice.
type WordSelector interface {
	SelectWords(ctx context.Context, text *Text, candidates []string) (Selection, error)
}

// VocabWalker walks the learner through one word interactively.
type VocabWalker interface {
	WalkWord(ctx context.Context, word VocabWord) error
}
