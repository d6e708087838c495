package store

import (
	"context"
	"fmt"

	"github.com/mkoehler/sprechzeit/ent"
	"github.com/mkoehler/sprechzeit/ent/text"
	"github.com/mkoehler/sprechzeit/internal/path"
)

// TextRepo persists materialized source texts. It implements path.TextRepo.
type TextRepo struct {
	client *ent.Client
}

// TextRecord is a text ready to persist.
type TextRecord struct {
	SourceType string
	Title      string
	SourceRef  string
	ChunkIndex int
	Content    string
}

// Create inserts a text and returns its id.
func (r *TextRepo) Create(ctx context.Context, rec TextRecord) (int, error) {
	row, err := r.client.Text.Create().
		SetSourceType(rec.SourceType).
		SetTitle(rec.Title).
		SetSourceRef(rec.SourceRef).
		SetChunkIndex(rec.ChunkIndex).
		SetContent(rec.Content).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save text: %w", err)
	}
	return row.ID, nil
}

// Get returns the text by id, or nil if absent.
func (r *TextRepo) Get(ctx context.Context, id int) (*path.Text, error) {
	row, err := r.client.Text.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query text %d: %w", id, err)
	}
	return &path.Text{ID: row.ID, Title: row.Title, Content: row.Content}, nil
}

// MaxChunkIndex returns the highest stored chunk index for a source, or
// -1 when the source has never been read. Book steps use this to resume
// where the learner left off.
func (r *TextRepo) MaxChunkIndex(ctx context.Context, sourceRef string) (int, error) {
	row, err := r.client.Text.Query().
		Where(text.SourceRef(sourceRef)).
		Order(ent.Desc(text.FieldChunkIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return -1, nil
		}
		return -1, fmt.Errorf("query chunks for %s: %w", sourceRef, err)
	}
	return row.ChunkIndex, nil
}
