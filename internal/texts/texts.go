// Package texts materializes external reading material for path steps.
// News sources are read whole; book sources are split into word-bounded
// chunks so reading progress survives across runs.
package texts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkoehler/sprechzeit/internal/path"
	"github.com/mkoehler/sprechzeit/internal/store"
)

// DefaultChunkWords is the target chunk length for book sources.
const DefaultChunkWords = 220

// Store is the slice of the text repository the materializer needs.
type Store interface {
	Create(ctx context.Context, rec store.TextRecord) (int, error)
	MaxChunkIndex(ctx context.Context, sourceRef string) (int, error)
}

// Materializer loads step content from disk and persists it as text rows.
// It implements path.TextMaterializer.
type Materializer struct {
	store      Store
	chunkWords int
}

// NewMaterializer creates a Materializer. chunkWords <= 0 selects the
// default chunk length.
func NewMaterializer(s Store, chunkWords int) *Materializer {
	if chunkWords <= 0 {
		chunkWords = DefaultChunkWords
	}
	return &Materializer{store: s, chunkWords: chunkWords}
}

// Materialize resolves the step's source file and stores the content the
// learner should see: the whole file for news, the next unread chunk for
// books. A missing or empty backing file is an ExternalResourceError.
func (m *Materializer) Materialize(ctx context.Context, step path.Step) (int, error) {
	source := step.ConfigString("source")
	if source == "" {
		return 0, &path.ValidationError{Field: "step config", Reason: fmt.Sprintf("%s step has no source", step.Type)}
	}

	content, err := readSource(source)
	if err != nil {
		return 0, err
	}

	switch step.Type {
	case path.StepNews:
		return m.store.Create(ctx, store.TextRecord{
			SourceType: path.StepNews,
			Title:      titleFor(source),
			SourceRef:  source,
			Content:    content,
		})
	case path.StepBook:
		return m.materializeChunk(ctx, source, content)
	default:
		return 0, &path.ValidationError{Field: "step type", Reason: fmt.Sprintf("%q has no text content", step.Type)}
	}
}

// materializeChunk stores the next unread chunk of a book source. Once
// the book is finished the last chunk repeats.
func (m *Materializer) materializeChunk(ctx context.Context, source, content string) (int, error) {
	chunks := Chunk(content, m.chunkWords)
	if len(chunks) == 0 {
		return 0, &path.ExternalResourceError{Resource: source}
	}

	last, err := m.store.MaxChunkIndex(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("resolve reading progress: %w", err)
	}
	next := last + 1
	if next >= len(chunks) {
		next = len(chunks) - 1
	}

	return m.store.Create(ctx, store.TextRecord{
		SourceType: path.StepBook,
		Title:      fmt.Sprintf("%s, Abschnitt %d", titleFor(source), next+1),
		SourceRef:  source,
		ChunkIndex: next,
		Content:    chunks[next],
	})
}

// readSource reads the backing file. Absence and emptiness are both
// ExternalResourceErrors naming the file.
func readSource(source string) (string, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return "", &path.ExternalResourceError{Resource: source, Err: err}
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", &path.ExternalResourceError{Resource: source}
	}
	return content, nil
}

// Chunk splits content into pieces of at most chunkWords whitespace
// separated words, preserving word boundaries.
func Chunk(content string, chunkWords int) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return nil
	}
	if chunkWords <= 0 {
		chunkWords = DefaultChunkWords
	}

	var chunks []string
	for start := 0; start < len(words); start += chunkWords {
		end := start + chunkWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}

func titleFor(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
