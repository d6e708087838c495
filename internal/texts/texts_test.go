package texts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkoehler/sprechzeit/internal/path"
	"github.com/mkoehler/sprechzeit/internal/store"
)

type memTextStore struct {
	records []store.TextRecord
}

func (m *memTextStore) Create(_ context.Context, rec store.TextRecord) (int, error) {
	m.records = append(m.records, rec)
	return len(m.records), nil
}

func (m *memTextStore) MaxChunkIndex(_ context.Context, sourceRef string) (int, error) {
	max := -1
	for _, r := range m.records {
		if r.SourceRef == sourceRef && r.ChunkIndex > max {
			max = r.ChunkIndex
		}
	}
	return max, nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestChunk(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = "wort"
	}
	content := strings.Join(words, " ")

	chunks := Chunk(content, 10)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if n := len(strings.Fields(chunks[0])); n != 10 {
		t.Errorf("chunk 0 has %d words, want 10", n)
	}
	if n := len(strings.Fields(chunks[2])); n != 5 {
		t.Errorf("chunk 2 has %d words, want 5", n)
	}

	if got := Chunk("", 10); got != nil {
		t.Errorf("empty content chunks = %v, want nil", got)
	}
}

func TestMaterializeNews(t *testing.T) {
	src := writeFile(t, "nachrichten.txt", "Die Regierung hat ein neues Gesetz beschlossen.")
	ms := &memTextStore{}
	m := NewMaterializer(ms, 0)

	id, err := m.Materialize(context.Background(), path.Step{
		Order: 1, Type: path.StepNews, Config: map[string]any{"source": src},
	})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	rec := ms.records[0]
	if rec.SourceType != path.StepNews || rec.Title != "nachrichten" {
		t.Errorf("record = %+v", rec)
	}
	if !strings.Contains(rec.Content, "Gesetz") {
		t.Errorf("content = %q", rec.Content)
	}
}

func TestMaterializeMissingFile(t *testing.T) {
	m := NewMaterializer(&memTextStore{}, 0)
	_, err := m.Materialize(context.Background(), path.Step{
		Order: 1, Type: path.StepNews, Config: map[string]any{"source": "/nonexistent/file.txt"},
	})
	var re *path.ExternalResourceError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want ExternalResourceError", err)
	}
	if re.Resource != "/nonexistent/file.txt" {
		t.Errorf("resource = %q, want file path", re.Resource)
	}
}

func TestMaterializeEmptyFile(t *testing.T) {
	src := writeFile(t, "leer.txt", "   \n\t ")
	m := NewMaterializer(&memTextStore{}, 0)
	_, err := m.Materialize(context.Background(), path.Step{
		Order: 1, Type: path.StepNews, Config: map[string]any{"source": src},
	})
	var re *path.ExternalResourceError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want ExternalResourceError for empty file", err)
	}
}

func TestMaterializeMissingSourceConfig(t *testing.T) {
	m := NewMaterializer(&memTextStore{}, 0)
	_, err := m.Materialize(context.Background(), path.Step{Order: 1, Type: path.StepNews})
	var ve *path.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}

func TestMaterializeBookAdvancesChunks(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = "wort"
	}
	src := writeFile(t, "buch.txt", strings.Join(words, " "))
	ms := &memTextStore{}
	m := NewMaterializer(ms, 5)
	ctx := context.Background()
	step := path.Step{Order: 1, Type: path.StepBook, Config: map[string]any{"source": src}}

	for i := 0; i < 2; i++ {
		if _, err := m.Materialize(ctx, step); err != nil {
			t.Fatalf("materialize %d: %v", i, err)
		}
	}
	if ms.records[0].ChunkIndex != 0 || ms.records[1].ChunkIndex != 1 {
		t.Errorf("chunk indexes = %d, %d, want 0, 1", ms.records[0].ChunkIndex, ms.records[1].ChunkIndex)
	}
	if !strings.Contains(ms.records[1].Title, "Abschnitt 2") {
		t.Errorf("title = %q, want Abschnitt 2", ms.records[1].Title)
	}

	// Book finished (3 chunks of 5/5/2 words): the last chunk repeats.
	for i := 0; i < 3; i++ {
		if _, err := m.Materialize(ctx, step); err != nil {
			t.Fatalf("materialize tail %d: %v", i, err)
		}
	}
	last := ms.records[len(ms.records)-1]
	if last.ChunkIndex != 2 {
		t.Errorf("final chunk index = %d, want 2 (clamped to last)", last.ChunkIndex)
	}
}
