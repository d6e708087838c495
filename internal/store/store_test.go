package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mkoehler/sprechzeit/internal/path"
	"github.com/mkoehler/sprechzeit/internal/quality"
	"github.com/mkoehler/sprechzeit/internal/textstats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptInsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	transcript := "heute habe ich einen langen spaziergang durch die stadt gemacht und viele leute getroffen"
	stats := textstats.Compute(transcript)
	dur := 14.0
	diag := quality.Classify("retell", transcript, stats, dur, quality.Thresholds{})
	wpm := textstats.WordsPerMinute(stats.WordCount, dur)
	err := repo.Insert(ctx, AttemptRecord{
		AttemptID:       "a-1",
		Mode:            "retell",
		Topic:           "alltag",
		Transcript:      transcript,
		DurationSeconds: &dur,
		WPM:             &wpm,
		Stats:           stats,
		Diagnosis:       diag,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := repo.ListSummaries(ctx, "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	got := rows[0]
	if got.Mode != "retell" {
		t.Errorf("mode = %q, want retell", got.Mode)
	}
	if got.WordCount != stats.WordCount {
		t.Errorf("word count = %d, want %d", got.WordCount, stats.WordCount)
	}
	if got.WPM == nil || *got.WPM != wpm {
		t.Errorf("wpm = %v, want %f", got.WPM, wpm)
	}
	if got.LowQuality == nil || got.ASREmpty == nil {
		t.Error("flags should always be present on stored rows")
	}
}

func TestAttemptListOrderAndWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		stats := textstats.Stats{WordCount: 10 + i, UniqueWords: 8, UniqueRatio: 0.8, AvgWordLen: 5}
		err := repo.Insert(ctx, AttemptRecord{
			AttemptID:  fmt.Sprintf("a-%d", i),
			Mode:       "q1",
			Transcript: "antwort",
			Stats:      stats,
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	rows, err := repo.ListSummaries(ctx, "q1", 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (lastN window)", len(rows))
	}
	// Chronological order: oldest of the window first.
	if rows[0].WordCount != 12 || rows[2].WordCount != 14 {
		t.Errorf("window = [%d %d %d], want [12 13 14]",
			rows[0].WordCount, rows[1].WordCount, rows[2].WordCount)
	}
}

func TestAttemptListFiltersModeBeforeWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	// Two q1 attempts, then two retell attempts on top.
	for i, mode := range []string{"q1", "q1", "retell", "retell"} {
		stats := textstats.Stats{WordCount: 10 + i, UniqueWords: 8, UniqueRatio: 0.8, AvgWordLen: 5}
		err := repo.Insert(ctx, AttemptRecord{
			AttemptID:  fmt.Sprintf("m-%d", i),
			Mode:       mode,
			Transcript: "antwort",
			Stats:      stats,
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	// The last 2 of q1 are the two q1 rows, even though the two most
	// recent attempts overall are retell.
	rows, err := repo.ListSummaries(ctx, "q1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Mode != "q1" {
			t.Errorf("got mode %q, want q1", row.Mode)
		}
	}
}

func TestTemplateCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.Paths()
	ctx := context.Background()

	tpl, err := repo.CreateTemplate(ctx, path.Template{
		Name:  "basic",
		Level: "easy",
		Steps: []path.Step{
			{Order: 1, Type: path.StepNews, Config: map[string]any{"source": "news.txt"}},
			{Order: 2, Type: path.StepDefineVocab},
			{Order: 3, Type: path.StepReview},
		},
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	if len(tpl.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(tpl.Steps))
	}

	got, err := repo.ActiveByName(ctx, "basic")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil {
		t.Fatal("template not found")
	}
	if got.Steps[0].Order != 1 || got.Steps[2].Order != 3 {
		t.Errorf("steps out of order: %+v", got.Steps)
	}
	if got.Steps[0].ConfigString("source") != "news.txt" {
		t.Errorf("step config source = %q, want news.txt", got.Steps[0].ConfigString("source"))
	}

	missing, err := repo.ActiveByName(ctx, "unknown")
	if err != nil {
		t.Fatalf("lookup unknown: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown template")
	}
}

func TestTemplateCreateRejectsGap(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Paths().CreateTemplate(ctx, path.Template{
		Name: "broken",
		Steps: []path.Step{
			{Order: 1, Type: path.StepNews},
			{Order: 3, Type: path.StepReview},
		},
	})
	if err == nil {
		t.Fatal("expected validation error for non-contiguous steps")
	}
}

func TestOpenExclusiveEnforcesInvariant(t *testing.T) {
	s := openTestStore(t)
	repo := s.Paths()
	ctx := context.Background()
	now := time.Now()

	tpl, err := repo.CreateTemplate(ctx, path.Template{
		Name: "basic",
		Steps: []path.Step{
			{Order: 1, Type: path.StepDefineVocab},
			{Order: 2, Type: path.StepReview},
		},
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	run, err := repo.CreateRun(ctx, tpl.ID, "run-1", now)
	if err != nil {
		t.Fatalf("create run: %v", err)
	}

	sess, err := repo.OpenExclusive(ctx, run.ID, tpl.Steps[0], nil, "", now)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if sess.Status != path.SessionOpen {
		t.Errorf("status = %q, want open", sess.Status)
	}

	_, err = repo.OpenExclusive(ctx, run.ID, tpl.Steps[1], nil, "", now)
	if _, ok := err.(*path.ConflictError); !ok {
		t.Fatalf("second open: got %v, want ConflictError", err)
	}

	// After completion the next step can open.
	if err := repo.CompleteSession(ctx, sess.ID, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := repo.OpenExclusive(ctx, run.ID, tpl.Steps[1], nil, "", now.Add(time.Minute)); err != nil {
		t.Fatalf("open after complete: %v", err)
	}
}

func TestCompleteSessionKeepsFirstTimestamp(t *testing.T) {
	s := openTestStore(t)
	repo := s.Paths()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	tpl, err := repo.CreateTemplate(ctx, path.Template{
		Name:  "basic",
		Steps: []path.Step{{Order: 1, Type: path.StepReview}},
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	run, _ := repo.CreateRun(ctx, tpl.ID, "run-1", now)
	sess, err := repo.OpenExclusive(ctx, run.ID, tpl.Steps[0], nil, "", now)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := repo.CompleteSession(ctx, sess.ID, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := repo.CompleteSession(ctx, sess.ID, now.Add(time.Hour)); err != nil {
		t.Fatalf("re-complete: %v", err)
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want %v (first completion wins)", got.CompletedAt, now)
	}
}

func TestMaxCompletedOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.Paths()
	ctx := context.Background()
	now := time.Now()

	tpl, err := repo.CreateTemplate(ctx, path.Template{
		Name: "basic",
		Steps: []path.Step{
			{Order: 1, Type: path.StepDefineVocab},
			{Order: 2, Type: path.StepReview},
		},
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	run, _ := repo.CreateRun(ctx, tpl.ID, "run-1", now)

	got, err := repo.MaxCompletedOrder(ctx, run.ID)
	if err != nil {
		t.Fatalf("max order (empty): %v", err)
	}
	if got != 0 {
		t.Errorf("max order = %d, want 0 before any completion", got)
	}

	sess, _ := repo.OpenExclusive(ctx, run.ID, tpl.Steps[0], nil, "", now)
	repo.CompleteSession(ctx, sess.ID, now)

	got, err = repo.MaxCompletedOrder(ctx, run.ID)
	if err != nil {
		t.Fatalf("max order: %v", err)
	}
	if got != 1 {
		t.Errorf("max order = %d, want 1", got)
	}
}

func TestVocabEnsureAndLinks(t *testing.T) {
	s := openTestStore(t)
	paths := s.Paths()
	vocabs := s.Vocab()
	ctx := context.Background()
	now := time.Now()

	tpl, err := paths.CreateTemplate(ctx, path.Template{
		Name: "basic",
		Steps: []path.Step{
			{Order: 1, Type: path.StepDefineVocab},
			{Order: 2, Type: path.StepReview},
		},
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	run, _ := paths.CreateRun(ctx, tpl.ID, "run-1", now)
	sess1, _ := paths.OpenExclusive(ctx, run.ID, tpl.Steps[0], nil, "", now)

	words, err := vocabs.EnsureTerms(ctx, []string{"Regierung", "Gesetz"})
	if err != nil {
		t.Fatalf("ensure terms: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}

	// Re-ensuring must reuse the rows, not duplicate.
	again, err := vocabs.EnsureTerms(ctx, []string{"Regierung"})
	if err != nil {
		t.Fatalf("re-ensure: %v", err)
	}
	if again[0].ID != words[0].ID {
		t.Errorf("re-ensure created new row %d, want %d", again[0].ID, words[0].ID)
	}

	ids := []int{words[0].ID, words[1].ID}
	if err := vocabs.LinkToSession(ctx, sess1.ID, ids); err != nil {
		t.Fatalf("link: %v", err)
	}

	bySession, err := vocabs.BySession(ctx, sess1.ID)
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(bySession) != 2 {
		t.Errorf("session words = %d, want 2", len(bySession))
	}

	byRun, err := vocabs.ByRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("by run: %v", err)
	}
	if len(byRun) != 2 {
		t.Errorf("run words = %d, want 2", len(byRun))
	}

	if err := vocabs.RecordPractice(ctx, words[0].ID, now); err != nil {
		t.Fatalf("record practice: %v", err)
	}
}

func TestTextCreateGetAndChunks(t *testing.T) {
	s := openTestStore(t)
	repo := s.Texts()
	ctx := context.Background()

	idx, err := repo.MaxChunkIndex(ctx, "buch.txt")
	if err != nil {
		t.Fatalf("max chunk (empty): %v", err)
	}
	if idx != -1 {
		t.Errorf("max chunk = %d, want -1 for unread source", idx)
	}

	id, err := repo.Create(ctx, TextRecord{
		SourceType: "book",
		Title:      "Kapitel 1",
		SourceRef:  "buch.txt",
		ChunkIndex: 0,
		Content:    "Es war einmal ein altes Haus.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Content == "" {
		t.Fatal("stored text missing")
	}

	if _, err := repo.Create(ctx, TextRecord{
		SourceType: "book", SourceRef: "buch.txt", ChunkIndex: 1, Content: "Der zweite Abschnitt.",
	}); err != nil {
		t.Fatalf("create chunk 1: %v", err)
	}

	idx, err = repo.MaxChunkIndex(ctx, "buch.txt")
	if err != nil {
		t.Fatalf("max chunk: %v", err)
	}
	if idx != 1 {
		t.Errorf("max chunk = %d, want 1", idx)
	}
}
