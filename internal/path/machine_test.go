package path

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"
)

// memStore is an in-memory implementation of every repo interface, with
// the same atomicity guarantees a transaction would give a single caller.
type memStore struct {
	template *Template
	runs     []*Run
	sessions []*Session
	words    []VocabWord
	links    map[int][]int // session id -> vocab ids
	texts    map[int]*Text
	nextID   int
}

func newMemStore(tpl *Template) *memStore {
	return &memStore{
		template: tpl,
		links:    map[int][]int{},
		texts:    map[int]*Text{},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) ActiveByName(_ context.Context, name string) (*Template, error) {
	if s.template != nil && s.template.Name == name && s.template.Active {
		return s.template, nil
	}
	return nil, nil
}

func (s *memStore) CreateRun(_ context.Context, templateID int, runID string, startedAt time.Time) (*Run, error) {
	r := &Run{ID: s.id(), RunID: runID, TemplateID: templateID, Status: RunActive, StartedAt: startedAt}
	s.runs = append(s.runs, r)
	return r, nil
}

func (s *memStore) LatestActive(_ context.Context, templateID int) (*Run, error) {
	var latest *Run
	for _, r := range s.runs {
		if r.TemplateID != templateID || r.Status != RunActive {
			continue
		}
		if latest == nil || r.StartedAt.After(latest.StartedAt) {
			latest = r
		}
	}
	return latest, nil
}

func (s *memStore) CompleteRun(_ context.Context, id int, at time.Time) error {
	for _, r := range s.runs {
		if r.ID == id {
			r.Status = RunCompleted
			r.CompletedAt = &at
			return nil
		}
	}
	return fmt.Errorf("run %d not found", id)
}

func (s *memStore) OpenExclusive(_ context.Context, runID int, step Step, textID *int, contentRef string, at time.Time) (*Session, error) {
	for _, sess := range s.sessions {
		if sess.RunID == runID && sess.Status == SessionOpen {
			return nil, &ConflictError{Reason: fmt.Sprintf("run %d already has open session %d", runID, sess.ID)}
		}
	}
	var tplID int
	for _, r := range s.runs {
		if r.ID == runID {
			tplID = r.TemplateID
		}
	}
	sess := &Session{
		ID: s.id(), RunID: runID, TemplateID: tplID,
		StepOrder: step.Order, StepType: step.Type,
		ContentRef: contentRef, TextID: textID,
		Status: SessionOpen, StartedAt: at,
	}
	s.sessions = append(s.sessions, sess)
	return sess, nil
}

func (s *memStore) Get(_ context.Context, id int) (*Session, error) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return nil, nil
}

func (s *memStore) OpenByRun(_ context.Context, runID int) (*Session, error) {
	var open *Session
	for _, sess := range s.sessions {
		if sess.RunID == runID && sess.Status == SessionOpen {
			if open == nil || sess.StartedAt.After(open.StartedAt) {
				open = sess
			}
		}
	}
	return open, nil
}

func (s *memStore) MaxCompletedOrder(_ context.Context, runID int) (int, error) {
	max := 0
	for _, sess := range s.sessions {
		if sess.RunID == runID && sess.Status == SessionCompleted && sess.StepOrder > max {
			max = sess.StepOrder
		}
	}
	return max, nil
}

func (s *memStore) ByRunAndOrder(_ context.Context, runID, order int) (*Session, error) {
	var found *Session
	for _, sess := range s.sessions {
		if sess.RunID == runID && sess.StepOrder == order {
			if found == nil || sess.StartedAt.After(found.StartedAt) {
				found = sess
			}
		}
	}
	return found, nil
}

func (s *memStore) CompleteSession(_ context.Context, id int, at time.Time) error {
	for _, sess := range s.sessions {
		if sess.ID == id {
			if sess.Status != SessionCompleted {
				sess.Status = SessionCompleted
				sess.CompletedAt = &at
			}
			return nil
		}
	}
	return fmt.Errorf("session %d not found", id)
}

func (s *memStore) ForceCompleteOpenByTemplate(_ context.Context, templateID int, at time.Time) (int, error) {
	n := 0
	for _, sess := range s.sessions {
		if sess.TemplateID == templateID && sess.Status == SessionOpen {
			sess.Status = SessionCompleted
			sess.CompletedAt = &at
			n++
		}
	}
	return n, nil
}

func (s *memStore) EnsureTerms(_ context.Context, terms []string) ([]VocabWord, error) {
	out := make([]VocabWord, 0, len(terms))
	for _, t := range terms {
		found := false
		for _, w := range s.words {
			if w.Term == t {
				out = append(out, w)
				found = true
				break
			}
		}
		if !found {
			w := VocabWord{ID: s.id(), Term: t}
			s.words = append(s.words, w)
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *memStore) LinkToSession(_ context.Context, sessionID int, vocabIDs []int) error {
	s.links[sessionID] = append(s.links[sessionID], vocabIDs...)
	return nil
}

func (s *memStore) BySession(_ context.Context, sessionID int) ([]VocabWord, error) {
	var out []VocabWord
	for _, id := range s.links[sessionID] {
		for _, w := range s.words {
			if w.ID == id {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

func (s *memStore) ByRun(ctx context.Context, runID int) ([]VocabWord, error) {
	var out []VocabWord
	for _, sess := range s.sessions {
		if sess.RunID != runID {
			continue
		}
		ws, _ := s.BySession(ctx, sess.ID)
		out = append(out, ws...)
	}
	return out, nil
}

func (s *memStore) RecordPractice(_ context.Context, vocabID int, _ time.Time) error {
	for _, w := range s.words {
		if w.ID == vocabID {
			return nil
		}
	}
	return fmt.Errorf("vocab %d not found", vocabID)
}

// fakeMaterializer returns pre-seeded text ids per step type.
type fakeMaterializer struct {
	store *memStore
	texts map[string]string // step type -> content
	err   error
}

func (f *fakeMaterializer) Materialize(_ context.Context, step Step) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	content, ok := f.texts[step.Type]
	if !ok || content == "" {
		return 0, &ExternalResourceError{Resource: step.ConfigString("source")}
	}
	id := f.store.id()
	f.store.texts[id] = &Text{ID: id, Title: "Testtext", Content: content}
	return id, nil
}

type fakeTextRepo struct{ store *memStore }

func (f fakeTextRepo) Get(_ context.Context, id int) (*Text, error) {
	return f.store.texts[id], nil
}

type fakeSuggester struct {
	candidates [][]string
	call       int
	err        error
}

func (f *fakeSuggester) SuggestCandidateWords(context.Context, string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := f.candidates[f.call%len(f.candidates)]
	f.call++
	return c, nil
}

type fakeSelector struct {
	responses []Selection
	call      int
}

func (f *fakeSelector) SelectWords(context.Context, *Text, []string) (Selection, error) {
	r := f.responses[f.call%len(f.responses)]
	f.call++
	return r, nil
}

type fakeWalker struct {
	walked []string
	err    error
}

func (f *fakeWalker) WalkWord(_ context.Context, w VocabWord) error {
	if f.err != nil {
		return f.err
	}
	f.walked = append(f.walked, w.Term)
	return nil
}

func basicTemplate() *Template {
	return &Template{
		ID: 1, Name: "basic", Level: "easy", Active: true,
		Steps: []Step{
			{Order: 1, Type: StepNews, Config: map[string]any{"source": "news.txt"}},
			{Order: 2, Type: StepDefineVocab},
			{Order: 3, Type: StepReview},
		},
	}
}

type fixture struct {
	machine  *StateMachine
	store    *memStore
	selector *fakeSelector
	walker   *fakeWalker
}

func newFixture(t *testing.T, tpl *Template, sel *fakeSelector) *fixture {
	t.Helper()
	store := newMemStore(tpl)
	walker := &fakeWalker{}
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m := New(Deps{
		Templates:    store,
		Runs:         store,
		Sessions:     store,
		Vocab:        store,
		Texts:        fakeTextRepo{store},
		Materializer: &fakeMaterializer{store: store, texts: map[string]string{StepNews: "Die Regierung hat heute ein neues Gesetz beschlossen.", StepBook: "Es war einmal ein altes Haus am Rand der Stadt."}},
		Suggester:    &fakeSuggester{candidates: [][]string{{"Regierung", "Gesetz", "beschlossen"}}},
		Selector:     sel,
		Walker:       walker,
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
		NewID: func() string { return "run-0001" },
		Rand:  rand.New(rand.NewSource(7)),
	})
	return &fixture{machine: m, store: store, selector: sel, walker: walker}
}

func TestStartRunUnknownTemplate(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	_, _, err := f.machine.StartRun(context.Background(), "missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestStartRunEmptyName(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	_, _, err := f.machine.StartRun(context.Background(), "")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}

func TestStartRunOpensFirstStepWithText(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	run, sess, err := f.machine.StartRun(context.Background(), "basic")
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if run.Status != RunActive {
		t.Errorf("run status = %q, want active", run.Status)
	}
	if sess.StepOrder != 1 || sess.StepType != StepNews || sess.Status != SessionOpen {
		t.Errorf("session = %+v, want open news step 1", sess)
	}
	if sess.TextID == nil {
		t.Error("news session has no materialized text")
	}
}

func TestStartRunMissingSourceText(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	f.machine.materializer = &fakeMaterializer{store: f.store, texts: map[string]string{}}
	_, _, err := f.machine.StartRun(context.Background(), "basic")
	var re *ExternalResourceError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want ExternalResourceError", err)
	}
}

func TestStartRunForceClosesStaleOpenSession(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	ctx := context.Background()

	_, stale, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("first start: %v", err)
	}

	// Starting again must not hit the open-session conflict: the stale
	// session is closed first.
	_, sess2, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}

	got, _ := f.store.Get(ctx, stale.ID)
	if got.Status != SessionCompleted {
		t.Errorf("stale session status = %q, want completed", got.Status)
	}
	if sess2.Status != SessionOpen {
		t.Errorf("new session status = %q, want open", sess2.Status)
	}
}

func TestAdvanceRunNoActiveRun(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	_, _, err := f.machine.AdvanceRun(context.Background(), "basic")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestAdvanceRunConflictsOnOpenSession(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	ctx := context.Background()
	if _, _, err := f.machine.StartRun(ctx, "basic"); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, _, err := f.machine.AdvanceRun(ctx, "basic")
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConflictError", err)
	}
}

func TestCompleteSessionTwiceIsNoOp(t *testing.T) {
	f := newFixture(t, basicTemplate(), &fakeSelector{responses: []Selection{{}}})
	ctx := context.Background()
	_, sess, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := f.machine.CompleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	got, _ := f.store.Get(ctx, sess.ID)
	first := *got.CompletedAt

	if err := f.machine.CompleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	got, _ = f.store.Get(ctx, sess.ID)
	if !got.CompletedAt.Equal(first) {
		t.Errorf("completed_at moved from %v to %v on re-completion", first, got.CompletedAt)
	}
}

// Full round trip through a three-step template: news with word selection,
// define_vocab walking the selection, review picking one word at random.
func TestRunRoundTrip(t *testing.T) {
	sel := &fakeSelector{responses: []Selection{{Words: []string{"Regierung", "Gesetz"}}}}
	f := newFixture(t, basicTemplate(), sel)
	ctx := context.Background()

	run, sess1, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := f.machine.RunStep(ctx, sess1.ID); err != nil {
		t.Fatalf("run step 1: %v", err)
	}
	if got, _ := f.store.Get(ctx, sess1.ID); got.Status != SessionCompleted {
		t.Fatal("step 1 session not completed")
	}
	if words, _ := f.store.BySession(ctx, sess1.ID); len(words) != 2 {
		t.Fatalf("linked %d words, want 2", len(words))
	}

	sess2, done, err := f.machine.AdvanceRun(ctx, "basic")
	if err != nil || done {
		t.Fatalf("advance to step 2: sess=%v done=%v err=%v", sess2, done, err)
	}
	if sess2.StepOrder != 2 || sess2.StepType != StepDefineVocab {
		t.Fatalf("step 2 session = %+v", sess2)
	}
	if err := f.machine.RunStep(ctx, sess2.ID); err != nil {
		t.Fatalf("run step 2: %v", err)
	}
	if len(f.walker.walked) != 2 {
		t.Fatalf("walked %d words in define_vocab, want 2", len(f.walker.walked))
	}

	sess3, done, err := f.machine.AdvanceRun(ctx, "basic")
	if err != nil || done {
		t.Fatalf("advance to step 3: err=%v done=%v", err, done)
	}
	if sess3.StepType != StepReview {
		t.Fatalf("step 3 type = %q, want review", sess3.StepType)
	}
	if err := f.machine.RunStep(ctx, sess3.ID); err != nil {
		t.Fatalf("run step 3: %v", err)
	}
	if len(f.walker.walked) != 3 {
		t.Fatalf("review walked %d extra words, want exactly 1", len(f.walker.walked)-2)
	}

	// Template exhausted: the fourth advance completes the run and never
	// opens a fourth session.
	sess4, done, err := f.machine.AdvanceRun(ctx, "basic")
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if !done || sess4 != nil {
		t.Fatalf("final advance: sess=%v done=%v, want run completed", sess4, done)
	}
	if run2, _ := f.store.LatestActive(ctx, run.TemplateID); run2 != nil {
		t.Error("run still active after completion")
	}
	if len(f.store.sessions) != 3 {
		t.Errorf("created %d sessions, want 3", len(f.store.sessions))
	}
}

func TestAtMostOneOpenSessionInvariant(t *testing.T) {
	sel := &fakeSelector{responses: []Selection{{Words: []string{"Regierung"}}}}
	f := newFixture(t, basicTemplate(), sel)
	ctx := context.Background()

	_, sess1, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := f.machine.RunStep(ctx, sess1.ID); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if _, _, err := f.machine.AdvanceRun(ctx, "basic"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	open := 0
	for _, s := range f.store.sessions {
		if s.Status == SessionOpen {
			open++
		}
	}
	if open != 1 {
		t.Errorf("open sessions = %d, want 1", open)
	}
}

func TestTextStepAbortLeavesSessionOpen(t *testing.T) {
	sel := &fakeSelector{responses: []Selection{{Aborted: true}}}
	f := newFixture(t, basicTemplate(), sel)
	ctx := context.Background()

	_, sess, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := f.machine.RunStep(ctx, sess.ID); err != nil {
		t.Fatalf("aborted run step: %v", err)
	}
	if got, _ := f.store.Get(ctx, sess.ID); got.Status != SessionOpen {
		t.Errorf("session status = %q, want open after abort", got.Status)
	}
}

func TestTextStepRegenerateAsksAgain(t *testing.T) {
	sel := &fakeSelector{responses: []Selection{
		{Regenerate: true},
		{Words: []string{"Gesetz"}},
	}}
	f := newFixture(t, basicTemplate(), sel)
	ctx := context.Background()

	_, sess, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := f.machine.RunStep(ctx, sess.ID); err != nil {
		t.Fatalf("run step: %v", err)
	}
	if sel.call != 2 {
		t.Errorf("selector called %d times, want 2", sel.call)
	}
	if words, _ := f.store.BySession(ctx, sess.ID); len(words) != 1 {
		t.Errorf("linked %d words, want 1", len(words))
	}
}

func TestDefineVocabWithoutPriorSelection(t *testing.T) {
	tpl := &Template{
		ID: 1, Name: "basic", Active: true,
		Steps: []Step{
			{Order: 1, Type: StepNews, Config: map[string]any{"source": "news.txt"}},
			{Order: 2, Type: StepDefineVocab},
		},
	}
	// Learner selects no words in step 1.
	sel := &fakeSelector{responses: []Selection{{Words: nil}}}
	f := newFixture(t, tpl, sel)
	ctx := context.Background()

	_, sess1, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := f.machine.RunStep(ctx, sess1.ID); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	sess2, _, err := f.machine.AdvanceRun(ctx, "basic")
	if err != nil {
		t.Fatalf("advance: %v", err)
	}

	err = f.machine.RunStep(ctx, sess2.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError for empty selection", err)
	}
}

func TestRunStepOnCompletedSession(t *testing.T) {
	sel := &fakeSelector{responses: []Selection{{Words: []string{"Regierung"}}}}
	f := newFixture(t, basicTemplate(), sel)
	ctx := context.Background()

	_, sess, err := f.machine.StartRun(ctx, "basic")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := f.machine.RunStep(ctx, sess.ID); err != nil {
		t.Fatalf("run step: %v", err)
	}

	err = f.machine.RunStep(ctx, sess.ID)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConflictError on completed session", err)
	}
}
