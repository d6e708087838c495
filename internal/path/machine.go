package path

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// maxRegenerations bounds how often the learner may request a fresh
// candidate list before the step is abandoned.
const maxRegenerations = 5

// StateMachine drives learning-path runs: one run per template traversal,
// sessions created one at a time in step order, each completed by its step
// handler. All operations are synchronous; the only shared resource is the
// store behind the repos.
type StateMachine struct {
	templates    TemplateRepo
	runs         RunRepo
	sessions     SessionRepo
	vocab        VocabRepo
	texts        TextRepo
	materializer TextMaterializer
	suggester    WordSuggester
	selector     WordSelector
	walker       VocabWalker

	now   func() time.Time
	newID func() string
	rng   *rand.Rand
}

// Deps wires the machine's collaborators. Now, NewID and Rand default to
// time.Now, uuid.NewString and a time-seeded source when nil.
type Deps struct {
	Templates    TemplateRepo
	Runs         RunRepo
	Sessions     SessionRepo
	Vocab        VocabRepo
	Texts        TextRepo
	Materializer TextMaterializer
	Suggester    WordSuggester
	Selector     WordSelector
	Walker       VocabWalker

	Now   func() time.Time
	NewID func() string
	Rand  *rand.Rand
}

// New creates a StateMachine from its dependencies.
func New(deps Deps) *StateMachine {
	m := &StateMachine{
		templates:    deps.Templates,
		runs:         deps.Runs,
		sessions:     deps.Sessions,
		vocab:        deps.Vocab,
		texts:        deps.Texts,
		materializer: deps.Materializer,
		suggester:    deps.Suggester,
		selector:     deps.Selector,
		walker:       deps.Walker,
		now:          deps.Now,
		newID:        deps.NewID,
		rng:          deps.Rand,
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newID == nil {
		m.newID = uuid.NewString
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

// StartRun begins a new run of the named template and opens a session for
// its first step. Any session still open under the same template, from any
// earlier run, is force-completed first so abandoned runs cannot block a
// fresh start.
func (m *StateMachine) StartRun(ctx context.Context, templateName string) (*Run, *Session, error) {
	if templateName == "" {
		return nil, nil, &ValidationError{Field: "template name", Reason: "must not be empty"}
	}

	tpl, err := m.templates.ActiveByName(ctx, templateName)
	if err != nil {
		return nil, nil, fmt.Errorf("look up template: %w", err)
	}
	if tpl == nil {
		return nil, nil, &NotFoundError{Kind: "template", Key: templateName}
	}
	if err := ValidateSteps(tpl.Steps); err != nil {
		return nil, nil, err
	}

	now := m.now()
	if _, err := m.sessions.ForceCompleteOpenByTemplate(ctx, tpl.ID, now); err != nil {
		return nil, nil, fmt.Errorf("close stale sessions: %w", err)
	}

	run, err := m.runs.CreateRun(ctx, tpl.ID, m.newID(), now)
	if err != nil {
		return nil, nil, fmt.Errorf("create run: %w", err)
	}

	sess, err := m.openStep(ctx, run, tpl.Steps[0])
	if err != nil {
		return nil, nil, err
	}
	return run, sess, nil
}

// AdvanceRun opens a session for the next step of the template's most
// recent active run. When the step list is exhausted it marks the run
// completed and returns runCompleted=true with a nil session.
func (m *StateMachine) AdvanceRun(ctx context.Context, templateName string) (sess *Session, runCompleted bool, err error) {
	tpl, err := m.templates.ActiveByName(ctx, templateName)
	if err != nil {
		return nil, false, fmt.Errorf("look up template: %w", err)
	}
	if tpl == nil {
		return nil, false, &NotFoundError{Kind: "template", Key: templateName}
	}

	run, err := m.runs.LatestActive(ctx, tpl.ID)
	if err != nil {
		return nil, false, fmt.Errorf("look up active run: %w", err)
	}
	if run == nil {
		return nil, false, &NotFoundError{Kind: "active run for template", Key: templateName}
	}

	maxDone, err := m.sessions.MaxCompletedOrder(ctx, run.ID)
	if err != nil {
		return nil, false, fmt.Errorf("resolve progress: %w", err)
	}
	nextOrder := maxDone + 1

	var next *Step
	for i := range tpl.Steps {
		if tpl.Steps[i].Order == nextOrder {
			next = &tpl.Steps[i]
			break
		}
	}
	if next == nil {
		if err := m.runs.CompleteRun(ctx, run.ID, m.now()); err != nil {
			return nil, false, fmt.Errorf("complete run: %w", err)
		}
		return nil, true, nil
	}

	sess, err = m.openStep(ctx, run, *next)
	if err != nil {
		return nil, false, err
	}
	return sess, false, nil
}

// openStep materializes the step's text when needed and opens the session.
// The open-session check happens inside OpenExclusive's transaction.
func (m *StateMachine) openStep(ctx context.Context, run *Run, step Step) (*Session, error) {
	var textID *int
	if step.Type == StepNews || step.Type == StepBook {
		id, err := m.materializer.Materialize(ctx, step)
		if err != nil {
			return nil, err
		}
		textID = &id
	}

	sess, err := m.sessions.OpenExclusive(ctx, run.ID, step, textID, step.ConfigString("source"), m.now())
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// CompleteSession marks the session completed. Re-completing a completed
// session is a no-op so interrupted callers can retry safely.
func (m *StateMachine) CompleteSession(ctx context.Context, sessionID int) error {
	sess, err := m.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("look up session: %w", err)
	}
	if sess == nil {
		return &NotFoundError{Kind: "session", Key: fmt.Sprintf("%d", sessionID)}
	}
	if sess.Status == SessionCompleted {
		return nil
	}
	return m.sessions.CompleteSession(ctx, sessionID, m.now())
}

// RunStep executes the interaction for an open session and completes it.
// An abandoned interaction leaves the session open for a later retry.
func (m *StateMachine) RunStep(ctx context.Context, sessionID int) error {
	sess, err := m.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("look up session: %w", err)
	}
	if sess == nil {
		return &NotFoundError{Kind: "session", Key: fmt.Sprintf("%d", sessionID)}
	}
	if sess.Status != SessionOpen {
		return &ConflictError{Reason: fmt.Sprintf("session %d is already completed", sessionID)}
	}

	switch sess.StepType {
	case StepNews, StepBook:
		return m.runTextStep(ctx, sess)
	case StepDefineVocab:
		return m.runDefineVocabStep(ctx, sess)
	case StepReview:
		return m.runReviewStep(ctx, sess)
	default:
		return &ValidationError{Field: "step type", Reason: fmt.Sprintf("unknown type %q", sess.StepType)}
	}
}

// runTextStep presents the text, collects a vocabulary selection and links
// the chosen words to the session.
func (m *StateMachine) runTextStep(ctx context.Context, sess *Session) error {
	if sess.TextID == nil {
		return &NotFoundError{Kind: "text for session", Key: fmt.Sprintf("%d", sess.ID)}
	}
	text, err := m.texts.Get(ctx, *sess.TextID)
	if err != nil {
		return fmt.Errorf("load text: %w", err)
	}
	if text == nil || text.Content == "" {
		return &NotFoundError{Kind: "text", Key: fmt.Sprintf("%d", *sess.TextID)}
	}

	for round := 0; round <= maxRegenerations; round++ {
		candidates, err := m.suggester.SuggestCandidateWords(ctx, text.Content)
		if err != nil {
			return &ExternalResourceError{Resource: "word suggester", Err: err}
		}

		sel, err := m.selector.SelectWords(ctx, text, candidates)
		if err != nil {
			return fmt.Errorf("collect selection: %w", err)
		}
		if sel.Aborted {
			// Session stays open for a later retry.
			return nil
		}
		if sel.Regenerate {
			continue
		}

		words, err := m.vocab.EnsureTerms(ctx, sel.Words)
		if err != nil {
			return fmt.Errorf("store words: %w", err)
		}
		ids := make([]int, len(words))
		for i, w := range words {
			ids[i] = w.ID
		}
		if err := m.vocab.LinkToSession(ctx, sess.ID, ids); err != nil {
			return fmt.Errorf("link words: %w", err)
		}
		return m.CompleteSession(ctx, sess.ID)
	}
	return &ValidationError{Field: "selection", Reason: "regeneration limit reached"}
}

// runDefineVocabStep walks the learner through the words chosen in the
// immediately preceding step of the same run.
func (m *StateMachine) runDefineVocabStep(ctx context.Context, sess *Session) error {
	prior, err := m.sessions.ByRunAndOrder(ctx, sess.RunID, sess.StepOrder-1)
	if err != nil {
		return fmt.Errorf("look up prior session: %w", err)
	}
	if prior == nil {
		return &NotFoundError{Kind: "prior session in run", Key: fmt.Sprintf("%d", sess.RunID)}
	}

	words, err := m.vocab.BySession(ctx, prior.ID)
	if err != nil {
		return fmt.Errorf("load word selection: %w", err)
	}
	if len(words) == 0 {
		return &NotFoundError{Kind: "word selection for session", Key: fmt.Sprintf("%d", prior.ID)}
	}

	for _, w := range words {
		if err := m.walkWord(ctx, w); err != nil {
			return err
		}
	}
	return m.CompleteSession(ctx, sess.ID)
}

// runReviewStep picks one word uniformly at random from the whole run's
// selections and walks the learner through it.
func (m *StateMachine) runReviewStep(ctx context.Context, sess *Session) error {
	words, err := m.vocab.ByRun(ctx, sess.RunID)
	if err != nil {
		return fmt.Errorf("load run words: %w", err)
	}
	if len(words) == 0 {
		return &NotFoundError{Kind: "word selection for run", Key: fmt.Sprintf("%d", sess.RunID)}
	}

	w := words[m.rng.Intn(len(words))]
	if err := m.walkWord(ctx, w); err != nil {
		return err
	}
	return m.CompleteSession(ctx, sess.ID)
}

func (m *StateMachine) walkWord(ctx context.Context, w VocabWord) error {
	if err := m.walker.WalkWord(ctx, w); err != nil {
		return fmt.Errorf("walk word %q: %w", w.Term, err)
	}
	if err := m.vocab.RecordPractice(ctx, w.ID, m.now()); err != nil {
		return fmt.Errorf("record practice: %w", err)
	}
	return nil
}
