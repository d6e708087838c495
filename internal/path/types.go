package path

import "time"

// Step types a template may contain.
const (
	StepNews        = "news"
	StepBook        = "book"
	StepDefineVocab = "define_vocab"
	StepReview      = "review"
)

// Run states. Active is the only non-terminal state.
const (
	RunActive    = "active"
	RunCompleted = "completed"
	RunAborted   = "aborted"
)

// Session states.
const (
	SessionOpen      = "open"
	SessionCompleted = "completed"
)

// Step is one step of a template. Order values are 1-based and contiguous
// within a template.
type Step struct {
	Order  int
	Type   string
	Config map[string]any
}

// Template is an ordered list of practice steps defining a learning path.
type Template struct {
	ID          int
	Name        string
	Level       string
	Description string
	Active      bool
	Steps       []Step
}

// Run is one traversal of a template.
type Run struct {
	ID          int
	RunID       string
	TemplateID  int
	Status      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Session is one in-progress or completed step within a run.
type Session struct {
	ID          int
	RunID       int
	TemplateID  int
	StepOrder   int
	StepType    string
	ContentRef  string
	TextID      *int
	Status      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Text is a materialized source text presented during a news or book step.
type Text struct {
	ID      int
	Title   string
	Content string
}

// VocabWord is a learned word linked to sessions.
type VocabWord struct {
	ID         int
	Term       string
	Definition string
	Examples   []string
}

// ConfigString returns a string-valued config entry, or "" if the key is
// absent or not a string. Config arrives untyped from JSON.
func (s Step) ConfigString(key string) string {
	if s.Config == nil {
		return ""
	}
	v, ok := s.Config[key].(string)
	if !ok {
		return ""
	}
	return v
}
