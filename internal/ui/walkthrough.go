package ui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mkoehler/sprechzeit/internal/coach"
	"github.com/mkoehler/sprechzeit/internal/path"
)

// Definer supplies a word explanation for the walkthrough. The coach
// satisfies it; nil means the walkthrough shows the word alone.
type Definer interface {
	Define(ctx context.Context, word string) (*coach.Definition, error)
}

// walkModel shows one word with its definition and asks the learner to
// write an example sentence before moving on.
type walkModel struct {
	word    path.VocabWord
	def     *coach.Definition
	input   textinput.Model
	aborted bool
}

func newWalkModel(word path.VocabWord, def *coach.Definition) walkModel {
	ti := textinput.New()
	ti.Placeholder = "Dein eigener Satz mit dem Wort …"
	ti.Focus()
	return walkModel{word: word, def: def, input: ti}
}

func (m walkModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m walkModel) View() tea.View {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.word.Term) + "\n\n")

	if m.def != nil {
		b.WriteString(bodyStyle.Render(m.def.Definition) + "\n")
		for _, ex := range m.def.Examples {
			b.WriteString(hintStyle.Render("  › "+ex) + "\n")
		}
		b.WriteString("\n")
	} else if m.word.Definition != "" {
		b.WriteString(bodyStyle.Render(m.word.Definition) + "\n\n")
	} else {
		b.WriteString(warnStyle.Render("Keine Erklärung verfügbar.") + "\n\n")
	}

	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(hintStyle.Render("Enter: weiter · Esc: abbrechen"))

	return tea.NewView(b.String())
}

// Walker walks the learner through words one at a time. It implements
// path.VocabWalker.
type Walker struct {
	// Definer is optional. When set, words without a stored definition
	// get one fetched before display.
	Definer Definer
}

// WalkWord shows the word and waits for the learner's example sentence.
// Fetching a definition is best-effort; its absence never blocks the
// walkthrough.
func (w *Walker) WalkWord(ctx context.Context, word path.VocabWord) error {
	var def *coach.Definition
	if w.Definer != nil && word.Definition == "" {
		if d, err := w.Definer.Define(ctx, word.Term); err == nil {
			def = d
		}
	}

	p := tea.NewProgram(newWalkModel(word, def))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run walkthrough: %w", err)
	}
	if m, ok := final.(walkModel); ok && m.aborted {
		return fmt.Errorf("walkthrough aborted at %q", word.Term)
	}
	return nil
}
