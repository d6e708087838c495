package ui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mkoehler/sprechzeit/internal/path"
)

// previewWords bounds how much of the text the selection screen shows.
const previewWords = 60

type selectOutcome int

const (
	outcomePending selectOutcome = iota
	outcomeConfirm
	outcomeRegenerate
	outcomeAbort
)

// selectModel is the interactive candidate-word picker.
type selectModel struct {
	title      string
	preview    string
	candidates []string
	cursor     int
	checked    map[int]bool
	outcome    selectOutcome
}

func newSelectModel(text *path.Text, candidates []string) selectModel {
	return selectModel{
		title:      text.Title,
		preview:    previewOf(text.Content),
		candidates: candidates,
		checked:    make(map[int]bool),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case " ", "space":
		m.checked[m.cursor] = !m.checked[m.cursor]
	case "enter":
		m.outcome = outcomeConfirm
		return m, tea.Quit
	case "r":
		m.outcome = outcomeRegenerate
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.outcome = outcomeAbort
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() tea.View {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	b.WriteString(cardStyle.Render(bodyStyle.Render(m.preview)) + "\n\n")
	b.WriteString(bodyStyle.Render("Welche Wörter willst du lernen?") + "\n\n")

	for i, word := range m.candidates {
		box := "[ ]"
		if m.checked[i] {
			box = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", box, word)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(bodyStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + hintStyle.Render("Leertaste: wählen · Enter: übernehmen · r: neue Vorschläge · Esc: abbrechen"))

	return tea.NewView(b.String())
}

func (m selectModel) selection() path.Selection {
	switch m.outcome {
	case outcomeRegenerate:
		return path.Selection{Regenerate: true}
	case outcomeConfirm:
		var words []string
		for i, word := range m.candidates {
			if m.checked[i] {
				words = append(words, word)
			}
		}
		return path.Selection{Words: words}
	default:
		return path.Selection{Aborted: true}
	}
}

// Selector runs the interactive word picker. It implements
// path.WordSelector.
type Selector struct{}

// SelectWords presents the candidates and returns the learner's choice.
func (Selector) SelectWords(_ context.Context, text *path.Text, candidates []string) (path.Selection, error) {
	if len(candidates) == 0 {
		return path.Selection{Aborted: true}, nil
	}

	p := tea.NewProgram(newSelectModel(text, candidates))
	final, err := p.Run()
	if err != nil {
		return path.Selection{}, fmt.Errorf("run selection: %w", err)
	}
	m, ok := final.(selectModel)
	if !ok {
		return path.Selection{}, fmt.Errorf("unexpected final model %T", final)
	}
	return m.selection(), nil
}

func previewOf(content string) string {
	words := strings.Fields(content)
	if len(words) <= previewWords {
		return content
	}
	return strings.Join(words[:previewWords], " ") + " …"
}
