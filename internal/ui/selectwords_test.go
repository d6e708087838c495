package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mkoehler/sprechzeit/internal/path"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testText() *path.Text {
	return &path.Text{ID: 1, Title: "Nachrichten", Content: "Die Regierung hat ein neues Gesetz beschlossen."}
}

func update(t *testing.T, m selectModel, msg tea.Msg) selectModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(selectModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return sm
}

func TestSelectToggleAndConfirm(t *testing.T) {
	m := newSelectModel(testText(), []string{"Regierung", "Gesetz", "beschlossen"})

	m = update(t, m, keyPress(' '))              // check Regierung
	m = update(t, m, specialKey(tea.KeyDown))    // move to Gesetz
	m = update(t, m, keyPress(' '))              // check Gesetz
	m = update(t, m, keyPress(' '))              // uncheck Gesetz again
	m = update(t, m, keyPress('j'))              // vim-style down
	m = update(t, m, keyPress(' '))              // check beschlossen
	m = update(t, m, specialKey(tea.KeyEnter))

	sel := m.selection()
	if sel.Aborted || sel.Regenerate {
		t.Fatalf("selection = %+v, want confirmed", sel)
	}
	if len(sel.Words) != 2 || sel.Words[0] != "Regierung" || sel.Words[1] != "beschlossen" {
		t.Errorf("words = %v, want [Regierung beschlossen]", sel.Words)
	}
}

func TestSelectConfirmWithoutChecksIsEmpty(t *testing.T) {
	m := newSelectModel(testText(), []string{"Regierung"})
	m = update(t, m, specialKey(tea.KeyEnter))

	sel := m.selection()
	if sel.Aborted || sel.Regenerate || len(sel.Words) != 0 {
		t.Errorf("selection = %+v, want empty confirm", sel)
	}
}

func TestSelectRegenerate(t *testing.T) {
	m := newSelectModel(testText(), []string{"Regierung"})
	m = update(t, m, keyPress('r'))

	if sel := m.selection(); !sel.Regenerate {
		t.Errorf("selection = %+v, want regenerate", sel)
	}
}

func TestSelectAbort(t *testing.T) {
	m := newSelectModel(testText(), []string{"Regierung"})
	m = update(t, m, specialKey(tea.KeyEscape))

	if sel := m.selection(); !sel.Aborted {
		t.Errorf("selection = %+v, want aborted", sel)
	}
}

func TestSelectCursorStaysInBounds(t *testing.T) {
	m := newSelectModel(testText(), []string{"eins", "zwei"})

	m = update(t, m, specialKey(tea.KeyUp))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}
	m = update(t, m, specialKey(tea.KeyDown))
	m = update(t, m, specialKey(tea.KeyDown))
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down at bottom, want 1", m.cursor)
	}
}

func TestPreviewTruncation(t *testing.T) {
	long := ""
	for i := 0; i < previewWords+10; i++ {
		long += "wort "
	}
	got := previewOf(long)
	if len(got) >= len(long) {
		t.Error("long content was not truncated")
	}

	short := "nur ein kurzer text"
	if previewOf(short) != short {
		t.Error("short content should pass through unchanged")
	}
}
