package coach

import (
	"strings"
	"testing"
)

func TestPromptForLevels(t *testing.T) {
	tests := []struct {
		level, mode, want string
	}{
		{"easy", "retell", "Wiedergabe (leicht)"},
		{"", "retell", "Wiedergabe (leicht)"},
		{"mittel", "q1", "Q1 (mittel)"},
		{"hard", "q3", "Q3 (schwer)"},
		{"schwer", "q2", "Q2 (schwer)"},
		{"unknown-level", "q1", "Q1 (leicht)"},
	}
	for _, tt := range tests {
		got := PromptFor(tt.level, tt.mode)
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("PromptFor(%q, %q) = %q, want prefix %q", tt.level, tt.mode, got, tt.want)
		}
	}
}

func TestPromptForUnknownModeIsEmpty(t *testing.T) {
	if got := PromptFor("easy", "read"); got != "" {
		t.Errorf("PromptFor(easy, read) = %q, want empty", got)
	}
}

func TestWithVariationHint(t *testing.T) {
	if got := WithVariationHint("P", "retell"); !strings.Contains(got, "Formulierungen") {
		t.Errorf("retell hint missing: %q", got)
	}
	if got := WithVariationHint("P", "q2"); !strings.Contains(got, "demselben Wort") {
		t.Errorf("question hint missing: %q", got)
	}
	if got := WithVariationHint("P", "read"); got != "P" {
		t.Errorf("read should be untouched, got %q", got)
	}
}
