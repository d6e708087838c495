package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mkoehler/sprechzeit/internal/progress"
)

func rate(f float64) *float64 { return &f }

func sampleStats() []progress.ModeStats {
	return []progress.ModeStats{
		{
			Mode:              "q1",
			Count:             3,
			MedianWordCount:   8,
			MedianUniqueRatio: 0.9,
			LowQualityRate:    rate(0.667),
			ASREmptyRate:      rate(0.667),
			Notes:             []string{"häufig leere Aufnahmen"},
		},
		{
			Mode:              "retell",
			Count:             2,
			MedianWordCount:   30,
			MedianUniqueRatio: 0.8,
			MedianWPM:         110,
			LowQualityRate:    rate(0),
			ASREmptyRate:      rate(0),
		},
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(nil, nil)
	if !strings.Contains(out, "Noch keine Aufnahmen") {
		t.Errorf("empty render = %q", out)
	}
}

func TestRenderContainsModesAndRecommendation(t *testing.T) {
	rec := &progress.Recommendation{
		Code:    "check-recording",
		Message: "Prüfe Mikrofon und Aufnahmetechnik.",
		Mode:    "q1",
	}
	out := Render(sampleStats(), rec)

	for _, want := range []string{"q1", "retell", "3 Aufnahmen", "67 %", "Empfehlung", "Mikrofon"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	// WPM only shown where present.
	if strings.Count(out, "Wörter/Minute") != 1 {
		t.Errorf("expected exactly one WPM row:\n%s", out)
	}
}

func TestRenderWithoutRecommendation(t *testing.T) {
	out := Render(sampleStats(), nil)
	if strings.Contains(out, "Empfehlung") {
		t.Error("render shows a recommendation where none exists")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	stats := sampleStats()
	stats[1].Q3CausalRate = nil

	if err := WriteCSV(&buf, stats); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "mode,count,") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "q1,3,") {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Absent rate must be an empty cell, not a zero.
	if !strings.HasSuffix(lines[2], ",") {
		t.Errorf("row 2 = %q, want trailing empty q3 cell", lines[2])
	}
}
