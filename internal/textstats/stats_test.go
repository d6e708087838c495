package textstats

import (
	"math"
	"testing"
)

func TestComputeEmpty(t *testing.T) {
	s := Compute("")
	if s.WordCount != 0 {
		t.Errorf("word count = %d, want 0", s.WordCount)
	}
	if s.UniqueRatio != 0 {
		t.Errorf("unique ratio = %f, want 0 (not NaN)", s.UniqueRatio)
	}
	if math.IsNaN(s.AvgWordLen) {
		t.Error("avg word len is NaN for empty input")
	}
	if !s.Valid() {
		t.Error("zero stats should be valid")
	}
}

func TestComputeBasic(t *testing.T) {
	s := Compute("Der Hund jagt den Hund")
	if s.WordCount != 5 {
		t.Errorf("word count = %d, want 5", s.WordCount)
	}
	if s.UniqueWords != 4 {
		t.Errorf("unique words = %d, want 4", s.UniqueWords)
	}
	if got, want := s.UniqueRatio, 0.8; math.Abs(got-want) > 1e-9 {
		t.Errorf("unique ratio = %f, want %f", got, want)
	}
	if !s.Valid() {
		t.Error("computed stats violate invariant")
	}
}

func TestComputeFillers(t *testing.T) {
	s := Compute("ähm also ich gehe halt nach Hause")
	if s.FillerCount != 3 {
		t.Errorf("filler count = %d, want 3", s.FillerCount)
	}
}

func TestComputeUniqueNeverExceedsTotal(t *testing.T) {
	inputs := []string{
		"a", "wort", "das das das", "Der schnelle braune Fuchs springt",
		"äh äh äh ähm", "punktuation, zählt; nicht!",
	}
	for _, in := range inputs {
		s := Compute(in)
		if s.UniqueWords > s.WordCount {
			t.Errorf("Compute(%q): unique %d > total %d", in, s.UniqueWords, s.WordCount)
		}
	}
}

func TestTokenizeGermanChars(t *testing.T) {
	got := Tokenize("Größe, Übung! straße")
	want := []string{"größe", "übung", "straße"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordsPerMinute(t *testing.T) {
	if got := WordsPerMinute(60, 30); got != 120 {
		t.Errorf("wpm = %f, want 120", got)
	}
	if got := WordsPerMinute(10, 0); got != 0 {
		t.Errorf("wpm with zero duration = %f, want 0", got)
	}
	if got := WordsPerMinute(10, -5); got != 0 {
		t.Errorf("wpm with negative duration = %f, want 0", got)
	}
}

func TestCutAtPunkt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"das ist ein satz punkt", "das ist ein satz"},
		{"das ist ein satz Punkt.", "das ist ein satz"},
		{"erster punkt zweiter punkt", "erster punkt zweiter"},
		{"kein marker hier", "kein marker hier"},
		{"", ""},
		{"punktuell bleibt erhalten", "punktuell bleibt erhalten"},
	}
	for _, tt := range tests {
		if got := CutAtPunkt(tt.in); got != tt.want {
			t.Errorf("CutAtPunkt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComputeOverlap(t *testing.T) {
	o := ComputeOverlap("der hund jagt die katze", "der hund schläft")
	// spoken tokens: der, hund, schläft → 2 of 3 in source.
	if got, want := o.Precision, 2.0/3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("precision = %f, want %f", got, want)
	}
	// source tokens: 5 unique, 2 matched.
	if got, want := o.Recall, 2.0/5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("recall = %f, want %f", got, want)
	}
	if o.F1 <= 0 {
		t.Errorf("f1 = %f, want > 0", o.F1)
	}
}

func TestComputeOverlapEmptySides(t *testing.T) {
	if o := ComputeOverlap("", "etwas"); o != (Overlap{}) {
		t.Errorf("empty source: got %+v, want zero", o)
	}
	if o := ComputeOverlap("etwas", ""); o != (Overlap{}) {
		t.Errorf("empty spoken: got %+v, want zero", o)
	}
}
