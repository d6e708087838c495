package quality

import (
	"strings"
	"testing"

	"github.com/mkoehler/sprechzeit/internal/textstats"
)

func classify(mode, transcript string, duration float64) Diagnosis {
	return Classify(mode, transcript, textstats.Compute(transcript), duration, Thresholds{})
}

func TestEmptyRetell(t *testing.T) {
	// Scenario: empty transcript, no duration, retell mode.
	d := classify("retell", "", 0)
	if !d.ASREmpty {
		t.Error("asr_empty = false, want true")
	}
	if !d.RetellEmpty {
		t.Error("retell_empty = false, want true")
	}
	if !d.LowQuality {
		t.Error("low_quality = false, want true")
	}
	if d.StopwordRatio != 0 {
		t.Errorf("stopword_ratio = %f, want 0", d.StopwordRatio)
	}
}

func TestZeroWordsAlwaysEmpty(t *testing.T) {
	for _, transcript := range []string{"", "   ", "...", "!?"} {
		d := classify("q1", transcript, 0)
		if !d.ASREmpty || !d.LowQuality {
			t.Errorf("transcript %q: asr_empty=%v low_quality=%v, want both true",
				transcript, d.ASREmpty, d.LowQuality)
		}
	}
}

func TestRepetitiveTranscriptIsSuspectedSilence(t *testing.T) {
	// 40 words with very low unique ratio, q2 mode, 20s.
	transcript := strings.TrimSpace(strings.Repeat("ja gut ja gut ", 10))
	stats := textstats.Compute(transcript)
	if stats.WordCount != 40 {
		t.Fatalf("word count = %d, want 40", stats.WordCount)
	}
	if stats.UniqueRatio >= 0.20 {
		t.Fatalf("unique ratio = %f, want < 0.20", stats.UniqueRatio)
	}
	d := Classify("q2", transcript, stats, 20, Thresholds{})
	if !d.SuspectedSilence {
		t.Error("suspected_silence = false, want true")
	}
	if !d.LowQuality {
		t.Error("low_quality = false, want true")
	}
}

func TestLongRecordingFewWords(t *testing.T) {
	d := classify("retell", "ja gut", 9.5)
	if !d.SuspectedSilence {
		t.Error("9.5s with 2 words should be suspected silence")
	}
}

func TestNegativeDurationTreatedAsAbsent(t *testing.T) {
	d := classify("retell", "ja gut", -3)
	if d.SuspectedSilence {
		t.Error("negative duration must not trigger the silence rule")
	}
}

func TestHallucinationPhrase(t *testing.T) {
	d := classify("q1", "also das war's und mehr habe ich nicht gesagt dazu", 5)
	if !d.HallucinationHit {
		t.Error("hallucination_hit = false, want true for known phrase")
	}
	if !d.LowQuality {
		t.Error("low_quality = false, want true")
	}
}

func TestHallucinationStopwordHeavy(t *testing.T) {
	// 8 tokens, all stopwords.
	d := classify("q1", "der die das und oder aber auch nicht", 5)
	if d.StopwordRatio < 0.75 {
		t.Fatalf("stopword_ratio = %f, want >= 0.75", d.StopwordRatio)
	}
	if !d.HallucinationHit {
		t.Error("hallucination_hit = false, want true for stopword-heavy text")
	}
}

func TestHallucinationFillerOpener(t *testing.T) {
	d := classify("q1", "vielen dank fürs zuhören", 5)
	if !d.HallucinationHit {
		t.Error("short transcript with filler opener should be a hallucination hit")
	}
	// Same opener in a long transcript is not flagged by the opener rule.
	long := "vielen dank " + strings.Repeat("der bericht beschreibt konkrete neue ergebnisse ", 4)
	d = classify("q1", long, 30)
	if d.HallucinationHit {
		t.Error("long transcript must not be flagged by the opener rule alone")
	}
}

func TestModeThresholds(t *testing.T) {
	short := "das reicht so eben nicht ganz aus hier jetzt"

	d := classify("retell", short, 10)
	if !d.RetellEmpty {
		t.Error("9-word retell should be retell_empty (min 12)")
	}
	if d.TooShort {
		t.Error("too_short must stay false in retell mode")
	}

	d = classify("q2", short, 10)
	if d.TooShort {
		t.Error("9-word q answer is above the 6-word minimum")
	}
	d = classify("q2", "zu kurz eben", 10)
	if !d.TooShort {
		t.Error("3-word q answer should be too_short")
	}
}

func TestUnknownModeOnlyGenericFlags(t *testing.T) {
	d := classify("freestyle", "kurz", 10)
	if d.RetellEmpty || d.TooShort {
		t.Error("unknown mode must not set mode-specific flags")
	}
	if !d.ASREmpty {
		t.Error("asr_empty still applies to unknown modes")
	}
}

func TestClassifyDeterministic(t *testing.T) {
	transcript := "der plan funktioniert weil alle beteiligten mitziehen deshalb lohnt es sich"
	stats := textstats.Compute(transcript)
	a := Classify("q3", transcript, stats, 14, Thresholds{})
	b := Classify("q3", transcript, stats, 14, Thresholds{})
	if a != b {
		t.Errorf("classify not deterministic: %+v vs %+v", a, b)
	}
}

func TestGoodAnswerRaisesNothing(t *testing.T) {
	transcript := "Der Bericht beschreibt eine neue Methode zur Wasseraufbereitung, " +
		"die günstiger arbeitet und deshalb besonders für kleinere Gemeinden interessant ist."
	d := classify("retell", transcript, 20)
	if d.LowQuality {
		t.Errorf("good answer flagged low quality: %+v", d)
	}
	if h := FirstHint(d); h != nil {
		t.Errorf("expected no hint, got %q", h.Code)
	}
}
