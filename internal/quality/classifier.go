// Package quality classifies transcript reliability.
//
// An attempt's transcript can be empty, too short, suspected silence, or
// ASR ghost text ("hallucination"). All raw flags are evaluated and
// persisted; LowQuality is their logical OR. Display hint selection is a
// separate concern (see hints.go).
package quality

import (
	"strings"

	"github.com/mkoehler/sprechzeit/internal/textstats"
)

// Thresholds configures the classifier. Zero values are replaced by
// DefaultThresholds in Classify, so the zero struct is usable.
type Thresholds struct {
	// MinChars below which a transcript counts as practically empty.
	MinChars int
	// MinRetellWords is the minimum word count for a retell answer.
	MinRetellWords int
	// MinQWords is the minimum word count for q1/q2/q3 answers.
	MinQWords int
}

// DefaultThresholds returns the standard classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinChars:       5,
		MinRetellWords: 12,
		MinQWords:      6,
	}
}

func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.MinChars <= 0 {
		t.MinChars = d.MinChars
	}
	if t.MinRetellWords <= 0 {
		t.MinRetellWords = d.MinRetellWords
	}
	if t.MinQWords <= 0 {
		t.MinQWords = d.MinQWords
	}
	return t
}

// Diagnosis is the structured quality verdict for one attempt.
// All raw flags are kept independently for analytics; LowQuality is the OR
// of the five raw triggers.
type Diagnosis struct {
	ASREmpty         bool    `json:"asr_empty"`
	RetellEmpty      bool    `json:"retell_empty"`
	TooShort         bool    `json:"too_short"`
	SuspectedSilence bool    `json:"suspected_silence"`
	HallucinationHit bool    `json:"hallucination_hit"`
	StopwordRatio    float64 `json:"stopword_ratio"`
	LowQuality       bool    `json:"low_quality"`
}

// hallucinationPhrases are transcript fragments Whisper is known to invent
// from silence or background noise in German audio.
var hallucinationPhrases = []string{
	"das ist der erste teil",
	"das ist der erste mal",
	"das ist der erste",
	"das war's",
	"das war es",
	"ich habe mich nicht verstanden",
	"ich habe mich verstanden",
	"ich bin in der stadt",
	"ich habe jetzt noch ein paar sachen zu tun",
	"ich kann mich nicht erinnern",
	"teil des videos",
	"untertitel im auftrag des zdf",
}

// fillerOpeners are generic ASR filler phrases; a very short transcript
// beginning with one is almost certainly ghost text.
var fillerOpeners = []string{
	"vielen dank",
	"danke fürs zuschauen",
	"tschüss",
	"bis zum nächsten mal",
	"untertitel",
}

// Classify evaluates every quality rule over the transcript and returns the
// full Diagnosis. Pure and deterministic: identical inputs yield identical
// output. A negative duration is treated as absent.
//
// Unknown modes are neither retell nor question modes; only the
// mode-independent flags can fire for them.
func Classify(mode, transcript string, stats textstats.Stats, durationSeconds float64, th Thresholds) Diagnosis {
	th = th.withDefaults()

	t := strings.TrimSpace(transcript)
	tLower := strings.ToLower(t)
	chars := len([]rune(t))
	wc := stats.WordCount

	var d Diagnosis

	d.ASREmpty = chars < th.MinChars || wc == 0

	switch {
	case mode == "retell":
		d.RetellEmpty = d.ASREmpty || wc < th.MinRetellWords
	case strings.HasPrefix(mode, "q"):
		d.TooShort = d.ASREmpty || wc < th.MinQWords
	}

	tokens := textstats.Tokenize(t)
	if len(tokens) > 0 {
		stops := 0
		for _, w := range tokens {
			if textstats.IsStopword(w) {
				stops++
			}
		}
		d.StopwordRatio = float64(stops) / float64(len(tokens))
	}

	phraseHit := false
	for _, p := range hallucinationPhrases {
		if strings.Contains(tLower, p) {
			phraseHit = true
			break
		}
	}
	stopwordHeavy := len(tokens) >= 8 && d.StopwordRatio >= 0.75
	fillerOpen := false
	if chars <= 40 {
		for _, o := range fillerOpeners {
			if strings.HasPrefix(tLower, o) {
				fillerOpen = true
				break
			}
		}
	}
	d.HallucinationHit = phraseHit || stopwordHeavy || fillerOpen

	if durationSeconds >= 8.0 && wc <= 2 {
		d.SuspectedSilence = true
	}
	if wc >= 12 && stats.UniqueRatio < 0.20 {
		d.SuspectedSilence = true
	}
	if wc >= 30 && d.HallucinationHit {
		d.SuspectedSilence = true
	}

	d.LowQuality = d.ASREmpty || d.RetellEmpty || d.TooShort ||
		d.SuspectedSilence || d.HallucinationHit

	return d
}
