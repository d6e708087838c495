// Package textstats computes lexical statistics over German transcripts.
package textstats

import (
	"math"
	"regexp"
	"strings"
)

// wordRe matches lowercase German word runs. Tokenize lowercases first, so
// uppercase input is covered.
var wordRe = regexp.MustCompile(`[a-zäöüß]+`)

var spaceRe = regexp.MustCompile(`\s+`)

// fillerWords are spoken-German hesitation markers counted as fillers.
var fillerWords = map[string]struct{}{
	"äh": {}, "ähm": {}, "hm": {}, "also": {}, "sozusagen": {},
	"quasi": {}, "halt": {}, "irgendwie": {}, "nunja": {}, "naja": {},
}

// Stats holds lexical statistics for a single transcript.
// Invariant: UniqueWords <= WordCount and UniqueRatio = UniqueWords/WordCount
// (0 when WordCount is 0). Compute is the only constructor; it cannot
// produce a violating value.
type Stats struct {
	WordCount   int     `json:"word_count"`
	UniqueWords int     `json:"unique_words"`
	UniqueRatio float64 `json:"unique_ratio"`
	AvgWordLen  float64 `json:"avg_word_len"`
	FillerCount int     `json:"filler_count"`
}

// Valid reports whether the stats satisfy their construction invariant.
func (s Stats) Valid() bool {
	if s.UniqueWords > s.WordCount {
		return false
	}
	if s.WordCount == 0 {
		return s.UniqueRatio == 0
	}
	want := float64(s.UniqueWords) / float64(s.WordCount)
	return math.Abs(s.UniqueRatio-want) < 1e-6
}

// Tokenize splits a transcript into lowercase German word tokens.
func Tokenize(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

// Normalize lowercases and collapses whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(strings.ToLower(s), " "))
}

// Compute builds Stats from a transcript. Empty input yields the zero value
// with all ratios 0, never NaN.
func Compute(transcript string) Stats {
	words := Tokenize(transcript)
	if len(words) == 0 {
		return Stats{}
	}

	unique := make(map[string]struct{}, len(words))
	totalLen := 0
	fillers := 0
	for _, w := range words {
		unique[w] = struct{}{}
		totalLen += len([]rune(w))
		if _, ok := fillerWords[w]; ok {
			fillers++
		}
	}

	n := len(words)
	return Stats{
		WordCount:   n,
		UniqueWords: len(unique),
		UniqueRatio: float64(len(unique)) / float64(n),
		AvgWordLen:  float64(totalLen) / float64(n),
		FillerCount: fillers,
	}
}

// WordsPerMinute derives speaking speed from word count and duration.
// Returns 0 when the duration is absent or non-positive.
func WordsPerMinute(wordCount int, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return float64(wordCount) / (durationSeconds / 60.0)
}

var punktRe = regexp.MustCompile(`(?i)\bpunkt\b[.!?]?`)

// CutAtPunkt trims the transcript at the last spoken "punkt" marker.
// Learners end a take by saying "Punkt"; everything from the last marker on
// is discarded. Input without a marker passes through unchanged.
func CutAtPunkt(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return t
	}
	locs := punktRe.FindAllStringIndex(t, -1)
	if locs == nil {
		return t
	}
	last := locs[len(locs)-1][0]
	return strings.TrimSpace(t[:last])
}
