package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkoehler/sprechzeit/internal/llm"
	"github.com/mkoehler/sprechzeit/internal/textstats"
)

const suggestSystemPrompt = `Du bist ein Sprachcoach für Deutschlernende auf B1-Niveau.
Du schlägst Wörter aus einem Text vor, die sich zu lernen lohnen: konkret,
alltagstauglich, in Grundform. Keine Eigennamen, keine Funktionswörter.`

const defineSystemPrompt = `Du bist ein Sprachcoach für Deutschlernende auf B1-Niveau.
Du erklärst Wörter kurz und einfach und gibst zwei Beispielsätze.`

// Coach suggests vocabulary and definitions, backed by an LLM provider
// with a heuristic fallback. It holds its own call counter; exceeding the
// configured cap silently switches to the fallback.
type Coach struct {
	provider llm.Provider
	cfg      Config
	calls    int
}

// New creates a Coach. provider may be nil, in which case every answer
// comes from the heuristic fallback.
func New(provider llm.Provider, cfg Config) *Coach {
	return &Coach{provider: provider, cfg: cfg.withDefaults()}
}

// CallCount reports how many LLM calls this instance has made.
func (c *Coach) CallCount() int {
	return c.calls
}

// SuggestCandidateWords proposes words worth learning from the text. The
// result is bounded by the configured candidate count and deduplicated;
// when the LLM is unavailable, capped out, or returns junk, the lexical
// heuristic takes over.
func (c *Coach) SuggestCandidateWords(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	if !c.budget() {
		return c.heuristicWords(text), nil
	}

	req := llm.Request{
		System: suggestSystemPrompt,
		Prompt: fmt.Sprintf(
			"Schlage %d Wörter aus diesem Text vor:\n\n%s", c.cfg.CandidateCount, text),
		Schema:      WordListSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	c.calls++
	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return c.heuristicWords(text), nil
	}

	var out struct {
		Words []string `json:"words"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return c.heuristicWords(text), nil
	}

	words := dedupeWords(out.Words, c.cfg.CandidateCount)
	if len(words) == 0 {
		return c.heuristicWords(text), nil
	}
	return words, nil
}

// Definition is a learner-facing word explanation.
type Definition struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

// Define produces a short definition with example sentences for a word.
// Without an LLM there is no useful fallback, so the caller gets an error
// and should continue the walkthrough without one.
func (c *Coach) Define(ctx context.Context, word string) (*Definition, error) {
	if word == "" {
		return nil, fmt.Errorf("empty word")
	}
	if !c.budget() {
		return nil, fmt.Errorf("definition for %q: call budget exhausted", word)
	}

	req := llm.Request{
		System:    defineSystemPrompt,
		Prompt:    fmt.Sprintf("Erkläre das Wort %q.", word),
		Schema:    DefinitionSchema,
		MaxTokens: c.cfg.MaxTokens,
	}

	c.calls++
	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", word, err)
	}

	var def Definition
	if err := json.Unmarshal(resp.Content, &def); err != nil {
		return nil, fmt.Errorf("parse definition for %q: %w", word, err)
	}
	return &def, nil
}

// budget reports whether an LLM call is currently allowed.
func (c *Coach) budget() bool {
	if c.provider == nil {
		return false
	}
	return c.cfg.MaxCalls == 0 || c.calls < c.cfg.MaxCalls
}

// heuristicWords falls back to frequency-scored content words.
func (c *Coach) heuristicWords(text string) []string {
	return textstats.SuggestTargetTerms(text, "", c.cfg.CandidateCount)
}

func dedupeWords(words []string, limit int) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, limit)
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}
