package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mkoehler/sprechzeit/internal/llm"
)

const sampleText = "Die Regierung hat gestern ein umstrittenes Gesetz beschlossen und die Opposition kritisiert die Entscheidung scharf."

func TestSuggestCandidateWordsFromLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"words":["Regierung","Gesetz","umstritten","Entscheidung"]}`),
	})
	c := New(mock, Config{CandidateCount: 3})

	words, err := c.SuggestCandidateWords(context.Background(), sampleText)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3 (candidate count)", len(words))
	}
	if words[0] != "Regierung" {
		t.Errorf("words[0] = %q, want Regierung", words[0])
	}
	if mock.CallCount() != 1 {
		t.Errorf("llm calls = %d, want 1", mock.CallCount())
	}
}

func TestSuggestDeduplicates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"words":["Gesetz","gesetz","  ","Gesetz","Opposition"]}`),
	})
	c := New(mock, Config{})

	words, err := c.SuggestCandidateWords(context.Background(), sampleText)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %v, want [Gesetz Opposition]", words)
	}
}

func TestSuggestFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	c := New(mock, Config{})

	words, err := c.SuggestCandidateWords(context.Background(), sampleText)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("heuristic fallback returned no words")
	}
	for _, w := range words {
		if !strings.Contains(strings.ToLower(sampleText), w) {
			t.Errorf("fallback word %q not from the text", w)
		}
	}
}

func TestSuggestWithoutProvider(t *testing.T) {
	c := New(nil, Config{})
	words, err := c.SuggestCandidateWords(context.Background(), sampleText)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("expected heuristic words without a provider")
	}
}

func TestSuggestEmptyText(t *testing.T) {
	c := New(nil, Config{})
	if _, err := c.SuggestCandidateWords(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestCallBudgetIsInstanceLocal(t *testing.T) {
	canned := llm.MockResponse{Content: json.RawMessage(`{"words":["Regierung"]}`)}
	mock := llm.NewMockProvider(canned, canned, canned)
	c := New(mock, Config{MaxCalls: 2})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := c.SuggestCandidateWords(ctx, sampleText); err != nil {
			t.Fatalf("suggest %d: %v", i, err)
		}
	}
	if mock.CallCount() != 2 {
		t.Errorf("llm calls = %d, want 2 (budget cap)", mock.CallCount())
	}
	if c.CallCount() != 2 {
		t.Errorf("coach counter = %d, want 2", c.CallCount())
	}

	// A second coach instance gets a fresh budget.
	c2 := New(mock, Config{MaxCalls: 2})
	if _, err := c2.SuggestCandidateWords(ctx, sampleText); err != nil {
		t.Fatalf("fresh coach: %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("llm calls = %d, want 3 after fresh instance", mock.CallCount())
	}
}

func TestDefine(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"definition":"Eine Regel, die der Staat macht.","examples":["Das Gesetz gilt ab morgen.","Das Parlament beschließt ein Gesetz."]}`),
	})
	c := New(mock, Config{})

	def, err := c.Define(context.Background(), "Gesetz")
	if err != nil {
		t.Fatalf("define: %v", err)
	}
	if def.Definition == "" || len(def.Examples) != 2 {
		t.Errorf("definition = %+v", def)
	}
}

func TestDefineWithoutProviderFails(t *testing.T) {
	c := New(nil, Config{})
	if _, err := c.Define(context.Background(), "Gesetz"); err == nil {
		t.Fatal("expected error without a provider")
	}
}

func TestHasCausalConnector(t *testing.T) {
	tests := []struct {
		transcript string
		want       bool
	}{
		{"ich bleibe zu hause weil es regnet", true},
		{"es regnet deshalb bleibe ich zu hause", true},
		{"Ich bleibe zu Hause, denn es regnet.", true},
		{"ich bleibe heute einfach zu hause", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasCausalConnector(tt.transcript); got != tt.want {
			t.Errorf("HasCausalConnector(%q) = %v, want %v", tt.transcript, got, tt.want)
		}
	}
}

func TestCausalFeedback(t *testing.T) {
	if got := CausalFeedback("weil es regnet"); got != "" {
		t.Errorf("feedback for causal answer = %q, want empty", got)
	}
	if got := CausalFeedback("es regnet"); got == "" {
		t.Error("expected a hint for an answer without a connector")
	}
}
