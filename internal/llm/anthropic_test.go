package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-haiku-4-5-20251001",
	}
}

func TestAnthropicProvider_WordSuggestions(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"words":["Umwelt","Regierung","entscheiden"]}`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "Du bist ein Sprachcoach für Deutschlernende.",
		Prompt:    "Schlage 3 Wörter aus diesem Text vor.",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct {
		Words []string `json:"words"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		t.Fatalf("parse content: %v", err)
	}
	if len(out.Words) != 3 || out.Words[0] != "Umwelt" {
		t.Fatalf("unexpected words: %v", out.Words)
	}
	if resp.Usage.InputTokens != 50 {
		t.Fatalf("expected 50 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestAnthropicProvider_APIErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		errType   string
		rateLimit bool
	}{
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error", true},
		{"server error", http.StatusInternalServerError, "api_error", false},
		{"overloaded", http.StatusServiceUnavailable, "overloaded_error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": tt.errType, "message": tt.name},
				})
			})

			_, err := p.Generate(context.Background(), Request{
				Prompt:    "Erkläre das Wort \"Umwelt\".",
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.rateLimit {
				var rl *ErrRateLimit
				if !errors.As(err, &rl) {
					t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
				}
				return
			}
			var unavail *ErrProviderUnavailable
			if !errors.As(err, &unavail) {
				t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-haiku-4-5-20251001"}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Fatalf("expected 'claude-haiku-4-5-20251001', got %q", p.ModelID())
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
