// Package llm gives the coach one narrow door to a language model:
// a single-turn prompt in, schema-checked JSON out. Providers for the
// Anthropic, OpenAI and Gemini APIs are interchangeable behind the
// Provider interface; a mock backs the tests.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion per call.
type Provider interface {
	// Generate sends the prompt and returns the model's JSON output.
	// When the request carries a Schema, the content is validated
	// against it before it is returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model.
	ModelID() string
}

// Request is a single-turn generation request. The coach never holds a
// conversation; every call is one system role plus one user prompt.
type Request struct {
	// System sets the model's role, e.g. the German language-coach
	// persona.
	System string

	// Prompt is the user-turn text.
	Prompt string

	// Schema, when set, selects the provider's structured-output
	// mechanism and gates the response through JSON Schema validation.
	// When nil the raw text comes back as-is.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name is kebab-case and stable, e.g. "vocab-candidates". It keys
	// the compiled-schema cache.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema as a plain map.
	Definition map[string]any
}

// Response is one generation result.
type Response struct {
	// Content is the model output. Validated JSON when the request had
	// a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage counts tokens for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
