package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func definitionSchema() *Schema {
	return &Schema{
		Name:        "word-definition",
		Description: "A learner-facing word explanation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"definition": map[string]any{"type": "string"},
				"examples": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"level": map[string]any{"type": "string", "enum": []any{"A2", "B1", "B2"}},
			},
			"required": []any{"definition", "examples"},
		},
	}
}

func TestValidateContent_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"definition":"die Natur um uns herum","examples":["Wir schützen die Umwelt."],"level":"B1"}`)
	err := validateContent(definitionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateContent_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"definition":"eine Gruppe von Politikern, die ein Land führt","examples":["Die Regierung plant ein neues Gesetz."]}`)
	err := validateContent(definitionSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateContent_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"definition":"die Natur um uns herum"}`)
	err := validateContent(definitionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateContent_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"definition":"die Natur um uns herum","examples":"kein Array"}`)
	err := validateContent(definitionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateContent_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"definition":"die Natur","examples":["Die Umwelt leidet."],"level":"C2"}`)
	err := validateContent(definitionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateContent_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateContent(definitionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateContent_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateContent(definitionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateContent_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateContent(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateContent_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "vocab-candidates-scored",
		Description: "Word suggestions with per-word detail",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"source": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"words": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"source", "words"},
		},
	}

	valid := json.RawMessage(`{"source":{"title":"Nachrichten vom Montag"},"words":["Umwelt","Regierung"]}`)
	if err := validateContent(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"source":{"title":"Nachrichten vom Montag"},"words":[1,2]}`)
	if err := validateContent(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
