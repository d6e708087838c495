package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"definition": map[string]any{"type": "string"},
			"level":      map[string]any{"type": "string", "enum": []any{"A2", "B1", "B2"}},
			"examples": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"frequency": map[string]any{"type": "integer"},
		},
		"required": []any{"definition", "examples"},
	}

	schema := toGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["definition"].Type != "STRING" {
		t.Fatalf("expected STRING for definition, got %s", schema.Properties["definition"].Type)
	}
	if schema.Properties["frequency"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for frequency, got %s", schema.Properties["frequency"].Type)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["level"].Enum))
	}
	if schema.Properties["examples"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for examples, got %s", schema.Properties["examples"].Type)
	}
	if schema.Properties["examples"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for examples items, got %s", schema.Properties["examples"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
