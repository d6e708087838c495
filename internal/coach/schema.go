package coach

import "github.com/mkoehler/sprechzeit/internal/llm"

// WordListSchema defines the JSON schema for vocabulary suggestions.
var WordListSchema = &llm.Schema{
	Name:        "vocab-candidates",
	Description: "Candidate German vocabulary words worth learning from a text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Base-form German words taken from the text, most useful first",
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}

// DefinitionSchema defines the JSON schema for word definitions.
var DefinitionSchema = &llm.Schema{
	Name:        "vocab-definition",
	Description: "A learner-friendly German word definition with example sentences",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"definition": map[string]any{
				"type":        "string",
				"description": "A short definition in simple German (B1 level)",
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Two short example sentences using the word",
			},
		},
		"required":             []any{"definition", "examples"},
		"additionalProperties": false,
	},
}
