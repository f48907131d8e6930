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

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"justification": map[string]any{"type": "string"},
			"score":         map[string]any{"type": "integer"},
			"intent":        map[string]any{"type": "string", "enum": []any{"ANSWERING", "HINT_REQUEST", "UNCERTAIN"}},
			"evidence": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"justification", "score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["justification"].Type != "STRING" {
		t.Fatalf("expected STRING for justification, got %s", schema.Properties["justification"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["intent"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["intent"].Enum))
	}
	if schema.Properties["evidence"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for evidence, got %s", schema.Properties["evidence"].Type)
	}
	if schema.Properties["evidence"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for evidence items, got %s", schema.Properties["evidence"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "How would you clean the data?"},
		{Role: RoleAssistant, Content: "I would deduplicate first."},
	})

	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Errorf("role = %q, want user", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Errorf("role = %q, want model", contents[1].Role)
	}
}
