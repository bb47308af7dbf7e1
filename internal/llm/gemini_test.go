package llm

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema_Conversion(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a quiz question",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer": map[string]any{
				"type": "string",
				"enum": []any{"A", "B", "C", "D"},
			},
		},
		"required": []any{"question", "options", "answer"},
	}

	got := geminiSchema(def)

	if got.Type != genai.TypeObject {
		t.Errorf("Type = %v, want object", got.Type)
	}
	if got.Description != "a quiz question" {
		t.Errorf("Description = %q", got.Description)
	}
	if len(got.Properties) != 3 {
		t.Fatalf("got %d properties, want 3", len(got.Properties))
	}
	if got.Properties["options"].Type != genai.TypeArray {
		t.Errorf("options type = %v, want array", got.Properties["options"].Type)
	}
	if got.Properties["options"].Items == nil || got.Properties["options"].Items.Type != genai.TypeString {
		t.Error("options items not converted to string schema")
	}
	if len(got.Properties["answer"].Enum) != 4 {
		t.Errorf("answer enum has %d values, want 4", len(got.Properties["answer"].Enum))
	}
	if len(got.Required) != 3 {
		t.Errorf("Required has %d entries, want 3", len(got.Required))
	}
}

func TestWrapGeminiError(t *testing.T) {
	rateLimited := wrapGeminiError(&genai.APIError{Code: 429, Message: "quota"})
	if kind, _ := KindOf(rateLimited); kind != KindRateLimited {
		t.Errorf("429 wrapped as %v, want rate_limited", kind)
	}

	down := wrapGeminiError(&genai.APIError{Code: 503, Message: "overloaded"})
	if kind, _ := KindOf(down); kind != KindUnavailable {
		t.Errorf("503 wrapped as %v, want unavailable", kind)
	}

	network := wrapGeminiError(errors.New("connection refused"))
	if kind, _ := KindOf(network); kind != KindUnavailable {
		t.Errorf("network error wrapped as %v, want unavailable", kind)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Errorf("gemini-flash resolved to %q", got)
	}
	// Unknown names pass through so exact API IDs can be pinned.
	if got := resolveModel("gemini-exp-1234", geminiModels); got != "gemini-exp-1234" {
		t.Errorf("passthrough gave %q", got)
	}
}
