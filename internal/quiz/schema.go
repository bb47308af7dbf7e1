package quiz

import "github.com/padhakulabs/padhaku/internal/llm"

// questionSchema defines the JSON schema for generated quiz questions.
var questionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice general knowledge quiz question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text, in the requested language",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 answer options, without letter prefixes",
			},
			"answer": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The letter of the correct option",
			},
		},
		"required":             []any{"question", "options", "answer"},
		"additionalProperties": false,
	},
}
