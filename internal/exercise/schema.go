package exercise

import "github.com/nkapoor/lingua/internal/llm"

// DraftSchema defines the JSON schema for LLM exercise drafting responses.
var DraftSchema = &llm.Schema{
	Name:        "grammar-exercises",
	Description: "A short batch of grammar practice exercises for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercises": map[string]any{
				"type":        "array",
				"maxItems":    3,
				"description": "Up to 3 exercises practicing the given grammar topic",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "true_false", "fill_blank"},
							"description": "The exercise format",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The instruction line shown to the learner",
						},
						"statement": map[string]any{
							"type":        "string",
							"description": "For true_false: the statement to judge. Empty otherwise.",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "For fill_blank: the sentence containing ___ where the answer goes. Empty otherwise.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "For multiple_choice: exactly 4 options, one correct. Empty otherwise.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple_choice: the exact text of the correct option. For true_false: \"true\" or \"false\". For fill_blank: the missing word(s).",
						},
						"alternate_answers": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "For fill_blank: other acceptable phrasings of the answer. Empty otherwise.",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short hint the learner can reveal. May be empty.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, shown after the learner submits. Never empty.",
						},
					},
					"required": []any{"kind", "prompt", "statement", "text",
						"options", "answer", "alternate_answers", "hint", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"exercises"},
		"additionalProperties": false,
	},
}
