package agents

import "github.com/ameya/eduplan/internal/llm"

// misconceptionSchema is the concept→misconceptions mapping requested
// from the analyst.
var misconceptionSchema = &llm.Schema{
	Name:        "misconception-map",
	Description: "Common misconceptions keyed by concept name",
	Definition: map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}

// quizSchema is the quiz-question list requested from the expert model.
var quizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Concept-check questions with reference answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
