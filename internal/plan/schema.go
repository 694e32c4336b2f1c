package plan

import "github.com/abhisek/studygen/internal/llm"

// StudyPlanSchema defines the JSON schema for plan generation.
// The title doubles as the rejection channel: the model sets it to the
// sentinel value when the topic is not a legitimate course.
var StudyPlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A structured study plan broken into periods and daily tasks, or a topic rejection",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Professional title of the plan, or 'INVALID_TOPIC'",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "A summary of the plan, or the rejection reason if invalid",
			},
			"schedule": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"period": map[string]any{
							"type":        "string",
							"description": "Period label, e.g. 'Week 1'",
						},
						"focus": map[string]any{
							"type":        "string",
							"description": "What this period concentrates on",
						},
						"days": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"day": map[string]any{
										"type": "string",
									},
									"topics": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
									"activities": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
								},
								"required":             []any{"day", "topics", "activities"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"period", "focus", "days"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "overview", "schedule"},
		"additionalProperties": false,
	},
}
