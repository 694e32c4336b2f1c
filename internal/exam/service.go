package exam

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studygen/internal/llm"
)

const examSystemPrompt = `You are a demanding examiner. You write final exams that genuinely test mastery of a subject, not recall of trivia.`

// ExamSchema defines the JSON shape for final exam generation.
var ExamSchema = &llm.Schema{
	Name:        "final-exam",
	Description: "A final exam with hard MCQs and coding challenges",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mcqs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctAnswerIndex": map[string]any{"type": "integer"},
						"explanation":        map[string]any{"type": "string"},
					},
					"required":             []any{"question", "options", "correctAnswerIndex", "explanation"},
					"additionalProperties": false,
				},
			},
			"codingProblems": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"mcqs", "codingProblems"},
		"additionalProperties": false,
	},
}

// Config tunes exam generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns exam generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.5,
	}
}

// Service generates final exams.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an exam service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Fetch generates the final exam for a course topic.
func (s *Service) Fetch(ctx context.Context, topic string) (*FinalExam, error) {
	ctx = llm.WithPurpose(ctx, "final-exam")

	prompt := fmt.Sprintf("Generate a rigorous final exam for: %s. Include 5 difficult multiple choice questions and 3 comprehensive coding challenges.", topic)

	req := llm.Request{
		System: examSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      ExamSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exam generation: %w", err)
	}

	var e FinalExam
	if err := json.Unmarshal(resp.Content, &e); err != nil {
		return nil, fmt.Errorf("exam generation: decode response: %w", err)
	}
	if len(e.MCQs) == 0 {
		return nil, fmt.Errorf("exam generation: no questions returned")
	}
	return &e, nil
}
