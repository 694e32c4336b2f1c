package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/studygen/internal/llm"
)

const quizSystemPrompt = `You are a quiz author. You write fair, unambiguous multiple-choice questions that test understanding of study material.`

// QuestionsSchema defines the JSON shape for quiz generation.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Multiple-choice questions for a knowledge check",
	Definition: map[string]any{
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
}

// Config tunes quiz generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns quiz generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Service generates knowledge-check questions.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a quiz service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Fetch generates five questions covering the topics.
func (s *Service) Fetch(ctx context.Context, topics []string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Generate 5 MCQs for: %s", strings.Join(topics, ", "))},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var qs []Question
	if err := json.Unmarshal(resp.Content, &qs); err != nil {
		return nil, fmt.Errorf("quiz generation: decode response: %w", err)
	}
	return qs, nil
}
