package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/studygen/internal/llm"
)

// RejectedTopicError is returned when the model refuses a topic.
// Reason carries the model's explanation for display to the user.
type RejectedTopicError struct {
	Reason string
}

func (e *RejectedTopicError) Error() string {
	return fmt.Sprintf("topic rejected: %s", e.Reason)
}

// Generator produces study plans from a topic and pacing parameters.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// Config tunes plan generation requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults. Plans are long, so the
// token ceiling is generous; temperature stays low for consistency.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.4,
	}
}

// NewGenerator creates a plan generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate builds a study plan for the topic. Returns *RejectedTopicError
// when the model deems the topic invalid.
func (g *Generator) Generate(ctx context.Context, topic string, duration Duration, intensity Intensity) (*StudyPlan, error) {
	ctx = llm.WithPurpose(ctx, "plan")

	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(topic, duration, intensity)},
		},
		Schema:      StudyPlanSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var p StudyPlan
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("plan generation: decode response: %w", err)
	}

	if strings.TrimSpace(p.Title) == invalidTopicSentinel {
		return nil, &RejectedTopicError{Reason: p.Overview}
	}
	if len(p.Schedule) == 0 {
		return nil, fmt.Errorf("plan generation: empty schedule")
	}
	return &p, nil
}
