package daysession

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/studygen/internal/llm"
	"github.com/abhisek/studygen/internal/plan"
)

const detailsSystemPrompt = `You are an expert study-resource curator. You turn a day of a study plan into concrete learning material.`

// DetailsSchema defines the JSON shape for day resource generation.
var DetailsSchema = &llm.Schema{
	Name:        "day-details",
	Description: "Study resources for a single day of a plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description": map[string]any{
				"type":        "string",
				"description": "A 100-150 word conceptual overview of the day's material",
			},
			"youtubeQueries": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 YouTube search queries for the day's topics",
			},
			"practiceProblems": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "5 practice problems, coding challenges if the subject is technical",
			},
		},
		"required":             []any{"description", "youtubeQueries", "practiceProblems"},
		"additionalProperties": false,
	},
}

// Config tunes day materials generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns materials generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.6,
	}
}

// DetailsService fetches generated study materials for an opened day.
type DetailsService struct {
	provider llm.Provider
	cfg      Config
}

// NewDetailsService creates a day materials service.
func NewDetailsService(provider llm.Provider, cfg Config) *DetailsService {
	return &DetailsService{provider: provider, cfg: cfg}
}

// Fetch generates the resource bundle for one timeline day.
func (s *DetailsService) Fetch(ctx context.Context, item plan.TimelineItem) (*DayDetails, error) {
	ctx = llm.WithPurpose(ctx, "day-details")

	req := llm.Request{
		System: detailsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDetailsUserMessage(item)},
		},
		Schema:      DetailsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("day details: %w", err)
	}

	var d DayDetails
	if err := json.Unmarshal(resp.Content, &d); err != nil {
		return nil, fmt.Errorf("day details: decode response: %w", err)
	}
	return &d, nil
}

func buildDetailsUserMessage(item plan.TimelineItem) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate detailed study resources for: %s - %s\n", item.Period, item.Label()))
	b.WriteString(fmt.Sprintf("Topics: %s\n", strings.Join(item.Day.Topics, ", ")))

	b.WriteString(`
Provide:
1. A 100-150 word conceptual overview.
2. 3-5 YouTube search queries.
3. 5 practice problems (coding challenges if technical, otherwise descriptive problems).`)

	return b.String()
}
