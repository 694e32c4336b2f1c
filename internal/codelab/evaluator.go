package codelab

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/studygen/internal/llm"
)

const evaluatorSystemPrompt = `You are an AI code execution and review engine. You simulate running code exactly as a real interpreter or compiler would, then judge whether it solves the stated problem.`

// EvaluationResult is the simulated run plus the verdict.
type EvaluationResult struct {
	Output    string `json:"output"`
	Analysis  string `json:"analysis"`
	IsCorrect bool   `json:"isCorrect"`
}

// EvaluationSchema defines the JSON shape for code evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "code-evaluation",
	Description: "Simulated execution output and correctness verdict",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"output":    map[string]any{"type": "string"},
			"analysis":  map[string]any{"type": "string"},
			"isCorrect": map[string]any{"type": "boolean"},
		},
		"required":             []any{"output", "analysis", "isCorrect"},
		"additionalProperties": false,
	},
}

// Config tunes evaluation requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns evaluation defaults. Temperature stays near
// zero so verdicts are repeatable.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.1,
	}
}

// Evaluator checks submitted code and produces reference solutions.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates a code evaluator.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// failedEvaluation is what the learner sees when evaluation itself
// breaks. Evaluation failure is never a pass.
var failedEvaluation = EvaluationResult{
	Output:    "Evaluation failed.",
	Analysis:  "Internal error.",
	IsCorrect: false,
}

// CheckCode simulates running the code against the problem. It always
// returns a result: provider or decode failures degrade to a fixed
// failure payload so the run flow never needs an error path.
func (e *Evaluator) CheckCode(ctx context.Context, problem, code, language, input string) EvaluationResult {
	ctx = llm.WithPurpose(ctx, "code-check")

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Analyze and simulate the following %s code for this problem: %q\n", language, problem))
	b.WriteString(fmt.Sprintf("Input: %q\n\n", input))
	b.WriteString("Code:\n")
	b.WriteString(code)

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return failedEvaluation
	}

	var result EvaluationResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return failedEvaluation
	}
	return result
}

var (
	fenceOpen  = regexp.MustCompile("(?i)^```[a-z]*\n")
	fenceClose = regexp.MustCompile("\n```$")
)

// GetSolution fetches the reference solution in the given language.
// Models sometimes wrap code in markdown fences despite instructions,
// so fences are stripped.
func (e *Evaluator) GetSolution(ctx context.Context, problem, language string) (string, error) {
	ctx = llm.WithPurpose(ctx, "solution")

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Return ONLY the raw optimal code for: %q in %s. No markdown.", problem, language)},
		},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("solution fetch: %w", err)
	}

	text := string(resp.Content)
	text = fenceOpen.ReplaceAllString(text, "")
	text = fenceClose.ReplaceAllString(text, "")
	return text, nil
}
