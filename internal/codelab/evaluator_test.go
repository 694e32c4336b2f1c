package codelab

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studygen/internal/llm"
)

func TestCheckCode(t *testing.T) {
	content, _ := json.Marshal(EvaluationResult{
		Output:    "Hello World",
		Analysis:  "Correct approach.",
		IsCorrect: true,
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	ev := NewEvaluator(mock, DefaultConfig())

	result := ev.CheckCode(context.Background(), "print hello", "print('Hello World')", "Python", "")
	if !result.IsCorrect || result.Output != "Hello World" {
		t.Errorf("unexpected result: %+v", result)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "print('Hello World')") {
		t.Errorf("prompt missing submitted code: %q", msg)
	}
	if !strings.Contains(msg, "Python") {
		t.Errorf("prompt missing language: %q", msg)
	}
}

func TestCheckCodeDegradesOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	ev := NewEvaluator(mock, DefaultConfig())

	result := ev.CheckCode(context.Background(), "p", "c", "Python", "")
	if result.IsCorrect {
		t.Error("evaluation failure must not pass")
	}
	if result.Output != "Evaluation failed." || result.Analysis != "Internal error." {
		t.Errorf("unexpected failure payload: %+v", result)
	}
}

func TestGetSolutionStripsFences(t *testing.T) {
	tests := []struct{ name, raw, want string }{
		{"fenced", "```python\ndef solve(): pass\n```", "def solve(): pass"},
		{"bare fence", "```\ncode\n```", "code"},
		{"unfenced", "def solve(): pass", "def solve(): pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.raw)})
			ev := NewEvaluator(mock, DefaultConfig())

			got, err := ev.GetSolution(context.Background(), "p", "Python")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("GetSolution = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetSolutionError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	ev := NewEvaluator(mock, DefaultConfig())

	if _, err := ev.GetSolution(context.Background(), "p", "Python"); err == nil {
		t.Fatal("expected error")
	}
}
