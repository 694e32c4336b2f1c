package exam

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studygen/internal/llm"
)

func TestFetchExam(t *testing.T) {
	content, _ := json.Marshal(sampleExam())
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	e, err := svc.Fetch(context.Background(), "Rust Fundamentals")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(e.MCQs) != 3 || len(e.CodingProblems) != 2 {
		t.Errorf("unexpected exam shape: %+v", e)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Rust Fundamentals") {
		t.Errorf("prompt missing topic: %q", msg)
	}
}

func TestFetchExamNoQuestions(t *testing.T) {
	content, _ := json.Marshal(FinalExam{CodingProblems: []string{"p"}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Fetch(context.Background(), "x"); err == nil {
		t.Fatal("expected error for exam without questions")
	}
}
