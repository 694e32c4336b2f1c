package quiz

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studygen/internal/llm"
)

func TestFetchQuestions(t *testing.T) {
	content, _ := json.Marshal(twoQuestions())
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(mock, DefaultConfig())

	qs, err := svc.Fetch(context.Background(), []string{"Day 2: Ownership"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions", len(qs))
	}
	if qs[0].CorrectAnswerIndex != 1 {
		t.Errorf("question decoded wrong: %+v", qs[0])
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Day 2: Ownership") {
		t.Errorf("prompt missing topic: %q", msg)
	}
}

func TestFetchQuestionsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Fetch(context.Background(), []string{"x"}); err == nil {
		t.Fatal("expected error")
	}
}
