package daysession

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studygen/internal/llm"
)

func TestFetchDetails(t *testing.T) {
	content, _ := json.Marshal(DayDetails{
		Description:      "An overview of ownership.",
		YouTubeQueries:   []string{"rust ownership explained"},
		PracticeProblems: []string{"Implement a stack without cloning."},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewDetailsService(mock, DefaultConfig())

	d, err := svc.Fetch(context.Background(), testItem())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if d.Description == "" || len(d.YouTubeQueries) != 1 || len(d.PracticeProblems) != 1 {
		t.Errorf("unexpected details: %+v", d)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Week 1 - Day 2") {
		t.Errorf("prompt missing period and day label: %q", msg)
	}
	if !strings.Contains(msg, "borrowing, lifetimes") {
		t.Errorf("prompt missing topics: %q", msg)
	}
}

func TestFetchDetailsProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewDetailsService(mock, DefaultConfig())

	if _, err := svc.Fetch(context.Background(), testItem()); err == nil {
		t.Fatal("expected error when provider fails")
	}
}
