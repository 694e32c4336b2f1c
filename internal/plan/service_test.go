package plan

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/studygen/internal/llm"
)

func TestGenerateValidPlan(t *testing.T) {
	content, _ := json.Marshal(samplePlan())
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := NewGenerator(mock, DefaultConfig())

	p, err := g.Generate(context.Background(), "Rust", DurationTwoWeeks, IntensityMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Title != "Rust Fundamentals" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.TotalDays() != 3 {
		t.Errorf("TotalDays = %d, want 3", p.TotalDays())
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != StudyPlanSchema {
		t.Error("request did not carry the study plan schema")
	}
}

func TestGenerateRejectedTopic(t *testing.T) {
	content, _ := json.Marshal(StudyPlan{
		Title:    "INVALID_TOPIC",
		Overview: "This does not appear to be a subject that can be studied.",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), "asdfghjkl", DurationOneWeek, IntensityLight)

	var rejected *RejectedTopicError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedTopicError, got %v", err)
	}
	if rejected.Reason != "This does not appear to be a subject that can be studied." {
		t.Errorf("Reason = %q, want the model's overview text", rejected.Reason)
	}
}

func TestGenerateEmptyScheduleIsError(t *testing.T) {
	content, _ := json.Marshal(StudyPlan{Title: "Empty", Overview: "x"})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), "Go", DurationOneWeek, IntensityMedium); err == nil {
		t.Fatal("expected error for plan with no schedule")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), "Go", DurationOneWeek, IntensityMedium); err == nil {
		t.Fatal("expected error when provider fails")
	}
}
