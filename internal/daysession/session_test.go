package daysession

import (
	"errors"
	"testing"

	"github.com/abhisek/studygen/internal/plan"
)

func testItem() plan.TimelineItem {
	return plan.TimelineItem{
		Period:      "Week 1",
		Focus:       "Language basics",
		Day:         plan.DayPlan{Day: "Ownership", Topics: []string{"borrowing", "lifetimes"}},
		GlobalIndex: 1,
	}
}

func TestSessionGating(t *testing.T) {
	s := NewSession(testItem())

	if s.CanAccessGatedContent() {
		t.Error("fresh session should be gated")
	}

	// Ack before materials load still keeps the gate shut.
	s.Ack()
	if s.CanAccessGatedContent() {
		t.Error("ack without materials should not unlock")
	}

	s.SetDetails(&DayDetails{Description: "overview"})
	if !s.CanAccessGatedContent() {
		t.Error("ack plus materials should unlock")
	}
}

func TestReopenResetsAck(t *testing.T) {
	var o Opener
	item := testItem()

	s1, _ := o.Open(item)
	s1.Ack()
	if !s1.Reviewed() {
		t.Fatal("ack not recorded")
	}

	// Opening the same day again yields a fresh, unreviewed session.
	s2, _ := o.Open(item)
	if s2.Reviewed() {
		t.Error("reopened session must start unreviewed")
	}
}

func TestOpenerSupersedes(t *testing.T) {
	var o Opener

	_, gen1 := o.Open(testItem())
	if !o.Current(gen1) {
		t.Fatal("first open should be current")
	}

	_, gen2 := o.Open(testItem())
	if o.Current(gen1) {
		t.Error("first open should be superseded by the second")
	}
	if !o.Current(gen2) {
		t.Error("second open should be current")
	}
}

func TestSessionLoadingStates(t *testing.T) {
	s := NewSession(testItem())
	if !s.Loading() {
		t.Error("fresh session should be loading")
	}

	s.SetError(errors.New("network down"))
	if s.Loading() {
		t.Error("errored session is not loading")
	}

	s.SetDetails(&DayDetails{Description: "x"})
	if s.Err != nil {
		t.Error("successful fetch should clear the error")
	}
	if s.Loading() {
		t.Error("loaded session is not loading")
	}
}

func TestSessionTitle(t *testing.T) {
	s := NewSession(testItem())
	if got := s.Title(); got != "Day 2: Language basics" {
		t.Errorf("Title = %q", got)
	}
}

func TestYouTubeSearchURL(t *testing.T) {
	got := YouTubeSearchURL("rust ownership & borrowing")
	want := "https://www.youtube.com/results?search_query=rust+ownership+%26+borrowing"
	if got != want {
		t.Errorf("YouTubeSearchURL = %q, want %q", got, want)
	}
}
