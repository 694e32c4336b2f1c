package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studygen/internal/screen"
)

// fakeScreen is a minimal screen for testing.
type fakeScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	planner := &fakeScreen{title: "planner"}
	r := New(planner)

	timeline := &fakeScreen{title: "timeline"}
	r.Push(timeline)
	day := &fakeScreen{title: "day"}
	r.Push(day)

	if r.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", r.Depth())
	}
	if r.Active().Title() != "day" {
		t.Errorf("expected active 'day', got %q", r.Active().Title())
	}
	if !timeline.initRan || !day.initRan {
		t.Error("expected Init() to run on every pushed screen")
	}

	r.Pop()
	if r.Active().Title() != "timeline" {
		t.Errorf("expected active 'timeline' after pop, got %q", r.Active().Title())
	}
	r.Pop()
	r.Pop() // no-op: the bottom screen stays
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after popping to bottom, got %d", r.Depth())
	}
	if r.Active().Title() != "planner" {
		t.Errorf("expected active 'planner', got %q", r.Active().Title())
	}
}

func TestNavigationMessages(t *testing.T) {
	planner := &fakeScreen{title: "planner"}
	r := New(planner)

	timeline := &fakeScreen{title: "timeline"}
	r.Update(PushScreenMsg{Screen: timeline})
	if r.Depth() != 2 || r.Active().Title() != "timeline" {
		t.Fatalf("PushScreenMsg: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "planner" {
		t.Fatalf("PopScreenMsg: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestReplace(t *testing.T) {
	signIn := &fakeScreen{title: "sign in"}
	r := New(signIn)

	planner := &fakeScreen{title: "planner"}
	r.Update(ReplaceScreenMsg{Screen: planner})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "planner" {
		t.Errorf("expected active 'planner', got %q", r.Active().Title())
	}
	if !planner.initRan {
		t.Error("expected Init() to run on the replacement screen")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	planner := &fakeScreen{title: "planner"}
	r := New(planner)

	dash := &fakeScreen{title: "dashboard"}
	r.Push(dash)

	signIn := &fakeScreen{title: "sign in"}
	r.Replace(signIn)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "sign in" {
		t.Errorf("expected active 'sign in', got %q", r.Active().Title())
	}
}

func TestUpdateReachesOnlyActiveScreen(t *testing.T) {
	planner := &fakeScreen{title: "planner"}
	r := New(planner)
	timeline := &fakeScreen{title: "timeline"}
	r.Push(timeline)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if timeline.updates != 1 {
		t.Errorf("active screen saw %d updates, want 1", timeline.updates)
	}
	if planner.updates != 0 {
		t.Errorf("background screen saw %d updates, want 0", planner.updates)
	}
}
