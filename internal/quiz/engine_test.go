package quiz

import (
	"context"
	"testing"
	"time"
)

type memCooldowns struct {
	m map[string]time.Time
}

func newMemCooldowns() *memCooldowns {
	return &memCooldowns{m: make(map[string]time.Time)}
}

func (s *memCooldowns) Get(_ context.Context, dayKey string) (time.Time, bool, error) {
	t, ok := s.m[dayKey]
	return t, ok, nil
}

func (s *memCooldowns) Set(_ context.Context, dayKey string, expiresAt time.Time) error {
	s.m[dayKey] = expiresAt
	return nil
}

func (s *memCooldowns) Remove(_ context.Context, dayKey string) error {
	delete(s.m, dayKey)
	return nil
}

func twoQuestions() []Question {
	return []Question{
		{Question: "1+1?", Options: []string{"1", "2"}, CorrectAnswerIndex: 1},
		{Question: "2+2?", Options: []string{"4", "5"}, CorrectAnswerIndex: 0},
	}
}

func TestAttemptFlow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	store := newMemCooldowns()
	e := NewEngine("Day1Basics", store)

	e.Begin()
	if e.State() != StateLoading {
		t.Fatalf("state after Begin = %v", e.State())
	}

	e.QuestionsLoaded(twoQuestions())
	if e.State() != StateActive {
		t.Fatalf("state after load = %v", e.State())
	}

	// First question: correct.
	e.Select(1)
	e.Check()
	if e.Score() != 1 {
		t.Errorf("score = %d, want 1", e.Score())
	}
	if err := e.Next(ctx, now); err != nil {
		t.Fatal(err)
	}
	if idx, total := e.Position(); idx != 1 || total != 2 {
		t.Errorf("position = %d/%d", idx, total)
	}
	if e.Selected() != NoSelection || e.Checked() {
		t.Error("advancing must clear selection and check state")
	}

	// Second question: wrong. Finishing arms the cooldown.
	e.Select(1)
	e.Check()
	if e.Score() != 1 {
		t.Errorf("score = %d, want 1", e.Score())
	}
	if err := e.Next(ctx, now); err != nil {
		t.Fatal(err)
	}
	if e.State() != StateCompleted {
		t.Fatalf("state after finish = %v", e.State())
	}

	expires, ok, _ := store.Get(ctx, "Day1Basics")
	if !ok {
		t.Fatal("cooldown not persisted")
	}
	if want := now.Add(CooldownDuration); !expires.Equal(want) {
		t.Errorf("expiry = %v, want %v", expires, want)
	}
}

func TestSelectionRules(t *testing.T) {
	e := NewEngine("k", newMemCooldowns())
	e.Begin()
	e.QuestionsLoaded(twoQuestions())

	// Check without a selection is a no-op.
	e.Check()
	if e.Checked() {
		t.Error("check without selection should not grade")
	}

	e.Select(5)
	if e.Selected() != NoSelection {
		t.Error("out of range selection accepted")
	}

	e.Select(0)
	e.Check()

	// Changing the answer after grading is ignored.
	e.Select(1)
	if e.Selected() != 0 {
		t.Error("selection changed after check")
	}
}

func TestCooldownExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	store := newMemCooldowns()
	e := NewEngine("k", store)

	e.Begin()
	e.QuestionsLoaded(twoQuestions()[:1])
	e.Select(1)
	e.Check()
	if err := e.Next(ctx, now); err != nil {
		t.Fatal(err)
	}

	expiry := now.Add(CooldownDuration)

	// One millisecond before expiry the lock holds.
	if err := e.Tick(ctx, expiry.Add(-time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if e.State() != StateCompleted {
		t.Fatalf("state before expiry = %v", e.State())
	}
	if got := e.Remaining(expiry.Add(-time.Millisecond)); got != time.Millisecond {
		t.Errorf("Remaining = %v, want 1ms", got)
	}

	// At expiry the engine unlocks and clears the key.
	if err := e.Tick(ctx, expiry); err != nil {
		t.Fatal(err)
	}
	if e.State() != StateIdle {
		t.Fatalf("state at expiry = %v", e.State())
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("expired cooldown key not removed")
	}
	if e.Remaining(expiry) != 0 {
		t.Error("Remaining should floor at zero")
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("unexpired enters cooldown", func(t *testing.T) {
		store := newMemCooldowns()
		store.Set(ctx, "k", now.Add(5*time.Minute))
		e := NewEngine("k", store)
		if err := e.Restore(ctx, now); err != nil {
			t.Fatal(err)
		}
		if e.State() != StateCooldown {
			t.Errorf("state = %v, want cooldown", e.State())
		}
		if got := e.Remaining(now); got != 5*time.Minute {
			t.Errorf("Remaining = %v", got)
		}
	})

	t.Run("expired is removed", func(t *testing.T) {
		store := newMemCooldowns()
		store.Set(ctx, "k", now.Add(-time.Second))
		e := NewEngine("k", store)
		if err := e.Restore(ctx, now); err != nil {
			t.Fatal(err)
		}
		if e.State() != StateIdle {
			t.Errorf("state = %v, want idle", e.State())
		}
		if _, ok, _ := store.Get(ctx, "k"); ok {
			t.Error("stale key not removed")
		}
	})

	t.Run("absent stays idle", func(t *testing.T) {
		e := NewEngine("k", newMemCooldowns())
		if err := e.Restore(ctx, now); err != nil {
			t.Fatal(err)
		}
		if e.State() != StateIdle {
			t.Errorf("state = %v, want idle", e.State())
		}
	})
}

func TestEmptyAndFailedLoads(t *testing.T) {
	e := NewEngine("k", newMemCooldowns())

	e.Begin()
	e.QuestionsLoaded(nil)
	if e.State() != StateIdle {
		t.Errorf("empty load: state = %v, want idle", e.State())
	}

	e.Begin()
	e.LoadFailed()
	if e.State() != StateIdle {
		t.Errorf("failed load: state = %v, want idle", e.State())
	}
}

func TestBeginResetsScore(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	e := NewEngine("k", newMemCooldowns())

	e.Begin()
	e.QuestionsLoaded(twoQuestions()[:1])
	e.Select(1)
	e.Check()
	e.Next(ctx, now)
	e.Tick(ctx, now.Add(CooldownDuration))

	e.Begin()
	if e.Score() != 0 {
		t.Errorf("score not reset, got %d", e.Score())
	}
	if idx, _ := e.Position(); idx != 0 {
		t.Errorf("position not reset, got %d", idx)
	}
}

func TestDayKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Day 3: Pointers & Arrays", "Day3PointersArrays"},
		{"Day 1: Setup", "Day1Setup"},
		{"éàü!!", ""},
		{"abc123", "abc123"},
	}
	for _, tt := range tests {
		if got := DayKey(tt.in); got != tt.want {
			t.Errorf("DayKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{10 * time.Minute, "10:00"},
		{9*time.Minute + 59*time.Second, "9:59"},
		{5 * time.Second, "0:05"},
		{0, "0:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
