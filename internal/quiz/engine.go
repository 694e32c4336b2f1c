package quiz

import (
	"context"
	"fmt"
	"time"
)

// CooldownDuration is how long a day's quiz stays locked after an
// attempt finishes.
const CooldownDuration = 10 * time.Minute

// CooldownStore persists quiz cooldown expiries by day key.
// Implemented by store.CooldownRepo.
type CooldownStore interface {
	Get(ctx context.Context, dayKey string) (time.Time, bool, error)
	Set(ctx context.Context, dayKey string, expiresAt time.Time) error
	Remove(ctx context.Context, dayKey string) error
}

// State is the quiz lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateActive
	StateCompleted
	StateCooldown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	case StateCooldown:
		return "cooldown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// NoSelection marks that no option is currently chosen.
const NoSelection = -1

// Engine drives one day's quiz attempt. It is a synchronous state
// machine: the caller fetches questions and feeds results and clock
// ticks in. Cooldowns persist as absolute expiry instants, so the
// remaining time is always recomputed from the clock rather than
// counted down, and survives restarts unchanged.
type Engine struct {
	dayKey string
	store  CooldownStore

	state     State
	questions []Question
	current   int
	selected  int
	checked   bool
	score     int
	expiresAt time.Time
}

// NewEngine creates an idle engine for the day.
func NewEngine(dayKey string, store CooldownStore) *Engine {
	return &Engine{dayKey: dayKey, store: store, selected: NoSelection}
}

// Restore loads any persisted cooldown for the day. An unexpired entry
// puts the engine straight into cooldown; an expired one is removed.
func (e *Engine) Restore(ctx context.Context, now time.Time) error {
	expiresAt, ok, err := e.store.Get(ctx, e.dayKey)
	if err != nil {
		return fmt.Errorf("quiz cooldown restore: %w", err)
	}
	if !ok {
		return nil
	}
	if now.Before(expiresAt) {
		e.state = StateCooldown
		e.expiresAt = expiresAt
		return nil
	}
	if err := e.store.Remove(ctx, e.dayKey); err != nil {
		return fmt.Errorf("quiz cooldown restore: %w", err)
	}
	return nil
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Begin starts a fresh attempt: score and position reset, phase moves
// to loading. Only valid from idle.
func (e *Engine) Begin() {
	if e.state != StateIdle {
		return
	}
	e.state = StateLoading
	e.questions = nil
	e.current = 0
	e.selected = NoSelection
	e.checked = false
	e.score = 0
}

// QuestionsLoaded delivers fetched questions. An empty set drops back
// to idle silently, the same as a fetch failure.
func (e *Engine) QuestionsLoaded(qs []Question) {
	if e.state != StateLoading {
		return
	}
	if len(qs) == 0 {
		e.state = StateIdle
		return
	}
	e.questions = qs
	e.state = StateActive
}

// LoadFailed returns the engine to idle after a failed fetch. The quiz
// is optional material, so failures stay quiet and the learner can
// simply try again.
func (e *Engine) LoadFailed() {
	if e.state == StateLoading {
		e.state = StateIdle
	}
}

// Current returns the question under consideration.
func (e *Engine) Current() (Question, bool) {
	if e.state != StateActive || e.current >= len(e.questions) {
		return Question{}, false
	}
	return e.questions[e.current], true
}

// Position returns the 0-based question index and total count.
func (e *Engine) Position() (int, int) {
	return e.current, len(e.questions)
}

// Select chooses an option. Ignored once the answer is checked.
func (e *Engine) Select(option int) {
	if e.state != StateActive || e.checked {
		return
	}
	if option < 0 || option >= len(e.questions[e.current].Options) {
		return
	}
	e.selected = option
}

// Selected returns the chosen option, or NoSelection.
func (e *Engine) Selected() int {
	return e.selected
}

// Checked reports whether the current answer has been graded.
func (e *Engine) Checked() bool {
	return e.checked
}

// Check grades the current selection. No-op without a selection.
func (e *Engine) Check() {
	if e.state != StateActive || e.checked || e.selected == NoSelection {
		return
	}
	e.checked = true
	if e.selected == e.questions[e.current].CorrectAnswerIndex {
		e.score++
	}
}

// Next advances past a checked question. Finishing the last question
// completes the attempt and arms the cooldown: the absolute expiry is
// persisted before the engine reports completion.
func (e *Engine) Next(ctx context.Context, now time.Time) error {
	if e.state != StateActive || !e.checked {
		return nil
	}
	if e.current < len(e.questions)-1 {
		e.current++
		e.selected = NoSelection
		e.checked = false
		return nil
	}

	e.expiresAt = now.Add(CooldownDuration)
	if err := e.store.Set(ctx, e.dayKey, e.expiresAt); err != nil {
		return fmt.Errorf("quiz cooldown persist: %w", err)
	}
	e.state = StateCompleted
	return nil
}

// Score returns correct answers so far.
func (e *Engine) Score() int {
	return e.score
}

// Tick re-evaluates the cooldown against now. On expiry the persisted
// key is removed and the engine returns to idle, from either the
// completed score screen or the cooldown screen.
func (e *Engine) Tick(ctx context.Context, now time.Time) error {
	if e.state != StateCompleted && e.state != StateCooldown {
		return nil
	}
	if now.Before(e.expiresAt) {
		return nil
	}
	if err := e.store.Remove(ctx, e.dayKey); err != nil {
		return fmt.Errorf("quiz cooldown clear: %w", err)
	}
	e.state = StateIdle
	return nil
}

// Remaining returns time left on the cooldown, floored at zero.
func (e *Engine) Remaining(now time.Time) time.Duration {
	if e.state != StateCompleted && e.state != StateCooldown {
		return 0
	}
	d := e.expiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// FormatRemaining renders a countdown as M:SS.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
