package daysession

import "github.com/abhisek/studygen/internal/plan"

// Session is one open study day. A session starts unreviewed every time
// a day is opened; review acknowledgment never persists across opens,
// so revisiting a day always requires a fresh review pass before its
// gated material unlocks.
type Session struct {
	Item    plan.TimelineItem
	Details *DayDetails
	Err     error

	reviewed bool
}

// NewSession opens a fresh session for the day. Details arrive later
// via SetDetails or SetError.
func NewSession(item plan.TimelineItem) *Session {
	return &Session{Item: item}
}

// Title returns the display title for the open day.
func (s *Session) Title() string {
	return s.Item.Title()
}

// Ack records that the learner finished reviewing the day's materials.
// One-way: nothing within a session's lifetime un-reviews it.
func (s *Session) Ack() {
	s.reviewed = true
}

// Reviewed reports whether the materials have been acknowledged.
func (s *Session) Reviewed() bool {
	return s.reviewed
}

// CanAccessGatedContent reports whether practice problems and the quiz
// are unlocked: materials must have loaded and been acknowledged.
func (s *Session) CanAccessGatedContent() bool {
	return s.reviewed && s.Details != nil
}

// SetDetails attaches fetched materials to the session.
func (s *Session) SetDetails(d *DayDetails) {
	s.Details = d
	s.Err = nil
}

// SetError records a failed materials fetch.
func (s *Session) SetError(err error) {
	s.Err = err
}

// Loading reports whether the session is still waiting on materials.
func (s *Session) Loading() bool {
	return s.Details == nil && s.Err == nil
}
