package daysession

import (
	"sync"

	"github.com/abhisek/studygen/internal/plan"
)

// Opener hands out day sessions and stamps each with a monotonically
// increasing generation. Async fetches carry their generation back, and
// results from a superseded open are discarded instead of landing in a
// newer session.
type Opener struct {
	mu  sync.Mutex
	gen uint64
}

// Open starts a fresh session for the day and returns its generation
// token. Any previously issued token is superseded.
func (o *Opener) Open(item plan.TimelineItem) (*Session, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.gen++
	return NewSession(item), o.gen
}

// Current reports whether the token belongs to the latest open.
func (o *Opener) Current(gen uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return gen == o.gen
}
