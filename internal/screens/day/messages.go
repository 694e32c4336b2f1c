package day

import (
	"time"

	"github.com/abhisek/studygen/internal/daysession"
)

// detailsMsg delivers a materials fetch result. Gen identifies which
// open it belongs to; stale results are dropped.
type detailsMsg struct {
	Gen     uint64
	Details *daysession.DayDetails
	Err     error
}

// spinTickMsg animates the loading spinner.
type spinTickMsg time.Time
