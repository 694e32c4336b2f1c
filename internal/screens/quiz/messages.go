package quiz

import (
	"time"

	qz "github.com/abhisek/studygen/internal/quiz"
)

// questionsMsg delivers fetched quiz questions.
type questionsMsg struct {
	Questions []qz.Question
	Err       error
}

// countdownTickMsg fires once a second while the cooldown shows.
type countdownTickMsg time.Time

// spinTickMsg animates the loading spinner.
type spinTickMsg time.Time
