package exam

import (
	"time"

	ex "github.com/abhisek/studygen/internal/exam"
)

// examMsg delivers the generated final exam.
type examMsg struct {
	Exam *ex.FinalExam
	Err  error
}

// spinTickMsg animates the loading spinner.
type spinTickMsg time.Time
