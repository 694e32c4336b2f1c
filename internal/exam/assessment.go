package exam

import (
	"fmt"

	"github.com/abhisek/studygen/internal/quiz"
)

// Stage is the final assessment phase.
type Stage int

const (
	StageLocked Stage = iota
	StageLoading
	StageMCQ
	StageCoding
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageLocked:
		return "locked"
	case StageLoading:
		return "loading"
	case StageMCQ:
		return "mcq"
	case StageCoding:
		return "coding"
	case StageCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// NoSelection marks that no MCQ option is chosen.
const NoSelection = -1

// Assessment drives the final exam: unlock, MCQ section, coding
// section, completion. The MCQ score is informational only; completion
// is reached by working through both sections regardless of score, and
// fires the completion callback exactly once.
type Assessment struct {
	exam       *FinalExam
	onComplete func()

	stage    Stage
	mcqIndex int
	mcqScore int
	selected int
	checked  bool
	codeIdx  int
	loadErr  error
}

// NewAssessment creates a locked assessment. onComplete fires when the
// final coding problem is finished; it may be nil.
func NewAssessment(onComplete func()) *Assessment {
	return &Assessment{onComplete: onComplete, selected: NoSelection}
}

// Stage returns the current phase.
func (a *Assessment) Stage() Stage {
	return a.stage
}

// Unlock begins exam generation. Only valid from locked.
func (a *Assessment) Unlock() {
	if a.stage != StageLocked {
		return
	}
	a.stage = StageLoading
	a.loadErr = nil
}

// ExamLoaded delivers the generated exam and enters the MCQ section.
func (a *Assessment) ExamLoaded(e *FinalExam) {
	if a.stage != StageLoading || e == nil {
		return
	}
	a.exam = e
	a.stage = StageMCQ
	a.mcqIndex = 0
	a.mcqScore = 0
	a.selected = NoSelection
	a.checked = false
	a.codeIdx = 0
}

// LoadFailed reverts to locked. Unlike the day quiz, a failed exam
// fetch is surfaced: the learner explicitly asked for the exam, so the
// error is kept for display and the unlock can be retried.
func (a *Assessment) LoadFailed(err error) {
	if a.stage != StageLoading {
		return
	}
	a.stage = StageLocked
	a.loadErr = err
}

// LoadErr returns the last exam fetch failure, if any.
func (a *Assessment) LoadErr() error {
	return a.loadErr
}

// CurrentMCQ returns the question under consideration.
func (a *Assessment) CurrentMCQ() (quiz.Question, bool) {
	if a.stage != StageMCQ || a.mcqIndex >= len(a.exam.MCQs) {
		return quiz.Question{}, false
	}
	return a.exam.MCQs[a.mcqIndex], true
}

// MCQPosition returns the 0-based question index and total count.
func (a *Assessment) MCQPosition() (int, int) {
	if a.exam == nil {
		return 0, 0
	}
	return a.mcqIndex, len(a.exam.MCQs)
}

// Select chooses an MCQ option. Ignored once graded.
func (a *Assessment) Select(option int) {
	if a.stage != StageMCQ || a.checked {
		return
	}
	if option < 0 || option >= len(a.exam.MCQs[a.mcqIndex].Options) {
		return
	}
	a.selected = option
}

// Selected returns the chosen option, or NoSelection.
func (a *Assessment) Selected() int {
	return a.selected
}

// Checked reports whether the current MCQ has been graded.
func (a *Assessment) Checked() bool {
	return a.checked
}

// Check grades the current selection. No-op without a selection.
func (a *Assessment) Check() {
	if a.stage != StageMCQ || a.checked || a.selected == NoSelection {
		return
	}
	a.checked = true
	if a.selected == a.exam.MCQs[a.mcqIndex].CorrectAnswerIndex {
		a.mcqScore++
	}
}

// Next advances past a checked MCQ. Leaving the last question moves to
// the coding section.
func (a *Assessment) Next() {
	if a.stage != StageMCQ || !a.checked {
		return
	}
	if a.mcqIndex < len(a.exam.MCQs)-1 {
		a.mcqIndex++
		a.selected = NoSelection
		a.checked = false
		return
	}
	a.stage = StageCoding
}

// MCQScore returns correct MCQ answers.
func (a *Assessment) MCQScore() int {
	return a.mcqScore
}

// CurrentCodingProblem returns the active coding challenge.
func (a *Assessment) CurrentCodingProblem() (string, bool) {
	if a.stage != StageCoding || a.codeIdx >= len(a.exam.CodingProblems) {
		return "", false
	}
	return a.exam.CodingProblems[a.codeIdx], true
}

// CodingPosition returns the 0-based problem index and total count.
func (a *Assessment) CodingPosition() (int, int) {
	if a.exam == nil {
		return 0, 0
	}
	return a.codeIdx, len(a.exam.CodingProblems)
}

// NextCodingProblem advances the coding section. Finishing the last
// problem completes the exam and fires the completion callback.
func (a *Assessment) NextCodingProblem() {
	if a.stage != StageCoding {
		return
	}
	if a.codeIdx < len(a.exam.CodingProblems)-1 {
		a.codeIdx++
		return
	}
	a.stage = StageCompleted
	if a.onComplete != nil {
		a.onComplete()
	}
}
