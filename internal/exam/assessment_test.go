package exam

import (
	"errors"
	"testing"

	"github.com/abhisek/studygen/internal/quiz"
)

func sampleExam() *FinalExam {
	return &FinalExam{
		MCQs: []quiz.Question{
			{Question: "q1", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
			{Question: "q2", Options: []string{"a", "b"}, CorrectAnswerIndex: 1},
			{Question: "q3", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
		},
		CodingProblems: []string{"p1", "p2"},
	}
}

func TestFullExamFlow(t *testing.T) {
	completed := false
	a := NewAssessment(func() { completed = true })

	if a.Stage() != StageLocked {
		t.Fatalf("initial stage = %v", a.Stage())
	}

	a.Unlock()
	if a.Stage() != StageLoading {
		t.Fatalf("stage after unlock = %v", a.Stage())
	}

	a.ExamLoaded(sampleExam())
	if a.Stage() != StageMCQ {
		t.Fatalf("stage after load = %v", a.Stage())
	}

	// Answer: correct, wrong, correct.
	answers := []int{0, 0, 0}
	for _, ans := range answers {
		a.Select(ans)
		a.Check()
		a.Next()
	}

	if a.Stage() != StageCoding {
		t.Fatalf("stage after MCQs = %v", a.Stage())
	}
	if a.MCQScore() != 2 {
		t.Errorf("MCQScore = %d, want 2", a.MCQScore())
	}

	if p, ok := a.CurrentCodingProblem(); !ok || p != "p1" {
		t.Errorf("coding problem = %q, %v", p, ok)
	}
	a.NextCodingProblem()
	if completed {
		t.Error("completion fired before the last problem")
	}
	a.NextCodingProblem()

	if a.Stage() != StageCompleted {
		t.Fatalf("stage after coding = %v", a.Stage())
	}
	if !completed {
		t.Error("completion callback did not fire")
	}

	// Low MCQ scores do not block completion; the score is advisory.
	if a.MCQScore() != 2 {
		t.Errorf("score changed after completion: %d", a.MCQScore())
	}
}

func TestLoadFailureRevertsToLocked(t *testing.T) {
	a := NewAssessment(nil)
	a.Unlock()

	fetchErr := errors.New("model unavailable")
	a.LoadFailed(fetchErr)

	if a.Stage() != StageLocked {
		t.Fatalf("stage after failure = %v, want locked", a.Stage())
	}
	if !errors.Is(a.LoadErr(), fetchErr) {
		t.Errorf("LoadErr = %v", a.LoadErr())
	}

	// Retry clears the surfaced error.
	a.Unlock()
	if a.LoadErr() != nil {
		t.Error("retry should clear the load error")
	}
	a.ExamLoaded(sampleExam())
	if a.Stage() != StageMCQ {
		t.Errorf("retry did not proceed to MCQ, stage = %v", a.Stage())
	}
}

func TestMCQGradingRules(t *testing.T) {
	a := NewAssessment(nil)
	a.Unlock()
	a.ExamLoaded(sampleExam())

	// Check without selection is a no-op.
	a.Check()
	if a.Checked() {
		t.Error("graded without a selection")
	}

	// Next without grading is a no-op.
	a.Next()
	if idx, _ := a.MCQPosition(); idx != 0 {
		t.Error("advanced without grading")
	}

	a.Select(1)
	a.Check()
	a.Select(0)
	if a.Selected() != 1 {
		t.Error("selection changed after grading")
	}
}

func TestNilExamIgnored(t *testing.T) {
	a := NewAssessment(nil)
	a.Unlock()
	a.ExamLoaded(nil)
	if a.Stage() != StageLoading {
		t.Errorf("nil exam should leave stage loading, got %v", a.Stage())
	}
}
