package exam

import "github.com/abhisek/studygen/internal/quiz"

// FinalExam is the generated end-of-course assessment: a hard MCQ
// section followed by open coding challenges.
type FinalExam struct {
	MCQs           []quiz.Question `json:"mcqs"`
	CodingProblems []string        `json:"codingProblems"`
}
