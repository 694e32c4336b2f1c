package codelab

import (
	"time"

	cl "github.com/abhisek/studygen/internal/codelab"
)

// evalMsg delivers a code evaluation result.
type evalMsg struct {
	Result cl.EvaluationResult
}

// solutionMsg delivers a fetched reference solution.
type solutionMsg struct {
	Code string
	Err  error
}

// spinTickMsg animates the running indicator.
type spinTickMsg time.Time
