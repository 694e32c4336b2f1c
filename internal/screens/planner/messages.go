package planner

import "github.com/abhisek/studygen/internal/plan"

// planReadyMsg is sent when plan generation succeeds.
type planReadyMsg struct {
	Plan *plan.StudyPlan
}

// planFailedMsg is sent when generation fails or the topic is rejected.
type planFailedMsg struct {
	Err error
}
