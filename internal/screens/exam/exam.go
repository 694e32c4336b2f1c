package exam

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ex "github.com/abhisek/studygen/internal/exam"
	"github.com/abhisek/studygen/internal/router"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/ui/components"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// ExamScreen runs the final comprehensive exam. Completing the last
// coding problem completes the course, which the assessment reports
// through its callback.
type ExamScreen struct {
	svc        *ex.Service
	assessment *ex.Assessment
	topic      string

	codelabFor func(problem string) screen.Screen

	choice    components.MultiChoice
	spinFrame int
}

var _ screen.Screen = (*ExamScreen)(nil)

// New creates the exam screen. onComplete runs once when the exam is
// finished; the caller uses it to mark the plan completed.
func New(svc *ex.Service, topic string, codelabFor func(string) screen.Screen, onComplete func()) *ExamScreen {
	return &ExamScreen{
		svc:        svc,
		assessment: ex.NewAssessment(onComplete),
		topic:      topic,
		codelabFor: codelabFor,
	}
}

func (e *ExamScreen) Title() string {
	return "Final Exam"
}

func (e *ExamScreen) Init() tea.Cmd {
	return nil
}

func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinTickMsg(t)
	})
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examMsg:
		if msg.Err != nil {
			e.assessment.LoadFailed(msg.Err)
			return e, nil
		}
		e.assessment.ExamLoaded(msg.Exam)
		if q, ok := e.assessment.CurrentMCQ(); ok {
			e.choice = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswerIndex, q.Explanation)
		}
		return e, nil

	case spinTickMsg:
		if e.assessment.Stage() != ex.StageLoading {
			return e, nil
		}
		e.spinFrame++
		return e, spinTick()

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e, nil
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch e.assessment.Stage() {
	case ex.StageLocked:
		if msg.String() == "enter" {
			e.assessment.Unlock()
			topic := e.topic
			fetch := func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
				defer cancel()
				exam, err := e.svc.Fetch(ctx, topic)
				return examMsg{Exam: exam, Err: err}
			}
			return e, tea.Batch(fetch, spinTick())
		}

	case ex.StageMCQ:
		return e.handleMCQKey(msg)

	case ex.StageCoding:
		switch msg.String() {
		case "enter":
			if problem, ok := e.assessment.CurrentCodingProblem(); ok {
				lab := e.codelabFor(problem)
				return e, func() tea.Msg {
					return router.PushScreenMsg{Screen: lab}
				}
			}
		case "n":
			e.assessment.NextCodingProblem()
		}
	}

	return e, nil
}

func (e *ExamScreen) handleMCQKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !e.assessment.Checked() {
		var cmd tea.Cmd
		e.choice, cmd = e.choice.Update(msg)
		e.assessment.Select(e.choice.Selected)
		if e.choice.Submitted {
			e.assessment.Check()
		}
		return e, cmd
	}

	if msg.String() == "enter" || msg.String() == "n" {
		e.assessment.Next()
		if q, ok := e.assessment.CurrentMCQ(); ok {
			e.choice = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswerIndex, q.Explanation)
		}
	}
	return e, nil
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (e *ExamScreen) View(width, height int) string {
	var content string

	switch e.assessment.Stage() {
	case ex.StageLocked:
		sections := []string{
			theme.Title.Render("🎓 Final Comprehensive Exam"),
			"",
			theme.Subtitle.Width(min(70, width-6)).Render(
				fmt.Sprintf("Prove your mastery of %s. Five hard multiple choice questions and three comprehensive coding challenges.", e.topic)),
			"",
			components.NewButton("I have completed the course - Unlock Exam", true, nil).View(),
		}
		if err := e.assessment.LoadErr(); err != nil {
			sections = append(sections, "", theme.Incorrect.Render("Failed to generate exam. Please try again."))
		}
		content = lipgloss.JoinVertical(lipgloss.Center, sections...)

	case ex.StageLoading:
		frame := spinnerFrames[e.spinFrame%len(spinnerFrames)]
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render(frame+" Preparing Your Exam"),
			"",
			theme.Subtitle.Render("Curating difficult questions and coding scenarios..."),
		)

	case ex.StageMCQ:
		idx, total := e.assessment.MCQPosition()
		header := theme.Hint.Render(fmt.Sprintf("Section 1 · Question %d of %d", idx+1, total))
		footer := ""
		if e.assessment.Checked() {
			footer = theme.Hint.Render("Enter for the next question")
		}
		content = lipgloss.JoinVertical(lipgloss.Left, header, "", e.choice.View(), footer)

	case ex.StageCoding:
		idx, total := e.assessment.CodingPosition()
		problem, _ := e.assessment.CurrentCodingProblem()
		_, mcqTotal := e.assessment.MCQPosition()
		content = lipgloss.JoinVertical(lipgloss.Left,
			theme.Hint.Render(fmt.Sprintf("Section 2 · Coding %d of %d · MCQ score %d/%d", idx+1, total, e.assessment.MCQScore(), mcqTotal)),
			"",
			theme.Selected.Render("Challenge"),
			theme.Body.Width(min(90, width-6)).Render(problem),
			"",
			theme.Hint.Render("Enter opens the playground · n marks this challenge done"),
		)

	case ex.StageCompleted:
		_, mcqTotal := e.assessment.MCQPosition()
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("🏆 Course Complete!"),
			"",
			theme.Correct.Render(fmt.Sprintf("MCQ score: %d / %d", e.assessment.MCQScore(), mcqTotal)),
			"",
			theme.Subtitle.Width(min(70, width-6)).Render(
				"Congratulations on finishing your study plan. Starting a new plan requires a Pro upgrade."),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}

// KeyHints implements screen.KeyHintProvider.
func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.assessment.Stage() {
	case ex.StageMCQ:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	case ex.StageCoding:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Playground"},
			{Key: "n", Description: "Next challenge"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Unlock"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
