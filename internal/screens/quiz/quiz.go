package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/studygen/internal/quiz"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/ui/components"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// QuizScreen runs the day's knowledge check on top of the quiz engine.
type QuizScreen struct {
	engine *qz.Engine
	svc    *qz.Service
	topics []string

	choice    components.MultiChoice
	spinFrame int
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates the quiz screen for a day. Any persisted cooldown is
// restored before the first render.
func New(svc *qz.Service, cooldowns qz.CooldownStore, dayKey string, topics []string) *QuizScreen {
	engine := qz.NewEngine(dayKey, cooldowns)
	// Best effort: a failed restore just means no cooldown is shown.
	_ = engine.Restore(context.Background(), time.Now())

	return &QuizScreen{
		engine: engine,
		svc:    svc,
		topics: topics,
	}
}

func (q *QuizScreen) Title() string {
	return "Knowledge Check"
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.engine.State() == qz.StateCooldown {
		return countdownTick()
	}
	return nil
}

func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinTickMsg(t)
	})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if msg.Err != nil {
			// Quiz fetches fail quietly back to the start button.
			q.engine.LoadFailed()
			return q, nil
		}
		q.engine.QuestionsLoaded(msg.Questions)
		if current, ok := q.engine.Current(); ok {
			q.choice = components.NewMultiChoice(current.Question, current.Options, current.CorrectAnswerIndex, current.Explanation)
		}
		return q, nil

	case countdownTickMsg:
		if err := q.engine.Tick(context.Background(), time.Now()); err != nil {
			return q, countdownTick()
		}
		if q.engine.State() == qz.StateCompleted || q.engine.State() == qz.StateCooldown {
			return q, countdownTick()
		}
		return q, nil

	case spinTickMsg:
		if q.engine.State() != qz.StateLoading {
			return q, nil
		}
		q.spinFrame++
		return q, spinTick()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.engine.State() {
	case qz.StateIdle:
		if msg.String() == "enter" {
			q.engine.Begin()
			topics := q.topics
			fetch := func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				defer cancel()
				qs, err := q.svc.Fetch(ctx, topics)
				return questionsMsg{Questions: qs, Err: err}
			}
			return q, tea.Batch(fetch, spinTick())
		}

	case qz.StateActive:
		return q.handleActiveKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !q.engine.Checked() {
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		q.engine.Select(q.choice.Selected)
		if q.choice.Submitted {
			q.engine.Check()
		}
		return q, cmd
	}

	if msg.String() == "enter" || msg.String() == "n" {
		if err := q.engine.Next(context.Background(), time.Now()); err != nil {
			return q, nil
		}
		switch q.engine.State() {
		case qz.StateActive:
			if current, ok := q.engine.Current(); ok {
				q.choice = components.NewMultiChoice(current.Question, current.Options, current.CorrectAnswerIndex, current.Explanation)
			}
		case qz.StateCompleted:
			return q, countdownTick()
		}
	}
	return q, nil
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (q *QuizScreen) View(width, height int) string {
	var content string

	switch q.engine.State() {
	case qz.StateIdle:
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Quick Quiz"),
			"",
			theme.Subtitle.Render("Five questions on today's material"),
			"",
			components.NewButton("Start Quiz", true, nil).View(),
		)

	case qz.StateLoading:
		frame := spinnerFrames[q.spinFrame%len(spinnerFrames)]
		content = theme.Title.Render(frame + " Writing questions...")

	case qz.StateActive:
		idx, total := q.engine.Position()
		header := theme.Hint.Render(fmt.Sprintf("Question %d of %d · Score %d", idx+1, total, q.engine.Score()))
		body := q.choice.View()
		footer := ""
		if q.engine.Checked() {
			footer = theme.Hint.Render("Enter for the next question")
		}
		content = lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)

	case qz.StateCompleted:
		_, total := q.engine.Position()
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Quiz Complete!"),
			"",
			theme.Correct.Render(fmt.Sprintf("Score: %d / %d", q.engine.Score(), total)),
			"",
			theme.Hint.Render("Next attempt in "+qz.FormatRemaining(q.engine.Remaining(time.Now()))),
		)

	case qz.StateCooldown:
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Quiz on Cooldown"),
			"",
			theme.Subtitle.Render("Give it a little time to sink in."),
			"",
			theme.Selected.Render(qz.FormatRemaining(q.engine.Remaining(time.Now()))),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.engine.State() {
	case qz.StateActive:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
