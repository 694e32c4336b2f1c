package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/account"
	"github.com/abhisek/studygen/internal/plan"
	"github.com/abhisek/studygen/internal/router"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/ui/components"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// Form rows: topic input, duration selector, intensity selector, button.
const (
	rowTopic = iota
	rowDuration
	rowIntensity
	rowGenerate
	rowCount
)

// PlannerScreen is where a new study plan is requested.
type PlannerScreen struct {
	generator *plan.Generator
	acct      *account.Account

	timelineFor func(*plan.StudyPlan) screen.Screen
	dashboard   func(billingMessage string) screen.Screen

	topic      components.TextInput
	durations  []plan.Duration
	durIdx     int
	intensites []plan.Intensity
	intIdx     int
	row        int

	generating bool
	spinFrame  int
	errMsg     string
}

var _ screen.Screen = (*PlannerScreen)(nil)

type spinTickMsg time.Time

// New creates the planner screen. timelineFor builds the timeline
// screen for a generated plan; dashboard builds the dashboard screen,
// opened on the billing tab when generation is blocked.
func New(generator *plan.Generator, acct *account.Account, timelineFor func(*plan.StudyPlan) screen.Screen, dashboard func(string) screen.Screen) *PlannerScreen {
	topic := components.NewTextInput("What do you want to learn?", 80)

	return &PlannerScreen{
		generator:   generator,
		acct:        acct,
		timelineFor: timelineFor,
		dashboard:   dashboard,
		topic:       topic,
		durations:   plan.Durations(),
		intensites:  plan.Intensities(),
		durIdx:      1, // 1 Week
		intIdx:      1, // Medium
	}
}

func (p *PlannerScreen) Title() string {
	return "Planner"
}

func (p *PlannerScreen) Init() tea.Cmd {
	return p.topic.Focus()
}

func (p *PlannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		p.generating = false
		timeline := p.timelineFor(msg.Plan)
		return p, func() tea.Msg {
			return router.PushScreenMsg{Screen: timeline}
		}

	case planFailedMsg:
		p.generating = false
		var rejected *plan.RejectedTopicError
		if errors.As(msg.Err, &rejected) {
			p.errMsg = rejected.Reason
		} else {
			p.errMsg = "Failed to generate study plan. Please try again."
		}
		return p, nil

	case spinTickMsg:
		if !p.generating {
			return p, nil
		}
		p.spinFrame++
		return p, spinTick()

	case tea.KeyMsg:
		if p.generating {
			return p, nil
		}
		return p.handleKey(msg)
	}

	if p.row == rowTopic {
		var cmd tea.Cmd
		p.topic, cmd = p.topic.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlannerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "tab", "down":
		return p.moveRow(1)
	case "shift+tab", "up":
		return p.moveRow(-1)
	case "left":
		p.cycle(-1)
		return p, nil
	case "right":
		p.cycle(1)
		return p, nil
	case "enter":
		if p.row == rowGenerate {
			return p, p.generate()
		}
		return p.moveRow(1)
	}

	if p.row == rowTopic {
		var cmd tea.Cmd
		p.topic, cmd = p.topic.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlannerScreen) moveRow(delta int) (screen.Screen, tea.Cmd) {
	p.row = (p.row + delta + rowCount) % rowCount
	if p.row == rowTopic {
		return p, p.topic.Focus()
	}
	p.topic.Blur()
	return p, nil
}

func (p *PlannerScreen) cycle(delta int) {
	switch p.row {
	case rowDuration:
		p.durIdx = (p.durIdx + delta + len(p.durations)) % len(p.durations)
	case rowIntensity:
		p.intIdx = (p.intIdx + delta + len(p.intensites)) % len(p.intensites)
	}
}

func (p *PlannerScreen) generate() tea.Cmd {
	topic := strings.TrimSpace(p.topic.Value())
	if topic == "" {
		p.errMsg = "Enter a topic first."
		return nil
	}

	if !p.acct.CanGeneratePlan(time.Now()) {
		var reason string
		if p.acct.PlanCompleted {
			reason = "You completed your plan! Upgrade to Pro to start a new one."
		} else {
			reason = fmt.Sprintf("Your %d-day free trial has expired. Please upgrade to Pro to continue.", account.TrialDays)
		}
		dash := p.dashboard(reason)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: dash}
		}
	}

	p.generating = true
	p.errMsg = ""
	duration := p.durations[p.durIdx]
	intensity := p.intensites[p.intIdx]

	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		generated, err := p.generator.Generate(ctx, topic, duration, intensity)
		if err != nil {
			return planFailedMsg{Err: err}
		}
		return planReadyMsg{Plan: generated}
	}
	return tea.Batch(fetch, spinTick())
}

func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinTickMsg(t)
	})
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (p *PlannerScreen) View(width, height int) string {
	if p.generating {
		frame := spinnerFrames[p.spinFrame%len(spinnerFrames)]
		content := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render(frame+" Crafting your study plan"),
			"",
			theme.Subtitle.Render("Structuring periods, days, and milestones..."),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	title := theme.Title.Render("Plan Your Learning")

	rows := []string{
		p.renderRow(rowTopic, "Topic", p.topic.View()),
		p.renderRow(rowDuration, "Duration", p.renderCycle(string(p.durations[p.durIdx]), p.row == rowDuration)),
		p.renderRow(rowIntensity, "Intensity", p.renderCycle(string(p.intensites[p.intIdx]), p.row == rowIntensity)),
		"",
		components.NewButton("Generate Plan", p.row == rowGenerate, nil).View(),
	}

	card := theme.Card.Width(min(72, width-4)).Render(strings.Join(rows, "\n"))

	sections := []string{title, "", card}
	if p.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(wrap(p.errMsg, min(70, width-6))))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PlannerScreen) renderRow(row int, label, value string) string {
	l := theme.Hint.Render(label)
	if p.row == row {
		l = theme.Selected.Render(label)
	}
	return l + "\n" + value + "\n"
}

func (p *PlannerScreen) renderCycle(value string, active bool) string {
	if active {
		return theme.Selected.Render("◀ " + value + " ▶")
	}
	return theme.Body.Render("  " + value)
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// KeyHints implements screen.KeyHintProvider.
func (p *PlannerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
