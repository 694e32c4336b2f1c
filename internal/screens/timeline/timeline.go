package timeline

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/plan"
	"github.com/abhisek/studygen/internal/router"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// TimelineScreen lists the generated plan day by day. Days open study
// sessions; the final exam sits at the end of the timeline.
type TimelineScreen struct {
	plan  *plan.StudyPlan
	items []plan.TimelineItem

	dayFor  func(plan.TimelineItem) screen.Screen
	examFor func(topic string) screen.Screen

	// cursor ranges over items plus one trailing exam entry.
	cursor int
	scroll int
}

var _ screen.Screen = (*TimelineScreen)(nil)

// New creates the timeline for a plan.
func New(p *plan.StudyPlan, dayFor func(plan.TimelineItem) screen.Screen, examFor func(string) screen.Screen) *TimelineScreen {
	return &TimelineScreen{
		plan:    p,
		items:   plan.Flatten(p),
		dayFor:  dayFor,
		examFor: examFor,
	}
}

func (t *TimelineScreen) Title() string {
	return t.plan.Title
}

func (t *TimelineScreen) Init() tea.Cmd {
	return nil
}

// entryCount is days plus the final exam row.
func (t *TimelineScreen) entryCount() int {
	return len(t.items) + 1
}

func (t *TimelineScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < t.entryCount()-1 {
			t.cursor++
		}
	case "g":
		t.cursor = 0
	case "G":
		t.cursor = t.entryCount() - 1
	case "enter":
		return t, t.open()
	}

	return t, nil
}

func (t *TimelineScreen) open() tea.Cmd {
	if t.cursor == len(t.items) {
		exam := t.examFor(t.plan.Title)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: exam}
		}
	}
	day := t.dayFor(t.items[t.cursor])
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: day}
	}
}

func (t *TimelineScreen) View(width, height int) string {
	var b strings.Builder

	overview := theme.Hint.Width(min(90, width-6)).Render(t.plan.Overview)
	b.WriteString(overview + "\n\n")

	// Visible window follows the cursor.
	linesPerEntry := 2
	visible := (height - lipgloss.Height(overview) - 3) / linesPerEntry
	if visible < 3 {
		visible = 3
	}
	if t.cursor < t.scroll {
		t.scroll = t.cursor
	}
	if t.cursor >= t.scroll+visible {
		t.scroll = t.cursor - visible + 1
	}

	lastPeriod := ""
	for i := t.scroll; i < t.entryCount() && i < t.scroll+visible; i++ {
		if i < len(t.items) {
			item := t.items[i]
			if item.Period != lastPeriod {
				b.WriteString(theme.Badge.Render(item.Period) + " " + theme.Hint.Render(item.Focus) + "\n")
				lastPeriod = item.Period
			}
			b.WriteString(t.renderDay(item, i == t.cursor))
		} else {
			b.WriteString(t.renderExamEntry(i == t.cursor))
		}
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (t *TimelineScreen) renderDay(item plan.TimelineItem, selected bool) string {
	label := fmt.Sprintf("%-8s %s", item.Label(), item.Day.Day)
	meta := fmt.Sprintf("  %d topics · %d activities", len(item.Day.Topics), len(item.Day.Activities))

	if selected {
		return theme.Selected.Render("▸ "+label) + theme.Hint.Render(meta) + "\n"
	}
	return theme.Unselected.Render("  "+label) + theme.Hint.Render(meta) + "\n"
}

func (t *TimelineScreen) renderExamEntry(selected bool) string {
	label := "Final Comprehensive Exam"
	if selected {
		return theme.Selected.Render("▸ 🎓 "+label) + "\n"
	}
	return theme.Unselected.Render("  🎓 "+label) + "\n"
}

// KeyHints implements screen.KeyHintProvider.
func (t *TimelineScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open day"},
		{Key: "Esc", Description: "Back"},
	}
}
