package day

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/daysession"
	"github.com/abhisek/studygen/internal/plan"
	"github.com/abhisek/studygen/internal/quiz"
	"github.com/abhisek/studygen/internal/router"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// DayScreen shows one study day: overview, video searches, and the
// gated practice problems and quiz. The gate opens when the learner
// marks the materials reviewed.
type DayScreen struct {
	svc    *daysession.DetailsService
	opener *daysession.Opener

	session *daysession.Session
	gen     uint64

	quizFor    func(dayKey string, topics []string) screen.Screen
	codelabFor func(problem string) screen.Screen

	cursor    int
	spinFrame int
}

var _ screen.Screen = (*DayScreen)(nil)

// New opens a fresh session for the day and starts the materials fetch.
func New(svc *daysession.DetailsService, opener *daysession.Opener, item plan.TimelineItem, quizFor func(string, []string) screen.Screen, codelabFor func(string) screen.Screen) *DayScreen {
	session, gen := opener.Open(item)
	return &DayScreen{
		svc:        svc,
		opener:     opener,
		session:    session,
		gen:        gen,
		quizFor:    quizFor,
		codelabFor: codelabFor,
	}
}

func (d *DayScreen) Title() string {
	return d.session.Title()
}

func (d *DayScreen) Init() tea.Cmd {
	return tea.Batch(d.fetch(), spinTick())
}

func (d *DayScreen) fetch() tea.Cmd {
	gen := d.gen
	item := d.session.Item
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		details, err := d.svc.Fetch(ctx, item)
		return detailsMsg{Gen: gen, Details: details, Err: err}
	}
}

func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinTickMsg(t)
	})
}

func (d *DayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailsMsg:
		// A result from a previous open of this or another day.
		if !d.opener.Current(msg.Gen) {
			return d, nil
		}
		if msg.Err != nil {
			d.session.SetError(msg.Err)
		} else {
			d.session.SetDetails(msg.Details)
		}
		return d, nil

	case spinTickMsg:
		if !d.session.Loading() {
			return d, nil
		}
		d.spinFrame++
		return d, spinTick()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *DayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		if d.session.Err != nil {
			// Reopen to get a fresh generation.
			d.session, d.gen = d.opener.Open(d.session.Item)
			return d, tea.Batch(d.fetch(), spinTick())
		}

	case "m":
		if d.session.Details != nil {
			d.session.Ack()
		}

	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if n := d.problemCount(); d.cursor < n-1 {
			d.cursor++
		}

	case "enter":
		if !d.session.CanAccessGatedContent() {
			return d, nil
		}
		problems := d.session.Details.PracticeProblems
		if d.cursor >= len(problems) {
			return d, nil
		}
		lab := d.codelabFor(problems[d.cursor])
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: lab}
		}

	case "q":
		if !d.session.CanAccessGatedContent() {
			return d, nil
		}
		title := d.session.Title()
		qs := d.quizFor(quiz.DayKey(title), []string{title})
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: qs}
		}
	}

	return d, nil
}

func (d *DayScreen) problemCount() int {
	if d.session.Details == nil {
		return 0
	}
	return len(d.session.Details.PracticeProblems)
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (d *DayScreen) View(width, height int) string {
	if d.session.Loading() {
		frame := spinnerFrames[d.spinFrame%len(spinnerFrames)]
		content := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render(frame+" Curating resources..."),
			"",
			theme.Subtitle.Render("Gathering concepts, videos, and practice work"),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	if d.session.Err != nil {
		content := lipgloss.JoinVertical(lipgloss.Center,
			theme.Incorrect.Render("Could not load study materials."),
			"",
			theme.Hint.Render("Press r to retry, Esc to go back"),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	details := d.session.Details
	cw := min(100, width-6)
	var sections []string

	sections = append(sections,
		theme.Selected.Render("Concept Overview"),
		theme.Body.Width(cw).Render(details.Description),
	)

	if len(details.YouTubeQueries) > 0 {
		var vids strings.Builder
		for _, q := range details.YouTubeQueries {
			vids.WriteString(theme.Body.Render("· "+q) + "\n")
			vids.WriteString(theme.Hint.Render("  "+daysession.YouTubeSearchURL(q)) + "\n")
		}
		sections = append(sections, "", theme.Selected.Render("Video Searches"), strings.TrimRight(vids.String(), "\n"))
	}

	sections = append(sections, "", d.renderGated(cw))

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().Padding(1, 3).Render(content)
}

func (d *DayScreen) renderGated(cw int) string {
	if !d.session.Reviewed() {
		return theme.Card.Width(cw).Render(
			theme.Locked.Render("🔒 Practice problems and quiz are locked.") + "\n" +
				theme.Hint.Render("Finished your review? Press m to mark this session reviewed."))
	}

	var b strings.Builder
	b.WriteString(theme.Selected.Render("Practice Problems") + "\n")
	for i, p := range d.session.Details.PracticeProblems {
		line := fmt.Sprintf("%d. %s", i+1, p)
		if i == d.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n" + theme.Hint.Render("Enter opens the selected problem in the playground · q starts the quiz"))
	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

// KeyHints implements screen.KeyHintProvider.
func (d *DayScreen) KeyHints() []layout.KeyHint {
	if !d.session.Reviewed() {
		return []layout.KeyHint{
			{Key: "m", Description: "Mark reviewed"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select problem"},
		{Key: "Enter", Description: "Open playground"},
		{Key: "q", Description: "Quiz"},
		{Key: "Esc", Description: "Back"},
	}
}
