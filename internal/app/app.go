package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/account"
	"github.com/abhisek/studygen/internal/codelab"
	"github.com/abhisek/studygen/internal/daysession"
	"github.com/abhisek/studygen/internal/exam"
	"github.com/abhisek/studygen/internal/llm"
	"github.com/abhisek/studygen/internal/plan"
	"github.com/abhisek/studygen/internal/quiz"
	"github.com/abhisek/studygen/internal/router"
	"github.com/abhisek/studygen/internal/screen"
	codelabscreen "github.com/abhisek/studygen/internal/screens/codelab"
	"github.com/abhisek/studygen/internal/screens/dashboard"
	dayscreen "github.com/abhisek/studygen/internal/screens/day"
	examscreen "github.com/abhisek/studygen/internal/screens/exam"
	"github.com/abhisek/studygen/internal/screens/planner"
	quizscreen "github.com/abhisek/studygen/internal/screens/quiz"
	"github.com/abhisek/studygen/internal/screens/signin"
	"github.com/abhisek/studygen/internal/screens/timeline"
	"github.com/abhisek/studygen/internal/store"
	"github.com/abhisek/studygen/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Store    *store.Store
	Provider llm.Provider

	// Acct is the loaded account, nil when no one has signed in yet.
	Acct *account.Account
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	acct   *account.Account
	width  int
	height int
}

// services bundles the generation services shared by screen factories.
type services struct {
	plans     *plan.Generator
	days      *daysession.DetailsService
	quizzes   *quiz.Service
	exams     *exam.Service
	evaluator *codelab.Evaluator
	opener    *daysession.Opener
}

func newAppModel(opts Options) AppModel {
	acct := opts.Acct
	signedIn := acct != nil
	if acct == nil {
		acct = &account.Account{}
	}

	svcs := &services{
		plans:     plan.NewGenerator(opts.Provider, plan.DefaultConfig()),
		days:      daysession.NewDetailsService(opts.Provider, daysession.DefaultConfig()),
		quizzes:   quiz.NewService(opts.Provider, quiz.DefaultConfig()),
		exams:     exam.NewService(opts.Provider, exam.DefaultConfig()),
		evaluator: codelab.NewEvaluator(opts.Provider, codelab.DefaultConfig()),
		opener:    &daysession.Opener{},
	}

	var initial screen.Screen
	plannerFor := func() screen.Screen {
		return newPlannerScreen(opts.Store, acct, svcs)
	}
	if signedIn {
		initial = plannerFor()
	} else {
		initial = signin.New(opts.Store.AccountRepo(), acct, plannerFor)
	}

	return AppModel{
		router: router.New(initial),
		acct:   acct,
	}
}

// newPlannerScreen builds the planner with its whole screen graph
// hanging off it through factories.
func newPlannerScreen(st *store.Store, acct *account.Account, svcs *services) screen.Screen {
	codelabFor := func(problem string) screen.Screen {
		return codelabscreen.New(svcs.evaluator, problem)
	}

	quizFor := func(dayKey string, topics []string) screen.Screen {
		return quizscreen.New(svcs.quizzes, st.CooldownRepo(), dayKey, topics)
	}

	dayFor := func(item plan.TimelineItem) screen.Screen {
		return dayscreen.New(svcs.days, svcs.opener, item, quizFor, codelabFor)
	}

	examFor := func(topic string) screen.Screen {
		return examscreen.New(svcs.exams, topic, codelabFor, func() {
			// Finishing the course consumes the free generation
			// privilege and drops premium.
			acct.CompletePlan()
			_ = st.AccountRepo().Save(context.Background(), acct.Record())
		})
	}

	timelineFor := func(p *plan.StudyPlan) screen.Screen {
		return timeline.New(p, dayFor, examFor)
	}

	dashboardFor := func(billingMessage string) screen.Screen {
		return dashboard.New(st.AccountRepo(), st.SettingsRepo(), acct, billingMessage, func() screen.Screen {
			return signin.New(st.AccountRepo(), acct, func() screen.Screen {
				return newPlannerScreen(st, acct, svcs)
			})
		})
	}

	return planner.New(svcs.plans, acct, timelineFor, dashboardFor)
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.membershipStatus(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// membershipStatus renders the header's right slot.
func (m AppModel) membershipStatus() string {
	if m.acct == nil || m.acct.JoinedAt.IsZero() {
		return ""
	}
	if m.acct.IsPremium {
		return "PRO"
	}
	trial := m.acct.Trial(time.Now())
	if trial.Active {
		return fmt.Sprintf("TRIAL %dd", trial.RemainingDays)
	}
	return "EXPIRED"
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
