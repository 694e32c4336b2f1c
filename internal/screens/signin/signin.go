package signin

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/account"
	"github.com/abhisek/studygen/internal/router"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/store"
	"github.com/abhisek/studygen/internal/ui/components"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

const fieldCount = 2

// SignInScreen collects name and email and creates the local account.
// Signing in starts the trial clock.
type SignInScreen struct {
	accounts store.AccountRepo
	acct     *account.Account
	next     func() screen.Screen

	name   components.TextInput
	email  components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*SignInScreen)(nil)

// New creates the sign-in screen. acct is the shared account slot the
// rest of the app reads; next builds the screen shown after sign-in.
func New(accounts store.AccountRepo, acct *account.Account, next func() screen.Screen) *SignInScreen {
	name := components.NewTextInput("Your name", 40)
	email := components.NewTextInput("you@example.com", 60)
	email.Blur()

	return &SignInScreen{
		accounts: accounts,
		acct:     acct,
		next:     next,
		name:     name,
		email:    email,
	}
}

func (s *SignInScreen) Title() string {
	return "Sign In"
}

func (s *SignInScreen) Init() tea.Cmd {
	return s.name.Focus()
}

func (s *SignInScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "down", "up":
			if kmsg.String() == "shift+tab" || kmsg.String() == "up" {
				s.focus = (s.focus + fieldCount - 1) % fieldCount
			} else {
				s.focus = (s.focus + 1) % fieldCount
			}
			if s.focus == 0 {
				s.email.Blur()
				return s, s.name.Focus()
			}
			s.name.Blur()
			return s, s.email.Focus()

		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.email, cmd = s.email.Update(msg)
	}
	return s, cmd
}

func (s *SignInScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	email := strings.TrimSpace(s.email.Value())

	if name == "" {
		s.errMsg = "Please enter your name."
		return nil
	}
	if !strings.Contains(email, "@") {
		s.errMsg = "Please enter a valid email address."
		return nil
	}

	*s.acct = account.Account{
		Name:     name,
		Email:    email,
		JoinedAt: time.Now(),
	}
	if err := s.accounts.Save(context.Background(), s.acct.Record()); err != nil {
		s.errMsg = "Could not save your profile: " + err.Error()
		return nil
	}

	nextScreen := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func (s *SignInScreen) View(width, height int) string {
	title := theme.Title.Render("Welcome to StudyGen")
	sub := theme.Subtitle.Render("AI-crafted study plans, one day at a time")

	nameLabel := theme.Hint.Render("Name")
	emailLabel := theme.Hint.Render("Email")

	form := lipgloss.JoinVertical(lipgloss.Left,
		nameLabel,
		s.name.View(),
		"",
		emailLabel,
		s.email.View(),
	)

	card := theme.Card.Width(min(64, width-4)).Render(form)

	sections := []string{title, sub, "", card}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}
	sections = append(sections, "", theme.Hint.Render("3-day free trial starts when you sign in"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints implements screen.KeyHintProvider.
func (s *SignInScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
