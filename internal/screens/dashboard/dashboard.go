package dashboard

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/account"
	"github.com/abhisek/studygen/internal/router"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/store"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// Tab selects a dashboard pane.
type Tab int

const (
	TabProfile Tab = iota
	TabBilling
)

// DashboardScreen manages the learner's profile and membership.
type DashboardScreen struct {
	accounts store.AccountRepo
	settings store.SettingsRepo
	acct     *account.Account
	signOut  func() screen.Screen

	tab     Tab
	profile profileForm
	billing billingForm

	notice string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard. billingMessage, when non-empty, opens the
// billing tab with that message shown (the upgrade prompt path).
// signOut builds the screen to switch to after logging out.
func New(accounts store.AccountRepo, settings store.SettingsRepo, acct *account.Account, billingMessage string, signOut func() screen.Screen) *DashboardScreen {
	d := &DashboardScreen{
		accounts: accounts,
		settings: settings,
		acct:     acct,
		signOut:  signOut,
		profile:  newProfileForm(acct),
		billing:  newBillingForm(),
	}
	if billingMessage != "" {
		d.tab = TabBilling
		d.notice = billingMessage
	}
	return d
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	if d.tab == TabProfile {
		return d.profile.Focus()
	}
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+t":
			if d.tab == TabProfile {
				d.tab = TabBilling
				d.profile.Blur()
				return d, nil
			}
			d.tab = TabProfile
			return d, d.profile.Focus()

		case "ctrl+e":
			d.toggleTheme()
			return d, nil

		case "ctrl+o":
			return d, d.logout()
		}
	}

	var cmd tea.Cmd
	if d.tab == TabProfile {
		cmd = d.profile.Update(msg, d.acct, d.accounts, &d.notice)
	} else {
		cmd = d.billing.Update(msg, d.acct, d.accounts, &d.notice)
	}
	return d, cmd
}

func (d *DashboardScreen) toggleTheme() {
	variant := theme.VariantEmerald
	if theme.Variant() == theme.VariantEmerald {
		variant = theme.VariantIndigo
	}
	theme.Apply(variant)
	if err := d.settings.Set(context.Background(), store.SettingTheme, variant); err != nil {
		d.notice = "Theme changed for this session only: " + err.Error()
		return
	}
	d.notice = "Theme: " + variant + " accents."
}

func (d *DashboardScreen) logout() tea.Cmd {
	// Sign-out wipes the local account; plan state lives in memory and
	// dies with the session.
	_ = d.accounts.Delete(context.Background())
	*d.acct = account.Account{}
	next := d.signOut()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	tabs := d.renderTabs()

	var body string
	if d.tab == TabProfile {
		body = d.profile.View(d.acct, width)
	} else {
		body = d.billing.View(d.acct, width)
	}

	sections := []string{tabs, ""}
	if d.notice != "" {
		sections = append(sections, theme.Badge.Render(" ! ")+" "+theme.Body.Render(d.notice), "")
	}
	sections = append(sections, body)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Padding(1, 3).Render(content)
}

func (d *DashboardScreen) renderTabs() string {
	render := func(label string, active bool) string {
		if active {
			return theme.ButtonActive.Render(" " + label + " ")
		}
		return theme.ButtonInactive.Render(" " + label + " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		render("Profile", d.tab == TabProfile),
		"  ",
		render("Billing", d.tab == TabBilling),
	)
}

// KeyHints implements screen.KeyHintProvider.
func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+T", Description: "Switch tab"},
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+E", Description: "Theme"},
		{Key: "Ctrl+O", Description: "Log out"},
		{Key: "Esc", Description: "Back"},
	}
}

// statusBadge renders the membership banner shared by both tabs.
func statusBadge(acct *account.Account) string {
	if acct.IsPremium {
		return theme.Correct.Render("PRO MEMBERSHIP · ACTIVE")
	}
	trial := acct.Trial(time.Now())
	if trial.Active {
		return theme.Selected.Render(fmt.Sprintf("%d DAYS LEFT IN FREE TRIAL", trial.RemainingDays))
	}
	return theme.Incorrect.Render("FREE TRIAL · EXPIRED")
}
