package dashboard

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/account"
	"github.com/abhisek/studygen/internal/store"
	"github.com/abhisek/studygen/internal/ui/components"
	"github.com/abhisek/studygen/internal/ui/theme"
)

const profileFieldCount = 4

// profileForm is the profile tab: identity fields plus an optional
// password change with a live requirements checklist.
type profileForm struct {
	name     components.TextInput
	email    components.TextInput
	password components.TextInput
	confirm  components.TextInput
	focus    int

	errMsg string
}

func newProfileForm(acct *account.Account) profileForm {
	name := components.NewTextInput("Name", 40)
	name.SetValue(acct.Name)

	email := components.NewTextInput("Email", 60)
	email.SetValue(acct.Email)

	password := components.NewPasswordInput("New password (optional)")
	confirm := components.NewPasswordInput("Confirm new password")

	return profileForm{
		name:     name,
		email:    email,
		password: password,
		confirm:  confirm,
	}
}

func (p *profileForm) Focus() tea.Cmd {
	return p.focused().Focus()
}

func (p *profileForm) Blur() {
	p.focused().Blur()
}

func (p *profileForm) focused() *components.TextInput {
	switch p.focus {
	case 0:
		return &p.name
	case 1:
		return &p.email
	case 2:
		return &p.password
	default:
		return &p.confirm
	}
}

func (p *profileForm) Update(msg tea.Msg, acct *account.Account, accounts store.AccountRepo, notice *string) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return p.cycleFocus(1)
		case "shift+tab", "up":
			return p.cycleFocus(-1)
		case "enter":
			p.save(acct, accounts, notice)
			return nil
		}
	}

	field := p.focused()
	updated, cmd := field.Update(msg)
	*field = updated
	return cmd
}

func (p *profileForm) cycleFocus(delta int) tea.Cmd {
	p.focused().Blur()
	p.focus = (p.focus + delta + profileFieldCount) % profileFieldCount
	return p.focused().Focus()
}

func (p *profileForm) save(acct *account.Account, accounts store.AccountRepo, notice *string) {
	name := strings.TrimSpace(p.name.Value())
	email := strings.TrimSpace(p.email.Value())
	if name == "" || !strings.Contains(email, "@") {
		p.errMsg = "Name and a valid email are required."
		return
	}

	pw := p.password.Value()
	if pw != "" || p.confirm.Value() != "" {
		if !account.PasswordStrong(pw) {
			p.errMsg = "New password does not meet security requirements."
			return
		}
		if pw != p.confirm.Value() {
			p.errMsg = "New passwords do not match."
			return
		}
	}

	acct.Name = name
	acct.Email = email
	if err := accounts.Save(context.Background(), acct.Record()); err != nil {
		p.errMsg = "Could not save your profile: " + err.Error()
		return
	}

	p.errMsg = ""
	p.password.Reset()
	p.confirm.Reset()
	*notice = "Profile updated."
}

func (p *profileForm) View(acct *account.Account, width int) string {
	cw := min(64, width-8)

	form := lipgloss.JoinVertical(lipgloss.Left,
		p.fieldLabel("Name", 0), p.name.View(), "",
		p.fieldLabel("Email", 1), p.email.View(), "",
		p.fieldLabel("New Password", 2), p.password.View(), "",
		p.fieldLabel("Confirm Password", 3), p.confirm.View(),
	)

	sections := []string{theme.Card.Width(cw).Render(form)}

	if p.password.Value() != "" {
		sections = append(sections, "", p.renderChecklist())
	}
	if p.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(p.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *profileForm) renderChecklist() string {
	var b strings.Builder
	for _, req := range account.CheckPassword(p.password.Value()) {
		if req.Met {
			b.WriteString(theme.Correct.Render("✓ "+req.Label) + "  ")
		} else {
			b.WriteString(theme.Hint.Render("○ "+req.Label) + "  ")
		}
	}
	return b.String()
}

func (p *profileForm) fieldLabel(label string, field int) string {
	if p.focus == field {
		return theme.Selected.Render(label)
	}
	return theme.Hint.Render(label)
}
