package dashboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studygen/internal/account"
	"github.com/abhisek/studygen/internal/store"
	"github.com/abhisek/studygen/internal/ui/components"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// billingStep is the payment flow phase.
type billingStep int

const (
	stepOverview billingStep = iota
	stepCard
	stepOTP
)

const cardFieldCount = 3

// billingForm is the billing tab: membership card, payment form, and
// the OTP confirmation step. The OTP is simulated; any 4+ digit code
// confirms.
type billingForm struct {
	step billingStep

	number components.TextInput
	expiry components.TextInput
	cvv    components.TextInput
	otp    components.TextInput
	focus  int

	errMsg string
}

func newBillingForm() billingForm {
	number := components.NewTextInput("1234 5678 9012 3456", 19)
	number.Formatter = account.FormatCardNumber

	expiry := components.NewTextInput("MM/YY", 5)
	expiry.Formatter = account.FormatExpiry

	cvv := components.NewTextInput("123", 3)
	cvv.Formatter = account.FormatCVV

	otp := components.NewTextInput("One-time code", 8)

	return billingForm{
		number: number,
		expiry: expiry,
		cvv:    cvv,
		otp:    otp,
	}
}

func (b *billingForm) Update(msg tea.Msg, acct *account.Account, accounts store.AccountRepo, notice *string) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b.forward(msg)
	}

	switch b.step {
	case stepOverview:
		if kmsg.String() == "enter" && !acct.IsPremium {
			b.step = stepCard
			b.focus = 0
			b.errMsg = ""
			return b.number.Focus()
		}
		return nil

	case stepCard:
		switch kmsg.String() {
		case "tab", "down":
			return b.cycleFocus(1)
		case "shift+tab", "up":
			return b.cycleFocus(-1)
		case "enter":
			return b.initiatePayment(notice)
		}
		return b.forward(msg)

	case stepOTP:
		if kmsg.String() == "enter" {
			return b.confirmPayment(acct, accounts, notice)
		}
		return b.forward(msg)
	}
	return nil
}

func (b *billingForm) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch b.step {
	case stepCard:
		switch b.focus {
		case 0:
			b.number, cmd = b.number.Update(msg)
		case 1:
			b.expiry, cmd = b.expiry.Update(msg)
		case 2:
			b.cvv, cmd = b.cvv.Update(msg)
		}
	case stepOTP:
		b.otp, cmd = b.otp.Update(msg)
	}
	return cmd
}

func (b *billingForm) cycleFocus(delta int) tea.Cmd {
	b.focus = (b.focus + delta + cardFieldCount) % cardFieldCount
	b.number.Blur()
	b.expiry.Blur()
	b.cvv.Blur()
	switch b.focus {
	case 0:
		return b.number.Focus()
	case 1:
		return b.expiry.Focus()
	default:
		return b.cvv.Focus()
	}
}

func (b *billingForm) initiatePayment(notice *string) tea.Cmd {
	card := account.CardDetails{
		Number: b.number.Value(),
		Expiry: b.expiry.Value(),
		CVV:    b.cvv.Value(),
	}
	if err := account.ValidateCard(card, time.Now()); err != nil {
		b.errMsg = err.Error()
		return nil
	}

	b.errMsg = ""
	b.step = stepOTP
	*notice = "Verification code sent to your mobile: 4826"
	return b.otp.Focus()
}

func (b *billingForm) confirmPayment(acct *account.Account, accounts store.AccountRepo, notice *string) tea.Cmd {
	if err := account.ValidateOTP(b.otp.Value()); err != nil {
		b.errMsg = err.Error()
		return nil
	}

	acct.ActivatePremium()
	if err := accounts.Save(context.Background(), acct.Record()); err != nil {
		b.errMsg = "Could not save the upgrade: " + err.Error()
		return nil
	}

	b.step = stepOverview
	b.errMsg = ""
	b.number.Reset()
	b.expiry.Reset()
	b.cvv.Reset()
	b.otp.Reset()
	*notice = "Premium plan activated successfully!"
	return nil
}

func (b *billingForm) View(acct *account.Account, width int) string {
	cw := min(64, width-8)
	var sections []string

	sections = append(sections, theme.Card.Width(cw).Render(
		statusBadge(acct)+"\n"+theme.Hint.Render("Card holder: "+acct.Name)))

	switch b.step {
	case stepOverview:
		if acct.IsPremium {
			sections = append(sections, "", theme.Hint.Render("You have unlimited plan generation."))
		} else {
			sections = append(sections, "",
				components.NewButton("Upgrade to Pro", true, nil).View(),
				theme.Hint.Render("Press Enter to add a payment method"))
		}

	case stepCard:
		form := lipgloss.JoinVertical(lipgloss.Left,
			b.fieldLabel("Card Number", 0), b.number.View(), "",
			b.fieldLabel("Expiry Date", 1), b.expiry.View(), "",
			b.fieldLabel("CVV", 2), b.cvv.View(),
		)
		sections = append(sections, "", theme.Card.Width(cw).Render(form))

	case stepOTP:
		form := lipgloss.JoinVertical(lipgloss.Left,
			theme.Hint.Render("Enter the verification code"),
			b.otp.View(),
		)
		sections = append(sections, "", theme.Card.Width(cw).Render(form))
	}

	if b.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(b.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b *billingForm) fieldLabel(label string, field int) string {
	if b.focus == field {
		return theme.Selected.Render(label)
	}
	return theme.Hint.Render(label)
}
