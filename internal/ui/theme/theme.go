package theme

import (
	"charm.land/lipgloss/v2"
)

// Accent variants selectable from the dashboard. The choice is persisted
// as a device-local setting.
const (
	VariantIndigo  = "indigo"
	VariantEmerald = "emerald"
)

// Color palette — calm, studious indigo with emerald accents
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#8B5CF6") // Violet
	Accent    = lipgloss.Color("#10B981") // Emerald
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#020617") // Near Black
	BgCard    = lipgloss.Color("#0F172A") // Deep Navy
	Border    = lipgloss.Color("#1E293B") // Dark Slate
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Locked     lipgloss.Style
)

// Components
var (
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	Badge          lipgloss.Style
)

var current = VariantIndigo

func init() {
	Apply(VariantIndigo)
}

// Variant returns the name of the active accent variant.
func Variant() string {
	return current
}

// Apply switches the accent palette and rebuilds every derived style.
// Unknown names fall back to the indigo default.
func Apply(variant string) {
	switch variant {
	case VariantEmerald:
		current = VariantEmerald
		Primary = lipgloss.Color("#10B981")   // Emerald
		Secondary = lipgloss.Color("#14B8A6") // Teal
		Accent = lipgloss.Color("#6366F1")    // Indigo
	default:
		current = VariantIndigo
		Primary = lipgloss.Color("#6366F1")   // Indigo
		Secondary = lipgloss.Color("#8B5CF6") // Violet
		Accent = lipgloss.Color("#10B981")    // Emerald
	}
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	Badge = lipgloss.NewStyle().
		Background(Accent).
		Foreground(BgDark).
		Bold(true).
		Padding(0, 1)
}
