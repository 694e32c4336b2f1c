package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studygen/internal/ui/layout"
)

// Screen is one view in the navigation stack.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus a
	// follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body. Header and footer are drawn by the
	// app around it.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen override the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
