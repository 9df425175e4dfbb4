package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nkapoor/lingua/internal/ui/layout"
)

// Screen is what the router pushes, pops, and renders. Screens own
// their body only; the chrome around them belongs to the router.
type Screen interface {
	// Init runs once when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the next screen state.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body into the given content area.
	View(width, height int) string

	// Title labels the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
