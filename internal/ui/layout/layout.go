// Package layout provides terminal size handling and the shared
// header/content/footer frame used by every screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/ui/theme"
)

const (
	// MinWidth is the minimum terminal width for a usable UI.
	MinWidth = 80
	// MinHeight is the minimum terminal height for a usable UI.
	MinHeight = 24

	// HeaderHeight is the rendered height of the header bar.
	HeaderHeight = 3
	// FooterHeight is the rendered height of the footer bar.
	FooterHeight = 3

	// CompactWidth is the width below which screens should render
	// a denser layout.
	CompactWidth = 100
	// CompactHeight is the height below which screens should render
	// a denser layout.
	CompactHeight = 30
)

// KeyHint pairs a key with a short description for the footer bar.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether the terminal is narrow enough that
// screens should switch to a compact layout.
func IsCompactWidth(width int) bool {
	return width < CompactWidth
}

// IsCompactHeight reports whether the terminal is short enough that
// screens should switch to a compact layout.
func IsCompactHeight(height int) bool {
	return height < CompactHeight
}

// IsTooSmall reports whether the terminal is below the minimum usable size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the height available for screen content after
// the header and footer are accounted for.
func ContentHeight(height int) int {
	h := height - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders a centered message telling the user to
// enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small.\nNeed at least %dx%d.", MinWidth, MinHeight)
	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		theme.Hint.Render(msg))
}

// RenderHeader renders the top bar: app brand and screen title on the
// left, XP total and level on the right.
func RenderHeader(title string, xp, level, width int) string {
	brand := theme.Title.Render("  Lingua")
	screenTitle := theme.Subtitle.Render(title)
	left := brand
	if title != "" {
		left = brand + theme.Hint.Render(" · ") + screenTitle
	}

	right := theme.Body.Render(fmt.Sprintf("✦ %d XP", xp)) +
		theme.Hint.Render("  ") +
		theme.Subtitle.Render(fmt.Sprintf("Lv %d", level)) + "  "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right

	divider := theme.Hint.Render(strings.Repeat("─", max(width, 0)))
	return "\n" + bar + "\n" + divider
}

// RenderFooter renders the bottom bar of key hints.
func RenderFooter(hints []KeyHint, width int) string {
	divider := theme.Hint.Render(strings.Repeat("─", max(width, 0)))

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, theme.Body.Render(h.Key)+" "+theme.Hint.Render(h.Description))
	}
	bar := "  " + strings.Join(parts, theme.Hint.Render("  ·  "))
	if lipgloss.Width(bar) > width {
		bar = bar[:0] + "  " + theme.Hint.Render("? help")
	}

	return divider + "\n" + bar + "\n"
}

// RenderFrame stacks header, content, and footer into a full-terminal view.
// Content is padded or truncated to exactly fill the space between the bars.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := ContentHeight(height)

	lines := strings.Split(content, "\n")
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}
