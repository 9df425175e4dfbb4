package components

import (
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/ui/theme"
)

// FragmentPicker lets the user rebuild a sentence by picking shuffled
// fragments one at a time. Left/right moves over the remaining pool,
// enter picks the highlighted fragment, backspace returns the last
// picked fragment to the pool.
type FragmentPicker struct {
	Prompt string

	pool     []string
	picked   []string
	cursor   int
	revealed bool
}

// NewFragmentPicker creates a picker over a shuffled copy of fragments.
func NewFragmentPicker(prompt string, fragments []string) FragmentPicker {
	pool := make([]string, len(fragments))
	copy(pool, fragments)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return FragmentPicker{
		Prompt: prompt,
		pool:   pool,
	}
}

// Init returns nil.
func (f FragmentPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input. Input is frozen once revealed.
func (f FragmentPicker) Update(msg tea.Msg) (FragmentPicker, tea.Cmd) {
	if f.revealed {
		return f, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if f.cursor > 0 {
			f.cursor--
		}
	case "right", "l":
		if f.cursor < len(f.pool)-1 {
			f.cursor++
		}
	case "enter", " ":
		if len(f.pool) > 0 {
			f.picked = append(f.picked, f.pool[f.cursor])
			f.pool = append(f.pool[:f.cursor], f.pool[f.cursor+1:]...)
			if f.cursor >= len(f.pool) && f.cursor > 0 {
				f.cursor = len(f.pool) - 1
			}
		}
	case "backspace":
		if len(f.picked) > 0 {
			last := f.picked[len(f.picked)-1]
			f.picked = f.picked[:len(f.picked)-1]
			f.pool = append(f.pool, last)
		}
	}

	return f, nil
}

// Picked returns the fragments chosen so far, in order.
func (f FragmentPicker) Picked() []string {
	out := make([]string, len(f.picked))
	copy(out, f.picked)
	return out
}

// Done reports whether every fragment has been placed.
func (f FragmentPicker) Done() bool {
	return len(f.pool) == 0
}

// Reveal freezes the picker after grading.
func (f FragmentPicker) Reveal() FragmentPicker {
	f.revealed = true
	return f
}

// Revealed reports whether the picker is frozen.
func (f FragmentPicker) Revealed() bool {
	return f.revealed
}

// View renders the picked sequence above the remaining pool.
func (f FragmentPicker) View() string {
	var b strings.Builder
	if f.Prompt != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(f.Prompt))
		b.WriteString("\n\n")
	}

	sentence := strings.Join(f.picked, " ")
	if sentence == "" {
		sentence = theme.Hint.Render("(nothing placed yet)")
	} else {
		sentence = theme.Subtitle.Render(sentence)
	}
	b.WriteString("  " + sentence + "\n\n")

	if len(f.pool) == 0 {
		b.WriteString(theme.Hint.Render("  all fragments placed"))
		b.WriteString("\n")
		return b.String()
	}

	var pool []string
	for i, frag := range f.pool {
		if i == f.cursor && !f.revealed {
			pool = append(pool, theme.Selected.Render(frag))
		} else {
			pool = append(pool, theme.Unselected.Render(frag))
		}
	}
	b.WriteString("  " + strings.Join(pool, " ") + "\n")

	return b.String()
}
