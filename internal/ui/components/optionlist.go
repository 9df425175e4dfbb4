package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/ui/theme"
)

// Option is a single selectable entry in an OptionList. Key is the
// value reported on selection; Label is what the user sees. For plain
// multiple choice the two are the same string.
type Option struct {
	Key   string
	Label string
}

// OptionList is a keyboard-driven selector used for multiple choice,
// true/false, and error identification answers. Grading happens
// elsewhere; after the answer is checked, call Reveal to color the
// options.
type OptionList struct {
	Prompt   string
	Options  []Option
	Selected int

	revealed   bool
	chosen     int
	correctKey string
}

// NewOptionList creates a new option list with the first option selected.
func NewOptionList(prompt string, options []Option) OptionList {
	return OptionList{
		Prompt:  prompt,
		Options: options,
		chosen:  -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection is frozen once revealed.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	}

	return o, nil
}

// SelectedKey returns the key of the currently highlighted option.
func (o OptionList) SelectedKey() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected].Key
}

// Reveal freezes the component and records which option was correct
// so View can color the outcome.
func (o OptionList) Reveal(correctKey string) OptionList {
	o.revealed = true
	o.chosen = o.Selected
	o.correctKey = correctKey
	return o
}

// Revealed reports whether the outcome has been shown.
func (o OptionList) Revealed() bool {
	return o.revealed
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	if o.Prompt != "" {
		s = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"
	}

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabel(i), opt.Label)

		if o.revealed {
			switch {
			case opt.Key == o.correctKey:
				s += theme.Correct.Render(line) + "\n"
			case i == o.chosen:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
