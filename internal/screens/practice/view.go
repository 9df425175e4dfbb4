package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/exercise"
	sess "github.com/nkapoor/lingua/internal/session"
	"github.com/nkapoor/lingua/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.errMsg != "" {
		return renderError(width, p.errMsg)
	}
	if p.runner == nil {
		return renderLoading(width)
	}
	if p.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if p.showingFeedback {
		return p.renderFeedback(width)
	}
	return p.renderExercise(width)
}

// renderExercise renders the active exercise with its input widget.
func (p *PracticeScreen) renderExercise(width int) string {
	r := p.runner
	ex := r.Current()

	var b strings.Builder

	// Status line: position, score, timer.
	mins := p.elapsed / 60
	secs := p.elapsed % 60

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", p.category.DisplayName()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Exercise %d/%d   %d pts   %d:%02d",
			r.Cursor()+1, r.Count(), r.Score(), mins, secs))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Instruction.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(ex.Prompt()))
	b.WriteString("\n\n")

	// Kind-specific body.
	if body := exerciseBody(ex); body != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(body))
		b.WriteString("\n\n")
	}

	// Input widget.
	switch p.widget {
	case widgetOptions:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.options.View()))
	case widgetText:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + p.input.View()))
	case widgetFragments:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.picker.View()))
	}

	// Hint.
	if p.hintVisible {
		if hint := ex.Hint(); hint != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render(theme.Hint.Render("Hint: " + hint)))
		}
	}

	return b.String()
}

// exerciseBody returns the sentence material shown between the prompt
// and the input widget, when the kind has any.
func exerciseBody(ex exercise.Exercise) string {
	switch e := ex.(type) {
	case *exercise.TrueFalse:
		return "\"" + e.Statement + "\""
	case *exercise.FillBlank:
		return e.Text
	case *exercise.ErrorIdentification:
		if e.Sentence != "" {
			return "\"" + e.Sentence + "\""
		}
	}
	return ""
}

// renderFeedback renders the graded overlay after a submission.
func (p *PracticeScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if p.lastVerdict.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
		if !p.lastVerdict.First {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("(no points for retries)"))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if answer := correctAnswerText(p.runner); answer != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Correct answer: " + answer))
		}
	}

	b.WriteString("\n\n")

	if exp := p.lastVerdict.Explanation; exp != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(exp)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// correctAnswerText renders the expected answer for the feedback view.
func correctAnswerText(r *sess.Runner) string {
	switch e := r.Current().(type) {
	case *exercise.MultipleChoice:
		return e.Answer
	case *exercise.TrueFalse:
		return e.Answer
	case *exercise.FillBlank:
		if len(e.Answers) > 0 {
			return e.Answers[0]
		}
	case *exercise.Reorder:
		return e.Sentence
	case *exercise.ErrorIdentification:
		for _, o := range e.Options {
			if o.IsError {
				return o.Text
			}
		}
	}
	return ""
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End practice early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far are kept; unanswered exercises score nothing."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end now"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing exercises...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
