package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	"github.com/nkapoor/lingua/internal/session"
	"github.com/nkapoor/lingua/internal/topics"
	"github.com/nkapoor/lingua/internal/ui/layout"
	"github.com/nkapoor/lingua/internal/ui/theme"
)

// SummaryScreen displays the end-of-session result.
type SummaryScreen struct {
	topic   topics.Topic
	summary session.Summary
	award   progress.Award
	retry   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished (or abandoned) session.
// retry, when non-nil, builds a fresh practice screen over the same
// topic; nil hides the retry option.
func New(topic topics.Topic, summary session.Summary, award progress.Award, retry func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{
		topic:   topic,
		summary: summary,
		award:   award,
		retry:   retry,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Try again"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.retry != nil {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s.retry()}
				}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	title := "Session complete!"
	if !sum.Completed {
		title = "Session ended early"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.topic.Title))
	b.WriteString("\n\n")

	// Duration.
	mins := sum.ElapsedSeconds / 60
	secs := sum.ElapsedSeconds % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Score and accuracy.
	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy()*100)
	statsLine := fmt.Sprintf("Score: %d/%d        Correct: %d/%d        Accuracy: %s",
		sum.Score, sum.MaxScore, sum.CorrectCount, sum.Answered, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// XP award.
	if s.award.XP > 0 {
		xpLine := fmt.Sprintf("+%d XP", s.award.XP)
		if s.award.Perfect {
			xpLine += fmt.Sprintf("  (includes +%d perfect session bonus)", progress.PerfectBonus)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(xpLine))
		b.WriteString("\n")
	}

	if s.award.LearnedTopic != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("%q marked as learned!", s.topic.Title)))
		b.WriteString("\n")
	}

	footer := "Press Enter to continue"
	if s.retry != nil {
		footer += ", R to try again"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(footer))

	return b.String()
}
