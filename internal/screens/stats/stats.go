package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
	"github.com/nkapoor/lingua/internal/ui/components"
	"github.com/nkapoor/lingua/internal/ui/layout"
	"github.com/nkapoor/lingua/internal/ui/theme"
)

// topicRow is one topic's aggregated practice record.
type topicRow struct {
	Title         string
	Learned       bool
	Answers       int
	Accuracy      float64
	LastPracticed string
}

// StatsScreen shows overall progress and per-topic accuracy.
type StatsScreen struct {
	totalXP  int
	level    int
	earned   int
	needed   int
	sessions int
	learned  int
	rows     []topicRow
	loadErr  error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen, reading aggregates from the event log.
func New(catalog *topics.Catalog, eventRepo store.EventRepo) *StatsScreen {
	s := &StatsScreen{}
	if eventRepo == nil {
		return s
	}

	ctx := context.Background()

	totalXP, err := eventRepo.TotalXP(ctx)
	if err != nil {
		s.loadErr = err
		return s
	}
	s.totalXP = totalXP
	s.level = progress.Level(totalXP)
	s.earned, s.needed = progress.LevelProgress(totalXP)

	if n, err := eventRepo.CompletedSessionCount(ctx); err == nil {
		s.sessions = n
	}

	learnedSet := make(map[string]bool)
	if ids, err := eventRepo.LearnedTopics(ctx); err == nil {
		s.learned = len(ids)
		for _, id := range ids {
			learnedSet[id] = true
		}
	}

	for _, topic := range catalog.All() {
		ts, err := eventRepo.TopicAccuracy(ctx, topic.ID)
		if err != nil || ts.Answers == 0 {
			if !learnedSet[topic.ID] {
				continue
			}
		}

		last := ""
		if at, err := eventRepo.LastPracticed(ctx, topic.ID); err == nil && !at.IsZero() {
			last = at.Format("Jan 2")
		}

		s.rows = append(s.rows, topicRow{
			Title:         topic.Title,
			Learned:       learnedSet[topic.ID],
			Answers:       ts.Answers,
			Accuracy:      ts.Accuracy,
			LastPracticed: last,
		})
	}

	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Could not load progress: " + s.loadErr.Error())
	}

	var b strings.Builder
	b.WriteString("\n")

	// Level line with progress toward the next level.
	levelLine := fmt.Sprintf("  Level %d   %d XP total", s.level, s.totalXP)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(levelLine))
	b.WriteString("\n\n")

	pct := 0.0
	if s.needed > 0 {
		pct = float64(s.earned) / float64(s.needed)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("  Next level (%d/%d)", s.earned, s.needed),
		pct, true, min(width-6, 60))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  Sessions completed: %d    Topics learned: %d", s.sessions, s.learned)))
	b.WriteString("\n\n")

	if len(s.rows) == 0 {
		b.WriteString(theme.Hint.Render("  No practice recorded yet. Pick a topic and get started!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Topics"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(
		"  " + strings.Repeat("─", min(width-6, 60))))
	b.WriteString("\n")

	for _, row := range s.rows {
		marker := "  "
		if row.Learned {
			marker = theme.Correct.Render("✓ ")
		}

		detail := "not practiced yet"
		if row.Answers > 0 {
			detail = fmt.Sprintf("%d answers, %.0f%% accuracy", row.Answers, row.Accuracy*100)
			if row.LastPracticed != "" {
				detail += ", last " + row.LastPracticed
			}
		}

		line := fmt.Sprintf("  %s%-32s %s", marker, row.Title, theme.Hint.Render(detail))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
