package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/exercise"
	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	"github.com/nkapoor/lingua/internal/screens/stats"
	"github.com/nkapoor/lingua/internal/screens/topiclist"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
	"github.com/nkapoor/lingua/internal/ui/components"
	"github.com/nkapoor/lingua/internal/ui/layout"
	"github.com/nkapoor/lingua/internal/ui/theme"
)

// HomeScreen is the entry screen: a menu plus a short progress line.
type HomeScreen struct {
	menu components.Menu

	totalXP  int
	level    int
	sessions int
	learned  int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. The latest snapshot, when present,
// seeds the progress line; otherwise the event log is queried directly.
func New(catalog *topics.Catalog, drafter *exercise.Drafter, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, progressSvc *progress.Service) *HomeScreen {
	h := &HomeScreen{}
	h.loadProgress(eventRepo, snapRepo)

	items := []components.MenuItem{
		{
			Label:       "Practice",
			Description: "Pick a grammar topic and run an exercise session",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: topiclist.New(catalog, drafter, eventRepo, snapRepo, progressSvc),
					}
				}
			},
		},
		{
			Label:       "Progress",
			Description: "XP, level, and per-topic accuracy",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: stats.New(catalog, eventRepo),
					}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h.menu = components.NewMenu(items)
	return h
}

// loadProgress prefers the snapshot and falls back to log replay.
func (h *HomeScreen) loadProgress(eventRepo store.EventRepo, snapRepo store.SnapshotRepo) {
	ctx := context.Background()

	if snapRepo != nil {
		if snap, err := snapRepo.Latest(ctx); err == nil && snap != nil {
			h.totalXP = snap.Data.TotalXP
			h.sessions = snap.Data.SessionsCompleted
			h.learned = len(snap.Data.LearnedTopics)
			h.level = progress.Level(h.totalXP)
			return
		}
	}

	if eventRepo == nil {
		h.level = progress.Level(0)
		return
	}
	if xp, err := eventRepo.TotalXP(ctx); err == nil {
		h.totalXP = xp
	}
	if n, err := eventRepo.CompletedSessionCount(ctx); err == nil {
		h.sessions = n
	}
	if ids, err := eventRepo.LearnedTopics(ctx); err == nil {
		h.learned = len(ids)
	}
	h.level = progress.Level(h.totalXP)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// XP returns the total XP shown in the header.
func (h *HomeScreen) XP() int { return h.totalXP }

// Level returns the level shown in the header.
func (h *HomeScreen) Level() int { return h.level }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	banner := []string{
		"  _     _                         ",
		" | |   (_)_ __   __ _ _   _  __ _ ",
		" | |   | | '_ \\ / _` | | | |/ _` |",
		" | |___| | | | | (_| | |_| | (_| |",
		" |_____|_|_| |_|\\__, |\\__,_|\\__,_|",
		"                |___/             ",
	}

	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	b.WriteString("\n")
	if !compact {
		for _, line := range banner {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Title.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("English grammar practice in your terminal")))
		b.WriteString("\n\n")
	}

	statLine := fmt.Sprintf("Level %d  ·  %d XP  ·  %d sessions  ·  %d topics learned",
		h.level, h.totalXP, h.sessions, h.learned)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(statLine)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
