package topiclist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/exercise"
	"github.com/nkapoor/lingua/internal/pattern"
	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	"github.com/nkapoor/lingua/internal/screens/practice"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
	"github.com/nkapoor/lingua/internal/ui/layout"
	"github.com/nkapoor/lingua/internal/ui/theme"
)

// TopicListScreen lets the learner pick a grammar topic to practice.
type TopicListScreen struct {
	catalog *topics.Catalog
	items   []topics.Topic
	learned map[string]bool

	drafter     *exercise.Drafter
	eventRepo   store.EventRepo
	snapRepo    store.SnapshotRepo
	progressSvc *progress.Service

	selected int
}

var _ screen.Screen = (*TopicListScreen)(nil)
var _ screen.KeyHintProvider = (*TopicListScreen)(nil)

// New creates a topic list over the catalog. eventRepo, when non-nil,
// supplies learned-topic markers.
func New(catalog *topics.Catalog, drafter *exercise.Drafter, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, progressSvc *progress.Service) *TopicListScreen {
	learned := make(map[string]bool)
	if eventRepo != nil {
		if ids, err := eventRepo.LearnedTopics(context.Background()); err == nil {
			for _, id := range ids {
				learned[id] = true
			}
		}
	}

	return &TopicListScreen{
		catalog:     catalog,
		items:       catalog.All(),
		learned:     learned,
		drafter:     drafter,
		eventRepo:   eventRepo,
		snapRepo:    snapRepo,
		progressSvc: progressSvc,
	}
}

func (t *TopicListScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicListScreen) Title() string {
	return "Topics"
}

func (t *TopicListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TopicListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
		}
	case "down", "j":
		if t.selected < len(t.items)-1 {
			t.selected++
		}
	case "enter":
		if t.selected >= 0 && t.selected < len(t.items) {
			topic := t.items[t.selected]
			return t, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(topic, t.drafter, t.eventRepo, t.snapRepo, t.progressSvc),
				}
			}
		}
	case "esc":
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return t, nil
}

func (t *TopicListScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("  Choose a topic to practice"))
	b.WriteString("\n\n")

	// Window the list to fit the content area.
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if t.selected >= visible {
		start = t.selected - visible + 1
	}
	end := min(start+visible, len(t.items))

	for i := start; i < end; i++ {
		topic := t.items[i]
		cat := pattern.Classify(topic.Title, topic.Explanation)

		marker := "  "
		if t.learned[topic.ID] {
			marker = theme.Correct.Render("✓ ")
		}

		label := fmt.Sprintf("%s%s", marker, topic.Title)
		catLabel := theme.Hint.Render(fmt.Sprintf("  [%s]", cat.DisplayName()))

		if i == t.selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+label) + catLabel)
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+label) + catLabel)
		}
		b.WriteString("\n")
	}

	return b.String()
}
