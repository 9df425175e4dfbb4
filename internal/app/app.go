package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkapoor/lingua/internal/exercise"
	"github.com/nkapoor/lingua/internal/llm"
	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	"github.com/nkapoor/lingua/internal/screens/home"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
	"github.com/nkapoor/lingua/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	// DBPath is the SQLite database location. Empty means no
	// persistence: sessions run but nothing is recorded.
	DBPath string

	// LLMConfig, when non-nil, enables LLM-drafted exercises.
	LLMConfig *llm.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	eventRepo store.EventRepo
	width     int
	height    int
	xp        int
	level     int
}

func newAppModel(provider llm.Provider, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) AppModel {
	catalog := topics.NewCatalog()
	drafter := exercise.NewDrafter(provider)
	progressSvc := progress.NewService(eventRepo)

	homeScreen := home.New(catalog, drafter, eventRepo, snapRepo, progressSvc)

	m := AppModel{
		router:    router.New(homeScreen),
		eventRepo: eventRepo,
	}
	m.refreshStats()
	return m
}

// refreshStats reloads the header's XP counter from the event log.
func (m *AppModel) refreshStats() {
	if m.eventRepo == nil {
		m.level = progress.Level(0)
		return
	}
	if xp, err := m.eventRepo.TotalXP(context.Background()); err == nil {
		m.xp = xp
	}
	m.level = progress.Level(m.xp)
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation marks a session boundary; the XP counter may
		// have moved.
		m.refreshStats()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.xp, m.level, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its key hints, with a generic
// fallback.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run opens the store and starts the Bubble Tea program.
func Run(opts Options) error {
	var (
		eventRepo store.EventRepo
		snapRepo  store.SnapshotRepo
	)

	if opts.DBPath != "" {
		st, err := store.Open(opts.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		eventRepo = st.EventRepo()
		snapRepo = st.SnapshotRepo()
	}

	// Drafting is optional; a provider that fails to construct just
	// means pattern-generated exercises only.
	var provider llm.Provider
	if opts.LLMConfig != nil {
		p, err := llm.NewProvider(context.Background(), *opts.LLMConfig, eventRepo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM drafting disabled:", err)
		} else {
			provider = p
		}
	}

	p := tea.NewProgram(newAppModel(provider, eventRepo, snapRepo))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
