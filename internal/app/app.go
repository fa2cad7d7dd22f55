package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/traino-dev/traino/internal/coach"
	"github.com/traino-dev/traino/internal/conversation"
	"github.com/traino-dev/traino/internal/progress"
	"github.com/traino-dev/traino/internal/router"
	"github.com/traino-dev/traino/internal/screen"
	"github.com/traino-dev/traino/internal/screens/chat"
	"github.com/traino-dev/traino/internal/screens/home"
	"github.com/traino-dev/traino/internal/screens/stats"
	"github.com/traino-dev/traino/internal/screens/welcome"
	"github.com/traino-dev/traino/internal/store"
	"github.com/traino-dev/traino/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	ProgressStore *store.ProgressStore
	Identity      *store.Identity
	Coach         *coach.Service

	// Offline means the coach runs on canned replies because no
	// provider is configured.
	Offline bool

	// LatestVersion is non-empty when a newer release was detected at
	// startup.
	LatestVersion string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress progress.Progress
	width    int
	height   int
}

// newAppModel loads startup state and assembles the screen stack:
// welcome splash first, then home, with chat and stats reachable
// from the home menu.
func newAppModel(opts Options) AppModel {
	ctx := context.Background()

	p, err := opts.ProgressStore.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not load progress:", err)
	}

	sessionID, err := opts.Identity.SessionID(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not load session identity:", err)
	}

	// One controller for the whole run: leaving and re-entering the
	// chat keeps the transcript.
	ctrl := conversation.NewController(opts.ProgressStore, nil)

	newChat := func() screen.Screen {
		return chat.New(ctrl, opts.Coach, sessionID)
	}
	newStats := func() screen.Screen {
		current, err := opts.ProgressStore.Load(context.Background())
		if err != nil {
			current = progress.Progress{}
		}
		return stats.New(current)
	}
	homeFactory := func() screen.Screen {
		current, err := opts.ProgressStore.Load(context.Background())
		if err != nil {
			current = progress.Progress{}
		}
		return home.New(home.Options{
			Progress:      current,
			Today:         progress.DateOf(time.Now()),
			NewChat:       newChat,
			NewStats:      newStats,
			Offline:       opts.Offline,
			LatestVersion: opts.LatestVersion,
		})
	}

	return AppModel{
		router:   router.New(welcome.New(homeFactory)),
		progress: p,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case chat.ProgressUpdatedMsg:
		// Keep the header stats current. The message still reaches the
		// active screen through the router below.
		m.progress = msg.Progress

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
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

	level := progress.Level(m.progress.TotalMessages)
	header := layout.RenderHeader(title, level, m.progress.SessionsCount, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
