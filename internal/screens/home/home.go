package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/traino-dev/traino/internal/progress"
	"github.com/traino-dev/traino/internal/router"
	"github.com/traino-dev/traino/internal/screen"
	"github.com/traino-dev/traino/internal/ui/components"
	"github.com/traino-dev/traino/internal/ui/theme"
)

// Options carries everything the home screen needs: the loaded
// progress record, screen factories for navigation, and environment
// notes to surface.
type Options struct {
	Progress progress.Progress
	Today    string // progress.DateOf(now), for the mascot mood

	NewChat  func() screen.Screen
	NewStats func() screen.Screen

	Offline       bool   // coach runs on canned replies (no API key)
	LatestVersion string // non-empty when a newer release exists
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu   components.Menu
	opts   Options
	mascot MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(opts Options) *HomeScreen {
	mascot := MascotIdle
	switch {
	case opts.Progress.LastSessionDate != "" && opts.Progress.LastSessionDate == opts.Today:
		mascot = MascotFlexing
	case opts.Progress.SessionsCount > 0:
		mascot = MascotWaiting
	}

	items := []components.MenuItem{
		{Label: "START COACHING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: opts.NewChat()}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: opts.NewStats()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		opts:   opts,
		mascot: mascot,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)
	compact := height < 20

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(h.mascot)))
	}

	sections = append(sections, h.renderStatsBar(cw))
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(h.menu.View()))

	if h.opts.Offline {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render("offline mode — set an API key for a live coach (see traino --help)"))
	}
	if h.opts.LatestVersion != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("new version %s available — run traino update", h.opts.LatestVersion)))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

const titleArt = ` ████████╗██████╗  █████╗ ██╗███╗   ██╗ ██████╗
 ╚══██╔══╝██╔══██╗██╔══██╗██║████╗  ██║██╔═══██╗
    ██║   ██████╔╝███████║██║██╔██╗ ██║██║   ██║
    ██║   ██╔══██╗██╔══██║██║██║╚██╗██║██║   ██║
    ██║   ██║  ██║██║  ██║██║██║ ╚████║╚██████╔╝
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝ ╚═════╝`

const titleCompact = "T · R · A · I · N · O"

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleArt
	if compact || cw < 50 {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders level, XP and session count in a bordered box.
func (h *HomeScreen) renderStatsBar(cw int) string {
	p := h.opts.Progress
	level := progress.Level(p.TotalMessages)
	levelXP := progress.LevelXP(p.TotalMessages)

	stats := fmt.Sprintf("%s  %s  %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("▲ LV %d", level)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("⚡ %d/%d XP", levelXP, progress.XPPerLevel)),
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("● %d SESSIONS", p.SessionsCount)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
