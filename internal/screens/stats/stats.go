package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/traino-dev/traino/internal/progress"
	"github.com/traino-dev/traino/internal/screen"
	"github.com/traino-dev/traino/internal/ui/components"
	"github.com/traino-dev/traino/internal/ui/theme"
)

// StatsScreen shows the derived level/XP state and session history
// counters. Everything on it is derived from the stored Progress.
type StatsScreen struct {
	progress progress.Progress
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a StatsScreen for a loaded progress record.
func New(p progress.Progress) *StatsScreen {
	return &StatsScreen{progress: p}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	p := s.progress
	level := progress.Level(p.TotalMessages)
	levelXP := progress.LevelXP(p.TotalMessages)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("LEVEL %d", level)))
	b.WriteString("\n\n")

	b.WriteString(components.NewXPBar(levelXP, progress.XPPerLevel, 40).View())
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Messages exchanged", fmt.Sprintf("%d", p.TotalMessages)},
		{"Coaching sessions", fmt.Sprintf("%d", p.SessionsCount)},
		{"First session", orNever(p.FirstSessionDate)},
		{"Last session", orNever(p.LastSessionDate)},
	}
	for _, r := range rows {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-20s", r.label)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.value))
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func orNever(date string) string {
	if date == "" {
		return "never"
	}
	return date
}
