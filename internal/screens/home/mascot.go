package home

import (
	"charm.land/lipgloss/v2"

	"github.com/traino-dev/traino/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle    MascotVariant = iota // Default orange
	MascotFlexing                      // Gold — already trained today
	MascotWaiting                      // Dim — no session yet today
)

const mascotIdle = `  ╭─────╮
  │ ◉ ◉ │
  │  ◡  │
  ╰─┬─┬─╯
█▓══╡ ╞══▓█`

const mascotFlexing = `  ╭─────╮
  │ ★ ★ │
  │  ◡  │
█▓╮ ┬─┬ ╭▓█
  ╰─╯ ╰─╯`

const mascotWaiting = `  ╭─────╮
  │ ◉ ◉ │ zZ
  │  ─  │
  ╰─┬─┬─╯
█▓══╡ ╞══▓█`

// RenderMascot returns the coach mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotFlexing:
		art = mascotFlexing
		fg = theme.Accent
	case MascotWaiting:
		art = mascotWaiting
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
