package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/traino-dev/traino/internal/conversation"
	"github.com/traino-dev/traino/internal/markup"
	"github.com/traino-dev/traino/internal/ui/components"
	"github.com/traino-dev/traino/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *ChatScreen) View(width, height int) string {
	transcriptWidth := width - 4
	if transcriptWidth < 20 {
		transcriptWidth = 20
	}

	var sections []string
	for _, m := range s.ctrl.Messages() {
		sections = append(sections, s.renderMessage(m, transcriptWidth))
	}

	if s.ctrl.State() == conversation.StateAwaitingReply {
		frame := spinnerFrames[s.spinFrame%len(spinnerFrames)]
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(frame+" Coach is typing..."))
	}

	if s.ctrl.State() == conversation.StateErrored {
		sections = append(sections, renderErrorBanner(s.ctrl.LastError(), transcriptWidth))
	}

	if s.persistErr != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("⚠ "+s.persistErr))
	}

	transcript := strings.Join(sections, "\n\n")

	// Reserve two rows at the bottom for the compose line.
	inputView := s.input.View()
	transcriptHeight := height - lipgloss.Height(inputView) - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	body := tailLines(transcript, transcriptHeight, &s.scroll)

	pad := transcriptHeight - lipgloss.Height(body)
	if body == "" {
		pad = transcriptHeight
	}
	var b strings.Builder
	if pad > 0 {
		b.WriteString(strings.Repeat("\n", pad))
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(body))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(inputView))
	return b.String()
}

func (s *ChatScreen) renderMessage(m conversation.Message, width int) string {
	switch m.Role {
	case conversation.RoleCoach:
		label := theme.CoachLabel.Render("Coach")
		body := components.RenderMarkup(markup.Parse(m.Content), width)
		return label + "\n" + body

	case conversation.RoleSystem:
		style := theme.SystemNote
		if s.pulseLeft%2 == 1 {
			style = style.Foreground(theme.Text)
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render("★ " + m.Content + " ★"))

	default:
		label := theme.UserLabel.Render("You")
		body := lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Text).
			Render(m.Content)
		return label + "\n" + body
	}
}

func renderErrorBanner(errText string, width int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Couldn't reach your coach: "+errText) + "\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Press Ctrl+R to retry.")
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Padding(0, 1).
		Render(msg)
}

// tailLines returns the visible window of the transcript: the last
// height lines, shifted up by *scroll lines. The scroll offset is
// clamped so the window never runs past the top.
func tailLines(text string, height int, scroll *int) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if *scroll > maxScroll {
		*scroll = maxScroll
	}

	end := len(lines) - *scroll
	start := end - height
	if start < 0 {
		start = 0
	}
	return strings.Join(lines[start:end], "\n")
}
