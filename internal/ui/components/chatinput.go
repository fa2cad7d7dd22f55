package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/traino-dev/traino/internal/ui/theme"
)

// ChatInput wraps bubbles/textinput as the chat compose line.
type ChatInput struct {
	Model textinput.Model
}

// NewChatInput creates a focused compose input.
func NewChatInput(placeholder string) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Focus()
	return ChatInput{Model: ti}
}

// Init returns the initial command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the compose line with its prompt marker.
func (c ChatInput) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("❯ ")
	return prompt + c.Model.View()
}

// Value returns the current input text.
func (c ChatInput) Value() string {
	return c.Model.Value()
}

// Reset clears the input text.
func (c *ChatInput) Reset() {
	c.Model.Reset()
}
