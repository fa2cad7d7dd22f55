package coach

import (
	"fmt"
	"strings"
)

// Persona shapes the coach's voice. Zero values fall back to the
// defaults below.
type Persona struct {
	Name  string
	Style string
}

const (
	defaultName  = "Trainer Max"
	defaultStyle = "encouraging, direct, practical"
)

const systemPromptTemplate = `You are %s, a personal fitness coach chatting with a client in their terminal.

Coaching style: %s.

Rules:
- Keep replies short: a few sentences, or a heading plus a short list.
- Give concrete, actionable advice (sets, reps, durations, rest).
- Never give medical advice; suggest a professional for pain or injury.
- Formatting is limited to ## and ### headings, "-" bullet lists,
  "1." numbered lists, **bold** and *italic*. Nothing else.`

// systemPrompt renders the persona into the coach system prompt.
func systemPrompt(p Persona) string {
	name := p.Name
	if strings.TrimSpace(name) == "" {
		name = defaultName
	}
	style := p.Style
	if strings.TrimSpace(style) == "" {
		style = defaultStyle
	}
	return fmt.Sprintf(systemPromptTemplate, name, style)
}

// userMessage frames the client message with its session identity so
// the backend can correlate exchanges from one install.
func userMessage(message, sessionID string) string {
	var b strings.Builder
	b.WriteString(message)
	if sessionID != "" {
		fmt.Fprintf(&b, "\n\n[session: %s]", sessionID)
	}
	return b.String()
}
