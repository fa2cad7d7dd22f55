package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/traino-dev/traino/internal/markup"
	"github.com/traino-dev/traino/internal/ui/theme"
)

// RenderMarkup renders parsed markup blocks as styled terminal text,
// wrapped to the given width. Blocks are separated by blank lines.
func RenderMarkup(blocks []markup.Block, width int) string {
	if width < 10 {
		width = 10
	}

	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		rendered = append(rendered, renderBlock(b, width))
	}
	return strings.Join(rendered, "\n\n")
}

func renderBlock(b markup.Block, width int) string {
	switch b.Kind {
	case markup.BlockHeading2:
		return lipgloss.NewStyle().
			Width(width).
			Render(theme.Heading2.Render(strings.ToUpper(markup.Text(b.Spans))))

	case markup.BlockHeading3:
		return lipgloss.NewStyle().
			Width(width).
			Render(theme.Heading3.Render(markup.Text(b.Spans)))

	case markup.BlockBulletList:
		items := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			items = append(items, renderListItem(theme.ListMarker.Render("•"), item, width))
		}
		return strings.Join(items, "\n")

	case markup.BlockNumberList:
		items := make([]string, 0, len(b.Items))
		for i, item := range b.Items {
			marker := theme.ListMarker.Render(fmt.Sprintf("%d.", i+1))
			items = append(items, renderListItem(marker, item, width))
		}
		return strings.Join(items, "\n")

	default:
		return lipgloss.NewStyle().
			Width(width).
			Render(renderSpans(b.Spans))
	}
}

func renderListItem(marker string, spans []markup.Span, width int) string {
	textWidth := width - lipgloss.Width(marker) - 1
	if textWidth < 4 {
		textWidth = 4
	}
	text := lipgloss.NewStyle().Width(textWidth).Render(renderSpans(spans))

	// Indent wrapped continuation lines under the item text.
	indent := strings.Repeat(" ", lipgloss.Width(marker)+1)
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return marker + " " + strings.Join(lines, "\n")
}

func renderSpans(spans []markup.Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case markup.SpanBold:
			b.WriteString(theme.BoldSpan.Render(s.Text))
		case markup.SpanItalic:
			b.WriteString(theme.ItalicSpan.Render(s.Text))
		default:
			b.WriteString(theme.Body.Render(s.Text))
		}
	}
	return b.String()
}
