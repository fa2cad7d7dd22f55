package markup

import (
	"regexp"
	"strings"
)

var (
	// bulletItemRe captures the item text after a "- " or "* " marker.
	bulletItemRe = regexp.MustCompile(`^[-*]\s+(.*)$`)
	// numberItemRe captures the item text after a "1. " style marker.
	numberItemRe = regexp.MustCompile(`^\d+\.\s+(.*)$`)
)

// listKind is the accumulator state while grouping contiguous list lines.
type listKind int

const (
	listNone listKind = iota
	listBullet
	listNumber
)

func (k listKind) block() BlockKind {
	if k == listNumber {
		return BlockNumberList
	}
	return BlockBulletList
}

// Parse converts a message body into an ordered sequence of block nodes.
// Lines are trimmed and classified one at a time; contiguous list items
// of one kind accumulate into a single list block, flushed when a blank
// line, a non-list line, or a kind switch arrives. Blank lines separate
// blocks and are never emitted.
func Parse(text string) []Block {
	var (
		blocks []Block
		list   listKind
		items  [][]Span
	)
	flush := func() {
		if list == listNone {
			return
		}
		blocks = append(blocks, Block{Kind: list.block(), Items: items})
		list = listNone
		items = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if m := bulletItemRe.FindStringSubmatch(line); m != nil {
			if list != listBullet {
				flush()
				list = listBullet
			}
			items = append(items, ParseInline(m[1]))
			continue
		}
		if m := numberItemRe.FindStringSubmatch(line); m != nil {
			if list != listNumber {
				flush()
				list = listNumber
			}
			items = append(items, ParseInline(m[1]))
			continue
		}

		flush()
		switch {
		case line == "":
			// Separator only.
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: BlockHeading3, Spans: ParseInline(strings.TrimPrefix(line, "### "))})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: BlockHeading2, Spans: ParseInline(strings.TrimPrefix(line, "## "))})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Spans: ParseInline(line)})
		}
	}
	flush()
	return blocks
}
