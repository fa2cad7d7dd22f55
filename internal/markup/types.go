package markup

// SpanKind identifies the style of one inline text run.
type SpanKind int

const (
	SpanPlain  SpanKind = iota // Unstyled text
	SpanBold                   // **text**
	SpanItalic                 // *text*
)

// Span is a single styled run of text within a block.
type Span struct {
	Kind SpanKind
	Text string
}

// BlockKind identifies the structural role of a block node.
type BlockKind int

const (
	BlockParagraph  BlockKind = iota
	BlockHeading2             // ## text
	BlockHeading3             // ### text
	BlockBulletList           // - item or * item
	BlockNumberList           // 1. item
)

// Block is one structurally distinct unit of a parsed message body.
// Headings and paragraphs carry Spans; list blocks carry Items, one
// span sequence per list item.
type Block struct {
	Kind  BlockKind
	Spans []Span
	Items [][]Span
}

// Plain builds a single-span plain sequence. Convenience for callers
// that need span form for unstyled text.
func Plain(text string) []Span {
	return []Span{{Kind: SpanPlain, Text: text}}
}

// Text flattens a span sequence back to its raw text without markers.
func Text(spans []Span) string {
	var b []byte
	for _, s := range spans {
		b = append(b, s.Text...)
	}
	return string(b)
}
