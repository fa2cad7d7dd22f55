package markup

import "strings"

// inlineMatch is one marker pair located in a line: the half-open byte
// range [start, end) covering the full marker pair, and the content
// between the markers.
type inlineMatch struct {
	start int
	end   int
	kind  SpanKind
	text  string
}

// ParseInline scans a single line for emphasis markers and returns the
// ordered sequence of styled spans. Bold (**...**) and italic (*...*)
// compete at each scan position; the match starting earliest wins.
// Text between matches becomes plain spans. Empty input yields no spans.
// Literal asterisks cannot be escaped.
func ParseInline(line string) []Span {
	var spans []Span
	rest := line
	for rest != "" {
		m, ok := nextInlineMatch(rest)
		if !ok {
			spans = append(spans, Span{Kind: SpanPlain, Text: rest})
			break
		}
		if m.start > 0 {
			spans = append(spans, Span{Kind: SpanPlain, Text: rest[:m.start]})
		}
		spans = append(spans, Span{Kind: m.kind, Text: m.text})
		rest = rest[m.end:]
	}
	return spans
}

// nextInlineMatch selects between the bold and italic matchers. The
// smaller start offset wins; a tie goes to bold. Kept as an explicit
// selection between two independent matchers so the precedence rule
// stays testable on its own.
func nextInlineMatch(s string) (inlineMatch, bool) {
	bold, boldOK := findBold(s)
	ital, italOK := findItalic(s)
	switch {
	case boldOK && italOK:
		if ital.start < bold.start {
			return ital, true
		}
		return bold, true
	case boldOK:
		return bold, true
	case italOK:
		return ital, true
	default:
		return inlineMatch{}, false
	}
}

// findBold locates the earliest **...** pair. Content is non-greedy:
// the first closing marker after the opening one ends the match.
func findBold(s string) (inlineMatch, bool) {
	open := strings.Index(s, "**")
	if open < 0 {
		return inlineMatch{}, false
	}
	contentAt := open + 2
	close := strings.Index(s[contentAt:], "**")
	if close < 0 {
		return inlineMatch{}, false
	}
	return inlineMatch{
		start: open,
		end:   contentAt + close + 2,
		kind:  SpanBold,
		text:  s[contentAt : contentAt+close],
	}, true
}

// findItalic locates the earliest *...* pair whose delimiters are not
// adjacent to another asterisk, so bold markers never open or close an
// italic run.
func findItalic(s string) (inlineMatch, bool) {
	for i := 0; i < len(s); i++ {
		if !isSingleAsterisk(s, i) {
			continue
		}
		// The opening delimiter guarantees s[i+1] != '*', so any closing
		// delimiter sits at least two bytes on and the run is non-empty.
		for j := i + 2; j < len(s); j++ {
			if !isSingleAsterisk(s, j) {
				continue
			}
			return inlineMatch{
				start: i,
				end:   j + 1,
				kind:  SpanItalic,
				text:  s[i+1 : j],
			}, true
		}
	}
	return inlineMatch{}, false
}

// isSingleAsterisk reports whether s[i] is an asterisk with no asterisk
// neighbor on either side.
func isSingleAsterisk(s string, i int) bool {
	if s[i] != '*' {
		return false
	}
	if i > 0 && s[i-1] == '*' {
		return false
	}
	if i+1 < len(s) && s[i+1] == '*' {
		return false
	}
	return true
}
