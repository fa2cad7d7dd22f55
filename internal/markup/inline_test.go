package markup

import "testing"

func assertSpans(t *testing.T, got, want []Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d spans %v, want %d spans %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].Kind != want[i].Kind || got[i].Text != want[i].Text {
			t.Errorf("span %d = {%d %q}, want {%d %q}", i, got[i].Kind, got[i].Text, want[i].Kind, want[i].Text)
		}
	}
}

func TestParseInline_MixedEmphasis(t *testing.T) {
	got := ParseInline("Do **10 reps** of *squats*")
	assertSpans(t, got, []Span{
		{SpanPlain, "Do "},
		{SpanBold, "10 reps"},
		{SpanPlain, " of "},
		{SpanItalic, "squats"},
	})
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Span
	}{
		{"empty", "", nil},
		{"plain only", "hold steady", []Span{{SpanPlain, "hold steady"}}},
		{"bold whole line", "**rest day**", []Span{{SpanBold, "rest day"}}},
		{"italic whole line", "*easy pace*", []Span{{SpanItalic, "easy pace"}}},
		{"bold at start", "**Go** now", []Span{{SpanBold, "Go"}, {SpanPlain, " now"}}},
		{"italic at end", "finish *strong*", []Span{{SpanPlain, "finish "}, {SpanItalic, "strong"}}},
		{"italic before bold", "*a* then **b**", []Span{{SpanItalic, "a"}, {SpanPlain, " then "}, {SpanBold, "b"}}},
		{"unterminated bold", "**half open", []Span{{SpanPlain, "**half open"}}},
		{"unterminated italic", "*half open", []Span{{SpanPlain, "*half open"}}},
		{"lone asterisk", "3 * 4", []Span{{SpanPlain, "3 * 4"}}},
		{"empty bold", "a****b", []Span{{SpanPlain, "a"}, {SpanBold, ""}, {SpanPlain, "b"}}},
		{"bold keeps inner asterisk", "**a*b**", []Span{{SpanBold, "a*b"}}},
		{"back to back", "**a***b*", []Span{{SpanBold, "a"}, {SpanItalic, "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSpans(t, ParseInline(tt.line), tt.want)
		})
	}
}

func TestText(t *testing.T) {
	spans := ParseInline("Do **10 reps** of *squats*")
	if got := Text(spans); got != "Do 10 reps of squats" {
		t.Errorf("Text() = %q, want %q", got, "Do 10 reps of squats")
	}
}

func TestPlain(t *testing.T) {
	assertSpans(t, Plain("hello"), []Span{{SpanPlain, "hello"}})
}
