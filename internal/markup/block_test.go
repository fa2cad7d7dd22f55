package markup

import "testing"

func assertBlock(t *testing.T, got Block, kind BlockKind, text string) {
	t.Helper()
	if got.Kind != kind {
		t.Errorf("block kind = %d, want %d", got.Kind, kind)
	}
	if Text(got.Spans) != text {
		t.Errorf("block text = %q, want %q", Text(got.Spans), text)
	}
}

func assertListBlock(t *testing.T, got Block, kind BlockKind, items ...string) {
	t.Helper()
	if got.Kind != kind {
		t.Errorf("block kind = %d, want %d", got.Kind, kind)
	}
	if len(got.Items) != len(items) {
		t.Fatalf("got %d items, want %d", len(got.Items), len(items))
	}
	for i, want := range items {
		if Text(got.Items[i]) != want {
			t.Errorf("item %d = %q, want %q", i, Text(got.Items[i]), want)
		}
	}
}

func TestParse_WorkoutMessage(t *testing.T) {
	blocks := Parse("## Warmup\n- Jog\n- Stretch\n\nGo hard.")
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	assertBlock(t, blocks[0], BlockHeading2, "Warmup")
	assertListBlock(t, blocks[1], BlockBulletList, "Jog", "Stretch")
	assertBlock(t, blocks[2], BlockParagraph, "Go hard.")
}

func TestParse_EmptyInput(t *testing.T) {
	if blocks := Parse(""); len(blocks) != 0 {
		t.Errorf("got %d blocks for empty input, want 0", len(blocks))
	}
}

func TestParse_BlankLinesOnly(t *testing.T) {
	if blocks := Parse("\n\n  \n"); len(blocks) != 0 {
		t.Errorf("got %d blocks for blank input, want 0", len(blocks))
	}
}

func TestParse_HeadingLevels(t *testing.T) {
	blocks := Parse("## Session\n### Round one")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	assertBlock(t, blocks[0], BlockHeading2, "Session")
	assertBlock(t, blocks[1], BlockHeading3, "Round one")
}

func TestParse_HeadingNeedsSpace(t *testing.T) {
	blocks := Parse("##nospace")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	assertBlock(t, blocks[0], BlockParagraph, "##nospace")
}

func TestParse_ParagraphPerLine(t *testing.T) {
	blocks := Parse("First thought.\nSecond thought.")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	assertBlock(t, blocks[0], BlockParagraph, "First thought.")
	assertBlock(t, blocks[1], BlockParagraph, "Second thought.")
}

func TestParse_ContiguousItemsShareOneList(t *testing.T) {
	blocks := Parse("- a\n- b\n- c")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockBulletList, "a", "b", "c")
}

func TestParse_StarBullets(t *testing.T) {
	blocks := Parse("* push\n* pull")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockBulletList, "push", "pull")
}

func TestParse_NumberedList(t *testing.T) {
	blocks := Parse("1. first\n2. second\n10. tenth")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockNumberList, "first", "second", "tenth")
}

func TestParse_KindSwitchFlushes(t *testing.T) {
	blocks := Parse("- a\n1. b\n2. c")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockBulletList, "a")
	assertListBlock(t, blocks[1], BlockNumberList, "b", "c")
}

func TestParse_BlankLineSplitsList(t *testing.T) {
	blocks := Parse("- a\n\n- b")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockBulletList, "a")
	assertListBlock(t, blocks[1], BlockBulletList, "b")
}

func TestParse_ParagraphFlushesList(t *testing.T) {
	blocks := Parse("- a\nthen rest\n- b")
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockBulletList, "a")
	assertBlock(t, blocks[1], BlockParagraph, "then rest")
	assertListBlock(t, blocks[2], BlockBulletList, "b")
}

func TestParse_IndentedItemsStillMatch(t *testing.T) {
	blocks := Parse("  - a\n\t- b")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockBulletList, "a", "b")
}

func TestParse_ItemEmphasis(t *testing.T) {
	blocks := Parse("- **3 sets** of *lunges*")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	assertSpans(t, blocks[0].Items[0], []Span{
		{SpanBold, "3 sets"},
		{SpanPlain, " of "},
		{SpanItalic, "lunges"},
	})
}

func TestParse_ItalicLineIsNotABullet(t *testing.T) {
	blocks := Parse("*keep breathing*")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != BlockParagraph {
		t.Fatalf("block kind = %d, want paragraph", blocks[0].Kind)
	}
	assertSpans(t, blocks[0].Spans, []Span{{SpanItalic, "keep breathing"}})
}

func TestParse_TrailingNewline(t *testing.T) {
	blocks := Parse("- a\n")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	assertListBlock(t, blocks[0], BlockBulletList, "a")
}
