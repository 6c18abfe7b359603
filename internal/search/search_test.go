package search

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dgallion1/deckmine/internal/deck"
)

func testDeck() *deck.Presentation {
	return &deck.Presentation{
		Sections: []deck.Section{
			{
				Title: "Intro",
				Slides: []deck.Slide{
					{
						Title:   "Welcome",
						Content: []deck.Block{{Type: deck.BlockShape, Text: "an overview of modern engineering practice"}},
					},
					{
						Title:   "Agenda",
						Content: []deck.Block{{Type: deck.BlockShape, Text: "we cover agents and developer tools"}},
						Notes:   "remember to mention vibe coding here",
					},
				},
			},
			{
				Title: "Main",
				Slides: []deck.Slide{
					{
						Title:   "Vibe Coding",
						Content: []deck.Block{{Type: deck.BlockShape, Text: "letting the agent drive"}},
					},
				},
			},
		},
	}
}

func TestQuery_TooShortReturnsEmpty(t *testing.T) {
	idx := Build(testDeck(), DefaultConfig())
	got := idx.Query("v")
	if got == nil {
		t.Fatal("expected empty non-nil result set")
	}
	if len(got) != 0 {
		t.Errorf("expected no results for a below-minimum query, got %v", got)
	}
}

func TestQuery_FieldPriorityAndOrdering(t *testing.T) {
	idx := Build(testDeck(), DefaultConfig())
	got := idx.Query("vibe")
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d: %v", len(got), got)
	}

	// Ascending slide order, one result per slide.
	if got[0].SlideIndex != 1 || got[1].SlideIndex != 2 {
		t.Errorf("expected slides 1 and 2 in order, got %v", got)
	}
	// Slide 1 only matches in the notes; slide 2 matches in the title.
	if got[0].MatchType != MatchNotes {
		t.Errorf("expected notes match, got %q", got[0].MatchType)
	}
	if got[1].MatchType != MatchTitle {
		t.Errorf("expected title match, got %q", got[1].MatchType)
	}
	if got[1].SectionTitle != "Main" || got[1].SlideTitle != "Vibe Coding" {
		t.Errorf("unexpected result metadata: %+v", got[1])
	}
}

func TestQuery_TitleBeatsContent(t *testing.T) {
	p := &deck.Presentation{
		Sections: []deck.Section{{Slides: []deck.Slide{{
			Title:   "agents everywhere",
			Content: []deck.Block{{Type: deck.BlockShape, Text: "agents in the content too"}},
		}}}},
	}
	idx := Build(p, DefaultConfig())
	got := idx.Query("agents")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].MatchType != MatchTitle {
		t.Errorf("expected title to win field priority, got %q", got[0].MatchType)
	}
}

func TestQuery_CaseInsensitive(t *testing.T) {
	idx := Build(testDeck(), DefaultConfig())
	got := idx.Query("VIBE")
	if len(got) != 2 {
		t.Errorf("expected case-insensitive match, got %v", got)
	}
}

func TestQuery_ContextWindowEllipsis(t *testing.T) {
	pad := strings.Repeat("z", 40)
	p := &deck.Presentation{
		Sections: []deck.Section{{Slides: []deck.Slide{{
			Content: []deck.Block{{Type: deck.BlockShape, Text: pad + " needle " + pad}},
		}}}},
	}
	idx := Build(p, Config{MinQueryLen: 2, MaxResults: 20, ContextWindow: 10})
	got := idx.Query("needle")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	ctx := got[0].MatchContext
	if !strings.HasPrefix(ctx, Ellipsis) || !strings.HasSuffix(ctx, Ellipsis) {
		t.Errorf("expected both ends clipped, got %q", ctx)
	}
	if !strings.Contains(ctx, "needle") {
		t.Errorf("expected the match inside the window, got %q", ctx)
	}
	// 10 chars either side plus the needle plus two ellipsis runes.
	wantLen := 10 + len("needle") + 10 + 2*len(Ellipsis)
	if len(ctx) != wantLen {
		t.Errorf("expected context length %d, got %d (%q)", wantLen, len(ctx), ctx)
	}
}

func TestQuery_ContextWindowKeepsRunesIntact(t *testing.T) {
	pad := strings.Repeat("é", 20)
	p := &deck.Presentation{
		Sections: []deck.Section{{Slides: []deck.Slide{{
			Content: []deck.Block{{Type: deck.BlockShape, Text: pad + " needle " + pad}},
		}}}},
	}
	// A 4-byte window lands mid-rune on both sides without clamping.
	idx := Build(p, Config{MinQueryLen: 2, MaxResults: 20, ContextWindow: 4})
	got := idx.Query("needle")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	ctx := got[0].MatchContext
	if !utf8.ValidString(ctx) {
		t.Errorf("expected window clipped at rune boundaries, got %q", ctx)
	}
	if !strings.Contains(ctx, "needle") {
		t.Errorf("expected the match inside the window, got %q", ctx)
	}
}

func TestQuery_NoEllipsisWhenFieldFits(t *testing.T) {
	p := &deck.Presentation{
		Sections: []deck.Section{{Slides: []deck.Slide{{
			Content: []deck.Block{{Type: deck.BlockShape, Text: "short needle text"}},
		}}}},
	}
	idx := Build(p, DefaultConfig())
	got := idx.Query("needle")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].MatchContext != "short needle text" {
		t.Errorf("expected unclipped context, got %q", got[0].MatchContext)
	}
}

func TestQuery_ResultCap(t *testing.T) {
	var slides []deck.Slide
	for i := 0; i < 30; i++ {
		slides = append(slides, deck.Slide{
			Title:   fmt.Sprintf("Slide %d", i),
			Content: []deck.Block{{Type: deck.BlockShape, Text: "matching everywhere"}},
		})
	}
	p := &deck.Presentation{Sections: []deck.Section{{Slides: slides}}}

	idx := Build(p, DefaultConfig())
	got := idx.Query("matching")
	if len(got) != 20 {
		t.Fatalf("expected results capped at 20, got %d", len(got))
	}
	for i, r := range got {
		if r.SlideIndex != i {
			t.Errorf("expected ascending slide order, got index %d at position %d", r.SlideIndex, i)
		}
	}
}

func TestQuery_NoMatch(t *testing.T) {
	idx := Build(testDeck(), DefaultConfig())
	if got := idx.Query("kubernetes"); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
}
