package spans

import (
	"testing"
)

func testDetector() *Detector {
	return NewDetector(
		[]string{"com", "org", "io", "ly", "ai"},
		map[string]bool{"bit.ly": true, "t.co": true, "youtu.be": true},
		20,
	)
}

func TestURLs_ProtocolMatch(t *testing.T) {
	d := testDetector()
	got := d.URLs("Visit https://example.com/docs for details")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(got), got)
	}
	if got[0].Text != "https://example.com/docs" {
		t.Errorf("expected %q, got %q", "https://example.com/docs", got[0].Text)
	}
	if got[0].Kind != KindURL {
		t.Errorf("expected kind %q, got %q", KindURL, got[0].Kind)
	}
}

func TestURLs_ProtocolAndBareDomainDoNotDoubleReport(t *testing.T) {
	d := testDetector()
	// The host of a protocol URL also satisfies the bare-domain pattern;
	// the protocol span must win and the domain candidate must be dropped.
	got := d.URLs("https://example.com/path is the canonical link")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(got), got)
	}
}

func TestURLs_BareDomain(t *testing.T) {
	d := testDetector()
	got := d.URLs("check out openai.com and anthropic.com today")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), got)
	}
	if got[0].Text != "openai.com" || got[1].Text != "anthropic.com" {
		t.Errorf("expected openai.com then anthropic.com, got %v", got)
	}
	if got[0].Start >= got[1].Start {
		t.Errorf("expected ascending start order, got %d then %d", got[0].Start, got[1].Start)
	}
}

func TestURLs_EmailDomainNotLinkified(t *testing.T) {
	d := testDetector()
	got := d.URLs("Contact sam@example.com for info")
	if len(got) != 0 {
		t.Errorf("expected no matches for an email address, got %v", got)
	}
}

func TestURLs_TrailingSentencePunctuationTrimmed(t *testing.T) {
	d := testDetector()
	tests := []struct {
		input string
		want  string
	}{
		{"See example.com.", "example.com"},
		{"Really, example.com!", "example.com"},
		{"Go to https://example.com/docs.", "https://example.com/docs"},
		// A period inside a path is a legitimate path character.
		{"spec at https://example.com/v1.2/spec", "https://example.com/v1.2/spec"},
	}
	for _, tt := range tests {
		got := d.URLs(tt.input)
		if len(got) != 1 {
			t.Errorf("%q: expected 1 match, got %d: %v", tt.input, len(got), got)
			continue
		}
		if got[0].Text != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.want, got[0].Text)
		}
	}
}

func TestURLs_ShortLinkKind(t *testing.T) {
	d := testDetector()
	got := d.URLs("watch at https://youtu.be/dQw4w9WgXcQ or bit.ly/3xYzAbC")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), got)
	}
	for _, m := range got {
		if m.Kind != KindShortLink {
			t.Errorf("expected kind %q for %q, got %q", KindShortLink, m.Text, m.Kind)
		}
	}
}

func TestURLs_UnknownTLDNotMatched(t *testing.T) {
	d := testDetector()
	// .dev is not in the injected allow-list.
	got := d.URLs("hosted on example.dev for now")
	if len(got) != 0 {
		t.Errorf("expected no matches outside the TLD allow-list, got %v", got)
	}
}

func TestNewDetector_TLDsAreLiterals(t *testing.T) {
	// An allow-list entry carrying regex syntax is treated as a literal
	// label, never as pattern text.
	d := NewDetector([]string{"com", "c(m"}, nil, 20)
	got := d.URLs("see example.com today")
	if len(got) != 1 || got[0].Text != "example.com" {
		t.Errorf("expected example.com matched, got %v", got)
	}
}

func TestURLs_BareDomainAfterNonASCIILetterSuppressed(t *testing.T) {
	d := testDetector()
	// The word-adjacency check decodes the full preceding rune, so a
	// domain-shaped tail of a word is suppressed regardless of script.
	if got := d.URLs("naïveexample.com is not a link"); len(got) != 0 {
		t.Errorf("expected suppression after a non-ASCII letter, got %v", got)
	}
}

func TestOverlaps(t *testing.T) {
	a := Match{Start: 0, End: 10}
	tests := []struct {
		b    Match
		want bool
	}{
		{Match{Start: 5, End: 15}, true},  // b starts inside a
		{Match{Start: 0, End: 3}, true},   // same start
		{Match{Start: 10, End: 20}, false}, // half-open: adjacent is not overlap
		{Match{Start: 12, End: 20}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", a, tt.b, got, tt.want)
		}
		if got := tt.b.Overlaps(a); got != tt.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v (symmetry)", tt.b, a, got, tt.want)
		}
	}
}

func TestQuotedRuns_MinimumLength(t *testing.T) {
	d := testDetector()
	if got := d.QuotedRuns(`he said "too short" and moved on`); len(got) != 0 {
		t.Errorf("expected no matches below minimum length, got %v", got)
	}
	got := d.QuotedRuns(`he said "this quotation is long enough to capture" and paused`)
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(got), got)
	}
	if got[0].Text != "this quotation is long enough to capture" {
		t.Errorf("expected inner text without quotes, got %q", got[0].Text)
	}
	if got[0].Kind != KindQuoted {
		t.Errorf("expected kind %q, got %q", KindQuoted, got[0].Kind)
	}
}

func TestQuotedRuns_CurlyQuotes(t *testing.T) {
	d := testDetector()
	got := d.QuotedRuns("she wrote “curly quotes are common in exported decks” there")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(got), got)
	}
	if got[0].Text != "curly quotes are common in exported decks" {
		t.Errorf("unexpected inner text %q", got[0].Text)
	}
}

func TestQuotedRuns_SortedByStart(t *testing.T) {
	d := testDetector()
	s := `'single quoted run of sufficient length' then "double quoted run of sufficient length"`
	got := d.QuotedRuns(s)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), got)
	}
	if got[0].Start >= got[1].Start {
		t.Errorf("expected ascending start order, got %d then %d", got[0].Start, got[1].Start)
	}
}
