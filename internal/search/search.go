// Package search builds a per-slide searchable-text index and answers
// case-insensitive substring queries with bounded context windows. The
// index is built once per deck load and read-only thereafter; queries
// never mutate it.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/deckmine/internal/deck"
	"github.com/dgallion1/deckmine/internal/flatten"
)

// Match-type tags, in field priority order.
const (
	MatchTitle   = "title"
	MatchContent = "content"
	MatchNotes   = "notes"
)

// Ellipsis marks a context window clipped at either end.
const Ellipsis = "…"

// Config bounds query behavior.
type Config struct {
	// MinQueryLen is the minimum query length; shorter queries return an
	// empty result set, a policy against pathological over-matching, not
	// an error.
	MinQueryLen int
	// MaxResults caps the overall result list.
	MaxResults int
	// ContextWindow is the number of characters kept on either side of
	// the first match when building the preview.
	ContextWindow int
}

// DefaultConfig returns the observed source defaults.
func DefaultConfig() Config {
	return Config{MinQueryLen: 2, MaxResults: 20, ContextWindow: 30}
}

// entry is one slide's immutable searchable bundle.
type entry struct {
	slideIndex   int
	sectionTitle string
	slideTitle   string
	title        string
	content      string
	notes        string
}

// Result is one query hit. Results are emitted in ascending slide-index
// order, never reordered by match quality.
type Result struct {
	SlideIndex   int    `json:"slideIndex"`
	SectionTitle string `json:"sectionTitle,omitempty"`
	SlideTitle   string `json:"slideTitle,omitempty"`
	MatchContext string `json:"matchContext"`
	MatchType    string `json:"matchType"`
}

// Index is a read-only full-text index over one deck.
type Index struct {
	entries []entry
	cfg     Config
}

// Build assembles the index: one entry per slide, content joined from the
// flattened block text, notes kept raw. Entries are never mutated; a
// changed deck gets a wholesale rebuild.
func Build(p *deck.Presentation, cfg Config) *Index {
	if cfg.MinQueryLen <= 0 {
		cfg.MinQueryLen = 2
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 20
	}
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = 30
	}

	idx := &Index{cfg: cfg}
	p.EachSlide(func(index int, sectionTitle string, slide *deck.Slide) {
		st := flatten.SlideText(index, sectionTitle, slide)
		idx.entries = append(idx.entries, entry{
			slideIndex:   st.SlideIndex,
			sectionTitle: st.SectionTitle,
			slideTitle:   st.SlideTitle,
			title:        st.Title,
			content:      st.Content,
			notes:        st.Notes,
		})
	})
	return idx
}

// Query performs a case-insensitive substring search. Per slide, title is
// tested first, then content, then notes; the first matching field fixes
// the result's match type and only one result is emitted per slide.
func (idx *Index) Query(query string) []Result {
	results := []Result{}
	if len(query) < idx.cfg.MinQueryLen {
		return results
	}
	needle := strings.ToLower(query)

	for _, e := range idx.entries {
		var field, matchType string
		switch {
		case strings.Contains(strings.ToLower(e.title), needle):
			field, matchType = e.title, MatchTitle
		case strings.Contains(strings.ToLower(e.content), needle):
			field, matchType = e.content, MatchContent
		case strings.Contains(strings.ToLower(e.notes), needle):
			field, matchType = e.notes, MatchNotes
		default:
			continue
		}

		results = append(results, Result{
			SlideIndex:   e.slideIndex,
			SectionTitle: e.sectionTitle,
			SlideTitle:   e.slideTitle,
			MatchContext: contextWindow(field, needle, idx.cfg.ContextWindow),
			MatchType:    matchType,
		})
		if len(results) >= idx.cfg.MaxResults {
			break
		}
	}
	return results
}

// contextWindow returns a bounded substring around the first occurrence
// of needle in field, with an ellipsis marker on any clipped end.
func contextWindow(field, needle string, window int) string {
	pos := strings.Index(strings.ToLower(field), needle)
	if pos < 0 {
		return ""
	}
	if pos > len(field) {
		pos = len(field)
	}

	start := pos - window
	if start < 0 {
		start = 0
	}
	end := pos + len(needle) + window
	if end > len(field) {
		end = len(field)
	}
	// Case mapping can shift byte offsets on non-ASCII text; never cut
	// inside a rune.
	for start > 0 && !utf8.RuneStart(field[start]) {
		start--
	}
	for end < len(field) && !utf8.RuneStart(field[end]) {
		end++
	}

	out := field[start:end]
	if start > 0 {
		out = Ellipsis + out
	}
	if end < len(field) {
		out = out + Ellipsis
	}
	return out
}
