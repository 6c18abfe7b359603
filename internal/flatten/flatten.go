// Package flatten walks a slide's typed content blocks and produces one
// flat ordered sequence of plain-text strings, discarding all structural
// markup. It is the first stage of both the mining and search pipelines.
package flatten

import (
	"strings"

	"github.com/dgallion1/deckmine/internal/deck"
)

// Blocks returns every text field of the given content blocks as an
// ordered list of plain strings: heading text; every list item at every
// nesting depth (depth-first, parent before children); diagram node text
// with the same policy; image alt and caption (caption omitted when
// absent); video title; shape text. Unknown block types contribute
// nothing. Pure function: no block combination panics.
func Blocks(blocks []deck.Block) []string {
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(StripMarkup(s))
		if s != "" {
			out = append(out, s)
		}
	}

	for _, b := range blocks {
		switch b.Type {
		case deck.BlockHeading, deck.BlockShape:
			add(b.Text)
		case deck.BlockList:
			walkItems(b.Items, add)
		case deck.BlockDiagram:
			walkNodes(b.Nodes, add)
		case deck.BlockImage:
			add(b.Alt)
			add(b.Caption)
		case deck.BlockVideo:
			add(b.Title)
		}
	}
	return out
}

func walkItems(items []deck.ListItem, add func(string)) {
	for _, it := range items {
		add(it.Text)
		walkItems(it.Children, add)
	}
}

func walkNodes(nodes []deck.DiagramNode, add func(string)) {
	for _, n := range nodes {
		add(n.Text)
		walkNodes(n.Children, add)
	}
}

// SlideText assembles the per-slide searchable bundle: Content is the
// flattened block text joined with single spaces, Notes is the raw
// speaker-notes string.
func SlideText(index int, sectionTitle string, s *deck.Slide) deck.SlideText {
	return deck.SlideText{
		SlideIndex:   index,
		SectionTitle: sectionTitle,
		SlideTitle:   s.Title,
		Title:        s.Title,
		Content:      strings.Join(Blocks(s.Content), " "),
		Notes:        s.Notes,
	}
}
