package deckio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/deckmine/internal/deck"
)

// JSONParser handles the presentation.json shape produced by the PPTX
// extraction tooling.
type JSONParser struct{}

func (p *JSONParser) Parse(r io.Reader, filename string) (*deck.Presentation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Metadata deck.Metadata `json:"metadata"`
		Sections []struct {
			Title  string `json:"title"`
			Slides []struct {
				Order   int               `json:"order"`
				Title   string            `json:"title"`
				Layout  string            `json:"layout"`
				Notes   string            `json:"notes"`
				Content []json.RawMessage `json:"content"`
			} `json:"slides"`
		} `json:"sections"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse deck json: %w", err)
	}

	pres := &deck.Presentation{Metadata: raw.Metadata}
	if pres.Metadata.Title == "" {
		pres.Metadata.Title = strings.TrimSuffix(filename, ".json")
	}

	for _, rs := range raw.Sections {
		sec := deck.Section{Title: rs.Title}
		for _, sl := range rs.Slides {
			slide := deck.Slide{
				Order:  sl.Order,
				Title:  sl.Title,
				Layout: sl.Layout,
				Notes:  sl.Notes,
			}
			for _, rb := range sl.Content {
				slide.Content = append(slide.Content, decodeBlock(rb))
			}
			sec.Slides = append(sec.Slides, slide)
		}
		pres.Sections = append(pres.Sections, sec)
	}

	return pres, nil
}

// decodeBlock decodes one content block. A malformed block degrades to an
// empty block (which contributes no text) rather than failing the deck.
func decodeBlock(raw json.RawMessage) deck.Block {
	var b deck.Block
	if err := json.Unmarshal(raw, &b); err != nil {
		return deck.Block{}
	}
	return b
}
