package mine

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// bareYearRe recovers a sort year from external dates like "2019" that
// none of the mechanical patterns cover.
var bareYearRe = regexp.MustCompile(`\b(?:1[89]|20)\d{2}\b`)

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Source says where a category's records come from in a given pass.
type Source string

const (
	SourceMechanical Source = "mechanical"
	SourceExternal   Source = "external"
)

// Policy is the per-category entity source, resolved once at the start of
// a mining pass rather than checked ad hoc inside extractor bodies.
// Image inventory and mechanical URL/date/quote-from-text detection are
// not subject to policy; they always run.
type Policy struct {
	People        Source
	Organizations Source
	Places        Source
	Tools         Source
	Terms         Source
}

func resolvePolicy(ext *External) Policy {
	p := Policy{
		People:        SourceMechanical,
		Organizations: SourceMechanical,
		Places:        SourceMechanical,
		Tools:         SourceMechanical,
		Terms:         SourceMechanical,
	}
	if ext == nil {
		return p
	}
	if len(ext.People) > 0 {
		p.People = SourceExternal
	}
	if len(ext.Organizations) > 0 {
		p.Organizations = SourceExternal
	}
	if len(ext.Places) > 0 {
		p.Places = SourceExternal
	}
	if len(ext.Tools) > 0 {
		p.Tools = SourceExternal
	}
	if len(ext.Terms) > 0 {
		p.Terms = SourceExternal
	}
	return p
}

// Mention locates one occurrence of an external entity.
type Mention struct {
	SlideIndex int    `json:"slideIndex"`
	Context    string `json:"context,omitempty"`
}

// External is the optional pre-extracted entities document produced by an
// AI-assisted review pass. Records present for a category are used
// verbatim (after shape normalization) instead of that category's
// dictionary extractor.
type External struct {
	People []struct {
		Name     string    `json:"name"`
		Role     string    `json:"role,omitempty"`
		Mentions []Mention `json:"mentions,omitempty"`
	} `json:"people,omitempty"`
	Organizations []struct {
		Name     string    `json:"name"`
		Type     string    `json:"type,omitempty"`
		Mentions []Mention `json:"mentions,omitempty"`
	} `json:"organizations,omitempty"`
	Places []struct {
		Name     string    `json:"name"`
		Kind     string    `json:"kind,omitempty"`
		Mentions []Mention `json:"mentions,omitempty"`
	} `json:"places,omitempty"`
	Tools []struct {
		Name     string    `json:"name"`
		Maker    string    `json:"maker,omitempty"`
		Type     string    `json:"type,omitempty"`
		Mentions []Mention `json:"mentions,omitempty"`
	} `json:"tools,omitempty"`
	Terms []struct {
		Term       string `json:"term"`
		Definition string `json:"definition,omitempty"`
		SlideIndex int    `json:"slideIndex,omitempty"`
	} `json:"terms,omitempty"`
	Quotes []struct {
		Text        string `json:"text"`
		Attribution string `json:"attribution,omitempty"`
		Source      string `json:"source,omitempty"`
		SlideIndex  int    `json:"slideIndex,omitempty"`
		Topic       string `json:"topic,omitempty"`
	} `json:"quotes,omitempty"`
	Dates []struct {
		Date       string `json:"date"`
		Event      string `json:"event,omitempty"`
		SlideIndex int    `json:"slideIndex,omitempty"`
	} `json:"dates,omitempty"`
	Links []struct {
		URL        string `json:"url"`
		Label      string `json:"label,omitempty"`
		LinkType   string `json:"linkType,omitempty"`
		SlideIndex int    `json:"slideIndex,omitempty"`
	} `json:"links,omitempty"`
}

// ParseExternal decodes an external entities document. Absence of the
// document is not an error — callers simply pass nil to Mine.
func ParseExternal(data []byte) (*External, error) {
	var ext External
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("parse entities document: %w", err)
	}
	return &ext, nil
}

// applyExternal folds externally-supplied records into the result.
// Dictionary categories replace their extractor wholesale; quotes, dates,
// and links merge ahead of mechanical detection and share its dedup keys.
func (m *Miner) applyExternal(res *Result, ext *External, policy Policy, seenQuotes, seenLinks map[string]bool) {
	if policy.People == SourceExternal {
		for _, e := range ext.People {
			if strings.TrimSpace(e.Name) == "" {
				continue
			}
			p := Person{Name: e.Name, Role: e.Role}
			if len(e.Mentions) > 0 {
				p.SlideIndex = e.Mentions[0].SlideIndex
				p.Context = e.Mentions[0].Context
			}
			res.People = append(res.People, p)
		}
	}
	if policy.Organizations == SourceExternal {
		for _, e := range ext.Organizations {
			if strings.TrimSpace(e.Name) == "" {
				continue
			}
			o := Organization{Name: e.Name}
			if len(e.Mentions) > 0 {
				o.SlideIndex = e.Mentions[0].SlideIndex
				o.Context = e.Mentions[0].Context
			}
			res.Organizations = append(res.Organizations, o)
		}
	}
	if policy.Places == SourceExternal {
		for _, e := range ext.Places {
			if strings.TrimSpace(e.Name) == "" {
				continue
			}
			pl := Place{Name: e.Name, Kind: e.Kind}
			if len(e.Mentions) > 0 {
				pl.SlideIndex = e.Mentions[0].SlideIndex
				pl.Context = e.Mentions[0].Context
			}
			res.Places = append(res.Places, pl)
		}
	}
	if policy.Tools == SourceExternal {
		for _, e := range ext.Tools {
			if strings.TrimSpace(e.Name) == "" {
				continue
			}
			desc := e.Type
			if e.Maker != "" {
				desc = strings.TrimSpace(e.Maker + " " + e.Type)
			}
			res.Tools = append(res.Tools, Tool{Name: e.Name, Description: desc})
		}
	}
	if policy.Terms == SourceExternal {
		for _, e := range ext.Terms {
			if strings.TrimSpace(e.Term) == "" {
				continue
			}
			res.Terms = append(res.Terms, Term{Term: e.Term, Context: e.Definition})
		}
	}

	// Quotes, dates, and links supplement mechanical detection rather
	// than replacing it.
	for _, e := range ext.Quotes {
		key := quoteKey(e.Text, m.cfg.QuoteDedupPrefix)
		if key == "" || seenQuotes[key] {
			continue
		}
		seenQuotes[key] = true
		res.Quotes = append(res.Quotes, Quote{
			Text:        e.Text,
			Attribution: e.Attribution,
			SlideIndex:  e.SlideIndex,
			FromImage:   strings.EqualFold(e.Source, "image"),
			Topic:       e.Topic,
		})
	}
	for _, e := range ext.Dates {
		raw := strings.TrimSpace(e.Date)
		if raw == "" {
			continue
		}
		rec := DateRecord{Raw: raw, Formatted: raw, Event: e.Event, SlideIndex: e.SlideIndex}
		// Re-detect to normalize the display form and recover the year.
		if dms := m.det.Dates(raw); len(dms) > 0 {
			rec.Formatted = dms[0].Formatted
			rec.Month = dms[0].Month
			rec.Year = dms[0].Year
		} else if y := bareYearRe.FindString(raw); y != "" {
			rec.Year = atoi(y)
		}
		res.Dates = append(res.Dates, rec)
	}
	for _, e := range ext.Links {
		raw := strings.TrimSpace(e.URL)
		if raw == "" {
			continue
		}
		key := strings.ToLower(raw)
		if seenLinks[key] {
			continue
		}
		seenLinks[key] = true
		c := m.canon.Canonicalize(raw)
		link := Link{
			Href:       c.Href,
			Display:    c.Display,
			SlideIndex: e.SlideIndex,
			LinkType:   e.LinkType,
		}
		if e.Label != "" {
			link.Display = e.Label
		}
		res.Links = append(res.Links, link)
	}
}
