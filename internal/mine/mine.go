// Package mine runs the per-category entity extractors over a whole deck
// and aggregates their output into one result. The pass is synchronous
// and pure: a fresh, independent Result per invocation, no I/O, no shared
// mutable state. Running the same pass twice over an unchanged deck
// yields byte-identical output.
package mine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dgallion1/deckmine/internal/deck"
	"github.com/dgallion1/deckmine/internal/dict"
	"github.com/dgallion1/deckmine/internal/flatten"
	"github.com/dgallion1/deckmine/internal/linkify"
	"github.com/dgallion1/deckmine/internal/spans"
)

// Config bounds the mining pass. The quote dedup prefix and minimum quote
// lengths mirror observed behavior of the source material pipeline and
// are configurable rather than hardcoded.
type Config struct {
	// QuoteDedupPrefix is the dedup key length for quotes: two distinct
	// quotes sharing the same opening prefix collapse into one. Known
	// boundary case, kept deliberately.
	QuoteDedupPrefix int
	// MinQuoteLen is the minimum quoted-run length captured from slide text.
	MinQuoteLen int
	// MinImageQuoteLen: image-embedded quotations must be strictly longer.
	MinImageQuoteLen int
}

// DefaultConfig returns the observed source defaults.
func DefaultConfig() Config {
	return Config{
		QuoteDedupPrefix: 50,
		MinQuoteLen:      20,
		MinImageQuoteLen: 10,
	}
}

// Miner holds the compiled dictionaries and detectors for mining passes.
// Construct once at startup and reuse; it is safe for concurrent use
// because a pass never mutates it.
type Miner struct {
	tables *dict.Compiled
	det    *spans.Detector
	canon  *linkify.Canonicalizer
	roleRe *regexp.Regexp
	cfg    Config
}

// New builds a miner over compiled dictionary tables.
func New(tables *dict.Compiled, cfg Config) *Miner {
	if cfg.QuoteDedupPrefix <= 0 {
		cfg.QuoteDedupPrefix = 50
	}
	if cfg.MinQuoteLen <= 0 {
		cfg.MinQuoteLen = 20
	}
	if cfg.MinImageQuoteLen <= 0 {
		cfg.MinImageQuoteLen = 10
	}
	return &Miner{
		tables: tables,
		det:    spans.NewDetector(tables.TLDs, tables.ShortLinkHosts, cfg.MinQuoteLen),
		canon:  linkify.New(tables.ShortLinkHosts),
		roleRe: compileRolePattern(tables.Roles),
		cfg:    cfg,
	}
}

// compileRolePattern builds the positional person matcher: two or more
// capitalized words immediately followed by a comma or parenthesis and a
// role token.
func compileRolePattern(roles []string) *regexp.Regexp {
	if len(roles) == 0 {
		return nil
	}
	quoted := make([]string, len(roles))
	for i, r := range roles {
		quoted[i] = regexp.QuoteMeta(r)
	}
	return regexp.MustCompile(
		`\b([A-Z][A-Za-z'’.\-]*(?:\s+[A-Z][A-Za-z'’.\-]*)+)\s*[,(]\s*(` +
			strings.Join(quoted, "|") + `)\b`)
}

// Mine runs one full extraction pass over the deck. ext may be nil; when
// present, its per-category records replace the dictionary extractors for
// those categories, while image inventory and mechanical URL/date/quote
// detection always run.
func (m *Miner) Mine(p *deck.Presentation, ext *External) *Result {
	res := newResult()
	policy := resolvePolicy(ext)

	// First-match-wins dedup state, keyed case-insensitively. The pass is
	// strictly sequential per deck, so "first" means first by slide index.
	seenPeople := map[string]bool{}
	seenOrgs := map[string]bool{}
	seenPlaces := map[string]bool{}
	seenTools := map[string]bool{}
	seenTerms := map[string]bool{}
	seenLinks := map[string]bool{}
	seenQuotes := map[string]bool{}

	if ext != nil {
		m.applyExternal(res, ext, policy, seenQuotes, seenLinks)
	}

	p.EachSlide(func(index int, sectionTitle string, slide *deck.Slide) {
		st := flatten.SlideText(index, sectionTitle, slide)
		text := joinNonEmpty(st.Title, st.Content, st.Notes)

		if policy.People == SourceMechanical {
			m.minePeople(res, text, st, seenPeople)
		}
		if policy.Organizations == SourceMechanical {
			for _, e := range m.tables.Organizations {
				key := canonicalKey(e.Name)
				if seenOrgs[key] || !e.Re.MatchString(text) {
					continue
				}
				seenOrgs[key] = true
				res.Organizations = append(res.Organizations, Organization{
					Name: e.Name, SlideIndex: index, Context: st.SlideTitle,
				})
			}
		}
		if policy.Places == SourceMechanical {
			for _, e := range m.tables.Places {
				key := canonicalKey(e.Name)
				if seenPlaces[key] || !e.Re.MatchString(text) {
					continue
				}
				seenPlaces[key] = true
				res.Places = append(res.Places, Place{
					Name: e.Name, Kind: e.Kind, SlideIndex: index, Context: st.SlideTitle,
				})
			}
		}
		if policy.Tools == SourceMechanical {
			for _, e := range m.tables.Tools {
				key := canonicalKey(e.Name)
				if seenTools[key] || !e.Re.MatchString(text) {
					continue
				}
				seenTools[key] = true
				res.Tools = append(res.Tools, Tool{Name: e.Name, Description: e.Description})
			}
		}
		if policy.Terms == SourceMechanical {
			for _, e := range m.tables.Terms {
				key := canonicalKey(e.Term)
				if seenTerms[key] || !e.Re.MatchString(text) {
					continue
				}
				seenTerms[key] = true
				res.Terms = append(res.Terms, Term{Term: e.Term, Context: e.Definition})
			}
		}

		// Mechanical detection below always runs, regardless of policy.
		m.mineDates(res, text, st)
		m.mineQuotes(res, text, st, slide, seenQuotes)
		m.mineLinks(res, text, st, seenLinks)
		mineImages(res, st, slide)
	})

	// Deck-wide canonical ordering: dates descending by year, ties keep
	// first-seen order, year 0 last.
	sort.SliceStable(res.Dates, func(i, j int) bool {
		return res.Dates[i].Year > res.Dates[j].Year
	})

	return res
}

// minePeople runs the person dictionary plus the positional role pattern.
func (m *Miner) minePeople(res *Result, text string, st deck.SlideText, seen map[string]bool) {
	for _, e := range m.tables.People {
		key := canonicalKey(e.Name)
		if seen[key] || !e.Re.MatchString(text) {
			continue
		}
		seen[key] = true
		res.People = append(res.People, Person{
			Name:         e.Name,
			Role:         e.Role,
			Organization: e.Organization,
			SlideIndex:   st.SlideIndex,
			Context:      st.SlideTitle,
		})
	}

	if m.roleRe == nil {
		return
	}
	for _, sm := range m.roleRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(sm[1])
		key := canonicalKey(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		res.People = append(res.People, Person{
			Name:       name,
			Role:       sm[2],
			SlideIndex: st.SlideIndex,
			Context:    st.SlideTitle,
		})
	}
}

// mineDates runs the three date patterns over one slide's text. A
// month-year record whose normalized form was already produced by the
// full-date pattern in the same slide pass is skipped.
func (m *Miner) mineDates(res *Result, text string, st deck.SlideText) {
	seenThisSlide := map[string]bool{}
	for _, dm := range m.det.Dates(text) {
		if seenThisSlide[dm.Formatted] {
			continue
		}
		if dm.Kind == spans.KindDateFull && dm.Month != "" && dm.Year > 0 {
			// A full date also claims its bare month-year form.
			seenThisSlide[monthYearKey(dm.Month, dm.Year)] = true
		}
		seenThisSlide[dm.Formatted] = true
		res.Dates = append(res.Dates, DateRecord{
			Raw:        dm.Text,
			Formatted:  dm.Formatted,
			Year:       dm.Year,
			Month:      dm.Month,
			Event:      st.SlideTitle,
			SlideIndex: st.SlideIndex,
		})
	}
}

func monthYearKey(month string, year int) string {
	return month + " " + strconv.Itoa(year)
}

// mineQuotes captures slide-level quoted runs, quote-layout headings, and
// image-embedded quotations into one merged collection.
func (m *Miner) mineQuotes(res *Result, text string, st deck.SlideText, slide *deck.Slide, seen map[string]bool) {
	add := func(q Quote) {
		key := quoteKey(q.Text, m.cfg.QuoteDedupPrefix)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		res.Quotes = append(res.Quotes, q)
	}

	for _, qm := range m.det.QuotedRuns(text) {
		add(Quote{Text: qm.Text, SlideIndex: st.SlideIndex, SlideTitle: st.SlideTitle})
	}

	if strings.Contains(strings.ToLower(slide.Layout), "quote") {
		if h := firstHeadingText(slide); len(h) >= m.cfg.MinQuoteLen {
			add(Quote{
				Text:        h,
				Attribution: slide.Title,
				SlideIndex:  st.SlideIndex,
				SlideTitle:  st.SlideTitle,
			})
		}
	}

	for _, b := range slide.Content {
		if b.Type != deck.BlockImage {
			continue
		}
		if len(b.QuoteText) > m.cfg.MinImageQuoteLen {
			add(Quote{
				Text:        b.QuoteText,
				Attribution: b.QuoteAttribution,
				SlideIndex:  st.SlideIndex,
				SlideTitle:  st.SlideTitle,
				FromImage:   true,
			})
		}
	}
}

// mineLinks detects the URL family and canonicalizes survivors. Dedup is
// on the lower-cased raw matched string.
func (m *Miner) mineLinks(res *Result, text string, st deck.SlideText, seen map[string]bool) {
	for _, um := range m.det.URLs(text) {
		key := strings.ToLower(um.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		c := m.canon.Canonicalize(um.Text)
		link := Link{
			Href:       c.Href,
			Display:    c.Display,
			SlideIndex: st.SlideIndex,
		}
		if um.Kind == spans.KindShortLink {
			link.LinkType = "shortlink"
		}
		res.Links = append(res.Links, link)
	}
}

// mineImages records the full image inventory, independent of whether an
// image contains interesting text.
func mineImages(res *Result, st deck.SlideText, slide *deck.Slide) {
	for _, b := range slide.Content {
		if b.Type != deck.BlockImage {
			continue
		}
		res.Images = append(res.Images, Image{
			Src:          b.Src,
			Alt:          b.Alt,
			Caption:      b.Caption,
			Description:  b.Description,
			SlideIndex:   st.SlideIndex,
			SlideTitle:   st.SlideTitle,
			SectionTitle: st.SectionTitle,
		})
	}
}

func firstHeadingText(slide *deck.Slide) string {
	for _, b := range slide.Content {
		if b.Type == deck.BlockHeading {
			return flatten.StripMarkup(strings.TrimSpace(b.Text))
		}
	}
	return ""
}

// canonicalKey is the case-insensitive, trimmed dedup key for dictionary
// categories.
func canonicalKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// quoteKey is the fixed-length, case-sensitive prefix dedup key for
// quotes.
func quoteKey(text string, prefix int) string {
	t := strings.TrimSpace(text)
	if len(t) > prefix {
		t = t[:prefix]
	}
	return t
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
