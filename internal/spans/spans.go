// Package spans locates interesting substrings — URLs, quoted runs,
// dates — in flattened slide text and returns non-overlapping match spans
// with source offsets. Detection is deterministic, bounded-lookup pattern
// matching; there is no grammar and no fuzzy matching.
package spans

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind tags what a match is.
type Kind string

const (
	KindURL           Kind = "url"
	KindShortLink     Kind = "shortlink"
	KindDateFull      Kind = "date-full"
	KindDateMonthYear Kind = "date-month-year"
	KindDateQuarter   Kind = "date-quarter"
	KindQuoted        Kind = "quoted"
	KindDictionary    Kind = "dictionary"
)

// Match is a half-open [Start, End) character range within the scanned
// string. Text is the raw matched substring (for quoted runs, the text
// inside the quotes).
type Match struct {
	Start int
	End   int
	Text  string
	Kind  Kind
}

// Overlaps reports whether either match's start falls within the other's
// range.
func (m Match) Overlaps(o Match) bool {
	return (m.Start >= o.Start && m.Start < o.End) ||
		(o.Start >= m.Start && o.Start < m.End)
}

// Detector holds the compiled lookup patterns. Build one per process (or
// per test fixture) and reuse it; compilation happens once and only from
// static pattern text.
type Detector struct {
	protocolRe  *regexp.Regexp
	domainRe    *regexp.Regexp
	shortHosts  map[string]bool
	quoteRes    []*regexp.Regexp
	fullDateRe  *regexp.Regexp
	monthYearRe *regexp.Regexp
	quarterRe   *regexp.Regexp
	minQuoteLen int
}

// urlTermChars excludes whitespace and enclosing punctuation from URL runs.
const urlTermChars = `[^\s()\[\]{}<>"']`

const monthGroup = `(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// NewDetector builds a detector from the injected TLD allow-list,
// short-link host set, and minimum quoted-run length.
func NewDetector(tlds []string, shortLinkHosts map[string]bool, minQuoteLen int) *Detector {
	if minQuoteLen <= 0 {
		minQuoteLen = 20
	}
	if len(tlds) == 0 {
		tlds = []string{"com", "org", "net"}
	}

	// The allow-list entries are literal labels, never pattern syntax.
	escaped := make([]string, len(tlds))
	for i, tld := range tlds {
		escaped[i] = regexp.QuoteMeta(tld)
	}
	domainPattern := `(?i)(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+(?:` +
		strings.Join(escaped, "|") + `)\b(?:/` + urlTermChars + `*)?`

	return &Detector{
		protocolRe: regexp.MustCompile(`(?i)https?://` + urlTermChars + `+`),
		domainRe:   regexp.MustCompile(domainPattern),
		shortHosts: shortLinkHosts,
		quoteRes: []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`"([^"\n]{%d,})"`, minQuoteLen)),
			regexp.MustCompile(fmt.Sprintf(`'([^'\n]{%d,})'`, minQuoteLen)),
			regexp.MustCompile(fmt.Sprintf(`\x{201C}([^\x{201C}\x{201D}\n]{%d,})\x{201D}`, minQuoteLen)),
		},
		fullDateRe:  regexp.MustCompile(`(?i)\b` + monthGroup + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`),
		monthYearRe: regexp.MustCompile(`(?i)\b` + monthGroup + `\.?\s+(\d{4})\b`),
		quarterRe:   regexp.MustCompile(`\b[Qq]([1-4])\s+(\d{4})\b`),
		minQuoteLen: minQuoteLen,
	}
}

// URLs finds every URL-like run in s. The protocol pattern runs first and
// its spans win: a bare-domain candidate overlapping any protocol span is
// dropped, because a protocol URL's host would otherwise also satisfy the
// domain pattern and double-report the same link. A bare-domain candidate
// immediately preceded by a word character or '@' is dropped too, which
// keeps the domain portion of an email address from being linkified.
// Surviving matches are merged and sorted by start offset ascending.
func (d *Detector) URLs(s string) []Match {
	var out []Match

	for _, loc := range d.protocolRe.FindAllStringIndex(s, -1) {
		start, end := loc[0], trimTrailingPunct(s, loc[0], loc[1])
		if end <= start {
			continue
		}
		out = append(out, d.urlMatch(s, start, end))
	}
	protocolCount := len(out)

	for _, loc := range d.domainRe.FindAllStringIndex(s, -1) {
		start, end := loc[0], trimTrailingPunct(s, loc[0], loc[1])
		if end <= start {
			continue
		}
		if wordOrAtPrecedes(s, start) {
			continue
		}
		cand := d.urlMatch(s, start, end)
		overlapped := false
		for _, p := range out[:protocolCount] {
			if cand.Overlaps(p) {
				overlapped = true
				break
			}
		}
		if !overlapped {
			out = append(out, cand)
		}
	}

	// Protocol matches were appended first; restore text order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func (d *Detector) urlMatch(s string, start, end int) Match {
	text := s[start:end]
	kind := KindURL
	if d.shortHosts[hostOf(text)] {
		kind = KindShortLink
	}
	return Match{Start: start, End: end, Text: text, Kind: kind}
}

// hostOf extracts the lower-cased host portion of a raw URL-like string.
func hostOf(raw string) string {
	h := strings.ToLower(raw)
	if i := strings.Index(h, "://"); i >= 0 {
		h = h[i+3:]
	}
	if i := strings.IndexAny(h, "/?#"); i >= 0 {
		h = h[:i]
	}
	return h
}

// trimTrailingPunct backs the end of a match off trailing sentence
// punctuation. A period inside a path is a legitimate path character;
// one at the very end of a match is sentence punctuation.
func trimTrailingPunct(s string, start, end int) int {
	for end > start {
		switch s[end-1] {
		case '.', ',', ';', ':', '!', '?':
			end--
		default:
			return end
		}
	}
	return end
}

// wordOrAtPrecedes reports whether the rune immediately before start is
// a letter, digit, underscore, or '@'. Decoding a whole rune keeps the
// email exclusion consistent on non-ASCII text.
func wordOrAtPrecedes(s string, start int) bool {
	if start == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:start])
	return r == '@' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// QuotedRuns finds every double- or single-quoted run of at least the
// configured minimum length. Text is the content inside the quotes.
func (d *Detector) QuotedRuns(s string) []Match {
	var out []Match
	for _, re := range d.quoteRes {
		for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
			out = append(out, Match{
				Start: loc[0],
				End:   loc[1],
				Text:  s[loc[2]:loc[3]],
				Kind:  KindQuoted,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
