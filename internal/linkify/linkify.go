// Package linkify resolves raw URL-like matches into a canonical absolute
// reference plus a short human-readable display label.
package linkify

import (
	"net/url"
	"strings"
)

// DefaultPathBound is the display-path truncation bound.
const DefaultPathBound = 20

// Ellipsis marks a clipped display path.
const Ellipsis = "…"

// Canonical is a resolved link.
type Canonical struct {
	Href    string
	Display string
}

// Canonicalizer turns raw matched URL strings into canonical links.
// ShortLinkHosts display their full path because the path is the only
// distinguishing identifier for a short link.
type Canonicalizer struct {
	ShortLinkHosts map[string]bool
	PathBound      int
}

// New returns a canonicalizer over the injected short-link host set.
func New(shortLinkHosts map[string]bool) *Canonicalizer {
	return &Canonicalizer{ShortLinkHosts: shortLinkHosts, PathBound: DefaultPathBound}
}

// Canonicalize resolves a raw matched URL. A schemeless match gets
// https:// prepended. If URL parsing fails for any reason the raw input
// is returned unchanged as both href and display — never an error.
func (c *Canonicalizer) Canonicalize(raw string) Canonical {
	href := raw
	if !strings.Contains(raw, "://") {
		href = "https://" + raw
	}

	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return Canonical{Href: raw, Display: raw}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := u.Path
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	bound := c.PathBound
	if bound <= 0 {
		bound = DefaultPathBound
	}

	display := host
	switch {
	case c.ShortLinkHosts[host]:
		// Short-link paths are shown in full; truncating them would
		// destroy the identifier.
		if path != "" && path != "/" {
			display = host + path
		}
	case path != "" && path != "/":
		if len(path) > bound {
			path = path[:bound] + Ellipsis
		}
		display = host + path
	}

	return Canonical{Href: href, Display: display}
}
