package flatten

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup flattens inline HTML that web-authored decks leave inside
// block text (<b>, <em>, <br>, anchor tags) down to its text content.
// Strings without markup pass through untouched, and any parse failure
// returns the raw input unchanged.
func StripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	return strings.TrimSpace(buf.String())
}
