package mine

// Entity records are derived, immutable once produced, and rebuilt from
// scratch on every mining pass. Dictionary-backed categories dedup by a
// case-insensitive canonical key; the first slide a match occurs on wins
// and fixes the recorded context.

// Person is a named person with an optional role and organization.
type Person struct {
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	Organization string `json:"organization,omitempty"`
	SlideIndex   int    `json:"slideIndex"`
	Context      string `json:"context,omitempty"`
}

// Organization is a named organization.
type Organization struct {
	Name       string `json:"name"`
	SlideIndex int    `json:"slideIndex"`
	Context    string `json:"context,omitempty"`
}

// Place is a named place. Kind is one of city, country, venue, region.
type Place struct {
	Name       string `json:"name"`
	Kind       string `json:"kind,omitempty"`
	SlideIndex int    `json:"slideIndex"`
	Context    string `json:"context,omitempty"`
}

// DateRecord is a detected date. Year is used purely for sort order and
// is 0 when no valid year parsed; such records sort last.
type DateRecord struct {
	Raw        string `json:"raw"`
	Formatted  string `json:"formatted"`
	Year       int    `json:"year,omitempty"`
	Month      string `json:"month,omitempty"`
	Event      string `json:"event,omitempty"`
	SlideIndex int    `json:"slideIndex"`
}

// Quote is a captured quotation. FromImage marks quotes lifted from an
// image by the external image-analysis step.
type Quote struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution,omitempty"`
	SlideIndex  int    `json:"slideIndex"`
	SlideTitle  string `json:"slideTitle,omitempty"`
	FromImage   bool   `json:"fromImage,omitempty"`
	Topic       string `json:"topic,omitempty"`
}

// Tool is a named tool, product, or platform.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Term is a domain term with its context or definition.
type Term struct {
	Term    string `json:"term"`
	Context string `json:"context,omitempty"`
}

// Link is a canonicalized hyperlink. The dedup key across the deck is the
// lower-cased raw matched string, not the canonical href: a protocol URL
// and a www bare mention of the same host stay two links.
type Link struct {
	Href        string `json:"href"`
	Display     string `json:"display"`
	Description string `json:"description,omitempty"`
	SlideIndex  int    `json:"slideIndex"`
	LinkType    string `json:"linkType,omitempty"`
}

// Image is one entry of the deck's image inventory, built for every image
// regardless of whether it contains interesting text.
type Image struct {
	Src          string `json:"src"`
	Alt          string `json:"alt,omitempty"`
	Caption      string `json:"caption,omitempty"`
	Description  string `json:"description,omitempty"`
	SlideIndex   int    `json:"slideIndex"`
	SlideTitle   string `json:"slideTitle,omitempty"`
	SectionTitle string `json:"sectionTitle,omitempty"`
}

// Result is the aggregate output of one mining pass over a whole deck.
type Result struct {
	People        []Person       `json:"people"`
	Organizations []Organization `json:"organizations"`
	Places        []Place        `json:"places"`
	Dates         []DateRecord   `json:"dates"`
	Quotes        []Quote        `json:"quotes"`
	Tools         []Tool         `json:"tools"`
	Terms         []Term         `json:"terms"`
	Links         []Link         `json:"links"`
	Images        []Image        `json:"images"`
}

func newResult() *Result {
	return &Result{
		People:        []Person{},
		Organizations: []Organization{},
		Places:        []Place{},
		Dates:         []DateRecord{},
		Quotes:        []Quote{},
		Tools:         []Tool{},
		Terms:         []Term{},
		Links:         []Link{},
		Images:        []Image{},
	}
}
