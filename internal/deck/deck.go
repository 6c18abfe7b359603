// Package deck defines the parsed slide-deck model that the mining and
// search engines consume. A Presentation is an ordered list of sections,
// each an ordered list of slides; a slide carries a title, a free-text
// layout tag, speaker notes, and typed content blocks.
package deck

// Block type tags. Unknown tags are preserved but contribute no text.
const (
	BlockHeading = "heading"
	BlockList    = "list"
	BlockImage   = "image"
	BlockVideo   = "video"
	BlockDiagram = "diagram"
	BlockShape   = "shape"
)

// Presentation is the root of a parsed deck.
type Presentation struct {
	Metadata Metadata  `json:"metadata"`
	Sections []Section `json:"sections"`
}

// Metadata describes the source document.
type Metadata struct {
	ID         string `json:"id,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
	Title      string `json:"title,omitempty"`
}

// Section is an ordered group of slides under one title.
type Section struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Slide is a single slide. Layout is a free-text tag matched loosely
// (e.g. containing "quote" or "section").
type Slide struct {
	Order   int     `json:"order,omitempty"`
	Title   string  `json:"title"`
	Layout  string  `json:"layout,omitempty"`
	Notes   string  `json:"notes,omitempty"`
	Content []Block `json:"content,omitempty"`
}

// Block is one typed content block. Only the fields relevant to its Type
// are populated; every field is optional and absent fields decode to
// zero values.
type Block struct {
	Type string `json:"type"`

	// heading, shape
	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"`

	// list
	Style string     `json:"style,omitempty"`
	Items []ListItem `json:"items,omitempty"`

	// image
	Src         string `json:"src,omitempty"`
	Alt         string `json:"alt,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
	// Populated by an external image-analysis step, never mechanically.
	QuoteText        string `json:"quote_text,omitempty"`
	QuoteAttribution string `json:"quote_attribution,omitempty"`

	// video
	Title string `json:"title,omitempty"`

	// diagram / smart art
	Nodes []DiagramNode `json:"nodes,omitempty"`
}

// ListItem is a recursive list entry.
type ListItem struct {
	Text     string     `json:"text"`
	Children []ListItem `json:"children,omitempty"`
}

// DiagramNode is a recursive diagram/smart-art node.
type DiagramNode struct {
	Text     string        `json:"text"`
	Children []DiagramNode `json:"children,omitempty"`
}

// SlideText is the per-slide searchable bundle assembled by the flattener.
// It is ephemeral: created fresh per mining or search pass, never stored.
type SlideText struct {
	SlideIndex   int
	SectionTitle string
	SlideTitle   string
	Title        string
	Content      string
	Notes        string
}

// SlideCount returns the total number of slides across all sections.
func (p *Presentation) SlideCount() int {
	n := 0
	for _, sec := range p.Sections {
		n += len(sec.Slides)
	}
	return n
}

// EachSlide visits every slide in deck order with a single global slide
// index spanning all sections. The mining and search passes both rely on
// this ordering for first-seen-wins deduplication and result ordering.
func (p *Presentation) EachSlide(fn func(index int, sectionTitle string, slide *Slide)) {
	idx := 0
	for si := range p.Sections {
		sec := &p.Sections[si]
		for sj := range sec.Slides {
			fn(idx, sec.Title, &sec.Slides[sj])
			idx++
		}
	}
}
