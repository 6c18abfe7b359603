package deckio

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/deckmine/internal/deck"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles decks authored as a Markdown outline: a level-1
// heading opens a section, a level-2 heading opens a slide, lists become
// list blocks, images become image blocks, and remaining paragraphs become
// shape text. Deeper headings become heading blocks on the current slide.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*deck.Presentation, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	pres := &deck.Presentation{
		Metadata: deck.Metadata{
			Title:      strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
			SourceFile: filename,
		},
	}

	var section *deck.Section
	var slide *deck.Slide

	ensureSection := func(title string) {
		pres.Sections = append(pres.Sections, deck.Section{Title: title})
		section = &pres.Sections[len(pres.Sections)-1]
		slide = nil
	}
	ensureSlide := func(title string) {
		if section == nil {
			ensureSection(pres.Metadata.Title)
		}
		section.Slides = append(section.Slides, deck.Slide{
			Title: title,
			Order: len(section.Slides) + 1,
		})
		slide = &section.Slides[len(section.Slides)-1]
	}
	appendBlock := func(b deck.Block) {
		if slide == nil {
			ensureSlide("")
		}
		slide.Content = append(slide.Content, b)
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			switch {
			case node.Level == 1:
				ensureSection(title)
			case node.Level == 2:
				ensureSlide(title)
			default:
				appendBlock(deck.Block{Type: deck.BlockHeading, Text: title, Level: node.Level})
			}

		case *ast.List:
			items := listItems(node, src)
			if len(items) > 0 {
				appendBlock(deck.Block{Type: deck.BlockList, Style: "bullet", Items: items})
			}

		default:
			if img := firstImage(n); img != nil {
				appendBlock(deck.Block{
					Type: deck.BlockImage,
					Src:  string(img.Destination),
					Alt:  string(img.Text(src)),
				})
				continue
			}
			t := inlineText(n, src)
			if t != "" {
				appendBlock(deck.Block{Type: deck.BlockShape, Text: t})
			}
		}
	}

	return pres, nil
}

// listItems converts a goldmark list into recursive deck list items.
func listItems(list *ast.List, src []byte) []deck.ListItem {
	var items []deck.ListItem
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var item deck.ListItem
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				item.Children = append(item.Children, listItems(nested, src)...)
				continue
			}
			t := inlineText(c, src)
			if t != "" {
				if item.Text != "" {
					item.Text += " "
				}
				item.Text += t
			}
		}
		if item.Text != "" || len(item.Children) > 0 {
			items = append(items, item)
		}
	}
	return items
}

// firstImage returns the sole image inside a paragraph, or nil.
func firstImage(n ast.Node) *ast.Image {
	if n.ChildCount() != 1 {
		return nil
	}
	img, ok := n.FirstChild().(*ast.Image)
	if !ok {
		return nil
	}
	return img
}

// inlineText gets the text content of a goldmark AST node.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(inlineText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
