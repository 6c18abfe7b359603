package deckio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/deckmine/internal/deck"
)

// Parser converts a raw deck document into a Presentation.
type Parser interface {
	Parse(r io.Reader, filename string) (*deck.Presentation, error)
}

// SupportedExtensions lists deck document extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".json": true,
	".md":   true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
