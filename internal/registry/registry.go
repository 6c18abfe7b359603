// Package registry keeps loaded decks and their derived artifacts in
// memory. Mining results and search indexes are memoized per deck
// content hash: re-uploading identical content reuses the stored result
// instead of re-running the extraction pass.
package registry

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgallion1/deckmine/internal/deck"
	"github.com/dgallion1/deckmine/internal/mine"
	"github.com/dgallion1/deckmine/internal/search"
	"github.com/oklog/ulid/v2"
)

// Deck is one loaded deck with its derived artifacts. Entities and Index
// are immutable once built; a content change means a new Deck.
type Deck struct {
	ID          string
	Title       string
	SourceFile  string
	ContentHash string
	SlideCount  int
	CreatedAt   time.Time

	Presentation *deck.Presentation
	Entities     *mine.Result
	Index        *search.Index
}

// Store is a thread-safe in-memory deck registry with TTL eviction.
type Store struct {
	mu     sync.Mutex
	decks  map[string]*Deck
	byHash map[string]string // content hash -> deck ID
	ttl    time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		decks:  make(map[string]*Deck),
		byHash: make(map[string]string),
		ttl:    ttl,
	}
}

// NewID returns a fresh deck ID.
func NewID() string {
	return ulid.Make().String()
}

func (s *Store) Put(d *Deck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks[d.ID] = d
	if d.ContentHash != "" {
		s.byHash[d.ContentHash] = d.ID
	}
}

func (s *Store) Get(id string) *Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decks[id]
}

// GetByHash returns the deck previously built from identical content.
func (s *Store) GetByHash(hash string) *Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.byHash[hash]; ok {
		return s.decks[id]
	}
	return nil
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.decks[id]
	if !ok {
		return false
	}
	delete(s.decks, id)
	if d.ContentHash != "" && s.byHash[d.ContentHash] == id {
		delete(s.byHash, d.ContentHash)
	}
	return true
}

// List returns all loaded decks, oldest first.
func (s *Store) List() []*Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Deck, 0, len(s.decks))
	for _, d := range s.decks {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Cleanup removes expired decks.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, d := range s.decks {
		if now.Sub(d.CreatedAt) > s.ttl {
			delete(s.decks, id)
			if d.ContentHash != "" && s.byHash[d.ContentHash] == id {
				delete(s.byHash, d.ContentHash)
			}
		}
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
