package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/deckmine/internal/deckio"
	"github.com/dgallion1/deckmine/internal/mine"
	"github.com/dgallion1/deckmine/internal/registry"
	"github.com/dgallion1/deckmine/internal/search"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleUploadDeck(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !deckio.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	// Optional pre-extracted entities document.
	var ext *mine.External
	var extData []byte
	if ef, _, err := r.FormFile("entities"); err == nil {
		extData, err = io.ReadAll(io.LimitReader(ef, s.cfg.MaxUploadBytes+1))
		ef.Close()
		if err != nil {
			jsonError(w, "failed to read entities document", http.StatusInternalServerError)
			return
		}
		ext, err = mine.ParseExternal(extData)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	// Derived artifacts are memoized per content snapshot: identical deck
	// plus identical entities document reuses the stored result.
	hash := registry.ContentHashHex(bytes.Join([][]byte{data, extData}, []byte{0}))
	if d := s.store.GetByHash(hash); d != nil {
		s.writeDeckSummary(w, d, http.StatusOK, true)
		return
	}

	p, err := deckio.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	pres, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if title := r.FormValue("title"); title != "" {
		pres.Metadata.Title = title
	}

	start := time.Now()
	entities := s.miner.Mine(pres, ext)
	s.stats.Record(time.Since(start).Milliseconds(), pres.SlideCount())

	d := &registry.Deck{
		ID:           registry.NewID(),
		Title:        pres.Metadata.Title,
		SourceFile:   filename,
		ContentHash:  hash,
		SlideCount:   pres.SlideCount(),
		CreatedAt:    time.Now(),
		Presentation: pres,
		Entities:     entities,
		Index:        search.Build(pres, s.searchCfg),
	}
	s.store.Put(d)

	s.writeDeckSummary(w, d, http.StatusCreated, false)
}

func (s *Server) writeDeckSummary(w http.ResponseWriter, d *registry.Deck, code int, cached bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"deck_id":     d.ID,
		"title":       d.Title,
		"source_file": d.SourceFile,
		"slide_count": d.SlideCount,
		"cached":      cached,
		"entities": map[string]int{
			"people":        len(d.Entities.People),
			"organizations": len(d.Entities.Organizations),
			"places":        len(d.Entities.Places),
			"dates":         len(d.Entities.Dates),
			"quotes":        len(d.Entities.Quotes),
			"tools":         len(d.Entities.Tools),
			"terms":         len(d.Entities.Terms),
			"links":         len(d.Entities.Links),
			"images":        len(d.Entities.Images),
		},
	})
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	decks := s.store.List()
	out := make([]map[string]any, 0, len(decks))
	for _, d := range decks {
		out = append(out, map[string]any{
			"deck_id":     d.ID,
			"title":       d.Title,
			"source_file": d.SourceFile,
			"slide_count": d.SlideCount,
			"created_at":  d.CreatedAt,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"decks": out})
}

func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	d := s.store.Get(chi.URLParam(r, "deckID"))
	if d == nil {
		jsonError(w, "deck not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d.Entities)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	d := s.store.Get(chi.URLParam(r, "deckID"))
	if d == nil {
		jsonError(w, "deck not found", http.StatusNotFound)
		return
	}
	results := d.Index.Query(r.URL.Query().Get("q"))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"results": results})
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(chi.URLParam(r, "deckID")) {
		jsonError(w, "deck not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"deleted"}`))
}

func (s *Server) handleMineStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.stats.Snapshot())
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
