package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/deckmine/internal/config"
	"github.com/dgallion1/deckmine/internal/mine"
	"github.com/dgallion1/deckmine/internal/registry"
	"github.com/dgallion1/deckmine/internal/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for deckmine.
type Server struct {
	router    chi.Router
	store     *registry.Store
	miner     *mine.Miner
	stats     *mine.Stats
	searchCfg search.Config
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *registry.Store, miner *mine.Miner, stats *mine.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: store,
		miner: miner,
		stats: stats,
		searchCfg: search.Config{
			MinQueryLen:   cfg.SearchMinQueryLen,
			MaxResults:    cfg.SearchMaxResults,
			ContextWindow: cfg.SearchContextWindow,
		},
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(requireAPIKey(s.cfg.DeckmineAPIKey))

		r.Post("/api/decks", s.handleUploadDeck)
		r.Get("/api/decks", s.handleListDecks)
		r.Get("/api/decks/{deckID}/entities", s.handleEntities)
		r.Get("/api/decks/{deckID}/search", s.handleSearch)
		r.Delete("/api/decks/{deckID}", s.handleDeleteDeck)
		r.Get("/api/stats/mine", s.handleMineStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
