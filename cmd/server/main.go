package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/deckmine/internal/api"
	"github.com/dgallion1/deckmine/internal/config"
	"github.com/dgallion1/deckmine/internal/dict"
	"github.com/dgallion1/deckmine/internal/mine"
	"github.com/dgallion1/deckmine/internal/registry"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Dictionary tables compile once at startup; a bad YAML entry fails
	// here, never during a mining pass.
	tables := dict.Defaults()
	if cfg.DictionaryPath != "" {
		var err error
		tables, err = dict.LoadFile(cfg.DictionaryPath)
		if err != nil {
			log.Error("failed to load dictionary file", "path", cfg.DictionaryPath, "error", err)
			os.Exit(1)
		}
	}
	compiled, err := tables.Compile()
	if err != nil {
		log.Error("failed to compile dictionaries", "error", err)
		os.Exit(1)
	}

	miner := mine.New(compiled, mine.Config{
		QuoteDedupPrefix: cfg.QuoteDedupPrefix,
		MinQuoteLen:      cfg.MinQuoteLen,
	})
	stats := mine.NewStats(time.Hour)
	store := registry.NewStore(cfg.DeckTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Periodic registry eviction.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				store.Cleanup()
			}
		}
	}()

	srv := api.NewServer(store, miner, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting deckmine", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
