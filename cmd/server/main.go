package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arterdev/site/internal/api"
	"github.com/arterdev/site/internal/config"
	"github.com/arterdev/site/internal/content"
	"github.com/arterdev/site/internal/watcher"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	site, err := config.LoadSite(cfg.SiteConfigPath)
	if err != nil {
		log.Error("invalid site config", "path", cfg.SiteConfigPath, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load content.
	store := content.NewStore(cfg.ContentDir, log)
	if err := store.Load(ctx); err != nil {
		log.Error("load content", "dir", cfg.ContentDir, "error", err)
		os.Exit(1)
	}

	// Reload on change.
	var w *watcher.Watcher
	if cfg.WatchContent {
		w, err = watcher.New(store.Dir(), func() {
			if err := store.Reload(ctx); err != nil {
				log.Error("reload content", "error", err)
			}
		}, watcher.Options{Debounce: cfg.WatchDebounce, Logger: log})
		if err != nil {
			log.Warn("content watching disabled", "error", err)
		}
	}

	// Initialize HTTP server.
	srv := api.NewServer(store, site, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		w.Close()
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting site", "port", cfg.Port, "content_dir", cfg.ContentDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
