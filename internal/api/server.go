package api

import (
	"log/slog"
	"net/http"

	"github.com/arterdev/site/internal/config"
	"github.com/arterdev/site/internal/content"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for the site content.
type Server struct {
	router chi.Router
	store  *content.Store
	site   config.Site
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *content.Store, site config.Site, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: store,
		site:  site,
		log:   log,
		cfg:   cfg,
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
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/feed.json", s.handleFeed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/site", s.handleSite)
		r.Get("/posts", s.handleListPosts)
		r.Get("/posts/{slug}", s.handleGetPost)
		r.Get("/posts/{slug}/toc", s.handlePostTOC)
		r.Post("/toc", s.handleTOC)

		// Authenticated endpoints.
		if s.cfg.AdminAPIKey != "" {
			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware(s.cfg.AdminAPIKey, s.log))
				r.Post("/reload", s.handleReload)
			})
		}
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
