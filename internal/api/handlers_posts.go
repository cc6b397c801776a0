package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/arterdev/site/internal/content"
	"github.com/arterdev/site/internal/feed"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.site)
}

// handleListPosts returns one page of post summaries, newest first.
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			jsonError(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}
		page = n
	}

	perPage := s.site.PostsPerPage
	posts, total := s.store.List(page, perPage)

	summaries := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summary())
	}

	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"posts":    summaries,
		"page":     page,
		"pages":    pages,
		"total":    total,
		"per_page": perPage,
	})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.lookupPost(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) lookupPost(w http.ResponseWriter, r *http.Request) (*content.Post, bool) {
	slug := chi.URLParam(r, "slug")
	post, err := s.store.Get(slug)
	if errors.Is(err, content.ErrNotFound) {
		jsonError(w, "post not found: "+slug, http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		jsonError(w, "failed to load post: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return post, true
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	f, err := feed.Build(s.site, s.cfg.SiteURL, s.store.Recent(s.cfg.FeedLimit), s.cfg.FeedLimit)
	if err != nil {
		s.log.Error("build feed", "error", err)
		jsonError(w, "failed to build feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", feed.ContentType)
	enc := newIndentEncoder(w)
	if err := enc.Encode(f); err != nil {
		s.log.Warn("write feed", "error", err)
	}
}

// handleReload re-reads the content directory.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if err := s.store.Reload(r.Context()); err != nil {
		s.log.Error("reload content", "error", err)
		jsonError(w, "reload failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	_, total := s.store.List(1, 0)
	writeJSON(w, http.StatusOK, map[string]any{
		"posts":       total,
		"loaded_at":   s.store.LoadedAt(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
}
