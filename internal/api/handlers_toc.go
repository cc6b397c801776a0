package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/arterdev/site/internal/doctree"
	"github.com/arterdev/site/internal/headings"
	"github.com/arterdev/site/internal/parser"
)

// handlePostTOC returns the outline of a published post.
func (s *Server) handlePostTOC(w http.ResponseWriter, r *http.Request) {
	post, ok := s.lookupPost(w, r)
	if !ok {
		return
	}
	s.writeTOC(w, r, post.Headings)
}

// handleTOC returns the outline of a submitted document: either a raw
// markdown body or a multipart "file" upload of any supported type.
func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxTOCBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		forest, status, err := s.parseUpload(r)
		if err != nil {
			jsonError(w, err.Error(), status)
			return
		}
		s.writeTOC(w, r, forest)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		status, msg := readErrorStatus(err, s.cfg.MaxTOCBytes)
		jsonError(w, msg, status)
		return
	}
	s.writeTOC(w, r, headings.Extract(string(data)))
}

func (s *Server) parseUpload(r *http.Request) ([]*doctree.Heading, int, error) {
	if err := r.ParseMultipartForm(s.cfg.MaxTOCBytes); err != nil {
		status, msg := readErrorStatus(err, s.cfg.MaxTOCBytes)
		return nil, status, errors.New(msg)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("file is required: %w", err)
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}

	doc, err := p.Parse(file, filename)
	if err != nil {
		return nil, http.StatusUnprocessableEntity, fmt.Errorf("parse %s: %w", filename, err)
	}
	return doc.Headings, http.StatusOK, nil
}

func readErrorStatus(err error, limit int64) (int, string) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge, fmt.Sprintf("document exceeds max size (%d bytes)", limit)
	}
	return http.StatusBadRequest, "failed to read request body: " + err.Error()
}

// writeTOC renders forest as JSON, or as a nested list with ?format=html.
// ?unique=true suffixes repeated ids.
func (s *Server) writeTOC(w http.ResponseWriter, r *http.Request, forest []*doctree.Heading) {
	q := r.URL.Query()
	if q.Get("unique") == "true" {
		forest = headings.UniqueIDs(forest)
	}

	switch q.Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, map[string]any{"headings": forest})
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := headings.RenderHTML(w, forest); err != nil {
			s.log.Warn("write toc", "error", err)
		}
	default:
		jsonError(w, "format must be json or html", http.StatusBadRequest)
	}
}
