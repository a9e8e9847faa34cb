package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ackhava/homepage/internal/page"
)

// ServeIndex serves the browser shell.
func (s *Site) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.index)
}

func (s *Site) handleAssets() http.Handler {
	return http.StripPrefix("/assets/", http.FileServerFS(Assets()))
}

func (s *Site) handleContent() http.Handler {
	return http.StripPrefix("/content/", http.FileServerFS(s.opts.ContentFS))
}

// handlePage renders the page named by the rest of the path, which may
// contain slashes. The hash router sends an empty name for the index.
func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	route := s.router.Parse(name)
	if route.View == page.ViewTerminal || strings.Contains(route.Page, "..") {
		http.Error(w, "not a page", http.StatusBadRequest)
		return
	}

	p, err := s.loader.Load(r.Context(), route.Page)
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			return
		}
		s.logger.ErrorContext(r.Context(), "rendering page", "page", route.Page, "error", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, statusFor(p.Status), pageResponse{
			Name:   p.Name,
			Title:  p.Title,
			Status: p.Status.String(),
			HTML:   p.HTML,
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusFor(p.Status))
	w.Write([]byte(p.HTML))
}

type pageResponse struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Status string `json:"status"`
	HTML   string `json:"html"`
}

func statusFor(st page.Status) int {
	switch st {
	case page.StatusOK:
		return http.StatusOK
	case page.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
