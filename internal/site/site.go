// Package site serves the personal site: the browser shell, rendered pages,
// raw content files and the terminal websocket. It also exports the pages as
// a static site.
package site

import (
	"bytes"
	"context"
	"html/template"
	"io/fs"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/ackhava/homepage/internal/content"
	"github.com/ackhava/homepage/internal/history"
	"github.com/ackhava/homepage/internal/markdown"
	"github.com/ackhava/homepage/internal/page"
)

// Options configures a Site.
type Options struct {
	Title      string
	IndexPage  string
	User       string // terminal prompt user
	Host       string // terminal prompt host
	ResumeFile string // site file served as ~/resume.md
	ContentFS  fs.FS  // raw files for /content/*, nil disables the route
}

// Site holds the handlers' dependencies.
type Site struct {
	opts    Options
	fetcher content.Fetcher
	md      *markdown.Renderer
	loader  *page.Loader
	router  page.Router
	history *history.Store
	logger  *slog.Logger
	index   []byte
}

// New creates a Site. store may be nil when history is disabled.
func New(opts Options, fetcher content.Fetcher, md *markdown.Renderer, loader *page.Loader, store *history.Store, logger *slog.Logger) (*Site, error) {
	if opts.Title == "" {
		opts.Title = "Home"
	}
	if opts.IndexPage == "" {
		opts.IndexPage = page.DefaultIndex
	}
	if opts.ResumeFile == "" {
		opts.ResumeFile = "resume.md"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tmpl, err := template.ParseFS(assetFS, "assets/index.html")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Title string }{opts.Title}); err != nil {
		return nil, err
	}

	return &Site{
		opts:    opts,
		fetcher: fetcher,
		md:      md,
		loader:  loader,
		router:  page.Router{Index: opts.IndexPage},
		history: store,
		logger:  logger,
		index:   buf.Bytes(),
	}, nil
}

// RegisterRoutes mounts the request/response routes onto r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.ServeIndex)
	r.Handle("/assets/*", s.handleAssets())
	r.Get("/api/pages/*", s.handlePage)
	if s.opts.ContentFS != nil {
		r.Handle("/content/*", s.handleContent())
	}
}

// RegisterStreams mounts long-lived routes onto r.
func (s *Site) RegisterStreams(r chi.Router) {
	r.Get("/ws/terminal", s.handleTerminal)
}

// markdownHTML adapts the renderer for the shell's cat output.
func (s *Site) markdownHTML(src string) (string, error) {
	return s.md.RenderString(src)
}

// loadResume fetches the file served as ~/resume.md. A failed fetch leaves
// the file empty.
func (s *Site) loadResume(ctx context.Context) string {
	data, err := s.fetcher.Fetch(ctx, s.opts.ResumeFile)
	if err != nil {
		s.logger.WarnContext(ctx, "loading resume", "file", s.opts.ResumeFile, "error", err)
		return ""
	}
	return string(data)
}
