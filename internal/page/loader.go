package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ackhava/homepage/internal/content"
	"github.com/ackhava/homepage/internal/markdown"
)

// Status classifies how a page load went.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	default:
		return "error"
	}
}

// Page is a rendered page body.
type Page struct {
	Name   string
	Title  string
	Meta   markdown.Meta
	HTML   string
	Status Status
}

// Loader fetches and renders pages.
type Loader struct {
	fetcher  content.Fetcher
	md       *markdown.Renderer
	embedder *Embedder
	passes   int
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEmbedPasses sets how many embed passes run after the page renders.
func WithEmbedPasses(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.passes = n
		}
	}
}

// WithLogger sets the loader's logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader reading pages and embeds from fetcher.
func NewLoader(fetcher content.Fetcher, md *markdown.Renderer, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher: fetcher,
		md:      md,
		passes:  DefaultEmbedPasses,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.embedder = NewEmbedder(fetcher, md, l.logger)
	return l
}

// Embedder returns the loader's embedder.
func (l *Loader) Embedder() *Embedder { return l.embedder }

// Load renders the page called name. Missing pages and failed fetches come
// back as fallback pages with the matching Status; an error is only returned
// when ctx ends or rendering itself breaks.
func (l *Loader) Load(ctx context.Context, name string) (*Page, error) {
	p := &Page{Name: name, Status: StatusOK}

	src, err := l.fetcher.Fetch(ctx, SourceFile(name))
	switch {
	case err == nil:
		meta, body, fmErr := markdown.SplitFrontMatter(src)
		if fmErr != nil {
			l.logger.Warn("ignoring front matter", "page", name, "error", fmErr)
			meta, body = markdown.Meta{}, src
		}
		rendered, err := l.md.Render(body)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		p.Meta = meta
		p.Title = markdown.Title(meta, body, name)
		p.HTML = rendered
	case content.IsNotFound(err):
		p.Status = StatusNotFound
		p.Title = "Page not found"
		p.HTML = NotFoundHTML
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		var statusErr *content.StatusError
		if errors.As(err, &statusErr) {
			l.logger.Warn("page fetch returned error status", "page", name, "status", statusErr.Status)
		} else {
			l.logger.Error("page fetch failed", "page", name, "error", err)
		}
		p.Status = StatusError
		p.Title = "Server Error"
		p.HTML = ServerErrorHTML
	}

	html, err := l.Embed(ctx, p.HTML)
	if err != nil {
		return nil, err
	}
	p.HTML = html
	return p, nil
}

// Embed runs the configured number of embed passes over fragment. Passes
// after the first only pick up embeds that earlier passes injected.
func (l *Loader) Embed(ctx context.Context, fragment string) (string, error) {
	doc, err := ParseDocument(fragment)
	if err != nil {
		return "", err
	}
	for i := 0; i < l.passes; i++ {
		n, err := l.embedder.Pass(ctx, doc)
		if err != nil {
			return "", fmt.Errorf("embed pass %d: %w", i+1, err)
		}
		l.logger.Debug("embed pass", "pass", i+1, "rendered", n)
	}
	return doc.String(), nil
}
