package page

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/ackhava/homepage/internal/content"
	"github.com/ackhava/homepage/internal/markdown"
)

// Embed target markup.
const (
	EmbedClass         = "markdown-fetch"
	RenderedClass      = "rendered"
	FailedClass        = "embed-failed"
	AttrRenderFile     = "data-render-file"
	AttrBlocks         = "data-blocks"
	AttrHeadingShift   = "data-heading-shift"
	DefaultEmbedPasses = 3
)

// Target describes one markdown-fetch element.
type Target struct {
	File         string
	Blocks       int
	HeadingShift bool
	node         *html.Node
}

// Embedder fills markdown-fetch elements with rendered markdown.
type Embedder struct {
	fetcher content.Fetcher
	md      *markdown.Renderer
	logger  *slog.Logger
}

// NewEmbedder creates an Embedder. A nil logger discards log output.
func NewEmbedder(fetcher content.Fetcher, md *markdown.Renderer, logger *slog.Logger) *Embedder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Embedder{fetcher: fetcher, md: md, logger: logger}
}

// Targets returns the markdown-fetch elements of doc not yet rendered.
func Targets(doc *Document) []Target {
	var targets []Target
	doc.walk(func(n *html.Node) {
		if !hasClass(n, EmbedClass) || hasClass(n, RenderedClass) {
			return
		}
		file, _ := attr(n, AttrRenderFile)
		blocks, _ := attr(n, AttrBlocks)
		_, shift := attr(n, AttrHeadingShift)
		targets = append(targets, Target{
			File:         file,
			Blocks:       markdown.ParseBlockLimit(blocks),
			HeadingShift: shift,
			node:         n,
		})
	})
	return targets
}

type embedResult struct {
	html string
	err  error
}

// Pass renders every pending target in doc once and returns how many were
// processed. Sources are fetched concurrently; the document is only mutated
// after all of them finished. A target that fails gets an inline error and
// is still marked rendered, so later passes leave it alone.
func (e *Embedder) Pass(ctx context.Context, doc *Document) (int, error) {
	targets := Targets(doc)
	if len(targets) == 0 {
		return 0, nil
	}

	results := make([]embedResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range targets {
		g.Go(func() error {
			out, err := e.render(gctx, t)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			results[i] = embedResult{html: out, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for i, t := range targets {
		res := results[i]
		if res.err != nil {
			e.logger.Warn("embed failed", "file", t.File, "error", res.err)
			res.html = `<p class="error">Could not load ` + html.EscapeString(t.File) + `</p>`
			addClass(t.node, FailedClass)
		}
		if err := setInnerHTML(t.node, res.html); err != nil {
			return i, fmt.Errorf("injecting %s: %w", t.File, err)
		}
		addClass(t.node, RenderedClass)
	}
	return len(targets), nil
}

func (e *Embedder) render(ctx context.Context, t Target) (string, error) {
	if t.File == "" {
		return "", fmt.Errorf("missing %s attribute", AttrRenderFile)
	}
	src, err := e.fetcher.Fetch(ctx, t.File)
	if err != nil {
		return "", err
	}

	text := markdown.TakeBlocks(string(src), t.Blocks)
	var opts []markdown.RenderOption
	if t.HeadingShift {
		opts = append(opts, markdown.WithHeadingShift())
	}
	return e.md.RenderString(text, opts...)
}
