package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML. It holds two goldmark engines, one of
// which shifts headings down a level for embedded fragments. Both engines are
// safe for concurrent use.
type Renderer struct {
	plain   goldmark.Markdown
	shifted goldmark.Markdown
}

// RenderOption tweaks a single Render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	headingShift bool
}

// WithHeadingShift renders every heading one level deeper (capped at h6).
func WithHeadingShift() RenderOption {
	return func(o *renderOptions) { o.headingShift = true }
}

// NewRenderer builds a Renderer with GFM, syntax highlighting and raw HTML
// passthrough. Pages embed raw HTML containers, so unsafe output is required.
func NewRenderer() *Renderer {
	return &Renderer{
		plain:   newEngine(),
		shifted: newEngine(goldmark.WithExtensions(HeadingShift)),
	}
}

func newEngine(extra ...goldmark.Option) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	}
	return goldmark.New(append(opts, extra...)...)
}

// Render converts src to HTML.
func (r *Renderer) Render(src []byte, opts ...RenderOption) (string, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	md := r.plain
	if o.headingShift {
		md = r.shifted
	}

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderString is Render for string input.
func (r *Renderer) RenderString(src string, opts ...RenderOption) (string, error) {
	return r.Render([]byte(src), opts...)
}
