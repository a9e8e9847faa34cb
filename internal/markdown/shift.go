package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MaxHeadingLevel is the deepest heading HTML has.
const MaxHeadingLevel = 6

// HeadingShift is a goldmark extension that pushes every heading one level
// down so an embedded fragment never competes with the page's own <h1>.
var HeadingShift goldmark.Extender = &headingShift{}

type headingShift struct{}

func (e *headingShift) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&headingShiftTransformer{}, 100),
	))
}

type headingShiftTransformer struct{}

func (t *headingShiftTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			h.Level = ShiftLevel(h.Level)
		}
		return ast.WalkContinue, nil
	})
}

// ShiftLevel returns the heading level one deeper than level, capped at h6.
func ShiftLevel(level int) int {
	if level < MaxHeadingLevel {
		level++
	}
	return level
}
