// Package page turns the URL hash into a view and renders markdown pages,
// expanding markdown-fetch embeds.
package page

import "strings"

// DefaultIndex is the page shown for an empty hash.
const DefaultIndex = "index"

// TerminalHash selects the terminal view.
const TerminalHash = "#terminal"

// View is what a route displays.
type View int

const (
	ViewPage View = iota
	ViewTerminal
)

// Route is a parsed location hash.
type Route struct {
	View View
	Page string // page name for ViewPage, without the .md suffix
}

// Router maps location hashes to routes.
type Router struct {
	Index string
}

// Parse interprets hash, with or without its leading '#'.
func (r Router) Parse(hash string) Route {
	if hash == TerminalHash || hash == TerminalHash[1:] {
		return Route{View: ViewTerminal}
	}
	name := strings.TrimPrefix(hash, "#")
	if name == "" {
		name = r.Index
		if name == "" {
			name = DefaultIndex
		}
	}
	return Route{View: ViewPage, Page: name}
}

// ParseRoute parses hash with the default index page.
func ParseRoute(hash string) Route {
	return Router{Index: DefaultIndex}.Parse(hash)
}

// SourceFile is the markdown file backing a page.
func SourceFile(name string) string {
	return name + ".md"
}
