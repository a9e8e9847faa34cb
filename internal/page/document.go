package page

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML fragment that embed passes mutate in place.
type Document struct {
	root *html.Node
}

// ParseDocument parses an HTML body fragment.
func ParseDocument(fragment string) (*Document, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing html fragment: %w", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Document{root: root}, nil
}

// String renders the fragment back to HTML.
func (d *Document) String() string {
	var buf bytes.Buffer
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// walk visits every element below the root in document order.
func (d *Document) walk(fn func(n *html.Node)) {
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				fn(c)
			}
			visit(c)
		}
	}
	visit(d.root)
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			n.Attr[i].Val = strings.TrimSpace(a.Val + " " + class)
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}

// setInnerHTML replaces n's children with the parsed fragment.
func setInnerHTML(n *html.Node, fragment string) error {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), n)
	if err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// RewriteLinks replaces the href of every anchor with fn(href). Returning
// the input unchanged leaves the link alone.
func (d *Document) RewriteLinks(fn func(href string) string) {
	d.walk(func(n *html.Node) {
		if n.DataAtom != atom.A {
			return
		}
		for i, a := range n.Attr {
			if a.Namespace == "" && a.Key == "href" {
				n.Attr[i].Val = fn(a.Val)
			}
		}
	})
}
