package site

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// NavTree is a node in the navigation tree of an exported site.
type NavTree struct {
	Name     string
	Title    string // display name: page title for pages, formatted name for dirs
	Page     string // page name for pages, directory path for dirs
	IsDir    bool
	Children []*NavTree
}

// BuildTree constructs a NavTree from page names such as "index" or
// "notes/go". titles optionally maps page name to display title.
func BuildTree(pages []string, titles map[string]string) *NavTree {
	root := &NavTree{Name: "site", IsDir: true}

	for _, p := range pages {
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			var next *NavTree
			for _, child := range current.Children {
				if child.Name == part && child.IsDir == !isLast {
					next = child
					break
				}
			}
			if next == nil {
				next = &NavTree{Name: part, IsDir: !isLast}
				if isLast {
					next.Page = p
					next.Title = titles[p]
				} else {
					next.Page = strings.Join(parts[:i+1], "/")
					next.Title = formatDirName(part)
				}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}

	sortTree(root)
	return root
}

// sortTree recursively sorts children: directories first, then pages, by name.
func sortTree(node *NavTree) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// ToHTML renders the tree as nested lists. basePath leads from the current
// page back to the site root, e.g. "../" one level deep.
func (t *NavTree) ToHTML(active, index, basePath string) string {
	var b strings.Builder
	homeActive := ""
	if active == index {
		homeActive = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="page home-link"><a href="%sindex.html"%s>Home</a></li></ul>`+"\n", basePath, homeActive)
	renderChildren(&b, t, active, index, basePath)
	return b.String()
}

func renderChildren(b *strings.Builder, node *NavTree, active, index, basePath string) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		if child.IsDir {
			expanded := ""
			if strings.HasPrefix(active, child.Page+"/") {
				expanded = " expanded"
			}
			fmt.Fprintf(b, `<li class="dir%s"><span>%s</span>`+"\n", expanded, template.HTMLEscapeString(child.Title))
			renderChildren(b, child, active, index, basePath)
			b.WriteString("</li>\n")
			continue
		}
		if child.Page == index {
			continue
		}
		label := child.Title
		if label == "" {
			label = child.Name
		}
		activeClass := ""
		if child.Page == active {
			activeClass = ` class="active"`
		}
		fmt.Fprintf(b, `<li class="page"><a href="%s%s.html"%s>%s</a></li>`+"\n",
			basePath, child.Page, activeClass, template.HTMLEscapeString(label))
	}
	b.WriteString("</ul>\n")
}

// formatDirName title-cases a directory slug: "side-projects" -> "Side Projects".
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
