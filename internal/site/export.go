package site

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ackhava/homepage/internal/page"
)

// Exporter renders every selected page of a content tree into static HTML.
type Exporter struct {
	Source    fs.FS
	OutputDir string
	Include   []string // doublestar patterns over .md files
	Exclude   []string
	SiteTitle string
	IndexPage string
	Loader    *page.Loader

	// OnPage, when set, is called after each page is written.
	OnPage func(name string)
}

// exportData holds the data passed to the HTML template for each page.
type exportData struct {
	Title       string
	SiteTitle   string
	Description string
	Content     template.HTML
	NavHTML     template.HTML
	BasePath    string
}

// Pages returns the names of the pages to export, sorted.
func (e *Exporter) Pages() ([]string, error) {
	include := e.Include
	if len(include) == 0 {
		include = []string{"**/*.md"}
	}

	seen := make(map[string]bool)
	var names []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(e.Source, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !strings.HasSuffix(m, ".md") || seen[m] || e.excluded(m) {
				continue
			}
			seen[m] = true
			names = append(names, strings.TrimSuffix(m, ".md"))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (e *Exporter) excluded(file string) bool {
	for _, pattern := range e.Exclude {
		if ok, _ := doublestar.Match(pattern, file); ok {
			return true
		}
	}
	return false
}

// Export writes <OutputDir>/<page>.html for every selected page plus the
// stylesheet. It returns the number of pages written.
func (e *Exporter) Export(ctx context.Context) (int, error) {
	if e.IndexPage == "" {
		e.IndexPage = page.DefaultIndex
	}

	names, err := e.Pages()
	if err != nil {
		return 0, err
	}
	if len(names) == 0 {
		return 0, fmt.Errorf("no pages matched the include patterns")
	}

	tmpl, err := template.New("page").Parse(exportTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, err
	}
	css, err := fs.ReadFile(Assets(), "style.css")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, "style.css"), css, 0o644); err != nil {
		return 0, err
	}

	pages := make([]*page.Page, 0, len(names))
	titles := make(map[string]string, len(names))
	for _, name := range names {
		p, err := e.Loader.Load(ctx, name)
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", name, err)
		}
		if p.Status != page.StatusOK {
			return 0, fmt.Errorf("rendering %s: page status %s", name, p.Status)
		}
		pages = append(pages, p)
		titles[name] = p.Title
	}

	tree := BuildTree(names, titles)
	for _, p := range pages {
		if err := e.writePage(tmpl, tree, p); err != nil {
			return 0, fmt.Errorf("writing %s: %w", p.Name, err)
		}
		if e.OnPage != nil {
			e.OnPage(p.Name)
		}
	}

	return len(pages), nil
}

func (e *Exporter) writePage(tmpl *template.Template, tree *NavTree, p *page.Page) error {
	file := p.Name
	if file == e.IndexPage {
		file = "index"
	}
	basePath := strings.Repeat("../", strings.Count(file, "/"))

	doc, err := page.ParseDocument(p.HTML)
	if err != nil {
		return err
	}
	doc.RewriteLinks(func(href string) string {
		return staticHref(href, e.IndexPage, basePath)
	})

	data := exportData{
		Title:       p.Title,
		SiteTitle:   e.SiteTitle,
		Description: p.Meta.Description,
		Content:     template.HTML(doc.String()),
		NavHTML:     template.HTML(tree.ToHTML(p.Name, e.IndexPage, basePath)),
		BasePath:    basePath,
	}

	outPath := filepath.Join(e.OutputDir, filepath.FromSlash(file)+".html")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// staticHref maps hash routes to exported files. The terminal needs the
// server, so its link and every non-hash link are kept as they are.
func staticHref(href, index, basePath string) string {
	if !strings.HasPrefix(href, "#") || href == page.TerminalHash {
		return href
	}
	name := strings.TrimPrefix(href, "#")
	if name == "" || name == index {
		return basePath + "index.html"
	}
	return basePath + name + ".html"
}
