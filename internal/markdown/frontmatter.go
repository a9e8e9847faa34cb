package markdown

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta is the optional front matter a page may start with.
type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// SplitFrontMatter separates front matter from the markdown body. Sources
// without front matter come back unchanged with an empty Meta.
func SplitFrontMatter(src []byte) (Meta, []byte, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, body, nil
}

// Title picks a display title: the front matter title, then the first "# "
// heading, then the file name without its extension.
func Title(meta Meta, body []byte, name string) string {
	if meta.Title != "" {
		return meta.Title
	}
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(path.Base(name), ".md")
}
