package site

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assetFS embed.FS

// Assets returns the browser client files served under /assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// exportTemplate wraps each page of a static export.
const exportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}{{if .SiteTitle}} | {{.SiteTitle}}{{end}}</title>
  {{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <nav class="site-nav">
    {{.NavHTML}}
  </nav>
  <main class="page-content">
    {{.Content}}
  </main>
</body>
</html>`
