package page

// Fallback bodies for pages that cannot be shown. Both link back home and to
// the terminal.
const (
	NotFoundHTML    = `<h1>Page not found!</h1><p><a href="#">Return home</a></p><p><a href="#terminal">Open Terminal</a></p>`
	ServerErrorHTML = `<h1>Server Error!</h1><p><a href="#">Return home</a></p><p><a href="#terminal">Open Terminal</a></p>`
)
