// Package content fetches the static files the site is built from: page
// markdown, embed sources and the resume the terminal serves.
package content

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested file does not exist.
var ErrNotFound = errors.New("content not found")

// StatusError reports a non-success response that is not a missing file.
type StatusError struct {
	Name   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.Name, e.Status)
}

// Fetcher retrieves a file by its site-relative name, e.g. "index.md".
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, name string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}

// IsNotFound reports whether err means the file is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
