package content

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultHTTPTimeout bounds a single remote fetch.
const DefaultHTTPTimeout = 15 * time.Second

// HTTPFetcher fetches files relative to a remote site root.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates a fetcher for the site rooted at baseURL. A nil
// client gets one with DefaultHTTPTimeout.
func NewHTTPFetcher(baseURL string, client *http.Client) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing content url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("content url %q must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &HTTPFetcher{base: u, client: client}, nil
}

// Fetch GETs name relative to the base URL. 404 maps to ErrNotFound, any
// other non-200 status to *StatusError. Names that would leave the base
// path, such as "../x" or absolute URLs, are not found.
func (h *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	rel := strings.TrimPrefix(name, "/")
	ref, err := url.Parse(rel)
	if err != nil || !fs.ValidPath(rel) || ref.Scheme != "" || ref.Host != "" || !fs.ValidPath(ref.Path) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	target := h.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", name, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	default:
		return nil, &StatusError{Name: name, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
