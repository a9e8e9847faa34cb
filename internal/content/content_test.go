package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"
)

func TestDirFetcher(t *testing.T) {
	fsys := fstest.MapFS{
		"index.md":      {Data: []byte("# Home")},
		"blog/first.md": {Data: []byte("# First")},
	}
	f := NewDirFetcher(fsys)
	ctx := context.Background()

	data, err := f.Fetch(ctx, "index.md")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "# Home" {
		t.Errorf("got %q", data)
	}

	data, err = f.Fetch(ctx, "/blog/first.md")
	if err != nil {
		t.Fatalf("Fetch nested: %v", err)
	}
	if string(data) != "# First" {
		t.Errorf("got %q", data)
	}
}

func TestDirFetcherNotFound(t *testing.T) {
	f := NewDirFetcher(fstest.MapFS{})
	for _, name := range []string{"missing.md", "../etc/passwd", "a//b.md"} {
		_, err := f.Fetch(context.Background(), name)
		if !IsNotFound(err) {
			t.Errorf("Fetch(%q) err = %v, want ErrNotFound", name, err)
		}
	}
}

func TestDirFetcherCancelled(t *testing.T) {
	f := NewDirFetcher(fstest.MapFS{"index.md": {Data: []byte("x")}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, "index.md"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDefaultSite(t *testing.T) {
	f := NewDirFetcher(DefaultSite())
	for _, name := range []string{"index.md", "resume.md", "about.md"} {
		if _, err := f.Fetch(context.Background(), name); err != nil {
			t.Errorf("default site missing %s: %v", name, err)
		}
	}
}

func TestNewDiskFetcher(t *testing.T) {
	if _, err := NewDiskFetcher(t.TempDir()); err != nil {
		t.Fatalf("NewDiskFetcher: %v", err)
	}
	if _, err := NewDiskFetcher("/definitely/not/here"); err == nil {
		t.Error("expected error for missing dir")
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/index.md":
			w.Write([]byte("# Remote"))
		case "/site/broken.md":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f, err := NewHTTPFetcher(srv.URL+"/site", nil)
	if err != nil {
		t.Fatalf("NewHTTPFetcher: %v", err)
	}
	ctx := context.Background()

	data, err := f.Fetch(ctx, "index.md")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "# Remote" {
		t.Errorf("got %q", data)
	}

	if _, err := f.Fetch(ctx, "missing.md"); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = f.Fetch(ctx, "broken.md")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", statusErr.Status)
	}
	if IsNotFound(err) {
		t.Error("500 must not be classified as not found")
	}
}

func TestHTTPFetcherStaysUnderBase(t *testing.T) {
	var (
		mu   sync.Mutex
		hits []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, r.URL.Path)
		mu.Unlock()
		w.Write([]byte("# " + r.URL.Path))
	}))
	defer srv.Close()

	f, err := NewHTTPFetcher(srv.URL+"/site/", nil)
	if err != nil {
		t.Fatalf("NewHTTPFetcher: %v", err)
	}
	ctx := context.Background()

	for _, name := range []string{
		"../secret.md",
		"notes/../../secret.md",
		"%2e%2e/secret.md",
		"http://evil.example/x.md",
		"//evil.example/x.md",
		"",
	} {
		if _, err := f.Fetch(ctx, name); !IsNotFound(err) {
			t.Errorf("Fetch(%q): expected ErrNotFound, got %v", name, err)
		}
	}
	mu.Lock()
	if len(hits) != 0 {
		t.Errorf("rejected names reached the server: %v", hits)
	}
	mu.Unlock()

	data, err := f.Fetch(ctx, "/notes/go.md")
	if err != nil {
		t.Fatalf("Fetch(nested): %v", err)
	}
	if string(data) != "# /site/notes/go.md" {
		t.Errorf("got %q", data)
	}
}

func TestNewHTTPFetcherRejectsScheme(t *testing.T) {
	if _, err := NewHTTPFetcher("ftp://example.com", nil); err == nil {
		t.Error("expected error for non-http scheme")
	}
}
