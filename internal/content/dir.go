package content

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed defaultsite
var defaultSite embed.FS

// DefaultSite returns the pages bundled with the binary.
func DefaultSite() fs.FS {
	sub, err := fs.Sub(defaultSite, "defaultsite")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}

// DirFetcher serves files from a filesystem rooted at the site root.
type DirFetcher struct {
	fsys fs.FS
}

// NewDirFetcher creates a DirFetcher over fsys.
func NewDirFetcher(fsys fs.FS) *DirFetcher {
	return &DirFetcher{fsys: fsys}
}

// NewDiskFetcher creates a DirFetcher over a directory on disk.
func NewDiskFetcher(dir string) (*DirFetcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return NewDirFetcher(os.DirFS(dir)), nil
}

// FS exposes the underlying filesystem, e.g. for serving raw files.
func (d *DirFetcher) FS() fs.FS { return d.fsys }

// Fetch reads name. Names escaping the root count as missing.
func (d *DirFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	data, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
