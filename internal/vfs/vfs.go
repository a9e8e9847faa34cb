package vfs

import "strings"

// FileSystem is the in-memory tree the terminal navigates. Folders and files
// keep their insertion order, which is the order ls reports them in.
type FileSystem struct {
	folders   []string
	folderSet map[string]struct{}
	files     []string
	contents  map[string]string
}

// New creates an empty FileSystem containing only the root folder.
func New() *FileSystem {
	fsys := &FileSystem{
		folderSet: make(map[string]struct{}),
		contents:  make(map[string]string),
	}
	fsys.AddFolder(Root)
	return fsys
}

// Default builds the site's fixed tree. resume is the body of the site-root
// resume.md, fetched when the terminal session starts.
func Default(resume string) *FileSystem {
	fsys := New()
	fsys.AddFolder("~/about")
	fsys.AddFolder("~/projects")
	fsys.AddFolder("~/contact")
	fsys.AddFile("~/about/index.html", "<h1>About Me</h1><p>This is the about page.</p>")
	fsys.AddFile("~/projects/index.html", "<h1>Projects</h1><p>This is the projects page.</p>")
	fsys.AddFile("~/contact/index.html", "<h1>Contact</h1><p>This is the contact page.</p>")
	fsys.AddFile("~/resume.md", resume)
	return fsys
}

// AddFolder registers path as a directory. Adding an existing folder is a no-op.
func (f *FileSystem) AddFolder(path string) {
	if _, ok := f.folderSet[path]; ok {
		return
	}
	f.folderSet[path] = struct{}{}
	f.folders = append(f.folders, path)
}

// AddFile stores content at path, replacing any previous content but keeping
// the original position in listing order.
func (f *FileSystem) AddFile(path, content string) {
	if _, ok := f.contents[path]; !ok {
		f.files = append(f.files, path)
	}
	f.contents[path] = content
}

// IsDir reports whether path is a known folder.
func (f *FileSystem) IsDir(path string) bool {
	_, ok := f.folderSet[path]
	return ok
}

// ReadFile returns the content stored at path.
func (f *FileSystem) ReadFile(path string) (string, bool) {
	content, ok := f.contents[path]
	return content, ok
}

// Folders returns every folder path in insertion order.
func (f *FileSystem) Folders() []string {
	return append([]string(nil), f.folders...)
}

// Files returns every file path in insertion order.
func (f *FileSystem) Files() []string {
	return append([]string(nil), f.files...)
}

// ListChildren returns the names of every entry below dir: folders first,
// then files. Each entry contributes its last path segment, so listing "~"
// also shows "index.html" from "~/about/index.html". Names are reported
// once, at their first occurrence.
func (f *FileSystem) ListChildren(dir string) []string {
	prefix := dir + "/"
	seen := make(map[string]struct{})
	var names []string

	add := func(path string) {
		if !strings.HasPrefix(path, prefix) {
			return
		}
		name := path[strings.LastIndex(path, "/")+1:]
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, folder := range f.folders {
		add(folder)
	}
	for _, file := range f.files {
		add(file)
	}
	return names
}
