package mdswagger

import (
	"path/filepath"
	"sync"
)

// File is a build artifact the host must copy into the output tree.
type File struct {
	SrcPath string // absolute source file
	SrcDir  string // directory containing SrcPath
	DestDir string // output directory the file is copied into
	Name    string // base name in DestDir
	IsPage  bool   // false for artifacts registered here
}

// AbsDestPath returns the absolute path the file is written to.
func (f File) AbsDestPath() string {
	return filepath.Join(f.DestDir, f.Name)
}

// URL returns the page-relative URL of the file. Artifacts land in the
// page's own destination directory, so this is the destination base name.
func (f File) URL() string {
	return filepath.Base(f.AbsDestPath())
}

// FileRegistry receives newly discovered artifacts.
// Callers processing pages in parallel must make Append safe for concurrent use.
type FileRegistry interface {
	Append(f File)
}

// Files is a FileRegistry safe for concurrent use.
type Files struct {
	mu    sync.Mutex
	files []File
}

// NewFiles returns a registry seeded with files.
func NewFiles(files ...File) *Files {
	return &Files{files: append([]File(nil), files...)}
}

// Append adds f to the registry. Duplicates are kept.
func (fs *Files) Append(f File) {
	fs.mu.Lock()
	fs.files = append(fs.files, f)
	fs.mu.Unlock()
}

// All returns a copy of every registered file in append order.
func (fs *Files) All() []File {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]File, len(fs.files))
	copy(out, fs.files)
	return out
}

// Artifacts returns the registered files that are not pages.
func (fs *Files) Artifacts() []File {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var out []File
	for _, f := range fs.files {
		if !f.IsPage {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of registered files.
func (fs *Files) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}

// Compile-time interface check.
var _ FileRegistry = (*Files)(nil)

// Register appends an artifact for r next to the page written at
// pageDestPath and returns the URL to embed in the page.
// The same source referenced twice is registered twice.
func Register(files FileRegistry, r Resolved, pageDestPath string) string {
	f := File{
		SrcPath: r.Path,
		SrcDir:  r.Dir,
		DestDir: filepath.Dir(pageDestPath),
		Name:    filepath.Base(r.Path),
		IsPage:  false,
	}
	files.Append(f)
	return f.URL()
}
