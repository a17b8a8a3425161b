package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/alnah/go-mdswagger/internal/fileutil"
)

//go:embed theme
var builtin embed.FS

// FSTheme reads theme assets from a file system rooted at the theme
// directory.
type FSTheme struct {
	fsys fs.FS
	root string // on-disk root for symlink checks, empty for embedded
}

// Builtin returns the theme compiled into the binary.
func Builtin() *FSTheme {
	sub, err := fs.Sub(builtin, "theme")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &FSTheme{fsys: sub}
}

// DirTheme returns a theme reading from dir on disk.
func DirTheme(dir string) (*FSTheme, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidThemeDir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemeDir, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemeDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidThemeDir, abs)
	}

	return &FSTheme{fsys: os.DirFS(abs), root: abs}, nil
}

// Layout returns layouts/{name}.html.
func (t *FSTheme) Layout(name string) (string, error) {
	return t.read("layouts", name, ".html", ErrLayoutNotFound)
}

// Stylesheet returns css/{name}.css.
func (t *FSTheme) Stylesheet(name string) (string, error) {
	return t.read("css", name, ".css", ErrStylesheetNotFound)
}

func (t *FSTheme) read(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	rel := path.Join(dir, name+ext)

	if t.root != "" {
		if err := t.checkContained(rel); err != nil {
			return "", err
		}
	}

	data, err := fs.ReadFile(t.fsys, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", notFound, rel)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, rel, err)
	}
	return string(data), nil
}

// checkContained refuses symlinks resolving outside the theme root.
// A missing file passes; the read reports it.
func (t *FSTheme) checkContained(rel string) error {
	real, err := filepath.EvalSymlinks(filepath.Join(t.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil
	}
	if !fileutil.Contains(t.root, real) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, rel)
	}
	return nil
}

// Compile-time interface check.
var _ Theme = (*FSTheme)(nil)
