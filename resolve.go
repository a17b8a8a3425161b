package mdswagger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolved is a local specification file confirmed to exist on disk.
type Resolved struct {
	Path string // absolute file path
	Dir  string // parent directory of Path
}

// ResolveError reports why a local token could not be resolved.
// Its message is the text shown inline in the page.
type ResolveError struct {
	Name string
	Err  error // ErrInvalidPath or ErrFileNotFound
}

func (e *ResolveError) Error() string {
	if e.Err == ErrFileNotFound {
		return fmt.Sprintf("File %s not found.", e.Name)
	}
	return fmt.Sprintf("Invalid path. invalid name %q", e.Name)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ResolvePath locates name next to the page source file pageSrc.
//
// In strict mode name replaces the page's own file name, so it must be a
// bare file name. With allowArbitrary the name may be a relative path
// (joined to the page directory) or an absolute path.
func ResolvePath(pageSrc, name string, allowArbitrary bool) (Resolved, error) {
	if err := validateName(name, allowArbitrary); err != nil {
		return Resolved{}, err
	}

	absSrc, err := filepath.Abs(pageSrc)
	if err != nil {
		return Resolved{}, &ResolveError{Name: name, Err: ErrInvalidPath}
	}
	pageDir := filepath.Dir(absSrc)

	var candidate string
	switch {
	case allowArbitrary && filepath.IsAbs(name):
		candidate = filepath.Clean(name)
	default:
		candidate = filepath.Join(pageDir, name)
	}

	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return Resolved{}, &ResolveError{Name: name, Err: ErrFileNotFound}
	}

	return Resolved{Path: candidate, Dir: filepath.Dir(candidate)}, nil
}

// validateName rejects names that cannot stand in for a file name.
// The token grammar already excludes separators in strict mode; this is
// checked again because callers may build tokens by hand.
func validateName(name string, allowArbitrary bool) error {
	if name == "" || strings.ContainsRune(name, 0) {
		return &ResolveError{Name: name, Err: ErrInvalidPath}
	}
	if allowArbitrary {
		return nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &ResolveError{Name: name, Err: ErrInvalidPath}
	}
	return nil
}
