package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/fileutil"
)

// Sentinel errors for discovery.
var (
	ErrDocsDirNotFound = errors.New("docs directory not found")
	ErrNoPages         = errors.New("no markdown pages found")
)

// Page is one Markdown source and the HTML file it becomes.
type Page struct {
	mdswagger.Page
	RelPath string // slash-separated output path relative to the site dir
}

// isMarkdown reports whether path has a Markdown extension.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// Discover walks docsDir. Markdown files become pages, everything else is
// appended to files as a static artifact mirrored into siteDir.
// Hidden files and directories (leading dot) are skipped.
func Discover(docsDir, siteDir string, files *mdswagger.Files) ([]Page, error) {
	absDocs, err := filepath.Abs(docsDir)
	if err != nil {
		return nil, fmt.Errorf("resolving docs dir: %w", err)
	}
	absSite, err := filepath.Abs(siteDir)
	if err != nil {
		return nil, fmt.Errorf("resolving site dir: %w", err)
	}

	info, err := os.Stat(absDocs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDocsDirNotFound, docsDir)
	}

	var pages []Page
	err = filepath.WalkDir(absDocs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if path != absDocs && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			// A site dir nested in the docs dir must not be read back as input.
			if path == absSite {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absDocs, path)
		if err != nil {
			return err
		}
		destDir := filepath.Join(absSite, filepath.Dir(rel))

		if !isMarkdown(path) {
			files.Append(mdswagger.File{
				SrcPath: path,
				SrcDir:  filepath.Dir(path),
				DestDir: destDir,
				Name:    filepath.Base(path),
			})
			return nil
		}

		name, err := fileutil.ReplaceExtension(filepath.Base(path), "html")
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, name)
		files.Append(mdswagger.File{
			SrcPath: path,
			SrcDir:  filepath.Dir(path),
			DestDir: destDir,
			Name:    name,
			IsPage:  true,
		})
		pages = append(pages, Page{
			Page:    mdswagger.Page{SrcPath: path, DestPath: dest},
			RelPath: filepath.ToSlash(filepath.Join(filepath.Dir(rel), name)),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPages, docsDir)
	}
	return pages, nil
}
