package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"pkt.systems/pslog"

	"github.com/alnah/go-mdswagger/internal/fileutil"
)

// DefaultDebounce is the quiet period before a rebuild is triggered.
const DefaultDebounce = 300 * time.Millisecond

// Watcher triggers rebuilds when files under the docs directory or the
// config file change.
type Watcher struct {
	docsDir  string
	siteDir  string
	extra    []string // individual files, e.g. the config file
	debounce time.Duration
	logger   pslog.Logger
}

// NewWatcher creates a Watcher. Changes inside siteDir are ignored so a
// build never retriggers itself.
func NewWatcher(docsDir, siteDir string, extra []string, debounce time.Duration, logger pslog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = pslog.NoopLogger()
	}
	return &Watcher{
		docsDir:  docsDir,
		siteDir:  siteDir,
		extra:    extra,
		debounce: debounce,
		logger:   logger,
	}
}

// Run watches until ctx is done, calling rebuild after each burst of
// changes. Rebuild errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, rebuild func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.docsDir); err != nil {
		return err
	}
	for _, f := range w.extra {
		// Watch the parent: editors often replace files by rename.
		if err := watcher.Add(filepath.Dir(f)); err != nil {
			return fmt.Errorf("watching %s: %w", f, err)
		}
	}

	// nil until the first relevant event; re-armed by every later event.
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(watcher, event.Name); err != nil {
						w.logger.Warn("site.watch.add_failed", "path", event.Name, "error", err)
					}
				}
			}
			w.logger.Debug("site.watch.event", "path", event.Name, "op", event.Op.String())
			fire = time.After(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("site.watch.error", "error", err)

		case <-fire:
			fire = nil
			w.logger.Info("site.watch.rebuild")
			if err := rebuild(ctx); err != nil {
				w.logger.Warn("site.watch.rebuild_failed", "error", err)
			}
		}
	}
}

// relevant filters out events from the site dir, hidden files and
// unrelated files next to watched extras.
func (w *Watcher) relevant(path string) bool {
	if w.siteDir != "" && fileutil.Contains(w.siteDir, path) {
		return false
	}
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	if fileutil.Contains(w.docsDir, path) {
		return true
	}
	for _, f := range w.extra {
		if filepath.Clean(f) == filepath.Clean(path) {
			return true
		}
	}
	return false
}

// addTree adds root and all its non-hidden subdirectories.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if w.siteDir != "" && fileutil.Contains(w.siteDir, path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
