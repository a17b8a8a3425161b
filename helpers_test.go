package mdswagger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/pslog"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// captureLogger returns a debug-level structured logger writing to a buffer.
func captureLogger() (pslog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := pslog.NewWithOptions(context.Background(), &buf, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
		MinLevel:         pslog.DebugLevel,
	})
	return logger, &buf
}

// docsTree creates docs/index.md and docs/api.yaml under a temp dir and
// returns the page.
func docsTree(t *testing.T) (Page, string) {
	t.Helper()
	root := t.TempDir()
	docs := filepath.Join(root, "docs")
	writeFile(t, filepath.Join(docs, "index.md"), "# Index\n")
	writeFile(t, filepath.Join(docs, "api.yaml"), "openapi: 3.0.0\n")
	return Page{
		SrcPath:  filepath.Join(docs, "index.md"),
		DestPath: filepath.Join(root, "site", "index.html"),
	}, root
}
