package site

import (
	"os"
	"path/filepath"
	"testing"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/config"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// sampleSite creates a docs tree exercising every token outcome and
// returns a config pointing at it.
func sampleSite(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	docs := filepath.Join(root, "docs")

	writeFile(t, filepath.Join(docs, "index.md"),
		"# Home\n\n!!swagger api.yaml!!\n\nSee the [reference](sub/page.md).\n")
	writeFile(t, filepath.Join(docs, "api.yaml"), "openapi: 3.0.0\n")
	writeFile(t, filepath.Join(docs, "img", "logo.png"), "png")
	writeFile(t, filepath.Join(docs, ".hidden", "skip.md"), "# Hidden\n")
	writeFile(t, filepath.Join(docs, "sub", "page.md"),
		"# Reference\n\n!!swagger missing.yaml!!\n\n!!swagger-http https://example.com/api.json!!\n")

	cfg := config.DefaultConfig()
	cfg.SiteName = "Test Docs"
	cfg.DocsDir = docs
	cfg.SiteDir = filepath.Join(root, "site")
	return cfg
}

func newPlugin(t *testing.T) *mdswagger.Plugin {
	t.Helper()
	p, err := mdswagger.New(mdswagger.Options{}, mdswagger.SiteAssets{})
	if err != nil {
		t.Fatal(err)
	}
	return p
}
