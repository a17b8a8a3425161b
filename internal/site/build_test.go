package site

// Notes:
// - Builds run against real temp directories with the real plugin and
//   goldmark; only the failure test swaps in a stub PageProcessor
// - WithClock pins durations so the report is deterministic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type failingProcessor struct {
	failOn string
}

func (f *failingProcessor) ProcessPage(markdown string, page mdswagger.Page, files mdswagger.FileRegistry) (mdswagger.Result, error) {
	if strings.HasSuffix(page.SrcPath, f.failOn) {
		return mdswagger.Result{}, errors.New("boom")
	}
	return mdswagger.Result{Text: markdown}, nil
}

type staticTheme struct {
	layout string
}

func (s staticTheme) Layout(string) (string, error)     { return s.layout, nil }
func (s staticTheme) Stylesheet(string) (string, error) { return "body{}", nil }

// ---------------------------------------------------------------------------
// TestBuild - End-to-end site build
// ---------------------------------------------------------------------------

func TestBuild(t *testing.T) {
	t.Parallel()

	cfg := sampleSite(t)
	cfg.ExtraCSS = []string{"css/extra.css"}

	b, err := NewBuilder(cfg, newPlugin(t), WithWorkers(2))
	if err != nil {
		t.Fatalf("NewBuilder() unexpected error: %v", err)
	}

	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if report.Failed() {
		t.Fatalf("build failed: %+v", report)
	}
	if report.Viewers() != 2 || report.Unresolved() != 1 {
		t.Errorf("Viewers() = %d, Unresolved() = %d; want 2, 1", report.Viewers(), report.Unresolved())
	}

	index := readFile(t, filepath.Join(cfg.SiteDir, "index.html"))
	for _, want := range []string{
		"<title>Home - Test Docs</title>",
		`<div id="swagger-ui">`,
		"url: 'api.yaml',",
		`href="sub/page.html"`,
		`href="assets/theme.css"`,
		`href="css/extra.css"`,
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	page := readFile(t, filepath.Join(cfg.SiteDir, "sub", "page.html"))
	for _, want := range []string{
		"SWAGGER ERROR: File missing.yaml not found.",
		"url: 'https://example.com/api.json',",
		`href="../assets/theme.css"`,
		`href="../css/extra.css"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("sub/page.html missing %q", want)
		}
	}

	if got := readFile(t, filepath.Join(cfg.SiteDir, "api.yaml")); got != "openapi: 3.0.0\n" {
		t.Errorf("api.yaml = %q", got)
	}
	for _, rel := range []string{"img/logo.png", "assets/theme.css", "assets/highlight.css"} {
		if _, err := os.Stat(filepath.Join(cfg.SiteDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not written: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.SiteDir, ".hidden")); !os.IsNotExist(err) {
		t.Error("hidden directory was published")
	}

	// api.yaml is both a docs file and a registered spec; one copy.
	if len(report.Artifacts) != 2 {
		t.Errorf("Artifacts = %d, want 2", len(report.Artifacts))
	}
}

func TestBuild_Rebuild(t *testing.T) {
	t.Parallel()

	cfg := sampleSite(t)
	b, err := NewBuilder(cfg, newPlugin(t))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for _, a := range report.Artifacts {
		if a.Copied {
			t.Errorf("unchanged artifact %s copied again", a.File.Name)
		}
	}
}

func TestBuild_PageFailure(t *testing.T) {
	t.Parallel()

	cfg := sampleSite(t)
	b, err := NewBuilder(cfg, &failingProcessor{failOn: "page.md"})
	if err != nil {
		t.Fatal(err)
	}

	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v; page failures belong in the report", err)
	}
	if report.FailedPages() != 1 || !report.Failed() {
		t.Errorf("FailedPages() = %d, want 1", report.FailedPages())
	}
	if _, err := os.Stat(filepath.Join(cfg.SiteDir, "index.html")); err != nil {
		t.Error("healthy page not written")
	}
}

func TestBuild_CustomTheme(t *testing.T) {
	t.Parallel()

	cfg := sampleSite(t)
	b, err := NewBuilder(cfg, newPlugin(t), WithTheme(staticTheme{layout: "<body>{{.Content}}</body>"}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}

	index := readFile(t, filepath.Join(cfg.SiteDir, "index.html"))
	if !strings.HasPrefix(index, "<body>") {
		t.Errorf("custom layout not used: %q", index[:min(len(index), 40)])
	}
	if got := readFile(t, filepath.Join(cfg.SiteDir, "assets", "theme.css")); got != "body{}" {
		t.Errorf("theme.css = %q", got)
	}
}

func TestBuild_Cancelled(t *testing.T) {
	t.Parallel()

	cfg := sampleSite(t)
	b, err := NewBuilder(cfg, newPlugin(t))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := b.Build(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}

func TestBuild_Duration(t *testing.T) {
	t.Parallel()

	cfg := sampleSite(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return start.Add(time.Duration(calls) * time.Millisecond)
	}

	b, err := NewBuilder(cfg, newPlugin(t), WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", report.Duration)
	}
}

// ---------------------------------------------------------------------------
// TestNewBuilder - Construction errors
// ---------------------------------------------------------------------------

func TestNewBuilder_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid workers", func(t *testing.T) {
		t.Parallel()

		_, err := NewBuilder(sampleSite(t), newPlugin(t), WithWorkers(0))
		if !errors.Is(err, ErrInvalidWorker) {
			t.Errorf("NewBuilder() error = %v, want ErrInvalidWorker", err)
		}
	})

	t.Run("broken layout", func(t *testing.T) {
		t.Parallel()

		_, err := NewBuilder(sampleSite(t), newPlugin(t), WithTheme(staticTheme{layout: "{{.Content"}))
		if !errors.Is(err, pipeline.ErrLayoutParse) {
			t.Errorf("NewBuilder() error = %v, want ErrLayoutParse", err)
		}
	})

	t.Run("unknown highlight style", func(t *testing.T) {
		t.Parallel()

		cfg := sampleSite(t)
		cfg.Markdown.HighlightStyle = "no-such-style"
		b, err := NewBuilder(cfg, newPlugin(t))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := b.Build(context.Background()); !errors.Is(err, pipeline.ErrUnknownHighlightStyle) {
			t.Errorf("Build() error = %v, want ErrUnknownHighlightStyle", err)
		}
	})
}
