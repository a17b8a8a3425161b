package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pkt.systems/pslog"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/assets"
	"github.com/alnah/go-mdswagger/internal/config"
	"github.com/alnah/go-mdswagger/internal/fileutil"
	"github.com/alnah/go-mdswagger/internal/pipeline"
)

// Sentinel errors for site builds.
var (
	ErrReadPage      = errors.New("failed to read markdown page")
	ErrWritePage     = errors.New("failed to write HTML page")
	ErrCopyArtifact  = errors.New("failed to copy artifact")
	ErrInvalidWorker = errors.New("invalid worker count")
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.LayoutRenderer       = (*pipeline.TemplateLayout)(nil)
)

// PageProcessor is the plugin hook run on every page's Markdown.
type PageProcessor interface {
	ProcessPage(markdown string, page mdswagger.Page, files mdswagger.FileRegistry) (mdswagger.Result, error)
}

// Compile-time interface implementation check.
var _ PageProcessor = (*mdswagger.Plugin)(nil)

// Builder renders a docs directory into a site directory.
type Builder struct {
	cfg          *config.Config
	plugin       PageProcessor
	workers      int
	logger       pslog.Logger
	theme        assets.Theme
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
	layout       pipeline.LayoutRenderer
	now          func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers sets the number of pages rendered in parallel (default 1).
func WithWorkers(n int) Option {
	return func(b *Builder) { b.workers = n }
}

// WithLogger sets the build logger.
func WithLogger(logger pslog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTheme replaces the theme opened from cfg.ThemeDir.
func WithTheme(theme assets.Theme) Option {
	return func(b *Builder) { b.theme = theme }
}

// WithClock sets the time source used for durations (tests).
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a Builder for cfg. plugin processes each page's
// Markdown before conversion.
func NewBuilder(cfg *config.Config, plugin PageProcessor, opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg:          cfg,
		plugin:       plugin,
		workers:      1,
		logger:       pslog.NoopLogger(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		converter:    pipeline.NewGoldmarkConverter(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorker, b.workers)
	}

	if b.theme == nil {
		theme, err := assets.Open(cfg.ThemeDir)
		if err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		b.logger.Debug("site.theme.open", "theme_dir", cfg.ThemeDir, "custom", theme.Custom())
		b.theme = theme
	}

	source, err := b.theme.Layout(assets.DefaultLayout)
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}
	layout, err := pipeline.NewTemplateLayout(source)
	if err != nil {
		return nil, err
	}
	b.layout = layout

	return b, nil
}

// Build renders every page, then copies artifacts and theme assets.
// Page failures are collected in the report; the returned error is only
// set when the build could not run at all.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := b.now()
	files := mdswagger.NewFiles()

	pages, err := Discover(b.cfg.DocsDir, b.cfg.SiteDir, files)
	if err != nil {
		return nil, err
	}
	b.logger.Info("site.build.start", "docs_dir", b.cfg.DocsDir, "site_dir", b.cfg.SiteDir, "pages", len(pages), "workers", b.workers)

	if err := os.MkdirAll(b.cfg.SiteDir, fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating site directory: %w", err)
	}

	report := &Report{Pages: b.renderPages(ctx, pages, files)}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	report.Artifacts = b.copyArtifacts(files.Artifacts())

	themeBytes, err := b.writeThemeAssets()
	if err != nil {
		return report, err
	}
	report.ThemeBytes = themeBytes

	report.Duration = b.now().Sub(start)
	b.logger.Info("site.build.done",
		"pages", len(report.Pages),
		"failed", report.FailedPages(),
		"artifacts", len(report.Artifacts),
		"duration", report.Duration.String(),
	)
	return report, nil
}

// renderPages processes pages concurrently. Results keep discovery order.
func (b *Builder) renderPages(ctx context.Context, pages []Page, files *mdswagger.Files) []PageResult {
	concurrency := b.workers
	if concurrency > len(pages) {
		concurrency = len(pages)
	}

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{Page: pages[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = b.renderPage(ctx, pages[idx], files)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderPage runs one page through the pipeline and writes it.
func (b *Builder) renderPage(ctx context.Context, page Page, files *mdswagger.Files) PageResult {
	start := b.now()
	result := PageResult{Page: page}
	finish := func(err error) PageResult {
		result.Err = err
		result.Duration = b.now().Sub(start)
		if err != nil {
			b.logger.Warn("site.page.failed", "page", page.SrcPath, "error", err)
		} else {
			b.logger.Debug("site.page.built", "page", page.SrcPath, "dest", page.DestPath, "bytes", result.Bytes)
		}
		return result
	}

	content, err := os.ReadFile(page.SrcPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadPage, err))
	}

	markdown := b.preprocessor.PreprocessMarkdown(ctx, string(content))

	rewritten, err := b.plugin.ProcessPage(markdown, page.Page, files)
	if err != nil {
		return finish(err)
	}
	result.Substitutions = rewritten.Substitutions

	fragment, err := b.converter.ToHTML(ctx, rewritten.Text)
	if err != nil {
		return finish(err)
	}

	fragment, err = pipeline.RewriteMarkdownLinks(fragment)
	if err != nil {
		return finish(fmt.Errorf("rewriting links: %w", err))
	}

	root := pipeline.RootPrefix(page.RelPath)
	doc, err := b.layout.RenderLayout(ctx, pipeline.LayoutData{
		Title:    pipeline.ExtractTitle(fragment),
		SiteName: b.cfg.SiteName,
		Root:     root,
		Styles:   relativeAll(root, b.cfg.ExtraCSS),
		Scripts:  relativeAll(root, b.cfg.ExtraJavaScript),
		Content:  template.HTML(fragment), // #nosec G203 -- rendered from the site's own Markdown
	})
	if err != nil {
		return finish(err)
	}

	if err := fileutil.WriteFile(page.DestPath, []byte(doc)); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWritePage, err))
	}
	result.Bytes = int64(len(doc))

	return finish(nil)
}

// copyArtifacts copies registered non-page files into the site directory.
// A file registered several times is copied once per destination.
func (b *Builder) copyArtifacts(artifacts []mdswagger.File) []ArtifactResult {
	seen := make(map[string]bool, len(artifacts))
	results := make([]ArtifactResult, 0, len(artifacts))

	for _, f := range artifacts {
		dest := f.AbsDestPath()
		if seen[dest] {
			continue
		}
		seen[dest] = true

		n, copied, err := fileutil.CopyFile(f.SrcPath, dest)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrCopyArtifact, f.SrcPath, err)
			b.logger.Warn("site.artifact.failed", "source", f.SrcPath, "dest", dest, "error", err)
		}
		results = append(results, ArtifactResult{File: f, Bytes: n, Copied: copied, Err: err})
	}
	return results
}

// writeThemeAssets writes the theme stylesheet and the highlight stylesheet
// under site_dir/assets.
func (b *Builder) writeThemeAssets() (int64, error) {
	themeCSS, err := b.theme.Stylesheet(assets.DefaultStylesheet)
	if err != nil {
		return 0, fmt.Errorf("loading theme style: %w", err)
	}
	highlightCSS, err := pipeline.HighlightCSS(b.cfg.Markdown.HighlightStyle)
	if err != nil {
		return 0, err
	}

	dir := filepath.Join(b.cfg.SiteDir, "assets")
	var total int64
	for name, content := range map[string]string{
		"theme.css":     themeCSS,
		"highlight.css": highlightCSS,
	} {
		if err := fileutil.WriteFile(filepath.Join(dir, name), []byte(content)); err != nil {
			return total, fmt.Errorf("writing %s: %w", name, err)
		}
		total += int64(len(content))
	}
	return total, nil
}

func relativeAll(root string, refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = pipeline.RelativeAsset(root, ref)
	}
	return out
}
