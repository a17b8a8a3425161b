package mdswagger

import (
	"fmt"

	"pkt.systems/pslog"
)

// Plugin hooks the rewriter into a documentation build. Create one per
// build with New; OnPageMarkdown is then called for every page.
type Plugin struct {
	opts     Options
	assets   ViewerAssets
	rewriter *Rewriter
	logger   pslog.Logger
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger used for deprecation and token warnings.
func WithLogger(logger pslog.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New validates opts and resolves the viewer assets once for the build.
// Returns ErrAssetNotFound when a configured asset file does not exist.
func New(opts Options, site SiteAssets, options ...Option) (*Plugin, error) {
	p := &Plugin{opts: opts, logger: pslog.NoopLogger()}
	for _, o := range options {
		o(p)
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("swagger plugin: %w", err)
	}

	p.assets = ResolveViewerAssets(opts, site, p.logger)
	p.rewriter = NewRewriter(p.assets, opts.AllowArbitraryLocations, p.logger)
	p.logger.Debug("swagger.assets.resolved", "js", p.assets.JS, "css", p.assets.CSS)
	return p, nil
}

// Assets returns the viewer assets resolved for this build.
func (p *Plugin) Assets() ViewerAssets {
	return p.assets
}

// Options returns the validated plugin options.
func (p *Plugin) Options() Options {
	return p.opts
}

// OnPageMarkdown rewrites one page's markdown, appending local
// specification files to files.
func (p *Plugin) OnPageMarkdown(markdown string, page Page, files FileRegistry) (string, error) {
	if files == nil {
		return "", ErrNilRegistry
	}
	return p.rewriter.Rewrite(markdown, page, files).Text, nil
}

// ProcessPage is OnPageMarkdown returning the full rewrite result.
func (p *Plugin) ProcessPage(markdown string, page Page, files FileRegistry) (Result, error) {
	if files == nil {
		return Result{}, ErrNilRegistry
	}
	return p.rewriter.Rewrite(markdown, page, files), nil
}
