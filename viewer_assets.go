package mdswagger

import (
	"net/url"
	"path"

	"pkt.systems/pslog"
)

// Default viewer asset locations.
const (
	DefaultViewerCSS = "https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"
	DefaultViewerJS  = "https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"
)

// Well-known file names used to recognize a viewer already listed in the
// site's extra scripts or styles.
const (
	viewerJSName  = "swagger-ui-bundle.js"
	viewerCSSName = "swagger-ui.css"
)

// ViewerAssets holds the stylesheet and script URLs the viewer fragment loads.
type ViewerAssets struct {
	JS  string
	CSS string
}

// DefaultViewerAssets returns the CDN locations.
func DefaultViewerAssets() ViewerAssets {
	return ViewerAssets{JS: DefaultViewerJS, CSS: DefaultViewerCSS}
}

// SiteAssets is the part of the host's global configuration inspected for
// legacy viewer overrides.
type SiteAssets struct {
	ExtraJavaScript []string
	ExtraCSS        []string
}

// DetectLegacyAssets starts from the defaults and adopts the first extra
// script or stylesheet whose file name matches the viewer's. Each adoption
// is logged as deprecated.
func DetectLegacyAssets(site SiteAssets, logger pslog.Logger) ViewerAssets {
	assets := DefaultViewerAssets()
	if logger == nil {
		logger = pslog.NoopLogger()
	}

	if js, ok := findByBaseName(site.ExtraJavaScript, viewerJSName); ok {
		logger.Warn("swagger.asset.deprecated",
			"source", "extra_javascript",
			"value", js,
			"hint", "use the swagger javascript option instead of extra_javascript",
		)
		assets.JS = js
	}

	if css, ok := findByBaseName(site.ExtraCSS, viewerCSSName); ok {
		logger.Warn("swagger.asset.deprecated",
			"source", "extra_css",
			"value", css,
			"hint", "use the swagger css option instead of extra_css",
		)
		assets.CSS = css
	}

	return assets
}

// ResolveViewerAssets applies the precedence explicit option > legacy
// extra_* entry > CDN default. Legacy entries are detected (and warned
// about) even when an explicit option wins.
func ResolveViewerAssets(opts Options, site SiteAssets, logger pslog.Logger) ViewerAssets {
	assets := DetectLegacyAssets(site, logger)
	if opts.JavaScript != "" {
		assets.JS = opts.JavaScript
	}
	if opts.CSS != "" {
		assets.CSS = opts.CSS
	}
	return assets
}

// findByBaseName returns the first entry whose URL path ends in name.
func findByBaseName(entries []string, name string) (string, bool) {
	for _, entry := range entries {
		p := entry
		if u, err := url.Parse(entry); err == nil {
			p = u.Path
		}
		if path.Base(p) == name {
			return entry, true
		}
	}
	return "", false
}
