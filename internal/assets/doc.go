// Package assets provides the site theme: the page layout and the theme
// stylesheet.
//
// The built-in theme is embedded in the binary. A theme directory given in
// the configuration overrides it file by file, so a site can replace only
// the layout or only the stylesheet:
//
//	{theme_dir}/
//	├── layouts/
//	│   └── page.html    # html/template executed with pipeline.LayoutData
//	└── css/
//	    └── theme.css    # copied to {site_dir}/assets/theme.css
//
// Asset names are bare words; anything that could address a file outside
// the theme directory is rejected, including symlinks pointing out of it.
package assets
