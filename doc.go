// Package mdswagger embeds Swagger UI viewers in Markdown documentation.
//
// # Tokens
//
// A page may contain two kinds of tokens:
//
//	!!swagger api.yaml!!                      local file next to the page
//	!!swagger-http https://example.com/api!!  remote specification URL
//
// Each token is replaced by an HTML fragment that loads the Swagger UI
// bundle and points it at the specification. Local files are registered as
// build artifacts so the host copies them next to the rendered page. HTTP
// URLs are embedded verbatim and never fetched.
//
// # Quick Start
//
// Create a plugin once per build and call it for every page:
//
//	plugin, err := mdswagger.New(mdswagger.Options{}, mdswagger.SiteAssets{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	files := mdswagger.NewFiles()
//	out, err := plugin.OnPageMarkdown(markdown, mdswagger.Page{
//	    SrcPath:  "/docs/api/index.md",
//	    DestPath: "/site/api/index.html",
//	}, files)
//
// After all pages are processed, files.Artifacts() lists the specification
// files to copy into the site.
//
// # Errors
//
// Token problems never fail a build. A token without a path, a name that is
// not a plain file name, or a missing file is replaced by an inline
// "!! SWAGGER ERROR: ... !!" marker and logged. Configuration problems
// (a configured viewer asset that does not exist) are returned by New.
//
// # Viewer Assets
//
// The viewer script and stylesheet default to the swagger-ui-dist CDN.
// Options.JavaScript and Options.CSS override them. Sites that still list
// swagger-ui-bundle.js or swagger-ui.css in their extra scripts and styles
// are picked up too, with a deprecation warning.
//
// # Locations
//
// By default a local token names a file in the page's own directory.
// Options.AllowArbitraryLocations accepts relative paths with separators
// and absolute paths as well.
package mdswagger
