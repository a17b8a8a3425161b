// Package pipeline implements the page rendering stages of a site build.
//
// Each page goes through:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML conversion via Goldmark with chroma highlighting
//   - Link rewriting (relative .md links point at the generated .html)
//   - Layout rendering (theme template, site title, extra CSS and JS)
//
// Swagger token substitution happens between preprocessing and conversion
// and lives in the root mdswagger package. Goldmark is configured to keep
// raw HTML so the viewer fragments it inserts reach the output intact.
package pipeline
