// Package site builds a static documentation site from a docs directory.
//
// It is the host the swagger plugin runs in: pages are discovered, each
// page's Markdown is handed to the plugin together with the shared file
// registry, converted to HTML and wrapped in the theme layout. Artifacts
// the plugin registers, and every non-Markdown file found under the docs
// directory, are copied into the site directory once all pages are done.
package site
