package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExtensions are the page source extensions rewritten to .html.
var markdownExtensions = []string{".md", ".markdown"}

// RewriteMarkdownLinks points relative links to Markdown pages at the
// generated HTML pages: href="guide.md#setup" becomes href="guide.html#setup".
//
// Does NOT rewrite:
//   - absolute URLs, protocol-relative URLs, anchors
//   - links to non-Markdown files (images, downloaded specs)
//   - src attributes (only a[href] navigates between pages)
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	lower := strings.ToLower(htmlContent)
	if !strings.Contains(lower, ".md") && !strings.Contains(lower, ".markdown") {
		return htmlContent, nil
	}

	doc, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc)

	return renderFragment(doc)
}

// ExtractTitle returns the text of the first <h1> in htmlContent, or "".
func ExtractTitle(htmlContent string) string {
	doc, err := parseFragment(htmlContent)
	if err != nil {
		return ""
	}
	h1 := findFirst(doc, atom.H1)
	if h1 == nil {
		return ""
	}
	return strings.TrimSpace(textContent(h1))
}

// parseFragment parses HTML with a body context so no <html><body> wrapper
// is added, and wraps the nodes in a container for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children back to a string.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and rewrites page links.
func rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key == "href" {
				n.Attr[i].Val = rewriteHref(attr.Val)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c)
	}
}

// rewriteHref returns href with a Markdown extension replaced by .html.
func rewriteHref(href string) string {
	if !isRelativePath(href) {
		return href
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return href
	}

	ext := strings.ToLower(path.Ext(u.Path))
	for _, md := range markdownExtensions {
		if ext == md {
			u.Path = strings.TrimSuffix(u.Path, path.Ext(u.Path)) + ".html"
			return u.String()
		}
	}
	return href
}

// isRelativePath returns true if the path should be considered for rewriting.
func isRelativePath(p string) bool {
	if p == "" {
		return false
	}

	// Skip URLs (http, https, file, data, mailto, protocol-relative)
	lower := strings.ToLower(p)
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	// Skip anchors and site-absolute paths
	return !strings.HasPrefix(p, "#") && !strings.HasPrefix(p, "/")
}

// findFirst returns the first element with the given atom in document order.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
