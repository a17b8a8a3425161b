package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Sentinel errors for layout rendering.
var (
	ErrLayoutParse  = errors.New("layout template parsing failed")
	ErrLayoutRender = errors.New("layout template rendering failed")
)

// LayoutData holds everything a page layout can reference.
type LayoutData struct {
	Title    string
	SiteName string
	Root     string   // relative prefix from the page to the site root, "" or "../"...
	Styles   []string // extra stylesheets, already made page-relative
	Scripts  []string // extra scripts, already made page-relative
	Content  template.HTML
}

// LayoutRenderer wraps page fragments in the theme layout.
type LayoutRenderer interface {
	RenderLayout(ctx context.Context, data LayoutData) (string, error)
}

// TemplateLayout renders pages with a parsed html/template layout.
// Safe for concurrent use.
type TemplateLayout struct {
	tmpl *template.Template
}

// NewTemplateLayout parses the layout source.
func NewTemplateLayout(source string) (*TemplateLayout, error) {
	tmpl, err := template.New("layout").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutParse, err)
	}
	return &TemplateLayout{tmpl: tmpl}, nil
}

// RenderLayout executes the layout for one page.
func (l *TemplateLayout) RenderLayout(ctx context.Context, data LayoutData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}
	return buf.String(), nil
}

// RootPrefix returns the relative prefix from a page at relPath (slash
// separated, relative to the site root) back to the root.
func RootPrefix(relPath string) string {
	depth := strings.Count(strings.Trim(relPath, "/"), "/")
	return strings.Repeat("../", depth)
}

// RelativeAsset makes a site-relative asset reference usable from a page
// with the given root prefix. URLs and absolute paths are returned unchanged.
func RelativeAsset(root, ref string) string {
	if !isRelativePath(ref) {
		return ref
	}
	return root + strings.TrimPrefix(ref, "./")
}
