package mdswagger

import (
	"strings"

	"pkt.systems/pslog"
)

// marker starts both token forms; counting it bounds the rewrite loop.
const marker = "!!swagger"

// Page locates a page being processed.
type Page struct {
	SrcPath  string // absolute path of the page source
	DestPath string // absolute path the rendered page is written to
}

// Substitution records one token replaced during a rewrite.
type Substitution struct {
	Kind   Kind
	Target string // captured file name or URL
	URL    string // URL embedded in the viewer, empty on error
	Err    error  // nil when a viewer fragment was rendered
}

// Result is a rewritten page.
type Result struct {
	Text          string
	Substitutions []Substitution
}

// Rewriter replaces every token in a page with a viewer or error fragment.
type Rewriter struct {
	assets         ViewerAssets
	grammar        Grammar
	allowArbitrary bool
	logger         pslog.Logger
}

// NewRewriter creates a Rewriter embedding assets in every viewer fragment.
// allowArbitrary relaxes both the token grammar and path resolution.
func NewRewriter(assets ViewerAssets, allowArbitrary bool, logger pslog.Logger) *Rewriter {
	if logger == nil {
		logger = pslog.NoopLogger()
	}
	return &Rewriter{
		assets:         assets,
		grammar:        Grammar{Relaxed: allowArbitrary},
		allowArbitrary: allowArbitrary,
		logger:         logger,
	}
}

// Rewrite substitutes tokens until none remain. Local files are registered
// in files. Malformed or unresolvable tokens become inline error text.
func (r *Rewriter) Rewrite(text string, page Page, files FileRegistry) Result {
	res := Result{Text: text}

	// Each pass consumes one marker and fragments never contain a token
	// that matches, so the loop ends after at most this many passes.
	maxPasses := strings.Count(text, marker) + 1

	for pass := 0; pass < maxPasses; pass++ {
		tok, ok := r.grammar.Find(res.Text)
		if !ok {
			return res
		}

		fragment, sub := r.substitute(tok, page, files)
		res.Text = res.Text[:tok.Start] + fragment + res.Text[tok.End:]
		res.Substitutions = append(res.Substitutions, sub)
	}

	r.logger.Warn("swagger.rewrite.unterminated", "page", page.SrcPath, "passes", maxPasses)
	return res
}

// substitute renders the replacement for a single token.
func (r *Rewriter) substitute(tok Token, page Page, files FileRegistry) (string, Substitution) {
	sub := Substitution{Kind: tok.Kind, Target: tok.Path}

	if !tok.HasPath {
		sub.Err = ErrUsage
		r.logger.Warn("swagger.token.usage", "page", page.SrcPath, "token", tok.Kind.String())
		return RenderError(UsageMessage), sub
	}

	if tok.Kind == KindHTTP {
		sub.URL = tok.Path
		r.logger.Debug("swagger.token.http", "page", page.SrcPath, "url", tok.Path)
		return RenderViewer(tok.Path, r.assets), sub
	}

	resolved, err := ResolvePath(page.SrcPath, tok.Path, r.allowArbitrary)
	if err != nil {
		sub.Err = err
		r.logger.Warn("swagger.token.unresolved", "page", page.SrcPath, "name", tok.Path, "error", err)
		return RenderError(err.Error()), sub
	}

	sub.URL = Register(files, resolved, page.DestPath)
	r.logger.Debug("swagger.token.local", "page", page.SrcPath, "source", resolved.Path, "url", sub.URL)
	return RenderViewer(sub.URL, r.assets), sub
}
