package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// MarkdownPreprocessor normalizes page source before token scanning.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor cleans up editor artifacts so tokens and offsets
// see plain LF text.
type CommonMarkPreprocessor struct{}

// preprocessSteps run in order on every page.
var preprocessSteps = []func(string) string{
	stripByteOrderMark,
	normalizeLineEndings,
	compressBlankLines,
}

// PreprocessMarkdown runs every step on content. A cancelled context
// returns content unchanged; the caller notices the cancellation itself.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	for _, step := range preprocessSteps {
		content = step(content)
	}
	return content
}

func stripByteOrderMark(content string) string {
	return strings.TrimPrefix(content, "\uFEFF")
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeLineEndings converts \r\n and lone \r to \n.
func normalizeLineEndings(content string) string {
	return lineEndings.Replace(content)
}

var blankRun = regexp.MustCompile(`\n{3,}`)

// compressBlankLines keeps at most one empty line between blocks.
func compressBlankLines(content string) string {
	return blankRun.ReplaceAllLiteralString(content, "\n\n")
}
