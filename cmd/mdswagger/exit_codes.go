package main

import (
	"context"
	"errors"
	"os"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/assets"
	"github.com/alnah/go-mdswagger/internal/config"
	"github.com/alnah/go-mdswagger/internal/hints"
	"github.com/alnah/go-mdswagger/internal/pipeline"
	"github.com/alnah/go-mdswagger/internal/site"
)

// Exit codes for the mdswagger CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0   // Site built
	ExitGeneral   = 1   // General/unexpected error, or some pages failed
	ExitUsage     = 2   // Invalid flags, config, or validation
	ExitIO        = 3   // File not found, permission denied
	ExitInterrupt = 130 // Cancelled by signal
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, site.ErrInvalidWorker) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, mdswagger.ErrAssetNotFound) ||
		errors.Is(err, pipeline.ErrUnknownHighlightStyle) ||
		errors.Is(err, pipeline.ErrLayoutParse) ||
		errors.Is(err, assets.ErrInvalidThemeDir) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, site.ErrDocsDirNotFound) ||
		errors.Is(err, site.ErrNoPages) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, mdswagger.ErrAssetNotFound):
		return hints.ForViewerAsset()
	case errors.Is(err, pipeline.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle(pipeline.HighlightStyles())
	case errors.Is(err, site.ErrDocsDirNotFound), errors.Is(err, site.ErrNoPages):
		return hints.ForDocsDirectory()
	case errors.Is(err, os.ErrPermission):
		return hints.ForSiteDirectory()
	}
	return ""
}
