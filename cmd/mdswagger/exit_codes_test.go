package main

// Notes:
// - exitCodeFor: every sentinel the CLI can surface is mapped, plus wrapped
//   variants to check the errors.Is chain.
// - hintFor: only the presence of a hint is checked; wording lives in
//   internal/hints.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/assets"
	"github.com/alnah/go-mdswagger/internal/config"
	"github.com/alnah/go-mdswagger/internal/pipeline"
	"github.com/alnah/go-mdswagger/internal/site"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Interrupt (exit 130)
		{"cancelled", context.Canceled, ExitInterrupt},
		{"wrapped cancelled", fmt.Errorf("building: %w", context.Canceled), ExitInterrupt},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"site worker", site.ErrInvalidWorker, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"viewer asset", mdswagger.ErrAssetNotFound, ExitUsage},
		{"highlight style", pipeline.ErrUnknownHighlightStyle, ExitUsage},
		{"layout parse", pipeline.ErrLayoutParse, ExitUsage},
		{"theme dir", assets.ErrInvalidThemeDir, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"docs dir", site.ErrDocsDirNotFound, ExitIO},
		{"no pages", site.ErrNoPages, ExitIO},
		{"wrapped docs dir", fmt.Errorf("build: %w", site.ErrDocsDirNotFound), ExitIO},

		// General (exit 1)
		{"build failed", ErrBuildFailed, ExitGeneral},
		{"unknown", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("standard codes changed: %d %d %d", ExitSuccess, ExitGeneral, ExitUsage)
	}
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, custom codes must stay below 126", ExitIO)
	}
	if ExitInterrupt != 128+2 {
		t.Errorf("ExitInterrupt = %d, want 128+SIGINT", ExitInterrupt)
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Hints appended to error output
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"config not found", config.ErrConfigNotFound, true},
		{"viewer asset", fmt.Errorf("x: %w", mdswagger.ErrAssetNotFound), true},
		{"highlight style", pipeline.ErrUnknownHighlightStyle, true},
		{"docs dir", site.ErrDocsDirNotFound, true},
		{"no pages", site.ErrNoPages, true},
		{"permission", os.ErrPermission, true},
		{"build failed", ErrBuildFailed, false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := hintFor(tt.err)
			if tt.wantHint != strings.Contains(got, "hint:") {
				t.Errorf("hintFor(%v) = %q, wantHint %v", tt.err, got, tt.wantHint)
			}
		})
	}
}
