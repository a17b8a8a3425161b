// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdswagger/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/mdswagger.yml"

	// Find a user config path (contains .config/go-mdswagger) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdswagger") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSiteDirectory returns hints for output directory creation errors.
func ForSiteDirectory() string {
	return format("check parent directory exists and is writable, or set --site-dir")
}

// ForDocsDirectory returns hints when the docs directory cannot be read.
func ForDocsDirectory() string {
	return format("pass the docs directory as argument or set docs_dir in the config")
}

// ForViewerAsset returns hints for missing swagger javascript/css options.
func ForViewerAsset() string {
	return format("paths are relative to the config file; remove the option to use the CDN default")
}

// ForHighlightStyle returns hints for an unknown code highlight style.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	const shown = 8
	if len(available) > shown {
		available = append(available[:shown:shown], "...")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnresolvedTokens returns a hint summarizing pages with inline errors.
func ForUnresolvedTokens(count int) string {
	if count == 0 {
		return ""
	}
	if count == 1 {
		return format("1 swagger token could not be resolved; search the output for SWAGGER ERROR")
	}
	return format(fmt.Sprintf("%d swagger tokens could not be resolved; search the output for SWAGGER ERROR", count))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
