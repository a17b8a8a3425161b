package assets

import (
	"fmt"
	"regexp"
)

// Names of the assets every build uses.
const (
	DefaultLayout     = "page"
	DefaultStylesheet = "theme"
)

// Theme supplies page layouts and stylesheets by name.
type Theme interface {
	// Layout returns the source of layouts/{name}.html.
	Layout(name string) (string, error)

	// Stylesheet returns the content of css/{name}.css.
	Stylesheet(name string) (string, error)
}

// assetName allows lowercase words joined by '-' or '_'.
var assetName = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// ValidateAssetName rejects names that are empty or could form a path.
func ValidateAssetName(name string) error {
	if !assetName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
