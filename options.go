package mdswagger

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-mdswagger/internal/fileutil"
)

// Options are the plugin settings read from the site configuration.
type Options struct {
	// JavaScript is a local viewer bundle used instead of the default.
	// The value is embedded in pages as written.
	JavaScript string `yaml:"javascript"`

	// CSS is a local viewer stylesheet used instead of the default.
	CSS string `yaml:"css"`

	// AllowArbitraryLocations lets local tokens reference files outside the
	// page's own directory, including relative paths with separators.
	AllowArbitraryLocations bool `yaml:"allow_arbitrary_locations"`

	// BaseDir anchors relative JavaScript and CSS paths when checking that
	// they exist. Usually the directory of the configuration file.
	BaseDir string `yaml:"-"`
}

// Validate checks that configured asset paths point at existing files.
// http(s) URLs are accepted as is.
func (o Options) Validate() error {
	if o.JavaScript != "" && !o.exists(o.JavaScript) {
		return fmt.Errorf("%w: javascript: %s", ErrAssetNotFound, o.JavaScript)
	}
	if o.CSS != "" && !o.exists(o.CSS) {
		return fmt.Errorf("%w: css: %s", ErrAssetNotFound, o.CSS)
	}
	return nil
}

func (o Options) exists(p string) bool {
	return fileutil.IsURL(p) || fileutil.FileExists(o.localPath(p))
}

func (o Options) localPath(p string) string {
	if o.BaseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.BaseDir, p)
}
