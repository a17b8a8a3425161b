package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdswagger/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "mdswagger"

// Field length limits.
const (
	MaxSiteNameLength = 200
	MaxPathLength     = 4096
	MaxURLLength      = 2048 // Browser limit
	MaxExtraEntries   = 100
	MaxStyleLength    = 50
)

// Config holds the site build configuration.
type Config struct {
	SiteName        string         `yaml:"site_name"`
	DocsDir         string         `yaml:"docs_dir"`  // Default: "docs"
	SiteDir         string         `yaml:"site_dir"`  // Default: "site"
	ThemeDir        string         `yaml:"theme_dir"` // Empty = embedded theme
	ExtraJavaScript []string       `yaml:"extra_javascript"`
	ExtraCSS        []string       `yaml:"extra_css"`
	Markdown        MarkdownConfig `yaml:"markdown"`
	Plugins         PluginsConfig  `yaml:"plugins"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `yaml:"-"`
}

// MarkdownConfig defines Markdown rendering options.
type MarkdownConfig struct {
	HighlightStyle string `yaml:"highlight_style"` // chroma style name (default: "github")
}

// PluginsConfig groups plugin settings.
type PluginsConfig struct {
	Swagger SwaggerConfig `yaml:"swagger"`
}

// SwaggerConfig defines the swagger viewer plugin options.
type SwaggerConfig struct {
	JavaScript              string `yaml:"javascript"`                // Local viewer bundle (optional)
	CSS                     string `yaml:"css"`                       // Local viewer stylesheet (optional)
	AllowArbitraryLocations bool   `yaml:"allow_arbitrary_locations"` // Default: false
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site_name", c.SiteName, MaxSiteNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("docs_dir", c.DocsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site_dir", c.SiteDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme_dir", c.ThemeDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateEntries("extra_javascript", c.ExtraJavaScript); err != nil {
		return err
	}
	if err := validateEntries("extra_css", c.ExtraCSS); err != nil {
		return err
	}

	if err := validateFieldLength("markdown.highlight_style", c.Markdown.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}

	swagger := c.Plugins.Swagger
	if err := validateFieldLength("plugins.swagger.javascript", swagger.JavaScript, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("plugins.swagger.css", swagger.CSS, MaxPathLength); err != nil {
		return err
	}

	if c.DocsDir != "" && c.SiteDir != "" && filepath.Clean(c.DocsDir) == filepath.Clean(c.SiteDir) {
		return fmt.Errorf("%w: site_dir must differ from docs_dir (%s)", ErrInvalidField, c.DocsDir)
	}

	return nil
}

// validateEntries checks a list of extra asset URLs.
func validateEntries(fieldName string, entries []string) error {
	if len(entries) > MaxExtraEntries {
		return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, fieldName, len(entries), MaxExtraEntries)
	}
	for i, e := range entries {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidField, fieldName, i)
		}
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", fieldName, i), e, MaxURLLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		SiteName: "Documentation",
		DocsDir:  "docs",
		SiteDir:  "site",
		Markdown: MarkdownConfig{HighlightStyle: "github"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Unset fields keep their DefaultConfig values. Relative docs_dir, site_dir
// and theme_dir are resolved against the config file's directory.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg.Path = absPath
	cfg.anchor(filepath.Dir(absPath))

	return cfg, nil
}

// BaseDir returns the directory relative paths are resolved against:
// the config file's directory, or the working directory for defaults.
func (c *Config) BaseDir() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// anchor makes directory fields absolute relative to base.
func (c *Config) anchor(base string) {
	for _, p := range []*string{&c.DocsDir, &c.SiteDir, &c.ThemeDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdswagger/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdswagger", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
