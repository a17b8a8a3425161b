package main

import (
	"strconv"
	"strings"

	"pkt.systems/pslog"

	"github.com/alnah/go-mdswagger/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSWAGGER_CONFIG: config file name or path
	DocsDir    string // MDSWAGGER_DOCS_DIR: docs directory
	SiteDir    string // MDSWAGGER_SITE_DIR: output directory
	Workers    int    // MDSWAGGER_WORKERS: parallel workers
}

// knownEnvVars lists valid MDSWAGGER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSWAGGER_CONFIG":   true,
	"MDSWAGGER_DOCS_DIR": true,
	"MDSWAGGER_SITE_DIR": true,
	"MDSWAGGER_WORKERS":  true,
}

// logEnvPrefix is read by pslog directly.
const logEnvPrefix = "MDSWAGGER_LOG_"

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("MDSWAGGER_CONFIG"),
		DocsDir:    env.Getenv("MDSWAGGER_DOCS_DIR"),
		SiteDir:    env.Getenv("MDSWAGGER_SITE_DIR"),
	}

	if workers := env.Getenv("MDSWAGGER_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs unrecognized MDSWAGGER_* variables.
// Helps catch typos like MDSWAGGER_SITEDIR instead of MDSWAGGER_SITE_DIR.
func warnUnknownEnvVars(env *Environment, logger pslog.Logger) {
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, "MDSWAGGER_") || strings.HasPrefix(kv, logEnvPrefix) {
			continue
		}
		name := strings.SplitN(kv, "=", 2)[0]
		if !knownEnvVars[name] {
			logger.Warn("cli.env.unknown", "name", name, "hint", "typo?")
		}
	}
}

// applyEnvConfig applies environment values on top of the config file.
// CLI flags are merged afterwards so they win.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.DocsDir != "" {
		cfg.DocsDir = env.DocsDir
	}
	if env.SiteDir != "" {
		cfg.SiteDir = env.SiteDir
	}
}
