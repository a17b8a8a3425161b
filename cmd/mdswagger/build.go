package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
	"pkt.systems/pslog"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/config"
	"github.com/alnah/go-mdswagger/internal/hints"
	"github.com/alnah/go-mdswagger/internal/pipeline"
	"github.com/alnah/go-mdswagger/internal/site"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrBuildFailed = errors.New("build finished with failures")
)

// runBuildCmd parses flags and builds the site once.
func runBuildCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	logger := newLogger(ctx, env, flags.common.quiet, flags.common.verbose)
	cfg, workers, err := prepareBuild(flags, positional, env, logger)
	if err != nil {
		return err
	}

	return runBuild(ctx, cfg, workers, flags.common, env, logger)
}

// prepareBuild resolves the effective config and worker count.
func prepareBuild(flags *buildFlags, positional []string, env *Environment, logger pslog.Logger) (*config.Config, int, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, 0, err
	}
	if len(positional) > 1 {
		return nil, 0, fmt.Errorf("%w: expected at most one docs directory, got %d", ErrUsage, len(positional))
	}

	envCfg := loadEnvConfig(env)
	warnUnknownEnvVars(env, logger)

	cfg, err := resolveConfig(flags, positional, envCfg)
	if err != nil {
		return nil, 0, err
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	logger.Debug("cli.build.config", "config", cfg.Path, "docs_dir", cfg.DocsDir, "site_dir", cfg.SiteDir, "workers", workers)
	return cfg, workers, nil
}

// resolveConfig loads the config file and applies env vars then flags.
// Precedence: CLI flags > env vars > config file > defaults. Without an
// explicit config, mdswagger.yaml/.yml is used when present.
func resolveConfig(flags *buildFlags, positional []string, envCfg *envConfig) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	var err error
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg, err = config.LoadConfig(config.DefaultName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.DefaultConfig(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, positional, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over config values. Only flags that were
// set override.
func mergeFlags(flags *buildFlags, positional []string, cfg *config.Config) {
	if len(positional) == 1 {
		cfg.DocsDir = positional[0]
	}
	if flags.siteDir != "" {
		cfg.SiteDir = flags.siteDir
	}

	swagger := &cfg.Plugins.Swagger
	if flags.swagger.javaScript != "" {
		swagger.JavaScript = flags.swagger.javaScript
	}
	if flags.swagger.css != "" {
		swagger.CSS = flags.swagger.css
	}
	if flags.swagger.allowArbitrary {
		swagger.AllowArbitraryLocations = true
	}
}

// newPlugin builds the swagger plugin for cfg. Asset and highlight style
// errors surface here, before any page is read.
func newPlugin(cfg *config.Config, logger pslog.Logger) (*mdswagger.Plugin, error) {
	if _, err := pipeline.HighlightCSS(cfg.Markdown.HighlightStyle); err != nil {
		return nil, err
	}

	swagger := cfg.Plugins.Swagger
	return mdswagger.New(
		mdswagger.Options{
			JavaScript:              swagger.JavaScript,
			CSS:                     swagger.CSS,
			AllowArbitraryLocations: swagger.AllowArbitraryLocations,
			BaseDir:                 cfg.BaseDir(),
		},
		mdswagger.SiteAssets{
			ExtraJavaScript: cfg.ExtraJavaScript,
			ExtraCSS:        cfg.ExtraCSS,
		},
		mdswagger.WithLogger(logger),
	)
}

// runBuild builds the site and prints the report.
func runBuild(ctx context.Context, cfg *config.Config, workers int, common commonFlags, env *Environment, logger pslog.Logger) error {
	plugin, err := newPlugin(cfg, logger)
	if err != nil {
		return err
	}
	viewer := plugin.Assets()
	logger.Debug("cli.build.viewer", "js", viewer.JS, "css", viewer.CSS, "allow_arbitrary", plugin.Options().AllowArbitraryLocations)

	builder, err := site.NewBuilder(cfg, plugin,
		site.WithWorkers(workers),
		site.WithLogger(logger),
		site.WithClock(env.Now),
	)
	if err != nil {
		return err
	}

	report, err := builder.Build(ctx)
	if report != nil {
		report.Print(env.Stdout, env.Stderr, common.quiet, common.verbose)
	}
	if err != nil {
		return err
	}

	if n := report.Unresolved(); n > 0 && !common.quiet {
		fmt.Fprintf(env.Stderr, "warning: unresolved swagger tokens%s\n", hints.ForUnresolvedTokens(n))
	}

	if report.Failed() {
		return fmt.Errorf("%w: %d pages, %d artifacts", ErrBuildFailed, report.FailedPages(), report.FailedArtifacts())
	}
	return nil
}
