package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdswagger/internal/site"
)

// runWatchCmd builds once, then rebuilds on every change until interrupted.
// The config file is reloaded on each rebuild.
func runWatchCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	common := flags.build.common
	logger := newLogger(ctx, env, common.quiet, common.verbose)

	cfg, workers, err := prepareBuild(&flags.build, positional, env, logger)
	if err != nil {
		return err
	}

	if err := runBuild(ctx, cfg, workers, common, env, logger); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		// Page failures are worth watching through; setup errors are not.
		if !errors.Is(err, ErrBuildFailed) {
			return err
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}

	var extra []string
	if cfg.Path != "" {
		extra = append(extra, cfg.Path)
	}

	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s (Ctrl+C to stop)\n", cfg.DocsDir)
	}

	watcher := site.NewWatcher(cfg.DocsDir, cfg.SiteDir, extra, flags.debounce, logger)
	return watcher.Run(ctx, func(ctx context.Context) error {
		cfg, workers, err := prepareBuild(&flags.build, positional, env, logger)
		if err != nil {
			return err
		}
		return runBuild(ctx, cfg, workers, common, env, logger)
	})
}
