package main

import (
	"context"

	"pkt.systems/pslog"
)

// newLogger builds the CLI logger on env.Stderr. MDSWAGGER_LOG_* variables
// override the defaults; --verbose forces debug and --quiet disables
// logging.
func newLogger(ctx context.Context, env *Environment, quiet, verbose bool) pslog.Logger {
	level := pslog.InfoLevel
	if lvl, ok := pslog.ParseLevel("warn"); ok {
		level = lvl
	}

	logger := pslog.LoggerFromEnv(ctx,
		pslog.WithEnvPrefix(logEnvPrefix),
		pslog.WithEnvOptions(pslog.Options{
			Mode:             pslog.ModeConsole,
			MinLevel:         level,
			DisableTimestamp: true,
		}),
		pslog.WithEnvWriter(env.Stderr),
	)

	if quiet {
		return pslog.NoopLogger()
	}
	if verbose {
		return logger.LogLevel(pslog.DebugLevel)
	}
	return logger
}
