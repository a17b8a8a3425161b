package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
	"pkt.systems/pslog"

	"github.com/alnah/go-mdswagger/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML, after env vars
// and flags are applied.
func runConfigCmd(args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, _, err := prepareBuild(flags, positional, env, pslog.NoopLogger())
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if cfg.Path != "" {
		fmt.Fprintf(env.Stdout, "# %s\n", cfg.Path)
	}
	_, err = env.Stdout.Write(out)
	return err
}
