package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdswagger/internal/site"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// swaggerFlags override plugins.swagger in the config.
type swaggerFlags struct {
	javaScript     string
	css            string
	allowArbitrary bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	siteDir string
	workers int
	swagger swaggerFlags
}

// watchFlags holds flags for the watch command.
type watchFlags struct {
	build    buildFlags
	debounce time.Duration
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details and debug logs")
}

// addSwaggerFlags adds viewer plugin flags to a FlagSet.
func addSwaggerFlags(fs *flag.FlagSet, f *swaggerFlags) {
	fs.StringVar(&f.javaScript, "swagger-js", "", "local swagger-ui bundle instead of the CDN")
	fs.StringVar(&f.css, "swagger-css", "", "local swagger-ui stylesheet instead of the CDN")
	fs.BoolVar(&f.allowArbitrary, "allow-arbitrary-locations", false, "allow spec files outside the page directory")
}

// addBuildFlags registers the build flags on fs.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.siteDir, "site-dir", "o", "", "output site directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addSwaggerFlags(fs, &f.swagger)
}

// parseBuildFlags parses build command flags and returns remaining args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &buildFlags{}
	addBuildFlags(fs, f)
	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns remaining args.
func parseWatchFlags(args []string, usage io.Writer) (*watchFlags, []string, error) {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &watchFlags{}
	addBuildFlags(fs, &f.build)
	fs.DurationVar(&f.debounce, "debounce", site.DefaultDebounce, "quiet period before rebuilding")
	fs.Usage = func() { printWatchUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
