package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdswagger <command> [flags] [docs_dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the documentation site once")
	fmt.Fprintln(w, "  watch      Build, then rebuild on every change")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdswagger help <command>' for details on a specific command.")
}

// printBuildFlagsUsage prints the flags shared by build, watch and config.
func printBuildFlagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: mdswagger.yml if present)")
	fmt.Fprintln(w, "  -o, --site-dir <path>     Output site directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel page workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Swagger viewer:")
	fmt.Fprintln(w, "      --swagger-js <path>   Local swagger-ui bundle instead of the CDN")
	fmt.Fprintln(w, "      --swagger-css <path>  Local swagger-ui stylesheet instead of the CDN")
	fmt.Fprintln(w, "      --allow-arbitrary-locations")
	fmt.Fprintln(w, "                            Allow spec paths outside the page directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Per-page details and debug logs")
}

// printEnvUsage lists the recognized environment variables.
func printEnvUsage(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSWAGGER_CONFIG          Config file name or path")
	fmt.Fprintln(w, "  MDSWAGGER_DOCS_DIR        Docs directory")
	fmt.Fprintln(w, "  MDSWAGGER_SITE_DIR        Output site directory")
	fmt.Fprintln(w, "  MDSWAGGER_WORKERS         Parallel page workers")
	fmt.Fprintln(w, "  MDSWAGGER_LOG_*           Logger settings (level, mode, ...)")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdswagger build [docs_dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every Markdown page of docs_dir into the site directory,")
	fmt.Fprintln(w, "replacing !!swagger <file>!! and !!swagger-http <url>!! tokens")
	fmt.Fprintln(w, "with an embedded Swagger UI viewer.")
	fmt.Fprintln(w)
	printBuildFlagsUsage(w)
	fmt.Fprintln(w)
	printEnvUsage(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdswagger watch [docs_dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, then rebuild whenever docs_dir or the config file changes.")
	fmt.Fprintln(w)
	printBuildFlagsUsage(w)
	fmt.Fprintln(w, "      --debounce <d>        Quiet period before rebuilding (default 300ms)")
	fmt.Fprintln(w)
	printEnvUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdswagger config [docs_dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration a build would use, as YAML.")
	fmt.Fprintln(w)
	printBuildFlagsUsage(w)
}

// runHelp prints help for a command and returns an exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdswagger version")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdswagger help [command]")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
