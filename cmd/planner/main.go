package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/planner/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	dataDir := flag.String("data", "", "data directory (default ~/.planner)")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	// Hand the remaining args to the CLI runner. No args opens the
	// interactive app.
	code := cli.Run(flag.Args(), cli.Options{
		Group:   *groupPending,
		DataDir: *dataDir,
		Theme:   *theme,
		Verbose: *verbose,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
