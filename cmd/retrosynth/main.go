// Command retrosynth drives the AND/OR Monte Carlo tree search engine from
// the command line: build a search graph for a target molecule, enumerate
// its buyable routes, or serve the same engine over HTTP.
package main

import (
	"os"

	"github.com/turtacn/retrosynth/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	// cli.Execute already prints a formatted error to stderr on failure.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

//Personal.AI order the ending
