// Command ecocalc calculates the CO₂ emitted or saved by everyday activities.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/ecocalc/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}
