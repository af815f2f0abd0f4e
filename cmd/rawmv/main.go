package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oxalica/rawmv/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		// Rename failures are printed per operation as they happen; only
		// usage and flag errors still need reporting here.
		if !errors.Is(err, cli.ErrRenameFailed) {
			fmt.Fprintf(os.Stderr, "rawmv: %v\n", err)
		}
		os.Exit(1)
	}
}
