// ABOUTME: Entry point for didi CLI application.
// ABOUTME: Executes the root command and maps errors to exit codes.

package main

import (
	"fmt"
	"os"

	"github.com/harper/didi/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(exitCode(err))
	}
}
