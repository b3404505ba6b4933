// Package main is the entry point for the draftboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/3JRock3/Ver-2-Draft/cmd"
	"github.com/3JRock3/Ver-2-Draft/internal/session"
)

func main() {
	os.Exit(run())
}

// run wraps the command execution so deferred cleanup survives the exit code.
func run() int {
	defer session.CloseStores()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "Warn stopping profiler:", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
