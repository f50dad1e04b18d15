// Command lox is the front-end driver for the core interpreter
// pipeline: it reads a source file (or REPL input), chooses a
// sub-command, and turns the core's Session flags into a process exit
// code. Argument parsing, file reading and exit-code plumbing are
// explicitly outside the tested core — this file is their home.
package main

import (
	"fmt"
	"os"

	"github.com/jainsau/golox/cmd/lox/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if code, ok := cli.ExitCode(err); ok {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
