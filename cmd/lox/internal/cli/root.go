// Package cli builds the lox command-line front end out of
// github.com/spf13/cobra sub-commands: tokenize, parse, evaluate, and
// run (one per pipeline stage a caller might want to stop at), plus
// repl and version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbose bool

// Execute builds and runs the root command against os.Args.
func Execute() error {
	root := newRootCmd()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lox",
		Short:         "lox is a tree-walking interpreter for the Lox language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newEvaluateCmd(),
		newRunCmd(),
		newReplCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lox version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "lox version %s\n", version)
			return nil
		},
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
