package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jainsau/golox/pkg/interpreter"
	"github.com/jainsau/golox/pkg/lexer"
	"github.com/jainsau/golox/pkg/parser"
	"github.com/jainsau/golox/pkg/session"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Scan, parse, and execute a full program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			sess := session.New(os.Stderr)
			tokens := lexer.New(source, sess).ScanTokens()
			if sess.HadError() {
				return exitWith(65)
			}

			statements := parser.New(tokens, sess).ParseProgram()
			if sess.HadError() {
				return exitWith(65)
			}

			in := interpreter.New(cmd.OutOrStdout(), sess)
			if verbose {
				in.Trace = cmd.ErrOrStderr()
			}
			in.Interpret(statements)
			if sess.HadRuntimeError() {
				return exitWith(70)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each executed statement to stderr")
	return cmd
}
