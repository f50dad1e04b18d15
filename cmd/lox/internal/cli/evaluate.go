package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jainsau/golox/pkg/interpreter"
	"github.com/jainsau/golox/pkg/lexer"
	"github.com/jainsau/golox/pkg/parser"
	"github.com/jainsau/golox/pkg/session"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <file>",
		Short: "Scan, parse, and evaluate a single expression, printing its value",
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

			expr := parser.New(tokens, sess).ParseExpression()
			if sess.HadError() {
				return exitWith(65)
			}

			in := interpreter.New(cmd.OutOrStdout(), sess)
			in.InterpretExpression(expr)
			if sess.HadRuntimeError() {
				return exitWith(70)
			}
			return nil
		},
	}
}
