package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jainsau/golox/pkg/astprinter"
	"github.com/jainsau/golox/pkg/lexer"
	"github.com/jainsau/golox/pkg/parser"
	"github.com/jainsau/golox/pkg/session"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Scan and parse a single expression, printing its parenthesized form",
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

			fmt.Fprintln(cmd.OutOrStdout(), astprinter.Print(expr))
			return nil
		},
	}
}
