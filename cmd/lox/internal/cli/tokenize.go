package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jainsau/golox/pkg/lexer"
	"github.com/jainsau/golox/pkg/session"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Scan a source file and print its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			sess := session.New(os.Stderr)
			tokens := lexer.New(source, sess).ScanTokens()
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok.String())
			}

			if sess.HadError() {
				return exitWith(65)
			}
			return nil
		},
	}
}
