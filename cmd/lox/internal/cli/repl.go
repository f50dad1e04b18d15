package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jainsau/golox/pkg/interpreter"
	"github.com/jainsau/golox/pkg/lexer"
	"github.com/jainsau/golox/pkg/parser"
	"github.com/jainsau/golox/pkg/session"
)

// newReplCmd builds the `repl` sub-command. Bindings only persist
// within one running process: reusing the same Interpreter (and so its
// global Environment) across lines is what lets a variable defined on
// one line be read or reassigned on the next.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runREPL(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
}

func runREPL(stdout, stderr io.Writer) {
	fmt.Fprintf(stdout, "lox %s\n", version)
	fmt.Fprintln(stdout, "Type ':quit' or ':exit' to exit.")

	sess := session.New(stderr)
	in := interpreter.New(stdout, sess)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(stdout, "lox> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case ":quit", ":exit":
			return
		case "":
			continue
		}

		// Each line gets a clean had-error slate: one bad line
		// shouldn't poison the flags a later, good line would check.
		sess.Reset()
		tokens := lexer.New(line, sess).ScanTokens()
		if sess.HadError() {
			continue
		}

		statements := parser.New(tokens, sess).ParseProgram()
		if sess.HadError() {
			continue
		}

		in.Interpret(statements)
	}
}
