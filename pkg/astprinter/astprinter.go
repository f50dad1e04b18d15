// Package astprinter implements the parenthesized expression printer
// used by the `parse` sub-command.
package astprinter

import (
	"fmt"
	"strings"

	"github.com/jainsau/golox/pkg/ast"
	"github.com/jainsau/golox/pkg/token"
)

// Print renders expr in the parenthesized form: atoms print their
// literal (or "nil"); Grouping(e) prints "(group e')"; Unary(op, e)
// prints "(op e')"; Binary(l, op, r) prints "(op l' r')".
func Print(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalString(e.Token)
	case *ast.Grouping:
		return parenthesize("group", e.Expression)
	case *ast.Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *ast.Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}

// literalString renders a Literal node's token: NUMBER/STRING use the
// decoded Literal value; true/false/nil have no decoded Literal, so
// their lexeme ("true"/"false"/"nil") already is the printed form.
func literalString(tok token.Token) string {
	if tok.Literal == nil {
		return tok.Lexeme
	}
	if n, ok := tok.Literal.(float64); ok {
		return token.FormatNumber(n)
	}
	return fmt.Sprintf("%v", tok.Literal)
}

func parenthesize(name string, exprs ...ast.Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}
