// Package interpreter implements the tree-walking evaluator for Lox.
//
// Evaluation Architecture:
//
// The interpreter walks the AST with a pair of dispatch functions — one
// switch over ast.Expr variants, one over ast.Stmt variants — instead of
// a visitor interface, favoring a tagged sum plus `switch` over double
// dispatch. It holds a pointer to the current environment; entering a
// block swaps in a freshly parented child environment for the block's
// duration and restores the previous one on the way out, including on
// error unwind.
//
// Runtime errors are Go errors returned up the call stack rather than
// exceptions: a *RuntimeError carries the offending token (for its
// line), propagates out of whatever expression or statement raised it,
// and is caught once at Interpret's top level, unwinding straight to the
// top of the interpret loop.
package interpreter

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jainsau/golox/pkg/ast"
	"github.com/jainsau/golox/pkg/environment"
	"github.com/jainsau/golox/pkg/session"
	"github.com/jainsau/golox/pkg/token"
)

// RuntimeError is raised during evaluation. It carries the token
// responsible, so a caller can report the line it happened on; there's
// no call stack to unwind through since Lox has no function calls.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// Interpreter walks a parsed program or a single expression and
// produces its side effects (print output) and diagnostics.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	stdout  io.Writer
	sess    *session.Session

	// Trace, when non-nil, receives one line per executed statement — an
	// execution trace for the `-v` flag on `lox run`.
	Trace io.Writer
}

// New creates an Interpreter whose `print` statements write to stdout
// and whose runtime errors are reported to sess.
func New(stdout io.Writer, sess *session.Session) *Interpreter {
	globals := environment.New()
	return &Interpreter{globals: globals, env: globals, stdout: stdout, sess: sess}
}

// Interpret runs a full program (the `run` sub-command). A runtime
// error aborts the statement it occurred in and every statement after
// it — it is reported to the Session and Interpret returns.
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

// InterpretExpression evaluates a single expression (the `evaluate`
// sub-command) and prints its value the way `print` would.
func (in *Interpreter) InterpretExpression(expr ast.Expr) {
	value, err := in.evaluate(expr)
	if err != nil {
		in.reportRuntimeError(err)
		return
	}
	fmt.Fprintln(in.stdout, Stringify(value))
}

func (in *Interpreter) reportRuntimeError(err error) {
	if rerr, ok := err.(*RuntimeError); ok {
		in.sess.RuntimeError(rerr.Token.Line, rerr.Message)
		return
	}
	in.sess.RuntimeError(0, err.Error())
}

// --- statements ------------------------------------------------------------

func (in *Interpreter) execute(stmt ast.Stmt) error {
	if in.Trace != nil {
		fmt.Fprintf(in.Trace, "%s\n", traceLabel(stmt))
	}

	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, Stringify(value))
		return nil

	case *ast.VarStmt:
		var value interface{}
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, environment.NewChild(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("unknown statement type: %T", stmt)
	}
}

// executeBlock runs statements in a child scope, always restoring the
// previous scope on the way out — including when a statement returns a
// runtime error.
func (in *Interpreter) executeBlock(statements []ast.Stmt, scope *environment.Environment) error {
	previous := in.env
	in.env = scope
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func traceLabel(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return "expr"
	case *ast.PrintStmt:
		return "print"
	case *ast.VarStmt:
		return "var " + s.Name.Lexeme
	case *ast.BlockStmt:
		return "block"
	case *ast.IfStmt:
		return "if"
	case *ast.WhileStmt:
		return "while"
	default:
		return fmt.Sprintf("%T", stmt)
	}
}

// --- expressions -------------------------------------------------------

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Token.Literal, nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Variable:
		value, err := in.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(e.Name, err.Error())
		}
		return value, nil

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(e.Name.Lexeme, value); err != nil {
			return nil, newRuntimeError(e.Name, err.Error())
		}
		return value, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Binary:
		return in.evalBinary(e)

	default:
		return nil, fmt.Errorf("unknown expression type: %T", expr)
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	}

	return nil, newRuntimeError(e.Operator, "Unknown unary operator.")
}

// evalLogical implements short-circuit "and"/"or": it returns the
// controlling operand's value, not a coerced boolean.
func (in *Interpreter) evalLogical(e *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !isTruthy(left) {
			return left, nil
		}
	}

	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l - r, nil

	case token.SLASH:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l / r, nil

	case token.STAR:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l * r, nil

	case token.PLUS:
		if l, r, ok := bothNumbers(left, right); ok {
			return l + r, nil
		}
		if l, r, ok := bothStrings(left, right); ok {
			return l + r, nil
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.GREATER:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l > r, nil

	case token.GREATER_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l >= r, nil

	case token.LESS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l < r, nil

	case token.LESS_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l <= r, nil

	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}

	return nil, newRuntimeError(e.Operator, "Unknown binary operator.")
}

func bothNumbers(a, b interface{}) (float64, float64, bool) {
	an, aok := a.(float64)
	bn, bok := b.(float64)
	return an, bn, aok && bok
}

func bothStrings(a, b interface{}) (string, string, bool) {
	as, aok := a.(string)
	bs, bok := b.(string)
	return as, bs, aok && bok
}

// isTruthy: nil and false are false; everything else is true,
// including 0 and "".
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual: nil equals only nil; values of different Go types are never
// equal (so booleans are never equal to numbers even though both could
// otherwise compare as 0/1); same-typed values compare structurally.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	return false
}

// Stringify renders a runtime value the way `print` and `evaluate` do:
// nil -> "nil", booleans -> "true"/"false", strings verbatim, numbers in
// integer form when they have no fractional part and otherwise in their
// shortest round-tripping decimal form.
func Stringify(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case float64:
		return formatNumber(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%.0f", v)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
