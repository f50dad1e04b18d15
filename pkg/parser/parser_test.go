package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jainsau/golox/pkg/ast"
	"github.com/jainsau/golox/pkg/astprinter"
	"github.com/jainsau/golox/pkg/lexer"
	"github.com/jainsau/golox/pkg/session"
)

func parseExpr(t *testing.T, src string) (string, *session.Session, string) {
	t.Helper()
	var stderr bytes.Buffer
	sess := session.New(&stderr)
	tokens := lexer.New(src, sess).ScanTokens()
	expr := New(tokens, sess).ParseExpression()
	if expr == nil {
		return "", sess, stderr.String()
	}
	return astprinter.Print(expr), sess, stderr.String()
}

func TestParseExpression_Precedence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1 + 2 * 3", "(+ 1.0 (* 2.0 3.0))"},
		{"(1 + 2) * 3", "(* (group (+ 1.0 2.0)) 3.0)"},
		{"-1 + 2", "(+ (- 1.0) 2.0)"},
		{"!true == false", "(== (! true) false)"},
		{`"foo" + "bar"`, `(+ foo bar)`},
		{"1 < 2 and 2 < 3", "(and (< 1.0 2.0) (< 2.0 3.0))"},
		{"false or 1", "(or false 1.0)"},
		{"a = b = 1", "(= a (= b 1.0))"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, sess, stderr := parseExpr(t, tt.in)
			require.Falsef(t, sess.HadError(), "unexpected parse error: %s", stderr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpression_InvalidAssignmentTargetDoesNotAbort(t *testing.T) {
	got, sess, stderr := parseExpr(t, "1 + 2 = 3")
	assert.True(t, sess.HadError())
	assert.Contains(t, stderr, "Invalid assignment target.")
	// The rest of the expression still parsed: assignment() falls back
	// to returning the already-parsed left-hand side.
	assert.Equal(t, "(+ 1.0 2.0)", got)
}

func TestParseExpression_MissingClosingParen(t *testing.T) {
	_, sess, stderr := parseExpr(t, "(1 + 2")
	assert.True(t, sess.HadError())
	assert.Contains(t, stderr, "Error at end: Expect ')' after expression.")
}

func parseProgram(t *testing.T, src string) (int, *session.Session, string) {
	t.Helper()
	var stderr bytes.Buffer
	sess := session.New(&stderr)
	tokens := lexer.New(src, sess).ScanTokens()
	stmts := New(tokens, sess).ParseProgram()
	return len(stmts), sess, stderr.String()
}

func TestParseProgram_SynchronizesAfterError(t *testing.T) {
	// The bad `var ;` declaration should be skipped, but the
	// well-formed statement after it must still parse.
	n, sess, _ := parseProgram(t, "var ; print 1;")
	assert.True(t, sess.HadError())
	assert.Equal(t, 1, n)
}

func TestParseProgram_ForDesugarsToWhile(t *testing.T) {
	n, sess, stderr := parseProgram(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Falsef(t, sess.HadError(), "unexpected parse error: %s", stderr)
	// Desugars to a single Block([VarStmt, WhileStmt]).
	assert.Equal(t, 1, n)
}

func TestParseProgram_DanglingElseBindsToNearestIf(t *testing.T) {
	src := "if (true) if (false) print 1; else print 2;"
	n, sess, stderr := parseProgram(t, src)
	require.Falsef(t, sess.HadError(), "unexpected parse error: %s", stderr)
	require.Equal(t, 1, n)

	stmts := New(lexer.New(src, sess).ScanTokens(), sess).ParseProgram()
	outer, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.Nil(t, outer.Else, "else must not bind to the outer if")
	inner, ok := outer.Then.(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
}

func TestParseProgram_MultipleErrorsAccumulate(t *testing.T) {
	n, sess, stderr := parseProgram(t, "var ; var ; print 1;")
	assert.True(t, sess.HadError())
	assert.Equal(t, 1, n)
	// Both bad declarations reported their own diagnostic.
	assert.Equal(t, 2, strings.Count(stderr, "Expect variable name."))
}
