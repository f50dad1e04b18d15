package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanError(t *testing.T) {
	var buf bytes.Buffer
	sess := New(&buf)

	sess.ScanError(3, "Unexpected character: @")
	assert.True(t, sess.HadError())
	assert.False(t, sess.HadRuntimeError())
	assert.Equal(t, "[line 3] Error: Unexpected character: @\n", buf.String())
}

func TestParseErrorAtToken(t *testing.T) {
	var buf bytes.Buffer
	sess := New(&buf)

	sess.ParseErrorAt(5, "at ')'", "Expect expression.")
	assert.True(t, sess.HadError())
	assert.Equal(t, "[line 5] Error at ')': Expect expression.\n", buf.String())
}

func TestParseErrorAtEnd(t *testing.T) {
	var buf bytes.Buffer
	sess := New(&buf)

	sess.ParseErrorAt(7, "at end", "Expect ')' after expression.")
	assert.Equal(t, "[line 7] Error at end: Expect ')' after expression.\n", buf.String())
}

func TestRuntimeErrorFormat(t *testing.T) {
	var buf bytes.Buffer
	sess := New(&buf)

	sess.RuntimeError(9, "Operand must be a number.")
	assert.False(t, sess.HadError())
	assert.True(t, sess.HadRuntimeError())
	assert.Equal(t, "Operand must be a number.\n[line 9]\n", buf.String())
}

func TestResetClearsBothFlags(t *testing.T) {
	var buf bytes.Buffer
	sess := New(&buf)

	sess.ScanError(1, "bad")
	sess.RuntimeError(1, "bad")
	a := assert.New(t)
	a.True(sess.HadError())
	a.True(sess.HadRuntimeError())

	sess.Reset()
	a.False(sess.HadError())
	a.False(sess.HadRuntimeError())
}
