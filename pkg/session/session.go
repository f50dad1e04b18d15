// Package session threads the front-end state that would otherwise sit
// in package-level globals: the had-error / had-runtime-error flags
// that decide the process's exit code, plus the diagnostic sink they're
// written to.
//
// One Session is created per `run`/`tokenize`/`parse`/`evaluate`
// invocation and passed by reference into the scanner, the parser, and
// the interpreter. Its lifetime is exactly one program invocation; the
// REPL keeps a single Session for its whole run and calls Reset before
// each line.
package session

import (
	"fmt"
	"io"
)

// Session collects diagnostics produced anywhere in the pipeline and
// tracks whether a scan/parse error or a runtime error occurred, so the
// driver can choose the right exit code (65 vs. 70 vs 0).
type Session struct {
	Stderr          io.Writer
	hadError        bool
	hadRuntimeError bool
}

// New creates a Session that writes diagnostics to stderr.
func New(stderr io.Writer) *Session {
	return &Session{Stderr: stderr}
}

// HadError reports whether a lexical or parse error was recorded.
func (s *Session) HadError() bool { return s.hadError }

// HadRuntimeError reports whether a runtime error was recorded.
func (s *Session) HadRuntimeError() bool { return s.hadRuntimeError }

// Reset clears both flags, used by the REPL between lines so one bad
// line doesn't poison the exit-status bookkeeping for the next one.
func (s *Session) Reset() {
	s.hadError = false
	s.hadRuntimeError = false
}

// ScanError reports a lexical error at the given line, formatted as
// "[line N] Error: MESSAGE".
func (s *Session) ScanError(line int, message string) {
	s.report(line, "", message)
	s.hadError = true
}

// ParseErrorAt reports a parse error anchored to a token. where is the
// location phrase the caller builds ("at 'lexeme'", or "at end" at EOF),
// so the output reads "[line N] Error at 'lexeme': MESSAGE" /
// "[line N] Error at end: MESSAGE".
func (s *Session) ParseErrorAt(line int, where, message string) {
	s.report(line, where, message)
	s.hadError = true
}

// RuntimeError reports a runtime error, formatted as
// "MESSAGE\n[line N]".
func (s *Session) RuntimeError(line int, message string) {
	fmt.Fprintf(s.Stderr, "%s\n[line %d]\n", message, line)
	s.hadRuntimeError = true
}

func (s *Session) report(line int, where, message string) {
	if where == "" {
		fmt.Fprintf(s.Stderr, "[line %d] Error: %s\n", line, message)
		return
	}
	fmt.Fprintf(s.Stderr, "[line %d] Error %s: %s\n", line, where, message)
}
