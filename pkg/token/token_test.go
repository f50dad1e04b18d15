package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"eof", New(EOF, "", nil, 1), "EOF  null"},
		{"identifier", New(IDENTIFIER, "orange", nil, 1), "IDENTIFIER orange null"},
		{"string literal", New(STRING, `"foo"`, "foo", 1), `STRING "foo" foo`},
		{"number literal", New(NUMBER, "42", 42.0, 1), "NUMBER 42 42.0"},
		{"fractional number", New(NUMBER, "3.14", 3.14, 1), "NUMBER 3.14 3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42.0"},
		{12.0, "12.0"},
		{12.5, "12.5"},
		{3.14, "3.14"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestKeywordsCoverage(t *testing.T) {
	// Every reserved word must map to its keyword type, including the
	// unsupported-construct keywords the scanner still recognizes even
	// though the parser never produces them.
	want := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	for _, kw := range want {
		_, ok := Keywords[kw]
		assert.Truef(t, ok, "keyword %q missing from table", kw)
	}
	assert.Len(t, Keywords, len(want))
}
