// Package parser implements the Lox recursive-descent parser.
//
// The parser is responsible for converting a stream of tokens (from the
// lexer) into an Abstract Syntax Tree (AST). It performs syntactic
// analysis to ensure the code follows the grammar rules of the Lox
// language.
//
// Parser Architecture:
//
// The parser uses a recursive descent parsing strategy, which means:
//  1. Each grammar rule corresponds to a parsing function.
//  2. The parser looks ahead one token (via peek) to decide what to
//     parse.
//  3. Functions call each other recursively to handle nested structures,
//     from the lowest-precedence rule down to the highest.
//
// Token Management:
//
// The parser holds the complete token stream and an index into it:
//   - current: the index of the next unconsumed token (returned by peek)
//   - previous(): the token most recently consumed
//
// Grammar (lowest to highest precedence; left-associative except where
// noted):
//
//	program     → declaration* EOF
//	declaration → varDecl | statement
//	varDecl     → "var" IDENT ( "=" expression )? ";"
//	statement   → printStmt | ifStmt | whileStmt | forStmt | block | exprStmt
//	printStmt   → "print" expression ";"
//	ifStmt      → "if" "(" expression ")" statement ( "else" statement )?
//	whileStmt   → "while" "(" expression ")" statement
//	forStmt     → "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
//	block       → "{" declaration* "}"
//	exprStmt    → expression ";"
//
//	expression  → assignment
//	assignment  → IDENT "=" assignment | logic_or      // right-associative
//	logic_or    → logic_and ( "or"  logic_and )*
//	logic_and   → equality  ( "and" equality  )*
//	equality    → comparison ( ("!=" | "==") comparison )*
//	comparison  → term ( (">" | ">=" | "<" | "<=") term )*
//	term        → factor ( ("-" | "+") factor )*
//	factor      → unary  ( ("/" | "*") unary  )*
//	unary       → ( "!" | "-" ) unary | primary
//	primary     → "true" | "false" | "nil" | NUMBER | STRING
//	            | "(" expression ")" | IDENT
//
// Error Handling:
//
// Every parse error is reported to the Session immediately (so multiple
// errors across a file all surface in one pass) and raised internally as
// a parseError to unwind to the nearest statement boundary, where
// synchronize() discards tokens until the next likely statement start.
package parser

import (
	"github.com/jainsau/golox/pkg/ast"
	"github.com/jainsau/golox/pkg/session"
	"github.com/jainsau/golox/pkg/token"
)

// parseError is raised internally to unwind to the nearest
// synchronization point; it is never returned to the caller.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser parses a token stream into statements or a single expression.
//
// The parser is stateful and single-use: create a new Parser for each
// source file or REPL line.
type Parser struct {
	tokens  []token.Token
	current int
	sess    *session.Session
}

// New creates a Parser over a complete token stream (as produced by
// lexer.ScanTokens), reporting errors to sess.
func New(tokens []token.Token, sess *session.Session) *Parser {
	return &Parser{tokens: tokens, sess: sess}
}

// ParseProgram parses `declaration* EOF` — the entry point used by the
// `run` sub-command. Statements that failed to parse are omitted from
// the result; the Session's HadError flag reports whether that
// happened.
func (p *Parser) ParseProgram() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// ParseExpression parses a single `expression` — the entry point used
// by the `parse` and `evaluate` sub-commands. Returns nil if the
// expression didn't parse; the Session's HadError flag is set in that
// case.
func (p *Parser) ParseExpression() (expr ast.Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			expr = nil
		}
	}()
	return p.expression()
}

// declaration parses a varDecl or a statement, synchronizing past the
// construct on error so the rest of the file still parses.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	// Dangling else binds to the nearest preceding if: since we consume
	// it the moment we see it, an outer call never gets the chance to
	// claim it first.
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}

	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()

	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
// `Block([init?, While(cond, Block([body, incr?]))])`, with a synthetic
// `true` condition when the clause is omitted.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Token: token.New(token.TRUE, "true", nil, 0)}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment only accepts an IDENT as its left-hand side. Any other
// shape reports "Invalid assignment target." without aborting the
// surrounding expression: the error is reported, not panicked, so the
// already-parsed value is still a valid expression.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.NIL):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	}

	panic(p.errorAt(p.peek(), "Expect expression."))
}

// --- token-stream helpers -------------------------------------------------

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the expected token kind, or raises a parseError
// reporting message at the current token.
func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a parse error to the Session and returns the control-flow
// signal the caller should panic with.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	where := "at '" + tok.Lexeme + "'"
	if tok.Type == token.EOF {
		where = "at end"
	}
	p.sess.ParseErrorAt(tok.Line, where, message)
	return parseError{}
}

// synchronize discards tokens until after the next ';' or until a
// statement-starting keyword is ahead, so the declarations following a
// bad one can still be parsed.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}
