// Package ast defines the expression and statement node variants
// produced by the parser and consumed by the interpreter and the
// printer.
//
// Each family (Expr, Stmt) is a small closed interface with a private
// marker method, and every variant is a plain struct — no visitor
// interface. Callers dispatch with a type switch; the Go compiler does
// not check such switches for exhaustiveness, so each caller handles an
// unknown variant in its `default` case.
package ast

import "github.com/jainsau/golox/pkg/token"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Literal carries the literal token itself so evaluators can re-derive
// its typed value without a separate "value" field going stale.
type Literal struct {
	Token token.Token
}

// Grouping is a parenthesized expression: "(" expression ")".
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operator: ("!" | "-") right.
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Binary is an infix operator that always evaluates both operands:
// arithmetic, comparison, and equality.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Logical is "and"/"or". Kept distinct from Binary because of
// short-circuit evaluation.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Variable is a bare identifier used as an expression (a variable
// read).
type Variable struct {
	Name token.Token
}

// Assign is "name = value"; it is itself an expression whose value is
// the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}

// ExpressionStmt evaluates an expression and discards its value.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and prints its value.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a variable, optionally with an initializer. A nil
// Initializer binds the name to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// BlockStmt is a "{" declaration* "}" — a new child scope for its
// Statements.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is "if (cond) then" with an optional "else" branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt is "while (cond) body". `for` desugars into this plus a
// Block, so there is no separate ForStmt node.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
