// Package ast defines the Lox abstract syntax tree: the parser's
// output and the resolver's and interpreter's input. Node types are
// plain structs implementing one of two marker interfaces, Expr and
// Stmt, so the evaluator's and resolver's type switches stay
// exhaustive over expressions and statements separately.
package ast

import "github.com/midbel/lox/token"

// Expr is implemented by every expression node. Nodes are handed out
// as pointers by the parser and never copied, so the resolver can key
// its depth table by pointer identity.
type Expr interface {
	exprNode()
}

type Literal struct {
	Value any
}

type Variable struct {
	Name token.Token
}

type Assign struct {
	Name  token.Token
	Value Expr
}

type Unary struct {
	Operator token.Token
	Right    Expr
}

type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Grouping struct {
	Expression Expr
}

type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

type Get struct {
	Object Expr
	Name   token.Token
}

type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

type This struct {
	Keyword token.Token
}

type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
