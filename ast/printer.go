package ast

import (
	"fmt"
	"strings"
)

// Printer renders an AST as a parenthesized Lisp-like dump, used by
// cmd/lox's -ast flag to show what the parser produced without
// running the program.
type Printer struct{}

func (p Printer) PrintStmts(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(p.printStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func (p Printer) printStmt(s Stmt) string {
	switch n := s.(type) {
	case *Expression:
		return p.parenthesize(";", n.Expr)
	case *Print:
		return p.parenthesize("print", n.Expr)
	case *Var:
		if n.Initializer == nil {
			return fmt.Sprintf("(var %s)", n.Name.Lexeme)
		}
		return p.parenthesize("var "+n.Name.Lexeme, n.Initializer)
	case *Block:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range n.Statements {
			b.WriteByte(' ')
			b.WriteString(p.printStmt(inner))
		}
		b.WriteByte(')')
		return b.String()
	case *If:
		if n.Else == nil {
			return fmt.Sprintf("(if %s %s)", p.printExpr(n.Condition), p.printStmt(n.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", p.printExpr(n.Condition), p.printStmt(n.Then), p.printStmt(n.Else))
	case *While:
		return fmt.Sprintf("(while %s %s)", p.printExpr(n.Condition), p.printStmt(n.Body))
	case *Function:
		return fmt.Sprintf("(fun %s)", n.Name.Lexeme)
	case *Return:
		if n.Value == nil {
			return "(return)"
		}
		return p.parenthesize("return", n.Value)
	case *Class:
		return fmt.Sprintf("(class %s)", n.Name.Lexeme)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func (p Printer) printExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return p.parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Unary:
		return p.parenthesize(n.Operator.Lexeme, n.Right)
	case *Binary:
		return p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		return p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Grouping:
		return p.parenthesize("group", n.Expression)
	case *Call:
		args := make([]Expr, 0, len(n.Args)+1)
		args = append(args, n.Callee)
		args = append(args, n.Args...)
		return p.parenthesize("call", args...)
	case *Get:
		return p.parenthesize("."+n.Name.Lexeme, n.Object)
	case *Set:
		return p.parenthesize("="+n.Name.Lexeme, n.Object, n.Value)
	case *This:
		return "this"
	case *Super:
		return "(super " + n.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(p.printExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}
