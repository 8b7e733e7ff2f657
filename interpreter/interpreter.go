// Package interpreter implements the tree-walking evaluator and the
// Value/Environment/Function/Class/Instance model it runs against.
// Evaluation is a switch-dispatch walk over the AST (evaluate(expr)
// (Value, error), execute(stmt) error); control flow that needs to
// unwind past arbitrary nesting, such as return, travels as an error
// value instead of a side channel.
package interpreter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/midbel/lox/ast"
	"github.com/midbel/lox/report"
	"github.com/midbel/lox/resolver"
	"github.com/midbel/lox/token"
)

// runtimeError is the error type every runtime failure produces. It
// carries the offending token so the top-level reporter can format
// "[line N]: MESSAGE" without every evaluator function importing
// report directly.
type runtimeError struct {
	token   token.Token
	message string
}

func (e runtimeError) Error() string { return e.message }

func newRuntimeError(tok token.Token, format string, args ...any) runtimeError {
	return runtimeError{token: tok, message: fmt.Sprintf(format, args...)}
}

type Interpreter struct {
	globals     *Environment
	environment *Environment
	depths      resolver.Depths
	reporter    report.Reporter
	out         *bufio.Writer
}

func New(reporter report.Reporter, out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		reporter:    reporter,
		out:         bufio.NewWriter(out),
	}
}

// Interpret runs a resolved program. Runtime errors abort execution,
// are reported once, and set the reporter's runtime-error flag.
func (i *Interpreter) Interpret(stmts []ast.Stmt, depths resolver.Depths) {
	i.depths = depths
	defer i.out.Flush()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if rerr, ok := err.(runtimeError); ok {
				i.reporter.RuntimeError(rerr.token.Line, rerr.message)
			}
			return
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expr)
		return err
	case *ast.Print:
		value, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, Stringify(value))
		return i.out.Flush()
	case *ast.Var:
		var value Value
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.Block:
		return i.executeBlock(s.Statements, NewEnvironment(i.environment))
	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := NewFunction(s, i.environment, false)
		i.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var value Value
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}
	case *ast.Class:
		return i.executeClass(s)
	default:
		return fmt.Errorf("%T unsupported statement type", stmt)
	}
}

func (i *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "superclass must be a class.")
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	enclosing := i.environment
	if s.Superclass != nil {
		i.environment = NewEnvironment(i.environment)
		i.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, i.environment, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		i.environment = enclosing
	}

	return i.environment.Assign(s.Name.Lexeme, class)
}

// executeBlock runs statements in a new environment; on any exit path
// (normal, return-unwind, error) it restores the previous environment
// pointer.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)
	case *ast.Super:
		return i.evalSuper(e)
	default:
		return nil, fmt.Errorf("%T unsupported expression type", expr)
	}
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := i.depths[expr]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	v, err := i.globals.Get(name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := i.depths[e]; ok {
		i.environment.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return value, nil
}

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return !IsTruthy(right), nil
	}
	return nil, newRuntimeError(e.Operator, "unsupported operator.")
}

func (i *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.Or {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Plus:
		return addValues(left, right, e.Operator)
	case token.Minus:
		l, r, err := bothNumbers(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.Slash:
		l, r, err := bothNumbers(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case token.Star:
		l, r, err := bothNumbers(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.Greater:
		l, r, err := bothNumbers(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GreaterEqual:
		l, r, err := bothNumbers(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.Less:
		l, r, err := bothNumbers(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LessEqual:
		l, r, err := bothNumbers(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case token.BangEqual:
		return !Equal(left, right), nil
	case token.EqualEqual:
		return Equal(left, right), nil
	}
	return nil, newRuntimeError(e.Operator, "unsupported operator.")
}

func addValues(left, right Value, op token.Token) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, newRuntimeError(op, "operands must be two numbers or two strings.")
}

func bothNumbers(left, right Value, op token.Token) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "operands must be numbers.")
	}
	return l, r, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) (Value, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "only instances have properties.")
	}
	v, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (Value, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "only instances have fields.")
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := i.depths[e]
	superclass, _ := i.environment.Ancestor(distance).Get("super")
	class := superclass.(*Class)

	object, _ := i.environment.Ancestor(distance - 1).Get("this")
	instance := object.(*Instance)

	method := class.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(e.Method, "undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
