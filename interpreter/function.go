package interpreter

import "github.com/midbel/lox/ast"

// Callable is implemented by every value that can appear as the
// callee of a Call expression: Function and Class.
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []Value) (Value, error)
}

// Function is a LoxFunction: a function declaration paired with the
// environment captured at its declaration. Immutable after Bind,
// which returns a fresh instance with a fresh environment rather than
// mutating the receiver.
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) name() string {
	return f.declaration.Name.Lexeme
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Bind returns a fresh Function whose closure extends f's closure
// with "this" bound to instance, used for method lookup.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) Call(i *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for idx, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(f.declaration.Body, env)
	if ret, ok := asReturn(err); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
