package interpreter

import "fmt"

// Instance is a LoxInstance: {class, fields}. Fields are mutable
// throughout the instance's lifetime; the class reference and its
// method table are not.
type Instance struct {
	Class  *Class
	fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: make(map[string]Value)}
}

// Get looks up a property: fields shadow methods, and methods are
// bound to the instance on lookup.
func (in *Instance) Get(name string) (Value, error) {
	if v, ok := in.fields[name]; ok {
		return v, nil
	}
	if method := in.Class.FindMethod(name); method != nil {
		return method.Bind(in), nil
	}
	return nil, fmt.Errorf("undefined property '%s'.", name)
}

func (in *Instance) Set(name string, value Value) {
	in.fields[name] = value
}
