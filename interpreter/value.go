package interpreter

import (
	"fmt"
	"strconv"
)

// Value is the tagged union every Lox value fits into: Nil, Bool,
// Number, String, Function, Class, Instance. Plain Go nil/bool/
// float64/string carry the primitive variants; operator dispatch
// lives in one place (evalBinary), so no wrapper type is needed to
// give them arithmetic behavior.
type Value any

// IsTruthy reports whether v counts as true in a condition: Nil and
// Bool(false) are false; everything else, including Number(0) and
// String(""), is true.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal reports whether a and b are equal: Nil equals only Nil;
// numbers/strings/bools compare by value; functions/classes/instances
// compare by identity (Go's == over interface values already does
// this for pointer-backed variants).
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aok := a.(float64)
	bn, bok := b.(float64)
	if aok && bok {
		return an == bn
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as == bs
	}
	ab, aok := a.(bool)
	bb, bok := b.(bool)
	if aok && bok {
		return ab == bb
	}
	return a == b
}

// Stringify renders v the way print writes it.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case *Function:
		return fmt.Sprintf("<fn %s>", val.name())
	case *Class:
		return val.Name
	case *Instance:
		return val.Class.Name + " instance"
	default:
		return fmt.Sprintf("%v", val)
	}
}
