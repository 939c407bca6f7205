package attrtext

import "fmt"

// Kind identifies the type of an attribute value.
type Kind uint8

// Attribute value kinds. The set is closed: attribute values are one of
// these variants, never an arbitrary reflected type.
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindHandle
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Value is a tagged attribute value. The zero Value is the empty string.
type Value struct {
	kind   Kind
	str    string
	num    float64
	i      int64
	b      bool
	handle any
}

// StringValue creates a string-kinded value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue creates an int-kinded value.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatValue creates a float-kinded value.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, num: f}
}

// BoolValue creates a bool-kinded value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// HandleValue creates a value wrapping an opaque handle.
// Handles compare by interface equality; use pointer types.
func HandleValue(h any) Value {
	return Value{kind: KindHandle, handle: h}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string {
	return v.str
}

// Int returns the integer payload. Valid only for KindInt.
func (v Value) Int() int64 {
	return v.i
}

// Float returns the float payload. Valid only for KindFloat.
func (v Value) Float() float64 {
	return v.num
}

// Bool returns the bool payload. Valid only for KindBool.
func (v Value) Bool() bool {
	return v.b
}

// Handle returns the opaque handle payload. Valid only for KindHandle.
func (v Value) Handle() any {
	return v.handle
}

// Equal returns true if both values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindHandle:
		return v.handle == other.handle
	default:
		return false
	}
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindHandle:
		return fmt.Sprintf("handle(%T)", v.handle)
	default:
		return "unknown"
	}
}
