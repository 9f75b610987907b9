// Package value implements the boxed Value type exchanged with the native
// runtime.
//
// A Value is a closed tagged union over the types the boundary supports:
// integers, floats, strings, opaque handles, device identifiers, function
// handles, and the absent ("nil") variant used as the void result. Values
// are immutable once constructed; the variant tag never changes. Each typed
// accessor validates the tag and fails with a *TypeMismatchError rather
// than coercing.
package value

import (
	"fmt"
	"math"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	// Nil is the absent/void variant. The zero Value has this kind.
	Nil Kind = iota
	// Int holds an int64.
	Int
	// Float holds a float64.
	Float
	// Str holds a string.
	Str
	// Handle holds an opaque native-side identifier.
	Handle
	// Device holds a device identifier as its (type, index) encoding pair.
	Device
	// Func holds a resolved function handle, so callables can receive and
	// return functions across the boundary.
	Func
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case Nil:
		return "nil"
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	case Handle:
		return "handle"
	case Device:
		return "device"
	case Func:
		return "func"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// TypeMismatchError reports a typed accessor applied to the wrong variant.
type TypeMismatchError struct {
	Got  Kind // variant actually stored
	Want Kind // variant the accessor expected
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value: cannot read %s as %s", e.Got, e.Want)
}

// Value is one datum crossing the runtime boundary.
//
// The zero Value is the Nil variant. Values are plain data: copying one is
// cheap and never shares mutable state. Floats are stored as their IEEE-754
// bit pattern so the scalar variants share the same word.
type Value struct {
	kind Kind
	num  uint64 // Int, Float (bits), Handle, Func, Device (type)
	aux  uint64 // Device (index)
	str  string
}

// NewInt boxes an integer.
func NewInt(v int64) Value {
	return Value{kind: Int, num: uint64(v)}
}

// NewFloat boxes a float.
func NewFloat(v float64) Value {
	return Value{kind: Float, num: math.Float64bits(v)}
}

// NewStr boxes a string.
func NewStr(v string) Value {
	return Value{kind: Str, str: v}
}

// NewHandle boxes an opaque native identifier.
func NewHandle(v uint64) Value {
	return Value{kind: Handle, num: v}
}

// NewDevice boxes a device identifier as the native (type, index) encoding.
func NewDevice(deviceType, id int64) Value {
	return Value{kind: Device, num: uint64(deviceType), aux: uint64(id)}
}

// NewFunc boxes a resolved function handle.
func NewFunc(h uint64) Value {
	return Value{kind: Func, num: h}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil reports whether v is the absent variant.
func (v Value) IsNil() bool {
	return v.kind == Nil
}

// AsInt returns the boxed integer, or a *TypeMismatchError if v is not Int.
func (v Value) AsInt() (int64, error) {
	if v.kind != Int {
		return 0, &TypeMismatchError{Got: v.kind, Want: Int}
	}
	return int64(v.num), nil
}

// AsFloat returns the boxed float, or a *TypeMismatchError if v is not Float.
func (v Value) AsFloat() (float64, error) {
	if v.kind != Float {
		return 0, &TypeMismatchError{Got: v.kind, Want: Float}
	}
	return math.Float64frombits(v.num), nil
}

// AsStr returns the boxed string, or a *TypeMismatchError if v is not Str.
func (v Value) AsStr() (string, error) {
	if v.kind != Str {
		return "", &TypeMismatchError{Got: v.kind, Want: Str}
	}
	return v.str, nil
}

// AsHandle returns the boxed handle, or a *TypeMismatchError if v is not
// Handle.
func (v Value) AsHandle() (uint64, error) {
	if v.kind != Handle {
		return 0, &TypeMismatchError{Got: v.kind, Want: Handle}
	}
	return v.num, nil
}

// AsDevice returns the boxed (type, index) device pair, or a
// *TypeMismatchError if v is not Device.
func (v Value) AsDevice() (deviceType, id int64, err error) {
	if v.kind != Device {
		return 0, 0, &TypeMismatchError{Got: v.kind, Want: Device}
	}
	return int64(v.num), int64(v.aux), nil
}

// AsFunc returns the boxed function handle, or a *TypeMismatchError if v is
// not Func.
func (v Value) AsFunc() (uint64, error) {
	if v.kind != Func {
		return 0, &TypeMismatchError{Got: v.kind, Want: Func}
	}
	return v.num, nil
}

// String renders the value for diagnostics. It is not a serialization
// format.
func (v Value) String() string {
	switch v.kind {
	case Nil:
		return "nil"
	case Int:
		return fmt.Sprintf("%d", int64(v.num))
	case Float:
		return fmt.Sprintf("%g", math.Float64frombits(v.num))
	case Str:
		return fmt.Sprintf("%q", v.str)
	case Handle:
		return fmt.Sprintf("handle(0x%x)", v.num)
	case Device:
		return fmt.Sprintf("device(%d:%d)", int64(v.num), int64(v.aux))
	case Func:
		return fmt.Sprintf("func(0x%x)", v.num)
	default:
		return v.kind.String()
	}
}
