package value

import (
	"errors"
	"testing"
)

func TestZeroValueIsNil(t *testing.T) {
	var v Value
	if v.Kind() != Nil {
		t.Errorf("zero Value kind = %v, want %v", v.Kind(), Nil)
	}
	if !v.IsNil() {
		t.Error("zero Value IsNil() = false, want true")
	}
}

func TestRoundTrip(t *testing.T) {
	if got, err := NewInt(-42).AsInt(); err != nil || got != -42 {
		t.Errorf("AsInt() = (%d, %v), want (-42, nil)", got, err)
	}
	if got, err := NewFloat(3.25).AsFloat(); err != nil || got != 3.25 {
		t.Errorf("AsFloat() = (%g, %v), want (3.25, nil)", got, err)
	}
	if got, err := NewStr("hello").AsStr(); err != nil || got != "hello" {
		t.Errorf("AsStr() = (%q, %v), want (\"hello\", nil)", got, err)
	}
	if got, err := NewHandle(0xdeadbeef).AsHandle(); err != nil || got != 0xdeadbeef {
		t.Errorf("AsHandle() = (%#x, %v), want (0xdeadbeef, nil)", got, err)
	}
	if typ, id, err := NewDevice(50, 3).AsDevice(); err != nil || typ != 50 || id != 3 {
		t.Errorf("AsDevice() = (%d, %d, %v), want (50, 3, nil)", typ, id, err)
	}
	if got, err := NewFunc(0x7).AsFunc(); err != nil || got != 0x7 {
		t.Errorf("AsFunc() = (%#x, %v), want (0x7, nil)", got, err)
	}
}

func TestKinds(t *testing.T) {
	cases := []struct {
		v    Value
		want Kind
	}{
		{Value{}, Nil},
		{NewInt(1), Int},
		{NewFloat(1), Float},
		{NewStr("x"), Str},
		{NewHandle(1), Handle},
		{NewDevice(1, 0), Device},
		{NewFunc(1), Func},
	}
	for _, c := range cases {
		if c.v.Kind() != c.want {
			t.Errorf("Kind() = %v, want %v", c.v.Kind(), c.want)
		}
	}
}

func TestTypeMismatch(t *testing.T) {
	v := NewStr("not a number")

	_, err := v.AsInt()
	if err == nil {
		t.Fatal("AsInt() on Str succeeded, want TypeMismatchError")
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("AsInt() error = %v, want *TypeMismatchError", err)
	}
	if mismatch.Got != Str || mismatch.Want != Int {
		t.Errorf("mismatch = (got %v, want %v), expected (str, int)", mismatch.Got, mismatch.Want)
	}

	if _, err := v.AsFloat(); err == nil {
		t.Error("AsFloat() on Str succeeded, want error")
	}
	if _, err := v.AsHandle(); err == nil {
		t.Error("AsHandle() on Str succeeded, want error")
	}
	if _, err := NewInt(7).AsStr(); err == nil {
		t.Error("AsStr() on Int succeeded, want error")
	}
	if _, err := (Value{}).AsInt(); err == nil {
		t.Error("AsInt() on Nil succeeded, want error")
	}
	if _, _, err := v.AsDevice(); err == nil {
		t.Error("AsDevice() on Str succeeded, want error")
	}
	if _, err := v.AsFunc(); err == nil {
		t.Error("AsFunc() on Str succeeded, want error")
	}
	if _, err := NewDevice(1, 0).AsHandle(); err == nil {
		t.Error("AsHandle() on Device succeeded, want error")
	}
	if _, err := NewFunc(1).AsInt(); err == nil {
		t.Error("AsInt() on Func succeeded, want error")
	}
}

func TestNegativeFloatRoundTrip(t *testing.T) {
	// The bit-pattern storage must not disturb sign or precision.
	for _, f := range []float64{0, -0.0, -1.5, 1e300, -2.2250738585072014e-308} {
		got, err := NewFloat(f).AsFloat()
		if err != nil {
			t.Fatalf("AsFloat(%g): %v", f, err)
		}
		if got != f {
			t.Errorf("AsFloat() = %g, want %g", got, f)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Value{}, "nil"},
		{NewInt(-5), "-5"},
		{NewFloat(2.5), "2.5"},
		{NewStr("hi"), `"hi"`},
		{NewHandle(0xff), "handle(0xff)"},
		{NewDevice(50, 0), "device(50:0)"},
		{NewFunc(0x3), "func(0x3)"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
