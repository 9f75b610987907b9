package runtime

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mlcgo/go-mlcrt/internal/registry"
	"github.com/mlcgo/go-mlcrt/value"
)

// Function is a resolved handle to a native callable plus a pending argument
// sequence for the builder calling style.
//
// Two calling conventions are supported:
//
//	// builder style
//	res, err := fn.PushArg(a).PushArg(b).Invoke()
//
//	// direct style
//	res, err := fn.Invoke(a, b)
//
// They compose: builder-appended arguments form a positional prefix, with
// directly-passed arguments appended after. Invoke resets the pending
// sequence, so each call starts a fresh accumulation.
//
// A Function mid-accumulation must be confined to a single goroutine.
// Distinct Functions resolved for the same name are independent; invoking
// either yields the same native behavior.
type Function struct {
	name    string
	handle  registry.Handle
	table   *registry.Table // nil for stub-namespace functions
	pending []value.Value
}

// Name returns the name this Function was resolved (or registered) under.
func (f *Function) Name() string {
	return f.name
}

// Value boxes the resolved handle so the function can cross the boundary as
// an argument or result. Runtime.FuncFromValue turns it back into an
// invocable Function.
func (f *Function) Value() value.Value {
	return value.NewFunc(uint64(f.handle))
}

// PushArg appends one argument to the pending sequence and returns f for
// chaining. Append order equals the positional order the native callable
// observes.
func (f *Function) PushArg(v value.Value) *Function {
	f.pending = append(f.pending, v)
	return f
}

// Invoke executes the native call with the pending arguments followed by
// args, then clears the pending sequence.
//
// Invocation is synchronous: it does not return until the native call
// completes or fails, and the bridge applies no timeout. The bridge does
// not validate arity or argument types; a native-reported incompatibility
// surfaces as *ArgumentError, any other native failure as *InvocationError.
func (f *Function) Invoke(args ...value.Value) (value.Value, error) {
	all := f.pending
	f.pending = nil
	all = append(all, args...)

	if f.table == nil {
		// Stub namespace: the call is a no-op returning the absent Value.
		return value.Value{}, nil
	}

	res, err := f.table.Call(f.handle, all)
	if err != nil {
		// Native-reported argument complaints and already-classified
		// invocation failures (e.g. from a converted callback) pass
		// through as-is.
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			return value.Value{}, argErr
		}
		var invErr *InvocationError
		if errors.As(err, &invErr) {
			return value.Value{}, invErr
		}
		return value.Value{}, &InvocationError{Name: f.name, Err: err}
	}
	return res, nil
}

// Callback is a Go function exposed to the native side through ConvertFunc.
type Callback func(args ...value.Value) (value.Value, error)

// ConvertFunc wraps a Go callback as a native-callable Function.
//
// The callback is registered into the namespace under a generated unique
// name, so the native side can resolve and invoke it like any other
// function; the registry entry keeps the callback reachable for as long as
// the runtime lives. Calls are delivered synchronously and in order: the
// adapter performs no queueing or batching. A failure inside the callback
// (an error return or a panic) reaches the caller as *InvocationError; it
// never crashes the process and never turns into a silently-defaulted
// Value. ConvertFunc itself panics if the namespace refuses the generated
// registration, which only a broken table can cause.
func (r *Runtime) ConvertFunc(cb Callback) *Function {
	name := "__callback/" + uuid.NewString()

	wrapped := func(args []value.Value) (res value.Value, err error) {
		defer func() {
			if p := recover(); p != nil {
				res = value.Value{}
				err = &InvocationError{Name: name, Err: errors.Errorf("callback panic: %v", p)}
			}
		}()
		res, err = cb(args...)
		if err != nil {
			var invErr *InvocationError
			if !errors.As(err, &invErr) {
				err = &InvocationError{Name: name, Err: err}
			}
		}
		return res, err
	}

	h, regErr := r.table.Register(name, wrapped)
	if regErr != nil {
		// Generated names are unique, so a refusal here means the table
		// itself is broken. Fail loudly rather than hand back a Function
		// that can only error later.
		panic(errors.Wrapf(regErr, "convert func %q", name))
	}
	return &Function{name: name, handle: h, table: r.table}
}
