// Package runtime provides the public bridge surface to the MLC native
// runtime: function lookup and invocation, device identifiers, and
// registration of Go callbacks the native side can call back into.
//
// Example usage:
//
//	rt := runtime.New()
//	fn, err := rt.GetFunction("add")
//	if err != nil { ... }
//	res, err := fn.PushArg(value.NewInt(2)).PushArg(value.NewInt(3)).Invoke()
package runtime

import (
	"github.com/pkg/errors"

	"github.com/mlcgo/go-mlcrt/internal/registry"
	"github.com/mlcgo/go-mlcrt/value"
)

// NativeFunc is a callable registered into the native namespace. The loader
// that brings the native artifact into the process registers one per
// exported native function; arguments arrive in the caller's positional
// order and the returned Value is what the caller observes.
type NativeFunc func(args []value.Value) (value.Value, error)

// Runtime is the client-side view of one native runtime instance: a flat
// function namespace plus a default device.
//
// Lookup is read-only and safe for concurrent use. Registration normally
// happens once, at load time, before any lookups.
type Runtime struct {
	table *registry.Table
	dev   Device
	stub  bool
}

// Option configures the runtime.
type Option func(*Runtime)

// WithDefaultDevice sets the device returned by Runtime.Device. The default
// is OpenCL device 0, matching the native runtime's own default.
func WithDefaultDevice(d Device) Option {
	return func(r *Runtime) {
		r.dev = d
	}
}

// WithStubNamespace switches the runtime into the placeholder policy used
// when the native artifact is not available (local builds, unit tests of
// callers): GetFunction always succeeds. Registered names still dispatch
// for real; unknown names resolve to a no-op Function whose Invoke returns
// the absent Value.
//
// This is explicitly a test/placeholder mode. The production contract is
// the default one, where unknown names fail with *NotFoundError and native
// errors propagate.
func WithStubNamespace() Option {
	return func(r *Runtime) {
		r.stub = true
	}
}

// New creates a runtime with the given options. The namespace starts with
// the bridge's own builtin functions registered; the native loader adds the
// rest via Register before lookups begin.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		table: registry.NewTable(),
		dev:   OpenCL(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerBuiltins()
	return r
}

// Device returns the runtime's default device.
func (r *Runtime) Device() Device {
	return r.dev
}

// Register adds a native callable to the namespace. Names are flat and
// unique; re-registering an existing name is an error.
func (r *Runtime) Register(name string, fn NativeFunc) error {
	_, err := r.table.Register(name, registry.Func(fn))
	if err != nil {
		return errors.Wrapf(err, "register %q", name)
	}
	return nil
}

// GetFunction resolves a function name against the native namespace.
//
// An unknown name fails with *NotFoundError. Resolution is idempotent and
// has no side effects on the namespace; the returned Function may be cached
// and reused across invocations.
func (r *Runtime) GetFunction(name string) (*Function, error) {
	h, ok := r.table.Resolve(name)
	if !ok {
		if r.stub {
			// Placeholder namespace: every name resolves to a no-op.
			return &Function{name: name}, nil
		}
		return nil, &NotFoundError{Name: name}
	}
	return &Function{name: name, handle: h, table: r.table}, nil
}

// FuncFromValue reconstructs an invocable Function from a boxed function
// handle (see Function.Value). A non-Func variant fails with the value
// package's *TypeMismatchError; a handle with no callable behind it fails
// with *InvocationError.
func (r *Runtime) FuncFromValue(v value.Value) (*Function, error) {
	h, err := v.AsFunc()
	if err != nil {
		return nil, err
	}
	name, ok := r.table.Name(registry.Handle(h))
	if !ok {
		return nil, &InvocationError{Err: errors.Errorf("no callable behind boxed handle %#x", h)}
	}
	return &Function{name: name, handle: registry.Handle(h), table: r.table}, nil
}

// FuncNames returns the names currently registered in the namespace,
// sorted. Intended for diagnostics.
func (r *Runtime) FuncNames() []string {
	return r.table.Names()
}

// registerBuiltins seeds the namespace with the bridge's own functions,
// mirroring the native runtime registering its builtins at load time.
func (r *Runtime) registerBuiltins() {
	// mlcrt.echo returns its first argument, or the absent Value when
	// called without arguments.
	_ = r.Register("mlcrt.echo", func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.Value{}, nil
		}
		return args[0], nil
	})

	// mlcrt.func_exists reports (as Int 0/1) whether a name is registered.
	_ = r.Register("mlcrt.func_exists", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, Argf("mlcrt.func_exists", "want 1 argument, got %d", len(args))
		}
		name, err := args[0].AsStr()
		if err != nil {
			return value.Value{}, Argf("mlcrt.func_exists", "argument 0: %v", err)
		}
		if _, ok := r.table.Resolve(name); ok {
			return value.NewInt(1), nil
		}
		return value.NewInt(0), nil
	})
}
