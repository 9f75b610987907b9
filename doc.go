// Package gomlcrt provides a Go client bridge to the MLC native runtime.
//
// The native runtime exposes a flat namespace of named functions, populated
// when the native artifact is loaded into the process. This package lets Go
// code resolve a function by name, pack typed arguments for it, invoke it,
// and unpack its single boxed result. Devices are addressed by a stable
// (type, id) pair and carry no ownership of native resources.
//
// # Architecture
//
// The package is organized into several sub-packages:
//
//   - value: the boxed Value type that crosses the boundary
//   - runtime: function lookup, invocation, devices, and callback registration
//   - internal/registry: the low-level handle table backing the namespace
//
// # Usage
//
//	import (
//	    "github.com/mlcgo/go-mlcrt/runtime"
//	    "github.com/mlcgo/go-mlcrt/value"
//	)
//
//	rt := runtime.New()
//	fn, err := rt.GetFunction("add")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := fn.PushArg(value.NewInt(2)).PushArg(value.NewInt(3)).Invoke()
//
// Invocation is synchronous: Invoke does not return until the native call
// completes or fails. Lookups are safe for concurrent use; a single Function
// accumulating arguments is not.
//
// # Devices
//
// Device types follow the native runtime's own encoding (CPU = 1, CUDA = 4,
// OpenCL = 50). Unknown types are accepted as forward-compatible enumerants.
//
// # Stub namespace
//
// Environments without the native artifact (local builds, caller unit tests)
// can opt into a placeholder namespace via runtime.WithStubNamespace, where
// every lookup succeeds: registered names dispatch normally, and unknown
// names resolve to no-ops returning the absent Value. The production
// contract is the failing-lookup behavior; the stub is never the default.
package gomlcrt
