package runtime

import "fmt"

// NotFoundError reports a name absent from the native namespace.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("function %q not found in native namespace", e.Name)
}

// InvocationError reports a failed native call, carrying the native-reported
// diagnostic. Failures raised inside converted callbacks surface through it
// as well.
type InvocationError struct {
	Name string // function name as resolved, "" if unknown
	Err  error  // the native diagnostic
}

func (e *InvocationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invocation failed: %v", e.Err)
	}
	return fmt.Sprintf("invoke %q: %v", e.Name, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ArgumentError reports an arity or argument-type incompatibility detected
// by the native side. The bridge never pre-validates arguments; this error
// only ever originates from the callable itself.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: bad arguments: %s", e.Name, e.Reason)
}

// Argf builds an ArgumentError for a native callable to report an
// arity/type mismatch with.
func Argf(name, format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Name: name, Reason: fmt.Sprintf(format, args...)}
}
