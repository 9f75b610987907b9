// Package registry implements the in-process handle table backing the
// native function namespace.
//
// The table maps flat string names to callables through small index handles.
// It is the layer the public runtime package consumes; callers never see a
// raw pointer, only a Handle. Registration happens at load time (and for
// callback conversion); lookups are read-only and safe for concurrent use.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mlcgo/go-mlcrt/value"
)

// Func is a callable stored in the namespace. Arguments arrive in the exact
// order the caller packed them; the single returned Value is what the caller
// observes.
type Func func(args []value.Value) (value.Value, error)

// Handle is an opaque reference to a registered callable.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Invalid is the reserved zero handle.
const Invalid Handle = 0

// Table is the name-to-callable namespace.
type Table struct {
	mu      sync.RWMutex
	byName  map[string]Handle
	entries []entry // entries[h-1] for handle h
}

type entry struct {
	name string
	fn   Func
}

// NewTable returns an empty namespace.
func NewTable() *Table {
	return &Table{byName: make(map[string]Handle)}
}

// Register adds a callable under name and returns its handle.
// Re-registering an existing name is an error; the namespace is flat and
// entries are never replaced.
func (t *Table) Register(name string, fn Func) (Handle, error) {
	if name == "" {
		return Invalid, fmt.Errorf("registry: empty function name")
	}
	if fn == nil {
		return Invalid, fmt.Errorf("registry: nil function for %q", name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byName[name]; ok {
		return Invalid, fmt.Errorf("registry: function %q already registered", name)
	}
	t.entries = append(t.entries, entry{name: name, fn: fn})
	h := Handle(len(t.entries))
	t.byName[name] = h
	return h, nil
}

// Resolve returns the handle for name. Resolution is idempotent: the same
// name always yields the same handle.
func (t *Table) Resolve(name string) (Handle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.byName[name]
	return h, ok
}

// Call invokes the callable behind h with args.
func (t *Table) Call(h Handle, args []value.Value) (value.Value, error) {
	t.mu.RLock()
	var fn Func
	if h != Invalid && int(h) <= len(t.entries) {
		fn = t.entries[h-1].fn
	}
	t.mu.RUnlock()

	if fn == nil {
		return value.Value{}, fmt.Errorf("registry: no callable behind handle %d", h)
	}
	// The call itself runs outside the lock: the target may be slow and may
	// re-enter the table (e.g. a callback resolving another function).
	return fn(args)
}

// Name returns the registered name behind h.
func (t *Table) Name(h Handle) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if h == Invalid || int(h) > len(t.entries) {
		return "", false
	}
	return t.entries[h-1].name, true
}

// Names returns all registered names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	t.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered callables.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
