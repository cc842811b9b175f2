package tagsub

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Func is a callable collaborator behind the default '&' hook. Arguments
// arrive exactly as written between the parentheses, split on commas; commas
// inside an argument cannot be escaped.
type Func func(ctx context.Context, args []string) (string, error)

// FuncRegistry manages the named functions reachable through '&' spans.
type FuncRegistry struct {
	funcs map[string]Func
	mu    sync.RWMutex
}

// NewFuncRegistry creates an empty function registry.
func NewFuncRegistry() *FuncRegistry {
	return &FuncRegistry{
		funcs: make(map[string]Func),
	}
}

// Register adds a function to the registry.
// Returns an error if a function with the same name is already registered.
func (r *FuncRegistry) Register(name string, fn Func) error {
	if fn == nil {
		return NewConfigError(ErrMsgFuncNilFunc)
	}
	if name == "" {
		return NewConfigError(ErrMsgFuncNoName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return NewFuncExistsError(name)
	}
	r.funcs[name] = fn
	return nil
}

// MustRegister adds a function and panics on error.
func (r *FuncRegistry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Has checks if a function is registered.
func (r *FuncRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.funcs[name]
	return ok
}

// Names returns all registered function names in sorted order.
func (r *FuncRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered functions.
func (r *FuncRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.funcs)
}

// Call invokes a function by name with the given arguments. An unregistered
// name or a failure from the function itself is returned as an error, which
// aborts an in-flight interpretation.
func (r *FuncRegistry) Call(ctx context.Context, name string, args []string) (string, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()

	if !ok {
		return "", NewUnknownFuncError(name)
	}

	result, err := fn(ctx, args)
	if err != nil {
		return "", NewFuncError(name, err)
	}
	return result, nil
}

// CallPayload parses a '&' span payload of the form name(arg1,arg2,...) and
// invokes the named function. The argument list is split on commas with no
// escaping; name() passes no arguments.
func (r *FuncRegistry) CallPayload(ctx context.Context, payload string) (string, error) {
	open := strings.Index(payload, "(")
	if open <= 0 || !strings.HasSuffix(payload, ")") {
		return "", NewFuncSyntaxError(payload)
	}

	name := payload[:open]
	argText := payload[open+1 : len(payload)-1]

	var args []string
	if argText != "" {
		args = strings.Split(argText, ",")
	}
	return r.Call(ctx, name, args)
}
