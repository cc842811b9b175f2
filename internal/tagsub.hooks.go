package internal

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// HookFunc resolves one span payload to its replacement text. A returned
// error aborts the whole interpretation.
type HookFunc func(ctx context.Context, payload string) (string, error)

// Registry maps tag characters to hooks. Registration is last-writer-wins:
// re-registering a tag replaces the previous hook.
// It is thread-safe for concurrent read/write access, but mutating it while
// an interpretation is in flight must be serialized by the caller.
type Registry struct {
	hooks  map[rune]HookFunc
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewRegistry creates a new hook registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		hooks:  make(map[rune]HookFunc),
		logger: logger,
	}
}

// Register binds hook to tag, replacing any existing binding. The tag must be
// a single non-word character (not a letter, digit or underscore) and must
// not be whitespace.
func (r *Registry) Register(tag rune, hook HookFunc) error {
	if hook == nil {
		return NewRegistryError(ErrMsgNilHook, tag)
	}
	if !IsTagRune(tag) {
		return NewRegistryError(ErrMsgInvalidTagRune, tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hooks[tag]; exists {
		r.logger.Debug(LogMsgHookReplaced, zap.String(LogFieldTag, string(tag)))
	}
	r.hooks[tag] = hook
	r.logger.Debug(LogMsgHookRegistered, zap.String(LogFieldTag, string(tag)))
	return nil
}

// MustRegister binds a hook and panics if registration fails.
// Use this for built-in hooks that must always be available.
func (r *Registry) MustRegister(tag rune, hook HookFunc) {
	if err := r.Register(tag, hook); err != nil {
		panic(err)
	}
}

// Lookup retrieves the hook for a tag character.
func (r *Registry) Lookup(tag rune) (HookFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hook, exists := r.hooks[tag]
	return hook, exists
}

// Has checks if a hook is registered for the given tag character.
func (r *Registry) Has(tag rune) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.hooks[tag]
	return exists
}

// Tags returns all registered tag characters in sorted order.
func (r *Registry) Tags() []rune {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]rune, 0, len(r.hooks))
	for tag := range r.hooks {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Count returns the number of registered hooks.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.hooks)
}

// IsTagRune reports whether c may serve as a tag character. Word characters
// (ASCII letters, digits, underscore) and whitespace are excluded, matching
// the span pattern.
func IsTagRune(c rune) bool {
	switch {
	case c == '_',
		c >= '0' && c <= '9',
		c >= 'a' && c <= 'z',
		c >= 'A' && c <= 'Z':
		return false
	case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
		return false
	}
	return true
}

// RegistryError represents a hook registration error.
type RegistryError struct {
	Message string
	Tag     rune
}

// NewRegistryError creates a new registry error.
func NewRegistryError(message string, tag rune) *RegistryError {
	return &RegistryError{
		Message: message,
		Tag:     tag,
	}
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf(ErrFmtTagMessage, e.Message, string(e.Tag))
	}
	return e.Message
}

// NoHookError reports a span whose tag character has no registered hook.
// It is fatal: interpretation aborts at the failure point.
type NoHookError struct {
	Tag rune
}

// Error implements the error interface.
func (e *NoHookError) Error() string {
	return fmt.Sprintf(ErrFmtNoHook, string(e.Tag))
}
