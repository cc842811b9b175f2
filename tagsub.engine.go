package tagsub

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/itsatony/go-tagsub/internal"
	"go.uber.org/zap"
)

// HookFunc resolves a span payload to its replacement text. An error returned
// by a hook aborts the interpretation and reaches the caller unmodified.
type HookFunc func(ctx context.Context, payload string) (string, error)

// Engine is the main entry point for the tagsub substitution language.
// It manages hook registration, the default '$' and '&' collaborators, and
// drives interpretation in collecting or streaming mode.
type Engine struct {
	config   *engineConfig
	registry *internal.Registry
	interp   *internal.Interpreter
	values   *ValueStore
	funcs    *FuncRegistry
	logger   *zap.Logger
}

// New creates a new tagsub Engine with the given options. The '$' and '&'
// hooks are registered against the engine's own value store and function
// registry; both can be overwritten via RegisterHook.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.leftDelim == "" || config.rightDelim == "" {
		return nil, NewConfigError(ErrMsgEmptyDelimiter)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	values := NewValueStore()
	for k, v := range config.values {
		values.Set(k, v)
	}

	funcs := NewFuncRegistry()
	for name, fn := range config.funcs {
		if err := funcs.Register(name, fn); err != nil {
			return nil, err
		}
	}

	registry := internal.NewRegistry(logger)

	e := &Engine{
		config:   config,
		registry: registry,
		values:   values,
		funcs:    funcs,
		logger:   logger,
	}

	registry.MustRegister(TagValue, internal.HookFunc(e.resolveValue))
	registry.MustRegister(TagFunction, internal.HookFunc(e.resolveFunc))

	e.interp = internal.NewInterpreter(config.leftDelim, config.rightDelim, registry, logger)
	return e, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Interpret rewrites text in collecting mode and returns the full result.
// A fatal condition (unregistered tag, hook failure) aborts the call and no
// result is returned.
func (e *Engine) Interpret(ctx context.Context, text string) (string, error) {
	var sb strings.Builder
	if err := e.interp.Run(ctx, text, &sb); err != nil {
		return "", e.wrapFatal(err)
	}
	return sb.String(), nil
}

// InterpretTo rewrites text in streaming mode, writing each plain-text chunk
// to w the moment it is final. Output is byte-identical to Interpret for the
// same template and registry state. On a fatal condition the stream stops at
// the failure point; w keeps whatever was already written.
func (e *Engine) InterpretTo(ctx context.Context, w io.Writer, text string) error {
	if err := e.interp.Run(ctx, text, w); err != nil {
		return e.wrapFatal(err)
	}
	return nil
}

// RegisterHook binds fn to a tag character, replacing any existing hook for
// that tag (last writer wins). The tag must be a single non-word character.
func (e *Engine) RegisterHook(tag rune, fn HookFunc) error {
	return e.registry.Register(tag, internal.HookFunc(fn))
}

// MustRegisterHook binds a hook and panics if registration fails.
func (e *Engine) MustRegisterHook(tag rune, fn HookFunc) {
	if err := e.RegisterHook(tag, fn); err != nil {
		panic(err)
	}
}

// HasHook checks if a hook is registered for the given tag character.
func (e *Engine) HasHook(tag rune) bool {
	return e.registry.Has(tag)
}

// Hooks returns all registered tag characters in sorted order.
func (e *Engine) Hooks() []rune {
	return e.registry.Tags()
}

// Values returns the value store backing the default '$' hook.
func (e *Engine) Values() *ValueStore {
	return e.values
}

// Funcs returns the function registry backing the default '&' hook.
func (e *Engine) Funcs() *FuncRegistry {
	return e.funcs
}

// Delimiters returns the engine's delimiter pair.
func (e *Engine) Delimiters() (left, right string) {
	return e.config.leftDelim, e.config.rightDelim
}

// resolveValue implements the default '$' hook: the payload is a key into the
// engine's value store. A missing key resolves to the empty string.
func (e *Engine) resolveValue(_ context.Context, payload string) (string, error) {
	value, ok := e.values.Get(payload)
	if !ok {
		e.logger.Debug(LogMsgValueMissing, zap.String(LogFieldKey, payload))
		return "", nil
	}
	return value, nil
}

// resolveFunc implements the default '&' hook: the payload is parsed as
// name(arg1,arg2,...) and dispatched through the function registry.
func (e *Engine) resolveFunc(ctx context.Context, payload string) (string, error) {
	return e.funcs.CallPayload(ctx, payload)
}

// wrapFatal converts internal interpretation errors into the package's
// structured errors. Hook failures are already caller errors and pass through
// untouched.
func (e *Engine) wrapFatal(err error) error {
	var noHook *internal.NoHookError
	if errors.As(err, &noHook) {
		return NewNoHookError(noHook.Tag)
	}
	return err
}
