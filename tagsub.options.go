package tagsub

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	leftDelim  string
	rightDelim string
	values     map[string]string
	funcs      map[string]Func
	logger     *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		leftDelim:  DefaultLeftDelim,
		rightDelim: DefaultRightDelim,
		logger:     nil,
	}
}

// WithDelimiters sets the delimiter pair for span scanning. The literals are
// matched verbatim, not as patterns. Exactly one pair is active per engine;
// changing delimiters mid-interpretation is unsupported.
// Default: "[[" and "]]"
func WithDelimiters(left, right string) Option {
	return func(c *engineConfig) {
		if left != "" {
			c.leftDelim = left
		}
		if right != "" {
			c.rightDelim = right
		}
	}
}

// WithValues seeds the value store behind the default '$' hook.
func WithValues(values map[string]string) Option {
	return func(c *engineConfig) {
		if c.values == nil {
			c.values = make(map[string]string, len(values))
		}
		for k, v := range values {
			c.values[k] = v
		}
	}
}

// WithFuncs seeds the function registry behind the default '&' hook.
func WithFuncs(funcs map[string]Func) Option {
	return func(c *engineConfig) {
		if c.funcs == nil {
			c.funcs = make(map[string]Func, len(funcs))
		}
		for name, fn := range funcs {
			c.funcs[name] = fn
		}
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
