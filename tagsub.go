// Package tagsub implements a small embedded substitution language: text
// containing delimiter-marked spans is rewritten by dispatching each span's
// payload to a pluggable hook keyed by a single non-word tag character.
//
// A span uses [[ and ]] by default:
//
//	some [[$var]] and so on
//
// The character right after the left delimiter (here $) selects the hook; the
// rest of the span, trimmed of surrounding whitespace, is the payload handed
// to it. Two hooks are registered out of the box:
//
//	$  looks the payload up in the engine's value store
//	&  calls a named function, payload parsed as name(arg1,arg2,...)
//
// # Basic Usage
//
//	engine := tagsub.MustNew()
//	engine.Values().Set("var", "text")
//	result, err := engine.Interpret(ctx, "some [[$var]] and so on")
//	// result: "some text and so on"
//
// # Nesting
//
// Spans nest arbitrarily and resolve innermost-first; a hook's output is
// spliced back into the working buffer and rescanned, so hooks can construct
// identifiers dynamically:
//
//	engine.Values().Set("var", "text")
//	engine.Values().Set("nestedtext", "coconuts")
//	result, _ := engine.Interpret(ctx, "some [[ $nested[[$var]] ]] flambe")
//	// result: "some coconuts flambe"
//
// # Escaping
//
// A delimiter preceded by one backslash is literal text:
//
//	`a \[[ literal \]] pair`  ->  "a [[ literal ]] pair"
//
// Escape markers inside a span payload are not decoded; the hook receives
// them as-is.
//
// # Custom Hooks
//
// Register a hook for any non-word character:
//
//	engine.MustRegisterHook('%', func(ctx context.Context, payload string) (string, error) {
//	    return strings.ToUpper(payload), nil
//	})
//	result, _ := engine.Interpret(ctx, "[[%shout]]") // "SHOUT"
//
// Registration overwrites: the last hook registered for a tag wins.
//
// # Streaming
//
// InterpretTo writes each plain-text chunk to a sink the moment it is final,
// producing output byte-identical to Interpret:
//
//	err := engine.InterpretTo(ctx, os.Stdout, template)
//
// # Error Handling
//
// A span whose tag has no registered hook, or whose hook returns an error,
// aborts the interpretation. Malformed spans and unterminated spans are
// recoverable: they are logged and interpretation continues with a degraded
// but complete result.
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := tagsub.New(
//	    tagsub.WithDelimiters("<<", ">>"),
//	    tagsub.WithValues(map[string]string{"var": "text"}),
//	    tagsub.WithLogger(logger),
//	)
package tagsub
