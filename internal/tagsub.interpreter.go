package internal

import (
	"context"
	"io"
	"regexp"

	"go.uber.org/zap"
)

// Interpreter drives the scan/resolve loop for one delimiter pair and hook
// registry. It owns no mutable state of its own; each Run call works on a
// private copy of the input, so the same Interpreter can serve many templates
// sequentially.
type Interpreter struct {
	left   string
	right  string
	span   *regexp.Regexp
	hooks  *Registry
	logger *zap.Logger
}

// NewInterpreter creates an interpreter for the given delimiter pair.
func NewInterpreter(left, right string, hooks *Registry, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{
		left:   left,
		right:  right,
		span:   CompileSpanPattern(left, right),
		hooks:  hooks,
		logger: logger,
	}
}

// Run interprets text and writes finished plain-text segments to w the moment
// they are final. Resolved span output is never written directly: it is
// spliced back into the working buffer and rescanned, so nested spans resolve
// innermost-first and hook output may itself introduce new spans.
//
// Collecting mode is this same loop with a strings.Builder as w; both modes
// produce byte-identical output.
func (it *Interpreter) Run(ctx context.Context, text string, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	it.logger.Debug(LogMsgInterpretStart, zap.Int(LogFieldSourceLen, len(text)))

	buf := text
	for {
		l := IndexUnescaped(buf, it.left)
		if l < 0 {
			// No structural left delimiter remains: the whole buffer is
			// final plain text.
			if err := it.emit(w, Unescape(buf, it.left, it.right)); err != nil {
				return err
			}
			it.logger.Debug(LogMsgInterpretEnd)
			return nil
		}
		if l > 0 {
			// The prefix before the span is final; normalize and flush it.
			if err := it.emit(w, Unescape(buf[:l], it.left, it.right)); err != nil {
				return err
			}
			buf = buf[l:]
			continue
		}

		r := IndexUnescaped(buf, it.right)
		if r < 0 {
			// A span opened but never closes. Recoverable: the remainder
			// goes out verbatim, uninterpreted.
			it.logger.Warn(LogMsgTruncatedBuffer,
				zap.String(LogFieldRemainder, truncateForLog(buf)))
			return it.emit(w, buf)
		}

		// The innermost unresolved span starts at the nearest structural
		// left delimiter before r, which may differ from position 0 when
		// nested spans opened ahead of it.
		start := LastIndexUnescaped(buf[:r], it.left)
		if start < 0 {
			start = 0
		}
		end := r + len(it.right)

		replacement, err := it.resolveSpan(ctx, buf[start:end])
		if err != nil {
			return err
		}
		buf = buf[:start] + replacement + buf[end:]
	}
}

// resolveSpan dispatches one complete span through the hook registry and
// returns its replacement text.
func (it *Interpreter) resolveSpan(ctx context.Context, span string) (string, error) {
	tag, payload, ok := ParseSpan(it.span, span)
	if !ok {
		// Malformed spans collapse to the empty string and interpretation
		// continues.
		it.logger.Warn(LogMsgMalformedSpan,
			zap.String(LogFieldSpan, truncateForLog(span)))
		return "", nil
	}

	hook, found := it.hooks.Lookup(tag)
	if !found {
		return "", &NoHookError{Tag: tag}
	}

	it.logger.Debug(LogMsgHookInvoked, zap.String(LogFieldTag, string(tag)))
	replacement, err := hook(ctx, payload)
	if err != nil {
		// Hook failures abort interpretation and pass through unmodified so
		// callers can match on their own error types.
		return "", err
	}
	return replacement, nil
}

// emit writes one finalized plain-text segment to the sink.
func (it *Interpreter) emit(w io.Writer, segment string) error {
	if segment == "" {
		return nil
	}
	_, err := io.WriteString(w, segment)
	if err == nil {
		it.logger.Debug(LogMsgSegmentEmitted, zap.Int(LogFieldSegment, len(segment)))
	}
	return err
}

// Delimiters returns the delimiter pair this interpreter scans with.
func (it *Interpreter) Delimiters() (left, right string) {
	return it.left, it.right
}
