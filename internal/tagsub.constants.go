package internal

// CharEscape is the escape marker. A delimiter literal immediately preceded
// by exactly one escape marker is literal text, not structure.
const CharEscape = '\\'

// Log message constants
const (
	LogMsgRegistryCreated  = "hook registry created"
	LogMsgHookRegistered   = "hook registered"
	LogMsgHookReplaced     = "hook replaced"
	LogMsgHookInvoked      = "hook invoked"
	LogMsgInterpretStart   = "starting interpretation"
	LogMsgInterpretEnd     = "interpretation complete"
	LogMsgMalformedSpan    = "malformed span replaced with empty string"
	LogMsgTruncatedBuffer  = "unterminated span - emitting remainder verbatim"
	LogMsgSegmentEmitted   = "plain segment emitted"
)

// Log field names
const (
	LogFieldTag       = "tag"
	LogFieldSpan      = "span"
	LogFieldRemainder = "remainder"
	LogFieldSourceLen = "source_length"
	LogFieldSegment   = "segment_length"
)

// Error message constants for the hook registry
const (
	ErrMsgNilHook        = "hook cannot be nil"
	ErrMsgInvalidTagRune = "tag must be a single non-word character"
)

// Error format string constants
const (
	ErrFmtTagMessage = "%s: %q"
	ErrFmtNoHook     = "no hook registered for tag %q"
)

// logValueMax caps the length of buffer excerpts attached to log entries.
const logValueMax = 64

// truncateForLog shortens s for inclusion in a log field.
func truncateForLog(s string) string {
	if len(s) <= logValueMax {
		return s
	}
	return s[:logValueMax] + "..."
}
