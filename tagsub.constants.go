package tagsub

// Default delimiter literals. Each engine copies these into its own
// configuration at construction, so overriding one engine's delimiters never
// affects another.
const (
	DefaultLeftDelim  = "[["
	DefaultRightDelim = "]]"
)

// EscapeMarker precedes a delimiter literal to keep it out of structural
// scanning. Exactly one marker escapes; two markers are literal backslash
// text followed by a structural delimiter.
const EscapeMarker = `\`

// Default tag characters.
const (
	// TagValue selects the value-store lookup hook.
	TagValue = '$'
	// TagFunction selects the named-function call hook.
	TagFunction = '&'
)

// EmptyTemplateName is the reserved source name that always loads as an
// explicitly empty template, regardless of what the source holds.
const EmptyTemplateName = "_empty"

// Metadata keys attached to structured errors.
const (
	MetaKeyTag      = "tag"
	MetaKeyHook     = "hook"
	MetaKeyFunction = "function"
	MetaKeyTemplate = "template"
	MetaKeyPayload  = "payload"
	MetaKeyName     = "name"
)

// Log message constants
const (
	LogMsgValueMissing = "value store has no entry for payload"
)

// Log field names
const (
	LogFieldKey = "key"
)
