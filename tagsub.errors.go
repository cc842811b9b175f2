package tagsub

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Interpretation errors
	ErrMsgNoHook = "no hook registered for tag"

	// Function hook errors
	ErrMsgFuncSyntax  = "function payload must be name(args)"
	ErrMsgFuncUnknown = "function not registered"
	ErrMsgFuncFailed  = "function call failed"
	ErrMsgFuncExists  = "function already registered"
	ErrMsgFuncNilFunc = "function cannot be nil"
	ErrMsgFuncNoName  = "function name cannot be empty"

	// Source errors
	ErrMsgSourceNotFound       = "template not found"
	ErrMsgSourceUnreadable     = "template not readable"
	ErrMsgSourceClosed         = "source is closed"
	ErrMsgSourceOpenFailed     = "source connection failed"
	ErrMsgSourceMigrateFailed  = "source schema migration failed"
	ErrMsgSourceSaveFailed     = "template save failed"
	ErrMsgSourceDeleteFailed   = "template delete failed"
	ErrMsgInvalidTemplateName  = "invalid template name"
	ErrMsgReservedTemplateName = "template name is reserved"

	// Configuration errors
	ErrMsgEmptyDelimiter        = "delimiters cannot be empty"
	ErrMsgEmptyConnectionString = "connection string cannot be empty"
)

// Error code constants for categorization
const (
	ErrCodeHook   = "TAGSUB_HOOK"
	ErrCodeFunc   = "TAGSUB_FUNC"
	ErrCodeSource = "TAGSUB_SOURCE"
	ErrCodeConfig = "TAGSUB_CONFIG"
)

// NewNoHookError creates the fatal error for a span whose tag character has
// no registered hook.
func NewNoHookError(tag rune) error {
	return cuserr.NewNotFoundError(MetaKeyHook, ErrMsgNoHook).
		WithMetadata(MetaKeyTag, string(tag))
}

// NewFuncSyntaxError creates an error for a '&' payload that does not parse
// as name(args).
func NewFuncSyntaxError(payload string) error {
	return cuserr.NewValidationError(ErrCodeFunc, ErrMsgFuncSyntax).
		WithMetadata(MetaKeyPayload, payload)
}

// NewUnknownFuncError creates an error for a function name with no
// registration.
func NewUnknownFuncError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyFunction, ErrMsgFuncUnknown).
		WithMetadata(MetaKeyName, name)
}

// NewFuncError wraps a failure raised by a registered function.
func NewFuncError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeFunc, ErrMsgFuncFailed).
		WithMetadata(MetaKeyName, name)
}

// NewFuncExistsError creates a function registration collision error.
func NewFuncExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeFunc, ErrMsgFuncExists).
		WithMetadata(MetaKeyName, name)
}

// NewSourceNotFoundError creates an error for a template name no source
// directory or row holds.
func NewSourceNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplate, ErrMsgSourceNotFound).
		WithMetadata(MetaKeyName, name)
}

// NewSourceUnreadableError creates an error for a template that exists but
// cannot be read.
func NewSourceUnreadableError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSource, ErrMsgSourceUnreadable).
		WithMetadata(MetaKeyName, name)
}

// NewSourceClosedError creates an error for operations on a closed source.
func NewSourceClosedError() error {
	return cuserr.NewValidationError(ErrCodeSource, ErrMsgSourceClosed)
}

// NewSourceOpenError wraps a failure to open a source backend.
func NewSourceOpenError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSource, ErrMsgSourceOpenFailed)
}

// NewSourceMigrateError wraps a failure to prepare a source backend's schema.
func NewSourceMigrateError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSource, ErrMsgSourceMigrateFailed)
}

// NewSourceSaveError wraps a failure to persist a template.
func NewSourceSaveError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSource, ErrMsgSourceSaveFailed).
		WithMetadata(MetaKeyName, name)
}

// NewSourceDeleteError wraps a failure to delete a template.
func NewSourceDeleteError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSource, ErrMsgSourceDeleteFailed).
		WithMetadata(MetaKeyName, name)
}

// NewInvalidTemplateNameError creates an error for names that could escape a
// source's namespace.
func NewInvalidTemplateNameError(name string) error {
	return cuserr.NewValidationError(ErrCodeSource, ErrMsgInvalidTemplateName).
		WithMetadata(MetaKeyName, name)
}

// NewReservedTemplateNameError creates an error for attempts to store under
// the reserved empty-template name.
func NewReservedTemplateNameError(name string) error {
	return cuserr.NewValidationError(ErrCodeSource, ErrMsgReservedTemplateName).
		WithMetadata(MetaKeyName, name)
}

// NewConfigError creates a configuration validation error.
func NewConfigError(msg string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}
