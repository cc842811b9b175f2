package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "--template"
	FlagData     = "--data"
	FlagOutput   = "--output"
	FlagPath     = "--path"
)

// Flag names - short form
const (
	FlagTemplateShort = "-t"
	FlagDataShort     = "-d"
	FlagOutputShort   = "-o"
	FlagPathShort     = "-p"
)

// Flag default values
const (
	FlagDefaultTemplate = "-" // stdin
	FlagDefaultOutput   = "-" // stdout
)

// StdinTemplateName substitutes for {name} in output paths when the template
// comes from stdin.
const StdinTemplateName = "stdin"

// Output path placeholder tags (single braces, expanded with fasttemplate).
const (
	OutputTagStart = "{"
	OutputTagEnd   = "}"
	OutputTagName  = "name"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Version is the CLI version string.
const Version = "1.0.0"

// Output message constants
const (
	MsgVersionPrefix = "tagsub version "
	MsgErrorPrefix   = "error: "
	MsgUnknownCmd    = "unknown command: "
)

// Error message constants
const (
	ErrMsgMissingFlagValue = "missing value for flag"
	ErrMsgUnknownFlag      = "unknown flag"
)

// usageText is the full help output.
const usageText = `tagsub - embedded substitution language

Usage:
  tagsub render [options]    interpret a template
  tagsub version             print the version
  tagsub help                show this help

Render options:
  -t, --template FILE   template file, or - for stdin (default: -)
                        with -p, a template name looked up on the search path
  -d, --data FILE       YAML data file (values, delimiters)
  -o, --output PATH     output path, or - for stdout (default: -)
                        {name} expands to the template's base name
  -p, --path DIR        template search directory (repeatable)

Data file format:
  values:
    var: text
  delimiters:
    left: "[["
    right: "]]"
`
