package internal

import (
	"regexp"
	"unicode/utf8"
)

// CompileSpanPattern builds the matcher for one fully-delimited span:
// left delimiter, optional whitespace, exactly one non-word tag character,
// shortest-match payload, optional trailing whitespace, right delimiter,
// nothing before or after. Delimiters are matched verbatim.
func CompileSpanPattern(left, right string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?s)^` + regexp.QuoteMeta(left) +
			`\s*([^\w\s])\s*(.*?)\s*` +
			regexp.QuoteMeta(right) + `$`,
	)
}

// ParseSpan splits the full text of one span into its tag character and
// trimmed payload. ok is false when the text does not match the span shape;
// the engine then treats the span as malformed.
//
// The payload is handed over verbatim apart from the whitespace trimming:
// escape markers inside it are NOT decoded, so a hook can treat them
// specially itself.
func ParseSpan(pattern *regexp.Regexp, span string) (tag rune, payload string, ok bool) {
	m := pattern.FindStringSubmatch(span)
	if m == nil {
		return 0, "", false
	}
	tag, _ = utf8.DecodeRuneInString(m[1])
	return tag, m[2], true
}
