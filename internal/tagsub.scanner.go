package internal

import "strings"

// IndexUnescaped returns the index of the first occurrence of delim in s that
// is structural, or -1 if there is none. An occurrence is structural unless it
// is immediately preceded by exactly one escape marker; an occurrence at index
// 0 is always structural.
func IndexUnescaped(s, delim string) int {
	if delim == "" {
		return -1
	}
	from := 0
	for {
		i := strings.Index(s[from:], delim)
		if i < 0 {
			return -1
		}
		i += from
		if !escapedAt(s, i) {
			return i
		}
		from = i + 1
	}
}

// LastIndexUnescaped returns the index of the last structural occurrence of
// delim in s, or -1. The engine uses this over a bounded prefix to find the
// nearest enclosing left delimiter before a known right delimiter.
func LastIndexUnescaped(s, delim string) int {
	if delim == "" {
		return -1
	}
	end := len(s)
	for {
		i := strings.LastIndex(s[:end], delim)
		if i < 0 {
			return -1
		}
		if !escapedAt(s, i) {
			return i
		}
		// Step back just far enough to keep overlapping earlier occurrences
		// visible.
		end = i + len(delim) - 1
	}
}

// escapedAt reports whether position i is preceded by exactly one escape
// marker. Two markers cancel out: `\\` is literal backslash text, and the
// delimiter after it stays structural.
func escapedAt(s string, i int) bool {
	if i == 0 || s[i-1] != CharEscape {
		return false
	}
	return !(i > 1 && s[i-2] == CharEscape)
}

// Unescape rewrites every escape-marker-plus-delimiter sequence in s to the
// bare delimiter. Only finalized plain text goes through here; span payloads
// keep their escape markers and hooks see them literally.
func Unescape(s, left, right string) string {
	if !strings.ContainsRune(s, CharEscape) {
		return s
	}
	s = strings.ReplaceAll(s, string(CharEscape)+left, left)
	return strings.ReplaceAll(s, string(CharEscape)+right, right)
}
