// FILE: lixenwraith/envload/tokenize.go
package envload

import (
	"strings"
	"unicode"
)

// SkipReason explains why a line did not produce a Pair
type SkipReason string

const (
	// SkipEmpty is a blank line
	SkipEmpty SkipReason = "empty"
	// SkipComment is a full-line comment
	SkipComment SkipReason = "comment"
	// SkipMalformed is a line outside the KEY=VALUE grammar
	SkipMalformed SkipReason = "malformed"
	// SkipFiltered is a well-formed line whose key was rejected by the filter
	SkipFiltered SkipReason = "filtered"
)

// Tokenize splits a single line into a key and its undecoded value.
// The accepted grammar is: optional whitespace, a key of [A-Za-z0-9_.-]+,
// optional whitespace, '=', optional whitespace, then the rest of the line.
// The raw value is returned trimmed. ok is false for blank lines, comments and
// anything that does not fit the grammar.
func Tokenize(line string) (key, raw string, ok bool) {
	key, raw, reason := tokenizeLine(line)
	return key, raw, reason == ""
}

// tokenizeLine is Tokenize with the skip reason exposed for diagnostics
func tokenizeLine(line string) (key, raw string, reason SkipReason) {
	line = trimSpace(line)
	if line == "" {
		return "", "", SkipEmpty
	}
	if line[0] == '#' {
		return "", "", SkipComment
	}

	i := 0
	for i < len(line) && isKeyChar(line[i]) {
		i++
	}
	if i == 0 {
		return "", "", SkipMalformed
	}
	key = line[:i]

	rest := strings.TrimLeftFunc(line[i:], isSpace)
	if !strings.HasPrefix(rest, "=") {
		return "", "", SkipMalformed
	}
	rest = rest[1:]

	// Values are single-line; an embedded line terminator rejects the line
	if strings.ContainsAny(rest, "\r\n\u2028\u2029") {
		return "", "", SkipMalformed
	}

	return key, trimSpace(rest), ""
}

// isSpace reports whether r is whitespace, counting the byte order mark
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// trimSpace trims leading and trailing whitespace as defined by isSpace
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// isKeyChar checks if a byte is allowed in a key (A-Z, a-z, 0-9, '_', '.', '-')
func isKeyChar(c byte) bool {
	isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	isDigit := c >= '0' && c <= '9'
	return isLetter || isDigit || c == '_' || c == '.' || c == '-'
}
