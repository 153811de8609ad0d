// FILE: lixenwraith/envload/value.go
package envload

import "strings"

// DecodeValue resolves quoting and inline comments on a raw value.
//
// A value opening with ' or " ends at the next occurrence of the same quote;
// whatever follows the closing quote is discarded and '#' inside the quotes is
// kept. When no closing quote exists the raw value is returned unchanged,
// leading quote included. An unquoted value is cut at the first '#' and the
// remainder is right-trimmed.
func DecodeValue(raw string) string {
	raw = trimSpace(raw)
	if raw == "" {
		return ""
	}

	if quote := raw[0]; quote == '"' || quote == '\'' {
		if end := strings.IndexByte(raw[1:], quote); end >= 0 {
			return raw[1 : end+1]
		}
		// Unterminated quote falls back to the literal raw value
		return raw
	}

	if hash := strings.IndexByte(raw, '#'); hash >= 0 {
		return trimSpace(raw[:hash])
	}
	return raw
}
