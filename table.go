// FILE: lixenwraith/envload/table.go
package envload

import "strings"

// tableEntry holds the current value of a key and where it came from
type tableEntry struct {
	value  string
	origin string // locator of the source that supplied value
}

// Table is an insertion-ordered map of variables.
// Keys keep the position of their first insertion; later Sets only replace
// the value. Keys are never removed.
type Table struct {
	keys    []string
	entries map[string]tableEntry
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		entries: make(map[string]tableEntry),
	}
}

// Set stores value under key, overriding any previous value in place
func (t *Table) Set(key, value, origin string) {
	if _, exists := t.entries[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = tableEntry{value: value, origin: origin}
}

// Get returns the current value for key
func (t *Table) Get(key string) (string, bool) {
	entry, exists := t.entries[key]
	return entry.value, exists
}

// Origin returns the locator of the source that supplied the current value
func (t *Table) Origin(key string) (string, bool) {
	entry, exists := t.entries[key]
	return entry.origin, exists
}

// Len returns the number of keys
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the keys in first-seen order
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Each calls fn for every key in first-seen order with its current value
func (t *Table) Each(fn func(key, value string)) {
	for _, key := range t.keys {
		fn(key, t.entries[key].value)
	}
}

// Map returns an unordered copy of the table contents
func (t *Table) Map() map[string]string {
	out := make(map[string]string, len(t.keys))
	for key, entry := range t.entries {
		out[key] = entry.value
	}
	return out
}

// Combined serializes the table as "key=value" lines joined by "\n" with no
// trailing newline. It does not mutate the table.
func (t *Table) Combined() string {
	var b strings.Builder
	for i, key := range t.keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(t.entries[key].value)
	}
	return b.String()
}
