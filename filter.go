// FILE: lixenwraith/envload/filter.go
package envload

import (
	"fmt"
	"regexp"
)

// DefaultFilter accepts every key
const DefaultFilter = ".*"

// Filter decides which keys are kept. It matches anywhere in the key unless
// the pattern itself is anchored.
type Filter struct {
	pattern string
	re      *regexp.Regexp
}

// CompileFilter compiles a key filter. An empty pattern is treated as DefaultFilter.
func CompileFilter(pattern string) (*Filter, error) {
	if pattern == "" {
		pattern = DefaultFilter
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidFilter, pattern, err)
	}
	return &Filter{pattern: pattern, re: re}, nil
}

// Match reports whether key passes the filter
func (f *Filter) Match(key string) bool {
	if f == nil {
		return true
	}
	return f.re.MatchString(key)
}

// String returns the source pattern
func (f *Filter) String() string {
	if f == nil {
		return DefaultFilter
	}
	return f.pattern
}
