// FILE: lixenwraith/envload/source.go
package envload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Pair is a decoded key/value taken from one line of a source
type Pair struct {
	Key   string
	Value string
	Line  int // 1-based line number within the source
}

// Source is one input blob, identified by its position in the configured list
type Source struct {
	Index   int
	Locator string
	Content string
}

// LineDiagnostic records why a line was skipped
type LineDiagnostic struct {
	Line   int
	Reason SkipReason
	Key    string // set for SkipFiltered
}

// SourceResult is the ordered output of processing one source
type SourceResult struct {
	Source      Source
	Pairs       []Pair
	Diagnostics []LineDiagnostic
}

// Reader fetches the text of a source.
// A missing source must be reported with an error wrapping ErrSourceNotFound.
type Reader interface {
	Read(locator string) (string, error)
}

// FSReader reads sources from an afero filesystem, resolving relative
// locators against BaseDir.
type FSReader struct {
	Fs      afero.Fs
	BaseDir string
}

// NewFSReader creates a reader over the OS filesystem rooted at baseDir.
// An empty baseDir resolves against the current working directory.
func NewFSReader(baseDir string) *FSReader {
	return &FSReader{Fs: afero.NewOsFs(), BaseDir: baseDir}
}

// Resolve returns the absolute form of a locator
func (r *FSReader) Resolve(locator string) string {
	if filepath.IsAbs(locator) {
		return filepath.Clean(locator)
	}
	base := r.BaseDir
	if base == "" {
		if cwd, err := os.Getwd(); err == nil {
			base = cwd
		}
	}
	return filepath.Join(base, locator)
}

// Read implements Reader
func (r *FSReader) Read(locator string) (string, error) {
	path := r.Resolve(locator)
	fs := r.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	info, err := fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", fmt.Errorf("failed to stat source '%s': %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source '%s' is a directory", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read source '%s': %w", path, err)
	}
	return string(data), nil
}

// LoadSource reads a source through reader. Errors are recoverable: callers
// warn and continue with the next source.
func LoadSource(reader Reader, index int, locator string) (Source, error) {
	content, err := reader.Read(locator)
	if err != nil {
		return Source{Index: index, Locator: locator}, err
	}
	return Source{Index: index, Locator: locator, Content: content}, nil
}

// ProcessSource tokenizes, decodes and filters every line of src in order.
// It has no side effects; masking and emission are left to the caller.
func ProcessSource(src Source, filter *Filter) SourceResult {
	result := SourceResult{Source: src}

	for i, line := range splitLines(src.Content) {
		lineNo := i + 1

		key, raw, reason := tokenizeLine(line)
		if reason != "" {
			result.Diagnostics = append(result.Diagnostics, LineDiagnostic{Line: lineNo, Reason: reason})
			continue
		}

		value := DecodeValue(raw)

		if !filter.Match(key) {
			result.Diagnostics = append(result.Diagnostics, LineDiagnostic{Line: lineNo, Reason: SkipFiltered, Key: key})
			continue
		}

		result.Pairs = append(result.Pairs, Pair{Key: key, Value: value, Line: lineNo})
	}

	return result
}

// splitLines splits on "\n", dropping a "\r" immediately before it
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
