// FILE: lixenwraith/envload/runner.go
package envload

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// CombinedOutput is the result name under which hosts store the combined blob
const CombinedOutput = "combined"

// SkippedSource records a source that contributed nothing because it could not be read
type SkippedSource struct {
	Index   int
	Locator string
	Err     error
}

// Result is the outcome of a completed run
type Result struct {
	Table    *Table
	Combined string
	Sources  []SourceResult
	Skipped  []SkippedSource
}

// Runner processes an ordered list of sources into a merged table and drives
// the host side effects. Build one with Builder.
type Runner struct {
	files  []string
	filter *Filter
	export bool
	mask   bool
	reader Reader
	host   Host
	log    *logrus.Entry
}

// Run processes every source in order. The context is checked between
// sources; once it is done the run stops with ErrStopped and nothing further
// is emitted. Unreadable sources are warned about and skipped.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	table := NewTable()
	result := &Result{Table: table}

	for i, locator := range r.files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w before source %q: %w", ErrStopped, locator, err)
		}

		src, err := LoadSource(r.reader, i, locator)
		if err != nil {
			r.host.Warn(r.readWarning(locator, err))
			result.Skipped = append(result.Skipped, SkippedSource{Index: i, Locator: locator, Err: err})
			continue
		}

		entry := r.log.WithField("source", locator)
		entry.Infof("Processing: %s", locator)

		processed := ProcessSource(src, r.filter)
		for _, diag := range processed.Diagnostics {
			if diag.Reason == SkipEmpty {
				continue
			}
			entry.WithFields(logrus.Fields{
				"line":   diag.Line,
				"reason": diag.Reason,
			}).Debug("line skipped")
		}

		for _, pair := range processed.Pairs {
			if err := r.apply(pair); err != nil {
				return nil, err
			}
		}
		MergeInto(table, processed)
		result.Sources = append(result.Sources, processed)
	}

	result.Combined = table.Combined()
	if err := r.host.EmitCombined(result.Combined); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHost, CombinedOutput, err)
	}

	r.log.WithField("variables", table.Len()).Info("Environment variables loaded successfully.")
	return result, nil
}

// apply performs the per-pair side effects in order: mask, emit, export.
// The table is updated once the whole source has been applied.
func (r *Runner) apply(pair Pair) error {
	if r.mask {
		if err := r.host.Mask(pair.Value); err != nil {
			r.log.WithError(err).WithField("key", pair.Key).Warn("failed to mask value")
		}
	}

	if err := r.host.Emit(pair.Key, pair.Value); err != nil {
		return fmt.Errorf("%w: output %s: %w", ErrHost, pair.Key, err)
	}

	if r.export {
		if err := r.host.ExportGlobal(pair.Key, pair.Value); err != nil {
			return fmt.Errorf("%w: export %s: %w", ErrHost, pair.Key, err)
		}
	}
	return nil
}

// readWarning formats the diagnostic for an unreadable source
func (r *Runner) readWarning(locator string, err error) string {
	path := locator
	if resolver, ok := r.reader.(Resolver); ok {
		path = resolver.Resolve(locator)
	}
	if errors.Is(err, ErrSourceNotFound) {
		return fmt.Sprintf("File not found: %s", path)
	}
	return fmt.Sprintf("Unable to read %s: %v", path, err)
}
