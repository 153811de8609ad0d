// FILE: lixenwraith/envload/errors.go
package envload

import "errors"

var (
	// ErrSourceNotFound is returned by a Reader when the locator does not exist.
	// It is recoverable: the source is skipped with a warning.
	ErrSourceNotFound = errors.New("source not found")

	// ErrInvalidFilter indicates the filter pattern failed to compile
	ErrInvalidFilter = errors.New("invalid filter pattern")

	// ErrNoFiles indicates no source locators were configured
	ErrNoFiles = errors.New("input required and not supplied: files")

	// ErrHost wraps failures reported by the host while emitting results
	ErrHost = errors.New("host emission failed")

	// ErrStopped is returned when the run context ends between sources
	ErrStopped = errors.New("run stopped")
)

// IsConfigurationError reports whether err was caused by invalid settings,
// as opposed to a failure while processing sources.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidFilter) || errors.Is(err, ErrNoFiles)
}
