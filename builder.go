// FILE: lixenwraith/envload/builder.go
package envload

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ValidatorFunc checks settings before a Runner is built
type ValidatorFunc func(s Settings) error

// Builder provides a fluent interface for building a Runner
type Builder struct {
	settings   Settings
	reader     Reader
	host       Host
	log        *logrus.Entry
	validators []ValidatorFunc
}

// NewBuilder creates a new runner builder starting from DefaultSettings
func NewBuilder() *Builder {
	return &Builder{
		settings:   DefaultSettings(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithSettings replaces all settings
func (b *Builder) WithSettings(s Settings) *Builder {
	b.settings = s
	return b
}

// WithFiles sets the ordered source locators
func (b *Builder) WithFiles(files ...string) *Builder {
	b.settings.Files = files
	return b
}

// WithFilter sets the key filter pattern
func (b *Builder) WithFilter(pattern string) *Builder {
	b.settings.Filter = pattern
	return b
}

// WithExport enables exporting every variable to later steps
func (b *Builder) WithExport(export bool) *Builder {
	b.settings.Export = export
	return b
}

// WithMask enables masking every value
func (b *Builder) WithMask(mask bool) *Builder {
	b.settings.Mask = mask
	return b
}

// WithReader sets the source reader; defaults to an OS FSReader rooted at
// the configured working directory
func (b *Builder) WithReader(r Reader) *Builder {
	b.reader = r
	return b
}

// WithHost sets the host receiving results
func (b *Builder) WithHost(h Host) *Builder {
	b.host = h
	return b
}

// WithLogger sets the log entry used by the runner
func (b *Builder) WithLogger(entry *logrus.Entry) *Builder {
	b.log = entry
	return b
}

// WithValidator adds a validation function that runs before the runner is built
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build validates settings and creates the Runner.
// Configuration errors are returned before any source is touched.
func (b *Builder) Build() (*Runner, error) {
	if b.host == nil {
		return nil, errors.New("runner requires a host")
	}

	if err := b.settings.Validate(); err != nil {
		return nil, err
	}

	filter, err := CompileFilter(b.settings.Filter)
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(b.settings); err != nil {
			return nil, fmt.Errorf("settings validation failed: %w", err)
		}
	}

	reader := b.reader
	if reader == nil {
		reader = NewFSReader(b.settings.WorkingDir)
	}

	entry := b.log
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}

	files := make([]string, len(b.settings.Files))
	copy(files, b.settings.Files)

	return &Runner{
		files:  files,
		filter: filter,
		export: b.settings.Export,
		mask:   b.settings.Mask,
		reader: reader,
		host:   b.host,
		log:    entry,
	}, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Runner {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("runner build failed: %v", err))
	}
	return r
}
