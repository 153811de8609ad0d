// FILE: lixenwraith/envload/internal/host/actions.go
package host

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/lixenwraith/envload"
)

// Environment variables naming the runner's command files
const (
	OutputFileEnv = "GITHUB_OUTPUT"
	EnvFileEnv    = "GITHUB_ENV"
)

const delimiterPrefix = "ghadelimiter_"

var _ envload.Host = (*Actions)(nil)

// Actions emits results through GitHub Actions workflow commands and
// command files.
type Actions struct {
	out    io.Writer
	fs     afero.Fs
	getenv func(string) string
	setenv func(key, value string) error
}

// ActionsOption customizes an Actions host
type ActionsOption func(*Actions)

// WithFs sets the filesystem used for command files
func WithFs(fs afero.Fs) ActionsOption {
	return func(a *Actions) { a.fs = fs }
}

// WithGetenv replaces os.Getenv
func WithGetenv(fn func(string) string) ActionsOption {
	return func(a *Actions) { a.getenv = fn }
}

// WithSetenv replaces os.Setenv for exported variables
func WithSetenv(fn func(key, value string) error) ActionsOption {
	return func(a *Actions) { a.setenv = fn }
}

// NewActions creates a host writing workflow commands to out
func NewActions(out io.Writer, opts ...ActionsOption) *Actions {
	a := &Actions{
		out:    out,
		fs:     afero.NewOsFs(),
		getenv: os.Getenv,
		setenv: os.Setenv,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mask registers a secret. Empty values are skipped.
func (a *Actions) Mask(value string) error {
	if value == "" {
		return nil
	}
	return a.command("add-mask", "", value)
}

// Emit sets a step output
func (a *Actions) Emit(key, value string) error {
	if path := a.getenv(OutputFileEnv); path != "" {
		return a.appendFileCommand(path, key, value)
	}
	return a.command("set-output", "name="+escapeProperty(key), value)
}

// ExportGlobal exports a variable to later steps and to this process
func (a *Actions) ExportGlobal(key, value string) error {
	if err := a.setenv(key, value); err != nil {
		return fmt.Errorf("failed to set %s in process environment: %w", key, err)
	}
	if path := a.getenv(EnvFileEnv); path != "" {
		return a.appendFileCommand(path, key, value)
	}
	return a.command("set-env", "name="+escapeProperty(key), value)
}

// EmitCombined sets the combined step output
func (a *Actions) EmitCombined(text string) error {
	return a.Emit(envload.CombinedOutput, text)
}

// Warn writes a warning annotation
func (a *Actions) Warn(message string) {
	_ = a.command("warning", "", message)
}

// Fail writes an error annotation; the caller exits non-zero
func (a *Actions) Fail(message string) {
	_ = a.command("error", "", message)
}

// command writes "::name props::data"
func (a *Actions) command(name, props, data string) error {
	cmd := "::" + name
	if props != "" {
		cmd += " " + props
	}
	_, err := fmt.Fprintf(a.out, "%s::%s\n", cmd, escapeData(data))
	return err
}

// appendFileCommand appends a heredoc-style record to a runner command file
func (a *Actions) appendFileCommand(path, key, value string) error {
	delimiter := delimiterPrefix + uuid.NewString()
	if strings.Contains(key, delimiter) {
		return fmt.Errorf("unexpected input: name should not contain the delimiter %q", delimiter)
	}
	if strings.Contains(value, delimiter) {
		return fmt.Errorf("unexpected input: value should not contain the delimiter %q", delimiter)
	}

	f, err := a.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open command file '%s': %w", path, err)
	}
	defer f.Close()

	record := fmt.Sprintf("%s<<%s\n%s\n%s\n", key, delimiter, value, delimiter)
	if _, err := f.WriteString(record); err != nil {
		return fmt.Errorf("failed to write command file '%s': %w", path, err)
	}
	return nil
}

// escapeData escapes workflow command data
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

// escapeProperty escapes workflow command property values
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}
