// FILE: lixenwraith/envload/internal/host/local.go
package host

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/envload"
)

const redacted = "***"

var _ envload.Host = (*Local)(nil)

// Local prints results for use outside a workflow runner.
// Masked values are redacted from everything it prints.
type Local struct {
	out     io.Writer
	log     *logrus.Entry
	secrets []string
	setenv  func(key, value string) error
}

// NewLocal creates a host printing to out and warning through log
func NewLocal(out io.Writer, log *logrus.Entry) *Local {
	return &Local{
		out:    out,
		log:    log,
		setenv: os.Setenv,
	}
}

// Mask remembers value so it is redacted from later output
func (l *Local) Mask(value string) error {
	if value != "" {
		l.secrets = append(l.secrets, value)
	}
	return nil
}

// Emit prints "key=value"
func (l *Local) Emit(key, value string) error {
	_, err := fmt.Fprintf(l.out, "%s=%s\n", key, l.redact(value))
	return err
}

// ExportGlobal sets the variable in the process environment
func (l *Local) ExportGlobal(key, value string) error {
	return l.setenv(key, value)
}

// EmitCombined prints the combined blob under a header
func (l *Local) EmitCombined(text string) error {
	_, err := fmt.Fprintf(l.out, "--- %s ---\n%s\n", envload.CombinedOutput, l.redact(text))
	return err
}

// Warn logs a warning
func (l *Local) Warn(message string) {
	l.log.Warn(message)
}

// Fail logs an error; the caller exits non-zero
func (l *Local) Fail(message string) {
	l.log.Error(message)
}

func (l *Local) redact(s string) string {
	for _, secret := range l.secrets {
		s = strings.ReplaceAll(s, secret, redacted)
	}
	return s
}
