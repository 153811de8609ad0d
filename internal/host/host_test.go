// FILE: lixenwraith/envload/internal/host/host_test.go
package host

import (
	"bytes"
	"errors"
	"os"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

var recordPattern = regexp.MustCompile(`^(\w+)<<(ghadelimiter_[0-9a-f-]{36})\n([\s\S]*)\n(ghadelimiter_[0-9a-f-]{36})\n$`)

// TestActions tests workflow command output
func TestActions(t *testing.T) {
	t.Run("MaskEscapes", func(t *testing.T) {
		var out bytes.Buffer
		a := NewActions(&out, WithGetenv(fakeEnv(nil)))

		require.NoError(t, a.Mask("p%ss\nword"))
		require.NoError(t, a.Mask(""))
		assert.Equal(t, "::add-mask::p%25ss%0Aword\n", out.String())
	})

	t.Run("EmitToOutputFile", func(t *testing.T) {
		var out bytes.Buffer
		fs := afero.NewMemMapFs()
		a := NewActions(&out, WithFs(fs), WithGetenv(fakeEnv(map[string]string{OutputFileEnv: "/runner/output"})))

		require.NoError(t, a.Emit("KEY", "multi\nline"))
		assert.Empty(t, out.String())

		data, err := afero.ReadFile(fs, "/runner/output")
		require.NoError(t, err)
		m := recordPattern.FindStringSubmatch(string(data))
		require.NotNil(t, m, "record: %q", data)
		assert.Equal(t, "KEY", m[1])
		assert.Equal(t, "multi\nline", m[3])
		assert.Equal(t, m[2], m[4])
	})

	t.Run("EmitAppends", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		a := NewActions(&bytes.Buffer{}, WithFs(fs), WithGetenv(fakeEnv(map[string]string{OutputFileEnv: "/out"})))

		require.NoError(t, a.Emit("A", "1"))
		require.NoError(t, a.EmitCombined("A=1"))

		data, err := afero.ReadFile(fs, "/out")
		require.NoError(t, err)
		assert.Contains(t, string(data), "A<<ghadelimiter_")
		assert.Contains(t, string(data), "combined<<ghadelimiter_")
	})

	t.Run("LegacyOutputCommand", func(t *testing.T) {
		var out bytes.Buffer
		a := NewActions(&out, WithGetenv(fakeEnv(nil)))

		require.NoError(t, a.Emit("a:b", "x\ny"))
		assert.Equal(t, "::set-output name=a%3Ab::x%0Ay\n", out.String())
	})

	t.Run("ExportToEnvFile", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		set := make(map[string]string)
		a := NewActions(&bytes.Buffer{},
			WithFs(fs),
			WithGetenv(fakeEnv(map[string]string{EnvFileEnv: "/runner/env"})),
			WithSetenv(func(k, v string) error { set[k] = v; return nil }),
		)

		require.NoError(t, a.ExportGlobal("NAME", "value"))
		assert.Equal(t, map[string]string{"NAME": "value"}, set)

		data, err := afero.ReadFile(fs, "/runner/env")
		require.NoError(t, err)
		m := recordPattern.FindStringSubmatch(string(data))
		require.NotNil(t, m)
		assert.Equal(t, "NAME", m[1])
		assert.Equal(t, "value", m[3])
	})

	t.Run("ExportSetenvFailure", func(t *testing.T) {
		a := NewActions(&bytes.Buffer{},
			WithGetenv(fakeEnv(nil)),
			WithSetenv(func(k, v string) error { return errors.New("nope") }),
		)
		assert.Error(t, a.ExportGlobal("K", "V"))
	})

	t.Run("LegacyExportCommand", func(t *testing.T) {
		var out bytes.Buffer
		a := NewActions(&out,
			WithGetenv(fakeEnv(nil)),
			WithSetenv(func(k, v string) error { return nil }),
		)
		require.NoError(t, a.ExportGlobal("K", "V"))
		assert.Equal(t, "::set-env name=K::V\n", out.String())
	})

	t.Run("OutputFileError", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		a := NewActions(&bytes.Buffer{}, WithFs(fs), WithGetenv(fakeEnv(map[string]string{OutputFileEnv: "/out"})))
		assert.Error(t, a.Emit("K", "V"))
	})

	t.Run("Annotations", func(t *testing.T) {
		var out bytes.Buffer
		a := NewActions(&out, WithGetenv(fakeEnv(nil)))

		a.Warn("File not found: /x/.env")
		a.Fail("Action failed: boom\r\n")
		assert.Equal(t, "::warning::File not found: /x/.env\n::error::Action failed: boom%0D%0A\n", out.String())
	})
}

// TestLocal tests the developer host
func TestLocal(t *testing.T) {
	t.Run("PrintsAndRedacts", func(t *testing.T) {
		var out bytes.Buffer
		logger, _ := logtest.NewNullLogger()
		l := NewLocal(&out, logrus.NewEntry(logger))

		require.NoError(t, l.Emit("PUBLIC", "visible"))
		require.NoError(t, l.Mask("hunter2"))
		require.NoError(t, l.Mask(""))
		require.NoError(t, l.Emit("SECRET", "hunter2"))
		require.NoError(t, l.EmitCombined("PUBLIC=visible\nSECRET=hunter2"))

		assert.Equal(t,
			"PUBLIC=visible\nSECRET=***\n--- combined ---\nPUBLIC=visible\nSECRET=***\n",
			out.String())
	})

	t.Run("WarnAndFailLog", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		l := NewLocal(&bytes.Buffer{}, logrus.NewEntry(logger))

		l.Warn("careful")
		l.Fail("broken")

		entries := hook.AllEntries()
		require.Len(t, entries, 2)
		assert.Equal(t, logrus.WarnLevel, entries[0].Level)
		assert.Equal(t, "careful", entries[0].Message)
		assert.Equal(t, logrus.ErrorLevel, entries[1].Level)
	})

	t.Run("ExportSetsEnv", func(t *testing.T) {
		logger, _ := logtest.NewNullLogger()
		l := NewLocal(&bytes.Buffer{}, logrus.NewEntry(logger))
		t.Setenv("ENVLOAD_LOCAL_TEST", "")

		require.NoError(t, l.ExportGlobal("ENVLOAD_LOCAL_TEST", "exported"))
		assert.Equal(t, "exported", os.Getenv("ENVLOAD_LOCAL_TEST"))
	})
}
