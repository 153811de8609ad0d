// FILE: lixenwraith/envload/decode_test.go
package envload

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeSettings tests settings decoding and hooks
func TestDecodeSettings(t *testing.T) {
	t.Run("WeakTypes", func(t *testing.T) {
		var s Settings
		err := decodeSettings(map[string]any{
			"files":   "a.env\nb.env",
			"export":  "true",
			"mask":    true,
			"timeout": "1m30s",
			"log":     map[string]any{"level": "error"},
		}, &s)
		require.NoError(t, err)

		assert.Equal(t, []string{"a.env", "b.env"}, s.Files)
		assert.True(t, s.Export)
		assert.True(t, s.Mask)
		assert.Equal(t, 90*time.Second, s.Timeout)
		assert.Equal(t, "error", s.Log.Level)
	})

	t.Run("BadDuration", func(t *testing.T) {
		var s Settings
		err := decodeSettings(map[string]any{"timeout": "soon"}, &s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode settings")
	})

	t.Run("BlankDurationIsZero", func(t *testing.T) {
		s := Settings{Timeout: time.Minute}
		err := decodeSettings(map[string]any{"timeout": "  "}, &s)
		require.NoError(t, err)
		assert.Zero(t, s.Timeout)
	})

	t.Run("ListFromSlice", func(t *testing.T) {
		var s Settings
		err := decodeSettings(map[string]any{"files": []any{"x.env", "y.env"}}, &s)
		require.NoError(t, err)
		assert.Equal(t, []string{"x.env", "y.env"}, s.Files)
	})
}

// TestHooks tests the individual decode hooks
func TestHooks(t *testing.T) {
	strType := reflect.TypeOf("")
	listType := reflect.TypeOf([]string{})
	boolType := reflect.TypeOf(false)

	t.Run("ListHookOnlyForStringSlices", func(t *testing.T) {
		hook := stringToListHookFunc().(func(reflect.Type, reflect.Type, any) (any, error))

		out, err := hook(strType, listType, " a \n\n b ")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, out)

		out, err = hook(strType, strType, "a\nb")
		require.NoError(t, err)
		assert.Equal(t, "a\nb", out)
	})

	t.Run("InputBoolHook", func(t *testing.T) {
		hook := stringToInputBoolHookFunc().(func(reflect.Type, reflect.Type, any) (any, error))

		out, err := hook(strType, boolType, " true ")
		require.NoError(t, err)
		assert.Equal(t, true, out)

		out, err = hook(strType, boolType, "yes")
		require.NoError(t, err)
		assert.Equal(t, false, out)

		out, err = hook(boolType, boolType, true)
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})
}

// TestHelpers tests path flattening and list splitting
func TestHelpers(t *testing.T) {
	t.Run("FlattenAndNest", func(t *testing.T) {
		nested := map[string]any{
			"files": []string{"a"},
			"log":   map[string]any{"level": "info", "format": "json"},
		}
		flat := flattenMap(nested, "")
		assert.Equal(t, map[string]any{
			"files":      []string{"a"},
			"log.level":  "info",
			"log.format": "json",
		}, flat)

		rebuilt := make(map[string]any)
		for path, value := range flat {
			setNestedValue(rebuilt, path, value)
		}
		assert.Equal(t, nested, rebuilt)
	})

	t.Run("SetNestedReplacesScalar", func(t *testing.T) {
		m := map[string]any{"log": "flat"}
		setNestedValue(m, "log.level", "debug")
		assert.Equal(t, map[string]any{"log": map[string]any{"level": "debug"}}, m)
	})

	t.Run("CollectPaths", func(t *testing.T) {
		paths := make(map[string]any)
		collectPaths("", reflect.ValueOf(DefaultSettings()), paths)

		for _, p := range []string{"files", "filter", "export", "mask", "working_dir", "timeout", "host", "log.level", "log.format"} {
			assert.Contains(t, paths, p)
		}
		assert.Equal(t, DefaultFilter, paths["filter"])
		assert.Len(t, paths, 9)
	})

	t.Run("SplitList", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, splitList("a\n  \n b \r\n"))
		assert.Nil(t, splitList(" \n "))
	})
}
