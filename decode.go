// FILE: lixenwraith/envload/decode.go
package envload

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// decodeSettings decodes nested values into target with the settings hooks
func decodeSettings(nested map[string]any, target *Settings) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToListHookFunc(),
			stringToInputBoolHookFunc(),
			blankToZeroDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	return nil
}

// stringToListHookFunc splits multiline string input into a list
func stringToListHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		return splitList(data.(string)), nil
	}
}

// stringToInputBoolHookFunc treats only the exact string "true" as true,
// the way step inputs are compared
func stringToInputBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return strings.TrimSpace(data.(string)) == "true", nil
	}
}

// blankToZeroDurationHookFunc decodes a blank duration string as zero,
// which is how an unset step input arrives
func blankToZeroDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		if strings.TrimSpace(data.(string)) == "" {
			return time.Duration(0), nil
		}
		return data, nil
	}
}
