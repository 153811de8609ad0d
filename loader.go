// FILE: lixenwraith/envload/loader.go
package envload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrSettingsNotFound is returned alongside usable settings when the settings
// file does not exist. It is not fatal.
var ErrSettingsNotFound = errors.New("settings file not found")

// Layer identifies where a setting value came from, used to define precedence
type Layer string

const (
	// LayerDefault represents DefaultSettings
	LayerDefault Layer = "default"
	// LayerFile represents a TOML, YAML or JSON settings file
	LayerFile Layer = "file"
	// LayerEnv represents environment variables
	LayerEnv Layer = "env"
	// LayerCLI represents explicit command-line overrides
	LayerCLI Layer = "cli"
)

// EnvTransformFunc converts a settings path to an environment variable name
type EnvTransformFunc func(path string) string

// LoadOptions configures how settings are assembled
type LoadOptions struct {
	// Layers defines the precedence order (first = highest priority)
	// Default: [LayerCLI, LayerEnv, LayerFile, LayerDefault]
	Layers []Layer

	// EnvPrefix is prepended to environment variable names
	// Example: "INPUT_" transforms "log.level" to "INPUT_LOG_LEVEL"
	EnvPrefix string

	// EnvTransform customizes how paths map to environment variables
	EnvTransform EnvTransformFunc

	// LookupEnv replaces os.LookupEnv
	LookupEnv func(string) (string, bool)

	// File is the settings file path; empty skips the file layer
	File string

	// Fs is the filesystem the settings file is read from
	Fs afero.Fs

	// Overrides are dot-path values from the command line
	Overrides map[string]any
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Layers:    []Layer{LayerCLI, LayerEnv, LayerFile, LayerDefault},
		EnvPrefix: DefaultEnvPrefix,
	}
}

// LoadSettings assembles Settings from all layers in opts.
// A missing settings file yields usable settings and ErrSettingsNotFound.
func LoadSettings(opts LoadOptions) (Settings, error) {
	defaults := DefaultSettings()
	values := make(map[string]any)
	collectPaths("", reflect.ValueOf(defaults), values)

	var loadErr error

	// Lowest priority first so that higher layers overwrite
	for i := len(opts.Layers) - 1; i >= 0; i-- {
		switch opts.Layers[i] {
		case LayerDefault:
			// Already in values
			continue

		case LayerFile:
			if opts.File == "" {
				continue
			}
			fileValues, err := readSettingsFile(opts.Fs, opts.File)
			if err != nil {
				if errors.Is(err, ErrSettingsNotFound) {
					loadErr = err
					continue
				}
				return Settings{}, err
			}
			applyKnown(values, fileValues)

		case LayerEnv:
			applyKnown(values, envValues(values, opts))

		case LayerCLI:
			applyKnown(values, flattenMap(opts.Overrides, ""))
		}
	}

	nested := make(map[string]any)
	for path, value := range values {
		setNestedValue(nested, path, value)
	}

	var settings Settings
	if err := decodeSettings(nested, &settings); err != nil {
		return Settings{}, err
	}
	settings.normalize()

	return settings, loadErr
}

// normalize trims list entries and the filter, restoring the default filter
// for blank input
func (s *Settings) normalize() {
	files := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		files = append(files, splitList(f)...)
	}
	s.Files = files

	s.Filter = trimSpace(s.Filter)
	if s.Filter == "" {
		s.Filter = DefaultFilter
	}
}

// applyKnown copies values for paths already present in dst, ignoring unknown paths
func applyKnown(dst, src map[string]any) {
	for path, value := range src {
		if _, known := dst[path]; known {
			dst[path] = value
		}
	}
}

// envValues looks up an environment variable for every known path
func envValues(known map[string]any, opts LoadOptions) map[string]any {
	transform := opts.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(opts.EnvPrefix)
	}
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	found := make(map[string]any)
	for path := range known {
		name := transform(path)
		if name == "" {
			continue
		}
		if value, exists := lookup(name); exists {
			found[path] = value
		}
	}
	return found
}

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(path string) string {
		env := strings.ReplaceAll(path, ".", "_")
		return prefix + strings.ToUpper(env)
	}
}

// readSettingsFile parses a settings file into flattened paths
func readSettingsFile(fs afero.Fs, path string) (map[string]any, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("failed to read settings file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	parsed := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse TOML settings file '%s': %w", path, err)
		}
	case "json":
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&parsed); err != nil {
			return nil, fmt.Errorf("failed to parse JSON settings file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse YAML settings file '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unable to determine format of settings file '%s'", path)
	}

	return flattenMap(parsed, ""), nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	var probe map[string]any
	if err := json.Unmarshal(data, &probe); err == nil {
		return "json"
	}
	probe = nil
	if err := toml.Unmarshal(data, &probe); err == nil {
		return "toml"
	}
	probe = nil
	if err := yaml.Unmarshal(data, &probe); err == nil {
		return "yaml"
	}
	return ""
}

