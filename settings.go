// FILE: lixenwraith/envload/settings.go
package envload

import "time"

// DefaultEnvPrefix matches how the Actions runner exposes step inputs
const DefaultEnvPrefix = "INPUT_"

// LogSettings configures the logger
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

// Settings holds everything a run needs
type Settings struct {
	Files      []string      `toml:"files"`
	Filter     string        `toml:"filter"`
	Export     bool          `toml:"export"`
	Mask       bool          `toml:"mask"`
	WorkingDir string        `toml:"working_dir"`
	Timeout    time.Duration `toml:"timeout"`
	Host       string        `toml:"host"` // actions or local; empty picks from the environment
	Log        LogSettings   `toml:"log"`
}

// DefaultSettings returns the settings used when nothing overrides them
func DefaultSettings() Settings {
	return Settings{
		Filter: DefaultFilter,
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks settings that must be present before any source is read
func (s Settings) Validate() error {
	if len(s.Files) == 0 {
		return ErrNoFiles
	}
	if _, err := CompileFilter(s.Filter); err != nil {
		return err
	}
	return nil
}

