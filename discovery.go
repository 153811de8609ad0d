// FILE: lixenwraith/envload/discovery.go
package envload

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DiscoveryOptions configures settings file discovery
type DiscoveryOptions struct {
	// Base name of the settings file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Explicit path, typically from a command-line flag; wins when set
	Explicit string

	// Environment variable to check for an explicit path
	EnvVar string

	// Directories searched in order after the explicit sources
	Paths []string

	// Whether to search XDG config directories
	UseXDG bool

	// Getenv replaces os.Getenv
	Getenv func(string) string

	// Fs is the filesystem probed for candidates
	Fs afero.Fs
}

// DefaultDiscoveryOptions returns discovery options for appName, searching
// workDir for a dot-prefixed settings file
func DefaultDiscoveryOptions(appName, workDir string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:       "." + appName,
		Extensions: []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:     strings.ToUpper(appName) + "_CONFIG",
		Paths:      []string{workDir},
		UseXDG:     true,
	}
}

// DiscoverSettingsFile returns the settings file to load, or "" when none exists.
// Finding nothing is not an error; the run proceeds on inputs and defaults.
func DiscoverSettingsFile(opts DiscoveryOptions) string {
	if opts.Explicit != "" {
		return opts.Explicit
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if opts.EnvVar != "" {
		if path := getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	candidates := make([]string, 0, len(opts.Paths))
	for _, dir := range opts.Paths {
		if dir != "" {
			candidates = append(candidates, filepath.Join(dir, opts.Name))
		}
	}
	if opts.UseXDG {
		// XDG files drop the leading dot: $XDG_CONFIG_HOME/envload/envload.toml
		bare := strings.TrimPrefix(opts.Name, ".")
		for _, dir := range xdgConfigDirs(bare, getenv) {
			candidates = append(candidates, filepath.Join(dir, bare))
		}
	}

	for _, base := range candidates {
		for _, ext := range opts.Extensions {
			path := base + ext
			if info, err := fs.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}

	return ""
}

// xdgConfigDirs returns XDG-compliant config directories for appName
func xdgConfigDirs(appName string, getenv func(string) string) []string {
	var dirs []string

	if xdgHome := getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		dirs = append(dirs, filepath.Join(xdgHome, appName))
	} else if home := getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			dirs = append(dirs, filepath.Join(dir, appName))
		}
	} else {
		dirs = append(dirs, filepath.Join("/etc/xdg", appName))
	}

	return dirs
}
