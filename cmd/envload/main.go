// FILE: lixenwraith/envload/cmd/envload/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/envload"
	"github.com/lixenwraith/envload/internal/host"
)

const appName = "envload"

// runHost is a Host that can also terminate the run with a failure message
type runHost interface {
	envload.Host
	Fail(message string)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.SetOutput(stderr)

	files := flags.StringArray("files", nil, "source file to load; repeatable, later files override earlier ones")
	filter := flags.String("filter", envload.DefaultFilter, "regular expression a key must match")
	export := flags.Bool("export", false, "export variables to later workflow steps")
	mask := flags.Bool("mask", false, "mask every loaded value in logs")
	configPath := flags.String("config", "", "settings file (TOML, YAML or JSON)")
	hostName := flags.String("host", "", "result host: actions or local")
	workDir := flags.String("working-dir", "", "directory relative file paths resolve against")
	timeout := flags.Duration("timeout", 0, "abort the run after this long (0 disables)")
	logLevel := flags.String("log-level", "info", "log level")
	logFormat := flags.String("log-format", "text", "log format: text or json")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Only flags the user set override lower layers
	overrides := make(map[string]any)
	if flags.Changed("files") || flags.NArg() > 0 {
		overrides["files"] = append(append([]string{}, *files...), flags.Args()...)
	}
	setIfChanged(flags, overrides, "filter", "filter", *filter)
	setIfChanged(flags, overrides, "export", "export", *export)
	setIfChanged(flags, overrides, "mask", "mask", *mask)
	setIfChanged(flags, overrides, "host", "host", *hostName)
	setIfChanged(flags, overrides, "working-dir", "working_dir", *workDir)
	setIfChanged(flags, overrides, "timeout", "timeout", *timeout)
	setIfChanged(flags, overrides, "log-level", "log.level", *logLevel)
	setIfChanged(flags, overrides, "log-format", "log.format", *logFormat)

	cwd, _ := os.Getwd()
	discovery := envload.DefaultDiscoveryOptions(appName, cwd)
	discovery.Explicit = *configPath

	opts := envload.DefaultLoadOptions()
	opts.File = envload.DiscoverSettingsFile(discovery)
	opts.Overrides = overrides

	settings, loadErr := envload.LoadSettings(opts)

	resolvedHost := settings.Host
	if resolvedHost == "" {
		resolvedHost = "local"
		if os.Getenv("GITHUB_ACTIONS") == "true" {
			resolvedHost = "actions"
		}
	}

	logOut := stderr
	if resolvedHost == "actions" {
		logOut = stdout
	}
	logger := newLogger(settings.Log, logOut)
	entry := logrus.NewEntry(logger)

	var h runHost
	switch resolvedHost {
	case "actions":
		h = host.NewActions(stdout)
	case "local":
		h = host.NewLocal(stdout, entry)
	default:
		h = host.NewLocal(stdout, entry)
		h.Fail(fmt.Sprintf("Action failed: unknown host %q", resolvedHost))
		return 1
	}

	if loadErr != nil {
		if !errors.Is(loadErr, envload.ErrSettingsNotFound) {
			h.Fail(fmt.Sprintf("Action failed: %v", loadErr))
			return 1
		}
		entry.WithError(loadErr).Debug("continuing without settings file")
	}

	runner, err := envload.NewBuilder().
		WithSettings(settings).
		WithHost(h).
		WithLogger(entry).
		Build()
	if err != nil {
		h.Fail(fmt.Sprintf("Action failed: %v", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	if _, err := runner.Run(ctx); err != nil {
		h.Fail(fmt.Sprintf("Action failed: %v", err))
		return 1
	}
	return 0
}

// setIfChanged records a flag value under path when the flag was given
func setIfChanged(flags *pflag.FlagSet, overrides map[string]any, name, path string, value any) {
	if flags.Changed(name) {
		overrides[path] = value
	}
}

// newLogger builds a logger from settings; an unknown level falls back to info
func newLogger(s envload.LogSettings, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if s.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
