// Package config provides the settings loader for lsproj.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the settings file at path. A missing file yields domain.DefaultSettings.
func (l *Loader) Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	settings, err := Parse(data)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

// Parse decodes settings from YAML, applying defaults for omitted values.
func Parse(data []byte) (domain.Settings, error) {
	var file SettingsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}

	settings := domain.DefaultSettings()

	if file.Log.Level != "" {
		level, err := parseLevel(file.Log.Level)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.LogLevel = level
	}

	switch strings.ToLower(file.Log.Format) {
	case "", "text":
	case "json":
		settings.LogJSON = true
	default:
		return domain.Settings{}, zerr.With(domain.ErrInvalidSettings, "log.format", file.Log.Format)
	}

	if file.Watch.Debounce != "" {
		window, err := time.ParseDuration(file.Watch.Debounce)
		if err != nil || window < 0 {
			return domain.Settings{}, zerr.With(domain.ErrInvalidSettings, "watch.debounce", file.Watch.Debounce)
		}
		settings.DebounceWindow = window
	}

	if file.Snapshot.Path != "" {
		settings.SnapshotPath = file.Snapshot.Path
	}

	return settings, nil
}

func parseLevel(s string) (domain.LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return domain.LogLevelDebug, nil
	case "info":
		return domain.LogLevelInfo, nil
	case "warn", "warning":
		return domain.LogLevelWarn, nil
	case "error":
		return domain.LogLevelError, nil
	default:
		return 0, zerr.With(domain.ErrInvalidSettings, "log.level", s)
	}
}
