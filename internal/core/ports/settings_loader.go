package ports

import "go.trai.ch/lsproj/internal/core/domain"

// SettingsLoader defines the interface for loading the tool settings.
type SettingsLoader interface {
	// Load reads the settings file at path. A missing file yields the default settings.
	Load(path string) (domain.Settings, error)
}
