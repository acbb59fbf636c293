package config

// SettingsFile represents the structure of the lsproj.yaml settings file.
type SettingsFile struct {
	Log      LogDTO      `yaml:"log"`
	Watch    WatchDTO    `yaml:"watch"`
	Snapshot SnapshotDTO `yaml:"snapshot"`
}

// LogDTO configures the logger.
type LogDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WatchDTO configures `lsproj watch`.
type WatchDTO struct {
	Debounce string `yaml:"debounce"`
}

// SnapshotDTO configures `lsproj check`.
type SnapshotDTO struct {
	Path string `yaml:"path"`
}
