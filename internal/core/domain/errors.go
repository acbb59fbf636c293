package domain

import "go.trai.ch/zerr"

var (
	// ErrIndigestibleFile is returned when a path does not name a file relevant for project analysis.
	ErrIndigestibleFile = zerr.New("file is not relevant for project analysis")

	// ErrAbsolutePathFailed is returned when a path cannot be made absolute.
	ErrAbsolutePathFailed = zerr.New("failed to find absolute path")

	// ErrNotProjectManifest is returned when a project is registered with a path that is not a project manifest.
	ErrNotProjectManifest = zerr.New("path is not a cairo_project.toml manifest")

	// ErrManifestNotFound is returned when no project manifest exists above a path.
	ErrManifestNotFound = zerr.New("could not find cairo_project.toml")

	// ErrManifestReadFailed is returned when the project manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read cairo project")

	// ErrManifestParseFailed is returned when the project manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse cairo project")

	// ErrInvalidEdition is returned when a manifest names an unknown language edition.
	ErrInvalidEdition = zerr.New("unknown edition")

	// ErrInvalidCrateRoot is returned when a crate root entry has an empty name or path.
	ErrInvalidCrateRoot = zerr.New("invalid crate root")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidSettings is returned when a settings value is out of range.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrStoreReadFailed is returned when the digest snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read digest snapshot")

	// ErrStoreUnmarshalFailed is returned when the digest snapshot cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal digest snapshot")

	// ErrStoreMarshalFailed is returned when the digest snapshot cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal digest snapshot")

	// ErrStoreCreateFailed is returned when the digest snapshot directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create digest snapshot directory")

	// ErrStoreWriteFailed is returned when the digest snapshot cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write digest snapshot")

	// ErrWatcherStartFailed is returned when the file system watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrNoFilesSpecified is returned when the digest command has no arguments.
	ErrNoFilesSpecified = zerr.New("no files specified")
)
