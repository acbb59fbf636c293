package domain

import "time"

// DefaultDebounceWindow is the default time window for coalescing file system events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Settings configures the lsproj tool itself.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel LogLevel
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// DebounceWindow is the time window for coalescing watcher events.
	DebounceWindow time.Duration
	// SnapshotPath is where `lsproj check` keeps observed digests, relative to the checked root.
	SnapshotPath string
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:       LogLevelInfo,
		DebounceWindow: DefaultDebounceWindow,
		SnapshotPath:   DefaultSnapshotPath(),
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
