package domain

import "path/filepath"

const (
	// ProjectFileName is the name of the standalone project manifest.
	ProjectFileName = "cairo_project.toml"

	// ScarbManifestName is the name of the package manager manifest.
	ScarbManifestName = "Scarb.toml"

	// ScarbLockName is the name of the package manager lock file.
	ScarbLockName = "Scarb.lock"

	// SettingsFileName is the name of the tool settings file.
	SettingsFileName = "lsproj.yaml"

	// StateDirName is the name of the directory holding tool state.
	StateDirName = ".lsproj"

	// SnapshotFileName is the name of the digest snapshot file.
	SnapshotFileName = "digests.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSnapshotPath returns the default path of the digest snapshot.
// It joins .lsproj and digests.json.
func DefaultSnapshotPath() string {
	return filepath.Join(StateDirName, SnapshotFileName)
}
