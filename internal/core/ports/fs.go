package ports

import (
	"iter"

	"go.trai.ch/lsproj/internal/core/domain"
)

// FileHasher computes content hashes of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=fs.go -destination=mocks/mock_fs.go -package=mocks
type FileHasher interface {
	// HashFile returns a stable 64-bit hash of the full content of the file at path.
	// The returned error keeps the underlying *fs.PathError in its chain.
	HashFile(path string) (uint64, error)
}

// ManifestFinder locates the project manifest governing a path.
type ManifestFinder interface {
	// FindManifest walks up from path (a file or a directory) to the nearest cairo_project.toml.
	FindManifest(path string) (string, error)
}

// TrackedFileWalker enumerates files relevant for project analysis.
type TrackedFileWalker interface {
	// WalkTracked yields the digestible files below root.
	WalkTracked(root string) iter.Seq[domain.Digestible]
}
