package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestFinder = (*Finder)(nil)

// Finder locates the cairo_project.toml governing a path.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// FindManifest walks up from path to the nearest directory containing cairo_project.toml.
// path may name a file or a directory, and does not need to exist.
func (f *Finder) FindManifest(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAbsolutePathFailed.Error()), "path", path)
	}

	if filepath.Base(abs) == domain.ProjectFileName && exists(abs) {
		return abs, nil
	}

	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		candidate := filepath.Join(dir, domain.ProjectFileName)
		if exists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		dir = parent
	}
}

// exists reports whether any file system entry is at path.
// An unreadable manifest is still the governing one.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
