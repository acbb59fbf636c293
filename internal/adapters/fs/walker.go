// Package fs provides file system adapters for finding, walking and hashing project files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
)

// defaultIgnores are directories that never contain project manifests worth tracking.
var defaultIgnores = []string{"target", domain.StateDirName}

var _ ports.TrackedFileWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkTracked yields every digestible file below root in lexical order.
func (w *Walker) WalkTracked(root string) iter.Seq[domain.Digestible] {
	return func(yield func(domain.Digestible) bool) {
		for path := range w.WalkFiles(root, defaultIgnores) {
			if !domain.IsTrackedFileName(filepath.Base(path)) {
				continue
			}
			// A failure to absolutize still yields a usable Digestible.
			d, _ := domain.TryNewDigestible(path)
			if d.IsZero() {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// WalkFiles yields all files in the root directory, skipping .git, .jj and ignored directories.
// Yielded paths start with root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped; the root itself aborts the walk.
				if path == root {
					return err
				}
				return nil
			}

			if skipAction := w.shouldSkipDir(d, ignores); skipAction != nil {
				return skipAction
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkipDir returns filepath.SkipDir for directories that must not be descended into.
func (w *Walker) shouldSkipDir(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}

	name := d.Name()
	if name == ".git" || name == ".jj" {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return filepath.SkipDir
		}
	}

	return nil
}
