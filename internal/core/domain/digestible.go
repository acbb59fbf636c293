package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Digestible is an opaque identity of a file that is relevant for project analysis.
// Two Digestibles are equal iff their paths are equal, so the type can be used as a map key.
type Digestible struct {
	path InternedString
}

// TryNewDigestible creates a Digestible from the given path.
//
// A path whose file name is not one of cairo_project.toml, Scarb.toml or Scarb.lock is
// rejected: the returned Digestible is zero and the error wraps ErrIndigestibleFile.
//
// Otherwise the path is made absolute. If that fails the Digestible wraps the path as
// given and the error reports the failure; the returned value is still usable and the
// error is only meant to be logged as a warning.
func TryNewDigestible(path string) (Digestible, error) {
	if !IsTrackedFileName(filepath.Base(path)) {
		return Digestible{}, zerr.With(ErrIndigestibleFile, "path", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, ErrAbsolutePathFailed.Error()), "path", path)
		return Digestible{path: NewInternedString(path)}, err
	}
	return Digestible{path: NewInternedString(abs)}, nil
}

// IsTrackedFileName reports whether a base file name is one whose content matters to the project model.
func IsTrackedFileName(name string) bool {
	switch name {
	case ProjectFileName, ScarbManifestName, ScarbLockName:
		return true
	default:
		return false
	}
}

// Path returns the path of the file.
func (d Digestible) Path() string {
	return d.path.String()
}

// IsZero reports whether d is the zero Digestible returned for rejected paths.
func (d Digestible) IsZero() bool {
	return d.path.IsZero()
}

// String returns the path of the file.
func (d Digestible) String() string {
	return d.Path()
}
