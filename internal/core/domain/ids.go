package domain

// DigestID is the interned handle of a Digestible.
// Handles are only meaningful for the database that issued them; the zero value is never issued.
type DigestID uint32

// ProjectID is the interned handle of a ProjectManifestPath.
type ProjectID uint32

// ProjectManifestPath identifies a cairo_project.toml based project by its absolute manifest path.
type ProjectManifestPath struct {
	path InternedString
}

// NewProjectManifestPath wraps an absolute manifest path.
// Validation is done by the project database when the path is interned.
func NewProjectManifestPath(path string) ProjectManifestPath {
	return ProjectManifestPath{path: NewInternedString(path)}
}

// Path returns the manifest path.
func (p ProjectManifestPath) Path() string {
	return p.path.String()
}
