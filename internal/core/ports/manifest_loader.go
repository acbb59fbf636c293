package ports

import "go.trai.ch/lsproj/internal/core/domain"

// ManifestLoader parses cairo_project.toml manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest at path.
	// Failures to read the file keep the underlying *fs.PathError in the error chain,
	// parse and schema failures do not.
	Load(path string) (*domain.ProjectConfig, error)
}
