// Package manifest loads cairo_project.toml manifests.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

const crateRootsTable = "crate_roots"

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader with BurntSushi/toml.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the manifest at path.
func (l *Loader) Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a tracked project manifest
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAbsolutePathFailed.Error()), "path", path)
	}

	config, err := Parse(data, base)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return config, nil
}

// Parse decodes manifest content. Relative crate roots are later resolved against base.
func Parse(data []byte, base string) (*domain.ProjectConfig, error) {
	var file projectFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	roots, err := crateRoots(md, file.CrateRoots)
	if err != nil {
		return nil, err
	}

	global, err := crateSettings(file.Config.Global)
	if err != nil {
		return nil, zerr.With(err, "crate", "global")
	}

	var override map[string]domain.CrateSettings
	if len(file.Config.Override) > 0 {
		override = make(map[string]domain.CrateSettings, len(file.Config.Override))
		for name, table := range file.Config.Override {
			settings, err := crateSettings(table)
			if err != nil {
				return nil, zerr.With(err, "crate", name)
			}
			override[name] = settings
		}
	}

	return &domain.ProjectConfig{
		BasePath:   base,
		CrateRoots: roots,
		CratesConfig: domain.CratesConfig{
			Global:   global,
			Override: override,
		},
	}, nil
}

// crateRoots lists the crate_roots entries in document order.
func crateRoots(md toml.MetaData, table map[string]string) ([]domain.CrateRoot, error) {
	roots := make([]domain.CrateRoot, 0, len(table))
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != crateRootsTable {
			continue
		}
		name := key[1]
		path := table[name]
		if name == "" || path == "" {
			return nil, zerr.With(domain.ErrInvalidCrateRoot, "crate", name)
		}
		roots = append(roots, domain.CrateRoot{Name: name, Path: path})
	}
	return roots, nil
}

func crateSettings(table crateSettingsTable) (domain.CrateSettings, error) {
	edition, err := domain.ParseEdition(table.Edition)
	if err != nil {
		return domain.CrateSettings{}, err
	}
	return domain.CrateSettings{
		Edition: edition,
		Version: table.Version,
		ExperimentalFeatures: domain.ExperimentalFeatures{
			NegativeImpls: table.ExperimentalFeatures.NegativeImpls,
			Coupons:       table.ExperimentalFeatures.Coupons,
		},
	}, nil
}
