package domain

import (
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// Edition is a language edition a crate is compiled with.
type Edition string

// DefaultEdition is the edition used when a crate does not name one.
const DefaultEdition Edition = "2023_01"

var knownEditions = []Edition{"2023_01", "2023_10", "2023_11", "2024_07"}

// ParseEdition validates an edition name. An empty name yields the zero Edition.
func ParseEdition(s string) (Edition, error) {
	if s == "" {
		return "", nil
	}
	e := Edition(s)
	if !slices.Contains(knownEditions, e) {
		return "", zerr.With(ErrInvalidEdition, "edition", s)
	}
	return e, nil
}

// OrDefault returns DefaultEdition for the zero Edition.
func (e Edition) OrDefault() Edition {
	if e == "" {
		return DefaultEdition
	}
	return e
}

// ExperimentalFeatures lists opt-in compiler features of a crate.
type ExperimentalFeatures struct {
	NegativeImpls bool `json:"negative_impls,omitzero"`
	Coupons       bool `json:"coupons,omitzero"`
}

// CrateSettings are per-crate compiler settings resolved from the manifest configuration.
// The zero value is the default configuration.
type CrateSettings struct {
	Edition              Edition              `json:"edition,omitzero"`
	Version              string               `json:"version,omitzero"`
	ExperimentalFeatures ExperimentalFeatures `json:"experimental_features,omitzero"`
}

// Crate describes one compilation unit of a project.
// Crates are comparable with == and rebuilt from scratch on every resolution.
type Crate struct {
	// Name is the crate name as declared in the manifest.
	Name string `json:"name"`
	// Root is the absolute path of the crate root directory.
	Root string `json:"root"`
	// CustomMainFileStem overrides the main file stem ("lib") when not empty.
	CustomMainFileStem string `json:"custom_main_file_stem,omitzero"`
	// Settings are the compiler settings of the crate.
	Settings CrateSettings `json:"settings"`
}

// CratesEqual reports whether two crate lists are identical, including order.
func CratesEqual(a, b []Crate) bool {
	return slices.Equal(a, b)
}

// CrateRoot is one entry of the manifest crate_roots table.
type CrateRoot struct {
	Name string
	Path string
}

// CratesConfig holds the settings table of a manifest.
type CratesConfig struct {
	// Global applies to every crate without an override.
	Global CrateSettings
	// Override maps crate names to their own settings.
	Override map[string]CrateSettings
}

// Get returns the settings for the named crate: its override if present, the global settings otherwise.
func (c CratesConfig) Get(name string) CrateSettings {
	if s, ok := c.Override[name]; ok {
		return s
	}
	return c.Global
}

// ProjectConfig is the parsed content of a cairo_project.toml manifest.
type ProjectConfig struct {
	// BasePath is the directory containing the manifest.
	BasePath string
	// CrateRoots lists the declared crates in document order.
	CrateRoots []CrateRoot
	// CratesConfig holds the crate settings tables.
	CratesConfig CratesConfig
}

// AbsoluteCrateRoot resolves a declared crate root against the manifest directory.
func (p *ProjectConfig) AbsoluteCrateRoot(root string) string {
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(p.BasePath, root)
}
