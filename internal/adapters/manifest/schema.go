package manifest

// projectFile represents the structure of a cairo_project.toml file.
type projectFile struct {
	CrateRoots map[string]string `toml:"crate_roots"`
	Config     configTable       `toml:"config"`
}

type configTable struct {
	Global   crateSettingsTable            `toml:"global"`
	Override map[string]crateSettingsTable `toml:"override"`
}

type crateSettingsTable struct {
	Edition              string                    `toml:"edition"`
	Version              string                    `toml:"version"`
	ExperimentalFeatures experimentalFeaturesTable `toml:"experimental_features"`
}

type experimentalFeaturesTable struct {
	NegativeImpls bool `toml:"negative_impls"`
	Coupons       bool `toml:"coupons"`
}
