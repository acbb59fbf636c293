package manifest_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lsproj/internal/adapters/manifest"
	"go.trai.ch/lsproj/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_CrateRootsInDocumentOrder(t *testing.T) {
	path := writeManifest(t, `
[crate_roots]
zeta = "./z"
alpha = "src/a"
mid = "/opt/cairo/mid"
`)

	cfg, err := manifest.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), cfg.BasePath)
	assert.Equal(t, []domain.CrateRoot{
		{Name: "zeta", Path: "./z"},
		{Name: "alpha", Path: "src/a"},
		{Name: "mid", Path: "/opt/cairo/mid"},
	}, cfg.CrateRoots)
	assert.Equal(t, domain.CratesConfig{}, cfg.CratesConfig)
}

func TestLoad_CratesConfig(t *testing.T) {
	path := writeManifest(t, `
crate_roots = { core = "corelib/src", app = "." }

[config.global]
edition = "2023_10"

[config.override.core]
edition = "2024_07"
version = "2.8.0"

[config.override.core.experimental_features]
negative_impls = true
coupons = true
`)

	cfg, err := manifest.NewLoader().Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.CrateRoots, 2)
	assert.Equal(t, "core", cfg.CrateRoots[0].Name)
	assert.Equal(t, "app", cfg.CrateRoots[1].Name)

	assert.Equal(t, domain.CrateSettings{Edition: "2023_10"}, cfg.CratesConfig.Get("app"))
	assert.Equal(t, domain.CrateSettings{
		Edition: "2024_07",
		Version: "2.8.0",
		ExperimentalFeatures: domain.ExperimentalFeatures{
			NegativeImpls: true,
			Coupons:       true,
		},
	}, cfg.CratesConfig.Get("core"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "invalid syntax", content: "[crate_roots\na = \"a\"\n", errMsg: "failed to parse cairo project"},
		{name: "duplicate crate", content: "[crate_roots]\na = \"a\"\na = \"b\"\n", errMsg: "failed to parse cairo project"},
		{name: "wrong root type", content: "[crate_roots]\na = 1\n", errMsg: "failed to parse cairo project"},
		{name: "empty root", content: "[crate_roots]\na = \"\"\n", errMsg: "invalid crate root"},
		{name: "unknown global edition", content: "[config.global]\nedition = \"1999\"\n", errMsg: "unknown edition"},
		{
			name:    "unknown override edition",
			content: "[crate_roots]\na = \"a\"\n[config.override.a]\nedition = \"2099_01\"\n",
			errMsg:  "unknown edition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.content), "/base")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var pathErr *fs.PathError
			assert.False(t, errors.As(err, &pathErr), "content errors must not look like I/O errors")
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := manifest.Parse(nil, "/base")
	require.NoError(t, err)
	assert.Empty(t, cfg.CrateRoots)
	assert.Equal(t, "/base", cfg.BasePath)
}

func TestLoad_ReadErrors(t *testing.T) {
	loader := manifest.NewLoader()

	_, err := loader.Load(filepath.Join(t.TempDir(), domain.ProjectFileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read cairo project")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	// A directory opens fine but cannot be read, even with root privileges.
	dir := filepath.Join(t.TempDir(), domain.ProjectFileName)
	require.NoError(t, os.Mkdir(dir, 0o750))
	_, err = loader.Load(dir)
	require.Error(t, err)
	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
}
